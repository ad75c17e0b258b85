package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/autolux-api/internal/application/dto"
	"github.com/jhoicas/autolux-api/internal/domain"
	"github.com/jhoicas/autolux-api/internal/domain/entity"
	"github.com/jhoicas/autolux-api/internal/domain/repository"
)

// BrandUseCase casos de uso CRUD para marcas. La lectura compone los autos
// asociados (eager), igual que el listado de la API original.
type BrandUseCase struct {
	brandRepo repository.BrandRepository
	carRepo   repository.CarRepository
}

// NewBrandUseCase construye el caso de uso.
func NewBrandUseCase(brandRepo repository.BrandRepository, carRepo repository.CarRepository) *BrandUseCase {
	return &BrandUseCase{brandRepo: brandRepo, carRepo: carRepo}
}

// Create crea una marca. Devuelve ErrDuplicate si ya existe una con ese nombre
// (sin distinguir mayúsculas); en ese caso no escribe nada.
func (uc *BrandUseCase) Create(in dto.CreateBrandRequest) (*dto.BrandResponse, error) {
	existing, err := uc.brandRepo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	brand := &entity.Brand{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.brandRepo.Create(brand); err != nil {
		return nil, err
	}
	return toBrandResponse(brand, nil), nil
}

// List lista todas las marcas con sus autos.
func (uc *BrandUseCase) List() ([]dto.BrandResponse, error) {
	brands, err := uc.brandRepo.List()
	if err != nil {
		return nil, err
	}
	cars, err := uc.carRepo.List()
	if err != nil {
		return nil, err
	}
	byBrand := make(map[string][]*entity.Car, len(brands))
	for _, c := range cars {
		byBrand[c.BrandID] = append(byBrand[c.BrandID], c)
	}
	items := make([]dto.BrandResponse, 0, len(brands))
	for _, b := range brands {
		items = append(items, *toBrandResponse(b, byBrand[b.ID]))
	}
	return items, nil
}

// GetByID obtiene una marca con sus autos. Devuelve nil si no existe.
func (uc *BrandUseCase) GetByID(id string) (*dto.BrandResponse, error) {
	brand, err := uc.brandRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, nil
	}
	cars, err := uc.carRepo.ListByBrand(brand.ID)
	if err != nil {
		return nil, err
	}
	return toBrandResponse(brand, cars), nil
}

// Update renombra la marca. Devuelve nil si no existe y ErrDuplicate si el
// nuevo nombre ya pertenece a otra marca (el índice único cubre la carrera).
func (uc *BrandUseCase) Update(id string, in dto.CreateBrandRequest) (*dto.BrandResponse, error) {
	brand, err := uc.brandRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, nil
	}
	other, err := uc.brandRepo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if other != nil && other.ID != brand.ID {
		return nil, domain.ErrDuplicate
	}
	brand.Name = in.Name
	brand.UpdatedAt = time.Now()
	if err := uc.brandRepo.Update(brand); err != nil {
		return nil, err
	}
	cars, err := uc.carRepo.ListByBrand(brand.ID)
	if err != nil {
		return nil, err
	}
	return toBrandResponse(brand, cars), nil
}

// Delete elimina la marca. Devuelve ErrNotFound si no existe y ErrBrandHasCars
// si todavía hay autos que la referencian (se rechaza, no hay cascada).
func (uc *BrandUseCase) Delete(id string) error {
	return uc.brandRepo.Delete(id)
}

func toBrandResponse(b *entity.Brand, cars []*entity.Car) *dto.BrandResponse {
	if b == nil {
		return nil
	}
	items := make([]dto.CarResponse, 0, len(cars))
	for _, c := range cars {
		items = append(items, *toCarResponse(c))
	}
	return &dto.BrandResponse{
		ID:        b.ID,
		Name:      b.Name,
		Cars:      items,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
