package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/autolux-api/internal/application/dto"
	"github.com/jhoicas/autolux-api/internal/domain"
	"github.com/jhoicas/autolux-api/internal/domain/entity"
	"github.com/jhoicas/autolux-api/internal/domain/repository"
)

// TxRunner ejecuta fn con repos atados a una misma transacción. Lo implementa
// postgres.TxRunner; la interfaz evita que el use case dependa de pgx.
type TxRunner interface {
	Run(ctx context.Context, fn func(brands repository.BrandRepository, cars repository.CarRepository) error) error
}

// CarUseCase casos de uso CRUD y búsqueda para autos. Crear y actualizar
// resuelven la marca y escriben el auto en una sola transacción.
type CarUseCase struct {
	carRepo repository.CarRepository
	tx      TxRunner
}

// NewCarUseCase construye el caso de uso.
func NewCarUseCase(carRepo repository.CarRepository, tx TxRunner) *CarUseCase {
	return &CarUseCase{carRepo: carRepo, tx: tx}
}

// resolveBrand aplica la única regla de vinculación de marca, idéntica para
// create y update: BrandID gana y debe existir; si no, BrandName se resuelve o
// se crea; si no viene ninguno, ErrMissingBrand.
func resolveBrand(brands repository.BrandRepository, brandID, brandName string) (*entity.Brand, error) {
	if brandID != "" {
		brand, err := brands.GetByID(brandID)
		if err != nil {
			return nil, err
		}
		if brand == nil {
			return nil, domain.ErrBrandNotFound
		}
		return brand, nil
	}
	if brandName != "" {
		return brands.ResolveOrCreate(brandName)
	}
	return nil, domain.ErrMissingBrand
}

// Create crea un auto vinculado a su marca. Si la marca se indica por nombre y
// no existe, se crea en la misma transacción.
func (uc *CarUseCase) Create(in dto.CreateCarRequest) (*dto.CarResponse, error) {
	var out *dto.CarResponse
	err := uc.tx.Run(context.Background(), func(brands repository.BrandRepository, cars repository.CarRepository) error {
		brand, err := resolveBrand(brands, in.BrandID, in.BrandName)
		if err != nil {
			return err
		}
		now := time.Now()
		car := &entity.Car{
			ID:        uuid.New().String(),
			Model:     in.Model,
			Year:      in.Year,
			Price:     in.Price,
			Mileage:   in.Mileage,
			Color:     in.Color,
			IsSold:    in.IsSold,
			BrandID:   brand.ID,
			BrandName: brand.Name,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := cars.Create(car); err != nil {
			return err
		}
		out = toCarResponse(car)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update sobreescribe los atributos escalares del auto. La marca se resuelve
// con la misma regla que en Create; si el request no trae BrandID ni BrandName
// se conserva la vinculación actual.
func (uc *CarUseCase) Update(id string, in dto.CreateCarRequest) (*dto.CarResponse, error) {
	var out *dto.CarResponse
	err := uc.tx.Run(context.Background(), func(brands repository.BrandRepository, cars repository.CarRepository) error {
		car, err := cars.GetByID(id)
		if err != nil {
			return err
		}
		if car == nil {
			return domain.ErrNotFound
		}
		brand, err := resolveBrand(brands, in.BrandID, in.BrandName)
		if err != nil {
			if !errors.Is(err, domain.ErrMissingBrand) {
				return err
			}
			// Sin marca en el request: se mantiene la actual.
			brand = &entity.Brand{ID: car.BrandID, Name: car.BrandName}
		}
		car.Model = in.Model
		car.Year = in.Year
		car.Price = in.Price
		car.Mileage = in.Mileage
		car.Color = in.Color
		car.IsSold = in.IsSold
		car.BrandID = brand.ID
		car.BrandName = brand.Name
		car.UpdatedAt = time.Now()
		if err := cars.Update(car); err != nil {
			return err
		}
		out = toCarResponse(car)
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return out, nil
}

// GetByID obtiene un auto. Devuelve nil si no existe.
func (uc *CarUseCase) GetByID(id string) (*dto.CarResponse, error) {
	car, err := uc.carRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, nil
	}
	return toCarResponse(car), nil
}

// List lista todos los autos.
func (uc *CarUseCase) List() ([]dto.CarResponse, error) {
	cars, err := uc.carRepo.List()
	if err != nil {
		return nil, err
	}
	return toCarResponses(cars), nil
}

// Search busca autos aplicando solo los filtros presentes (AND). Un filtro
// vacío devuelve todos los autos.
func (uc *CarUseCase) Search(in dto.SearchCarsRequest) ([]dto.CarResponse, error) {
	cars, err := uc.carRepo.Search(repository.CarFilter{
		Model:     in.Model,
		BrandName: in.Brand,
		Year:      in.Year,
		Price:     in.Price,
		Mileage:   in.Mileage,
		Color:     in.Color,
		IsSold:    in.IsSold,
	})
	if err != nil {
		return nil, err
	}
	return toCarResponses(cars), nil
}

// Delete elimina un auto. Devuelve ErrNotFound si no existe.
func (uc *CarUseCase) Delete(id string) error {
	return uc.carRepo.Delete(id)
}

func toCarResponse(c *entity.Car) *dto.CarResponse {
	if c == nil {
		return nil
	}
	return &dto.CarResponse{
		ID:        c.ID,
		Model:     c.Model,
		Year:      c.Year,
		Price:     c.Price,
		Mileage:   c.Mileage,
		Color:     c.Color,
		IsSold:    c.IsSold,
		BrandID:   c.BrandID,
		BrandName: c.BrandName,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toCarResponses(cars []*entity.Car) []dto.CarResponse {
	items := make([]dto.CarResponse, 0, len(cars))
	for _, c := range cars {
		items = append(items, *toCarResponse(c))
	}
	return items
}
