package repository

import "github.com/jhoicas/autolux-api/internal/domain/entity"

// BrandRepository define el puerto de persistencia para Brand (DIP).
type BrandRepository interface {
	Create(brand *entity.Brand) error
	GetByID(id string) (*entity.Brand, error)
	// GetByName busca por nombre sin distinguir mayúsculas (misma regla que el
	// índice único de la DB).
	GetByName(name string) (*entity.Brand, error)
	List() ([]*entity.Brand, error)
	Update(brand *entity.Brand) error
	// Delete elimina la marca. Devuelve domain.ErrBrandHasCars si todavía hay
	// autos que la referencian (FK ON DELETE RESTRICT).
	Delete(id string) error
	// ResolveOrCreate devuelve la marca con ese nombre, creándola si no existe.
	// Es la única vía de creación implícita: la unicidad queda en un solo lugar
	// y la carrera check-then-insert la cierra el índice único de la DB.
	ResolveOrCreate(name string) (*entity.Brand, error)
}
