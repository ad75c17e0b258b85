package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/autolux-api/internal/domain/entity"
)

// CarFilter filtros opcionales e independientes para la búsqueda de autos.
// Los campos de texto son substring sensible a mayúsculas; los numéricos y
// booleanos, igualdad exacta. Todos los presentes se combinan con AND.
type CarFilter struct {
	Model     string
	BrandName string
	Year      *int
	Price     *decimal.Decimal
	Mileage   *int
	Color     string
	IsSold    *bool
}

// CarRepository define el puerto de persistencia para Car (DIP).
type CarRepository interface {
	Create(car *entity.Car) error
	GetByID(id string) (*entity.Car, error)
	List() ([]*entity.Car, error)
	ListByBrand(brandID string) ([]*entity.Car, error)
	Search(filter CarFilter) ([]*entity.Car, error)
	Update(car *entity.Car) error
	Delete(id string) error
}
