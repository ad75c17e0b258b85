package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCarRequest entrada para crear o actualizar un auto. La marca se indica
// por BrandID (debe existir) o por BrandName (se crea si no existe). En update,
// si no viene ninguno se conserva la marca actual.
type CreateCarRequest struct {
	Model     string          `json:"model" validate:"required"`
	Year      int             `json:"year" validate:"required"`
	Price     decimal.Decimal `json:"price" validate:"required"`
	Mileage   int             `json:"mileage"`
	Color     string          `json:"color" validate:"required"`
	IsSold    bool            `json:"isSold"`
	BrandID   string          `json:"brandId"`
	BrandName string          `json:"brandName"`
}

// CarResponse salida de un auto con el nombre de su marca.
type CarResponse struct {
	ID        string          `json:"id"`
	Model     string          `json:"model"`
	Year      int             `json:"year"`
	Price     decimal.Decimal `json:"price"`
	Mileage   int             `json:"mileage"`
	Color     string          `json:"color"`
	IsSold    bool            `json:"isSold"`
	BrandID   string          `json:"brandId"`
	BrandName string          `json:"brandName"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// SearchCarsRequest filtros opcionales de búsqueda (query params). Punteros
// nil significan "no filtrar por este campo".
type SearchCarsRequest struct {
	Model     string
	Brand     string
	Year      *int
	Price     *decimal.Decimal
	Mileage   *int
	Color     string
	IsSold    *bool
}
