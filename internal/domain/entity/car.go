package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Car representa un auto del catálogo. Siempre referencia una marca existente
// (BrandID es FK obligatoria). BrandName se carga con JOIN al leer.
type Car struct {
	ID        string
	Model     string
	Year      int
	Price     decimal.Decimal
	Mileage   int
	Color     string
	IsSold    bool
	BrandID   string
	BrandName string
	CreatedAt time.Time
	UpdatedAt time.Time
}
