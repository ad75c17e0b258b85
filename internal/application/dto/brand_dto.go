package dto

import "time"

// CreateBrandRequest entrada para crear o renombrar una marca.
type CreateBrandRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// BrandResponse salida de una marca con sus autos (composición eager).
type BrandResponse struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Cars      []CarResponse `json:"cars"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
