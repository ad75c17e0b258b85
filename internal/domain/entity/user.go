package entity

import "time"

// Roles asignables a un usuario. El rol se asigna por política en el registro
// (por defecto admin, que es quien administra el catálogo).
const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

// User representa una cuenta con credenciales para acceder a la API.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
