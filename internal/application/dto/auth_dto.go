package dto

// RegisterRequest entrada para registro: username, password y confirmación.
// Role es opcional y se valida contra el enumerado (por defecto admin).
type RegisterRequest struct {
	Username        string `json:"username" validate:"required,min=3,max=100"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	Role            string `json:"role" validate:"omitempty,oneof=admin viewer"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con el token JWT firmado.
type LoginResponse struct {
	Token string `json:"token"`
}

// ChangePasswordRequest entrada para cambio de contraseña (requiere token válido).
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}
