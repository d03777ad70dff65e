package dto

// RegisterRequest entrada para registro: username, email y password.
// El rol no es configurable desde este endpoint; siempre se asigna "User".
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=1,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest entrada para login (email + password).
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con el token JWT de sesión (2 horas de vigencia).
type LoginResponse struct {
	Token string `json:"token"`
}
