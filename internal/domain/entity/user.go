package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// User representa una cuenta del sistema. El registro siempre crea rol "User";
// las cuentas nunca se actualizan ni se eliminan por la API expuesta.
type User struct {
	ID            string
	Username      string
	Email         string // almacenado en minúsculas
	PasswordHash  string // bcrypt, nunca el password plano
	Role          string // Admin | User
	FechaCreacion time.Time
}
