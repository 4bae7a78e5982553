package entity

import "time"

// Roles de usuario del sistema.
const (
	UserRoleAdmin   = "admin"
	UserRoleVisitor = "visitante" // rol por defecto al registrarse
)

// User representa un usuario autenticable del back office.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
