package entity

import "time"

// User representa un usuario registrado del marketplace.
type User struct {
	ID            int64
	Nombre        string
	Email         string
	PasswordHash  string // bcrypt hash, nunca plano en dominio después de persistir
	FechaRegistro time.Time
}
