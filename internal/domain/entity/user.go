package entity

import "time"

// Papéis válidos para User.
const (
	RoleAdmin    = "admin"
	RoleContador = "contador"
	RoleCliente  = "cliente"
)

// Situações do usuário.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User usuário do simulador. O histórico de simulações pertence ao usuário.
type User struct {
	ID           string
	Email        string
	PasswordHash string // hash bcrypt, nunca a senha em texto
	Name         string
	Role         string // admin, contador, cliente
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
