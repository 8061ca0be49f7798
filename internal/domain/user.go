package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UserRole representa o papel do usuário no produto
type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

// SystemUserID é o pseudo-usuário atribuído às sugestões geradas pelos jobs
const SystemUserID = "system"

type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	FirstName    *string    `json:"first_name,omitempty"`
	LastName     *string    `json:"last_name,omitempty"`
	Role         UserRole   `json:"role"`
	Active       bool       `json:"active"`
	Deleted      bool       `json:"-"`
	DeletedAt    *time.Time `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// RegisterUserRequest é a requisição de cadastro de um novo usuário
type RegisterUserRequest struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

type Claims struct {
	UserID    string   `json:"user_id"`
	UserEmail string   `json:"user_email"`
	UserRole  UserRole `json:"user_role"`
	jwt.RegisteredClaims
}
