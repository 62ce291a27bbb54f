package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity é o resultado de uma autenticação bem sucedida no provedor de identidade
type Identity struct {
	Subject string
	Email   string
}

// Claims carrega a sessão autenticada. O ID registrado (jti) identifica a sessão para
// revogação e para o cache do snapshot.
type Claims struct {
	UserEmail string `json:"email"`
	UserRole  Role   `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) SessionID() string {
	return c.ID
}

type Session struct {
	Token     string    `json:"token"`
	Role      Role      `json:"role"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
	Redirect  string    `json:"redirect"`
}
