package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Papéis de operador aceitos nos endpoints administrativos.
const (
	RoleAdmin    = 1
	RoleOperator = 2
)

// Claims são as credenciais do operador autenticado via JWT nos endpoints
// de comando. O TenantID delimita a partição visível ao operador.
type Claims struct {
	UserID   string
	UserName string
	TenantID string
	RoleID   int
	jwt.RegisteredClaims
}

func (c *Claims) IsAdmin() bool {
	return c.RoleID == RoleAdmin
}
