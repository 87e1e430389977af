package authenticating

import (
	"errors"
)

// Erros específicos para o contexto de autenticação
var (
	ErrInvalidToken          = errors.New("token inválido")
	ErrExpiredToken          = errors.New("token expirado")
	ErrMissingSecret         = errors.New("segredo de assinatura não configurado")
	ErrInsufficientPrivilege = errors.New("privilégios insuficientes")
)

// IsTokenError verifica se o erro está relacionado ao token em si
func IsTokenError(err error) bool {
	return errors.Is(err, ErrInvalidToken) || errors.Is(err, ErrExpiredToken)
}
