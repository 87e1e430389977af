package ratelimit

import (
	"errors"
	"fmt"
	"time"
)

// Erros específicos para o contexto de limitação de taxa
var (
	ErrRateLimited     = errors.New("limite de requisições excedido")
	ErrUnknownResource = errors.New("classe de recurso desconhecida")
)

// RateLimitError carrega a dica de backoff para o chamador. É uma condição
// recuperável: o chamador deve aguardar RetryAfter e tentar novamente, não
// tratar como falha fatal.
type RateLimitError struct {
	TenantID   string
	Resource   string
	RetryAfter time.Duration
}

// Error implementa a interface error
func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s: tenant=%s recurso=%s retry_after=%s",
		ErrRateLimited.Error(), e.TenantID, e.Resource, e.RetryAfter)
}

// Unwrap retorna o erro subjacente
func (e *RateLimitError) Unwrap() error {
	return ErrRateLimited
}

// IsRateLimited verifica se o erro é uma negação do limitador
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}
