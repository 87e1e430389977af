package approving

import (
	"errors"
	"fmt"

	"github.com/adscope/keyword-guardian-api/internal/domain"
)

// Erros específicos para o contexto do workflow de aprovação
var (
	ErrRequestNotFound   = errors.New("solicitação de aprovação não encontrada")
	ErrTenantNotFound    = errors.New("tenant não encontrado")
	ErrInactiveTenant    = errors.New("tenant inativo")
	ErrInvalidState      = errors.New("transição de estado inválida")
	ErrExpired           = errors.New("solicitação expirada")
	ErrExecutionFailed   = errors.New("falha na execução da ação aprovada")
	ErrMissingCredential = errors.New("credencial do provedor não configurada")
)

// ApprovalError carrega o contexto da solicitação junto com o erro base.
// ErrInvalidState e ErrExpired são respostas de negócio, não falhas de
// infraestrutura: o chamador decide como apresentá-las.
type ApprovalError struct {
	Err       error                 // Erro base
	RequestID string                // Solicitação envolvida (quando aplicável)
	Status    domain.ApprovalStatus // Status corrente da solicitação
	Details   string                // Detalhes adicionais
}

// Error implementa a interface error
func (e *ApprovalError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ApprovalError) Unwrap() error {
	return e.Err
}

// NewApprovalError cria um novo ApprovalError
func NewApprovalError(baseErr error, requestID string, status domain.ApprovalStatus, details string) *ApprovalError {
	return &ApprovalError{
		Err:       baseErr,
		RequestID: requestID,
		Status:    status,
		Details:   details,
	}
}

// IsInvalidState verifica se o erro é uma transição de estado inválida
func IsInvalidState(err error) bool {
	return errors.Is(err, ErrInvalidState)
}

// IsExpired verifica se o erro é uma solicitação expirada
func IsExpired(err error) bool {
	return errors.Is(err, ErrExpired)
}

// IsExecutionFailed verifica se o erro é uma falha de execução
func IsExecutionFailed(err error) bool {
	return errors.Is(err, ErrExecutionFailed)
}
