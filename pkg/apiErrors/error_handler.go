package apiErrors

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"
)

// Códigos de erro da API
const (
	// Erros de autenticação (1000-1999)
	ErrInvalidToken          = "AUTH_001" // Token inválido
	ErrExpiredToken          = "AUTH_002" // Token expirado
	ErrInsufficientPrivilege = "AUTH_003" // Privilégios insuficientes
	ErrInvalidSignature      = "AUTH_004" // Assinatura do webhook inválida

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros do workflow de aprovação (3000-3999)
	ErrRequestNotFound  = "WFL_001" // Solicitação não encontrada
	ErrAlreadyDecided   = "WFL_002" // Solicitação já decidida por outro ator
	ErrRequestExpired   = "WFL_003" // Solicitação expirada sem decisão
	ErrExecutionFailed  = "WFL_004" // Ação aprovada mas a execução falhou
	ErrTenantNotFound   = "WFL_005" // Tenant não encontrado
	ErrInactiveTenant   = "WFL_006" // Tenant inativo
	ErrCredentialFailed = "WFL_007" // Credencial ausente ou falha de integridade no cofre

	// Erros de limitação de taxa (4000-4999)
	ErrRateLimited = "RTL_001" // Orçamento de chamadas do tenant esgotado

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidSignature:      http.StatusUnauthorized,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrRequestNotFound:       http.StatusNotFound,
	ErrAlreadyDecided:        http.StatusConflict,
	ErrRequestExpired:        http.StatusGone,
	ErrExecutionFailed:       http.StatusBadGateway,
	ErrTenantNotFound:        http.StatusNotFound,
	ErrInactiveTenant:        http.StatusForbidden,
	ErrCredentialFailed:      http.StatusConflict,
	ErrRateLimited:           http.StatusTooManyRequests,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// WriteRateLimited escreve a negação do limitador com o cabeçalho
// Retry-After preenchido pela dica de backoff.
func WriteRateLimited(w http.ResponseWriter, retryAfter time.Duration, details any) {
	seconds := int(retryAfter.Seconds())
	if seconds < 1 {
		seconds = 1
	}

	w.Header().Set("Retry-After", strconv.Itoa(seconds))
	WriteError(w, ErrRateLimited, "Orçamento de chamadas do tenant esgotado", details)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
