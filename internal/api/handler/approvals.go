package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/adscope/keyword-guardian-api/internal/domain"
	"github.com/adscope/keyword-guardian-api/internal/usecases/approving"
	"github.com/adscope/keyword-guardian-api/internal/usecases/ratelimit"
	"github.com/adscope/keyword-guardian-api/internal/usecases/vault"
	"github.com/adscope/keyword-guardian-api/pkg/apiErrors"
	"github.com/adscope/keyword-guardian-api/pkg/middleware"
)

const defaultListLimit = 50

type DecisionRequest struct {
	Approved bool   `json:"approved"`
	Comment  string `json:"comment,omitempty"`
}

// ListApprovals lista as solicitações do tenant do operador autenticado
func ListApprovals(service approving.Approver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var status *domain.ApprovalStatus
		if raw := r.URL.Query().Get("status"); raw != "" {
			s := domain.ApprovalStatus(raw)
			status = &s
		}

		limit := uint64(defaultListLimit)
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err != nil || parsed == 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		requests, err := service.ListRequests(claims.TenantID, status, limit)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar solicitações de aprovação")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar solicitações", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"approvals": requests,
		})
	}
}

// GetApproval retorna uma solicitação pelo ID
func GetApproval(service approving.Approver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		requestID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		request, err := service.GetRequest(requestID)
		if err != nil {
			writeApprovalError(w, err)
			return
		}

		// Operador só enxerga a partição do próprio tenant
		if request.TenantID != claims.TenantID && !claims.IsAdmin() {
			apiErrors.WriteError(w, apiErrors.ErrRequestNotFound, "Solicitação não encontrada", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(request)
	}
}

// DecideApproval registra a decisão do operador sobre uma solicitação pendente
func DecideApproval(service approving.Approver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		requestID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req DecisionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		request, err := service.Decide(r.Context(), requestID, claims.UserID, req.Approved, req.Comment)
		if err != nil {
			writeApprovalError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(request)
	}
}

// GetApprovalAudit retorna o histórico de auditoria de uma solicitação
func GetApprovalAudit(service approving.Approver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		entries, err := service.AuditTrail(requestID)
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar trilha de auditoria")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar trilha de auditoria", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"audit": entries,
		})
	}
}

// writeApprovalError traduz os erros do workflow para códigos da API.
// Condições esperadas do fluxo (expirada, já decidida, limitada) não são
// erros internos e nunca viram 500.
func writeApprovalError(w http.ResponseWriter, err error) {
	rlErr := &ratelimit.RateLimitError{}

	switch {
	case approving.IsExpired(err):
		apiErrors.WriteError(w, apiErrors.ErrRequestExpired, "Solicitação expirada sem decisão, nenhuma ação foi executada", nil)

	case approving.IsInvalidState(err):
		apiErrors.WriteError(w, apiErrors.ErrAlreadyDecided, "Solicitação já decidida", nil)

	case approving.IsExecutionFailed(err):
		apiErrors.WriteError(w, apiErrors.ErrExecutionFailed, "Aprovação registrada, mas a execução na conta de anúncios falhou", nil)

	case errors.Is(err, approving.ErrRequestNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRequestNotFound, "Solicitação não encontrada", nil)

	case errors.Is(err, approving.ErrTenantNotFound):
		apiErrors.WriteError(w, apiErrors.ErrTenantNotFound, "Tenant não encontrado", nil)

	case errors.Is(err, approving.ErrInactiveTenant):
		apiErrors.WriteError(w, apiErrors.ErrInactiveTenant, "Tenant inativo", nil)

	case errors.Is(err, approving.ErrMissingCredential), vault.IsDecryptionError(err):
		apiErrors.WriteError(w, apiErrors.ErrCredentialFailed, "Credencial do provedor ausente ou ilegível, contate o suporte", nil)

	case ratelimit.IsRateLimited(err) && errors.As(err, &rlErr):
		apiErrors.WriteRateLimited(w, rlErr.RetryAfter, nil)

	default:
		logrus.WithError(err).Error("Erro inesperado no workflow de aprovação")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno", nil)
	}
}
