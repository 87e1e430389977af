package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/adscope/keyword-guardian-api/internal/domain"
	"github.com/adscope/keyword-guardian-api/internal/usecases/approving"
	"github.com/adscope/keyword-guardian-api/pkg/apiErrors"
	"github.com/adscope/keyword-guardian-api/pkg/middleware"
)

// TriggerDetection roda a detecção sob demanda para um tenant
func TriggerDetection(service approving.Approver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		tenantID := httprouter.ParamsFromContext(r.Context()).ByName("tenantID")
		if tenantID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tenant não especificado", nil)
			return
		}

		if tenantID != claims.TenantID && !claims.IsAdmin() {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Operador não pertence ao tenant informado", nil)
			return
		}

		summary, err := service.Detect(r.Context(), tenantID)
		if err != nil {
			writeApprovalError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summary)
	}
}
