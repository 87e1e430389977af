package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/adscope/keyword-guardian-api/internal/domain"
	"github.com/adscope/keyword-guardian-api/internal/usecases/approving"
	"github.com/adscope/keyword-guardian-api/internal/usecases/vault"
	"github.com/adscope/keyword-guardian-api/pkg/apiErrors"
)

type StoreCredentialRequest struct {
	Secret    json.RawMessage `json:"secret"`
	Scopes    []string        `json:"scopes,omitempty"`
	ExpiresAt *time.Time      `json:"expires_at,omitempty"`
}

// StoreCredential sela e armazena a credencial de um provedor externo do
// tenant. O segredo chega em claro no corpo e nunca é persistido nem logado
// dessa forma: só o ciphertext do envelope toca o banco.
func StoreCredential(service approving.Approver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		tenantID := params.ByName("id")
		provider := domain.CredentialProvider(params.ByName("provider"))

		if provider != domain.CredentialProviderGoogleAds && provider != domain.CredentialProviderSlack {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Provedor desconhecido", nil)
			return
		}

		var req StoreCredentialRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if len(req.Secret) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Segredo ausente", nil)
			return
		}

		err := service.StoreCredential(r.Context(), tenantID, provider, req.Secret, req.Scopes, req.ExpiresAt)
		if err != nil {
			vaultErr := &vault.VaultError{}
			if errors.As(err, &vaultErr) {
				apiErrors.WriteError(w, apiErrors.ErrCredentialFailed, "Erro ao selar a credencial", nil)
				return
			}
			writeApprovalError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
