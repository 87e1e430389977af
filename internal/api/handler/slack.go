package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adscope/keyword-guardian-api/infrastructure/integrator/slack"
	slackdomain "github.com/adscope/keyword-guardian-api/infrastructure/integrator/slack/domain"
	"github.com/adscope/keyword-guardian-api/internal/config"
	"github.com/adscope/keyword-guardian-api/internal/usecases/approving"
	"github.com/adscope/keyword-guardian-api/pkg/apiErrors"
)

const maxInteractionBody = 1 << 20 // 1 MiB

// SlackInteractions recebe o callback dos botões de aprovação. A rota é
// pública no sentido de não exigir JWT: a autenticidade vem da assinatura
// HMAC que o Slack calcula com o signing secret compartilhado.
func SlackInteractions(service approving.Decider, cfg *config.Config) http.HandlerFunc {
	maxAge := time.Duration(cfg.Slack.MaxAgeSeconds) * time.Second

	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxInteractionBody))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao ler o corpo da requisição", nil)
			return
		}

		timestamp := r.Header.Get("X-Slack-Request-Timestamp")
		signature := r.Header.Get("X-Slack-Signature")

		if !slack.VerifySignature(string(body), timestamp, signature, cfg.Slack.SigningSecret, maxAge) {
			logrus.Warn("Callback do Slack com assinatura inválida, descartando")
			apiErrors.WriteError(w, apiErrors.ErrInvalidSignature, "Assinatura inválida", nil)
			return
		}

		values, err := url.ParseQuery(string(body))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo do callback ilegível", nil)
			return
		}

		payload := &slackdomain.InteractionPayload{}
		if err := json.Unmarshal([]byte(values.Get("payload")), payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Payload do callback ilegível", nil)
			return
		}

		if len(payload.Actions) == 0 {
			// Callback que não é clique de botão (ex.: abertura de modal)
			w.WriteHeader(http.StatusOK)
			return
		}

		action := payload.Actions[0]
		requestID := action.Value

		var approved bool
		switch action.ActionID {
		case slack.ActionIDApprove:
			approved = true
		case slack.ActionIDReject:
			approved = false
		default:
			w.WriteHeader(http.StatusOK)
			return
		}

		actorID := "slack:" + payload.User.ID

		_, err = service.Decide(r.Context(), requestID, actorID, approved, "")
		if err != nil {
			// Slack reenviaria em caso de não-200; condições de corrida e
			// expiração são desfechos legítimos, respondidos no canal
			logrus.WithFields(logrus.Fields{
				"request_id": requestID,
				"actor":      actorID,
				"error":      err.Error(),
			}).Info("Decisão via Slack não aplicada")

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"text": decisionOutcomeText(err),
			})
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

func decisionOutcomeText(err error) string {
	switch {
	case approving.IsExpired(err):
		return "Esta solicitação expirou antes da decisão, nenhuma ação foi executada."
	case approving.IsInvalidState(err):
		return "Esta solicitação já foi decidida por outra pessoa."
	case approving.IsExecutionFailed(err):
		return "Aprovação registrada, mas a execução na conta de anúncios falhou."
	}
	return "Não foi possível aplicar a decisão. Tente novamente."
}
