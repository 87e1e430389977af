package domain

import (
	"time"
)

// ResourceClass identifica a API externa cujo orçamento de chamadas é
// controlado pelo limitador por tenant.
type ResourceClass string

const (
	ResourceClassAdsAPI             ResourceClass = "ads-api"
	ResourceClassSlackAPI           ResourceClass = "slack-api"
	ResourceClassInsightAPIStandard ResourceClass = "insight-api-standard"
	ResourceClassInsightAPIPremium  ResourceClass = "insight-api-premium"
)

// ResourceBudget é o par (limite, janela) de uma classe de recurso.
type ResourceBudget struct {
	Limit  int           `json:"limit"`
	Window time.Duration `json:"window"`
}

// RateLimitDecision é o resultado de uma tentativa de aquisição de token.
// Quando negado, RetryAfter carrega o TTL restante da janela corrente como
// dica de backoff para o chamador. Degraded indica que o store compartilhado
// estava inacessível e o limitador liberou a chamada em modo degradado.
type RateLimitDecision struct {
	Allowed    bool          `json:"allowed"`
	RetryAfter time.Duration `json:"retry_after"`
	Remaining  int           `json:"remaining"`
	Degraded   bool          `json:"degraded"`
}
