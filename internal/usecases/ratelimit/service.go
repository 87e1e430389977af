package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adscope/keyword-guardian-api/internal/config"
	"github.com/adscope/keyword-guardian-api/internal/domain"
)

// CounterStore é o contador compartilhado entre processos. O incremento e a
// fixação da expiração precisam ser uma única operação atômica no store.
type CounterStore interface {
	IncrWithExpiry(ctx context.Context, key string, window time.Duration) (int64, error)
	TTL(ctx context.Context, key string) (time.Duration, error)
}

// Limiter controla o orçamento de chamadas externas por (tenant, recurso).
type Limiter interface {
	TryAcquire(ctx context.Context, tenantID string, resource domain.ResourceClass) (*domain.RateLimitDecision, error)
}

type Service struct {
	store   CounterStore
	budgets map[domain.ResourceClass]domain.ResourceBudget
	now     func() time.Time
}

// NewService monta o limitador com os orçamentos da configuração.
func NewService(cfg *config.Config, store CounterStore) *Service {
	rl := cfg.RateLimit

	budgets := map[domain.ResourceClass]domain.ResourceBudget{
		domain.ResourceClassAdsAPI: {
			Limit:  rl.AdsAPILimit,
			Window: time.Duration(rl.AdsAPIWindowSeconds) * time.Second,
		},
		domain.ResourceClassSlackAPI: {
			Limit:  rl.SlackAPILimit,
			Window: time.Duration(rl.SlackAPIWindowSeconds) * time.Second,
		},
		domain.ResourceClassInsightAPIStandard: {
			Limit:  rl.InsightStdLimit,
			Window: time.Duration(rl.InsightStdWindowSeconds) * time.Second,
		},
		domain.ResourceClassInsightAPIPremium: {
			Limit:  rl.InsightPremLimit,
			Window: time.Duration(rl.InsightPremWindowSeconds) * time.Second,
		},
	}

	return &Service{
		store:   store,
		budgets: budgets,
		now:     time.Now,
	}
}

// TryAcquire consome um token da janela fixa corrente do par (tenant,
// recurso). Janelas não são deslizantes: uma rajada na virada de janela pode
// passar até 2x o limite nominal, trade-off aceito pelo custo O(1).
//
// Se o store compartilhado estiver inacessível, o limitador libera a chamada
// em modo degradado (fail open) em vez de bloquear todo o tráfego do tenant
// por uma falha de infraestrutura.
func (s *Service) TryAcquire(ctx context.Context, tenantID string, resource domain.ResourceClass) (*domain.RateLimitDecision, error) {
	budget, ok := s.budgets[resource]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownResource, resource)
	}

	key := s.windowKey(tenantID, resource, budget.Window)

	count, err := s.store.IncrWithExpiry(ctx, key, budget.Window)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"tenant_id": tenantID,
			"resource":  resource,
		}).Warn("Contador compartilhado inacessível, liberando em modo degradado")

		return &domain.RateLimitDecision{Allowed: true, Degraded: true}, nil
	}

	if count > int64(budget.Limit) {
		retryAfter := s.retryAfter(ctx, key, budget.Window)

		return &domain.RateLimitDecision{
			Allowed:    false,
			RetryAfter: retryAfter,
			Remaining:  0,
		}, nil
	}

	return &domain.RateLimitDecision{
		Allowed:   true,
		Remaining: budget.Limit - int(count),
	}, nil
}

// windowKey gera a chave da janela fixa corrente: rl:{tenant}:{recurso}:{índice}
func (s *Service) windowKey(tenantID string, resource domain.ResourceClass, window time.Duration) string {
	windowIndex := s.now().Unix() / int64(window.Seconds())
	return fmt.Sprintf("rl:%s:%s:%d", tenantID, resource, windowIndex)
}

func (s *Service) retryAfter(ctx context.Context, key string, window time.Duration) time.Duration {
	ttl, err := s.store.TTL(ctx, key)
	if err != nil || ttl <= 0 {
		// Sem TTL legível: oriente o chamador pela janela inteira
		return window
	}

	return ttl
}
