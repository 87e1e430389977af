package ratelimit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adscope/keyword-guardian-api/internal/config"
	"github.com/adscope/keyword-guardian-api/internal/domain"
)

// fakeCounterStore simula o contador compartilhado em memória para os testes
// do limitador.
type fakeCounterStore struct {
	mu       sync.Mutex
	counts   map[string]int64
	ttls     map[string]time.Duration
	failIncr error
}

func newFakeCounterStore() *fakeCounterStore {
	return &fakeCounterStore{
		counts: make(map[string]int64),
		ttls:   make(map[string]time.Duration),
	}
}

func (f *fakeCounterStore) IncrWithExpiry(_ context.Context, key string, window time.Duration) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failIncr != nil {
		return 0, f.failIncr
	}

	f.counts[key]++
	if f.counts[key] == 1 {
		f.ttls[key] = window
	}

	return f.counts[key], nil
}

func (f *fakeCounterStore) TTL(_ context.Context, key string) (time.Duration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.ttls[key], nil
}

func testConfig() *config.Config {
	return &config.Config{
		RateLimit: config.RateLimit{
			AdsAPILimit:              100,
			AdsAPIWindowSeconds:      60,
			SlackAPILimit:            50,
			SlackAPIWindowSeconds:    60,
			InsightStdLimit:          60,
			InsightStdWindowSeconds:  60,
			InsightPremLimit:         10,
			InsightPremWindowSeconds: 60,
		},
	}
}

func TestService_TryAcquire_DeniesBeyondLimit(t *testing.T) {
	store := newFakeCounterStore()
	svc := NewService(testConfig(), store)
	// Congela o relógio para as chamadas caírem todas na mesma janela
	svc.now = func() time.Time { return time.Date(2026, 8, 1, 12, 0, 30, 0, time.UTC) }

	ctx := context.Background()

	// As 100 primeiras chamadas passam
	for i := 1; i <= 100; i++ {
		decision, err := svc.TryAcquire(ctx, "tenant-T", domain.ResourceClassAdsAPI)
		require.NoError(t, err)
		assert.True(t, decision.Allowed, "chamada %d deveria passar", i)
		assert.Equal(t, 100-i, decision.Remaining)
	}

	// A 101ª é negada com dica de backoff dentro da janela
	decision, err := svc.TryAcquire(ctx, "tenant-T", domain.ResourceClassAdsAPI)
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Greater(t, decision.RetryAfter, time.Duration(0))
	assert.LessOrEqual(t, decision.RetryAfter, 60*time.Second)
}

func TestService_TryAcquire_TenantsAreIndependent(t *testing.T) {
	store := newFakeCounterStore()

	cfg := testConfig()
	cfg.RateLimit.InsightPremLimit = 2

	svc := NewService(cfg, store)
	svc.now = func() time.Time { return time.Date(2026, 8, 1, 12, 0, 30, 0, time.UTC) }

	ctx := context.Background()

	// Esgota o orçamento do tenant A
	for i := 0; i < 2; i++ {
		decision, err := svc.TryAcquire(ctx, "tenant-A", domain.ResourceClassInsightAPIPremium)
		require.NoError(t, err)
		assert.True(t, decision.Allowed)
	}

	denied, err := svc.TryAcquire(ctx, "tenant-A", domain.ResourceClassInsightAPIPremium)
	require.NoError(t, err)
	assert.False(t, denied.Allowed)

	// O orçamento do tenant B permanece intacto
	decision, err := svc.TryAcquire(ctx, "tenant-B", domain.ResourceClassInsightAPIPremium)
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
}

func TestService_TryAcquire_ResourcesAreIndependent(t *testing.T) {
	store := newFakeCounterStore()

	cfg := testConfig()
	cfg.RateLimit.AdsAPILimit = 1

	svc := NewService(cfg, store)
	svc.now = func() time.Time { return time.Date(2026, 8, 1, 12, 0, 30, 0, time.UTC) }

	ctx := context.Background()

	_, err := svc.TryAcquire(ctx, "tenant-T", domain.ResourceClassAdsAPI)
	require.NoError(t, err)

	denied, err := svc.TryAcquire(ctx, "tenant-T", domain.ResourceClassAdsAPI)
	require.NoError(t, err)
	assert.False(t, denied.Allowed)

	decision, err := svc.TryAcquire(ctx, "tenant-T", domain.ResourceClassSlackAPI)
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
}

func TestService_TryAcquire_NewWindowResetsBudget(t *testing.T) {
	store := newFakeCounterStore()

	cfg := testConfig()
	cfg.RateLimit.AdsAPILimit = 1

	svc := NewService(cfg, store)

	current := time.Date(2026, 8, 1, 12, 0, 30, 0, time.UTC)
	svc.now = func() time.Time { return current }

	ctx := context.Background()

	_, err := svc.TryAcquire(ctx, "tenant-T", domain.ResourceClassAdsAPI)
	require.NoError(t, err)

	denied, err := svc.TryAcquire(ctx, "tenant-T", domain.ResourceClassAdsAPI)
	require.NoError(t, err)
	assert.False(t, denied.Allowed)

	// Na janela seguinte o contador recomeça
	current = current.Add(60 * time.Second)

	decision, err := svc.TryAcquire(ctx, "tenant-T", domain.ResourceClassAdsAPI)
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
}

func TestService_TryAcquire_FailsOpenWhenStoreUnreachable(t *testing.T) {
	store := newFakeCounterStore()
	store.failIncr = errors.New("connection refused")

	svc := NewService(testConfig(), store)

	decision, err := svc.TryAcquire(context.Background(), "tenant-T", domain.ResourceClassAdsAPI)
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.True(t, decision.Degraded)
}

func TestService_TryAcquire_UnknownResource(t *testing.T) {
	svc := NewService(testConfig(), newFakeCounterStore())

	_, err := svc.TryAcquire(context.Background(), "tenant-T", domain.ResourceClass("nao-existe"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownResource)
}
