package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/adscope/keyword-guardian-api/infrastructure/repository/mocks"
	"github.com/adscope/keyword-guardian-api/internal/domain"
	"github.com/adscope/keyword-guardian-api/internal/usecases/approving"
	"github.com/adscope/keyword-guardian-api/internal/usecases/ratelimit"
)

// stubDetector registra os tenants visitados e devolve o resultado configurado
type stubDetector struct {
	visited   []string
	summaries map[string]*approving.DetectionSummary
	errs      map[string]error
}

func (d *stubDetector) Detect(_ context.Context, tenantID string) (*approving.DetectionSummary, error) {
	d.visited = append(d.visited, tenantID)

	if err, ok := d.errs[tenantID]; ok {
		return nil, err
	}

	return d.summaries[tenantID], nil
}

func TestDetectionSyncService_detectAllTenants(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTenantRepo := mocks.NewMockTenantRepository(ctrl)

	tenants := []*domain.Tenant{
		{ID: "tenant-1", Status: domain.TenantStatusActive},
		{ID: "tenant-2", Status: domain.TenantStatusActive},
		{ID: "tenant-3", Status: domain.TenantStatusActive},
	}

	mockTenantRepo.EXPECT().ListActiveTenants().Return(tenants, nil)

	detector := &stubDetector{
		summaries: map[string]*approving.DetectionSummary{
			"tenant-1": {TenantID: "tenant-1", Detected: 2},
			"tenant-3": {TenantID: "tenant-3", Detected: 1},
		},
		errs: map[string]error{
			// Tenant limitado não derruba a rodada: os demais continuam
			"tenant-2": &ratelimit.RateLimitError{TenantID: "tenant-2", Resource: "ads-api", RetryAfter: 30 * time.Second},
		},
	}

	service := &DetectionSyncService{
		config: DetectionSyncConfig{
			TenantTimeoutSeconds: 5,
			SyncEnabled:          true,
		},
		tenantRepo: mockTenantRepo,
		detector:   detector,
	}

	service.detectAllTenants()

	assert.Equal(t, []string{"tenant-1", "tenant-2", "tenant-3"}, detector.visited)
}

func TestDetectionSyncService_detectAllTenants_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTenantRepo := mocks.NewMockTenantRepository(ctrl)
	mockTenantRepo.EXPECT().ListActiveTenants().Return(nil, errors.New("conexão recusada"))

	detector := &stubDetector{}

	service := &DetectionSyncService{
		config:     DetectionSyncConfig{TenantTimeoutSeconds: 5, SyncEnabled: true},
		tenantRepo: mockTenantRepo,
		detector:   detector,
	}

	service.detectAllTenants()

	assert.Empty(t, detector.visited)
}

func TestDetectionSyncService_SkipsWhenAlreadyRunning(t *testing.T) {
	service := &DetectionSyncService{
		config:      DetectionSyncConfig{TenantTimeoutSeconds: 5, SyncEnabled: true},
		detector:    &stubDetector{},
		syncRunning: true,
	}

	// Nenhuma expectativa no repositório: a rodada concorrente retorna cedo
	service.detectAllTenants()

	status := service.GetSyncStatus()
	assert.Equal(t, true, status["running"])
}
