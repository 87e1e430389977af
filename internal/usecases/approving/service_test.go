package approving

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	googleadsmocks "github.com/adscope/keyword-guardian-api/infrastructure/integrator/googleads/mocks"
	slackmocks "github.com/adscope/keyword-guardian-api/infrastructure/integrator/slack/mocks"
	"github.com/adscope/keyword-guardian-api/infrastructure/repository/mocks"
	"github.com/adscope/keyword-guardian-api/internal/config"
	"github.com/adscope/keyword-guardian-api/internal/domain"
	"github.com/adscope/keyword-guardian-api/internal/usecases/ratelimit"
	"github.com/adscope/keyword-guardian-api/internal/usecases/vault"
)

var fixedNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

// stubLimiter devolve sempre a mesma decisão: o comportamento do limitador
// real é coberto pelos testes do próprio pacote ratelimit.
type stubLimiter struct {
	decision *domain.RateLimitDecision
	err      error
}

func (l *stubLimiter) TryAcquire(_ context.Context, _ string, _ domain.ResourceClass) (*domain.RateLimitDecision, error) {
	return l.decision, l.err
}

func allowAll() *stubLimiter {
	return &stubLimiter{decision: &domain.RateLimitDecision{Allowed: true, Remaining: 99}}
}

func denyAll(retryAfter time.Duration) *stubLimiter {
	return &stubLimiter{decision: &domain.RateLimitDecision{Allowed: false, RetryAfter: retryAfter}}
}

func testVault(t *testing.T) *vault.Service {
	t.Helper()

	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}

	cfg := &config.Config{Vault: config.Vault{MasterKey: base64.StdEncoding.EncodeToString(key)}}

	sealer, err := vault.NewService(cfg)
	require.NoError(t, err)

	return sealer
}

func sealedCredential(t *testing.T, sealer *vault.Service, tenantID string, provider domain.CredentialProvider, plaintext string) *domain.EncryptedCredential {
	t.Helper()

	cred, err := sealer.Store(tenantID, provider, []byte(plaintext))
	require.NoError(t, err)

	return cred
}

type serviceMocks struct {
	tenantRepo     *mocks.MockTenantRepository
	credentialRepo *mocks.MockCredentialRepository
	candidateRepo  *mocks.MockCandidateRepository
	approvalRepo   *mocks.MockApprovalRepository
	auditRepo      *mocks.MockAuditRepository
	adsService     *googleadsmocks.MockGoogleAdsIntegrator
	slackService   *slackmocks.MockSlackIntegrator
}

func newTestService(t *testing.T, ctrl *gomock.Controller, limiter ratelimit.Limiter) (*Service, *serviceMocks, *vault.Service) {
	t.Helper()

	m := &serviceMocks{
		tenantRepo:     mocks.NewMockTenantRepository(ctrl),
		credentialRepo: mocks.NewMockCredentialRepository(ctrl),
		candidateRepo:  mocks.NewMockCandidateRepository(ctrl),
		approvalRepo:   mocks.NewMockApprovalRepository(ctrl),
		auditRepo:      mocks.NewMockAuditRepository(ctrl),
		adsService:     googleadsmocks.NewMockGoogleAdsIntegrator(ctrl),
		slackService:   slackmocks.NewMockSlackIntegrator(ctrl),
	}

	sealer := testVault(t)

	service := NewService(
		&config.Config{},
		sealer,
		limiter,
		m.adsService,
		m.slackService,
		m.tenantRepo,
		m.credentialRepo,
		m.candidateRepo,
		m.approvalRepo,
		m.auditRepo,
	).WithClock(func() time.Time { return fixedNow })

	return service, m, sealer
}

func activeTenant() *domain.Tenant {
	return &domain.Tenant{
		ID:            "tenant-1",
		WorkspaceID:   "T0001",
		Name:          "Loja Exemplo",
		AdsCustomerID: "1234567890",
		Timezone:      "America/Sao_Paulo",
		Status:        domain.TenantStatusActive,
	}
}

func pendingRequest(expiresAt time.Time) *domain.ApprovalRequest {
	payload, _ := (&domain.ActionPayload{
		KeywordText: "sapato de graça",
		CampaignID:  "cmp-1",
		AdGroupID:   "adg-1",
		MatchType:   "EXACT",
	}).Serialize()

	return &domain.ApprovalRequest{
		ID:            "req-1",
		TenantID:      "tenant-1",
		CandidateID:   "cand-1",
		ActionType:    domain.ActionTypeAddNegativeKeyword,
		ActionPayload: payload,
		Status:        domain.ApprovalStatusPending,
		CreatedAt:     fixedNow.Add(-time.Hour),
		ExpiresAt:     expiresAt,
	}
}

func TestService_Detect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m, sealer := newTestService(t, ctrl, allowAll())

	tenant := activeTenant()
	// Sem canal do Slack: a detecção cria a solicitação sem notificar
	tenant.SlackChannelID = ""

	m.tenantRepo.EXPECT().GetTenantByID("tenant-1").Return(tenant, nil)
	m.tenantRepo.EXPECT().GetThresholdSettings("tenant-1").Return(nil, nil)

	m.credentialRepo.EXPECT().
		GetActiveCredential("tenant-1", domain.CredentialProviderGoogleAds).
		Return(sealedCredential(t, sealer, "tenant-1", domain.CredentialProviderGoogleAds, `{"access_token":"ya29.token"}`), nil)

	rows := []*domain.SearchTermMetrics{
		{
			// Qualifica: gasto e cliques acima do mínimo, zero conversões
			SearchTerm:  "sapato de graça",
			CampaignID:  "cmp-1",
			AdGroupID:   "adg-1",
			Impressions: 500,
			Clicks:      40,
			CostMicros:  25_000_000,
			Conversions: 0,
		},
		{
			// Não qualifica: converteu
			SearchTerm:  "sapato de couro",
			CampaignID:  "cmp-1",
			AdGroupID:   "adg-1",
			Impressions: 800,
			Clicks:      60,
			CostMicros:  30_000_000,
			Conversions: 4,
		},
		{
			// Não qualifica: sem atividade mínima
			SearchTerm:  "sapato azul",
			CampaignID:  "cmp-1",
			AdGroupID:   "adg-1",
			Impressions: 12,
			Clicks:      1,
			CostMicros:  100_000,
			Conversions: 0,
		},
	}

	m.adsService.EXPECT().
		GetSearchTerms(gomock.Any(), "ya29.token", "1234567890", gomock.Any()).
		Return(rows, nil)

	m.candidateRepo.EXPECT().
		RecentlyIgnoredTerms("tenant-1", gomock.Any()).
		Return(map[string]struct{}{}, nil)

	m.candidateRepo.EXPECT().
		HasUndecidedRequest("tenant-1", "1234567890", "sapato de graça", "cmp-1").
		Return(false, nil)

	var savedCandidate *domain.KeywordCandidate
	m.candidateRepo.EXPECT().
		Save(gomock.Any()).
		DoAndReturn(func(c *domain.KeywordCandidate) error {
			savedCandidate = c
			return nil
		})

	var createdRequest *domain.ApprovalRequest
	m.approvalRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(r *domain.ApprovalRequest) error {
			createdRequest = r
			return nil
		})

	m.auditRepo.EXPECT().Append(gomock.Any()).Return(nil).Times(2)

	summary, err := service.Detect(context.Background(), "tenant-1")
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Evaluated)
	assert.Equal(t, 1, summary.Detected)
	assert.Equal(t, 0, summary.Skipped)
	assert.Equal(t, 0, summary.Notified)

	require.NotNil(t, savedCandidate)
	assert.Equal(t, domain.DetectionReasonZeroConversions, savedCandidate.Reason)
	assert.Equal(t, "sapato de graça", savedCandidate.SearchTerm)

	require.NotNil(t, createdRequest)
	assert.Equal(t, domain.ApprovalStatusPending, createdRequest.Status)
	assert.Equal(t, savedCandidate.ID, createdRequest.CandidateID)
	assert.Equal(t, fixedNow.Add(24*time.Hour), createdRequest.ExpiresAt)
}

func TestService_Detect_Idempotency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m, sealer := newTestService(t, ctrl, allowAll())

	tenant := activeTenant()

	m.tenantRepo.EXPECT().GetTenantByID("tenant-1").Return(tenant, nil)
	m.tenantRepo.EXPECT().GetThresholdSettings("tenant-1").Return(nil, nil)

	m.credentialRepo.EXPECT().
		GetActiveCredential("tenant-1", domain.CredentialProviderGoogleAds).
		Return(sealedCredential(t, sealer, "tenant-1", domain.CredentialProviderGoogleAds, `{"access_token":"ya29.token"}`), nil)

	rows := []*domain.SearchTermMetrics{
		{SearchTerm: "termo pendente", CampaignID: "cmp-1", AdGroupID: "adg-1", Impressions: 500, Clicks: 30, CostMicros: 15_000_000},
		{SearchTerm: "termo rejeitado ontem", CampaignID: "cmp-1", AdGroupID: "adg-1", Impressions: 500, Clicks: 30, CostMicros: 15_000_000},
	}

	m.adsService.EXPECT().
		GetSearchTerms(gomock.Any(), "ya29.token", "1234567890", gomock.Any()).
		Return(rows, nil)

	// "termo rejeitado ontem" está na janela de cooldown
	m.candidateRepo.EXPECT().
		RecentlyIgnoredTerms("tenant-1", gomock.Any()).
		Return(map[string]struct{}{"termo rejeitado ontem": {}}, nil)

	// "termo pendente" já tem solicitação viva
	m.candidateRepo.EXPECT().
		HasUndecidedRequest("tenant-1", "1234567890", "termo pendente", "cmp-1").
		Return(true, nil)

	summary, err := service.Detect(context.Background(), "tenant-1")
	require.NoError(t, err)

	// Nenhum Save nem Create esperado: rodar de novo não duplica nada
	assert.Equal(t, 2, summary.Evaluated)
	assert.Equal(t, 0, summary.Detected)
	assert.Equal(t, 2, summary.Skipped)
}

func TestService_Detect_RateLimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m, _ := newTestService(t, ctrl, denyAll(42*time.Second))

	m.tenantRepo.EXPECT().GetTenantByID("tenant-1").Return(activeTenant(), nil)
	m.tenantRepo.EXPECT().GetThresholdSettings("tenant-1").Return(nil, nil)

	_, err := service.Detect(context.Background(), "tenant-1")
	require.Error(t, err)

	assert.True(t, ratelimit.IsRateLimited(err))

	rlErr := &ratelimit.RateLimitError{}
	require.ErrorAs(t, err, &rlErr)
	assert.Equal(t, 42*time.Second, rlErr.RetryAfter)
}

func TestService_Detect_InactiveTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m, _ := newTestService(t, ctrl, allowAll())

	tenant := activeTenant()
	tenant.Status = domain.TenantStatusInactive

	m.tenantRepo.EXPECT().GetTenantByID("tenant-1").Return(tenant, nil)

	_, err := service.Detect(context.Background(), "tenant-1")
	assert.ErrorIs(t, err, ErrInactiveTenant)
}

func TestService_Decide_Approve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m, sealer := newTestService(t, ctrl, allowAll())

	request := pendingRequest(fixedNow.Add(time.Hour))

	m.approvalRepo.EXPECT().GetByID("req-1").Return(request, nil)

	m.approvalRepo.EXPECT().
		UpdateStatusCAS("req-1", domain.ApprovalStatusPending, domain.ApprovalStatusApproved, gomock.Any()).
		DoAndReturn(func(_ string, _, _ domain.ApprovalStatus, change *domain.ApprovalStatusChange) (bool, error) {
			require.NotNil(t, change.DecidedAt)
			require.NotNil(t, change.DecidedBy)
			assert.Equal(t, "user-9", *change.DecidedBy)
			return true, nil
		})

	m.tenantRepo.EXPECT().GetTenantByID("tenant-1").Return(activeTenant(), nil)

	m.credentialRepo.EXPECT().
		GetActiveCredential("tenant-1", domain.CredentialProviderGoogleAds).
		Return(sealedCredential(t, sealer, "tenant-1", domain.CredentialProviderGoogleAds, `{"access_token":"ya29.token"}`), nil)

	m.adsService.EXPECT().
		ApplyExclusion(gomock.Any(), "ya29.token", "1234567890", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, payload *domain.ActionPayload, idempotencyKey string) (*domain.ExecutionResult, error) {
			assert.Equal(t, "sapato de graça", payload.KeywordText)
			assert.NotEmpty(t, idempotencyKey)
			return &domain.ExecutionResult{Success: true, IdempotencyKey: idempotencyKey}, nil
		})

	m.approvalRepo.EXPECT().
		UpdateStatusCAS("req-1", domain.ApprovalStatusApproved, domain.ApprovalStatusExecuted, gomock.Any()).
		Return(true, nil)

	executed := pendingRequest(fixedNow.Add(time.Hour))
	executed.Status = domain.ApprovalStatusExecuted
	m.approvalRepo.EXPECT().GetByID("req-1").Return(executed, nil)

	m.auditRepo.EXPECT().Append(gomock.Any()).Return(nil).Times(2)

	result, err := service.Decide(context.Background(), "req-1", "user-9", true, "pode excluir")
	require.NoError(t, err)

	assert.Equal(t, domain.ApprovalStatusExecuted, result.Status)
}

func TestService_Decide_Reject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m, _ := newTestService(t, ctrl, allowAll())

	request := pendingRequest(fixedNow.Add(time.Hour))

	m.approvalRepo.EXPECT().GetByID("req-1").Return(request, nil)

	m.approvalRepo.EXPECT().
		UpdateStatusCAS("req-1", domain.ApprovalStatusPending, domain.ApprovalStatusRejected, gomock.Any()).
		Return(true, nil)

	rejected := pendingRequest(fixedNow.Add(time.Hour))
	rejected.Status = domain.ApprovalStatusRejected
	m.approvalRepo.EXPECT().GetByID("req-1").Return(rejected, nil)

	m.auditRepo.EXPECT().Append(gomock.Any()).Return(nil)

	// Nenhuma chamada ao serviço de anúncios: rejeição nunca executa nada
	result, err := service.Decide(context.Background(), "req-1", "user-9", false, "termo relevante")
	require.NoError(t, err)

	assert.Equal(t, domain.ApprovalStatusRejected, result.Status)
}

func TestService_Decide_LostRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m, _ := newTestService(t, ctrl, allowAll())

	request := pendingRequest(fixedNow.Add(time.Hour))

	m.approvalRepo.EXPECT().GetByID("req-1").Return(request, nil)

	// Outro decisor commitou primeiro: o compare-and-set devolve false
	m.approvalRepo.EXPECT().
		UpdateStatusCAS("req-1", domain.ApprovalStatusPending, domain.ApprovalStatusApproved, gomock.Any()).
		Return(false, nil)

	_, err := service.Decide(context.Background(), "req-1", "user-9", true, "")
	assert.True(t, IsInvalidState(err))
}

func TestService_Decide_AfterExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m, _ := newTestService(t, ctrl, allowAll())

	// Prazo venceu uma hora atrás; a varredura ainda não passou
	request := pendingRequest(fixedNow.Add(-time.Hour))

	m.approvalRepo.EXPECT().GetByID("req-1").Return(request, nil)

	m.approvalRepo.EXPECT().
		UpdateStatusCAS("req-1", domain.ApprovalStatusPending, domain.ApprovalStatusExpired, gomock.Any()).
		Return(true, nil)

	m.auditRepo.EXPECT().Append(gomock.Any()).Return(nil)

	// A aprovação tardia é recusada e nada é executado na conta externa
	_, err := service.Decide(context.Background(), "req-1", "user-9", true, "")
	assert.True(t, IsExpired(err))
}

func TestService_Decide_ExpiryBoundary(t *testing.T) {
	t.Run("um minuto antes do prazo ainda executa", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m, sealer := newTestService(t, ctrl, allowAll())

		request := pendingRequest(fixedNow.Add(time.Minute))

		m.approvalRepo.EXPECT().GetByID("req-1").Return(request, nil)
		m.approvalRepo.EXPECT().
			UpdateStatusCAS("req-1", domain.ApprovalStatusPending, domain.ApprovalStatusApproved, gomock.Any()).
			Return(true, nil)
		m.tenantRepo.EXPECT().GetTenantByID("tenant-1").Return(activeTenant(), nil)
		m.credentialRepo.EXPECT().
			GetActiveCredential("tenant-1", domain.CredentialProviderGoogleAds).
			Return(sealedCredential(t, sealer, "tenant-1", domain.CredentialProviderGoogleAds, `{"access_token":"ya29.token"}`), nil)
		m.adsService.EXPECT().
			ApplyExclusion(gomock.Any(), "ya29.token", "1234567890", gomock.Any(), gomock.Any()).
			Return(&domain.ExecutionResult{Success: true}, nil)
		m.approvalRepo.EXPECT().
			UpdateStatusCAS("req-1", domain.ApprovalStatusApproved, domain.ApprovalStatusExecuted, gomock.Any()).
			Return(true, nil)

		executed := pendingRequest(fixedNow.Add(time.Minute))
		executed.Status = domain.ApprovalStatusExecuted
		m.approvalRepo.EXPECT().GetByID("req-1").Return(executed, nil)
		m.auditRepo.EXPECT().Append(gomock.Any()).Return(nil).Times(2)

		result, err := service.Decide(context.Background(), "req-1", "user-9", true, "")
		require.NoError(t, err)
		assert.Equal(t, domain.ApprovalStatusExecuted, result.Status)
	})

	t.Run("um minuto depois do prazo expira sem executar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, m, _ := newTestService(t, ctrl, allowAll())

		request := pendingRequest(fixedNow.Add(-time.Minute))

		m.approvalRepo.EXPECT().GetByID("req-1").Return(request, nil)
		m.approvalRepo.EXPECT().
			UpdateStatusCAS("req-1", domain.ApprovalStatusPending, domain.ApprovalStatusExpired, gomock.Any()).
			Return(true, nil)
		m.auditRepo.EXPECT().Append(gomock.Any()).Return(nil)

		_, err := service.Decide(context.Background(), "req-1", "user-9", true, "")
		assert.True(t, IsExpired(err))
	})
}

func TestService_Decide_NonPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m, _ := newTestService(t, ctrl, allowAll())

	tests := []struct {
		name   string
		status domain.ApprovalStatus
	}{
		{name: "já executada", status: domain.ApprovalStatusExecuted},
		{name: "já rejeitada", status: domain.ApprovalStatusRejected},
		{name: "já expirada", status: domain.ApprovalStatusExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := pendingRequest(fixedNow.Add(time.Hour))
			request.Status = tt.status

			m.approvalRepo.EXPECT().GetByID("req-1").Return(request, nil)

			_, err := service.Decide(context.Background(), "req-1", "user-9", true, "")
			assert.True(t, IsInvalidState(err))
		})
	}
}

func TestService_Decide_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m, _ := newTestService(t, ctrl, allowAll())

	m.approvalRepo.EXPECT().GetByID("req-404").Return(nil, nil)

	_, err := service.Decide(context.Background(), "req-404", "user-9", true, "")
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestService_Decide_ExecutionFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m, sealer := newTestService(t, ctrl, allowAll())

	request := pendingRequest(fixedNow.Add(time.Hour))

	m.approvalRepo.EXPECT().GetByID("req-1").Return(request, nil)

	m.approvalRepo.EXPECT().
		UpdateStatusCAS("req-1", domain.ApprovalStatusPending, domain.ApprovalStatusApproved, gomock.Any()).
		Return(true, nil)

	m.tenantRepo.EXPECT().GetTenantByID("tenant-1").Return(activeTenant(), nil)

	m.credentialRepo.EXPECT().
		GetActiveCredential("tenant-1", domain.CredentialProviderGoogleAds).
		Return(sealedCredential(t, sealer, "tenant-1", domain.CredentialProviderGoogleAds, `{"access_token":"ya29.token"}`), nil)

	m.adsService.EXPECT().
		ApplyExclusion(gomock.Any(), "ya29.token", "1234567890", gomock.Any(), gomock.Any()).
		Return(&domain.ExecutionResult{Success: false, Detail: "CAMPAIGN_NOT_FOUND"}, nil)

	var failureChange *domain.ApprovalStatusChange
	m.approvalRepo.EXPECT().
		UpdateStatusCAS("req-1", domain.ApprovalStatusApproved, domain.ApprovalStatusExecutionFailed, gomock.Any()).
		DoAndReturn(func(_ string, _, _ domain.ApprovalStatus, change *domain.ApprovalStatusChange) (bool, error) {
			failureChange = change
			return true, nil
		})

	m.auditRepo.EXPECT().Append(gomock.Any()).Return(nil).Times(2)

	_, err := service.Decide(context.Background(), "req-1", "user-9", true, "")
	require.Error(t, err)

	assert.True(t, IsExecutionFailed(err))
	require.NotNil(t, failureChange)
	require.NotNil(t, failureChange.Result)
	assert.False(t, failureChange.Result.Success)
	assert.Equal(t, "CAMPAIGN_NOT_FOUND", failureChange.Result.Detail)
}

func TestService_Decide_DecryptionFailureMarksExecutionFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m, sealer := newTestService(t, ctrl, allowAll())

	request := pendingRequest(fixedNow.Add(time.Hour))

	m.approvalRepo.EXPECT().GetByID("req-1").Return(request, nil)

	m.approvalRepo.EXPECT().
		UpdateStatusCAS("req-1", domain.ApprovalStatusPending, domain.ApprovalStatusApproved, gomock.Any()).
		Return(true, nil)

	m.tenantRepo.EXPECT().GetTenantByID("tenant-1").Return(activeTenant(), nil)

	// Ciphertext adulterado: o cofre recusa com falha de integridade
	cred := sealedCredential(t, sealer, "tenant-1", domain.CredentialProviderGoogleAds, `{"access_token":"ya29.token"}`)
	cred.SecretCiphertext[len(cred.SecretCiphertext)-1] ^= 0xFF
	m.credentialRepo.EXPECT().
		GetActiveCredential("tenant-1", domain.CredentialProviderGoogleAds).
		Return(cred, nil)

	m.approvalRepo.EXPECT().
		UpdateStatusCAS("req-1", domain.ApprovalStatusApproved, domain.ApprovalStatusExecutionFailed, gomock.Any()).
		Return(true, nil)

	m.auditRepo.EXPECT().Append(gomock.Any()).Return(nil).Times(2)

	_, err := service.Decide(context.Background(), "req-1", "user-9", true, "")
	require.Error(t, err)

	assert.True(t, IsExecutionFailed(err))
}

func TestService_SweepExpirations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m, _ := newTestService(t, ctrl, allowAll())

	first := pendingRequest(fixedNow.Add(-2 * time.Hour))
	first.ID = "req-1"

	second := pendingRequest(fixedNow.Add(-time.Minute))
	second.ID = "req-2"

	m.approvalRepo.EXPECT().
		ListExpiredPending(gomock.Any()).
		Return([]*domain.ApprovalRequest{first, second}, nil)

	m.approvalRepo.EXPECT().
		UpdateStatusCAS("req-1", domain.ApprovalStatusPending, domain.ApprovalStatusExpired, gomock.Any()).
		Return(true, nil)

	// req-2 foi decidida entre a listagem e o CAS: a varredura a deixa em paz
	m.approvalRepo.EXPECT().
		UpdateStatusCAS("req-2", domain.ApprovalStatusPending, domain.ApprovalStatusExpired, gomock.Any()).
		Return(false, nil)

	m.auditRepo.EXPECT().Append(gomock.Any()).Return(nil)

	expired, err := service.SweepExpirations(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, expired)
}

func TestService_SweepExpirations_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m, _ := newTestService(t, ctrl, allowAll())

	m.approvalRepo.EXPECT().ListExpiredPending(gomock.Any()).Return(nil, nil)

	expired, err := service.SweepExpirations(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, expired)
}

func TestService_StoreCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name           string
		existing       *domain.EncryptedCredential
		expectedAction domain.AuditAction
	}{
		{
			name:           "primeira credencial",
			existing:       nil,
			expectedAction: domain.AuditActionCredentialStored,
		},
		{
			name:           "rotação",
			existing:       &domain.EncryptedCredential{ID: "cred-old"},
			expectedAction: domain.AuditActionCredentialRotated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m, _ := newTestService(t, ctrl, allowAll())

			m.tenantRepo.EXPECT().GetTenantByID("tenant-1").Return(activeTenant(), nil)

			m.credentialRepo.EXPECT().
				GetActiveCredential("tenant-1", domain.CredentialProviderSlack).
				Return(tt.existing, nil)

			var saved *domain.EncryptedCredential
			m.credentialRepo.EXPECT().
				SaveOrReplace(gomock.Any()).
				DoAndReturn(func(c *domain.EncryptedCredential) error {
					saved = c
					return nil
				})

			var audited domain.AuditAction
			m.auditRepo.EXPECT().
				Append(gomock.Any()).
				DoAndReturn(func(e *domain.AuditEntry) error {
					audited = e.Action
					return nil
				})

			err := service.StoreCredential(context.Background(), "tenant-1", domain.CredentialProviderSlack, []byte(`{"bot_token":"xoxb-1"}`), []string{"chat:write"}, nil)
			require.NoError(t, err)

			require.NotNil(t, saved)
			assert.NotEmpty(t, saved.SecretCiphertext)
			assert.NotEmpty(t, saved.DEKCiphertext)
			assert.NotContains(t, string(saved.SecretCiphertext), "xoxb-1")
			assert.Equal(t, []string{"chat:write"}, saved.Scopes)

			assert.Equal(t, tt.expectedAction, audited)
		})
	}
}

func TestEvaluate(t *testing.T) {
	settings := domain.DefaultThresholdSettings("tenant-1")

	tests := []struct {
		name       string
		row        *domain.SearchTermMetrics
		wantReason domain.DetectionReason
		wantOK     bool
	}{
		{
			name:       "gasto alto sem conversão",
			row:        &domain.SearchTermMetrics{Impressions: 500, Clicks: 40, CostMicros: 25_000_000, Conversions: 0},
			wantReason: domain.DetectionReasonZeroConversions,
			wantOK:     true,
		},
		{
			name:       "gasto muito alto mesmo sem cliques mínimos",
			row:        &domain.SearchTermMetrics{Impressions: 500, Clicks: 2, CostMicros: 40_000_000, Conversions: 0},
			wantReason: domain.DetectionReasonHighSpend,
			wantOK:     true,
		},
		{
			name:       "ctr abaixo do piso",
			row:        &domain.SearchTermMetrics{Impressions: 2000, Clicks: 10, CostMicros: 2_000_000, Conversions: 0},
			wantReason: domain.DetectionReasonLowCTR,
			wantOK:     true,
		},
		{
			name:   "converteu",
			row:    &domain.SearchTermMetrics{Impressions: 500, Clicks: 40, CostMicros: 25_000_000, Conversions: 3},
			wantOK: false,
		},
		{
			name:   "sem impressões mínimas",
			row:    &domain.SearchTermMetrics{Impressions: 50, Clicks: 10, CostMicros: 25_000_000, Conversions: 0},
			wantOK: false,
		},
		{
			name:   "atividade saudável",
			row:    &domain.SearchTermMetrics{Impressions: 1000, Clicks: 80, CostMicros: 5_000_000, Conversions: 2},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason, ok := evaluate(settings, tt.row)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantReason, reason)
			}
		})
	}
}
