package approving

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/adscope/keyword-guardian-api/infrastructure/integrator/googleads"
	"github.com/adscope/keyword-guardian-api/infrastructure/integrator/slack"
	"github.com/adscope/keyword-guardian-api/infrastructure/repository"
	"github.com/adscope/keyword-guardian-api/internal/config"
	"github.com/adscope/keyword-guardian-api/internal/domain"
	"github.com/adscope/keyword-guardian-api/internal/usecases/ratelimit"
	"github.com/adscope/keyword-guardian-api/internal/usecases/vault"
	"github.com/adscope/keyword-guardian-api/pkg/utils"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Formato do texto plano das credenciais seladas no cofre
type googleAdsSecret struct {
	AccessToken string `json:"access_token"`
}

type slackSecret struct {
	BotToken string `json:"bot_token"`
}

// Service implementa a interface Approver. A máquina de estados vive no
// banco: toda transição passa pelo compare-and-set de status do repositório,
// então dois processos concorrentes nunca commitam a mesma transição: um
// vence, o outro recebe false e trata como corrida perdida.
type Service struct {
	cfg                  *config.Config
	sealer               vault.Sealer
	limiter              ratelimit.Limiter
	adsService           googleads.GoogleAdsIntegrator
	slackService         slack.SlackIntegrator
	tenantRepository     repository.TenantRepository
	credentialRepository repository.CredentialRepository
	candidateRepository  repository.CandidateRepository
	approvalRepository   repository.ApprovalRepository
	auditRepository      repository.AuditRepository
	now                  func() time.Time
}

// NewService cria uma nova instância do motor de workflow
func NewService(
	cfg *config.Config,
	sealer vault.Sealer,
	limiter ratelimit.Limiter,
	adsService googleads.GoogleAdsIntegrator,
	slackService slack.SlackIntegrator,
	tenantRepo repository.TenantRepository,
	credentialRepo repository.CredentialRepository,
	candidateRepo repository.CandidateRepository,
	approvalRepo repository.ApprovalRepository,
	auditRepo repository.AuditRepository,
) *Service {
	return &Service{
		cfg:                  cfg,
		sealer:               sealer,
		limiter:              limiter,
		adsService:           adsService,
		slackService:         slackService,
		tenantRepository:     tenantRepo,
		credentialRepository: credentialRepo,
		candidateRepository:  candidateRepo,
		approvalRepository:   approvalRepo,
		auditRepository:      auditRepo,
		now:                  time.Now,
	}
}

// WithClock troca a fonte de tempo do serviço. Usado nos testes para
// controlar a fronteira de expiração.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Detect consulta os termos de pesquisa da conta do tenant, avalia cada um
// contra a política de limiares e abre uma solicitação PENDING por termo
// ineficiente. A operação é idempotente: termos que já têm solicitação
// pendente, ou que foram rejeitados dentro da janela de cooldown, são
// pulados; rodar duas vezes seguidas não duplica solicitações.
func (s *Service) Detect(ctx context.Context, tenantID string) (*DetectionSummary, error) {
	tenant, err := s.tenantRepository.GetTenantByID(tenantID)
	if err != nil {
		return nil, err
	}

	if tenant == nil {
		return nil, NewApprovalError(ErrTenantNotFound, "", "", tenantID)
	}

	if !tenant.IsActive() {
		return nil, NewApprovalError(ErrInactiveTenant, "", "", tenantID)
	}

	settings, err := s.tenantRepository.GetThresholdSettings(tenantID)
	if err != nil {
		return nil, err
	}

	if settings == nil {
		settings = domain.DefaultThresholdSettings(tenantID)
	}

	decision, err := s.limiter.TryAcquire(ctx, tenantID, domain.ResourceClassAdsAPI)
	if err != nil {
		return nil, err
	}

	if !decision.Allowed {
		return nil, &ratelimit.RateLimitError{
			TenantID:   tenantID,
			Resource:   string(domain.ResourceClassAdsAPI),
			RetryAfter: decision.RetryAfter,
		}
	}

	adsToken, err := s.googleAdsToken(tenantID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	window := domain.MetricsWindow{
		StartDate: now.AddDate(0, 0, -settings.LookbackDays),
		EndDate:   now,
	}

	rows, err := s.adsService.GetSearchTerms(ctx, adsToken, tenant.AdsCustomerID, window)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant_id": tenantID,
			"error":     err.Error(),
		}).Error("Erro ao buscar termos de pesquisa na plataforma de anúncios")
		return nil, err
	}

	ignored, err := s.candidateRepository.RecentlyIgnoredTerms(tenantID, now.Add(-settings.IgnoreCooldown()))
	if err != nil {
		return nil, err
	}

	summary := &DetectionSummary{TenantID: tenantID}

	for _, row := range rows {
		summary.Evaluated++

		reason, ok := evaluate(settings, row)
		if !ok {
			continue
		}

		if _, recentlyIgnored := ignored[row.SearchTerm]; recentlyIgnored {
			summary.Skipped++
			continue
		}

		undecided, err := s.candidateRepository.HasUndecidedRequest(tenantID, tenant.AdsCustomerID, row.SearchTerm, row.CampaignID)
		if err != nil {
			return nil, err
		}

		if undecided {
			summary.Skipped++
			continue
		}

		request, err := s.openRequest(tenant, settings, row, reason, now)
		if err != nil {
			return nil, err
		}

		summary.Detected++

		if s.notifyDecisionPrompt(ctx, tenant, request, row) {
			summary.Notified++
		}
	}

	logrus.WithFields(logrus.Fields{
		"tenant_id": tenantID,
		"evaluated": summary.Evaluated,
		"detected":  summary.Detected,
		"skipped":   summary.Skipped,
	}).Info("Detecção concluída")

	return summary, nil
}

// evaluate aplica a política de limiares a uma linha de métricas. Termos sem
// atividade mínima nunca viram candidatos, por pior que pareçam as taxas.
func evaluate(settings *domain.ThresholdSettings, row *domain.SearchTermMetrics) (domain.DetectionReason, bool) {
	if row.Impressions < settings.MinImpressions {
		return "", false
	}

	ctr := float64(0)
	if row.Impressions > 0 {
		ctr = float64(row.Clicks) / float64(row.Impressions)
	}

	switch {
	case row.Clicks >= settings.MinClicks &&
		row.CostMicros >= settings.MinCostMicros &&
		row.Conversions <= settings.MaxConversions:
		return domain.DetectionReasonZeroConversions, true

	case row.CostMicros >= 3*settings.MinCostMicros &&
		row.Conversions <= settings.MaxConversions:
		return domain.DetectionReasonHighSpend, true

	case row.Clicks >= settings.MinClicks && ctr < settings.MaxCTR:
		return domain.DetectionReasonLowCTR, true
	}

	return "", false
}

// openRequest persiste o candidato e a solicitação PENDING correspondente,
// com o prazo de expiração contado a partir da criação.
func (s *Service) openRequest(
	tenant *domain.Tenant,
	settings *domain.ThresholdSettings,
	row *domain.SearchTermMetrics,
	reason domain.DetectionReason,
	now time.Time,
) (*domain.ApprovalRequest, error) {
	candidate := &domain.KeywordCandidate{
		ID:           uuid.NewString(),
		TenantID:     tenant.ID,
		AccountID:    tenant.AdsCustomerID,
		SearchTerm:   row.SearchTerm,
		CampaignID:   row.CampaignID,
		CampaignName: row.CampaignName,
		AdGroupID:    row.AdGroupID,
		Impressions:  row.Impressions,
		Clicks:       row.Clicks,
		CostMicros:   row.CostMicros,
		Conversions:  row.Conversions,
		Reason:       reason,
		DetectedAt:   now,
	}

	if err := s.candidateRepository.Save(candidate); err != nil {
		return nil, err
	}

	s.appendAudit(tenant.ID, domain.AuditActorSystem, domain.AuditActionCandidateDetected, candidate.ID, map[string]any{
		"search_term": candidate.SearchTerm,
		"reason":      string(reason),
		"cost_micros": candidate.CostMicros,
	})

	payload := &domain.ActionPayload{
		KeywordText: row.SearchTerm,
		CampaignID:  row.CampaignID,
		AdGroupID:   row.AdGroupID,
		MatchType:   "EXACT",
	}

	if err := payload.Validate(domain.ActionTypeAddNegativeKeyword); err != nil {
		return nil, err
	}

	rawPayload, err := payload.Serialize()
	if err != nil {
		return nil, err
	}

	request := &domain.ApprovalRequest{
		ID:            uuid.NewString(),
		TenantID:      tenant.ID,
		CandidateID:   candidate.ID,
		ActionType:    domain.ActionTypeAddNegativeKeyword,
		ActionPayload: rawPayload,
		Status:        domain.ApprovalStatusPending,
		CreatedAt:     now,
		ExpiresAt:     now.Add(settings.ApprovalTTL()),
	}

	if err := s.approvalRepository.Create(request); err != nil {
		return nil, err
	}

	s.appendAudit(tenant.ID, domain.AuditActorSystem, domain.AuditActionRequestCreated, request.ID, map[string]any{
		"candidate_id": candidate.ID,
		"action_type":  string(request.ActionType),
		"expires_at":   request.ExpiresAt.Format(time.RFC3339),
	})

	return request, nil
}

// notifyDecisionPrompt publica o alerta com botões no canal do tenant.
// Best effort: falha de notificação não desfaz a solicitação criada, ela
// continua decidível pela API.
func (s *Service) notifyDecisionPrompt(ctx context.Context, tenant *domain.Tenant, request *domain.ApprovalRequest, row *domain.SearchTermMetrics) bool {
	if tenant.SlackChannelID == "" {
		return false
	}

	decision, err := s.limiter.TryAcquire(ctx, tenant.ID, domain.ResourceClassSlackAPI)
	if err != nil || !decision.Allowed {
		logrus.WithFields(logrus.Fields{
			"tenant_id":  tenant.ID,
			"request_id": request.ID,
		}).Warn("Notificação adiada pelo limitador de taxa do Slack")
		return false
	}

	botToken, err := s.slackToken(tenant.ID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant_id":  tenant.ID,
			"request_id": request.ID,
			"error":      err.Error(),
		}).Warn("Sem credencial do Slack, solicitação criada sem notificação")
		return false
	}

	candidate, err := s.candidateRepository.GetByID(request.CandidateID)
	if err != nil || candidate == nil {
		return false
	}

	messageTS, err := s.slackService.PostDecisionPrompt(ctx, botToken, tenant.SlackChannelID, candidate, request.ID)
	if err != nil {
		return false
	}

	if err := s.approvalRepository.SetMessageTS(request.ID, messageTS); err != nil {
		logrus.WithFields(logrus.Fields{
			"request_id": request.ID,
			"error":      err.Error(),
		}).Error("Erro ao gravar o timestamp da mensagem do Slack")
	}

	return true
}

// Decide registra a decisão humana sobre uma solicitação pendente.
//
// A expiração vence a decisão tardia: se o prazo já passou, a solicitação é
// marcada EXPIRED e a decisão é recusada, mesmo que a varredura ainda não
// tenha rodado. Entre dois decisores concorrentes, o primeiro compare-and-set
// que commitar no banco vence; o perdedor recebe ErrInvalidState.
func (s *Service) Decide(ctx context.Context, requestID, actorID string, approved bool, comment string) (*domain.ApprovalRequest, error) {
	request, err := s.approvalRepository.GetByID(requestID)
	if err != nil {
		return nil, err
	}

	if request == nil {
		return nil, NewApprovalError(ErrRequestNotFound, requestID, "", "")
	}

	if request.Status != domain.ApprovalStatusPending {
		return nil, NewApprovalError(ErrInvalidState, requestID, request.Status,
			fmt.Sprintf("solicitação já está %s", request.Status))
	}

	now := s.now().UTC()

	if request.ExpiredAt(now) {
		return nil, s.expireRequest(ctx, request, now)
	}

	change := &domain.ApprovalStatusChange{
		DecidedAt: &now,
		DecidedBy: &actorID,
	}
	if comment != "" {
		change.Comment = &comment
	}

	if !approved {
		return s.reject(ctx, request, change)
	}

	return s.approveAndExecute(ctx, request, change, now)
}

// expireRequest transiciona PENDING → EXPIRED e devolve ErrExpired. Se o
// compare-and-set perder a corrida para a varredura ou para outro decisor, o
// status recarregado determina o erro devolvido.
func (s *Service) expireRequest(ctx context.Context, request *domain.ApprovalRequest, now time.Time) error {
	committed, err := s.approvalRepository.UpdateStatusCAS(request.ID, domain.ApprovalStatusPending, domain.ApprovalStatusExpired, &domain.ApprovalStatusChange{
		DecidedAt: &now,
	})
	if err != nil {
		return err
	}

	if committed {
		s.appendAudit(request.TenantID, domain.AuditActorSystem, domain.AuditActionRequestExpired, request.ID, map[string]any{
			"expires_at": request.ExpiresAt.Format(time.RFC3339),
		})
		s.updateSlackMessage(ctx, request, "⏰ Solicitação expirada sem decisão, nenhuma ação foi executada.")

		return NewApprovalError(ErrExpired, request.ID, domain.ApprovalStatusExpired, "")
	}

	current, err := s.approvalRepository.GetByID(request.ID)
	if err != nil {
		return err
	}

	if current != nil && current.Status == domain.ApprovalStatusExpired {
		return NewApprovalError(ErrExpired, request.ID, current.Status, "")
	}

	status := domain.ApprovalStatus("")
	if current != nil {
		status = current.Status
	}

	return NewApprovalError(ErrInvalidState, request.ID, status, "solicitação decidida por outro ator")
}

func (s *Service) reject(ctx context.Context, request *domain.ApprovalRequest, change *domain.ApprovalStatusChange) (*domain.ApprovalRequest, error) {
	committed, err := s.approvalRepository.UpdateStatusCAS(request.ID, domain.ApprovalStatusPending, domain.ApprovalStatusRejected, change)
	if err != nil {
		return nil, err
	}

	if !committed {
		return nil, NewApprovalError(ErrInvalidState, request.ID, request.Status, "solicitação decidida por outro ator")
	}

	s.appendAudit(request.TenantID, *change.DecidedBy, domain.AuditActionRequestRejected, request.ID, map[string]any{
		"comment": derefOrEmpty(change.Comment),
	})

	s.updateSlackMessage(ctx, request, fmt.Sprintf("🚫 Recusado por %s, o termo continua ativo.", *change.DecidedBy))

	return s.approvalRepository.GetByID(request.ID)
}

// approveAndExecute commita PENDING → APPROVED e então executa a ação na
// conta externa exatamente uma vez. APPROVED é um estado transitório desta
// operação: o desfecho persistido é sempre EXECUTED ou EXECUTION_FAILED.
func (s *Service) approveAndExecute(ctx context.Context, request *domain.ApprovalRequest, change *domain.ApprovalStatusChange, now time.Time) (*domain.ApprovalRequest, error) {
	committed, err := s.approvalRepository.UpdateStatusCAS(request.ID, domain.ApprovalStatusPending, domain.ApprovalStatusApproved, change)
	if err != nil {
		return nil, err
	}

	if !committed {
		return nil, NewApprovalError(ErrInvalidState, request.ID, request.Status, "solicitação decidida por outro ator")
	}

	actor := *change.DecidedBy

	s.appendAudit(request.TenantID, actor, domain.AuditActionRequestApproved, request.ID, map[string]any{
		"comment": derefOrEmpty(change.Comment),
	})

	result, execErr := s.execute(ctx, request)

	executedAt := s.now().UTC()

	if execErr != nil || result == nil || !result.Success {
		if result == nil {
			detail := "erro desconhecido"
			if execErr != nil {
				detail = execErr.Error()
			}
			result = &domain.ExecutionResult{Success: false, Detail: detail}
		}

		if _, err := s.approvalRepository.UpdateStatusCAS(request.ID, domain.ApprovalStatusApproved, domain.ApprovalStatusExecutionFailed, &domain.ApprovalStatusChange{
			ExecutedAt: &executedAt,
			Result:     result,
		}); err != nil {
			logrus.WithFields(logrus.Fields{
				"request_id": request.ID,
				"error":      err.Error(),
			}).Error("Erro ao registrar a falha de execução")
		}

		s.appendAudit(request.TenantID, domain.AuditActorSystem, domain.AuditActionExecutionFailed, request.ID, map[string]any{
			"detail": result.Detail,
		})

		s.updateSlackMessage(ctx, request, "⚠️ Aprovado, mas a execução falhou. Verifique a conta de anúncios.")

		if execErr != nil {
			return nil, NewApprovalError(ErrExecutionFailed, request.ID, domain.ApprovalStatusExecutionFailed, execErr.Error())
		}

		return nil, NewApprovalError(ErrExecutionFailed, request.ID, domain.ApprovalStatusExecutionFailed, result.Detail)
	}

	if _, err := s.approvalRepository.UpdateStatusCAS(request.ID, domain.ApprovalStatusApproved, domain.ApprovalStatusExecuted, &domain.ApprovalStatusChange{
		ExecutedAt: &executedAt,
		Result:     result,
	}); err != nil {
		return nil, err
	}

	s.appendAudit(request.TenantID, domain.AuditActorSystem, domain.AuditActionRequestExecuted, request.ID, map[string]any{
		"idempotency_key": result.IdempotencyKey,
	})

	s.updateSlackMessage(ctx, request, fmt.Sprintf("✅ Aprovado por %s, palavra-chave negativa aplicada.", actor))

	return s.approvalRepository.GetByID(request.ID)
}

// execute aplica a mutação aprovada na conta externa.
func (s *Service) execute(ctx context.Context, request *domain.ApprovalRequest) (*domain.ExecutionResult, error) {
	decision, err := s.limiter.TryAcquire(ctx, request.TenantID, domain.ResourceClassAdsAPI)
	if err != nil {
		return nil, err
	}

	if !decision.Allowed {
		return nil, &ratelimit.RateLimitError{
			TenantID:   request.TenantID,
			Resource:   string(domain.ResourceClassAdsAPI),
			RetryAfter: decision.RetryAfter,
		}
	}

	tenant, err := s.tenantRepository.GetTenantByID(request.TenantID)
	if err != nil {
		return nil, err
	}

	if tenant == nil {
		return nil, NewApprovalError(ErrTenantNotFound, request.ID, "", request.TenantID)
	}

	adsToken, err := s.googleAdsToken(request.TenantID)
	if err != nil {
		return nil, err
	}

	payload, err := domain.DeserializeActionPayload(request.ActionPayload)
	if err != nil {
		return nil, err
	}

	idempotencyKey, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	switch request.ActionType {
	case domain.ActionTypeAddNegativeKeyword:
		return s.adsService.ApplyExclusion(ctx, adsToken, tenant.AdsCustomerID, payload, idempotencyKey)
	case domain.ActionTypePauseKeyword:
		return s.adsService.PauseKeyword(ctx, adsToken, tenant.AdsCustomerID, payload)
	}

	return nil, fmt.Errorf("tipo de ação desconhecido: %s", request.ActionType)
}

// SweepExpirations marca EXPIRED toda pendência vencida. Idempotente: rodar
// duas vezes seguidas não altera nada na segunda passada, e solicitações
// decididas entre a listagem e o compare-and-set são deixadas em paz.
func (s *Service) SweepExpirations(ctx context.Context) (int, error) {
	now := s.now().UTC()

	overdue, err := s.approvalRepository.ListExpiredPending(now)
	if err != nil {
		return 0, err
	}

	expired := 0

	for _, request := range overdue {
		committed, err := s.approvalRepository.UpdateStatusCAS(request.ID, domain.ApprovalStatusPending, domain.ApprovalStatusExpired, &domain.ApprovalStatusChange{
			DecidedAt: &now,
		})
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"request_id": request.ID,
				"error":      err.Error(),
			}).Error("Erro ao expirar solicitação na varredura")
			continue
		}

		if !committed {
			// Decidida ou expirada por outro processo entre a listagem e o CAS
			continue
		}

		expired++

		s.appendAudit(request.TenantID, domain.AuditActorSystem, domain.AuditActionRequestExpired, request.ID, map[string]any{
			"expires_at": request.ExpiresAt.Format(time.RFC3339),
		})

		s.updateSlackMessage(ctx, request, "⏰ Solicitação expirada sem decisão, nenhuma ação foi executada.")
	}

	if len(overdue) > 0 {
		logrus.WithFields(logrus.Fields{
			"overdue": len(overdue),
			"expired": expired,
		}).Info("Varredura de expiração concluída")
	}

	return expired, nil
}

// GetRequest retorna uma solicitação pelo ID
func (s *Service) GetRequest(requestID string) (*domain.ApprovalRequest, error) {
	request, err := s.approvalRepository.GetByID(requestID)
	if err != nil {
		return nil, err
	}

	if request == nil {
		return nil, NewApprovalError(ErrRequestNotFound, requestID, "", "")
	}

	return request, nil
}

// ListRequests retorna as solicitações do tenant, opcionalmente filtradas por status
func (s *Service) ListRequests(tenantID string, status *domain.ApprovalStatus, limit uint64) ([]*domain.ApprovalRequest, error) {
	return s.approvalRepository.ListByTenant(tenantID, status, limit)
}

// StoreCredential sela o segredo no cofre e o persiste, substituindo
// atomicamente a credencial ativa anterior do par (tenant, provider).
func (s *Service) StoreCredential(ctx context.Context, tenantID string, provider domain.CredentialProvider, secret []byte, scopes []string, expiresAt *time.Time) error {
	tenant, err := s.tenantRepository.GetTenantByID(tenantID)
	if err != nil {
		return err
	}

	if tenant == nil {
		return NewApprovalError(ErrTenantNotFound, "", "", tenantID)
	}

	existing, err := s.credentialRepository.GetActiveCredential(tenantID, provider)
	if err != nil {
		return err
	}

	cred, err := s.sealer.Store(tenantID, provider, secret)
	if err != nil {
		return err
	}

	cred.Scopes = scopes
	cred.ExpiresAt = expiresAt

	if err := s.credentialRepository.SaveOrReplace(cred); err != nil {
		return err
	}

	action := domain.AuditActionCredentialStored
	if existing != nil {
		action = domain.AuditActionCredentialRotated
	}

	s.appendAudit(tenantID, domain.AuditActorSystem, action, cred.ID, map[string]any{
		"provider": string(provider),
	})

	return nil
}

// AuditTrail retorna o histórico de auditoria de um recurso
func (s *Service) AuditTrail(resourceID string) ([]*domain.AuditEntry, error) {
	return s.auditRepository.ListByResource(resourceID)
}

// googleAdsToken recupera e decifra o token de acesso da conta de anúncios.
func (s *Service) googleAdsToken(tenantID string) (string, error) {
	plaintext, err := s.openCredential(tenantID, domain.CredentialProviderGoogleAds)
	if err != nil {
		return "", err
	}

	secret := &googleAdsSecret{}
	if err := json.Unmarshal(plaintext, secret); err != nil {
		return "", err
	}

	return secret.AccessToken, nil
}

// slackToken recupera e decifra o token do bot do Slack.
func (s *Service) slackToken(tenantID string) (string, error) {
	plaintext, err := s.openCredential(tenantID, domain.CredentialProviderSlack)
	if err != nil {
		return "", err
	}

	secret := &slackSecret{}
	if err := json.Unmarshal(plaintext, secret); err != nil {
		return "", err
	}

	return secret.BotToken, nil
}

func (s *Service) openCredential(tenantID string, provider domain.CredentialProvider) ([]byte, error) {
	cred, err := s.credentialRepository.GetActiveCredential(tenantID, provider)
	if err != nil {
		return nil, err
	}

	if cred == nil {
		return nil, NewApprovalError(ErrMissingCredential, "", "", fmt.Sprintf("tenant=%s provider=%s", tenantID, provider))
	}

	return s.sealer.Open(cred)
}

// appendAudit grava a entrada no log de auditoria. Falha de auditoria é
// logada mas não desfaz a transição já commitada.
func (s *Service) appendAudit(tenantID, actor string, action domain.AuditAction, resourceID string, detail map[string]any) {
	rawDetail, err := json.Marshal(detail)
	if err != nil {
		rawDetail = nil
	}

	entry := &domain.AuditEntry{
		ID:         uuid.NewString(),
		TenantID:   tenantID,
		Actor:      actor,
		Action:     action,
		ResourceID: resourceID,
		Detail:     rawDetail,
		CreatedAt:  s.now().UTC(),
	}

	if err := s.auditRepository.Append(entry); err != nil {
		logrus.WithFields(logrus.Fields{
			"action":      string(action),
			"resource_id": resourceID,
			"error":       err.Error(),
		}).Error("Erro ao gravar entrada de auditoria")
	}
}

// updateSlackMessage atualiza a mensagem de decisão com o desfecho. Best
// effort: sem timestamp gravado ou sem credencial, simplesmente não há o
// que atualizar.
func (s *Service) updateSlackMessage(ctx context.Context, request *domain.ApprovalRequest, text string) {
	if request.SlackMessageTS == nil || *request.SlackMessageTS == "" {
		return
	}

	tenant, err := s.tenantRepository.GetTenantByID(request.TenantID)
	if err != nil || tenant == nil || tenant.SlackChannelID == "" {
		return
	}

	botToken, err := s.slackToken(request.TenantID)
	if err != nil {
		return
	}

	if err := s.slackService.UpdateMessage(ctx, botToken, tenant.SlackChannelID, *request.SlackMessageTS, text); err != nil {
		logrus.WithFields(logrus.Fields{
			"request_id": request.ID,
			"error":      err.Error(),
		}).Warn("Erro ao atualizar a mensagem de decisão no Slack")
	}
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
