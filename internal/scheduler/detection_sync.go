package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/adscope/keyword-guardian-api/infrastructure/repository"
	"github.com/adscope/keyword-guardian-api/internal/config"
	"github.com/adscope/keyword-guardian-api/internal/domain"
	"github.com/adscope/keyword-guardian-api/internal/usecases/approving"
	"github.com/adscope/keyword-guardian-api/internal/usecases/ratelimit"
)

// DetectionSyncConfig representa a configuração do agendador de detecção
type DetectionSyncConfig struct {
	CronSchedule         string
	TenantTimeoutSeconds int
	RequestDelaySeconds  int
	SyncEnabled          bool
}

// DetectionSyncService agenda e executa a detecção de termos ineficientes
// para todos os tenants ativos
type DetectionSyncService struct {
	scheduler           *gocron.Scheduler
	config              DetectionSyncConfig
	tenantRepo          repository.TenantRepository
	detector            approving.Detector
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewDetectionSyncService cria uma nova instância do serviço de detecção agendada
func NewDetectionSyncService(
	tenantRepo repository.TenantRepository,
	detector approving.Detector,
	appConfig *config.Config,
) *DetectionSyncService {
	syncConfig := DetectionSyncConfig{
		CronSchedule:         appConfig.DetectionSync.CronSchedule,
		TenantTimeoutSeconds: appConfig.DetectionSync.TenantTimeoutSeconds,
		RequestDelaySeconds:  appConfig.DetectionSync.RequestDelaySeconds,
		SyncEnabled:          appConfig.DetectionSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"tenant_timeout":        syncConfig.TenantTimeoutSeconds,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de detecção carregada")

	return &DetectionSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		tenantRepo:  tenantRepo,
		detector:    detector,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *DetectionSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Detecção agendada desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de detecção")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.detectAllTenants()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar detecção: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de detecção")
		s.scheduler.Stop()
	}()

	return nil
}

// detectAllTenants roda a detecção para cada tenant ativo, um por vez. O
// processamento é sequencial de propósito: o limitador de taxa por tenant já
// espalha a carga e a execução paralela só anteciparia as negações.
func (s *DetectionSyncService) detectAllTenants() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Detecção já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	tenants, err := s.tenantRepo.ListActiveTenants()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar tenants ativos para detecção")
		return
	}

	if len(tenants) == 0 {
		logrus.Info("Nenhum tenant ativo para detecção")
		return
	}

	logrus.WithField("tenants", len(tenants)).Info("Iniciando detecção para os tenants ativos")

	detected := 0

	for i, tenant := range tenants {
		if i > 0 && s.config.RequestDelaySeconds > 0 {
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}

		summary := s.detectTenant(tenant)
		if summary != nil {
			detected += summary.Detected
		}
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"tenants":  len(tenants),
		"detected": detected,
	}).Info("Detecção agendada concluída")

	s.lastSyncCompletedAt = time.Now()
}

func (s *DetectionSyncService) detectTenant(tenant *domain.Tenant) *approving.DetectionSummary {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(s.config.TenantTimeoutSeconds)*time.Second)
	defer cancel()

	summary, err := s.detector.Detect(ctx, tenant.ID)
	if err != nil {
		if ratelimit.IsRateLimited(err) {
			logrus.WithFields(logrus.Fields{
				"tenant_id": tenant.ID,
			}).Warn("Detecção adiada pelo limitador de taxa, tenant será coberto na próxima execução")
			return nil
		}

		logrus.WithFields(logrus.Fields{
			"tenant_id": tenant.ID,
			"error":     err.Error(),
		}).Error("Erro na detecção do tenant")
		return nil
	}

	return summary
}

// TriggerManualSync inicia manualmente uma rodada de detecção
func (s *DetectionSyncService) TriggerManualSync() {
	go s.detectAllTenants()
}

// GetSyncStatus retorna o estado corrente do agendador de detecção
func (s *DetectionSyncService) GetSyncStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"running":           s.syncRunning,
		"last_started_at":   s.lastSyncStartedAt,
		"last_completed_at": s.lastSyncCompletedAt,
	}
}
