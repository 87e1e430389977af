package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/adscope/keyword-guardian-api/internal/config"
	"github.com/adscope/keyword-guardian-api/internal/usecases/approving"
)

// ExpirationSweepService agenda a varredura que expira solicitações
// pendentes vencidas. A varredura é segura de rodar em paralelo com
// decisões humanas: cada transição passa pelo compare-and-set do banco.
type ExpirationSweepService struct {
	scheduler    *gocron.Scheduler
	cronSchedule string
	enabled      bool
	sweeper      approving.Sweeper
	sweepRunning bool
	sweepMutex   sync.Mutex
	lastSweepAt  time.Time
}

// NewExpirationSweepService cria uma nova instância do serviço de varredura
func NewExpirationSweepService(sweeper approving.Sweeper, appConfig *config.Config) *ExpirationSweepService {
	return &ExpirationSweepService{
		scheduler:    gocron.NewScheduler(time.Local),
		cronSchedule: appConfig.ExpirationSweep.CronSchedule,
		enabled:      appConfig.ExpirationSweep.Enabled,
		sweeper:      sweeper,
	}
}

// Start inicia o agendador
func (s *ExpirationSweepService) Start(ctx context.Context) error {
	if !s.enabled {
		logrus.Info("Varredura de expiração desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.cronSchedule).Info("Iniciando agendador da varredura de expiração")

	_, err := s.scheduler.Cron(s.cronSchedule).Do(func() {
		s.sweep()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar varredura de expiração: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador da varredura de expiração")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *ExpirationSweepService) sweep() {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Info("Varredura de expiração já em andamento, ignorando")
		return
	}
	s.sweepRunning = true
	s.sweepMutex.Unlock()

	defer func() {
		s.sweepMutex.Lock()
		s.sweepRunning = false
		s.sweepMutex.Unlock()
	}()

	expired, err := s.sweeper.SweepExpirations(context.Background())
	if err != nil {
		logrus.WithError(err).Error("Erro na varredura de expiração")
		return
	}

	if expired > 0 {
		logrus.WithField("expired", expired).Info("Solicitações expiradas pela varredura")
	}

	s.lastSweepAt = time.Now()
}

// TriggerManualSweep inicia manualmente uma varredura de expiração
func (s *ExpirationSweepService) TriggerManualSweep() {
	go s.sweep()
}
