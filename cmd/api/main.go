package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adscope/keyword-guardian-api/infrastructure/database/postgres"
	"github.com/adscope/keyword-guardian-api/infrastructure/database/redisdb"
	"github.com/adscope/keyword-guardian-api/infrastructure/integrator/googleads"
	"github.com/adscope/keyword-guardian-api/infrastructure/integrator/googleads/googleadsclient"
	"github.com/adscope/keyword-guardian-api/infrastructure/integrator/slack"
	"github.com/adscope/keyword-guardian-api/infrastructure/integrator/slack/slackclient"
	"github.com/adscope/keyword-guardian-api/infrastructure/repository"
	"github.com/adscope/keyword-guardian-api/internal/api"
	"github.com/adscope/keyword-guardian-api/internal/config"
	"github.com/adscope/keyword-guardian-api/internal/scheduler"
	"github.com/adscope/keyword-guardian-api/internal/usecases/approving"
	"github.com/adscope/keyword-guardian-api/internal/usecases/authenticating"
	"github.com/adscope/keyword-guardian-api/internal/usecases/ratelimit"
	"github.com/adscope/keyword-guardian-api/internal/usecases/vault"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	redisClient, err := redisdb.NewClient(ctx, cfg.Redis)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao Redis")
	}
	defer redisClient.Close()

	tenantRepo := repository.NewTenantRepository(pgConn)
	credentialRepo := repository.NewCredentialRepository(pgConn)
	candidateRepo := repository.NewCandidateRepository(pgConn)
	approvalRepo := repository.NewApprovalRepository(pgConn)
	auditRepo := repository.NewAuditRepository(pgConn)

	authenticator, err := authenticating.NewService(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o serviço de autenticação")
	}

	sealer, err := vault.NewService(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o cofre de credenciais")
	}

	limiter := ratelimit.NewService(cfg, redisdb.NewCounterStore(redisClient))

	googleAdsClient := googleadsclient.NewClient(cfg)
	googleAdsIntegrator := googleads.New(cfg, googleAdsClient)

	slackClient := slackclient.NewClient(cfg)
	slackIntegrator := slack.New(cfg, slackClient)

	approvalService := approving.NewService(
		cfg,
		sealer,
		limiter,
		googleAdsIntegrator,
		slackIntegrator,
		tenantRepo,
		credentialRepo,
		candidateRepo,
		approvalRepo,
		auditRepo,
	)

	detectionSyncService := scheduler.NewDetectionSyncService(tenantRepo, approvalService, cfg)
	expirationSweepService := scheduler.NewExpirationSweepService(approvalService, cfg)

	if err := detectionSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de detecção")
	} else {
		logrus.Info("Agendador de detecção iniciado com sucesso")
	}

	if err := expirationSweepService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador da varredura de expiração")
	} else {
		logrus.Info("Agendador da varredura de expiração iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		approvalService,
		authenticator,
		detectionSyncService,
		expirationSweepService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
