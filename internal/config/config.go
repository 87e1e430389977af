package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Redis           Redis           `mapstructure:",squash"`
	Vault           Vault           `mapstructure:",squash"`
	GoogleAds       GoogleAds       `mapstructure:",squash"`
	Slack           Slack           `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	RateLimit       RateLimit       `mapstructure:",squash"`
	DetectionSync   DetectionSync   `mapstructure:",squash"`
	ExpirationSweep ExpirationSweep `mapstructure:",squash"`
	Workflow        Workflow        `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Redis struct {
	Addr        string        `mapstructure:"redis_addr"`
	Password    string        `mapstructure:"redis_password"`
	DB          int           `mapstructure:"redis_db"`
	DialTimeout time.Duration `mapstructure:"redis_dial_timeout"`
}

// Vault configura a chave mestre (KEK) do cofre de credenciais. A chave
// pode ser informada diretamente em base64 (32 bytes) ou derivada de uma
// passphrase via scrypt com o salt configurado.
type Vault struct {
	MasterKey        string `mapstructure:"vault_master_key"`
	MasterPassphrase string `mapstructure:"vault_master_passphrase"`
	MasterKeySalt    string `mapstructure:"vault_master_key_salt"`
}

type GoogleAds struct {
	BaseURL        string `mapstructure:"google_ads_base_url"`
	Version        string `mapstructure:"google_ads_version"`
	URL            string `mapstructure:"-"`
	DeveloperToken string `mapstructure:"google_ads_developer_token"`
	LoginCustomer  string `mapstructure:"google_ads_login_customer_id"`
}

type Slack struct {
	BaseURL       string `mapstructure:"slack_base_url"`
	SigningSecret string `mapstructure:"slack_signing_secret"`
	MaxAgeSeconds int    `mapstructure:"slack_signature_max_age_seconds"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// RateLimit define o orçamento (limite, janela) de cada classe de recurso.
type RateLimit struct {
	AdsAPILimit              int `mapstructure:"rate_limit_ads_api_limit"`
	AdsAPIWindowSeconds      int `mapstructure:"rate_limit_ads_api_window_seconds"`
	SlackAPILimit            int `mapstructure:"rate_limit_slack_api_limit"`
	SlackAPIWindowSeconds    int `mapstructure:"rate_limit_slack_api_window_seconds"`
	InsightStdLimit          int `mapstructure:"rate_limit_insight_std_limit"`
	InsightStdWindowSeconds  int `mapstructure:"rate_limit_insight_std_window_seconds"`
	InsightPremLimit         int `mapstructure:"rate_limit_insight_prem_limit"`
	InsightPremWindowSeconds int `mapstructure:"rate_limit_insight_prem_window_seconds"`
}

type DetectionSync struct {
	CronSchedule         string `mapstructure:"detection_sync_cron"`
	TenantTimeoutSeconds int    `mapstructure:"detection_sync_tenant_timeout_seconds"`
	RequestDelaySeconds  int    `mapstructure:"detection_sync_request_delay_seconds"`
	Enabled              bool   `mapstructure:"detection_sync_enabled"`
}

type ExpirationSweep struct {
	CronSchedule string `mapstructure:"expiration_sweep_cron"`
	Enabled      bool   `mapstructure:"expiration_sweep_enabled"`
}

type Workflow struct {
	ApprovalTTLHours int `mapstructure:"workflow_approval_ttl_hours"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/keyword_guardian")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_DIAL_TIMEOUT", "5s")

	viper.SetDefault("VAULT_MASTER_KEY", "")
	viper.SetDefault("VAULT_MASTER_PASSPHRASE", "")
	viper.SetDefault("VAULT_MASTER_KEY_SALT", "keyword-guardian")

	viper.SetDefault("GOOGLE_ADS_BASE_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_ADS_VERSION", "v17")
	viper.SetDefault("GOOGLE_ADS_DEVELOPER_TOKEN", "your_developer_token")
	viper.SetDefault("GOOGLE_ADS_LOGIN_CUSTOMER_ID", "")

	viper.SetDefault("SLACK_BASE_URL", "https://slack.com/api")
	viper.SetDefault("SLACK_SIGNING_SECRET", "your_signing_secret")
	viper.SetDefault("SLACK_SIGNATURE_MAX_AGE_SECONDS", 300)

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Orçamentos por classe de recurso (limite por janela fixa)
	viper.SetDefault("RATE_LIMIT_ADS_API_LIMIT", 100)
	viper.SetDefault("RATE_LIMIT_ADS_API_WINDOW_SECONDS", 60)
	viper.SetDefault("RATE_LIMIT_SLACK_API_LIMIT", 50)
	viper.SetDefault("RATE_LIMIT_SLACK_API_WINDOW_SECONDS", 60)
	viper.SetDefault("RATE_LIMIT_INSIGHT_STD_LIMIT", 60)
	viper.SetDefault("RATE_LIMIT_INSIGHT_STD_WINDOW_SECONDS", 60)
	viper.SetDefault("RATE_LIMIT_INSIGHT_PREM_LIMIT", 10)
	viper.SetDefault("RATE_LIMIT_INSIGHT_PREM_WINDOW_SECONDS", 60)

	// Defaults para o agendador de detecção
	viper.SetDefault("DETECTION_SYNC_CRON", "0 * * * *") // A cada hora
	viper.SetDefault("DETECTION_SYNC_TENANT_TIMEOUT_SECONDS", 120)
	viper.SetDefault("DETECTION_SYNC_REQUEST_DELAY_SECONDS", 2)
	viper.SetDefault("DETECTION_SYNC_ENABLED", false)

	// Defaults para a varredura de expiração
	viper.SetDefault("EXPIRATION_SWEEP_CRON", "*/10 * * * *") // A cada 10 minutos
	viper.SetDefault("EXPIRATION_SWEEP_ENABLED", true)

	viper.SetDefault("WORKFLOW_APPROVAL_TTL_HOURS", 24)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.GoogleAds.URL = fmt.Sprintf("%s/%s", config.GoogleAds.BaseURL, config.GoogleAds.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
