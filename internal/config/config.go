package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

const (
	MailProviderSMTP = "smtp"
	MailProviderSES  = "ses"
)

type HTTPCfg struct {
	Port            int           `env:"HTTP_PORT" envDefault:"3000"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	AllowOrigins    []string      `env:"HTTP_ALLOW_ORIGINS" envDefault:"*" envSeparator:","`
}

type LogCfg struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type PostgresCfg struct {
	Host        string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port        int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User        string `env:"POSTGRES_USER"`
	Password    string `env:"POSTGRES_PASSWORD"`
	Database    string `env:"POSTGRES_DB" envDefault:"telecom"`
	SslMode     string `env:"POSTGRES_SSL_MODE" envDefault:"disable"`
	PoolMaxConn int    `env:"POSTGRES_POOL_MAX_CONN" envDefault:"20"`
	// SecretID points to secret with username, password and host which override the values above
	SecretID string `env:"POSTGRES_SECRET_ID"`
}

type MongoCfg struct {
	Host        string `env:"MONGO_HOST" envDefault:"localhost"`
	Port        int    `env:"MONGO_PORT" envDefault:"27017"`
	User        string `env:"MONGO_USER"`
	Password    string `env:"MONGO_PASSWORD"`
	MaxPoolSize int    `env:"MONGO_MAX_POOL_SIZE" envDefault:"100"`
}

type RedisCfg struct {
	Addr          string        `env:"REDIS_ADDR"`
	Password      string        `env:"REDIS_PASSWORD"`
	DB            int           `env:"REDIS_DB" envDefault:"0"`
	PredictionTTL time.Duration `env:"REDIS_PREDICTION_TTL" envDefault:"24h"`
}

type AWSCfg struct {
	Region string `env:"AWS_REGION" envDefault:"us-east-1"`
}

type PredictionCfg struct {
	Endpoint    string        `env:"PREDICTION_ENDPOINT" envDefault:"xgboost-churn-model"`
	ContentType string        `env:"PREDICTION_CONTENT_TYPE" envDefault:"text/csv"`
	Timeout     time.Duration `env:"PREDICTION_TIMEOUT" envDefault:"5s"`
}

type MailCfg struct {
	Provider     string `env:"MAIL_PROVIDER" envDefault:"ses"`
	From         string `env:"MAIL_FROM,required"`
	To           string `env:"MAIL_TO,required"`
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"465"`
	SMTPUser     string `env:"SMTP_USER"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
}

type Config struct {
	HTTPCfg       HTTPCfg
	LogCfg        LogCfg
	PostgresCfg   PostgresCfg
	RedisCfg      RedisCfg
	AWSCfg        AWSCfg
	PredictionCfg PredictionCfg
	MailCfg       MailCfg
}

// Build reads configuration from environment
func Build() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment variables - %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.MailCfg.Provider {
	case MailProviderSES:
	case MailProviderSMTP:
		if c.MailCfg.SMTPHost == "" {
			return fmt.Errorf("SMTP_HOST is required for %s mail provider", MailProviderSMTP)
		}
	default:
		return fmt.Errorf("unknown mail provider %q, expected %s or %s", c.MailCfg.Provider, MailProviderSMTP, MailProviderSES)
	}

	if c.PostgresCfg.SecretID == "" && c.PostgresCfg.User == "" {
		return fmt.Errorf("either POSTGRES_USER or POSTGRES_SECRET_ID must be set")
	}

	if c.PredictionCfg.Timeout <= 0 {
		return fmt.Errorf("PREDICTION_TIMEOUT must be positive, got %s", c.PredictionCfg.Timeout)
	}
	return nil
}

// LoaderCfg is configuration of bulk loader, it doesn't need mail or model access
type LoaderCfg struct {
	LogCfg      LogCfg
	PostgresCfg PostgresCfg
	MongoCfg    MongoCfg
	AWSCfg      AWSCfg
}

func BuildLoader() (*LoaderCfg, error) {
	var cfg LoaderCfg
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment variables - %w", err)
	}
	return &cfg, nil
}
