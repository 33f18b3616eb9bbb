package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("MAIL_FROM", "noreply@telecom.test")
	t.Setenv("MAIL_TO", "customer@telecom.test")
	t.Setenv("POSTGRES_USER", "telecom")
}

func TestBuildDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Build()
	require.NoError(t, err)
	require.Equal(t, 3000, cfg.HTTPCfg.Port)
	require.Equal(t, "xgboost-churn-model", cfg.PredictionCfg.Endpoint)
	require.Equal(t, "text/csv", cfg.PredictionCfg.ContentType)
	require.Equal(t, 5*time.Second, cfg.PredictionCfg.Timeout)
	require.Equal(t, MailProviderSES, cfg.MailCfg.Provider)
	require.Equal(t, "telecom", cfg.PostgresCfg.Database)
	require.Empty(t, cfg.RedisCfg.Addr, "cache is disabled by default")
	require.Equal(t, []string{"*"}, cfg.HTTPCfg.AllowOrigins)
}

func TestBuildMissingRequired(t *testing.T) {
	t.Setenv("POSTGRES_USER", "telecom")

	_, err := Build()
	require.Error(t, err, "mail addresses are required")
}

func TestBuildSMTPRequiresHost(t *testing.T) {
	setRequired(t)
	t.Setenv("MAIL_PROVIDER", MailProviderSMTP)

	_, err := Build()
	require.Error(t, err)

	t.Setenv("SMTP_HOST", "smtp.telecom.test")
	cfg, err := Build()
	require.NoError(t, err)
	require.Equal(t, 465, cfg.MailCfg.SMTPPort)
}

func TestBuildUnknownMailProvider(t *testing.T) {
	setRequired(t)
	t.Setenv("MAIL_PROVIDER", "pigeon")

	_, err := Build()
	require.Error(t, err)
}

func TestBuildDatabaseCredentialsFromSecret(t *testing.T) {
	setRequired(t)
	t.Setenv("POSTGRES_USER", "")
	t.Setenv("POSTGRES_SECRET_ID", "hackathon-db-secret")

	cfg, err := Build()
	require.NoError(t, err)
	require.Equal(t, "hackathon-db-secret", cfg.PostgresCfg.SecretID)
}

func TestBuildRejectsNonPositiveTimeout(t *testing.T) {
	setRequired(t)
	t.Setenv("PREDICTION_TIMEOUT", "0s")

	_, err := Build()
	require.Error(t, err)
}

func TestBuildLoader(t *testing.T) {
	t.Setenv("MONGO_HOST", "mongo-telecom")

	cfg, err := BuildLoader()
	require.NoError(t, err)
	require.Equal(t, "mongo-telecom", cfg.MongoCfg.Host)
	require.Equal(t, 27017, cfg.MongoCfg.Port)
}
