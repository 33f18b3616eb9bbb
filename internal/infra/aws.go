package infra

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sagemakerruntime"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/umalmyha/churn/internal/config"
)

// AWS loads shared SDK configuration for the configured region
func AWS(ctx context.Context, cfg config.AWSCfg) (aws.Config, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load aws configuration - %w", err)
	}
	return awsCfg, nil
}

// SagemakerRuntime builds model endpoint client, SDK retries are disabled since
// failed prediction is reported to the caller right away
func SagemakerRuntime(awsCfg aws.Config) *sagemakerruntime.Client {
	return sagemakerruntime.NewFromConfig(awsCfg, func(o *sagemakerruntime.Options) {
		o.RetryMaxAttempts = 1
	})
}

// GetSecretValueAPI is the part of Secrets Manager client used to resolve credentials
type GetSecretValueAPI interface {
	GetSecretValue(context.Context, *secretsmanager.GetSecretValueInput, ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

type databaseSecret struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Host     string `json:"host"`
}

// ResolveDatabaseCredentials overrides user, password and host with secret contents.
// It is done once on startup, config is returned untouched if no secret is configured.
func ResolveDatabaseCredentials(ctx context.Context, client GetSecretValueAPI, cfg config.PostgresCfg) (config.PostgresCfg, error) {
	if cfg.SecretID == "" {
		return cfg, nil
	}

	out, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{SecretId: aws.String(cfg.SecretID)})
	if err != nil {
		return cfg, fmt.Errorf("failed to read secret %s - %w", cfg.SecretID, err)
	}

	if out.SecretString == nil {
		return cfg, errors.New("database secret must be a string")
	}

	var secret databaseSecret
	if err := json.Unmarshal([]byte(*out.SecretString), &secret); err != nil {
		return cfg, fmt.Errorf("failed to parse secret %s - %w", cfg.SecretID, err)
	}

	if secret.Username == "" || secret.Password == "" {
		return cfg, fmt.Errorf("secret %s must contain username and password", cfg.SecretID)
	}

	cfg.User = secret.Username
	cfg.Password = secret.Password
	if secret.Host != "" {
		cfg.Host = secret.Host
	}
	return cfg, nil
}
