package infra

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/stretchr/testify/require"
	"github.com/umalmyha/churn/internal/config"
)

type secretStub struct {
	secret *string
	err    error
	calls  int
}

func (s *secretStub) GetSecretValue(_ context.Context, _ *secretsmanager.GetSecretValueInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: s.secret}, nil
}

func TestResolveDatabaseCredentials(t *testing.T) {
	ctx := context.Background()
	cfg := config.PostgresCfg{Host: "localhost", Port: 5432, SecretID: "hackathon-db-secret"}

	t.Log("credentials and host are taken from secret")
	{
		stub := &secretStub{secret: aws.String(`{"username":"admin","password":"s3cret","host":"db.internal"}`)}
		res, err := ResolveDatabaseCredentials(ctx, stub, cfg)
		require.NoError(t, err)
		require.Equal(t, "admin", res.User)
		require.Equal(t, "s3cret", res.Password)
		require.Equal(t, "db.internal", res.Host)
		require.Equal(t, 5432, res.Port)
	}

	t.Log("secret manager is not called without secret id")
	{
		stub := &secretStub{}
		res, err := ResolveDatabaseCredentials(ctx, stub, config.PostgresCfg{User: "local"})
		require.NoError(t, err)
		require.Equal(t, "local", res.User)
		require.Zero(t, stub.calls)
	}

	t.Log("unreachable secret manager fails startup")
	{
		stub := &secretStub{err: errors.New("access denied")}
		_, err := ResolveDatabaseCredentials(ctx, stub, cfg)
		require.Error(t, err)
	}

	t.Log("secret without password is rejected")
	{
		stub := &secretStub{secret: aws.String(`{"username":"admin"}`)}
		_, err := ResolveDatabaseCredentials(ctx, stub, cfg)
		require.Error(t, err)
	}

	t.Log("malformed secret is rejected")
	{
		stub := &secretStub{secret: aws.String(`not json`)}
		_, err := ResolveDatabaseCredentials(ctx, stub, cfg)
		require.Error(t, err)
	}
}
