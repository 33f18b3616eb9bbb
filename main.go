package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	_ "github.com/umalmyha/churn/docs"
	"github.com/umalmyha/churn/internal/cache"
	"github.com/umalmyha/churn/internal/config"
	"github.com/umalmyha/churn/internal/infra"
	"github.com/umalmyha/churn/internal/notification"
	"github.com/umalmyha/churn/internal/prediction"
	"github.com/umalmyha/churn/internal/repository"
	"github.com/umalmyha/churn/internal/service"
	"github.com/umalmyha/churn/pkg/db/transactor"
)

const DefaultConnectTimeout = 10 * time.Second

// @title       Churn dashboard API
// @version     1.0
// @description Customer churn scoring, dashboard and retention interventions
// @BasePath    /
func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.Fatalf("failed to read .env file - %s", err)
	}

	cfg, err := config.Build()
	if err != nil {
		logrus.Fatal(err)
	}

	logger, err := infra.Logger(cfg.LogCfg)
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), DefaultConnectTimeout)
	defer cancel()

	awsCfg, err := infra.AWS(ctx, cfg.AWSCfg)
	if err != nil {
		logger.Fatal(err)
	}

	pgCfg, err := infra.ResolveDatabaseCredentials(ctx, secretsmanager.NewFromConfig(awsCfg), cfg.PostgresCfg)
	if err != nil {
		logger.Fatal(err)
	}

	pool, err := infra.Postgresql(ctx, pgCfg)
	if err != nil {
		logger.Fatal(err)
	}
	defer pool.Close()

	redisClient, err := infra.Redis(ctx, cfg.RedisCfg)
	if err != nil {
		logger.Fatal(err)
	}

	predictionCache := cache.NewNoopPredictionCache()
	if redisClient != nil {
		defer redisClient.Close()
		predictionCache = cache.NewRedisPredictionCache(redisClient, cfg.RedisCfg.PredictionTTL)
	} else {
		logger.Info("redis address isn't set, predictions won't be cached")
	}

	notifier, err := newNotifier(cfg.MailCfg, awsCfg)
	if err != nil {
		logger.Fatal(err)
	}

	gateway := prediction.NewSagemakerGateway(
		infra.SagemakerRuntime(awsCfg),
		cfg.PredictionCfg.Endpoint,
		cfg.PredictionCfg.ContentType,
		cfg.PredictionCfg.Timeout,
	)

	// Transactor
	trx := transactor.NewPgxTransactor(pool)
	trxExecutor := transactor.NewPgxWithinTransactionExecutor(pool)

	// Repositories
	customerRps := repository.NewPostgresCustomerRepository(trxExecutor)
	statusRps := repository.NewPostgresStatusRepository(trxExecutor)
	summaryRps := repository.NewPostgresSummaryRepository(trxExecutor)

	// Services
	services := infra.Services{
		Customer:     service.NewCustomerService(customerRps, statusRps),
		Prediction:   service.NewPredictionService(gateway, predictionCache, customerRps, logger),
		Dashboard:    service.NewDashboardService(summaryRps),
		Intervention: service.NewInterventionService(trx, customerRps, statusRps, notifier, logger),
	}

	e, err := infra.Router(cfg.HTTPCfg, services, logger)
	if err != nil {
		logger.Fatal(err)
	}

	shutdownCh := make(chan os.Signal, 1)
	errorCh := make(chan error, 1)
	signal.Notify(shutdownCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Infof("starting server on port %d", cfg.HTTPCfg.Port)
		errorCh <- e.Start(fmt.Sprintf(":%d", cfg.HTTPCfg.Port))
	}()

	select {
	case <-shutdownCh:
		ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPCfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutdown signal has been sent, stopping the server...")
		if err := e.Shutdown(ctx); err != nil {
			logger.Errorf("failed to stop server gracefully - %s", err)
		}
	case err := <-errorCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("shutting down the server, unexpected error occurred - %s", err)
		}
	}
}

func newNotifier(cfg config.MailCfg, awsCfg aws.Config) (notification.Notifier, error) {
	switch cfg.Provider {
	case config.MailProviderSES:
		return notification.NewSESNotifier(ses.NewFromConfig(awsCfg), cfg.From, cfg.To), nil
	case config.MailProviderSMTP:
		dialer := notification.NewSMTPDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
		return notification.NewSMTPNotifier(dialer, cfg.From, cfg.To), nil
	default:
		return nil, fmt.Errorf("unknown mail provider %s", cfg.Provider)
	}
}
