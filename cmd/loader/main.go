package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/umalmyha/churn/internal/config"
	"github.com/umalmyha/churn/internal/infra"
	"github.com/umalmyha/churn/internal/loader"
	"github.com/umalmyha/churn/internal/repository"
	"github.com/umalmyha/churn/pkg/db/transactor"
)

const (
	targetMongo    = "mongo"
	targetPostgres = "postgres"
)

const DefaultConnectTimeout = 10 * time.Second

type loadFlags struct {
	file        string
	target      string
	splitAt     int
	batchSize   int
	skipInvalid bool
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var flags loadFlags

	cmd := &cobra.Command{
		Use:          "loader",
		Short:        "Uploads customer dataset into storage",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVarP(&flags.file, "file", "f", "dataset/business-data-final.csv", "path to dataset csv file")
	cmd.Flags().StringVarP(&flags.target, "target", "t", targetMongo, "storage to upload into: mongo or postgres")
	cmd.Flags().IntVar(&flags.splitAt, "split-at", loader.DefaultSplitAt, "data row starting second dataset")
	cmd.Flags().IntVar(&flags.batchSize, "batch-size", loader.DefaultBatchSize, "number of rows written at once")
	cmd.Flags().BoolVar(&flags.skipInvalid, "skip-invalid", false, "skip malformed rows instead of aborting")
	return cmd
}

func run(ctx context.Context, flags loadFlags) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read .env file - %w", err)
	}

	cfg, err := config.BuildLoader()
	if err != nil {
		return err
	}

	logger, err := infra.Logger(cfg.LogCfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	sink, closeSink, err := connectSink(ctx, cfg, flags.target)
	if err != nil {
		return err
	}
	defer closeSink()

	f, err := os.Open(flags.file)
	if err != nil {
		return fmt.Errorf("failed to open dataset - %w", err)
	}
	defer f.Close()

	opts := loader.Options{
		SplitAt:     flags.splitAt,
		BatchSize:   flags.batchSize,
		SkipInvalid: flags.skipInvalid,
	}

	log := logger.WithFields(logrus.Fields{"file": flags.file, "target": flags.target})
	if _, err := loader.Load(ctx, f, sink, opts, log); err != nil {
		log.Errorf("upload failed - %s", err.Error())
		return err
	}
	return nil
}

func connectSink(ctx context.Context, cfg *config.LoaderCfg, target string) (repository.CustomerImporter, func(), error) {
	connCtx, cancel := context.WithTimeout(ctx, DefaultConnectTimeout)
	defer cancel()

	switch target {
	case targetMongo:
		client, err := infra.Mongodb(connCtx, cfg.MongoCfg)
		if err != nil {
			return nil, nil, err
		}

		closeFn := func() {
			ctx, cancel := context.WithTimeout(context.Background(), DefaultConnectTimeout)
			defer cancel()
			_ = client.Disconnect(ctx)
		}
		return repository.NewMongoCustomerRepository(client), closeFn, nil
	case targetPostgres:
		awsCfg, err := infra.AWS(connCtx, cfg.AWSCfg)
		if err != nil {
			return nil, nil, err
		}

		pgCfg, err := infra.ResolveDatabaseCredentials(connCtx, secretsmanager.NewFromConfig(awsCfg), cfg.PostgresCfg)
		if err != nil {
			return nil, nil, err
		}

		pool, err := infra.Postgresql(connCtx, pgCfg)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewPostgresCustomerRepository(transactor.NewPgxWithinTransactionExecutor(pool)), pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown target %s, expected %s or %s", target, targetMongo, targetPostgres)
	}
}
