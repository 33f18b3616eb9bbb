package infra

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/churn/internal/config"
)

const (
	logFormatJSON = "json"
	logFormatText = "text"
)

func Logger(cfg config.LogCfg) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("unknown log level %s - %w", cfg.Level, err)
	}

	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetLevel(level)

	switch cfg.Format {
	case logFormatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{})
	case logFormatText:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("unknown log format %s, expected %s or %s", cfg.Format, logFormatJSON, logFormatText)
	}
	return logger, nil
}
