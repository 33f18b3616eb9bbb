package infra

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/umalmyha/churn/internal/config"
)

func TestLogger(t *testing.T) {
	logger, err := Logger(config.LogCfg{Level: "debug", Format: "text"})
	require.NoError(t, err)
	require.Equal(t, logrus.DebugLevel, logger.GetLevel())
	require.IsType(t, &logrus.TextFormatter{}, logger.Formatter)

	_, err = Logger(config.LogCfg{Level: "loud", Format: "json"})
	require.Error(t, err)

	_, err = Logger(config.LogCfg{Level: "info", Format: "xml"})
	require.Error(t, err)
}
