package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()

	e := echo.New()
	e.Use(echoMiddleware.RequestID())
	e.Use(RequestLogger(logger))
	e.GET("/ok", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/fail", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "no coffee")
	})

	t.Log("successful request is logged with its status")
	{
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		require.Equal(t, logrus.InfoLevel, entry.Level)
		require.Equal(t, http.StatusOK, entry.Data["status"])
		require.NotEmpty(t, entry.Data["requestId"])
	}

	t.Log("failed request is logged with status written by error handler")
	{
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))
		require.Equal(t, http.StatusTeapot, rec.Code)
		require.Equal(t, http.StatusTeapot, hook.LastEntry().Data["status"])
	}
}
