package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// RequestLogger writes access log entry per request, request id is expected to be set by echo RequestID middleware
func RequestLogger(logger logrus.FieldLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// error handler must run first so the logged status is the one sent
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			logger.WithFields(logrus.Fields{
				"requestId": res.Header().Get(echo.HeaderXRequestID),
				"method":    req.Method,
				"uri":       req.RequestURI,
				"status":    res.Status,
				"latency":   time.Since(start).String(),
				"bytesOut":  res.Size,
			}).Info("request handled")

			return nil
		}
	}
}
