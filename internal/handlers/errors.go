package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	apperrors "github.com/umalmyha/churn/internal/errors"
	"github.com/umalmyha/churn/internal/validation"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type errorResponse struct {
	Status  string                `json:"status"`
	Code    int                   `json:"code"`
	Message string                `json:"message"`
	Errors  []apperrors.Violation `json:"errors,omitempty"`
}

// ErrorHandler renders every failure as structured JSON and logs it
func ErrorHandler(logger logrus.FieldLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		res := toErrorResponse(err)

		entry := logger.WithFields(logrus.Fields{
			"requestId": c.Response().Header().Get(echo.HeaderXRequestID),
			"method":    c.Request().Method,
			"uri":       c.Request().RequestURI,
			"status":    res.Code,
		}).WithError(err)

		if res.Code >= http.StatusInternalServerError {
			entry.Error("request failed")
		} else {
			entry.Warn("request rejected")
		}

		if c.Response().Committed {
			return
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(res.Code)
		} else {
			err = c.JSON(res.Code, res)
		}

		if err != nil {
			entry.WithError(err).Error("failed to write error response")
		}
	}
}

func toErrorResponse(err error) *errorResponse {
	var (
		validationErr   *apperrors.ValidationErr
		payloadErr      *validation.PayloadError
		encodingErr     *apperrors.EncodingErr
		notFoundErr     *apperrors.EntryNotFoundErr
		unavailableErr  *apperrors.PredictionUnavailableErr
		notificationErr *apperrors.NotificationErr
		persistenceErr  *apperrors.PersistenceErr
		echoErr         *echo.HTTPError
	)

	switch {
	case errors.As(err, &validationErr):
		return newErrorResponse(http.StatusBadRequest, "customer record is malformed", validationErr.Violations())
	case errors.As(err, &payloadErr):
		return newErrorResponse(http.StatusBadRequest, "request input is invalid", payloadErr.Violations())
	case errors.As(err, &encodingErr):
		return newErrorResponse(http.StatusBadRequest, encodingErr.Error(), nil)
	case errors.As(err, &notFoundErr):
		return newErrorResponse(http.StatusNotFound, notFoundErr.Error(), nil)
	case errors.As(err, &unavailableErr):
		return newErrorResponse(http.StatusBadGateway, "prediction is unavailable", nil)
	case errors.As(err, &notificationErr):
		return newErrorResponse(http.StatusBadGateway, "failed to send message", nil)
	case errors.As(err, &persistenceErr):
		return newErrorResponse(http.StatusInternalServerError, "storage is unavailable", nil)
	case errors.As(err, &echoErr):
		return newErrorResponse(echoErr.Code, fmt.Sprint(echoErr.Message), nil)
	default:
		return newErrorResponse(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), nil)
	}
}

func newErrorResponse(code int, msg string, violations []apperrors.Violation) *errorResponse {
	return &errorResponse{
		Status:  statusError,
		Code:    code,
		Message: msg,
		Errors:  violations,
	}
}
