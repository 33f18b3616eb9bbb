package validation

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/labstack/echo/v4"
	apperrors "github.com/umalmyha/churn/internal/errors"
)

// PayloadError is raised when request input doesn't satisfy declared constraints
type PayloadError struct {
	violations []apperrors.Violation
}

func (e *PayloadError) Error() string {
	msgs := make([]string, len(e.violations))
	for i, v := range e.violations {
		msgs[i] = v.Message
	}
	return strings.Join(msgs, "; ")
}

// Violations returns copy of input violations
func (e *PayloadError) Violations() []apperrors.Violation {
	res := make([]apperrors.Violation, len(e.violations))
	copy(res, e.violations)
	return res
}

// EchoValidator plugs go-playground validator into echo with translated messages
type EchoValidator struct {
	validator  *validator.Validate
	translator ut.Translator
}

func Echo(validator *validator.Validate, translator ut.Translator) *EchoValidator {
	return &EchoValidator{
		validator:  validator,
		translator: translator,
	}
}

// English builds validator with default english messages
func English() (*EchoValidator, error) {
	enLocale := en.New()
	trans, ok := ut.New(enLocale, enLocale).GetTranslator("en")
	if !ok {
		return nil, errors.New("missing en translations")
	}

	v := validator.New()
	if err := enTranslations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, fmt.Errorf("failed to register en translations - %w", err)
	}
	return Echo(v, trans), nil
}

func (v *EchoValidator) Validate(i any) error {
	err := v.validator.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return v.payloadError(ve)
	}

	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func (v *EchoValidator) payloadError(ve validator.ValidationErrors) error {
	pldErr := &PayloadError{violations: make([]apperrors.Violation, 0, len(ve))}
	for _, e := range ve {
		pldErr.violations = append(pldErr.violations, apperrors.Violation{
			Field:   e.Field(),
			Kind:    violationKind(e.Tag()),
			Message: e.Translate(v.translator),
		})
	}
	return pldErr
}

func violationKind(tag string) apperrors.ViolationKind {
	if strings.HasPrefix(tag, "required") {
		return apperrors.KindMissingField
	}
	return apperrors.KindOutOfRange
}
