package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ViolationKind classifies a single field problem found while reading a customer record
type ViolationKind string

const (
	// KindMissingField means required field is absent or null
	KindMissingField ViolationKind = "missing_field"
	// KindTypeMismatch means value can't be coerced to declared primitive type
	KindTypeMismatch ViolationKind = "type_mismatch"
	// KindOutOfRange means value has correct type but violates declared bounds
	KindOutOfRange ViolationKind = "out_of_range"
)

var (
	// ErrMissingField matches ValidationErr which contains at least one missing field
	ErrMissingField = errors.New("missing field")
	// ErrTypeMismatch matches ValidationErr which contains at least one type mismatch
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrOutOfRange matches ValidationErr which contains at least one out of range value
	ErrOutOfRange = errors.New("value out of range")
)

// Violation is a single field problem
type Violation struct {
	Field   string        `json:"field"`
	Kind    ViolationKind `json:"kind"`
	Message string        `json:"message"`
}

// ValidationErr collects every field problem of a malformed customer record
type ValidationErr struct {
	violations []Violation
}

// NewValidationErr builds ValidationErr, nil is returned if there are no violations
func NewValidationErr(violations []Violation) error {
	if len(violations) == 0 {
		return nil
	}
	return &ValidationErr{violations: violations}
}

func (e *ValidationErr) Error() string {
	msgs := make([]string, 0, len(e.violations))
	for _, v := range e.violations {
		msgs = append(msgs, v.Message)
	}
	return strings.Join(msgs, "; ")
}

// Violations returns copy of collected violations
func (e *ValidationErr) Violations() []Violation {
	res := make([]Violation, len(e.violations))
	copy(res, e.violations)
	return res
}

// Is reports whether any violation is of kind represented by target sentinel
func (e *ValidationErr) Is(target error) bool {
	var kind ViolationKind
	switch target {
	case ErrMissingField:
		kind = KindMissingField
	case ErrTypeMismatch:
		kind = KindTypeMismatch
	case ErrOutOfRange:
		kind = KindOutOfRange
	default:
		return false
	}

	for _, v := range e.violations {
		if v.Kind == kind {
			return true
		}
	}
	return false
}

func (e *ValidationErr) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Errors []Violation `json:"errors"`
	}{Errors: e.violations})
}

// EncodingErr is raised when record can't be turned into feature vector
type EncodingErr struct {
	field   string
	message string
}

func (e *EncodingErr) Error() string {
	return fmt.Sprintf("failed to encode feature %s - %s", e.field, e.message)
}

func NewEncodingErr(field, msg string) error {
	return &EncodingErr{field: field, message: msg}
}

// PredictionUnavailableErr is raised when prediction endpoint is unreachable or answered with garbage
type PredictionUnavailableErr struct {
	message string
	cause   error
}

func (e *PredictionUnavailableErr) Error() string {
	if e.cause == nil {
		return e.message
	}
	return fmt.Sprintf("%s - %v", e.message, e.cause)
}

func (e *PredictionUnavailableErr) Unwrap() error {
	return e.cause
}

func NewPredictionUnavailableErr(msg string, cause error) error {
	return &PredictionUnavailableErr{message: msg, cause: cause}
}

// PersistenceErr wraps storage failures, operation is a short name of what was attempted
type PersistenceErr struct {
	operation string
	cause     error
}

func (e *PersistenceErr) Error() string {
	return fmt.Sprintf("failed to %s - %v", e.operation, e.cause)
}

func (e *PersistenceErr) Unwrap() error {
	return e.cause
}

func (e *PersistenceErr) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Operation string `json:"operation"`
		Message   string `json:"message"`
	}{Operation: e.operation, Message: e.Error()})
}

func NewPersistenceErr(operation string, cause error) error {
	return &PersistenceErr{operation: operation, cause: cause}
}

type EntryNotFoundErr struct {
	message string
}

func (e *EntryNotFoundErr) Error() string {
	return e.message
}

func NewEntryNotFoundErr(msg string) *EntryNotFoundErr {
	return &EntryNotFoundErr{message: msg}
}

// NotificationErr is raised when outreach email couldn't be delivered
type NotificationErr struct {
	cause error
}

func (e *NotificationErr) Error() string {
	return fmt.Sprintf("failed to send notification - %v", e.cause)
}

func (e *NotificationErr) Unwrap() error {
	return e.cause
}

func NewNotificationErr(cause error) error {
	return &NotificationErr{cause: cause}
}
