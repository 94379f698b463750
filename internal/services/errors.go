package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation    = errors.New("validation error")
	ErrConfiguration = errors.New("configuration error")
	ErrServer        = errors.New("server error")
	ErrParse         = errors.New("parse error")
	ErrTimeout       = errors.New("timeout")
	ErrTransient     = errors.New("transient failure")
)

// Class names the user-facing failure category of an error.
type Class string

const (
	ClassNone         Class = ""
	ClassInvalidInput Class = "invalid_input"
	ClassServer       Class = "server"
	ClassTransport    Class = "transport"
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrTransient
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// FailureClass maps an error onto the failure taxonomy surfaced to users.
// Unmarked errors are treated as transport failures.
func FailureClass(err error) Class {
	switch {
	case err == nil:
		return ClassNone
	case errors.Is(err, ErrValidation), errors.Is(err, ErrConfiguration):
		return ClassInvalidInput
	case errors.Is(err, ErrServer):
		return ClassServer
	default:
		return ClassTransport
	}
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
