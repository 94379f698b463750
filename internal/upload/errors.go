package upload

import (
	"errors"
	"fmt"
	"strings"

	"medsum/internal/services"
)

const (
	// InvalidFileMessage is shown when the selected file is not a PDF.
	InvalidFileMessage = "Please upload a valid PDF file."
	// FailurePrefix precedes transport and parse failure descriptions.
	FailurePrefix = "Failed to analyze report. "
)

var (
	// ErrInvalidFile reports a selection whose declared type is not application/pdf.
	ErrInvalidFile = fmt.Errorf("%w: upload: file is not a pdf", services.ErrValidation)
	// ErrBusy reports a submission attempted while another is in flight.
	ErrBusy = errors.New("upload: submission already in flight")
	// ErrMissingBindings reports a controller built without all page elements.
	ErrMissingBindings = errors.New("upload: missing bindings")
)

// reasoner is implemented by server-reported failures whose text is shown
// verbatim.
type reasoner interface {
	Reason() string
}

// FailureMessage returns the banner text for a failed submission. Server
// reported failures use the server's message as-is; everything else is the
// fixed prefix plus the underlying cause.
func FailureMessage(err error) string {
	if err == nil {
		return ""
	}
	var r reasoner
	if errors.As(err, &r) {
		return r.Reason()
	}
	return FailurePrefix + describe(err)
}

// describe returns the message of the innermost cause, skipping the
// context added by wrappers. A chain that ends in a bare marker keeps the
// detail recorded next to it.
func describe(err error) string {
	for {
		var next error
		switch x := err.(type) {
		case interface{ Unwrap() []error }:
			if errs := x.Unwrap(); len(errs) > 0 {
				next = errs[len(errs)-1]
			}
		case interface{ Unwrap() error }:
			next = x.Unwrap()
		}
		if next == nil {
			return strings.TrimSpace(err.Error())
		}
		if isMarker(next) {
			return strings.TrimSpace(strings.TrimPrefix(err.Error(), next.Error()+":"))
		}
		err = next
	}
}

var markers = []error{
	services.ErrValidation,
	services.ErrConfiguration,
	services.ErrServer,
	services.ErrParse,
	services.ErrTimeout,
	services.ErrTransient,
}

func isMarker(err error) bool {
	for _, marker := range markers {
		if err == marker {
			return true
		}
	}
	return false
}
