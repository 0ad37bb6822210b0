package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/donaldgifford/catalog-browser/internal/upstream"
)

// Kind classifies engine errors.
type Kind string

// Error kinds.
const (
	KindGatewayUnavailable Kind = "gateway_unavailable"
	KindGatewayError       Kind = "gateway_error"
	KindInvalidInput       Kind = "invalid_input"
	KindNotFound           Kind = "not_found"
)

// Sentinels matched with errors.Is against any *Error.
var (
	ErrGatewayUnavailable = errors.New("catalog gateway unavailable")
	ErrGatewayError       = errors.New("catalog gateway error")
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
)

// Error is returned by every engine operation that fails. Status carries the
// upstream HTTP status for KindGatewayError and KindNotFound when known.
type Error struct {
	Kind   Kind
	Op     string
	Status int
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

// Unwrap exposes both the kind sentinel and the cause.
func (e *Error) Unwrap() []error {
	return []error{e.sentinel(), e.Err}
}

func (e *Error) sentinel() error {
	switch e.Kind {
	case KindGatewayUnavailable:
		return ErrGatewayUnavailable
	case KindInvalidInput:
		return ErrInvalidInput
	case KindNotFound:
		return ErrNotFound
	default:
		return ErrGatewayError
	}
}

// KindOf returns the kind of an engine error, or "" for nil and foreign
// errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Message returns the user-facing text for an engine error.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var e *Error
	if !errors.As(err, &e) {
		return "Something went wrong: " + err.Error()
	}

	subject := "Failed to load products"
	switch e.Op {
	case opFetchCategories:
		subject = "Failed to load categories"
	case opFetchProduct:
		subject = "Failed to load product"
	}

	switch e.Kind {
	case KindNotFound:
		return "Product not found"
	case KindGatewayUnavailable:
		return subject + ": the catalog service is unavailable"
	case KindInvalidInput:
		return subject + ": " + e.Err.Error()
	default:
		if e.Status > 0 {
			return fmt.Sprintf("%s: the catalog service returned status %d", subject, e.Status)
		}
		return subject + ": the catalog service returned an invalid response"
	}
}

// classify converts a gateway failure into an *Error.
func classify(op string, err error) *Error {
	var existing *Error
	if errors.As(err, &existing) {
		return existing
	}

	var se *upstream.StatusError
	switch {
	case errors.Is(err, upstream.ErrUnavailable),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return &Error{Kind: KindGatewayUnavailable, Op: op, Err: err}
	case errors.As(err, &se):
		kind := KindGatewayError
		if se.Status == http.StatusNotFound {
			kind = KindNotFound
		}
		return &Error{Kind: kind, Op: op, Status: se.Status, Err: err}
	default:
		return &Error{Kind: KindGatewayError, Op: op, Err: err}
	}
}

func invalidInput(op, msg string) *Error {
	return &Error{Kind: KindInvalidInput, Op: op, Err: errors.New(msg)}
}
