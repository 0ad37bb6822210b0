package upstream

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	// ErrUnavailable wraps transport failures: connection errors, timeouts,
	// cancellation, exhausted rate budgets and an open circuit breaker.
	ErrUnavailable = errors.New("upstream unavailable")

	// ErrBadResponse wraps successful responses whose body cannot be decoded.
	ErrBadResponse = errors.New("malformed upstream response")
)

// StatusError is returned for non-2xx upstream responses.
type StatusError struct {
	Op      string
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: upstream error (status %d)", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: upstream error (status %d): %s", e.Op, e.Status, e.Message)
}

// IsStatus reports whether err carries an upstream StatusError with the given
// HTTP status.
func IsStatus(err error, status int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == status
}

const maxErrorMessage = 512

// errorMessage extracts a readable message from an error body. Both dialects
// answer with {"message": ...} on failure; anything else is returned raw.
func errorMessage(body []byte) string {
	var payload struct {
		Message any `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil {
		switch m := payload.Message.(type) {
		case string:
			return m
		case []any:
			parts := make([]string, 0, len(m))
			for _, p := range m {
				parts = append(parts, fmt.Sprint(p))
			}
			return strings.Join(parts, "; ")
		}
	}

	msg := strings.TrimSpace(string(body))
	if len(msg) > maxErrorMessage {
		cut := maxErrorMessage
		for cut > 0 && !utf8.RuneStart(msg[cut]) {
			cut--
		}
		msg = msg[:cut]
	}
	return msg
}
