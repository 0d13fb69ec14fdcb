package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	nethttp "net/http"
	"strings"

	"github.com/piresc/saferoute/internal/pkg/apperrors"
)

// HTTPError is a non-2xx backend response
type HTTPError struct {
	StatusCode int
	Detail     string
	Method     string
	Path       string
}

func (e *HTTPError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, nethttp.StatusText(e.StatusCode))
}

// Unwrap maps well-known statuses onto the shared error taxonomy so
// callers can use errors.Is.
func (e *HTTPError) Unwrap() error {
	switch e.StatusCode {
	case nethttp.StatusUnauthorized:
		return apperrors.ErrUnauthorized
	case nethttp.StatusNotFound:
		return apperrors.ErrNotFound
	case nethttp.StatusConflict:
		return apperrors.ErrConflict
	case nethttp.StatusPreconditionFailed:
		return apperrors.ErrPreconditionFailed
	}
	return nil
}

// errorBody is the backend error envelope. detail is a string for domain
// errors and a list of objects for request validation failures.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

func newHTTPError(method, path string, status int, raw []byte) *HTTPError {
	return &HTTPError{
		StatusCode: status,
		Detail:     parseDetail(raw),
		Method:     method,
		Path:       path,
	}
}

func parseDetail(raw []byte) string {
	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil || len(body.Detail) == 0 {
		return strings.TrimSpace(string(raw))
	}

	var text string
	if err := json.Unmarshal(body.Detail, &text); err == nil {
		return text
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(body.Detail, &items); err == nil && len(items) > 0 {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		if len(msgs) > 0 {
			return strings.Join(msgs, "; ")
		}
	}
	return string(body.Detail)
}

// IsRetryable reports whether err is worth another attempt: transport
// failures and 5xx responses are, 4xx responses and cancellation are not.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode >= 500
	}
	return true
}
