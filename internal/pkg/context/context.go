package context

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey represents a key for context values
type ContextKey string

const (
	// RequestIDKey is the key for request ID in context
	RequestIDKey ContextKey = "request_id"
	// TaskKey is the key for the polling task name in context
	TaskKey ContextKey = "task"
)

// WithRequestID adds a request ID to the context, generating one when empty
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		requestID = uuid.New().String()
	}
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetRequestID retrieves the request ID from context
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// WithTask tags the context with the name of the polling task issuing requests
func WithTask(ctx context.Context, task string) context.Context {
	return context.WithValue(ctx, TaskKey, task)
}

// GetTask retrieves the polling task name from context
func GetTask(ctx context.Context) string {
	if task, ok := ctx.Value(TaskKey).(string); ok {
		return task
	}
	return ""
}

// FromEchoContext returns the request context carrying the inbound request
// ID, or a fresh one when the caller sent none
func FromEchoContext(c echo.Context) context.Context {
	requestID := c.Request().Header.Get(echo.HeaderXRequestID)
	if requestID == "" {
		requestID = c.Response().Header().Get(echo.HeaderXRequestID)
	}
	return WithRequestID(c.Request().Context(), requestID)
}
