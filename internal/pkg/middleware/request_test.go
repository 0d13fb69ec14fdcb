package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	appctx "github.com/piresc/saferoute/internal/pkg/context"
	"github.com/piresc/saferoute/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func bufferedLogger(buf *bytes.Buffer) *logger.ZapLogger {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(buf),
		zapcore.DebugLevel,
	)
	return &logger.ZapLogger{Logger: zap.New(core)}
}

func TestRequestID(t *testing.T) {
	tests := []struct {
		name    string
		inbound string
	}{
		{name: "keeps caller id", inbound: "req-123"},
		{name: "generates missing id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(RequestID())

			var seen string
			e.GET("/status", func(c echo.Context) error {
				seen = appctx.GetRequestID(c.Request().Context())
				return c.NoContent(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/status", nil)
			if tt.inbound != "" {
				req.Header.Set(echo.HeaderXRequestID, tt.inbound)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.NotEmpty(t, seen)
			if tt.inbound != "" {
				assert.Equal(t, tt.inbound, seen)
			}
			assert.Equal(t, seen, rec.Header().Get(echo.HeaderXRequestID))
		})
	}
}

func TestPanicRecovery(t *testing.T) {
	tests := []struct {
		name       string
		panicValue interface{}
		expectLogs []string
	}{
		{
			name:       "string panic",
			panicValue: "status snapshot exploded",
			expectLogs: []string{"status snapshot exploded", "stack_trace", "Panic recovered during request processing"},
		},
		{
			name:       "error panic",
			panicValue: errors.New("nil view"),
			expectLogs: []string{"nil view", "*errors.errorString"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			e := echo.New()
			e.Use(RequestID(), PanicRecovery(bufferedLogger(&buf)))
			e.GET("/status", func(c echo.Context) error {
				panic(tt.panicValue)
			})

			rec := httptest.NewRecorder()
			assert.NotPanics(t, func() {
				e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))
			})

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Contains(t, rec.Body.String(), "Internal server error")
			for _, want := range tt.expectLogs {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestPanicRecovery_PassesThrough(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	e.Use(PanicRecovery(bufferedLogger(&buf)))
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, buf.String())
}
