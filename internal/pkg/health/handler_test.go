package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestNewPingHandler(t *testing.T) {
	e := echo.New()
	e.GET("/ping", NewPingHandler("tracker", "", "driver"))

	rec := serve(e, "/ping")

	require.Equal(t, http.StatusOK, rec.Code)
	var info BuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "tracker", info.ServiceName)
	assert.Equal(t, "development", info.Version)
	assert.Equal(t, "driver", info.Mode)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.False(t, info.ServerTime.IsZero())
}

func TestRegisterHealthEndpoints(t *testing.T) {
	tests := []struct {
		name       string
		checkers   map[string]Checker
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "health", path: "/health", wantStatus: http.StatusOK, wantBody: "OK"},
		{name: "healthz", path: "/healthz", wantStatus: http.StatusOK, wantBody: "OK"},
		{
			name: "ready with healthy dependencies",
			checkers: map[string]Checker{
				"redis": CheckerFunc(func(context.Context) error { return nil }),
			},
			path:       "/ready",
			wantStatus: http.StatusOK,
			wantBody:   `"status":"healthy"`,
		},
		{
			name: "ready with a dead dependency",
			checkers: map[string]Checker{
				"redis": CheckerFunc(func(context.Context) error { return nil }),
				"nats":  CheckerFunc(func(context.Context) error { return errors.New("not connected") }),
			},
			path:       "/ready",
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   "not connected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService()
			for name, c := range tt.checkers {
				svc.AddChecker(name, c)
			}
			e := echo.New()
			RegisterHealthEndpoints(e, BuildInfo{ServiceName: "tracker"}, svc)

			rec := serve(e, tt.path)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestRegisterHealthEndpoints_NoService(t *testing.T) {
	e := echo.New()
	RegisterHealthEndpoints(e, BuildInfo{ServiceName: "tracker"}, nil)

	rec := serve(e, "/ready")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ready")
}

func TestService_CheckAll(t *testing.T) {
	svc := NewService()
	svc.AddChecker("backend", CheckerFunc(func(context.Context) error { return errors.New("502") }))

	resp := svc.CheckAll(context.Background())

	assert.Equal(t, StatusUnhealthy, resp.Status)
	assert.Equal(t, DependencyInfo{Status: StatusUnhealthy, Error: "502"}, resp.Dependencies["backend"])
}
