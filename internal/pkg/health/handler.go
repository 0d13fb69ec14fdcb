package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	ServiceName string    `json:"service_name"`
	Mode        string    `json:"mode,omitempty"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	StartedAt   time.Time `json:"started_at"`
	ServerTime  time.Time `json:"server_time"`
}

// NewPingHandler creates a handler for the ping endpoint
func NewPingHandler(serviceName, version, mode string) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	if version == "" {
		version = "development"
	}

	info := BuildInfo{
		Version:     version,
		ServiceName: serviceName,
		Mode:        mode,
		GoVersion:   runtime.Version(),
		Hostname:    hostname,
		StartedAt:   time.Now(),
	}

	return func(c echo.Context) error {
		resp := info
		resp.ServerTime = time.Now()
		return c.JSON(http.StatusOK, resp)
	}
}

// RegisterHealthEndpoints registers /ping, /health, /healthz and /ready.
// Readiness reports 503 while any registered dependency is unhealthy.
func RegisterHealthEndpoints(e *echo.Echo, info BuildInfo, svc *Service) {
	e.GET("/ping", NewPingHandler(info.ServiceName, info.Version, info.Mode))

	ok := func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	}
	e.GET("/health", ok)
	e.GET("/healthz", ok)

	e.GET("/ready", func(c echo.Context) error {
		if svc == nil {
			return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
		}

		ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
		defer cancel()

		resp := svc.CheckAll(ctx)
		resp.Service = info.ServiceName
		if resp.Status != StatusHealthy {
			return c.JSON(http.StatusServiceUnavailable, resp)
		}
		return c.JSON(http.StatusOK, resp)
	})
}
