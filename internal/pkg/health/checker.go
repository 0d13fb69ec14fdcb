package health

import (
	"context"
	"sync"
	"time"

	"github.com/piresc/saferoute/internal/pkg/logger"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// Checker checks one dependency
type Checker interface {
	CheckHealth(ctx context.Context) error
}

// CheckerFunc adapts a function to Checker
type CheckerFunc func(ctx context.Context) error

// CheckHealth calls f
func (f CheckerFunc) CheckHealth(ctx context.Context) error { return f(ctx) }

// Response is the readiness payload
type Response struct {
	Status       string                    `json:"status"`
	Timestamp    time.Time                 `json:"timestamp"`
	Service      string                    `json:"service,omitempty"`
	Dependencies map[string]DependencyInfo `json:"dependencies"`
}

// DependencyInfo represents health info for a dependency
type DependencyInfo struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Service manages health checks for the optional mirror sinks and the backend
type Service struct {
	mu       sync.RWMutex
	checkers map[string]Checker
}

// NewService creates an empty health service
func NewService() *Service {
	return &Service{checkers: make(map[string]Checker)}
}

// AddChecker registers a checker under name
func (s *Service) AddChecker(name string, checker Checker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkers[name] = checker
}

// CheckAll runs every registered checker
func (s *Service) CheckAll(ctx context.Context) Response {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resp := Response{
		Status:       StatusHealthy,
		Timestamp:    time.Now(),
		Dependencies: make(map[string]DependencyInfo, len(s.checkers)),
	}

	for name, checker := range s.checkers {
		if err := checker.CheckHealth(ctx); err != nil {
			logger.Warn("Health check failed",
				logger.String("dependency", name),
				logger.Err(err))
			resp.Dependencies[name] = DependencyInfo{Status: StatusUnhealthy, Error: err.Error()}
			resp.Status = StatusUnhealthy
			continue
		}
		resp.Dependencies[name] = DependencyInfo{Status: StatusHealthy}
	}

	return resp
}
