package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/saferoute/internal/pkg/logger"
)

// GracefulServer wraps an Echo server whose lifetime is bound to a context
type GracefulServer struct {
	echo            *echo.Echo
	logger          *logger.ZapLogger
	port            int
	shutdownTimeout time.Duration
}

// NewGracefulServer creates a new server with graceful shutdown
func NewGracefulServer(e *echo.Echo, zapLogger *logger.ZapLogger, port int, shutdownTimeout time.Duration) *GracefulServer {
	if zapLogger == nil {
		zapLogger = logger.GetGlobalLogger()
	}
	if shutdownTimeout <= 0 {
		shutdownTimeout = 5 * time.Second
	}
	return &GracefulServer{
		echo:            e,
		logger:          zapLogger,
		port:            port,
		shutdownTimeout: shutdownTimeout,
	}
}

// Run serves until ctx is done, then shuts down. A listen failure is
// returned immediately.
func (s *GracefulServer) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", s.port)
		s.logger.Info("Starting status server", logger.String("address", addr))

		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("status server: %w", err)
		}
		return nil
	case <-ctx.Done():
		return s.Shutdown()
	}
}

// Shutdown gracefully shuts down the server
func (s *GracefulServer) Shutdown() error {
	s.logger.Info("Shutting down status server")

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", logger.Err(err))
		return err
	}

	s.logger.Info("Status server shutdown completed")
	return nil
}

// ShutdownManager runs registered cleanup functions in reverse order
type ShutdownManager struct {
	logger    *logger.ZapLogger
	mu        sync.Mutex
	names     []string
	functions []func(context.Context) error
}

// NewShutdownManager creates a new shutdown manager
func NewShutdownManager(zapLogger *logger.ZapLogger) *ShutdownManager {
	if zapLogger == nil {
		zapLogger = logger.GetGlobalLogger()
	}
	return &ShutdownManager{logger: zapLogger}
}

// Register adds a named cleanup function
func (sm *ShutdownManager) Register(name string, fn func(context.Context) error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.names = append(sm.names, name)
	sm.functions = append(sm.functions, fn)
}

// Shutdown executes all registered cleanup functions, last registered first.
// Failures are logged and the first one is returned after every function ran.
func (sm *ShutdownManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	names := append([]string(nil), sm.names...)
	functions := append([]func(context.Context) error(nil), sm.functions...)
	sm.mu.Unlock()

	sm.logger.Info("Shutting down components", logger.Int("components", len(functions)))

	var first error
	for i := len(functions) - 1; i >= 0; i-- {
		if err := functions[i](ctx); err != nil {
			sm.logger.Error("Error during component shutdown",
				logger.String("component", names[i]),
				logger.Err(err))
			if first == nil {
				first = err
			}
		}
	}

	sm.logger.Info("All components shutdown completed")
	return first
}
