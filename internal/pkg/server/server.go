package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/musafir-app/musafir/internal/pkg/logger"
)

// GracefulServer wraps an echo instance with signal-driven shutdown.
type GracefulServer struct {
	echo   *echo.Echo
	logger *logger.ZapLogger
	port   int
}

// NewGracefulServer creates a server that shuts down cleanly on SIGINT or
// SIGTERM.
func NewGracefulServer(e *echo.Echo, l *logger.ZapLogger, port int) *GracefulServer {
	return &GracefulServer{
		echo:   e,
		logger: l,
		port:   port,
	}
}

// Start runs the server and blocks until a termination signal arrives, then
// drains in-flight requests for up to 30 seconds.
func (s *GracefulServer) Start() error {
	errCh := make(chan error, 1)

	go func() {
		addr := fmt.Sprintf(":%d", s.port)
		s.logger.Info("Starting HTTP server", logger.String("addr", addr))
		if err := s.echo.Start(addr); err != nil {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed to start: %w", err)
	case sig := <-quit:
		s.logger.Info("Shutdown signal received", logger.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.logger.Info("Server stopped")
	return nil
}

// ShutdownFunc releases one component's resources during shutdown.
type ShutdownFunc func(ctx context.Context) error

// ShutdownManager runs registered cleanup functions in reverse order of
// registration, so components shut down after their dependents.
type ShutdownManager struct {
	logger *logger.ZapLogger
	funcs  []namedShutdown
}

type namedShutdown struct {
	name string
	fn   ShutdownFunc
}

// NewShutdownManager creates an empty shutdown manager.
func NewShutdownManager(l *logger.ZapLogger) *ShutdownManager {
	return &ShutdownManager{logger: l}
}

// Register adds a named cleanup function.
func (m *ShutdownManager) Register(name string, fn ShutdownFunc) {
	m.funcs = append(m.funcs, namedShutdown{name: name, fn: fn})
}

// Shutdown runs all cleanup functions, logging failures without stopping.
func (m *ShutdownManager) Shutdown(ctx context.Context) {
	for i := len(m.funcs) - 1; i >= 0; i-- {
		entry := m.funcs[i]
		if err := entry.fn(ctx); err != nil {
			m.logger.Error("Component shutdown failed",
				logger.String("component", entry.name),
				logger.Err(err))
			continue
		}
		m.logger.Info("Component stopped", logger.String("component", entry.name))
	}
}
