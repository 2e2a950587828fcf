package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/prisonadmin/internal/bootstrap"
	"github.com/yigit/prisonadmin/internal/config"
	"github.com/yigit/prisonadmin/internal/db"
	"github.com/yigit/prisonadmin/internal/pkg/helpers"
)

// PoolCloser drains the connection pool on shutdown.
type PoolCloser interface {
	Close(grace time.Duration) error
}

// Server holds the state for the HTTP server.
type Server struct {
	config          *config.Config
	router          *gin.Engine
	pool            PoolCloser
	logger          zerolog.Logger
	http            *http.Server
	listener        net.Listener
	shutdownTimeout time.Duration
}

// NewServer creates and initializes a new server instance by calling bootstrap functions.
func NewServer(ctx context.Context, configPath string) (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	manager, err := bootstrap.SetupDatabase(ctx, cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	deps, err := bootstrap.BuildDependencies(manager, lgr)
	if err != nil {
		_ = manager.Close(db.DrainGracePeriod)
		return nil, fmt.Errorf("failed to setup dependencies: %w", err)
	}

	router, err := bootstrap.SetupRouter(cfg, deps, lgr)
	if err != nil {
		_ = manager.Close(db.DrainGracePeriod)
		return nil, fmt.Errorf("failed to setup router: %w", err)
	}

	return New(cfg, router, manager, lgr), nil
}

// New assembles a server from already built parts. pool may be nil.
func New(cfg *config.Config, router *gin.Engine, pool PoolCloser, lgr zerolog.Logger) *Server {
	return &Server{
		config:          cfg,
		router:          router,
		pool:            pool,
		logger:          lgr,
		shutdownTimeout: helpers.ParseDuration(cfg.Server.ShutdownTimeout, 10*time.Second),
	}
}

// Listen binds the configured port.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", ":"+s.config.Server.Port)
	if err != nil {
		return fmt.Errorf("error starting server: %w", err)
	}
	s.listener = ln
	return nil
}

// Addr returns the bound address once Listen has succeeded.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run listens and serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve(ctx)
}

// Serve handles requests on the bound listener until ctx is cancelled or serving fails.
func (s *Server) Serve(ctx context.Context) error {
	if s.listener == nil {
		return errors.New("server is not listening")
	}

	s.http = &http.Server{
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.Addr()).Msg("HTTP server listening")
		serverErrors <- s.http.Serve(s.listener)
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			_ = s.closePool()
			return fmt.Errorf("error serving http: %w", err)
		}
	case <-ctx.Done():
		s.logger.Info().Msg("Shutdown requested, stopping server...")
	}

	return s.Shutdown(context.Background())
}

// Shutdown stops accepting requests, waits for in-flight ones and drains the pool.
// A pool that does not drain in time is reported as an error.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.shutdownTimeout)
	defer cancel()

	var errs []error

	if s.http != nil {
		s.logger.Info().Msg("Shutting down HTTP server...")
		if err := s.http.Shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Msg("HTTP server shutdown error")
			errs = append(errs, fmt.Errorf("http shutdown: %w", err))
		} else {
			s.logger.Info().Msg("HTTP server gracefully stopped.")
		}
	}

	if err := s.closePool(); err != nil {
		errs = append(errs, err)
	}

	s.logger.Info().Msg("Server shutdown process complete.")
	return errors.Join(errs...)
}

func (s *Server) closePool() error {
	if s.pool == nil {
		return nil
	}

	s.logger.Info().Dur("grace", db.DrainGracePeriod).Msg("Draining database connection pool...")
	if err := s.pool.Close(db.DrainGracePeriod); err != nil {
		s.logger.Error().Err(err).Msg("Database connection pool did not drain")
		return fmt.Errorf("pool drain: %w", err)
	}
	return nil
}
