package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/unidash/internal/bootstrap"
	"github.com/yigit/unidash/internal/config"
)

// Server holds the state for the HTTP server.
type Server struct {
	config *config.Config
	deps   *bootstrap.Dependencies
	router *gin.Engine
	logger zerolog.Logger
	http   *http.Server

	// stopHub ends the notification hub; nil when notifications are disabled
	stopHub context.CancelFunc
}

// NewServer creates and initializes a new server instance by calling bootstrap functions.
func NewServer(configPath string) (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	ds, err := bootstrap.GenerateDataset(cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to generate dataset: %w", err)
	}

	if cfg.Database.ExportOnStart {
		// The API serves from memory, so a failed export is not fatal
		if err := bootstrap.ExportSnapshot(context.Background(), cfg, ds, lgr); err != nil {
			lgr.Error().Err(err).Msg("Snapshot export failed, continuing without it")
		}
	}

	deps, err := bootstrap.BuildDependencies(cfg, ds, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to setup dependencies: %w", err)
	}

	return &Server{
		config: cfg,
		deps:   deps,
		router: bootstrap.SetupRouter(cfg, deps, lgr),
		logger: lgr,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown.
func (s *Server) Run() error {
	if s.deps.Hub != nil {
		var hubCtx context.Context
		hubCtx, s.stopHub = context.WithCancel(context.Background())
		go s.deps.Hub.Run(hubCtx)
		s.logger.Info().Msg("Notification hub started")
	}

	s.http = &http.Server{
		Addr:        ":" + s.config.Server.Port,
		Handler:     s.router,
		ReadTimeout: 10 * time.Second,
		// Long enough for the simulated latency; WebSocket connections are hijacked
		// and not subject to it
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info().Str("addr", s.http.Addr).Msg("HTTP server listening")
		serverErrors <- s.http.ListenAndServe()
	}()

	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(osSignals)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			s.Shutdown(context.Background())
			return fmt.Errorf("error starting server: %w", err)
		}
	case sig := <-osSignals:
		s.logger.Info().Str("signal", sig.String()).Msg("Received OS signal, initiating shutdown...")
	}

	return s.Shutdown(context.Background())
}

// Shutdown gracefully stops the server and the notification hub.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var shutdownErr error

	if s.http != nil {
		s.logger.Info().Msg("Shutting down HTTP server...")
		if err := s.http.Shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Msg("HTTP server shutdown error")
			shutdownErr = errors.New("server shutdown completed with errors")
		} else {
			s.logger.Info().Msg("HTTP server gracefully stopped.")
		}
	}

	if s.stopHub != nil {
		s.stopHub()
		s.logger.Info().Msg("Notification hub stopped.")
	}

	s.logger.Info().Msg("Server shutdown process complete.")
	return shutdownErr
}
