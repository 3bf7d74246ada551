package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-search-keeper/internal/config"
	"github.com/MKhiriev/go-search-keeper/internal/handler"
	"github.com/MKhiriev/go-search-keeper/internal/logger"
)

type server struct {
	httpServer      *httpServer
	shutdownTimeout time.Duration
	logger          *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.ServerConfig, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer:      newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}, nil
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives.
func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown() {
	ctx := context.Background()
	if s.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.shutdownTimeout)
		defer cancel()
	}

	s.httpServer.Shutdown(ctx)
}

func (s *server) run(ctx context.Context) error {
	if err := s.httpServer.Listen(); err != nil {
		return err
	}
	return s.serve(ctx)
}

// serve runs the bound listener until ctx is done.
func (s *server) serve(ctx context.Context) error {
	served := make(chan error, 1)
	go func() {
		served <- s.httpServer.RunServer()
	}()
	s.logger.Info().Str("address", s.httpServer.Addr()).Msg("Launching HTTP server")

	select {
	case <-ctx.Done():
		s.Shutdown()
		<-served
		s.logger.Info().Msg("server Shutdown gracefully")
		return nil
	case err := <-served:
		if err == nil {
			return errServerStopped
		}
		return fmt.Errorf("%w: %w", errServerStopped, err)
	}
}
