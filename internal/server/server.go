package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/env-metrics/internal/config"
	"github.com/MKhiriev/env-metrics/internal/handler"
	"github.com/MKhiriev/env-metrics/internal/logger"
	"golang.org/x/sync/errgroup"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger

	// ctx is cancelled by Shutdown.
	ctx    context.Context
	cancel context.CancelFunc
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg),
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
	}, nil
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives, or until
// Shutdown is called, then drains in-flight requests.
func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		s.ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("Launching HTTP server")
		return s.httpServer.RunServer()
	})

	// listen for stop signals
	g.Go(func() error {
		<-ctx.Done()
		return s.httpServer.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil {
		s.logger.Err(err).Msg("error running server")
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) Shutdown() {
	s.cancel()
}
