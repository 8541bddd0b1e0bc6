// Package lifecycle runs a set of services until a signal, a context
// cancellation, or a service error stops them.
package lifecycle

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/voltradar/voltradar/pkg/logger"
)

const ShutdownTimeout = 10 * time.Second

// Service defines the interface that all services must implement.
type Service interface {
	Start(context.Context) error
	Stop(context.Context) error
}

// ServerOptions holds the services to run under one lifecycle.
type ServerOptions struct {
	ServiceName string
	Services    []Service
}

// RunServer starts every service and blocks until shutdown completes.
func RunServer(ctx context.Context, opts *ServerOptions) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	log := logger.GetLogger().With().Str("component", "lifecycle").Logger()
	log.Info().Str("service", opts.ServiceName).Msg("Starting service")

	errChan := make(chan error, len(opts.Services))

	for _, svc := range opts.Services {
		go func(svc Service) {
			if err := svc.Start(ctx); err != nil {
				select {
				case errChan <- err:
				default:
					log.Error().Err(err).Msg("Service error")
				}
			}
		}(svc)
	}

	return handleShutdown(ctx, cancel, opts.Services, errChan)
}

func handleShutdown(ctx context.Context, cancel context.CancelFunc, services []Service, errChan chan error) error {
	log := logger.GetLogger().With().Str("component", "lifecycle").Logger()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var runErr error

	select {
	case sig := <-sigChan:
		log.Info().Str("signal", sig.String()).Msg("Received signal, initiating shutdown")
	case err := <-errChan:
		log.Error().Err(err).Msg("Received error, initiating shutdown")

		runErr = fmt.Errorf("service error: %w", err)
	case <-ctx.Done():
		log.Info().Msg("Context canceled, initiating shutdown")

		runErr = ctx.Err()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer shutdownCancel()

	cancel()

	// Stop in reverse start order so the ingest side drains first.
	for i := len(services) - 1; i >= 0; i-- {
		if err := services[i].Stop(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Error during service shutdown")

			if runErr == nil {
				runErr = fmt.Errorf("shutdown error: %w", err)
			}
		}
	}

	return runErr
}
