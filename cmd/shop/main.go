// Command shop runs the products API.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/ynsvrs/practice11/internal/config"
	"github.com/ynsvrs/practice11/internal/handler"
	"github.com/ynsvrs/practice11/internal/logger"
	"github.com/ynsvrs/practice11/internal/repository"
	"github.com/ynsvrs/practice11/internal/router"
	"github.com/ynsvrs/practice11/internal/server"
	"github.com/ynsvrs/practice11/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		bootLogger := zerolog.New(os.Stderr).With().Timestamp().Logger()
		bootLogger.Fatal().Err(err).Msg("failed to load config")
	}

	loggerService, nrErr := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)
	if nrErr != nil {
		log.Warn().Err(nrErr).Msg("new relic disabled: failed to start agent")
	}

	if err := run(cfg, &log, loggerService); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// run is the explicit startup phase followed by serving until a signal
// arrives. Any startup failure is returned before the listener opens.
func run(cfg *config.Config, log *zerolog.Logger, loggerService *logger.LoggerService) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(ctx, cfg, log, loggerService)
	if err != nil {
		loggerService.Shutdown()
		return err
	}

	repos := repository.NewRepositories(srv)
	services := service.NewServices(srv, repos)
	handlers := handler.NewHandlers(srv, services)

	srv.SetupHTTPServer(router.NewRouter(srv, handlers))

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Start()
	}()

	select {
	case err := <-serveErr:
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return err
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	start := time.Now()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Info().Dur("duration", time.Since(start)).Msg("server exited properly")
	return nil
}
