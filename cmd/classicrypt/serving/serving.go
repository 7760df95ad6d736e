// Package serving ties an http server to the fx lifecycle.
package serving

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/sergeii/classicrypt/pkg/http/httpserver"
)

type Config struct {
	Name            string
	ListenAddr      string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Attach starts serving the handler with the app and stops with it.
// Start fails when the address can't be listened on.
// A server that dies after start shuts the app down with exit code 1.
func Attach(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	cfg Config,
	handler http.Handler,
	logger *zerolog.Logger,
) error {
	log := logger.With().Str("server", cfg.Name).Logger()
	ready := make(chan struct{})

	svr, err := httpserver.New(
		cfg.ListenAddr,
		httpserver.WithShutdownTimeout(cfg.ShutdownTimeout),
		httpserver.WithReadTimeout(cfg.ReadTimeout),
		httpserver.WithWriteTimeout(cfg.WriteTimeout),
		httpserver.WithHandler(handler),
		httpserver.WithReadySignal(func(addr net.Addr) {
			log.Info().Stringer("addr", addr).Msg("Server is ready to accept connections")
			close(ready)
		}),
	)
	if err != nil {
		log.Error().Err(err).Msg("Failed to set up server")
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			failed := make(chan error, 1)
			go func() {
				serveErr := svr.ListenAndServe()
				if serveErr == nil {
					return
				}
				select {
				case <-ready:
					log.Warn().Err(serveErr).Msg("Server exited prematurely")
					if shutErr := shutdowner.Shutdown(fx.ExitCode(1)); shutErr != nil {
						log.Error().Err(shutErr).Msg("Failed to handle premature server exit")
					}
				default:
					failed <- serveErr
				}
			}()
			select {
			case <-ready:
				return nil
			case serveErr := <-failed:
				log.Error().Err(serveErr).Msg("Failed to start server")
				return serveErr
			case <-ctx.Done():
				return ctx.Err()
			}
		},
		OnStop: func(stopCtx context.Context) error {
			if stopErr := svr.Stop(stopCtx); stopErr != nil {
				log.Error().Err(stopErr).Msg("Failed to stop server gracefully")
				return stopErr
			}
			log.Info().Msg("Server stopped")
			return nil
		},
	})

	return nil
}
