package console

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/sergeii/classicrypt/cmd/classicrypt/application"
	"github.com/sergeii/classicrypt/cmd/classicrypt/commander"
	"github.com/sergeii/classicrypt/cmd/classicrypt/container"
	"github.com/sergeii/classicrypt/internal/console"
	"github.com/sergeii/classicrypt/internal/core/entities/variant"
	"github.com/sergeii/classicrypt/internal/metrics"
	"github.com/sergeii/classicrypt/internal/settings"
)

type Config struct {
	Variant variant.Variant
	Input   io.Reader
	Output  io.Writer
}

type Component struct {
	done chan struct{}
}

// Done is closed once the session is over.
func (c *Component) Done() <-chan struct{} {
	return c.done
}

func New(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	cfg Config,
	cont container.Container,
	collector *metrics.Collector,
	settings settings.Settings,
	logger *zerolog.Logger,
) *Component {
	ctx, cancel := context.WithCancel(context.Background())
	component := &Component{
		done: make(chan struct{}),
	}
	session := console.New(cont.TransformText, cfg.Variant, settings, logger)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(component.done)
				collector.ConsoleSessions.Inc()
				logger.Debug().Stringer("variant", cfg.Variant).Msg("Starting console session")

				exitCode := 0
				if err := session.Run(ctx, cfg.Input, cfg.Output); err != nil {
					logger.Debug().Err(err).Msg("Console session ended with error")
					exitCode = 1
				}
				if shutErr := shutdowner.Shutdown(fx.ExitCode(exitCode)); shutErr != nil {
					logger.Error().Err(shutErr).Msg("Failed to shut down after console session")
				}
			}()
			return nil
		},
		// a session blocked on reading the terminal is not waited for
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})

	return component
}

type command struct {
	Variant string `default:"gronsfeld" enum:"gronsfeld,permutation" help:"Selects the cipher used in the session"`
}

func (c *command) Run(_ *commander.Globals, builder *application.Builder) error {
	app := builder.
		Add(
			fx.Supply(Config{
				Variant: variant.MustParse(c.Variant),
				Input:   os.Stdin,
				Output:  os.Stdout,
			}),
			Module,
			fx.Invoke(func(*Component) {}),
		).
		Build()
	app.Run()
	return nil
}

type CLI struct {
	Console command `cmd:"" help:"Start an interactive encryption session"`
}

var Module = fx.Module("console",
	fx.Provide(New),
)
