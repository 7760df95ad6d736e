// @title        classicrypt API
// @version      1.0
// @description  Gronsfeld and digit key shift ciphers over Cyrillic and Latin alphabets
// @BasePath     /
package main

import (
	"github.com/alecthomas/kong"
	"go.uber.org/fx"

	"github.com/sergeii/classicrypt/cmd/classicrypt/application"
	"github.com/sergeii/classicrypt/cmd/classicrypt/commander"
	"github.com/sergeii/classicrypt/cmd/classicrypt/components/api"
	"github.com/sergeii/classicrypt/cmd/classicrypt/components/console"
	"github.com/sergeii/classicrypt/cmd/classicrypt/components/exporter"
	"github.com/sergeii/classicrypt/cmd/classicrypt/components/transform"
	"github.com/sergeii/classicrypt/cmd/classicrypt/logging"
	"github.com/sergeii/classicrypt/cmd/classicrypt/persistence"
	"github.com/sergeii/classicrypt/internal/settings"
)

func main() {
	cli := commander.CLI{}
	cli.Plugins = kong.Plugins{
		&transform.CLI{},
	}
	cli.Run.Plugins = kong.Plugins{
		&api.CLI{},
		&console.CLI{},
	}
	ctx := kong.Parse(
		&cli,
		kong.Name("classicrypt"),
		kong.Description("Gronsfeld and digit key shift ciphers"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Summary:   true,
			Tree:      true,
			FlagsLast: true,
		}),
	)

	builder := application.NewBuilder(
		fx.Supply(persistence.Config{
			RedisURL: cli.Globals.RedisURL,
		}),
		fx.Provide(persistence.Provide),
		application.Module,
		fx.Supply(logging.Config{
			LogLevel:  cli.Globals.LogLevel,
			LogOutput: cli.Globals.LogOutput,
		}),
		fx.Supply(settings.Settings{
			NormalizeInput: cli.Globals.NormalizeInput,
			MaxTextLength:  cli.Globals.MaxTextLength,
		}),
		fx.Provide(logging.Provide),
		fx.WithLogger(logging.FxLogger),
		fx.Supply(exporter.Config{
			HTTPListenAddress:   cli.Globals.ExporterHTTPListenAddress,
			HTTPReadTimeout:     cli.Globals.ExporterHTTPReadTimeout,
			HTTPWriteTimeout:    cli.Globals.ExporterHTTPWriteTimeout,
			HTTPShutdownTimeout: cli.Globals.ExporterHTTPShutdownTimeout,
		}),
		exporter.Module,
	)

	if err := ctx.Run(&cli.Globals, builder); err != nil {
		ctx.FatalIfErrorf(err)
	}
}
