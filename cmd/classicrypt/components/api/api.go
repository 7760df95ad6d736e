package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/sergeii/classicrypt/cmd/classicrypt/application"
	"github.com/sergeii/classicrypt/cmd/classicrypt/build"
	"github.com/sergeii/classicrypt/cmd/classicrypt/commander"
	"github.com/sergeii/classicrypt/cmd/classicrypt/components/observer"
	"github.com/sergeii/classicrypt/cmd/classicrypt/serving"
	"github.com/sergeii/classicrypt/internal/rest"
	"github.com/sergeii/classicrypt/internal/rest/api"
)

type Config struct {
	HTTPListenAddr      string
	HTTPReadTimeout     time.Duration
	HTTPWriteTimeout    time.Duration
	HTTPShutdownTimeout time.Duration
}

type Component struct{}

func New(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	router *gin.Engine,
	cfg Config,
	logger *zerolog.Logger,
) (*Component, error) {
	err := serving.Attach(
		lc,
		shutdowner,
		serving.Config{
			Name:            "api",
			ListenAddr:      cfg.HTTPListenAddr,
			ReadTimeout:     cfg.HTTPReadTimeout,
			WriteTimeout:    cfg.HTTPWriteTimeout,
			ShutdownTimeout: cfg.HTTPShutdownTimeout,
		},
		router,
		logger,
	)
	if err != nil {
		return nil, err
	}
	return &Component{}, nil
}

type command struct {
	HTTPListenAddress     string        `default:":3000" help:"Sets the address where the API server listens for incoming http requests"`         // nolint:lll
	HTTPReadTimeout       time.Duration `default:"5s"    help:"Sets the maximum duration to read the request body before timing out"`             // nolint:lll
	HTTPWriteTimeout      time.Duration `default:"5s"    help:"Sets the maximum duration to write a response before timing out"`                  // nolint:lll
	HTTPShutdownTimeout   time.Duration `default:"10s"   help:"Defines how long the server waits to gracefully close connections before exiting"` // nolint:lll
	MetricObserveInterval time.Duration `default:"10s"   help:"Sets how often the stored key count is observed"`
}

func (c *command) Run(_ *commander.Globals, builder *application.Builder) error {
	app := builder.
		Add(
			fx.Supply(
				Config{
					HTTPListenAddr:      c.HTTPListenAddress,
					HTTPReadTimeout:     c.HTTPReadTimeout,
					HTTPWriteTimeout:    c.HTTPWriteTimeout,
					HTTPShutdownTimeout: c.HTTPShutdownTimeout,
				},
				observer.Config{
					ObserveInterval: c.MetricObserveInterval,
				},
			),
			Module,
			observer.Module,
			fx.Invoke(func(logger *zerolog.Logger, _ *Component, _ *observer.Component) {
				logger.Info().
					Str("version", build.Version).
					Str("commit", build.Commit).
					Str("built", build.Time).
					Str("address", c.HTTPListenAddress).
					Msg("Starting API server")
			}),
		).
		WithExporter().
		Build()
	app.Run()
	return nil
}

type CLI struct {
	API command `cmd:"" help:"Start API server"`
}

var Module = fx.Module("api",
	fx.Provide(fx.Private, api.New),
	fx.Provide(rest.NewRouter),
	fx.Provide(New),
)
