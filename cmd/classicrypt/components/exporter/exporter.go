package exporter

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/sergeii/classicrypt/cmd/classicrypt/serving"
	"github.com/sergeii/classicrypt/internal/metrics"
)

type Config struct {
	HTTPListenAddress   string
	HTTPReadTimeout     time.Duration
	HTTPWriteTimeout    time.Duration
	HTTPShutdownTimeout time.Duration
}

type Component struct{}

// NewHandler serves the collector's registry at /metrics, anything else is a 404.
func NewHandler(collector *metrics.Collector) http.Handler {
	registry := collector.GetRegistry()
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.InstrumentMetricHandler(
		registry,
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}),
	))
	return mux
}

func New(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	cfg Config,
	collector *metrics.Collector,
	logger *zerolog.Logger,
) (*Component, error) {
	err := serving.Attach(
		lc,
		shutdowner,
		serving.Config{
			Name:            "exporter",
			ListenAddr:      cfg.HTTPListenAddress,
			ReadTimeout:     cfg.HTTPReadTimeout,
			WriteTimeout:    cfg.HTTPWriteTimeout,
			ShutdownTimeout: cfg.HTTPShutdownTimeout,
		},
		NewHandler(collector),
		logger,
	)
	if err != nil {
		return nil, err
	}
	return &Component{}, nil
}

var Module = fx.Module("exporter",
	fx.Provide(New),
)
