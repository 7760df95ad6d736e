package observer

import (
	"context"
	"errors"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/sergeii/classicrypt/internal/metrics"
	"github.com/sergeii/classicrypt/internal/metrics/observers/keyobserver"
)

var ErrInvalidInterval = errors.New("observe interval must be positive")

type Config struct {
	ObserveInterval time.Duration
}

// Component refreshes the collector's observed gauges on a fixed interval
// for as long as the app runs.
type Component struct {
	interval  time.Duration
	clock     clockwork.Clock
	collector *metrics.Collector
	logger    *zerolog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

func New(
	lc fx.Lifecycle,
	cfg Config,
	clock clockwork.Clock,
	collector *metrics.Collector,
	logger *zerolog.Logger,
) (*Component, error) {
	if cfg.ObserveInterval <= 0 {
		return nil, ErrInvalidInterval
	}

	c := &Component{
		interval:  cfg.ObserveInterval,
		clock:     clock,
		collector: collector,
		logger:    logger,
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			c.start()
			return nil
		},
		OnStop: c.stop,
	})

	return c, nil
}

func (c *Component) start() {
	// the loop outlives the start hook's context
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.done = make(chan struct{})
	go c.loop(ctx) // nolint: contextcheck
}

func (c *Component) stop(ctx context.Context) error {
	c.cancel()
	select {
	case <-c.done:
		c.logger.Info().Msg("Observer stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Component) loop(ctx context.Context) {
	defer close(c.done)

	ticker := c.clock.NewTicker(c.interval)
	defer ticker.Stop()

	c.logger.Info().Dur("interval", c.interval).Msg("Starting observer")

	c.collector.Observe(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			c.collector.Observe(ctx)
		}
	}
}

var Module = fx.Module("observer",
	fx.Invoke(keyobserver.New),
	fx.Provide(New),
)
