package keyobserver

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sergeii/classicrypt/internal/core/repositories"
	"github.com/sergeii/classicrypt/internal/metrics"
)

type KeyObserver struct {
	keyRepo repositories.KeyRepository
	logger  *zerolog.Logger
}

func New(
	collector *metrics.Collector,
	keyRepo repositories.KeyRepository,
	logger *zerolog.Logger,
) KeyObserver {
	observer := KeyObserver{
		keyRepo: keyRepo,
		logger:  logger,
	}
	collector.AddObserver(&observer)
	return observer
}

func (o KeyObserver) Observe(ctx context.Context, m *metrics.Collector) {
	count, err := o.keyRepo.Count(ctx)
	if err != nil {
		o.logger.Error().Err(err).Msg("Unable to observe key count")
		return
	}
	m.KeyRepositorySize.Set(float64(count))
	o.logger.Debug().Int("count", count).Msg("Observed key count")
}
