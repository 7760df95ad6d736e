package keyobserver_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sergeii/classicrypt/internal/core/repositories"
	"github.com/sergeii/classicrypt/internal/metrics"
	"github.com/sergeii/classicrypt/internal/metrics/observers/keyobserver"
)

type MockKeyRepository struct {
	mock.Mock
	repositories.KeyRepository
}

func (m *MockKeyRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Get(0).(int), args.Error(1) // nolint: forcetypeassert
}

func TestKeyObserver_Observe_OK(t *testing.T) {
	ctx := context.TODO()
	logger := zerolog.Nop()

	collector := metrics.New()

	keyRepo := new(MockKeyRepository)
	keyRepo.On("Count", ctx).Return(12, nil)

	observer := keyobserver.New(collector, keyRepo, &logger)
	observer.Observe(ctx, collector)

	assert.Equal(t, float64(12), testutil.ToFloat64(collector.KeyRepositorySize))

	keyRepo.AssertExpectations(t)
}

func TestKeyObserver_Observe_RepoFailure(t *testing.T) {
	ctx := context.TODO()
	logger := zerolog.Nop()

	collector := metrics.New()
	collector.KeyRepositorySize.Set(5)

	keyRepo := new(MockKeyRepository)
	keyRepo.On("Count", ctx).Return(0, errors.New("repo failure"))

	observer := keyobserver.New(collector, keyRepo, &logger)
	observer.Observe(ctx, collector)

	// last observed value is kept
	assert.Equal(t, float64(5), testutil.ToFloat64(collector.KeyRepositorySize))

	keyRepo.AssertExpectations(t)
}
