package metrics

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Observer interface {
	Observe(ctx context.Context, collector *Collector)
}

type Collector struct {
	mutex     sync.Mutex
	registry  *prometheus.Registry
	observers []Observer

	CipherOperations *prometheus.CounterVec
	CipherErrors     *prometheus.CounterVec
	CipherRunes      *prometheus.CounterVec
	CipherDurations  *prometheus.HistogramVec

	APIRequests  *prometheus.CounterVec
	APIDurations *prometheus.HistogramVec

	ConsoleSessions prometheus.Counter

	KeyRepositorySize prometheus.Gauge
}

func New() *Collector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewGoCollector())

	c := &Collector{
		registry: registry,

		CipherOperations: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "cipher_operations_total",
			Help: "The total number of successful cipher operations",
		}, []string{"variant", "operation"}),
		CipherErrors: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "cipher_errors_total",
			Help: "The total number of failed cipher operations",
		}, []string{"variant", "operation", "kind"}),
		CipherRunes: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "cipher_processed_runes_total",
			Help: "The total number of text runes passed through ciphers",
		}, []string{"variant", "operation"}),
		CipherDurations: promauto.With(registry).NewHistogramVec(prometheus.HistogramOpts{
			Name: "cipher_duration_seconds",
			Help: "Duration of cipher operations",
		}, []string{"variant", "operation"}),
		APIRequests: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "The total number of handled API requests",
		}, []string{"route", "status"}),
		APIDurations: promauto.With(registry).NewHistogramVec(prometheus.HistogramOpts{
			Name: "api_duration_seconds",
			Help: "Duration of API requests",
		}, []string{"route"}),
		ConsoleSessions: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "console_sessions_total",
			Help: "The total number of started console sessions",
		}),
		KeyRepositorySize: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "repo_keys_size",
			Help: "The number of named keys stored in the repository",
		}),
	}
	return c
}

func (c *Collector) GetRegistry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) AddObserver(observer Observer) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.observers = append(c.observers, observer)
}

func (c *Collector) Observe(ctx context.Context) {
	c.mutex.Lock()
	observers := make([]Observer, len(c.observers))
	copy(observers, c.observers)
	c.mutex.Unlock()
	for _, observer := range observers {
		go observer.Observe(ctx, c)
	}
}
