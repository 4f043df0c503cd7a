package qtable

import (
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "qtable"

	statusSuccess = "success"
	statusError   = "error"
	statusTimeout = "timeout"
)

// Metrics tracks simulation and build activity, both in process and as
// prometheus collectors.
type Metrics struct {
	mu                 sync.RWMutex
	SimulationCount    int64
	SimulationFailures int64
	Timeouts           int64
	BuildCount         int64
	BuildFailures      int64
	CacheHits          int64
	TotalSimulateTime  time.Duration
	AverageLatency     time.Duration
	P95Latency         time.Duration
	P99Latency         time.Duration
	LastBuild          time.Time

	latencyWindow []time.Duration
	windowSize    int

	simulations       *prometheus.CounterVec
	simulationLatency prometheus.Histogram
	builds            *prometheus.CounterVec
	buildLatency      prometheus.Histogram
	cacheHits         prometheus.Counter
}

// NewMetrics creates the metrics and registers the collectors with reg. A
// nil reg keeps the collectors unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		latencyWindow: make([]time.Duration, 0, 1000),
		windowSize:    1000,
		simulations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "simulations_total",
				Help:      "Number of single state simulations",
			},
			[]string{"status"}, // status: "success", "error", "timeout"
		),
		simulationLatency: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "simulation_duration_seconds",
				Help:      "Time taken to simulate one input state",
				Buckets:   prometheus.DefBuckets,
			},
		),
		builds: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "builds_total",
				Help:      "Number of truth table builds",
			},
			[]string{"status"},
		),
		buildLatency: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "build_duration_seconds",
				Help:      "Time taken to build a truth table",
				Buckets:   prometheus.DefBuckets,
			},
		),
		cacheHits: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "cache_hits_total",
				Help:      "Number of truth tables served from the cache",
			},
		),
	}
}

func (m *Metrics) recordSimulation(startTime time.Time, status string) {
	duration := time.Since(startTime)

	m.simulations.WithLabelValues(status).Inc()
	m.simulationLatency.Observe(duration.Seconds())

	m.mu.Lock()
	defer m.mu.Unlock()

	m.SimulationCount++
	switch status {
	case statusError:
		m.SimulationFailures++
	case statusTimeout:
		m.SimulationFailures++
		m.Timeouts++
	}
	m.TotalSimulateTime += duration
	m.updateLatencyPercentiles(duration)
}

func (m *Metrics) recordBuild(startTime time.Time, err error) {
	duration := time.Since(startTime)
	status := statusSuccess
	if err != nil {
		status = statusError
	}

	m.builds.WithLabelValues(status).Inc()
	m.buildLatency.Observe(duration.Seconds())

	m.mu.Lock()
	defer m.mu.Unlock()

	m.BuildCount++
	if err != nil {
		m.BuildFailures++
	}
	m.LastBuild = time.Now()
}

func (m *Metrics) recordCacheHit() {
	m.cacheHits.Inc()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.CacheHits++
}

func (m *Metrics) updateLatencyPercentiles(duration time.Duration) {
	m.AverageLatency = (m.AverageLatency*time.Duration(m.SimulationCount-1) + duration) /
		time.Duration(m.SimulationCount)

	m.latencyWindow = append(m.latencyWindow, duration)
	if len(m.latencyWindow) > m.windowSize {
		m.latencyWindow = m.latencyWindow[1:]
	}

	sorted := make([]time.Duration, len(m.latencyWindow))
	copy(sorted, m.latencyWindow)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})

	p95Index := int(float64(len(sorted)) * 0.95)
	p99Index := int(float64(len(sorted)) * 0.99)
	if p95Index >= len(sorted) {
		p95Index = len(sorted) - 1
	}
	if p99Index >= len(sorted) {
		p99Index = len(sorted) - 1
	}
	m.P95Latency = sorted[p95Index]
	m.P99Latency = sorted[p99Index]
}

// ExportMetrics returns a snapshot of the in-process metrics.
func (m *Metrics) ExportMetrics() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"simulations":         m.SimulationCount,
		"simulation_failures": m.SimulationFailures,
		"timeouts":            m.Timeouts,
		"builds":              m.BuildCount,
		"build_failures":      m.BuildFailures,
		"cache_hits":          m.CacheHits,
		"avg_latency":         m.AverageLatency.Microseconds(),
		"p95_latency":         m.P95Latency.Microseconds(),
		"p99_latency":         m.P99Latency.Microseconds(),
	}
}
