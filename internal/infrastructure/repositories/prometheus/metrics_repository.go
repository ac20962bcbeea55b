// Package prometheus records operation results as Prometheus metrics that can
// be written for the node_exporter textfile collector.
package prometheus

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rios0rios0/gitbucket/internal/domain/entities"
	"github.com/rios0rios0/gitbucket/internal/domain/repositories"
)

const namespace = "gitbucket"

// MetricsRepository implements repositories.MetricsRepository on a private registry.
type MetricsRepository struct {
	registry *prometheus.Registry
	results  *prometheus.CounterVec
	failures *prometheus.CounterVec
	duration *prometheus.GaugeVec
	lastRun  *prometheus.GaugeVec
}

var _ repositories.MetricsRepository = (*MetricsRepository)(nil)

// NewMetricsRepository creates a MetricsRepository with its own registry.
func NewMetricsRepository() *MetricsRepository {
	m := &MetricsRepository{
		registry: prometheus.NewRegistry(),
		results: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "repository_results_total",
			Help:      "Repositories processed, by operation and outcome.",
		}, []string{"operation", "outcome"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "repository_failures_total",
			Help:      "Repositories whose operation failed.",
		}, []string{"operation"}),
		duration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Wall time of the last run of an operation.",
		}, []string{"operation"}),
		lastRun: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "operation_last_run_timestamp_seconds",
			Help:      "Unix time the operation last finished.",
		}, []string{"operation"}),
	}
	m.registry.MustRegister(m.results, m.failures, m.duration, m.lastRun)
	return m
}

// Observe records one finished operation.
func (m *MetricsRepository) Observe(report entities.SyncReport, elapsed time.Duration) {
	for outcome, n := range report.Summary() {
		m.results.WithLabelValues(report.Operation, string(outcome)).Add(float64(n))
	}
	m.failures.WithLabelValues(report.Operation).Add(float64(report.Failed()))
	m.duration.WithLabelValues(report.Operation).Set(elapsed.Seconds())
	m.lastRun.WithLabelValues(report.Operation).SetToCurrentTime()
}

// Export writes every metric to path in the text exposition format.
func (m *MetricsRepository) Export(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}

// Registry exposes the underlying registry.
func (m *MetricsRepository) Registry() *prometheus.Registry {
	return m.registry
}
