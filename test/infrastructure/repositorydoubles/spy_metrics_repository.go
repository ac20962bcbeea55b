//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"time"

	"github.com/rios0rios0/gitbucket/internal/domain/entities"
	"github.com/rios0rios0/gitbucket/internal/domain/repositories"
)

// SpyMetricsRepository implements repositories.MetricsRepository as a spy.
type SpyMetricsRepository struct {
	ExportErr error

	Reports       []entities.SyncReport
	ExportedPaths []string
}

var _ repositories.MetricsRepository = (*SpyMetricsRepository)(nil)

func (s *SpyMetricsRepository) Observe(report entities.SyncReport, _ time.Duration) {
	s.Reports = append(s.Reports, report)
}

func (s *SpyMetricsRepository) Export(path string) error {
	s.ExportedPaths = append(s.ExportedPaths, path)
	return s.ExportErr
}
