package repositories

import (
	"time"

	"github.com/rios0rios0/gitbucket/internal/domain/entities"
)

// MetricsRepository records the results of an operation.
type MetricsRepository interface {
	Observe(report entities.SyncReport, elapsed time.Duration)
	Export(path string) error
}
