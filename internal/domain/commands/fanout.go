package commands

import (
	"context"
	"fmt"
	"time"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rios0rios0/gitbucket/internal/domain/entities"
	"github.com/rios0rios0/gitbucket/internal/domain/repositories"
)

// fanOut runs work once per unit with at most limit units in flight and
// returns when every unit has finished. Results keep the order of units.
// Each worker writes only its own slot, so nothing is shared between workers.
// A panicking unit becomes a failed result and its siblings keep running.
func fanOut[T any](
	ctx context.Context,
	limit int,
	units []T,
	work func(ctx context.Context, unit T) entities.SyncResult,
) []entities.SyncResult {
	results := make([]entities.SyncResult, len(units))

	var group errgroup.Group
	group.SetLimit(max(limit, 1))
	for i, unit := range units {
		group.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					target := fmt.Sprint(unit)
					results[i] = failed(logger.WithField("repository", target), target,
						fmt.Errorf("%w: %v", entities.ErrWorkerPanic, r))
				}
			}()
			results[i] = work(ctx, unit)
			return nil
		})
	}
	_ = group.Wait() // workers never return errors

	return results
}

// unitLogger returns the log entry threaded through one unit of work.
func unitLogger(operation, target string) *logger.Entry {
	return logger.WithFields(logger.Fields{
		"operation":  operation,
		"repository": target,
	})
}

// failed logs a per-repository error and turns it into a result.
func failed(log *logger.Entry, target string, err error) entities.SyncResult {
	log.Errorf("Error %v", err)
	return entities.SyncResult{Target: target, Outcome: entities.OutcomeFailed, Err: err}
}

func logReport(report entities.SyncReport, start time.Time) {
	fields := logger.Fields{
		"operation": report.Operation,
		"total":     len(report.Results),
		"failed":    report.Failed(),
	}
	logger.WithFields(fields).Infof("%s complete: %s", report.Operation, report)
	logger.Infof("Finished in %dms", time.Since(start).Milliseconds())
}

// scanTree lists the mirrored repositories below root. A failure here is
// fatal to the whole operation.
func scanTree(tree repositories.LocalTreeRepository, root string) ([]string, error) {
	paths, err := tree.ListExistingRepositories(root)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}
	logger.Debugf("Found %d repositories below %s", len(paths), root)
	return paths, nil
}
