package commands

import (
	"context"
	"errors"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitbucket/internal/domain/entities"
	"github.com/rios0rios0/gitbucket/internal/domain/repositories"
)

const (
	originRemote     = "origin"
	maxFetchAttempts = 5
)

// fastForward updates one repository without ever merging:
//
//	dirty tree         -> skipped-dirty (no network)
//	unborn or detached -> skipped-no-branch (no network)
//	fetch, retried     -> retries-exhausted when every attempt was transient
//	merge analysis     -> up-to-date | fast-forwarded | diverged
func (it *PullCommand) fastForward(
	ctx context.Context,
	settings entities.GitSettings,
	path string,
	showErrors bool,
) entities.SyncResult {
	log := unitLogger(operationPull, path)
	log.Trace("Checking repo")

	repo, err := it.git.Open(path)
	if err != nil {
		return failed(log, path, err)
	}

	clean, err := repo.IsClean()
	if err != nil {
		return failed(log, path, err)
	}
	if !clean {
		if showErrors {
			log.Info("Repository not clean")
		} else {
			log.Debug("Repository not clean")
		}
		return entities.SyncResult{Target: path, Outcome: entities.OutcomeSkippedDirty}
	}

	head, err := repo.Head()
	if err != nil {
		return failed(log, path, err)
	}
	if head.Unborn || head.Detached {
		log.Debugf("No branch to pull (unborn: %t, detached: %t)", head.Unborn, head.Detached)
		return entities.SyncResult{Target: path, Outcome: entities.OutcomeSkippedNoBranch}
	}

	fetched, err := it.fetchWithRetry(ctx, log, repo, entities.FetchInput{
		RemoteName:         originRemote,
		Branch:             head.Branch,
		PrivateKeyLocation: settings.PrivateKeyLocation,
	})
	if err != nil {
		log.Errorf("Error fetching path - %v", err)
		return entities.SyncResult{Target: path, Outcome: entities.OutcomeFailed, Err: err}
	}
	if !fetched {
		log.Warnf("Giving up after %d fetch attempts", maxFetchAttempts)
		return entities.SyncResult{Target: path, Outcome: entities.OutcomeRetriesExhausted}
	}

	analysis, err := repo.MergeAnalysis(originRemote, head.Branch)
	if err != nil {
		return failed(log, path, err)
	}

	switch analysis.Kind {
	case entities.MergeUpToDate:
		log.Trace("up to date")
		return entities.SyncResult{Target: path, Outcome: entities.OutcomeUpToDate}
	case entities.MergeFastForward:
		log.Infof("fast-forwarding %s to %s", head.Branch, shortHash(analysis.Target))
		if settings.DryRun {
			return entities.SyncResult{Target: path, Outcome: entities.OutcomeWouldFastForward}
		}
		if ffErr := repo.FastForward(head.Branch, analysis.Target); ffErr != nil {
			return failed(log, path, ffErr)
		}
		return entities.SyncResult{Target: path, Outcome: entities.OutcomeFastForwarded}
	default:
		log.Debug("Can't fast-forward")
		return entities.SyncResult{Target: path, Outcome: entities.OutcomeDiverged}
	}
}

// fetchWithRetry returns (true, nil) once a fetch succeeds, (false, err) on the
// first non-transient error and (false, nil) when every attempt was transient.
func (it *PullCommand) fetchWithRetry(
	ctx context.Context,
	log *logger.Entry,
	repo repositories.LocalRepository,
	input entities.FetchInput,
) (bool, error) {
	for attempt := 1; attempt <= maxFetchAttempts; attempt++ {
		err := repo.Fetch(ctx, input)
		if err == nil {
			return true, nil
		}
		if !isTransientFetchError(err) {
			return false, err
		}
		log.Debugf("Fetch attempt %d/%d failed: %v", attempt, maxFetchAttempts, err)
		if attempt < maxFetchAttempts && it.retryDelay > 0 {
			time.Sleep(time.Duration(attempt) * it.retryDelay)
		}
	}
	return false, nil
}

func isTransientFetchError(err error) bool {
	return errors.Is(err, entities.ErrRemoteBranchUnborn) || errors.Is(err, entities.ErrSSHSession)
}

func shortHash(hash string) string {
	if len(hash) > 8 { //nolint:mnd // abbreviated commit
		return hash[:8]
	}
	return hash
}
