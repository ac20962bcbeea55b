package entities

import (
	"errors"
	"fmt"
)

// Configuration errors.
var (
	ErrHomeNotFound        = errors.New("HOME environment variable not found")
	ErrInvalidSettings     = errors.New("invalid settings")
	ErrPasswordUnavailable = errors.New("no password given and no terminal to prompt for one")
)

// Authentication errors.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Transport errors.
var ErrTransport = errors.New("bitbucket request failed")

// Protocol errors.
var (
	ErrMalformedResponse    = errors.New("malformed bitbucket response")
	ErrCloneEndpointMissing = errors.New("ssh url not found")
	ErrPaginationViolation  = errors.New("bitbucket pagination violated")
)

// Version control errors.
var (
	ErrNoBranch           = errors.New("not on a branch")
	ErrRemoteBranchUnborn = errors.New("remote branch is unborn")
	ErrSSHSession         = errors.New("failed to start SSH session")
	ErrReferenceMove      = errors.New("failed to move branch reference")
)

// ErrWorkerPanic marks a unit of work that panicked.
var ErrWorkerPanic = errors.New("unit of work panicked")

// ErrDirectoryUnreadable is matched by every DirectoryUnreadableError.
var ErrDirectoryUnreadable = errors.New("reading directory")

// DirectoryUnreadableError reports a directory that could not be listed
// while scanning the mirror tree.
type DirectoryUnreadableError struct {
	Path string
	Err  error
}

func (e *DirectoryUnreadableError) Error() string {
	return fmt.Sprintf("reading directory %s: %v", e.Path, e.Err)
}

func (e *DirectoryUnreadableError) Unwrap() []error {
	return []error{ErrDirectoryUnreadable, e.Err}
}
