package entities

// TrunkBranches are the mainline branch names hidden by the featured report.
var TrunkBranches = []string{"main", "master", "develop"} //nolint:gochecknoglobals // fixed set

// Head describes what HEAD of a local repository points at.
type Head struct {
	Branch   string
	Unborn   bool
	Detached bool
}

// IsTrunk reports whether the head is on one of the trunk branches.
func (h Head) IsTrunk() bool {
	for _, trunk := range TrunkBranches {
		if h.Branch == trunk {
			return true
		}
	}
	return false
}

// MergeKind is the result of comparing a local branch with its fetched counterpart.
type MergeKind int

const (
	MergeUpToDate MergeKind = iota
	MergeFastForward
	MergeDiverged
)

func (k MergeKind) String() string {
	switch k {
	case MergeUpToDate:
		return "up-to-date"
	case MergeFastForward:
		return "fast-forward"
	case MergeDiverged:
		return "diverged"
	default:
		return "unknown"
	}
}

// MergeAnalysis carries the merge kind and the fetched commit hash.
type MergeAnalysis struct {
	Kind   MergeKind
	Target string
}

// FetchInput describes a single fetch of one branch.
type FetchInput struct {
	RemoteName         string
	Branch             string
	PrivateKeyLocation string
}

// CloneInput describes a clone of one remote repository.
type CloneInput struct {
	URL                string
	Destination        string
	PrivateKeyLocation string
}
