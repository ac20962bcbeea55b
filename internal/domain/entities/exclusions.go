package entities

import (
	"slices"
	"strings"
)

const wildcardSuffix = "/*"

// Exclusions holds the normalized exclusion rules given on the command line.
// A rule is either "PROJECT/*" (the whole project) or "PROJECT/repo".
// Rules are compared by exact string equality.
type Exclusions struct {
	rules []string
}

// NewExclusions parses a comma-separated list of exclusions. Entries without
// a "/" are bare project keys and become "PROJECT/*". Empty entries are ignored.
func NewExclusions(raw string) Exclusions {
	var rules []string
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		rules = append(rules, addWildcard(entry))
	}
	return Exclusions{rules: rules}
}

// ExcludesProject returns false when the whole project is excluded, true otherwise.
func (e Exclusions) ExcludesProject(project string) bool {
	return !slices.Contains(e.rules, project+wildcardSuffix)
}

// ExcludesRepository returns false when exactly "project/repository" is excluded.
// A "project/*" rule does not affect the result; callers check ExcludesProject first.
func (e Exclusions) ExcludesRepository(project, repository string) bool {
	return !slices.Contains(e.rules, project+"/"+repository)
}

// Rules returns a copy of the normalized rules.
func (e Exclusions) Rules() []string {
	return slices.Clone(e.rules)
}

func addWildcard(entry string) string {
	if strings.Contains(entry, "/") {
		return entry
	}
	return entry + wildcardSuffix
}
