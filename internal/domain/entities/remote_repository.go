package entities

import "sort"

// RemoteRepository is a repository discovered on Bitbucket together with
// its SSH clone endpoint.
type RemoteRepository struct {
	Name   string
	GitURL string
}

// ProjectRepository pairs a remote repository with the key of the project
// that contains it. It is the unit of work of the clone command.
type ProjectRepository struct {
	Project    string
	Repository RemoteRepository
}

func (p ProjectRepository) String() string {
	return p.Project + "/" + p.Repository.Name
}

// Catalog maps a project key to its repositories, in API order.
type Catalog map[string][]RemoteRepository

// Projects returns the project keys in lexical order.
func (c Catalog) Projects() []string {
	keys := make([]string, 0, len(c))
	for key := range c {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of repositories across all projects.
func (c Catalog) Len() int {
	total := 0
	for _, repos := range c {
		total += len(repos)
	}
	return total
}
