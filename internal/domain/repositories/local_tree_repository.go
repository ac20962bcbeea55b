package repositories

// LocalTreeRepository inspects the mirror directory tree.
type LocalTreeRepository interface {
	// ListExistingRepositories returns every <root>/<project>/<repo> directory
	// that holds a .git entry. Symbolic links are never followed.
	ListExistingRepositories(root string) ([]string, error)

	// Exists reports whether something is present at path.
	Exists(path string) bool
}
