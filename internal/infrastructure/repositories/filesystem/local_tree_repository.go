package filesystem

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/rios0rios0/gitbucket/internal/domain/entities"
	"github.com/rios0rios0/gitbucket/internal/domain/repositories"
)

const gitDirName = ".git"

// LocalTreeRepository implements repositories.LocalTreeRepository on a billy filesystem.
type LocalTreeRepository struct {
	fs billy.Filesystem
}

var _ repositories.LocalTreeRepository = (*LocalTreeRepository)(nil)

// NewLocalTreeRepository creates a LocalTreeRepository on the host filesystem.
func NewLocalTreeRepository() *LocalTreeRepository {
	return NewLocalTreeRepositoryWithFilesystem(osfs.New(string(filepath.Separator)))
}

// NewLocalTreeRepositoryWithFilesystem creates a LocalTreeRepository on fs.
func NewLocalTreeRepositoryWithFilesystem(fs billy.Filesystem) *LocalTreeRepository {
	return &LocalTreeRepository{fs: fs}
}

// ListExistingRepositories walks <root>/<project>/<repo> and keeps the
// directories that contain .git. Symbolic links are skipped at both levels.
func (r *LocalTreeRepository) ListExistingRepositories(root string) ([]string, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, &entities.DirectoryUnreadableError{Path: root, Err: err}
	}

	projects, err := r.realDirectories(root)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, project := range projects {
		candidates, listErr := r.realDirectories(project)
		if listErr != nil {
			return nil, listErr
		}
		for _, candidate := range candidates {
			if _, statErr := r.fs.Stat(filepath.Join(candidate, gitDirName)); statErr == nil {
				paths = append(paths, candidate)
			}
		}
	}

	sort.Strings(paths)
	return paths, nil
}

// Exists reports whether anything, including a dangling symlink, is at path.
func (r *LocalTreeRepository) Exists(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	_, err = r.fs.Lstat(abs)
	return err == nil
}

func (r *LocalTreeRepository) realDirectories(dir string) ([]string, error) {
	entries, err := r.fs.ReadDir(dir)
	if err != nil {
		return nil, &entities.DirectoryUnreadableError{Path: dir, Err: err}
	}

	var dirs []string
	for _, entry := range entries {
		if entry.Mode()&os.ModeSymlink != 0 || !entry.IsDir() {
			continue
		}
		dirs = append(dirs, filepath.Join(dir, entry.Name()))
	}
	return dirs, nil
}
