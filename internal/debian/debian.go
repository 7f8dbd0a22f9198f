package debian

import (
	"context"
	"os"
	"path/filepath"

	"github.com/nbpm/nbpm/internal/nberr"
	"github.com/nbpm/nbpm/internal/pkg"
	"github.com/nbpm/nbpm/internal/query"
)

// Config holds the Debian repository's own configuration: the upstream
// repository base URL and the components to index (main, contrib,
// non-free, ...).
type Config struct {
	RepositoryURL string
	Components    []string
	Arch          string
}

// Repo is the Debian repository adapter (§4.4, §6.2, §6.3).
type Repo struct {
	conf  Config
	dir   string
	index Index
}

// New builds a Debian Repo rooted at dir (nbpm-home/repos/debian).
func New(conf Config, dir string) *Repo {
	return &Repo{conf: conf, dir: dir}
}

// Kind reports this adapter's RepoType.
func (r *Repo) Kind() pkg.RepoType { return pkg.Debian }

// Initialize creates the repository's local directory if absent.
func (r *Repo) Initialize() error {
	if _, err := os.Stat(r.dir); os.IsNotExist(err) {
		return os.MkdirAll(r.dir, 0o755)
	} else if err != nil {
		return err
	}
	return nil
}

// Update is the out-of-core-scope refresh contract; it is wired to
// internal/fetch by the CLI layer rather than implemented here.
func (r *Repo) Update(ctx context.Context) error {
	return nberr.New(nberr.Repo)
}

// Search answers queries against the lazily loaded index (§4.4).
func (r *Repo) Search(queries []query.Query) ([][]pkg.Package, error) {
	if err := r.index.EnsureLoaded(r.dir, r.conf.Components); err != nil {
		return nil, err
	}
	return searchLines(r.index.Lines(), queries, r.conf.RepositoryURL)
}

// SetIndex injects an already-loaded index in place of the lazily read
// one, bypassing the filesystem entirely.
func (r *Repo) SetIndex(lines []string) {
	r.index.SetLines(lines)
}

// ComponentIndexPath returns the on-disk path of a component's index
// file, the same "Packages-<component>" path internal/fetch writes.
func (r *Repo) ComponentIndexPath(component string) string {
	return filepath.Join(r.dir, "Packages-"+component)
}
