package nebuladb

import (
	"context"
	"os"
	"path/filepath"

	"github.com/nbpm/nbpm/internal/nberr"
	"github.com/nbpm/nbpm/internal/pkg"
	"github.com/nbpm/nbpm/internal/query"
)

// Config holds the Nebula repository's own configuration: the upstream
// URL its index is fetched from.
type Config struct {
	RepositoryURL string
}

const indexFileName = "packages.toml"

// Repo is the Nebula repository adapter (§4.3, §6.1). It owns a
// directory under the nbpm home where its index is stored, and holds
// the index in memory once Load has read it.
type Repo struct {
	conf    Config
	dir     string
	db      *PkgDB
}

// New builds a Nebula Repo rooted at dir (nbpm-home/repos/nebula).
func New(conf Config, dir string) *Repo {
	return &Repo{conf: conf, dir: dir}
}

// Kind reports this adapter's RepoType.
func (r *Repo) Kind() pkg.RepoType { return pkg.Nebula }

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

// Load reads the packages.toml index from disk into memory. Until a
// Load succeeds, Search returns an empty match list for every query;
// a failed Load leaves any previously loaded index in place.
func (r *Repo) Load() error {
	db, err := LoadPkgDB(filepath.Join(r.dir, indexFileName))
	if err != nil {
		return err
	}
	r.db = db
	return nil
}

// SetDB injects an already-loaded index in place of one read by Load,
// bypassing the filesystem entirely.
func (r *Repo) SetDB(db *PkgDB) { r.db = db }

// Search answers queries against the loaded index (§4.3).
func (r *Repo) Search(queries []query.Query) ([][]pkg.Package, error) {
	if r.db == nil {
		return make([][]pkg.Package, len(queries)), nil
	}
	return r.db.Search(queries)
}
