// Package nebuladb implements the Nebula repository adapter: loading
// the TOML package index (§6.1) into memory and answering glob +
// version multi-query searches against it (§4.3).
package nebuladb

import (
	"os"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"

	"github.com/nbpm/nbpm/internal/pkg"
	"github.com/nbpm/nbpm/internal/version"
)

// Component names a non-empty section of the index.
type Component string

const (
	ComponentCore  Component = "core"
	ComponentExtra Component = "extra"
)

type rawPkgInfo struct {
	Name    string   `toml:"name"`
	Version string   `toml:"version"`
	Source  string   `toml:"source"`
	Depends []string `toml:"depends"`
}

func (r rawPkgInfo) toPackage() (pkg.Package, error) {
	v, err := version.Parse(r.Version)
	if err != nil {
		return pkg.Package{}, err
	}
	depends, err := parseDependsStrings(r.Depends)
	if err != nil {
		return pkg.Package{}, err
	}
	src := pkg.NewSource(pkg.Nebula, r.Source)
	return pkg.New(r.Name, v, src, depends)
}

type rawPkgDB struct {
	Arch  string       `toml:"arch"`
	Core  []rawPkgInfo `toml:"core"`
	Extra []rawPkgInfo `toml:"extra"`
}

// PkgDB is the in-memory Nebula package index: an architecture tag plus
// up to two package lists (core, extra), each independently optional.
type PkgDB struct {
	arch       string
	components []Component
	core       []pkg.Package
	extra      []pkg.Package
}

// LoadPkgDB reads and parses a packages.toml file at path.
func LoadPkgDB(path string) (*PkgDB, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading nebula index %s", path)
	}
	return ParsePkgDB(data)
}

// ParsePkgDB parses raw TOML bytes into a PkgDB, converting every
// PkgInfo entry into a Package.
func ParsePkgDB(data []byte) (*PkgDB, error) {
	var raw rawPkgDB
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "decoding nebula index")
	}

	db := &PkgDB{arch: raw.Arch}
	if len(raw.Core) > 0 {
		pkgs, err := convertAll(raw.Core)
		if err != nil {
			return nil, err
		}
		db.core = pkgs
		db.components = append(db.components, ComponentCore)
	}
	if len(raw.Extra) > 0 {
		pkgs, err := convertAll(raw.Extra)
		if err != nil {
			return nil, err
		}
		db.extra = pkgs
		db.components = append(db.components, ComponentExtra)
	}
	return db, nil
}

func convertAll(raw []rawPkgInfo) ([]pkg.Package, error) {
	out := make([]pkg.Package, 0, len(raw))
	for _, r := range raw {
		p, err := r.toPackage()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Arch returns the index's architecture tag.
func (db *PkgDB) Arch() string { return db.arch }

// Components reports exactly the non-empty components the index
// carries.
func (db *PkgDB) Components() []Component { return db.components }

// componentLists returns the package lists in {core, extra} iteration
// order, skipping absent components.
func (db *PkgDB) componentLists() [][]pkg.Package {
	var lists [][]pkg.Package
	if db.core != nil {
		lists = append(lists, db.core)
	}
	if db.extra != nil {
		lists = append(lists, db.extra)
	}
	return lists
}
