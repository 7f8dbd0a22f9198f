// Package rosetta translates package names across repository
// conventions: the same piece of software is frequently named
// differently in the Nebula index than in a Debian archive (e.g.
// "linux" vs. "linux-image-amd64"). A rosetta.toml file at the nbpm
// home directory maps one Nebula name to its known aliases in other
// repository kinds, letting a search or resolve walk expand a query
// beyond the name the user actually typed.
package rosetta

import (
	"os"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"

	"github.com/nbpm/nbpm/internal/pkg"
)

// PkgNames is one Nebula package's known aliases in other repository
// kinds. Only Debian is modeled today; a nil slice (the TOML key
// absent) and an empty slice both mean "no known alias".
type PkgNames struct {
	Debian []string `toml:"debian"`
}

// Get returns the aliases known for repo kind to, if any.
func (n PkgNames) Get(to pkg.RepoType) ([]string, bool) {
	if to != pkg.Debian || len(n.Debian) == 0 {
		return nil, false
	}
	return n.Debian, true
}

// Contains reports whether name is one of the aliases this entry
// carries for any known repository kind.
func (n PkgNames) Contains(name string) bool {
	for _, d := range n.Debian {
		if d == name {
			return true
		}
	}
	return false
}

// Rosetta is the full Nebula-name -> PkgNames translation table.
type Rosetta struct {
	data map[string]PkgNames
}

// New returns an empty translation table.
func New() *Rosetta {
	return &Rosetta{data: make(map[string]PkgNames)}
}

// Load reads and parses a rosetta.toml file from path.
func Load(path string) (*Rosetta, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading rosetta table %s", path)
	}
	return Parse(data)
}

// Parse decodes a rosetta.toml document. Its top level is a map keyed
// by Nebula package name, each value a PkgNames table.
func Parse(data []byte) (*Rosetta, error) {
	m := make(map[string]PkgNames)
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "parsing rosetta table")
	}
	return &Rosetta{data: m}, nil
}

// Push records (or overwrites) the alias table for a Nebula package.
func (r *Rosetta) Push(nebulaName string, names PkgNames) {
	r.data[nebulaName] = names
}

// NameResolve translates name from one repository kind's naming
// convention to another's. Resolving from Nebula is a direct table
// lookup; resolving from Debian scans every entry for one whose
// aliases contain name, since the table is indexed by Nebula name
// only, and may return more than one candidate.
func (r *Rosetta) NameResolve(name string, from, to pkg.RepoType) ([]string, bool) {
	switch from {
	case pkg.Nebula:
		names, ok := r.data[name]
		if !ok {
			return nil, false
		}
		return names.Get(to)
	case pkg.Debian:
		if to != pkg.Nebula {
			return nil, false
		}
		var out []string
		for key, val := range r.data {
			if val.Contains(name) {
				out = append(out, key)
			}
		}
		if len(out) == 0 {
			return nil, false
		}
		return out, true
	default:
		return nil, false
	}
}
