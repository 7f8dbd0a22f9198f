package pkg

import (
	"fmt"

	"github.com/nbpm/nbpm/internal/nberr"
	"github.com/nbpm/nbpm/internal/version"
)

// Package is an immutable, versioned record produced by a repository
// adapter. Equality is by (Name, Version) only; Source and Depends do
// not participate, matching the spec's equality rule (§3) because two
// adapters can legitimately disagree about a package's source or
// dependency list while still describing "the same" installable unit.
type Package struct {
	name    string
	version version.Version
	source  PkgSource
	// depends is nil when the package has no dependencies. When
	// present it is always non-empty (§3 invariant).
	depends *DependsList
}

// New constructs a Package. name must be non-empty and ver must parse
// as a Version. If depends is non-nil, it must be non-empty.
func New(name string, ver version.Version, source PkgSource, depends *DependsList) (Package, error) {
	if name == "" {
		return Package{}, nberr.Newf(nberr.Parsing, "package name is empty")
	}
	if ver.IsZero() {
		return Package{}, nberr.Newf(nberr.VersionFmt, "package %q has no version", name)
	}
	if depends != nil && depends.Len() == 0 {
		depends = nil
	}
	return Package{name: name, version: ver, source: source, depends: depends}, nil
}

// Name returns the package's name.
func (p Package) Name() string { return p.name }

// Version returns the package's version.
func (p Package) Version() version.Version { return p.version }

// Source returns the package's origin.
func (p Package) Source() PkgSource { return p.source }

// Depends returns the package's dependency list, or nil if it has none.
func (p Package) Depends() *DependsList { return p.depends }

// NumDeps returns the number of dependency items (0 if Depends is nil).
func (p Package) NumDeps() int {
	if p.depends == nil {
		return 0
	}
	return p.depends.Len()
}

// Satisfies reports whether p satisfies dep: their names must match and
// p's version must satisfy dep's constraint.
func (p Package) Satisfies(dep Dependency) bool {
	return p.name == dep.Name && dep.Constraint.Matches(p.version)
}

// Equal reports whether p and other describe the same (name, version).
func (p Package) Equal(other Package) bool {
	return p.name == other.name && p.version.Equal(other.version)
}

func (p Package) String() string {
	return fmt.Sprintf("%s %s", p.name, p.version)
}
