package pkg

import (
	"strings"

	"github.com/nbpm/nbpm/internal/version"
)

// Dependency is a requirement on a named package satisfying a version
// constraint. Two dependencies are equal iff both the name and the
// constraint's rendered form are equal.
type Dependency struct {
	Name       string
	Constraint version.Constraint
}

// NewDependency builds a Dependency.
func NewDependency(name string, c version.Constraint) Dependency {
	return Dependency{Name: name, Constraint: c}
}

// Equal reports whether d and other are the same dependency.
func (d Dependency) Equal(other Dependency) bool {
	return d.Name == other.Name && d.Constraint.String() == other.Constraint.String()
}

func (d Dependency) String() string {
	return d.Name + d.Constraint.String()
}

// DependsItem is one entry of a DependsList: either a single mandatory
// dependency, or a non-empty set of alternatives ("A | B") of which
// exactly one must be satisfied, tried in declaration order.
type DependsItem struct {
	// Opts always holds at least one alternative; for a plain (single)
	// dependency it holds exactly that one dependency.
	Opts []Dependency
}

// NewSingle builds a DependsItem with a single mandatory dependency.
func NewSingle(d Dependency) DependsItem {
	return DependsItem{Opts: []Dependency{d}}
}

// NewOpts builds a DependsItem representing alternatives. opts must be
// non-empty.
func NewOpts(opts []Dependency) DependsItem {
	return DependsItem{Opts: opts}
}

// IsSingle reports whether the item has exactly one alternative.
func (i DependsItem) IsSingle() bool {
	return len(i.Opts) == 1
}

func (i DependsItem) String() string {
	parts := make([]string, len(i.Opts))
	for idx, d := range i.Opts {
		parts[idx] = d.String()
	}
	return strings.Join(parts, " or ")
}

// DependsList is an ordered, non-empty sequence of DependsItem. Order
// is preserved because resolvers present alternatives in authored
// order.
type DependsList struct {
	items []DependsItem
}

// NewDependsList builds a DependsList from items. It is the caller's
// responsibility to ensure items is non-empty before attaching it to a
// Package (an empty DependsList should instead be represented as no
// DependsList at all).
func NewDependsList(items []DependsItem) DependsList {
	return DependsList{items: items}
}

// Len returns the number of items in the list.
func (l DependsList) Len() int { return len(l.items) }

// Items returns the list's items in declaration order.
func (l DependsList) Items() []DependsItem { return l.items }

func (l DependsList) String() string {
	parts := make([]string, len(l.items))
	for i, item := range l.items {
		parts[i] = item.String()
	}
	return strings.Join(parts, ", ")
}
