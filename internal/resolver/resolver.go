// Package resolver implements the breadth-first dependency resolution
// algorithm (§4.7): starting from a target package, it walks successive
// waves of unresolved dependencies, querying the repository façade for
// each, deduplicating against already-resolved nodes by satisfaction
// rather than identity, and finally linearizes the resulting graph into
// an install order with dependencies before dependents.
package resolver

import (
	"errors"

	"github.com/nbpm/nbpm/internal/nberr"
	"github.com/nbpm/nbpm/internal/pkg"
	"github.com/nbpm/nbpm/internal/query"
	"github.com/nbpm/nbpm/internal/repo"
)

var errCycle = errors.New("dependency cycle")

// waveItem is one node's unresolved DependsList entries carried into a
// wave of the resolution loop.
type waveItem struct {
	node  int
	items []pkg.DependsItem
}

// origin remembers which (node, dependency-index) pair a query was
// emitted for, so a search result can be folded back into the graph.
type origin struct {
	node     int
	depIndex int
}

type depKey struct {
	node     int
	depIndex int
}

// Graph is the resolved dependency graph, exposed for DOT export (§6.4)
// independent of the install ordering Resolve computes from it.
type Graph struct {
	Nodes []pkg.Package
	Edges [][2]int // (dependent index, dependency index) into Nodes
}

// Resolve computes the install plan for target against repos (§4.7).
// It returns packages in reverse topological order: every dependency
// appears before the dependent(s) that need it.
//
// Missing dependencies fail the whole resolution with
// nberr.DependencyNotFound rather than being silently dropped from the
// plan — an explicit resolution of an ambiguity in the algorithm this
// is grounded on, recorded in DESIGN.md.
func Resolve(target pkg.Package, repos []repo.Repository) ([]pkg.Package, error) {
	order, _, err := resolve(target, repos)
	return order, err
}

// ResolveGraph computes the same dependency graph as Resolve but
// returns it unordered, in node-insertion order, for DOT rendering via
// WriteDOT.
func ResolveGraph(target pkg.Package, repos []repo.Repository) (Graph, error) {
	_, g, err := resolve(target, repos)
	if err != nil {
		return Graph{}, err
	}
	return Graph{Nodes: g.nodes, Edges: g.edgesList()}, nil
}

func resolve(target pkg.Package, repos []repo.Repository) ([]pkg.Package, *graph, error) {
	g := newGraph()
	targetIdx := g.addNode(target)

	var wave []waveItem
	if target.Depends() != nil {
		wave = []waveItem{{node: targetIdx, items: target.Depends().Items()}}
	}

	for len(wave) > 0 {
		var queries []query.Query
		var origins []origin
		resolved := map[depKey]bool{}

		for _, w := range wave {
			for depIdx, item := range w.items {
				if satisfiedByGraph(g, w.node, depIdx, item, resolved) {
					continue
				}
				for _, alt := range item.Opts {
					queries = append(queries, query.Query{Name: alt.Name, Constraint: alt.Constraint})
					origins = append(origins, origin{node: w.node, depIndex: depIdx})
				}
			}
		}

		matches, err := repo.SearchAll(queries, repos, nil)
		if err != nil {
			return nil, nil, err
		}

		attempted := map[depKey]bool{}
		var next []waveItem
		for k, ms := range matches {
			o := origins[k]
			key := depKey{o.node, o.depIndex}
			attempted[key] = true
			if resolved[key] || len(ms) == 0 {
				continue
			}
			chosen := ms[0]
			newIdx := g.addNode(chosen)
			g.addEdge(o.node, newIdx)
			resolved[key] = true
			if chosen.Depends() != nil {
				next = append(next, waveItem{node: newIdx, items: chosen.Depends().Items()})
			}
		}

		if name, ok := firstUnresolved(wave, attempted, resolved); ok {
			return nil, nil, nberr.Newf(nberr.DependencyNotFound, "%s", name)
		}

		wave = next
	}

	order, cycleAt, err := g.topoSort()
	if err != nil {
		return nil, nil, nberr.Newf(nberr.DependencyCicle, "%s", g.nodes[cycleAt])
	}

	result := make([]pkg.Package, len(order))
	for i, idx := range order {
		result[i] = g.nodes[idx]
	}
	return result, g, nil
}

// satisfiedByGraph looks for an existing graph node that already
// satisfies one of item's alternatives, in declaration order, and
// records an edge to it without ever emitting a query.
func satisfiedByGraph(g *graph, node, depIdx int, item pkg.DependsItem, resolved map[depKey]bool) bool {
	for _, alt := range item.Opts {
		if n, ok := g.findSatisfier(alt); ok {
			g.addEdge(node, n)
			resolved[depKey{node, depIdx}] = true
			return true
		}
	}
	return false
}

// firstUnresolved reports the first dependency, in wave order, that was
// queried for but never satisfied by any repository match.
func firstUnresolved(wave []waveItem, attempted, resolved map[depKey]bool) (string, bool) {
	for _, w := range wave {
		for depIdx, item := range w.items {
			key := depKey{w.node, depIdx}
			if attempted[key] && !resolved[key] {
				return item.String(), true
			}
		}
	}
	return "", false
}
