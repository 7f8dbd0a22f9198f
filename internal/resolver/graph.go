package resolver

import "github.com/nbpm/nbpm/internal/pkg"

// graph is the resolver's own directed graph: nodes are resolved
// Packages, edges run from a dependent node to the dependency node that
// satisfies it. It is intentionally minimal — a generic graph library
// isn't warranted for a structure this small and is never mutated
// concurrently (§5).
type graph struct {
	nodes []pkg.Package
	adj   [][]int // adj[u] = dependency node indices of u, in discovery order
}

func newGraph() *graph {
	return &graph{}
}

func (g *graph) addNode(p pkg.Package) int {
	g.nodes = append(g.nodes, p)
	g.adj = append(g.adj, nil)
	return len(g.nodes) - 1
}

func (g *graph) addEdge(from, to int) {
	g.adj[from] = append(g.adj[from], to)
}

// edgesList flattens the adjacency lists into (from, to) pairs for DOT
// export: grouped by dependent node in node-insertion order, and each
// node's edges in the order they were added.
func (g *graph) edgesList() [][2]int {
	var out [][2]int
	for u, vs := range g.adj {
		for _, v := range vs {
			out = append(out, [2]int{u, v})
		}
	}
	return out
}

// findSatisfier returns the index of the first node (in node-insertion
// order) that satisfies dep, deduplicating by satisfaction rather than
// structural identity (§9). A secondary name index would help at
// scale; a linear scan is explicit about preserving first-match order.
func (g *graph) findSatisfier(dep pkg.Dependency) (int, bool) {
	for i, p := range g.nodes {
		if p.Satisfies(dep) {
			return i, true
		}
	}
	return -1, false
}

const (
	white = iota
	gray
	black
)

// topoSort returns nodes in reverse topological order (dependencies
// before dependents) via a DFS post-order traversal: a node is only
// appended to the order once every dependency reachable from it has
// already been appended. On a cycle, it returns the index of the node
// the closing back-edge points to, which lies on the cycle.
func (g *graph) topoSort() ([]int, int, error) {
	color := make([]int, len(g.nodes))
	var order []int
	var cycleAt = -1

	var visit func(u int) bool
	visit = func(u int) bool {
		color[u] = gray
		for _, v := range g.adj[u] {
			switch color[v] {
			case white:
				if visit(v) {
					return true
				}
			case gray:
				cycleAt = v
				return true
			}
		}
		color[u] = black
		order = append(order, u)
		return false
	}

	for u := range g.nodes {
		if color[u] == white {
			if visit(u) {
				return nil, cycleAt, errCycle
			}
		}
	}
	return order, -1, nil
}
