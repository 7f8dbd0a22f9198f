package nebuladb

import (
	"github.com/gobwas/glob"

	"github.com/nbpm/nbpm/internal/pkg"
	"github.com/nbpm/nbpm/internal/query"
)

// Search answers a batch of queries against the index in a single pass
// over each component list (§4.3). The outer result slice has exactly
// len(queries) entries; result[i] holds matches for queries[i] in the
// order they're encountered — components in {core, extra}, each in
// file order — which is stable across identical inputs.
func (db *PkgDB) Search(queries []query.Query) ([][]pkg.Package, error) {
	result := make([][]pkg.Package, len(queries))
	if len(queries) == 0 {
		return result, nil
	}

	globs := make([]glob.Glob, len(queries))
	for i, q := range queries {
		g, err := glob.Compile(q.Name)
		if err != nil {
			return nil, err
		}
		globs[i] = g
	}

	for _, list := range db.componentLists() {
		for _, p := range list {
			for i, g := range globs {
				if !g.Match(p.Name()) {
					continue
				}
				if queries[i].Constraint.Matches(p.Version()) {
					result[i] = append(result[i], p)
				}
			}
		}
	}
	return result, nil
}
