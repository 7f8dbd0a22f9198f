package repo

import (
	"github.com/nbpm/nbpm/internal/nberr"
	"github.com/nbpm/nbpm/internal/pkg"
	"github.com/nbpm/nbpm/internal/query"
)

// SearchAll fans queries out across repos (or, if sel is non-nil, the
// single repository of that kind) and concatenates matches per query
// index in repository registration order (§4.6).
func SearchAll(queries []query.Query, repos []Repository, sel *pkg.RepoType) ([][]pkg.Package, error) {
	matches := make([][]pkg.Package, len(queries))

	targets := repos
	if sel != nil {
		var found Repository
		for _, r := range repos {
			if r.Kind() == *sel {
				found = r
				break
			}
		}
		if found == nil {
			return nil, nberr.Newf(nberr.Repo, "selected repository %s does not exist", sel)
		}
		targets = []Repository{found}
	}

	for _, r := range targets {
		m, err := r.Search(queries)
		if err != nil {
			return nil, err
		}
		for i := range m {
			matches[i] = append(matches[i], m[i]...)
		}
	}
	return matches, nil
}
