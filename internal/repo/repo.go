// Package repo defines the repository capability nbpm's search and
// resolver layers depend on (§4.2), plus the aggregated search façade
// that fans a query batch across repositories (§4.6).
package repo

import (
	"context"

	"github.com/nbpm/nbpm/internal/pkg"
	"github.com/nbpm/nbpm/internal/query"
)

// Repository is the capability every repository adapter implements.
type Repository interface {
	// Kind reports which repository format this adapter serves.
	Kind() pkg.RepoType
	// Initialize is idempotent: it creates the repository's local
	// directory if absent.
	Initialize() error
	// Update refreshes the repository's local index files. Out of the
	// core's scope; adapters may implement it via internal/fetch.
	Update(ctx context.Context) error
	// Search resolves queries against the repository's index. The
	// returned slice has exactly len(queries) entries, result[i] being
	// the (possibly empty) matches for queries[i]. It never panics on
	// an empty queries slice.
	Search(queries []query.Query) ([][]pkg.Package, error)
}
