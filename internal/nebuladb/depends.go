package nebuladb

import (
	"strings"

	"github.com/nbpm/nbpm/internal/nberr"
	"github.com/nbpm/nbpm/internal/pkg"
	"github.com/nbpm/nbpm/internal/query"
)

// parseDependsStrings turns the raw `depends` string list of a
// packages.toml entry into a DependsList, per §4.5: each string is
// "alt (\" or \" alt)*", where alt is a name optionally followed by an
// operator+version parsed with the same grammar as a query (§4.1). A
// single alternative folds to DependsItem.Single; more than one folds
// to DependsItem.Opts, mirroring the Debian comma/pipe folding rule in
// §4.4.1.
func parseDependsStrings(raw []string) (*pkg.DependsList, error) {
	items := make([]pkg.DependsItem, 0, len(raw))
	for _, depStr := range raw {
		if depStr == "" {
			return nil, nberr.Newf(nberr.Parsing, "empty dependency entry")
		}
		alts := strings.Split(depStr, " or ")
		opts := make([]pkg.Dependency, 0, len(alts))
		for _, alt := range alts {
			q, err := query.Parse(alt)
			if err != nil {
				return nil, err
			}
			opts = append(opts, pkg.NewDependency(q.Name, q.Constraint))
		}
		if len(opts) == 1 {
			items = append(items, pkg.NewSingle(opts[0]))
		} else {
			items = append(items, pkg.NewOpts(opts))
		}
	}
	if len(items) == 0 {
		return nil, nil
	}
	list := pkg.NewDependsList(items)
	return &list, nil
}
