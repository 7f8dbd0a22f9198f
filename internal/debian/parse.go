package debian

import (
	"strings"

	"github.com/nbpm/nbpm/internal/nberr"
	"github.com/nbpm/nbpm/internal/pkg"
	"github.com/nbpm/nbpm/internal/query"
	"github.com/nbpm/nbpm/internal/version"
)

// parseDepends parses a Debian Depends field value per the grammar in
// §4.4.1:
//
//	deps   := item ("," SP item)*
//	item   := alt (SP "|" SP alt)*
//	alt    := NAME (SP "(" rel SP version ")")?
//	rel    := "<<" | "<" | "<=" | "=" | ">=" | ">" | ">>"
//
// An empty string yields a nil list; each top-level item with exactly
// one alternative folds to DependsItem.Single, otherwise Opts.
func parseDepends(s string) (*pkg.DependsList, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	items := make([]pkg.DependsItem, 0)
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			return nil, nberr.Newf(nberr.Parsing, "empty dependency item")
		}
		var opts []pkg.Dependency
		for _, alt := range strings.Split(item, "|") {
			d, err := parseAlt(strings.TrimSpace(alt))
			if err != nil {
				return nil, err
			}
			opts = append(opts, d)
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

// parseAlt parses a single "alt" production: NAME optionally followed
// by " (rel version)".
func parseAlt(alt string) (pkg.Dependency, error) {
	open := strings.IndexByte(alt, '(')
	if open < 0 {
		name := strings.TrimSpace(alt)
		if name == "" {
			return pkg.Dependency{}, nberr.Newf(nberr.Parsing, "empty dependency name")
		}
		return pkg.NewDependency(name, version.Any), nil
	}

	name := strings.TrimSpace(alt[:open])
	close := strings.IndexByte(alt, ')')
	if close < 0 || close < open {
		return pkg.Dependency{}, nberr.Newf(nberr.Parsing, "unterminated version relation in %q", alt)
	}
	relVer := strings.TrimSpace(alt[open+1 : close])

	relSign, verText, ok := splitRelation(relVer)
	if !ok {
		return pkg.Dependency{}, nberr.Newf(nberr.Parsing, "malformed version relation %q", relVer)
	}
	if verText == "" {
		return pkg.Dependency{}, nberr.Newf(nberr.Parsing, "missing version after relation %q", relSign)
	}
	op, err := version.OpFromSign(relSign)
	if err != nil {
		return pkg.Dependency{}, err
	}
	v, err := version.Parse(verText)
	if err != nil {
		return pkg.Dependency{}, err
	}
	return pkg.NewDependency(name, version.NewConstraint(op, v)), nil
}

// debianRelations is scanned longest-first so that "<<" and "<=" are
// recognized before the single-character "<".
var debianRelations = []string{"<<", ">>", "<=", ">=", "<", ">", "="}

func splitRelation(s string) (sign, rest string, ok bool) {
	for _, rel := range debianRelations {
		if strings.HasPrefix(s, rel) {
			return rel, strings.TrimSpace(s[len(rel):]), true
		}
	}
	return "", "", false
}

// queryGlobPattern is the literal prefix pattern used to match a query
// name against a "Package: <name>" index line (§4.4).
func queryGlobPattern(q query.Query) string {
	return "Package: " + q.Name
}
