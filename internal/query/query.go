// Package query implements nbpm's query-string grammar: NAME or
// NAME<OP>VERSION, per spec §4.1.
package query

import (
	"strings"

	"github.com/nbpm/nbpm/internal/nberr"
	"github.com/nbpm/nbpm/internal/version"
)

// operators is scanned in this exact order: "==", ">=" and "<=" must be
// tested before the single-character ">" and "<" to avoid a false
// prefix match (">=" contains ">").
var operators = []string{"==", ">=", "<=", ">", "<"}

// Query is a parsed package query: a glob-able name plus a version
// constraint.
type Query struct {
	Name       string
	Constraint version.Constraint
}

// Parse parses text of the form "NAME" or "NAME<OP>VERSION" into a Query.
func Parse(text string) (Query, error) {
	for _, op := range operators {
		idx := strings.Index(text, op)
		if idx < 0 {
			continue
		}
		name := text[:idx]
		verText := text[idx+len(op):]
		if verText == "" {
			return Query{}, nberr.Newf(nberr.Parsing, "missing version after operator %q in %q", op, text)
		}
		v, err := version.Parse(verText)
		if err != nil {
			return Query{}, err
		}
		o, err := version.OpFromSign(op)
		if err != nil {
			return Query{}, err
		}
		return Query{Name: name, Constraint: version.NewConstraint(o, v)}, nil
	}
	return Query{Name: text, Constraint: version.Any}, nil
}

// String renders q back into the query-string grammar, so that
// Parse(q.String()) == q for any well-formed Query.
func (q Query) String() string {
	return q.Name + q.Constraint.String()
}
