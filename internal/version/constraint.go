package version

import "github.com/nbpm/nbpm/internal/nberr"

// Op is a version comparison operator.
type Op uint8

const (
	// Lt matches versions strictly less than the constraint's version.
	Lt Op = iota
	// Le matches versions less than or equal to the constraint's version.
	Le
	// Eq matches versions equal to the constraint's version.
	Eq
	// Ge matches versions greater than or equal to the constraint's version.
	Ge
	// Gt matches versions strictly greater than the constraint's version.
	Gt
)

func (o Op) String() string {
	switch o {
	case Lt:
		return "<"
	case Le:
		return "<="
	case Eq:
		return "=="
	case Ge:
		return ">="
	case Gt:
		return ">"
	default:
		return "?"
	}
}

// OpFromSign maps a comparison operator's textual sign to an Op. It
// accepts both the nbpm query sigils ("==", ">=", "<=", ">", "<") and
// the Debian relation sigils ("<<", "<", "<=", "=", ">=", ">>"), since
// both grammars end up feeding the same Constraint model.
func OpFromSign(sign string) (Op, error) {
	switch sign {
	case "==", "=":
		return Eq, nil
	case ">=":
		return Ge, nil
	case "<=":
		return Le, nil
	case ">", ">>":
		return Gt, nil
	case "<", "<<":
		return Lt, nil
	default:
		return 0, nberr.Newf(nberr.BadCompOp, "unknown comparison operator %q", sign)
	}
}

// Constraint is a predicate over a Version: either Any (always
// matches) or a (Op, Version) pair.
type Constraint struct {
	any bool
	op  Op
	v   Version
}

// Any is the constraint that matches every version.
var Any = Constraint{any: true}

// NewConstraint builds a Constraint requiring the given relation to v.
func NewConstraint(op Op, v Version) Constraint {
	return Constraint{op: op, v: v}
}

// IsAny reports whether c is the "any version" constraint.
func (c Constraint) IsAny() bool { return c.any }

// OpVersion returns the constraint's operator and version. ok is false for Any.
func (c Constraint) OpVersion() (op Op, v Version, ok bool) {
	if c.any {
		return 0, Version{}, false
	}
	return c.op, c.v, true
}

// Matches reports whether v satisfies the constraint.
func (c Constraint) Matches(v Version) bool {
	if c.any {
		return true
	}
	rel := v.Compare(c.v)
	switch c.op {
	case Lt:
		return rel == Less
	case Le:
		return rel == Less || rel == Equal
	case Eq:
		return rel == Equal
	case Ge:
		return rel == Greater || rel == Equal
	case Gt:
		return rel == Greater
	default:
		return false
	}
}

// String renders the constraint the way it would appear in a query
// string, e.g. ">=5.10.0" or "" for Any.
func (c Constraint) String() string {
	if c.any {
		return ""
	}
	return c.op.String() + c.v.String()
}
