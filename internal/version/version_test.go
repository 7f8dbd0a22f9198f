package version

import "testing"

func TestCompare(t *testing.T) {
	cases := []struct {
		a, b string
		want Relation
	}{
		{"5.10.0", "5.10.0", Equal},
		{"5.9.0", "5.10.0", Less},
		{"5.10.1", "5.10.0", Greater},
		{"1.0", "1.0.1", Less},
		{"2.31-13+deb11u7", "2.31-13+deb11u6", Greater},
		{"2.31-13+deb11u7", "2.31-13+deb11u7", Equal},
		{"1.0.0rc1", "1.0.0", Less},
	}
	for _, c := range cases {
		a, err := Parse(c.a)
		if err != nil {
			t.Fatalf("parse %q: %v", c.a, err)
		}
		b, err := Parse(c.b)
		if err != nil {
			t.Fatalf("parse %q: %v", c.b, err)
		}
		if got := a.Compare(b); got != c.want {
			t.Errorf("Compare(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestParseEmpty(t *testing.T) {
	if _, err := Parse(""); err == nil {
		t.Fatal("expected error parsing empty version")
	}
}

func TestConstraintMatches(t *testing.T) {
	v := MustParse("5.10.0")
	cases := []struct {
		name string
		c    Constraint
		want bool
	}{
		{"any", Any, true},
		{"lt-true", NewConstraint(Lt, MustParse("6.0.0")), true},
		{"lt-false", NewConstraint(Lt, MustParse("5.0.0")), false},
		{"ge-eq", NewConstraint(Ge, MustParse("5.10.0")), true},
		{"gt-eq-false", NewConstraint(Gt, MustParse("5.10.0")), false},
		{"eq-true", NewConstraint(Eq, MustParse("5.10.0")), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.c.Matches(v); got != c.want {
				t.Errorf("Matches = %v, want %v", got, c.want)
			}
		})
	}
}

func TestOpFromSign(t *testing.T) {
	cases := map[string]Op{
		"==": Eq, "=": Eq, ">=": Ge, "<=": Le, ">": Gt, "<": Lt, ">>": Gt, "<<": Lt,
	}
	for sign, want := range cases {
		op, err := OpFromSign(sign)
		if err != nil {
			t.Fatalf("OpFromSign(%q): %v", sign, err)
		}
		if op != want {
			t.Errorf("OpFromSign(%q) = %v, want %v", sign, op, want)
		}
	}
	if _, err := OpFromSign("~="); err == nil {
		t.Fatal("expected error for unknown operator")
	}
}
