package query

import (
	"testing"

	"github.com/nbpm/nbpm/internal/nberr"
	"github.com/nbpm/nbpm/internal/version"
)

func TestParse(t *testing.T) {
	q, err := Parse("linux>=5.10")
	if err != nil {
		t.Fatal(err)
	}
	if q.Name != "linux" {
		t.Errorf("name = %q, want linux", q.Name)
	}
	op, v, ok := q.Constraint.OpVersion()
	if !ok || op != version.Ge || v.String() != "5.10" {
		t.Errorf("constraint = %v %v %v, want Ge 5.10", op, v, ok)
	}
}

func TestParseAny(t *testing.T) {
	q, err := Parse("foo")
	if err != nil {
		t.Fatal(err)
	}
	if q.Name != "foo" || !q.Constraint.IsAny() {
		t.Errorf("got %+v, want name=foo constraint=Any", q)
	}
}

func TestParseMissingVersion(t *testing.T) {
	_, err := Parse("bar==")
	if !nberr.Is(err, nberr.Parsing) {
		t.Fatalf("got %v, want Parsing error", err)
	}
}

func TestParseBadVersion(t *testing.T) {
	_, err := Parse("bar==")
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestRoundTrip(t *testing.T) {
	for _, text := range []string{"linux>=5.10.0", "foo", "make<1.0.0"} {
		q, err := Parse(text)
		if err != nil {
			t.Fatalf("parse %q: %v", text, err)
		}
		q2, err := Parse(q.String())
		if err != nil {
			t.Fatalf("re-parse %q: %v", q.String(), err)
		}
		if q2.Name != q.Name || q2.Constraint.String() != q.Constraint.String() {
			t.Errorf("round trip mismatch: %+v vs %+v", q, q2)
		}
	}
}
