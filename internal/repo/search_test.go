package repo

import (
	"context"
	"testing"

	"github.com/nbpm/nbpm/internal/pkg"
	"github.com/nbpm/nbpm/internal/query"
	"github.com/nbpm/nbpm/internal/version"
)

type fakeRepo struct {
	kind    pkg.RepoType
	matches map[string][]pkg.Package
}

func (f *fakeRepo) Kind() pkg.RepoType    { return f.kind }
func (f *fakeRepo) Initialize() error     { return nil }
func (f *fakeRepo) Update(context.Context) error { return nil }
func (f *fakeRepo) Search(qs []query.Query) ([][]pkg.Package, error) {
	out := make([][]pkg.Package, len(qs))
	for i, q := range qs {
		out[i] = f.matches[q.Name]
	}
	return out, nil
}

func mustPkg(t *testing.T, name, ver string, rt pkg.RepoType) pkg.Package {
	t.Helper()
	p, err := pkg.New(name, version.MustParse(ver), pkg.NewSource(rt, ""), nil)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestSearchAllFansOutAndAligns(t *testing.T) {
	a := mustPkg(t, "linux", "5.10.0", pkg.Nebula)
	b := mustPkg(t, "linux", "5.9.0", pkg.Debian)
	r1 := &fakeRepo{kind: pkg.Nebula, matches: map[string][]pkg.Package{"linux": {a}}}
	r2 := &fakeRepo{kind: pkg.Debian, matches: map[string][]pkg.Package{"linux": {b}}}

	qs := []query.Query{{Name: "linux", Constraint: version.Any}, {Name: "nothing", Constraint: version.Any}}
	got, err := SearchAll(qs, []Repository{r1, r2}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(qs) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(qs))
	}
	if len(got[0]) != 2 || !got[0][0].Equal(a) || !got[0][1].Equal(b) {
		t.Errorf("got[0] = %v, want [a, b] in registration order", got[0])
	}
	if len(got[1]) != 0 {
		t.Errorf("got[1] = %v, want empty", got[1])
	}
}

func TestSearchAllSelectedRepo(t *testing.T) {
	a := mustPkg(t, "linux", "5.10.0", pkg.Nebula)
	r1 := &fakeRepo{kind: pkg.Nebula, matches: map[string][]pkg.Package{"linux": {a}}}
	r2 := &fakeRepo{kind: pkg.Debian, matches: map[string][]pkg.Package{}}

	sel := pkg.Debian
	got, err := SearchAll([]query.Query{{Name: "linux", Constraint: version.Any}}, []Repository{r1, r2}, &sel)
	if err != nil {
		t.Fatal(err)
	}
	if len(got[0]) != 0 {
		t.Errorf("expected no matches from debian-only search, got %v", got[0])
	}
}

func TestSearchAllUnknownSelectedRepo(t *testing.T) {
	sel := pkg.Debian
	_, err := SearchAll(nil, nil, &sel)
	if err == nil {
		t.Fatal("expected error for missing selected repository")
	}
}

func TestSearchAllEmptyQueries(t *testing.T) {
	got, err := SearchAll(nil, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}
