package resolver

import (
	"context"
	"strings"
	"testing"

	"github.com/nbpm/nbpm/internal/pkg"
	"github.com/nbpm/nbpm/internal/query"
	"github.com/nbpm/nbpm/internal/repo"
	"github.com/nbpm/nbpm/internal/version"
)

// fakeRepo answers a Search by name, ignoring the constraint, which is
// sufficient for the resolver tests: they cover graph shape, not
// repository-level version filtering (already covered in
// internal/nebuladb and internal/debian).
type fakeRepo struct {
	byName map[string][]pkg.Package
}

func (f *fakeRepo) Kind() pkg.RepoType                    { return pkg.Nebula }
func (f *fakeRepo) Initialize() error                     { return nil }
func (f *fakeRepo) Update(context.Context) error          { return nil }
func (f *fakeRepo) Search(qs []query.Query) ([][]pkg.Package, error) {
	out := make([][]pkg.Package, len(qs))
	for i, q := range qs {
		out[i] = f.byName[q.Name]
	}
	return out, nil
}

func mustPkg(t *testing.T, name, ver string, deps *pkg.DependsList) pkg.Package {
	t.Helper()
	p, err := pkg.New(name, version.MustParse(ver), pkg.NewSource(pkg.Nebula, ""), deps)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func singleDep(t *testing.T, name string) *pkg.DependsList {
	t.Helper()
	list := pkg.NewDependsList([]pkg.DependsItem{
		pkg.NewSingle(pkg.NewDependency(name, version.Any)),
	})
	return &list
}

func orderNames(pkgs []pkg.Package) string {
	names := make([]string, len(pkgs))
	for i, p := range pkgs {
		names[i] = p.Name()
	}
	return strings.Join(names, ",")
}

// S5: A depends on B; B depends on C; C has no deps.
func TestResolveLinearChain(t *testing.T) {
	c := mustPkg(t, "c", "1.0.0", nil)
	b := mustPkg(t, "b", "1.0.0", singleDep(t, "c"))
	a := mustPkg(t, "a", "1.0.0", singleDep(t, "b"))

	r := &fakeRepo{byName: map[string][]pkg.Package{"b": {b}, "c": {c}}}

	got, err := Resolve(a, []repo.Repository{r})
	if err != nil {
		t.Fatal(err)
	}
	if orderNames(got) != "c,b,a" {
		t.Errorf("order = %s, want c,b,a", orderNames(got))
	}
}

// S6: A depends on (B|C) and D; B depends on D. The B alternative
// should be preferred (declaration order) and D deduplicated to a
// single node shared between A and B.
func TestResolveDiamondWithAlternatives(t *testing.T) {
	d := mustPkg(t, "d", "1.0.0", nil)
	b := mustPkg(t, "b", "1.0.0", singleDep(t, "d"))
	c := mustPkg(t, "c", "1.0.0", nil)

	items := []pkg.DependsItem{
		pkg.NewOpts([]pkg.Dependency{
			pkg.NewDependency("b", version.Any),
			pkg.NewDependency("c", version.Any),
		}),
		pkg.NewSingle(pkg.NewDependency("d", version.Any)),
	}
	list := pkg.NewDependsList(items)
	a := mustPkg(t, "a", "1.0.0", &list)

	r := &fakeRepo{byName: map[string][]pkg.Package{
		"b": {b}, "c": {c}, "d": {d},
	}}

	got, err := Resolve(a, []repo.Repository{r})
	if err != nil {
		t.Fatal(err)
	}
	if orderNames(got) != "d,b,a" {
		t.Errorf("order = %s, want d,b,a (c should not appear)", orderNames(got))
	}
}

// S7: A depends on B; B depends on A. Satisfaction-based dedup makes B
// resolve its dependency on "A" against the already-present target
// node, closing a cycle that topoSort must detect.
func TestResolveCycle(t *testing.T) {
	b := mustPkg(t, "b", "1.0.0", singleDep(t, "a"))
	a := mustPkg(t, "a", "1.0.0", singleDep(t, "b"))

	r := &fakeRepo{byName: map[string][]pkg.Package{"b": {b}}}

	_, err := Resolve(a, []repo.Repository{r})
	if err == nil {
		t.Fatal("expected a dependency cycle error")
	}
}

func TestResolveNoDeps(t *testing.T) {
	a := mustPkg(t, "a", "1.0.0", nil)
	got, err := Resolve(a, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || !got[0].Equal(a) {
		t.Errorf("got %v, want [a]", got)
	}
}

func TestResolveMissingDependencyFails(t *testing.T) {
	a := mustPkg(t, "a", "1.0.0", singleDep(t, "ghost"))
	r := &fakeRepo{byName: map[string][]pkg.Package{}}

	_, err := Resolve(a, []repo.Repository{r})
	if err == nil {
		t.Fatal("expected DependencyNotFound error")
	}
}

func TestWriteDOT(t *testing.T) {
	c := mustPkg(t, "c", "1.0.0", nil)
	b := mustPkg(t, "b", "1.0.0", singleDep(t, "c"))
	a := mustPkg(t, "a", "1.0.0", singleDep(t, "b"))
	r := &fakeRepo{byName: map[string][]pkg.Package{"b": {b}, "c": {c}}}

	g, err := ResolveGraph(a, []repo.Repository{r})
	if err != nil {
		t.Fatal(err)
	}
	var buf strings.Builder
	if err := WriteDOT(&buf, g); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "digraph") {
		t.Errorf("output missing digraph header: %s", out)
	}
	if !strings.Contains(out, "a 1.0.0") || !strings.Contains(out, "c 1.0.0") {
		t.Errorf("output missing expected node labels: %s", out)
	}
}
