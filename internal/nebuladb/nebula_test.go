package nebuladb

import (
	"testing"

	"github.com/nbpm/nbpm/internal/query"
	"github.com/nbpm/nbpm/internal/version"
)

const sampleIndex = `
arch = "amd64"

[[core]]
name = "busybox"
version = "1.32.0"

[[core]]
name = "linux"
version = "5.10.0"
depends = ["libc>=2.31", "busybox or toybox"]

[[extra]]
name = "linuxtools"
version = "0.4.1"
`

func TestParsePkgDB(t *testing.T) {
	db, err := ParsePkgDB([]byte(sampleIndex))
	if err != nil {
		t.Fatal(err)
	}
	if db.Arch() != "amd64" {
		t.Errorf("arch = %q, want amd64", db.Arch())
	}
	if got := db.Components(); len(got) != 2 || got[0] != ComponentCore || got[1] != ComponentExtra {
		t.Errorf("components = %v, want [core extra]", got)
	}
}

func TestSearchGlob(t *testing.T) {
	db, err := ParsePkgDB([]byte(sampleIndex))
	if err != nil {
		t.Fatal(err)
	}
	q, err := query.Parse("linux*")
	if err != nil {
		t.Fatal(err)
	}
	got, err := db.Search([]query.Query{q})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || len(got[0]) != 2 {
		t.Fatalf("got %v, want 2 matches", got)
	}
	if got[0][0].Name() != "linux" || got[0][1].Name() != "linuxtools" {
		t.Errorf("order = [%s, %s], want [linux, linuxtools]", got[0][0].Name(), got[0][1].Name())
	}
}

func TestSearchVersionFilter(t *testing.T) {
	db, err := ParsePkgDB([]byte(sampleIndex))
	if err != nil {
		t.Fatal(err)
	}
	q := query.Query{Name: "linux*", Constraint: version.NewConstraint(version.Lt, version.MustParse("0.4.0"))}
	got, err := db.Search([]query.Query{q})
	if err != nil {
		t.Fatal(err)
	}
	if len(got[0]) != 0 {
		t.Errorf("got %v, want no matches", got[0])
	}
}

func TestLinuxDependsParsed(t *testing.T) {
	db, err := ParsePkgDB([]byte(sampleIndex))
	if err != nil {
		t.Fatal(err)
	}
	q, _ := query.Parse("linux")
	got, err := db.Search([]query.Query{q})
	if err != nil {
		t.Fatal(err)
	}
	if len(got[0]) != 1 {
		t.Fatalf("expected exactly one match, got %v", got[0])
	}
	deps := got[0][0].Depends()
	if deps == nil || deps.Len() != 2 {
		t.Fatalf("expected 2 depends items, got %v", deps)
	}
	if !deps.Items()[0].IsSingle() {
		t.Errorf("expected first item to be single")
	}
	if deps.Items()[1].IsSingle() {
		t.Errorf("expected second item (busybox or toybox) to be Opts")
	}
}

func TestSearchEmptyQueries(t *testing.T) {
	db, err := ParsePkgDB([]byte(sampleIndex))
	if err != nil {
		t.Fatal(err)
	}
	got, err := db.Search(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}
