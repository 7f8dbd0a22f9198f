package fetch

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/ulikunitz/xz"
)

func TestHTTPFetcherDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("package index contents"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	out := filepath.Join(dir, "index")

	f := NewHTTPFetcher()
	if err := f.Download(context.Background(), srv.URL, out); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "package index contents" {
		t.Errorf("got %q", data)
	}
}

func TestHTTPFetcherDownloadClearsExisting(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("new contents"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	out := filepath.Join(dir, "index")
	if err := os.WriteFile(out, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	f := NewHTTPFetcher()
	if err := f.Download(context.Background(), srv.URL, out); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "new contents" {
		t.Errorf("got %q, want stale contents replaced", data)
	}
}

func TestFileHash(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	hash, err := FileHash(path)
	if err != nil {
		t.Fatal(err)
	}
	const wantHello = "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	if hash != wantHello {
		t.Errorf("hash = %s, want %s", hash, wantHello)
	}
}

func TestDecompressXZ(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "data.xz")

	var buf bytes.Buffer
	xw, err := xz.NewWriter(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := xw.Write([]byte("decompressed content")); err != nil {
		t.Fatal(err)
	}
	if err := xw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(src, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	dst := filepath.Join(dir, "data")
	if err := DecompressXZ(src, dst); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "decompressed content" {
		t.Errorf("got %q", got)
	}
}

func TestUpdateNebulaRepo(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "stale"), []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	f := &fakeFetcher{xzBody: []byte("[core]\n")}
	if err := UpdateNebulaRepo(context.Background(), f, "http://nebula.example.org", dir); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(filepath.Join(dir, "stale")); !os.IsNotExist(err) {
		t.Errorf("stale file was not cleaned up")
	}
	data, err := os.ReadFile(filepath.Join(dir, "packages.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[core]\n" {
		t.Errorf("got %q", data)
	}
	if len(f.downloads) != 1 || f.downloads[0] != "http://nebula.example.org/packages.toml" {
		t.Errorf("downloads = %v", f.downloads)
	}
}

type fakeFetcher struct {
	downloads []string
	inRelease []byte
	xzBody    []byte
}

func (f *fakeFetcher) Download(ctx context.Context, url, outfile string) error {
	f.downloads = append(f.downloads, url)
	var body []byte
	switch {
	case filepath.Base(outfile) == "InRelease":
		body = f.inRelease
	default:
		body = f.xzBody
	}
	return os.WriteFile(outfile, body, 0o644)
}

func TestUpdateDebianRepo(t *testing.T) {
	dir := t.TempDir()

	var xzBuf bytes.Buffer
	xw, err := xz.NewWriter(&xzBuf)
	if err != nil {
		t.Fatal(err)
	}
	xw.Write([]byte("Package: foo\nVersion: 1.0\n"))
	xw.Close()

	hash, err := func() (string, error) {
		tmp := filepath.Join(dir, "tmp.xz")
		if err := os.WriteFile(tmp, xzBuf.Bytes(), 0o644); err != nil {
			return "", err
		}
		return FileHash(tmp)
	}()
	if err != nil {
		t.Fatal(err)
	}

	inRelease := []byte("SHA256:\n " + hash + " 100 main/binary-amd64/Packages.xz\n")

	f := &fakeFetcher{inRelease: inRelease, xzBody: xzBuf.Bytes()}
	if err := UpdateDebianRepo(context.Background(), f, "http://deb.example.org", []string{"main"}, "amd64", dir); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "Packages-main"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "Package: foo\nVersion: 1.0\n" {
		t.Errorf("got %q", data)
	}
}
