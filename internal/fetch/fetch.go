// Package fetch is the out-of-core-scope external collaborator that
// actually reaches the network: downloading a repository's index
// files over HTTP, verifying the downloaded Packages.xz against the
// hash recorded in InRelease, and decompressing it in place (§6.2,
// §6.3).
package fetch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/ulikunitz/xz"

	"github.com/nbpm/nbpm/internal/debian"
	"github.com/nbpm/nbpm/internal/nberr"
)

// Fetcher downloads a single URL to a local path. It is an interface
// so the update pipeline can be exercised in tests without a network.
type Fetcher interface {
	Download(ctx context.Context, url, outfile string) error
}

// HTTPFetcher is the production Fetcher, backed by net/http.
type HTTPFetcher struct {
	Client *http.Client
}

// NewHTTPFetcher returns an HTTPFetcher using http.DefaultClient.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{Client: http.DefaultClient}
}

// Download clears outfile if it already exists and streams url's body
// to it.
func (f *HTTPFetcher) Download(ctx context.Context, url, outfile string) error {
	if err := removeIfExists(outfile); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "downloading %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nberr.Newf(nberr.Repo, "unexpected status %d downloading %s", resp.StatusCode, url)
	}

	out, err := os.Create(outfile)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, resp.Body)
	return err
}

func removeIfExists(path string) error {
	if _, err := os.Stat(path); err == nil {
		return os.RemoveAll(path)
	} else if !os.IsNotExist(err) {
		return err
	}
	return nil
}

// FileHash returns the hex-encoded SHA-256 digest of the file at path.
func FileHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// DecompressXZ decompresses the xz stream at src into dst.
func DecompressXZ(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	xr, err := xz.NewReader(in)
	if err != nil {
		return errors.Wrapf(err, "opening xz stream %s", src)
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, xr)
	return err
}

// UpdateNebulaRepo refreshes a Nebula repository's local index (§6.1):
// it clears repoDir and downloads "packages.toml" from repository.
func UpdateNebulaRepo(ctx context.Context, f Fetcher, repository, repoDir string) error {
	entries, err := os.ReadDir(repoDir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(repoDir, e.Name())); err != nil {
			return errors.Wrapf(err, "cleaning %s", repoDir)
		}
	}
	return f.Download(ctx, repository+"/packages.toml", filepath.Join(repoDir, "packages.toml"))
}

// UpdateDebianRepo refreshes a Debian repository's local index (§6.2):
// it clears repoDir, downloads InRelease, then for every component
// downloads Packages.xz, verifies its SHA-256 against the hash
// InRelease records, and decompresses it to "Packages-<component>".
func UpdateDebianRepo(ctx context.Context, f Fetcher, repository string, components []string, arch, repoDir string) error {
	entries, err := os.ReadDir(repoDir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(repoDir, e.Name())); err != nil {
			return errors.Wrapf(err, "cleaning %s", repoDir)
		}
	}

	inReleasePath := filepath.Join(repoDir, "InRelease")
	if err := f.Download(ctx, repository+"/InRelease", inReleasePath); err != nil {
		return err
	}

	for _, component := range components {
		expected, err := readExpectedHash(inReleasePath, component, arch)
		if err != nil {
			return err
		}

		xzPath := filepath.Join(repoDir, fmt.Sprintf("Packages-%s.xz", component))
		url := fmt.Sprintf("%s/%s/binary-%s/Packages.xz", repository, component, arch)
		if err := f.Download(ctx, url, xzPath); err != nil {
			return err
		}

		actual, err := FileHash(xzPath)
		if err != nil {
			return err
		}
		if actual != expected {
			return nberr.Newf(nberr.HashCheck, "hash mismatch for %s component %s", xzPath, component)
		}

		dst := filepath.Join(repoDir, "Packages-"+component)
		if err := DecompressXZ(xzPath, dst); err != nil {
			return err
		}
	}
	return nil
}

func readExpectedHash(inReleasePath, component, arch string) (string, error) {
	rel, err := os.Open(inReleasePath)
	if err != nil {
		return "", err
	}
	defer rel.Close()
	return debian.PackageFileHash(rel, component, arch)
}
