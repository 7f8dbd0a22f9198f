// Package linkutil builds the fakeroot symlink farm: every entry under
// a source tree whose corresponding path under a destination tree does
// not exist yet gets a symlink there (a directory is linked whole, and
// what lies under it is reached through that link), letting an
// installed package's files live under a single staging directory
// while still appearing at their final destination paths.
package linkutil

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/karrick/godirwalk"
	"github.com/pkg/errors"

	"github.com/nbpm/nbpm/internal/nberr"
)

// CreateLinks walks src and, for every node under it, creates a
// symlink at the equivalent path under dest (§7). A destination path
// that already exists — file, directory, or a previously created link
// whose subtree the new path falls under — is left untouched. If any
// symlink call fails, every link created so far in this call is
// removed before the error is returned; nodes it could not remove are
// reported via nberr.CannotRemoveBadLinks rather than silently
// swallowed.
func CreateLinks(src, dest string) error {
	src, err := filepath.Abs(src)
	if err != nil {
		return err
	}
	dest, err = filepath.Abs(dest)
	if err != nil {
		return err
	}

	var links []string
	walkErr := godirwalk.Walk(src, &godirwalk.Options{
		Callback: func(osPathname string, _ *godirwalk.Dirent) error {
			rel, err := filepath.Rel(src, osPathname)
			if err != nil {
				return err
			}
			newPath := filepath.Join(dest, rel)

			if underAny(newPath, links) {
				return nil
			}
			if _, err := os.Lstat(newPath); err == nil {
				return nil
			}

			if err := os.MkdirAll(filepath.Dir(newPath), 0o755); err != nil {
				return err
			}
			if err := os.Symlink(osPathname, newPath); err != nil {
				return errors.Wrapf(err, "linking %s -> %s", osPathname, newPath)
			}
			links = append(links, newPath)
			return nil
		},
	})

	if walkErr != nil {
		return cleanupLinks(links, walkErr)
	}
	return nil
}

// underAny reports whether path is path itself or falls under one of
// the already-created links, mirroring the original tool's guard
// against re-descending into a directory it just symlinked whole.
func underAny(path string, links []string) bool {
	for _, l := range links {
		if path == l || strings.HasPrefix(path, l+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func cleanupLinks(links []string, cause error) error {
	var failed []string
	for _, l := range links {
		if err := os.Remove(l); err != nil {
			failed = append(failed, l)
		}
	}
	if len(failed) > 0 {
		return nberr.Newf(nberr.CannotRemoveBadLinks, "could not remove %v after link failure: %v", failed, cause)
	}
	return errors.Wrap(cause, "creating links")
}
