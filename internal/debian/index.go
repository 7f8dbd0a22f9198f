// Package debian implements the Debian/APT repository adapter: lazy,
// process-wide loading of a concatenated Packages-<component> index
// (§6.2) and a single streaming pass that matches a batch of queries
// while parsing dependency lines on demand (§4.4).
package debian

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Index is the Debian adapter's process-wide, read-only line store. It
// is lazily populated on first use and, once loaded, never mutated —
// matching the "init-on-first-read, teardown at process exit" lifecycle
// in §4.4. Encapsulating it as a value (rather than a package-level
// global) lets tests inject a synthetic index without touching the
// filesystem, per the design note in §9.
type Index struct {
	loaded bool
	lines  []string
}

// EnsureLoaded populates the index from the concatenated
// Packages-<component> files under dir, for each component in
// declaration order, if it has not already been loaded.
func (idx *Index) EnsureLoaded(dir string, components []string) error {
	if idx.loaded {
		return nil
	}
	var lines []string
	for _, comp := range components {
		path := filepath.Join(dir, "Packages-"+comp)
		more, err := readLines(path)
		if err != nil {
			return errors.Wrapf(err, "reading debian index component %s", comp)
		}
		lines = append(lines, more...)
	}
	idx.lines = lines
	idx.loaded = true
	return nil
}

// SetLines injects a synthetic, already-loaded index, replacing any
// lines loaded before.
func (idx *Index) SetLines(lines []string) {
	idx.lines = lines
	idx.loaded = true
}

// Lines returns the loaded index lines.
func (idx *Index) Lines() []string { return idx.lines }

// Loaded reports whether the index has been populated.
func (idx *Index) Loaded() bool { return idx.loaded }

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
