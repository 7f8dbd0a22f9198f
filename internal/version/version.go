// Package version implements nbpm's version model: an opaque, totally
// ordered value that must compare both SemVer-like strings ("5.10.0")
// and Debian-style strings ("2.31-13+deb11u7") meaningfully, plus a
// Constraint predicate over it.
//
// No published Go version library fits both families at once:
// Masterminds/semver and hashicorp/go-version both reject Debian-style
// revision/epoch suffixes as malformed. Rather than bend the package
// model to a strict-semver type (and silently reject most Debian
// packages), nbpm ports the segment-wise comparison the original
// implementation got from the `version_compare` crate: split on any
// run boundary between digits and non-digits, compare corresponding
// segments, and treat a missing trailing segment as weaker than a
// present numeric one but stronger than a present textual one (a
// pre-release tag). This choice is recorded in DESIGN.md.
package version

import (
	"strings"

	"github.com/nbpm/nbpm/internal/nberr"
)

// Version is a parsed, comparable version string.
type Version struct {
	raw      string
	segments []segment
}

type segment struct {
	text    string
	numeric bool
	n       int64
}

// Parse parses s into a Version. An empty string is not a valid version.
func Parse(s string) (Version, error) {
	if s == "" {
		return Version{}, nberr.Newf(nberr.VersionFmt, "empty version string")
	}
	return Version{raw: s, segments: splitSegments(s)}, nil
}

// MustParse parses s and panics on failure. Intended for tests and
// compile-time constant versions.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the original version text.
func (v Version) String() string {
	return v.raw
}

// IsZero reports whether v is the zero value (never produced by Parse).
func (v Version) IsZero() bool {
	return v.raw == "" && v.segments == nil
}

func splitSegments(s string) []segment {
	var segs []segment
	runStart := 0
	runDigit := isDigit(s[0])
	flush := func(end int) {
		if end <= runStart {
			return
		}
		part := s[runStart:end]
		if runDigit {
			segs = append(segs, segment{text: part, numeric: true, n: parseDigits(part)})
		} else if isSeparator(part) {
			// pure separator runs (., -, _, +, :, ~) don't carry ordering
			// information of their own; drop them.
		} else {
			segs = append(segs, segment{text: part})
		}
	}
	for i := 1; i < len(s); i++ {
		d := isDigit(s[i])
		if d != runDigit {
			flush(i)
			runStart = i
			runDigit = d
		}
	}
	flush(len(s))
	return segs
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isSeparator(s string) bool {
	for _, r := range s {
		switch r {
		case '.', '-', '_', '+', ':', '~':
		default:
			return false
		}
	}
	return true
}

func parseDigits(s string) int64 {
	var n int64
	for i := 0; i < len(s); i++ {
		n = n*10 + int64(s[i]-'0')
		// Saturate rather than overflow on pathological input; version
		// segments this long never occur in practice.
		if n < 0 {
			return 1<<63 - 1
		}
	}
	return n
}

// Relation describes how one version compares to another.
type Relation int

const (
	Less Relation = iota - 1
	Equal
	Greater
)

// Compare returns the Relation of v to other.
func (v Version) Compare(other Version) Relation {
	na, nb := len(v.segments), len(other.segments)
	n := na
	if nb > n {
		n = nb
	}
	for i := 0; i < n; i++ {
		var a, b segment
		var aok, bok bool
		if i < na {
			a, aok = v.segments[i], true
		}
		if i < nb {
			b, bok = other.segments[i], true
		}
		switch {
		case aok && !bok:
			// a present, b exhausted: an extra numeric segment makes a
			// longer, more specific version and is considered greater
			// ("1.0.1" > "1.0"); an extra textual segment is a
			// pre-release tag and is considered less ("1.0.0rc1" <
			// "1.0.0").
			if a.numeric {
				return Greater
			}
			return Less
		case !aok && bok:
			if b.numeric {
				return Less
			}
			return Greater
		case a.numeric && b.numeric:
			if r := compareInt(a.n, b.n); r != Equal {
				return r
			}
		case !a.numeric && !b.numeric:
			if r := compareString(a.text, b.text); r != Equal {
				return r
			}
		default:
			// Mixed kinds at the same position: a numeric segment is
			// considered newer than a textual one (e.g. a plain
			// release numeral outranks a pre-release tag like "rc").
			if a.numeric {
				return Greater
			}
			return Less
		}
	}
	return Equal
}

func compareInt(a, b int64) Relation {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}

func compareString(a, b string) Relation {
	switch strings.Compare(a, b) {
	case -1:
		return Less
	case 1:
		return Greater
	default:
		return Equal
	}
}

// Less reports whether v < other.
func (v Version) Less(other Version) bool { return v.Compare(other) == Less }

// Equal reports whether v == other.
func (v Version) Equal(other Version) bool { return v.Compare(other) == Equal }
