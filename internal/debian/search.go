package debian

import (
	"strings"

	"github.com/gobwas/glob"

	"github.com/nbpm/nbpm/internal/nberr"
	"github.com/nbpm/nbpm/internal/pkg"
	"github.com/nbpm/nbpm/internal/query"
	"github.com/nbpm/nbpm/internal/version"
)

const packagePrefix = "Package: "

// searchLines implements §4.4's single streaming pass: scan the index
// with a cursor i; whenever L[i] matches the glob set built from
// "Package: <name>" patterns, parse the paragraph that follows,
// filtering the surviving query indices as the Version field narrows
// them, and emit the resulting Package into every surviving query's
// result slot.
func searchLines(lines []string, queries []query.Query, repoBase string) ([][]pkg.Package, error) {
	result := make([][]pkg.Package, len(queries))
	if len(queries) == 0 {
		return result, nil
	}

	globs := make([]glob.Glob, len(queries))
	for i, q := range queries {
		g, err := glob.Compile(queryGlobPattern(q))
		if err != nil {
			return nil, err
		}
		globs[i] = g
	}

	i := 0
	for i < len(lines) {
		line := lines[i]
		matched := matchingQueries(globs, line)
		if len(matched) == 0 {
			i++
			continue
		}
		name := line[len(packagePrefix):]

		p, survivors, next, err := parseParagraph(lines, i+1, name, matched, queries, repoBase)
		if err != nil {
			return nil, err
		}
		for _, qi := range survivors {
			result[qi] = append(result[qi], p)
		}
		i = next
	}
	return result, nil
}

func matchingQueries(globs []glob.Glob, line string) []int {
	var out []int
	for i, g := range globs {
		if g.Match(line) {
			out = append(out, i)
		}
	}
	return out
}

// parseParagraph parses the stanza body starting at lines[start],
// ending at the first blank line or EOF. It returns the resulting
// Package (valid only if len(survivors) > 0), the surviving query
// indices, and the index of the line after the paragraph.
func parseParagraph(lines []string, start int, name string, candidates []int, queries []query.Query, repoBase string) (pkg.Package, []int, int, error) {
	survivors := candidates
	var ver version.Version
	verSet := false
	src := pkg.NewSource(pkg.Debian, "")
	var depends *pkg.DependsList

	i := start
	for i < len(lines) && lines[i] != "" {
		line := lines[i]
		switch {
		case strings.HasPrefix(line, "Version: "):
			v, err := version.Parse(strings.TrimPrefix(line, "Version: "))
			if err != nil {
				return pkg.Package{}, nil, i, err
			}
			ver = v
			verSet = true
			survivors = filterSurvivors(survivors, queries, v)
			if len(survivors) == 0 {
				// Abandon the paragraph early: nothing left to satisfy,
				// but still advance the cursor past it.
				i = skipToBlankOrEOF(lines, i+1)
				return pkg.Package{}, nil, i, nil
			}
		case strings.HasPrefix(line, "Filename: "):
			rel := strings.TrimPrefix(line, "Filename: ")
			src = pkg.NewSource(pkg.Debian, repoBase+"/"+rel)
		case strings.HasPrefix(line, "Depends: "):
			d, err := parseDepends(strings.TrimPrefix(line, "Depends: "))
			if err != nil {
				return pkg.Package{}, nil, i, err
			}
			depends = d
		}
		i++
	}
	// Skip the blank separator line itself, if present.
	next := i
	if next < len(lines) {
		next++
	}

	if len(survivors) == 0 {
		return pkg.Package{}, nil, next, nil
	}
	if !verSet {
		return pkg.Package{}, nil, next, nberr.Newf(nberr.VersionNotFound, "package %s has no Version field", name)
	}
	p, err := pkg.New(name, ver, src, depends)
	if err != nil {
		return pkg.Package{}, nil, next, err
	}
	return p, survivors, next, nil
}

func filterSurvivors(survivors []int, queries []query.Query, v version.Version) []int {
	kept := survivors[:0:0]
	for _, qi := range survivors {
		if queries[qi].Constraint.Matches(v) {
			kept = append(kept, qi)
		}
	}
	return kept
}

func skipToBlankOrEOF(lines []string, i int) int {
	for i < len(lines) && lines[i] != "" {
		i++
	}
	if i < len(lines) {
		i++
	}
	return i
}
