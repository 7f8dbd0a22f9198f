// Package format renders Package values as the fixed-width tables
// nbpm's subcommands print to stdout.
package format

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/nbpm/nbpm/internal/pkg"
)

// SearchResults writes one table per query, in query order, each
// listing the Packages that matched it.
func SearchResults(w io.Writer, queries []string, results [][]pkg.Package) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, q := range queries {
		if _, err := fmt.Fprintf(tw, "QUERY %s\n", q); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(tw, "NAME\tVERSION\tSOURCE"); err != nil {
			return err
		}
		for _, p := range results[i] {
			if err := packageLine(tw, p); err != nil {
				return err
			}
		}
	}
	return tw.Flush()
}

// ResolvePlan writes the install plan Packages in the order given
// (dependencies before dependents), one table.
func ResolvePlan(w io.Writer, plan []pkg.Package) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "NAME\tVERSION\tSOURCE"); err != nil {
		return err
	}
	for _, p := range plan {
		if err := packageLine(tw, p); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func packageLine(tw *tabwriter.Writer, p pkg.Package) error {
	src := "metapackage"
	if u, ok := p.Source().SourceURL(); ok {
		src = u
	}
	_, err := fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Name(), p.Version(), src)
	return err
}
