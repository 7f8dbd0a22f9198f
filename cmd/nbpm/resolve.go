package main

import (
	"flag"
	"os"

	"github.com/nbpm/nbpm/internal/format"
	"github.com/nbpm/nbpm/internal/nberr"
	"github.com/nbpm/nbpm/internal/pkg"
	"github.com/nbpm/nbpm/internal/query"
	"github.com/nbpm/nbpm/internal/repo"
	"github.com/nbpm/nbpm/internal/resolver"
)

type resolveCommand struct {
	dotPath string
}

func (c *resolveCommand) Name() string { return "resolve" }
func (c *resolveCommand) Args() string { return "<name>[<op><version>]" }
func (c *resolveCommand) ShortHelp() string {
	return "Resolve a package's full dependency install plan"
}
func (c *resolveCommand) LongHelp() string {
	return `Resolve finds a package matching the given query and computes its
full install plan: every dependency the target needs, ordered so a
dependency always appears before the package(s) that need it.`
}
func (c *resolveCommand) Hidden() bool { return false }

func (c *resolveCommand) Register(fs *flag.FlagSet) {
	fs.StringVar(&c.dotPath, "dot", "", "write the resolved dependency graph as Graphviz DOT to this path")
}

func (c *resolveCommand) Run(ctx *nbCtx, args []string) error {
	if len(args) != 1 {
		return nberr.Newf(nberr.Parsing, "resolve takes exactly one query, got %d", len(args))
	}

	target, err := findTarget(ctx, args[0])
	if err != nil {
		return err
	}

	plan, err := resolver.Resolve(target, ctx.Repos)
	if err != nil {
		return err
	}

	if c.dotPath != "" {
		g, err := resolver.ResolveGraph(target, ctx.Repos)
		if err != nil {
			return err
		}
		f, err := os.Create(c.dotPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := resolver.WriteDOT(f, g); err != nil {
			return err
		}
	}

	return format.ResolvePlan(os.Stdout, plan)
}

// findTarget locates the package a query names. If the direct query
// yields nothing and a name translation table is loaded, it retries
// with each of the query's Debian-side aliases, then Nebula-side
// aliases, before giving up.
func findTarget(ctx *nbCtx, text string) (pkg.Package, error) {
	q, err := query.Parse(text)
	if err != nil {
		return pkg.Package{}, err
	}

	if p, ok, err := searchFirst(ctx.Repos, q, nil); err != nil || ok {
		return p, err
	}

	if ctx.Rosetta != nil {
		for _, to := range []pkg.RepoType{pkg.Debian, pkg.Nebula} {
			aliases, ok := ctx.Rosetta.NameResolve(q.Name, pkg.Nebula, to)
			if !ok {
				aliases, ok = ctx.Rosetta.NameResolve(q.Name, pkg.Debian, to)
			}
			if !ok {
				continue
			}
			for _, alias := range aliases {
				aq := query.Query{Name: alias, Constraint: q.Constraint}
				if p, ok, err := searchFirst(ctx.Repos, aq, nil); err != nil || ok {
					return p, err
				}
			}
		}
	}

	return pkg.Package{}, nberr.Newf(nberr.PackageNotFound, "%s", text)
}

func searchFirst(repos []repo.Repository, q query.Query, sel *pkg.RepoType) (pkg.Package, bool, error) {
	results, err := repo.SearchAll([]query.Query{q}, repos, sel)
	if err != nil {
		return pkg.Package{}, false, err
	}
	if len(results[0]) == 0 {
		return pkg.Package{}, false, nil
	}
	return results[0][0], true, nil
}
