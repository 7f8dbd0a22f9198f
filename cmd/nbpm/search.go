package main

import (
	"flag"
	"os"

	"github.com/nbpm/nbpm/internal/format"
	"github.com/nbpm/nbpm/internal/pkg"
	"github.com/nbpm/nbpm/internal/query"
	"github.com/nbpm/nbpm/internal/repo"
)

type searchCommand struct {
	repoFlag string
}

func (c *searchCommand) Name() string { return "search" }
func (c *searchCommand) Args() string { return "<query...>" }
func (c *searchCommand) ShortHelp() string {
	return "Search configured repositories for matching packages"
}
func (c *searchCommand) LongHelp() string {
	return `Search every configured repository (or one selected with -repo) for
packages matching each given query. A query is either a bare package
name or NAME<op>VERSION, where op is one of ==, >=, <=, >, <.`
}
func (c *searchCommand) Hidden() bool { return false }

func (c *searchCommand) Register(fs *flag.FlagSet) {
	fs.StringVar(&c.repoFlag, "repo", "", "restrict the search to one repository kind (nebula or debian)")
}

func (c *searchCommand) Run(ctx *nbCtx, args []string) error {
	queries := make([]query.Query, len(args))
	for i, a := range args {
		q, err := query.Parse(a)
		if err != nil {
			return err
		}
		queries[i] = q
	}

	var sel *pkg.RepoType
	if c.repoFlag != "" {
		rt, err := parseRepoType(c.repoFlag)
		if err != nil {
			return err
		}
		sel = &rt
	}

	results, err := repo.SearchAll(queries, ctx.Repos, sel)
	if err != nil {
		return err
	}
	return format.SearchResults(os.Stdout, args, results)
}
