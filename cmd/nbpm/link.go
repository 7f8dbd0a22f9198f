package main

import (
	"flag"

	"github.com/nbpm/nbpm/internal/linkutil"
	"github.com/nbpm/nbpm/internal/nberr"
)

type linkCommand struct{}

func (c *linkCommand) Name() string { return "link" }
func (c *linkCommand) Args() string { return "<src> <dest>" }
func (c *linkCommand) ShortHelp() string {
	return "Create symlinks from a fakeroot tree to a destination tree"
}
func (c *linkCommand) LongHelp() string {
	return `Link walks src and, for every entry whose corresponding path under
dest does not exist yet, creates a symlink there (a directory is linked
whole), building the fakeroot-to-destination symlink farm an installed
package's files are exposed through.`
}
func (c *linkCommand) Hidden() bool          { return false }
func (c *linkCommand) Register(*flag.FlagSet) {}

func (c *linkCommand) Run(ctx *nbCtx, args []string) error {
	if len(args) != 2 {
		return nberr.Newf(nberr.Parsing, "link takes exactly two arguments: <src> <dest>")
	}
	ctx.Log.Out.Infof("creating links from %s to %s", args[0], args[1])
	if err := linkutil.CreateLinks(args[0], args[1]); err != nil {
		return err
	}
	ctx.Log.Out.Infof("links created successfully")
	return nil
}
