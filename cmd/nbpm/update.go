package main

import (
	"context"
	"flag"

	"github.com/nbpm/nbpm/internal/fetch"
)

type updateCommand struct{}

func (c *updateCommand) Name() string        { return "update" }
func (c *updateCommand) Args() string        { return "" }
func (c *updateCommand) ShortHelp() string   { return "Refresh every configured repository's local index" }
func (c *updateCommand) LongHelp() string {
	return `Update downloads each configured repository's index fresh: the
Nebula packages.toml file, and for Debian, InRelease plus each
configured component's Packages.xz, verified against its recorded
SHA-256 hash and decompressed in place.`
}
func (c *updateCommand) Hidden() bool          { return false }
func (c *updateCommand) Register(*flag.FlagSet) {}

func (c *updateCommand) Run(ctx *nbCtx, args []string) error {
	f := fetch.NewHTTPFetcher()
	background := context.Background()

	ctx.Log.Out.Infof("updating nebula repository")
	if err := fetch.UpdateNebulaRepo(background, f, ctx.Config.Repos.Nebula.Repository, ctx.Config.NebulaRepoDir()); err != nil {
		return err
	}
	if err := ctx.Nebula.Load(); err != nil {
		return err
	}

	if ctx.Debian != nil {
		ctx.Log.Out.Infof("updating debian repository")
		deb := ctx.Config.Repos.Debian
		if err := fetch.UpdateDebianRepo(background, f, deb.Repository, deb.Components, deb.Arch, ctx.Config.DebianRepoDir()); err != nil {
			return err
		}
	}

	ctx.Log.Out.Infof("update complete")
	return nil
}
