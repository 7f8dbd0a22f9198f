package main

import (
	"os"

	"github.com/nbpm/nbpm/internal/config"
	"github.com/nbpm/nbpm/internal/debian"
	"github.com/nbpm/nbpm/internal/nblog"
	"github.com/nbpm/nbpm/internal/nebuladb"
	"github.com/nbpm/nbpm/internal/repo"
	"github.com/nbpm/nbpm/internal/rosetta"
)

// nbCtx is the shared state every subcommand runs against: the parsed
// configuration, the registered repository adapters (in registration
// order, Nebula before Debian, matching §4.6's fan-out order), an
// optional name-translation table, and the logger pair.
type nbCtx struct {
	Config  *config.Config
	Repos   []repo.Repository
	Nebula  *nebuladb.Repo
	Debian  *debian.Repo
	Rosetta *rosetta.Rosetta
	Log     *nblog.Loggers
}

// newContext loads cfgPath, bootstraps the nbpm home directory, and
// constructs every configured repository adapter, loading whichever
// indexes are already present on disk.
func newContext(cfgPath string, verbose bool) (*nbCtx, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.EnsureDirs(); err != nil {
		return nil, err
	}

	log, err := nblog.New(verbose)
	if err != nil {
		return nil, err
	}

	ctx := &nbCtx{Config: cfg, Log: log}

	nb := nebuladb.New(nebuladb.Config{RepositoryURL: cfg.Repos.Nebula.Repository}, cfg.NebulaRepoDir())
	if err := nb.Initialize(); err != nil {
		return nil, err
	}
	if err := nb.Load(); err != nil {
		log.Out.Debugf("nebula index not loaded yet: %v", err)
	}
	ctx.Nebula = nb
	ctx.Repos = append(ctx.Repos, nb)

	if cfg.Repos.Debian != nil {
		db := debian.New(debian.Config{
			RepositoryURL: cfg.Repos.Debian.Repository,
			Components:    cfg.Repos.Debian.Components,
			Arch:          cfg.Repos.Debian.Arch,
		}, cfg.DebianRepoDir())
		if err := db.Initialize(); err != nil {
			return nil, err
		}
		ctx.Debian = db
		ctx.Repos = append(ctx.Repos, db)
	}

	if _, err := os.Stat(cfg.RosettaPath()); err == nil {
		rt, err := rosetta.Load(cfg.RosettaPath())
		if err != nil {
			return nil, err
		}
		ctx.Rosetta = rt
	}

	return ctx, nil
}
