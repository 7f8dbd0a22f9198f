// Package config loads nbpm.toml, the file describing where nbpm
// keeps its state and how its repositories are configured, and derives
// the handful of paths nbpm needs at runtime from it.
package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

// NebulaConfig configures the Nebula repository adapter.
type NebulaConfig struct {
	Repository string `toml:"repository"`
}

// DebianConfig configures the Debian repository adapter. A nil pointer
// in RepoConfigs.Debian means nbpm was not given a Debian mirror and
// that adapter stays unregistered.
type DebianConfig struct {
	Repository string   `toml:"repository"`
	Components []string `toml:"components"`
	Arch       string   `toml:"arch"`
}

// RepoConfigs groups the per-kind repository configuration blocks.
type RepoConfigs struct {
	Nebula NebulaConfig  `toml:"nebula"`
	Debian *DebianConfig `toml:"debian"`
}

// Config is nbpm's top-level configuration file.
type Config struct {
	Arch            string      `toml:"arch"`
	FakerootDir     string      `toml:"fakeroot-dir"`
	DestDir         string      `toml:"destination-dir"`
	NebulaHomeField string      `toml:"nebula-dir"`
	Repos           RepoConfigs `toml:"repositories"`
}

// Load reads and parses an nbpm.toml file from path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	var c Config
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	return &c, nil
}

// NebulaHome is the nbpm home directory: where per-repository state,
// the rosetta table, the package-ignore list and the log file live.
func (c *Config) NebulaHome() string { return c.NebulaHomeField }

// ReposDir is where each repository adapter keeps its local index.
func (c *Config) ReposDir() string { return filepath.Join(c.NebulaHomeField, "repos") }

// PkgIgnorePath is the location of the package-ignore list.
func (c *Config) PkgIgnorePath() string { return filepath.Join(c.NebulaHomeField, "pkgignore") }

// LogFilePath is the location of nbpm's log file.
func (c *Config) LogFilePath() string { return filepath.Join(c.NebulaHomeField, "nebula.log") }

// NebulaRepoDir is the Nebula adapter's state directory.
func (c *Config) NebulaRepoDir() string { return filepath.Join(c.ReposDir(), "nebula") }

// DebianRepoDir is the Debian adapter's state directory.
func (c *Config) DebianRepoDir() string { return filepath.Join(c.ReposDir(), "debian") }

// RosettaPath is the location of the name-translation table.
func (c *Config) RosettaPath() string { return filepath.Join(c.NebulaHomeField, "rosetta.toml") }

// EnsureDirs creates the directories Config's paths point at.
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{c.NebulaHomeField, c.ReposDir(), c.NebulaRepoDir(), c.DebianRepoDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "creating %s", dir)
		}
	}
	return nil
}
