package main

import (
	"github.com/nbpm/nbpm/internal/nberr"
	"github.com/nbpm/nbpm/internal/pkg"
)

// parseRepoType maps a -repo flag value to a pkg.RepoType.
func parseRepoType(s string) (pkg.RepoType, error) {
	switch s {
	case "nebula":
		return pkg.Nebula, nil
	case "debian":
		return pkg.Debian, nil
	default:
		return 0, nberr.Newf(nberr.Parsing, "unknown repository kind %q (want nebula or debian)", s)
	}
}
