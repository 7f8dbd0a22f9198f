package debian

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/nbpm/nbpm/internal/nberr"
)

// PackageFileHash extracts the expected SHA-256 hash of
// "<component>/binary-<arch>/Packages.xz" from an InRelease file's
// SHA256 section (§6.3). Only lines encountered after a "SHA256:"
// heading are considered, so the md5 section's hashes are never
// mistaken for SHA-256 ones.
func PackageFileHash(r io.Reader, component, arch string) (string, error) {
	target := fmt.Sprintf("%s/binary-%s/Packages.xz", component, arch)

	sc := bufio.NewScanner(r)
	inSHA256 := false
	for sc.Scan() {
		line := sc.Text()
		if strings.Contains(line, "SHA256:") {
			inSHA256 = true
			continue
		}
		if inSHA256 && strings.Contains(line, target) {
			fields := strings.Fields(line)
			if len(fields) < 1 {
				return "", nberr.Newf(nberr.Parsing, "malformed SHA256 line %q", line)
			}
			return fields[0], nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return "", nberr.Newf(nberr.Parsing, "hash for %s not found in InRelease", target)
}
