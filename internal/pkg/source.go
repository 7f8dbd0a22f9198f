package pkg

// RepoType is a closed enumeration of the repository formats nbpm
// understands.
type RepoType uint8

const (
	// Nebula is the native TOML-indexed repository format.
	Nebula RepoType = iota
	// Debian is the APT-compatible Packages-index format.
	Debian
)

func (t RepoType) String() string {
	switch t {
	case Nebula:
		return "nebula"
	case Debian:
		return "debian"
	default:
		return "unknown"
	}
}

// PkgSource records which repository produced a Package and, if any,
// the URL of its installable artifact. A nil URL marks the package as a
// metapackage: it exists only to aggregate dependencies and has nothing
// to download.
type PkgSource struct {
	RepoType RepoType
	URL      *string
}

// NewSource builds a PkgSource. Pass an empty url for a metapackage.
func NewSource(repoType RepoType, url string) PkgSource {
	if url == "" {
		return PkgSource{RepoType: repoType}
	}
	u := url
	return PkgSource{RepoType: repoType, URL: &u}
}

// IsMeta reports whether the package this source belongs to is a
// metapackage (no installable artifact).
func (s PkgSource) IsMeta() bool {
	return s.URL == nil
}

// SourceURL returns the artifact URL and whether one is present.
func (s PkgSource) SourceURL() (string, bool) {
	if s.URL == nil {
		return "", false
	}
	return *s.URL, true
}

// Equal reports structural equality between two sources.
func (s PkgSource) Equal(other PkgSource) bool {
	if s.RepoType != other.RepoType {
		return false
	}
	au, aok := s.SourceURL()
	bu, bok := other.SourceURL()
	return aok == bok && au == bu
}
