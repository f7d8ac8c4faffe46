package ted

import (
	_ "embed"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?(?:\+([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?$`)

//go:embed VERSION
var embeddedVersion string

// SemVer is a parsed SemVer 2.0.0 version.
type SemVer struct {
	Major, Minor, Patch int
	Pre                 string
	Build               string
}

func (v SemVer) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Pre != "" {
		s += "-" + v.Pre
	}
	if v.Build != "" {
		s += "+" + v.Build
	}
	return s
}

// ParseSemVer parses v (without a leading `v`).
func ParseSemVer(v string) (SemVer, error) {
	m := semverRE.FindStringSubmatch(strings.TrimSpace(v))
	if m == nil {
		return SemVer{}, fmt.Errorf("ted: invalid semver %q", v)
	}
	var out SemVer
	var err error
	if out.Major, err = strconv.Atoi(m[1]); err != nil {
		return SemVer{}, fmt.Errorf("ted: major of %q: %w", v, err)
	}
	if out.Minor, err = strconv.Atoi(m[2]); err != nil {
		return SemVer{}, fmt.Errorf("ted: minor of %q: %w", v, err)
	}
	if out.Patch, err = strconv.Atoi(m[3]); err != nil {
		return SemVer{}, fmt.Errorf("ted: patch of %q: %w", v, err)
	}
	out.Pre = m[4]
	out.Build = m[5]
	return out, nil
}

// Version returns the embedded module version (without `v`).
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag form of Version.
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	_, err := ParseSemVer(v)
	return err == nil
}
