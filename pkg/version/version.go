package version

import (
	"github.com/carlmjohnson/versioninfo"
	"golang.org/x/mod/semver"
)

/* injected */

var release string

/* ** */

type VersionInfoGit struct {
	Commit string `json:"commit"`
	Dirty  bool   `json:"dirty"`
}

type VersionInfo struct {
	Release string         `json:"release"`
	Git     VersionInfoGit `json:"git"`
}

func GetRelease() *VersionInfo {
	return &VersionInfo{
		Release: normalizeRelease(release),
		Git: VersionInfoGit{
			Commit: versioninfo.Revision,
			Dirty:  versioninfo.DirtyBuild,
		},
	}
}

// normalizeRelease canonicalises semver-looking releases ("1.2" -> "v1.2.0")
// and passes anything else through.
func normalizeRelease(r string) string {
	if r == "" {
		return "unknown"
	}
	v := r
	if v[0] != 'v' {
		v = "v" + v
	}
	if semver.IsValid(v) {
		return semver.Canonical(v)
	}
	return r
}
