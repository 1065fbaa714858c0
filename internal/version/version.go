// Package version reports how the dynatint binary was built.
//
// Release builds set the variables below with ldflags, for example:
//
//	go build -ldflags "-X github.com/jmylchreest/dynatint/internal/version.Version=1.2.0 \
//	  -X github.com/jmylchreest/dynatint/internal/version.Commit=$(git rev-parse HEAD) \
//	  -X github.com/jmylchreest/dynatint/internal/version.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Builds without ldflags (go install, go run) fall back to the VCS stamp the
// Go toolchain embeds.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

const unset = "unknown"

// shortCommitLen is how many characters of the commit String prints.
const shortCommitLen = 8

var (
	// Version is the semantic version of the release.
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = unset
	// Date is the build time in RFC3339 format.
	Date = unset
)

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// Info is the build description of the running binary.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	Modified  bool   `json:"modified,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo returns the build description, filling commit and date from the
// embedded VCS stamp when ldflags did not set them.
func GetInfo() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	bi, ok := readBuildInfo()
	if !ok {
		return info
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == unset {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == unset {
				info.Date = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// ShortCommit returns at most the first eight characters of the commit.
func (i Info) ShortCommit() string {
	if len(i.Commit) > shortCommitLen {
		return i.Commit[:shortCommitLen]
	}
	return i.Commit
}

// String returns a human-readable version line.
func String() string {
	info := GetInfo()
	if info.Commit == unset {
		return fmt.Sprintf("dynatint version %s (%s, %s)", info.Version, info.GoVersion, info.Platform)
	}

	commit := info.ShortCommit()
	if info.Modified {
		commit += "-dirty"
	}
	return fmt.Sprintf("dynatint version %s (commit: %s, built: %s, %s, %s)",
		info.Version, commit, info.Date, info.GoVersion, info.Platform)
}

// Short returns the bare version, used by --version.
func Short() string {
	return Version
}
