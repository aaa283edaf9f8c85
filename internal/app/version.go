package app

import "runtime/debug"

// Stamped at release time:
//
//	go build -ldflags "-X github.com/grouponesailor/group6-tips-server/internal/app.version=1.4.0 \
//	    -X github.com/grouponesailor/group6-tips-server/internal/app.commit=$(git rev-parse HEAD)" ./cmd/server
var (
	version = "dev"
	commit  = ""
)

// BuildInfo identifies the running binary in startup logs and /health.
type BuildInfo struct {
	Version  string
	Commit   string
	Modified bool
}

// ReadBuildInfo returns the stamped version. Without a stamped commit it
// falls back to the VCS revision the Go toolchain embeds.
func ReadBuildInfo() BuildInfo {
	info := BuildInfo{Version: version, Commit: commit}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// String renders the version as "1.4.0+3f2a9c1d0b7e", with a "-dirty"
// suffix for builds from a modified tree.
func (b BuildInfo) String() string {
	if b.Commit == "" {
		return b.Version
	}
	rev := b.Commit
	if len(rev) > 12 {
		rev = rev[:12]
	}
	if b.Modified {
		rev += "-dirty"
	}
	return b.Version + "+" + rev
}
