package app

import (
	"fmt"
	"runtime/debug"
)

const unknown = "unknown"

// Version, Commit and BuildTime are set via ldflags:
//
//	go build -ldflags "-X github.com/heartmarshall/boxdrop-backend/internal/app.Version=1.0.0" ./cmd/boxd
//
// Commit and BuildTime left at their defaults are taken from the VCS stamp
// the toolchain embeds in the binary.
var (
	Version   = "dev"
	Commit    = unknown
	BuildTime = unknown
)

// BuildVersion is the version reported by `boxd --version`, the startup
// log and /health.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if info, ok := debug.ReadBuildInfo(); ok {
		commit, built = vcsStamp(info.Settings, commit, built)
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, commit, built)
}

// vcsStamp fills the fields still set to unknown from the vcs.* build
// settings. A commit read from a modified tree gets a -dirty suffix.
func vcsStamp(settings []debug.BuildSetting, commit, built string) (string, string) {
	var revision, modified, at string
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value
		case "vcs.time":
			at = s.Value
		}
	}

	if commit == unknown && revision != "" {
		commit = revision
		if len(commit) > 12 {
			commit = commit[:12]
		}
		if modified == "true" {
			commit += "-dirty"
		}
	}
	if built == unknown && at != "" {
		built = at
	}
	return commit, built
}
