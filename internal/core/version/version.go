// Package version reports the build of the running binary
package version

import (
	"runtime"
	"runtime/debug"
)

// BuildInfo holds version information about the service build
type BuildInfo struct {
	Service   string `json:"service" example:"layoffs-api"`
	Version   string `json:"version" example:"v0.3.0"`
	Commit    string `json:"commit" example:"4f1c2ab"`
	Date      string `json:"date" example:"2026-03-01T10:00:00Z"`
	GoVersion string `json:"go_version" example:"go1.25.0"`
	Dirty     bool   `json:"dirty,omitempty"`
}

// Set with
//
//	-ldflags "-X layoffs/internal/core/version.version=v0.3.0 -X layoffs/internal/core/version.commit=4f1c2ab"
var (
	service = "layoffs-api"
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// readBuildInfo is swapped in tests
var readBuildInfo = debug.ReadBuildInfo

// Info returns the linker stamped values, filling commit and date from the
// vcs stamp of the go toolchain when they were not set
func Info() BuildInfo {
	bi := BuildInfo{
		Service:   service,
		Version:   version,
		Commit:    commit,
		Date:      date,
		GoVersion: runtime.Version(),
	}
	info, ok := readBuildInfo()
	if !ok {
		return bi
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if bi.Commit == "none" && s.Value != "" {
				bi.Commit = s.Value
				if len(bi.Commit) > 12 {
					bi.Commit = bi.Commit[:12]
				}
			}
		case "vcs.time":
			if bi.Date == "unknown" && s.Value != "" {
				bi.Date = s.Value
			}
		case "vcs.modified":
			bi.Dirty = s.Value == "true"
		}
	}
	if bi.Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		bi.Version = info.Main.Version
	}
	return bi
}
