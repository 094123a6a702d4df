// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package version reports build information for the dayconv binary.
package version

import (
	"fmt"
	"runtime/debug"
)

var (
	// Set with -ldflags "-X github.com/complex-gh/utilities_go/internal/version.Version=v1.0.0"
	Version = "dev"
	Commit  = "unknown"
)

// GetVersion returns the version string, preferring the compile-time value
func GetVersion() string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
	}
	return "development"
}

// GetCommit returns the VCS revision, preferring the compile-time value
func GetCommit() string {
	if Commit != "unknown" && Commit != "" {
		return Commit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				return setting.Value
			}
		}
	}
	return "unknown"
}

// GetFullVersion returns the version with a short commit hash when known
func GetFullVersion() string {
	v, commit := GetVersion(), GetCommit()
	if commit != "unknown" && len(commit) > 7 {
		return fmt.Sprintf("%s (%s)", v, commit[:7])
	}
	return v
}
