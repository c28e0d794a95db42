// Package buildinfo carries the version stamped in by the linker:
//
//	go build -ldflags "-X deskclock/internal/buildinfo.Version=v1.2.0"
package buildinfo

import "fmt"

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for the window title.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Line is the boot banner written to the log.
func Line() string {
	return fmt.Sprintf("deskclock %s (commit %s, built %s)", Short(), Commit, Date)
}
