package version

import (
	_ "embed"
	"fmt"
	"runtime"
	"strings"
)

//go:embed VERSION
var raw string

// Version is the release tag embedded at build time.
var Version = strings.TrimSpace(raw)

// Commit is set through -ldflags "-X github.com/amoylab/phongtro/pkg/version.Commit=..."
var Commit = "unknown"

// Get returns the current version of the application
func Get() string {
	return Version
}

// String formats the version line printed by the version command.
func String(app string) string {
	return fmt.Sprintf("%s %s (commit %s, %s %s/%s)", app, Version, Commit, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
