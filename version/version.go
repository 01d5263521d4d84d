// Package version provides the gadk version strings.
package version

import (
	_ "embed"
	"runtime"
	"strings"
)

// You can override buildVersion at compile time by using:
//
//	go run -ldflags "-X github.com/Piclo/gadk/version.buildVersion=abc" . --version
//
// On CI, release binaries are always built with the buildVersion variable set.

//go:embed VERSION
var baseVersion string
var buildVersion string

func Version() string {
	return strings.TrimSpace(baseVersion)
}

func BuildVersion() string {
	if buildVersion == "" {
		return "x"
	}
	return buildVersion
}

func UserAgent() string {
	return "gadk/" + Version() + "." + BuildVersion() + " (" + runtime.GOOS + "; " + runtime.GOARCH + ")"
}
