// Package version exposes the scrollmenu build version.
//
// The version is set at build time via -ldflags:
//
//	go build -ldflags "-X github.com/rshade/scrollmenu/pkg/version.Version=v1.2.3"
package version

// Version is the build version, overridden at link time.
//
//nolint:gochecknoglobals // Set via -ldflags at build time.
var Version = "dev"

// GetVersion returns the current build version string.
func GetVersion() string {
	return Version
}
