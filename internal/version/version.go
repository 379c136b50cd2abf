// Package version holds build-time identifiers stamped into CLI banners.
package version

var (
	// VERSION is overridden at build time via -ldflags.
	VERSION = "dev"
	// COMMIT is overridden at build time via -ldflags.
	COMMIT = "none"
)
