// Package version holds the partsgen release version.
package version

// Version is the release version. It is overridden at build time with
// -ldflags "-X github.com/librepcb/partsgen/internal/version.Version=...".
var Version = "0.1.0"
