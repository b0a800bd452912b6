// internal/version/version.go
package version

// Version is the CLI/library release string printed by --version.
// Overridable at link time: -ldflags "-X levdist/internal/version.Version=...".
var Version = "0.4.1"
