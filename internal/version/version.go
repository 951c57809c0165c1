// Package version exposes build-time version information.
// The variables are meant to be overridden by the linker:
//
//	go build -ldflags "-X .../internal/version.Version=1.2.3"
package version

var (
	// Version is the semantic version of the build.
	Version = "1.0.0"
	// Commit is the VCS commit the binary was built from.
	Commit = "none"
	// BuildTime is when the binary was built.
	BuildTime = "unknown"
)

// Short returns the bare version string.
func Short() string {
	return Version
}

// Full returns the version, commit and build time in one line.
func Full() string {
	return "version: " + Version + ", commit: " + Commit + ", built at: " + BuildTime
}
