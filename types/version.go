package types

import "runtime"

// Version information for the arcreader library.
const (
	Version = "0.1.0"
	Name    = "arcreader"
)

// BuildInfo contains version and build information for the arcreader library.
type BuildInfo struct {
	Version   string
	Name      string
	GoVersion string
}

// GetBuildInfo returns the current version information for the library.
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		Name:      Name,
		GoVersion: runtime.Version(),
	}
}
