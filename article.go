package arcreader

import (
	"github.com/mrjoshuak/arcreader/types"
)

// Article represents the readable content extracted from a webpage.
type Article = types.Article

// ExtractionOptions configures the article extraction process.
type ExtractionOptions = types.ExtractionOptions

// DefaultOptions returns the default extraction options.
func DefaultOptions() ExtractionOptions {
	return types.DefaultOptions()
}

// BuildInfo contains version and build information for the library.
type BuildInfo = types.BuildInfo

// GetBuildInfo returns the current version information for the library.
func GetBuildInfo() BuildInfo {
	return types.GetBuildInfo()
}

// Version is the current version of the library.
var Version = types.Version

// Name is the name of the library.
var Name = types.Name
