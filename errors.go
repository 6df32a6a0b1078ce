package arcreader

import (
	"fmt"

	"github.com/mrjoshuak/arcreader/internal/readability"
)

// Stages an Unparseable failure can come from.
const (
	StageParse      = "parse"
	StageExtraction = "extraction"
	StageCleanup    = "cleanup"
)

// Unparseable is returned when a document could not be decoded, parsed or
// rewritten. Err holds the underlying failure.
type Unparseable struct {
	Op string
	// Stage is one of the Stage constants, or "" when unknown.
	Stage string
	Err   error
}

func (e *Unparseable) Error() string {
	return fmt.Sprintf("unparseable document: %s: %v", e.Op, e.Err)
}

func (e *Unparseable) Unwrap() error {
	return e.Err
}

// stageOf classifies err. A parse failure anywhere in the chain wins, since
// it means the input itself was unusable.
func stageOf(err error) string {
	switch {
	case readability.IsParseError(err):
		return StageParse
	case readability.IsCleanupError(err):
		return StageCleanup
	case readability.IsExtractionError(err):
		return StageExtraction
	}
	return ""
}
