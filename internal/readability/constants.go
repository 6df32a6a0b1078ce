// Package readability implements the content extraction pipeline: candidate
// pruning, structural normalization, scoring, selection and sanitizing.
package readability

// Default settings
const (
	// DefaultMinTextLength is the shortest paragraph text that is scored.
	DefaultMinTextLength = 25

	// DefaultRetryLength is the shortest ruthless result accepted without
	// a lenient retry.
	DefaultRetryLength = 250

	// DefaultNTopCandidates is the number of candidates logged at debug level
	DefaultNTopCandidates = 5
)

// Scoring weights
const (
	ClassWeightStep = 25

	// SiblingScoreRatio scales the best score into the sibling threshold.
	SiblingScoreRatio = 0.2

	// MinSiblingScore is the floor of the sibling threshold.
	MinSiblingScore = 10

	// SiblingParagraphLength separates long from short sibling paragraphs.
	SiblingParagraphLength = 80
)

// Sanitizer thresholds
const (
	MaxHeaderLinkDensity   = 0.33
	MinImageDimension      = 70
	MaxCommasForCleaning   = 10
	ListItemOffset         = 100
	LowWeightLinkDensity   = 0.2
	HighWeightLinkDensity  = 0.5
	SiblingMaxLinkDensity  = 0.25
	VideoPlaceholder       = "VIDEO"
	ReadabilityBodyID      = "readabilityBody"
	conditionalMaxImages   = 2
	conditionalInputsRatio = 3
)

// tagBonus is the intrinsic score of a candidate by tag name.
var tagBonus = map[string]float64{
	"div":        5,
	"pre":        3,
	"td":         3,
	"blockquote": 3,
	"address":    -3,
	"ol":         -3,
	"ul":         -3,
	"dl":         -3,
	"dd":         -3,
	"dt":         -3,
	"li":         -3,
	"form":       -3,
	"h1":         -5,
	"h2":         -5,
	"h3":         -5,
	"h4":         -5,
	"h5":         -5,
	"h6":         -5,
	"th":         -5,
}

// Tag groups walked by the stages, in the order they are visited.
var (
	scoredTags      = []string{"p", "pre", "td"}
	headingTags     = []string{"h1", "h2", "h3", "h4", "h5", "h6", "p"}
	containerTags   = []string{"article", "section", "header"}
	formTags        = []string{"form", "textarea", "input", "button", "select", "aside", "footer"}
	conditionalTags = []string{"table", "ul", "div"}
	countedTags     = []string{"p", "img", "li", "a", "embed", "input"}
)
