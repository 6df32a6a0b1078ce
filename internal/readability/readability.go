package readability

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mrjoshuak/arcreader/internal/cleaners"
	"github.com/mrjoshuak/arcreader/internal/dom"
	"github.com/mrjoshuak/arcreader/internal/encoding"
	"github.com/mrjoshuak/arcreader/internal/extractors"
	"github.com/mrjoshuak/arcreader/internal/patterns"
	"github.com/rs/zerolog"
	"golang.org/x/net/html"
)

// ReadabilityOptions defines configuration options for the Readability parser
type ReadabilityOptions struct {
	MinTextLength    int            // Shortest paragraph text that is scored
	RetryLength      int            // Shortest ruthless result accepted without retry
	URL              string         // Base URL for link absolutization
	PositiveKeywords *regexp.Regexp // Extra positive class/id pattern
	NegativeKeywords *regexp.Regexp // Extra negative class/id pattern
	Logger           zerolog.Logger // Diagnostics sink
}

// defaultReadabilityOptions returns the default options
func defaultReadabilityOptions() ReadabilityOptions {
	return ReadabilityOptions{
		MinTextLength: DefaultMinTextLength,
		RetryLength:   DefaultRetryLength,
		Logger:        zerolog.Nop(),
	}
}

// Readability extracts the main content of one document. Every call
// re-parses the input, so a Readability can be queried repeatedly.
type Readability struct {
	input    []byte
	decoded  bool
	options  ReadabilityOptions
	registry *patterns.Registry
	log      zerolog.Logger

	markup   string
	encoding string
	baseURL  string
}

// NewFromBytes creates a parser for raw bytes whose charset is detected.
func NewFromBytes(input []byte, opts *ReadabilityOptions) *Readability {
	options := defaultReadabilityOptions()
	if opts != nil {
		options = *opts
	}
	if options.MinTextLength <= 0 {
		options.MinTextLength = DefaultMinTextLength
	}
	if options.RetryLength <= 0 {
		options.RetryLength = DefaultRetryLength
	}

	return &Readability{
		input:    input,
		options:  options,
		registry: patterns.Default().WithKeywords(options.PositiveKeywords, options.NegativeKeywords),
		log:      options.Logger,
	}
}

// NewFromHTML creates a parser for markup that is already UTF-8.
func NewFromHTML(markup string, opts *ReadabilityOptions) *Readability {
	r := NewFromBytes([]byte(markup), opts)
	r.decoded = true
	r.markup = markup
	r.encoding = "utf-8"
	return r
}

// Encoding returns the charset the input was decoded with. It is empty
// until the document has been parsed once.
func (r *Readability) Encoding() string {
	return r.encoding
}

// BaseURL returns the URL links are resolved against, if any.
func (r *Readability) BaseURL() string {
	return r.baseURL
}

func (r *Readability) decode() error {
	if r.decoded {
		return nil
	}
	if len(r.input) == 0 {
		return WrapParseError(ErrNoDocument, "decode", "")
	}
	markup, charset, err := encoding.Decode(r.input)
	if err != nil {
		return WrapParseError(err, "decode", "failed to decode "+charset)
	}
	r.markup, r.encoding, r.decoded = markup, charset, true
	return nil
}

// parse builds a fresh, pre-cleaned tree with absolute links.
func (r *Readability) parse() (*html.Node, error) {
	if err := r.decode(); err != nil {
		return nil, err
	}
	root, err := cleaners.Parse(r.markup)
	if err != nil {
		return nil, WrapParseError(err, "parse", "failed to parse HTML document")
	}
	cleaners.PreClean(root)

	href := cleaners.BaseHref(root)
	base := r.options.URL
	switch {
	case base != "" && cleaners.ValidateBase(base) != nil:
		r.log.Debug().Str("url", base).Msg("unusable base URL, links stay relative")
		base = ""
	case base != "" && href != "":
		base = cleaners.ResolveURL(base, href)
	case base == "" && href != "" && cleaners.ValidateBase(href) == nil:
		base = href
	}
	if base != "" {
		cleaners.MakeLinksAbsolute(root, base)
	}
	r.baseURL = base
	return root, nil
}

// Summary returns the cleaned markup of the main content. With fragment set
// the result is a single div; otherwise it is wrapped in html and body.
//
// A ruthless attempt prunes unlikely candidates first. When it finds no
// candidate or its output is shorter than the retry length, a lenient
// attempt runs on a fresh parse. When neither finds a candidate the raw
// body is sanitized and returned.
func (r *Readability) Summary(fragment bool) (out string, err error) {
	defer recoverTreeError("Summary", &err)

	ruthless := true
	for {
		root, err := r.parse()
		if err != nil {
			return "", err
		}
		s := NewSession(root, r.registry, Config{
			MinTextLength: r.options.MinTextLength,
			BaseURL:       r.baseURL,
		}, r.log)

		s.Prepare()
		if ruthless {
			s.RemoveUnlikelyCandidates()
		}
		s.TransformMisusedDivs()
		s.ScoreParagraphs()

		var article *html.Node
		if best := s.SelectBestCandidate(); best != nil {
			article = s.Assemble(best, fragment)
		} else if ruthless {
			r.log.Debug().Msg("ruthless removal did not work, retrying leniently")
			ruthless = false
			continue
		} else {
			r.log.Debug().Msg("ruthless and lenient parsing did not work, returning raw html")
			article = s.Body()
			if article == nil {
				article = dom.FindFirst(root, "html")
			}
		}

		s.Sanitize(article)
		cleaned, err := render(article)
		if err != nil {
			return "", WrapCleanupError(err, "Summary", "failed to render article")
		}

		if ruthless && utf8.RuneCountInString(cleaned) < r.options.RetryLength {
			r.log.Debug().
				Int("length", utf8.RuneCountInString(cleaned)).
				Int("retry_length", r.options.RetryLength).
				Msg("ruthless result too short, retrying leniently")
			ruthless = false
			continue
		}
		return cleaned, nil
	}
}

// Content returns the document body with scripts, styles and links removed
// and presentational attributes cleaned.
func (r *Readability) Content() (out string, err error) {
	defer recoverTreeError("Content", &err)

	root, err := r.parse()
	if err != nil {
		return "", err
	}
	cleaners.StripBodyNoise(root)

	target := dom.FindFirst(root, "body")
	if target == nil {
		target = root
	}
	out, err = render(target)
	if err != nil {
		return "", WrapCleanupError(err, "Content", "failed to render body")
	}
	return out, nil
}

// Title returns the normalized document title, or "[no-title]".
func (r *Readability) Title() (string, error) {
	root, err := r.parse()
	if err != nil {
		return "", err
	}
	return extractors.Title(root), nil
}

// ShortTitle returns the title stripped of site name decoration.
func (r *Readability) ShortTitle() (string, error) {
	root, err := r.parse()
	if err != nil {
		return "", err
	}
	return extractors.ShortTitle(root), nil
}

// render serializes n and strips presentational attributes.
func render(n *html.Node) (string, error) {
	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		return "", err
	}
	return cleaners.CleanAttributes(b.String()), nil
}
