// Package arcreader extracts the main article content from HTML pages.
//
// Usage:
//
//	import "github.com/mrjoshuak/arcreader"
//
//	// Create extractor
//	extractor := arcreader.New(arcreader.WithURL("https://example.com/news/"))
//
//	// Extract from HTML
//	article, err := extractor.ExtractFromHTML(htmlString, nil)
//
//	// Use article data
//	fmt.Println(article.Title)
//	fmt.Println(article.Content)
package arcreader

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/mrjoshuak/arcreader/internal/patterns"
	"github.com/mrjoshuak/arcreader/internal/simplifiers"
	"github.com/rs/zerolog"
)

// Extractor defines the interface for article extraction.
// It provides methods to extract article content from HTML strings or io.Readers.
type Extractor interface {
	// ExtractFromHTML extracts article content from an HTML string
	ExtractFromHTML(html string, options *ExtractionOptions) (*Article, error)

	// ExtractFromReader extracts article content from an io.Reader whose
	// character set is detected
	ExtractFromReader(r io.Reader, options *ExtractionOptions) (*Article, error)
}

// Option represents a function that modifies ExtractionOptions.
// This follows the functional options pattern for configuring the extractor.
type Option func(*ExtractionOptions)

func applyOptions(opts []Option) ExtractionOptions {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.MinTextLength <= 0 {
		options.MinTextLength = DefaultOptions().MinTextLength
	}
	if options.RetryLength <= 0 {
		options.RetryLength = DefaultOptions().RetryLength
	}
	return options
}

// WithURL sets the base URL relative links and images are resolved against.
func WithURL(url string) Option {
	return func(o *ExtractionOptions) {
		o.URL = url
	}
}

// WithMinTextLength sets the shortest paragraph text that is scored.
func WithMinTextLength(n int) Option {
	return func(o *ExtractionOptions) {
		o.MinTextLength = n
	}
}

// WithRetryLength sets the shortest result of the ruthless pass that is
// accepted without retrying leniently.
func WithRetryLength(n int) Option {
	return func(o *ExtractionOptions) {
		o.RetryLength = n
	}
}

// WithPositiveKeywords favors nodes whose class or id contains one of the
// words, case-insensitively. A word of the form "tag-<name>" favors every
// element with that tag name.
func WithPositiveKeywords(words ...string) Option {
	return func(o *ExtractionOptions) {
		o.PositiveKeywords = patterns.CompileKeywords(words)
	}
}

// WithNegativeKeywords penalizes nodes whose class or id contains one of
// the words.
func WithNegativeKeywords(words ...string) Option {
	return func(o *ExtractionOptions) {
		o.NegativeKeywords = patterns.CompileKeywords(words)
	}
}

// WithPositivePattern is WithPositiveKeywords for a precompiled pattern.
func WithPositivePattern(re *regexp.Regexp) Option {
	return func(o *ExtractionOptions) {
		o.PositiveKeywords = re
	}
}

// WithNegativePattern is WithNegativeKeywords for a precompiled pattern.
func WithNegativePattern(re *regexp.Regexp) Option {
	return func(o *ExtractionOptions) {
		o.NegativeKeywords = re
	}
}

// WithFragment chooses between a bare div (true) and a full html document.
func WithFragment(fragment bool) Option {
	return func(o *ExtractionOptions) {
		o.Fragment = fragment
	}
}

// WithDebug logs the scoring decisions at debug level. Without a logger
// from WithLogger they go to stderr.
func WithDebug(debug bool) Option {
	return func(o *ExtractionOptions) {
		o.Debug = debug
	}
}

// WithLogger sets the logger diagnostics are written to.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *ExtractionOptions) {
		o.Logger = logger
	}
}

// WithTimeout sets the timeout duration for extraction.
// This prevents extraction from hanging indefinitely on problematic documents.
func WithTimeout(timeout time.Duration) Option {
	return func(o *ExtractionOptions) {
		o.Timeout = timeout
	}
}

// articleExtractor is the concrete implementation of the Extractor interface.
type articleExtractor struct {
	options ExtractionOptions
}

// ExtractFromHTML extracts article content from an HTML string.
// A nil options uses the ones the extractor was created with.
func (e *articleExtractor) ExtractFromHTML(html string, options *ExtractionOptions) (*Article, error) {
	if options == nil {
		options = &e.options
	}
	return e.extract(newDocument(*options, []byte(html), true), *options)
}

// ExtractFromReader reads r to the end and extracts its article content.
// The character set is taken from the page or guessed.
func (e *articleExtractor) ExtractFromReader(r io.Reader, options *ExtractionOptions) (*Article, error) {
	if options == nil {
		options = &e.options
	}

	page, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return e.extract(newDocument(*options, page, false), *options)
}

func (e *articleExtractor) extract(doc *Document, options ExtractionOptions) (*Article, error) {
	ctx := context.Background()
	if options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, options.Timeout)
		defer cancel()
	}

	content, err := doc.SummaryContext(ctx, options.Fragment)
	if err != nil {
		return nil, err
	}
	title, err := doc.Title()
	if err != nil {
		return nil, err
	}
	shortTitle, err := doc.ShortTitle()
	if err != nil {
		return nil, err
	}
	text, err := simplifiers.PlainText(content)
	if err != nil {
		return nil, doc.fail("plain text", err)
	}

	return &Article{
		Title:       title,
		ShortTitle:  shortTitle,
		Content:     content,
		TextContent: text,
		Length:      utf8.RuneCountInString(text),
		WordCount:   simplifiers.CountWords(text),
		Digest:      fmt.Sprintf("%016x", xxhash.Sum64String(content)),
		Encoding:    doc.Encoding(),
	}, nil
}

// New creates a new Extractor instance with the provided options.
//
// Example:
//
//	extractor := arcreader.New(
//	    arcreader.WithURL("https://example.com/"),
//	    arcreader.WithTimeout(time.Second*60),
//	)
func New(opts ...Option) Extractor {
	return &articleExtractor{
		options: applyOptions(opts),
	}
}
