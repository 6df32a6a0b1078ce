package arcreader

import (
	"context"
	"fmt"
	"os"

	"github.com/mrjoshuak/arcreader/internal/readability"
	"github.com/rs/zerolog"
)

// Document extracts the readable content of one HTML page. Each call
// parses the input again, so the methods can be called in any order and
// more than once. A Document is not safe for concurrent use.
type Document struct {
	options ExtractionOptions
	log     zerolog.Logger
	inner   *readability.Readability
}

// NewDocument creates a Document from raw bytes. The character set is
// taken from the page's meta declaration or guessed from its content.
func NewDocument(input []byte, opts ...Option) *Document {
	return newDocument(applyOptions(opts), input, false)
}

// NewDocumentFromString creates a Document from markup that is already UTF-8.
func NewDocumentFromString(markup string, opts ...Option) *Document {
	return newDocument(applyOptions(opts), []byte(markup), true)
}

func newDocument(options ExtractionOptions, input []byte, isUTF8 bool) *Document {
	d := &Document{options: options, log: newLogger(options)}
	if isUTF8 {
		d.inner = readability.NewFromHTML(string(input), d.internalOptions())
	} else {
		d.inner = readability.NewFromBytes(input, d.internalOptions())
	}
	return d
}

func newLogger(options ExtractionOptions) zerolog.Logger {
	if !options.Debug {
		return options.Logger
	}
	if options.Logger.GetLevel() == zerolog.Disabled {
		return zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	}
	return options.Logger.Level(zerolog.DebugLevel)
}

func (d *Document) internalOptions() *readability.ReadabilityOptions {
	return &readability.ReadabilityOptions{
		MinTextLength:    d.options.MinTextLength,
		RetryLength:      d.options.RetryLength,
		URL:              d.options.URL,
		PositiveKeywords: d.options.PositiveKeywords,
		NegativeKeywords: d.options.NegativeKeywords,
		Logger:           d.log,
	}
}

// Summary returns the cleaned markup of the main content. With fragment
// set the result is a single div, otherwise a complete html document.
// Failures are reported as *Unparseable.
func (d *Document) Summary(fragment bool) (string, error) {
	out, err := d.inner.Summary(fragment)
	if err != nil {
		return "", d.fail("summary", err)
	}
	return out, nil
}

// SummaryContext is Summary bounded by ctx. When ctx ends first the
// context error is returned and the Document must not be reused.
func (d *Document) SummaryContext(ctx context.Context, fragment bool) (string, error) {
	type result struct {
		out string
		err error
	}
	resultCh := make(chan result, 1)

	go func() {
		out, err := d.Summary(fragment)
		resultCh <- result{out, err}
	}()

	select {
	case r := <-resultCh:
		return r.out, r.err
	case <-ctx.Done():
		return "", fmt.Errorf("summary: %w", ctx.Err())
	}
}

// Content returns the whole body with scripts, styles and presentational
// attributes removed.
func (d *Document) Content() (string, error) {
	out, err := d.inner.Content()
	if err != nil {
		return "", d.fail("content", err)
	}
	return out, nil
}

// Title returns the normalized <title> text, or "[no-title]".
func (d *Document) Title() (string, error) {
	title, err := d.inner.Title()
	if err != nil {
		return "", d.fail("title", err)
	}
	return title, nil
}

// ShortTitle returns the title without the site name decoration.
func (d *Document) ShortTitle() (string, error) {
	title, err := d.inner.ShortTitle()
	if err != nil {
		return "", d.fail("short title", err)
	}
	return title, nil
}

// Encoding returns the charset the input was decoded with. It is known
// after the first successful call of any other method.
func (d *Document) Encoding() string {
	return d.inner.Encoding()
}

// BaseURL returns the URL links were resolved against, if any.
func (d *Document) BaseURL() string {
	return d.inner.BaseURL()
}

func (d *Document) fail(op string, err error) error {
	stage := stageOf(err)
	d.log.Error().Err(err).Str("op", op).Str("stage", stage).Msg("extraction failed")
	return &Unparseable{Op: op, Stage: stage, Err: err}
}
