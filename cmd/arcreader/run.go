package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/mrjoshuak/arcreader"
	"github.com/mrjoshuak/arcreader/internal/patterns"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// runner extracts every input and writes the results in input order.
type runner struct {
	opts   *runOptions
	log    zerolog.Logger
	client *http.Client
	stdin  io.Reader
	stdout io.Writer
}

func newRunner(opts *runOptions, cmd *cobra.Command, log zerolog.Logger) *runner {
	return &runner{
		opts:   opts,
		log:    log,
		client: &http.Client{Timeout: opts.timeout},
		stdin:  cmd.InOrStdin(),
		stdout: cmd.OutOrStdout(),
	}
}

func (r *runner) run(ctx context.Context, inputs []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if len(inputs) == 0 {
		inputs = []string{"-"}
		if r.opts.url != "" {
			inputs = []string{r.opts.url}
		}
	}
	if r.opts.outputDir != "" {
		if err := os.MkdirAll(r.opts.outputDir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	results := make([][]byte, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.workers)
	for i, input := range inputs {
		g.Go(func() error {
			out, err := r.process(ctx, input)
			if err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, out := range results {
		if err := r.write(inputs[i], out); err != nil {
			return err
		}
	}
	return nil
}

// process loads and extracts one input and renders it in the output format.
func (r *runner) process(ctx context.Context, input string) ([]byte, error) {
	page, base, err := r.load(ctx, input)
	if err != nil {
		return nil, err
	}

	r.log.Debug().Str("input", input).Int("bytes", len(page)).Str("base", base).Msg("extracting")
	article, err := arcreader.New(r.extractOptions(base)...).ExtractFromReader(bytes.NewReader(page), nil)
	if err != nil {
		return nil, err
	}
	return formatArticle(article, r.opts.format, base, r.opts.compact)
}

func (r *runner) load(ctx context.Context, input string) ([]byte, string, error) {
	switch {
	case input == "-":
		page, err := io.ReadAll(r.stdin)
		return page, r.opts.url, err
	case isURL(input):
		target := normalizeURL(input)
		page, err := fetch(ctx, r.client, target)
		base := target
		if r.opts.url != "" && r.opts.url != input {
			base = r.opts.url
		}
		return page, base, err
	default:
		page, err := os.ReadFile(input) //nolint:gosec // user supplied path
		return page, r.opts.url, err
	}
}

func (r *runner) extractOptions(base string) []arcreader.Option {
	return []arcreader.Option{
		arcreader.WithURL(base),
		arcreader.WithMinTextLength(r.opts.minTextLength),
		arcreader.WithRetryLength(r.opts.retryLength),
		arcreader.WithPositiveKeywords(patterns.SplitKeywords(r.opts.positive)...),
		arcreader.WithNegativeKeywords(patterns.SplitKeywords(r.opts.negative)...),
		arcreader.WithFragment(r.opts.fragment),
		arcreader.WithTimeout(r.opts.timeout),
		arcreader.WithLogger(r.log),
		arcreader.WithDebug(r.opts.verbose),
	}
}

func (r *runner) write(input string, out []byte) error {
	switch {
	case r.opts.outputDir != "":
		path := filepath.Join(r.opts.outputDir, outputName(input, r.opts.format))
		if err := os.WriteFile(path, out, 0o644); err != nil { //nolint:gosec // output is not secret
			return fmt.Errorf("write %s: %w", path, err)
		}
		r.log.Info().Str("input", input).Str("output", path).Msg("processed")
	case r.opts.output != "":
		if err := os.WriteFile(r.opts.output, out, 0o644); err != nil { //nolint:gosec // output is not secret
			return fmt.Errorf("write %s: %w", r.opts.output, err)
		}
	default:
		if _, err := r.stdout.Write(append(out, '\n')); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}

// outputName derives a file name from an input path or URL.
func outputName(input, format string) string {
	name := input
	if isURL(input) {
		name = strings.TrimPrefix(strings.TrimPrefix(normalizeURL(input), "http://"), "https://")
		name = strings.TrimSuffix(name, "/")
	} else {
		name = strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	}
	if input == "-" {
		name = "stdin"
	}
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		}
		return '_'
	}, name)
	return name + extension(format)
}
