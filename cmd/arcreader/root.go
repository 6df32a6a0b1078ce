package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mrjoshuak/arcreader/internal/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// runOptions holds the resolved command line settings.
type runOptions struct {
	url           string
	positive      string
	negative      string
	format        string
	output        string
	outputDir     string
	fragment      bool
	compact       bool
	minTextLength int
	retryLength   int
	timeout       time.Duration
	configPath    string
	verbose       bool
	workers       int
}

// NewRootCmd creates the root command for arcreader.
func NewRootCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "arcreader [path|url|-]...",
		Short: "Extract the readable article from HTML pages",
		Long: `arcreader finds the main content of an HTML page and strips navigation,
sidebars, share links, forms and other page chrome from it.

Inputs are file paths, http(s) URLs or "-" for standard input. Without
inputs the page is read from standard input, or fetched from --url when set.
With inputs, --url is the base that relative links are resolved against.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.applyConfig(cmd); err != nil {
				return err
			}
			if err := opts.validate(len(args)); err != nil {
				return err
			}
			return newRunner(opts, cmd, newLogger(cmd, opts.verbose)).run(cmd.Context(), args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.url, "url", "u", "", "URL to fetch, or base URL for links when inputs are given")
	flags.StringVarP(&opts.positive, "positive-keywords", "p", "", "comma separated class/id keywords that mark content")
	flags.StringVarP(&opts.negative, "negative-keywords", "n", "", "comma separated class/id keywords that mark chrome")
	flags.StringVarP(&opts.format, "format", "f", FormatHTML, "output format: html, json, text or markdown")
	flags.StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	flags.StringVar(&opts.outputDir, "output-dir", "", "directory for one output file per input")
	flags.BoolVar(&opts.fragment, "fragment", true, "emit a bare div instead of a full html document")
	flags.BoolVar(&opts.compact, "compact", false, "output compact JSON without indentation")
	flags.IntVar(&opts.minTextLength, "min-text-length", 25, "shortest paragraph text that is scored")
	flags.IntVar(&opts.retryLength, "retry-length", 250, "shortest result accepted before retrying without pruning")
	flags.DurationVar(&opts.timeout, "timeout", 30*time.Second, "timeout for fetching and extracting each input")
	flags.StringVar(&opts.configPath, "config", "", "configuration file (default: ./.arcreader.yaml, then the XDG config dir)")
	flags.IntVar(&opts.workers, "workers", 4, "number of inputs processed at once")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log scoring decisions")

	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// applyConfig fills every flag the user did not set from the config file.
func (o *runOptions) applyConfig(cmd *cobra.Command) error {
	path := config.FindConfigFile(o.configPath)
	if path == "" {
		if o.configPath != "" {
			return fmt.Errorf("config %s: %w", o.configPath, config.ErrConfigNotFound)
		}
		return nil
	}
	cf, err := config.LoadConfigFile(path)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}

	changed := func(name string) bool { return cmd.Flags().Changed(name) }
	if !changed("url") && cf.URL != "" {
		o.url = cf.URL
	}
	if !changed("positive-keywords") && len(cf.PositiveKeywords) > 0 {
		o.positive = joinKeywords(cf.PositiveKeywords)
	}
	if !changed("negative-keywords") && len(cf.NegativeKeywords) > 0 {
		o.negative = joinKeywords(cf.NegativeKeywords)
	}
	if !changed("format") && cf.Format != "" {
		o.format = cf.Format
	}
	if !changed("fragment") && cf.Fragment != nil {
		o.fragment = *cf.Fragment
	}
	if !changed("min-text-length") && cf.MinTextLength > 0 {
		o.minTextLength = cf.MinTextLength
	}
	if !changed("retry-length") && cf.RetryLength > 0 {
		o.retryLength = cf.RetryLength
	}
	if !changed("timeout") && cf.Timeout > 0 {
		o.timeout = cf.Timeout
	}
	if !changed("verbose") && cf.Verbose {
		o.verbose = true
	}
	return nil
}

func (o *runOptions) validate(inputs int) error {
	if !validFormat(o.format) {
		return fmt.Errorf("invalid output format %q: must be one of html, json, text, markdown", o.format)
	}
	if o.output != "" && o.outputDir != "" {
		return fmt.Errorf("--output and --output-dir are mutually exclusive")
	}
	if o.output != "" && inputs > 1 {
		return fmt.Errorf("--output takes a single input, use --output-dir for %d inputs", inputs)
	}
	if o.workers < 1 {
		o.workers = 1
	}
	return nil
}

func joinKeywords(words []string) string {
	return strings.Join(words, ",")
}

func newLogger(cmd *cobra.Command, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.RFC3339}).
		With().Timestamp().Logger().Level(level)
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
