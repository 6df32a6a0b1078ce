// Package types provides the core data structures of the arcreader library.
package types

import (
	"regexp"
	"time"

	"github.com/rs/zerolog"
)

// Article is the readable part of a page along with its titles.
type Article struct {
	Title       string `json:"title"`
	ShortTitle  string `json:"short_title"`
	Content     string `json:"content"`
	TextContent string `json:"text_content"`
	// Length is the number of characters in TextContent.
	Length int `json:"length"`
	// WordCount is the number of whitespace separated words in TextContent.
	WordCount int `json:"word_count"`
	// Digest is the hex encoded xxhash of Content.
	Digest   string `json:"digest"`
	Encoding string `json:"encoding"`
}

// ExtractionOptions configures the article extraction process.
type ExtractionOptions struct {
	URL              string         // Base URL for relative links and images
	MinTextLength    int            // Shortest paragraph text that is scored
	RetryLength      int            // Shortest ruthless result accepted without a lenient retry
	PositiveKeywords *regexp.Regexp // Extra class/id pattern that raises a node's weight
	NegativeKeywords *regexp.Regexp // Extra class/id pattern that lowers a node's weight
	Fragment         bool           // Return a bare div instead of a full document
	Debug            bool           // Log scoring decisions at debug level
	Logger           zerolog.Logger // Diagnostics sink
	Timeout          time.Duration  // Timeout for extraction process; zero disables it
}

// DefaultOptions returns the default extraction options: paragraphs of 25
// characters and more are scored, ruthless results under 250 characters
// are retried, output is a fragment and extraction times out after 30
// seconds.
func DefaultOptions() ExtractionOptions {
	return ExtractionOptions{
		MinTextLength: 25,
		RetryLength:   250,
		Fragment:      true,
		Logger:        zerolog.Nop(),
		Timeout:       time.Second * 30,
	}
}
