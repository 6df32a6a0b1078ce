// Package patterns holds the compiled regular expressions and tag sets that
// drive candidate pruning, scoring and sanitizing.
package patterns

import (
	"regexp"
	"strings"
	"sync"
)

// Tag sets used by the normalizer and the sanitizer.
var (
	// BlockLevelElements are the tags that force a div to be split into paragraphs.
	BlockLevelElements = tagSet(
		"address", "article", "aside", "audio", "blockquote", "canvas", "dd", "dl",
		"div", "img", "ol", "p", "pre", "section", "table", "ul", "video",
	)

	// UnlikelyTags are embedded social widgets that never hold content.
	UnlikelyTags = tagSet(
		"fb:like", "fb:share-button", "fb:send", "fb:post", "fb:follow",
		"fb:comments", "fb:activity", "fb:recommendations", "fb:recommendations-bar",
		"fb:like-box", "fb:facepile",
	)
)

var unlikelyCandidates = []string{
	"combx", "comment", "comentario", "community", "disqus", "extra", "foot",
	"header", "menu", "remark", "rss", "shoutbox", "sidebar", "sponsor",
	"ad-break", "agegate", "pagination", "pager", "popup", "tweet", "twitter",
	"fb-share-button", "fb-like", "fb-send", "fb-post", "fb-follow", "fb-comments",
	"fb-activity", "fb-recommendations", "fb-like-box", "fb-facepile",
}

// Registry is an immutable bundle of the patterns used for one extraction.
// The built-in patterns are shared; user keyword patterns are per registry.
type Registry struct {
	Unlikely       *regexp.Regexp
	MaybeCandidate *regexp.Regexp
	Positive       *regexp.Regexp
	Negative       *regexp.Regexp
	ShareLinks     *regexp.Regexp
	Videos         *regexp.Regexp

	// PositiveKeywords and NegativeKeywords are nil unless supplied.
	PositiveKeywords *regexp.Regexp
	NegativeKeywords *regexp.Regexp
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the shared registry without user keywords.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = &Registry{
			Unlikely:       regexp.MustCompile(`(?i)` + strings.Join(unlikelyCandidates, "|")),
			MaybeCandidate: regexp.MustCompile(`(?i)and|article|body|column|main|shadow`),
			Positive:       regexp.MustCompile(`(?i)article|body|content|entry|hentry|main|page|pagination|post|text|blog|story`),
			Negative: regexp.MustCompile(`(?i)combx|comment|comentario|com-|related-post|contact|foot|footer|footnote|` +
				`masthead|media|meta|outbrain|promo|related|scroll|shoutbox|sidebar|sponsor|shopping|tags|tool|widget`),
			ShareLinks: regexp.MustCompile(`(?i)twitter\.com/share|pinterest\.com/pin/create|facebook\.com/sharer`),
			Videos:     regexp.MustCompile(`(?i)^(https?:)?//(www\.|player\.)?(youtube|youtube-nocookie|vimeo)\.com`),
		}
	})
	return defaultRegistry
}

// WithKeywords returns a copy of r bound to the given keyword patterns.
// Nil patterns leave the corresponding slot empty.
func (r *Registry) WithKeywords(positive, negative *regexp.Regexp) *Registry {
	cp := *r
	cp.PositiveKeywords = positive
	cp.NegativeKeywords = negative
	return &cp
}

// IsUnlikely reports whether the class/id signature s marks a node as an
// unlikely content container.
func (r *Registry) IsUnlikely(s string) bool {
	return r.Unlikely.MatchString(s) && !r.MaybeCandidate.MatchString(s)
}

// IsVideo reports whether src points at an embeddable video host.
func (r *Registry) IsVideo(src string) bool {
	return r.Videos.MatchString(src)
}

// IsShareLink reports whether href is a social share endpoint.
func (r *Registry) IsShareLink(href string) bool {
	return r.ShareLinks.MatchString(href)
}

func tagSet(tags ...string) map[string]bool {
	set := make(map[string]bool, len(tags))
	for _, t := range tags {
		set[t] = true
	}
	return set
}
