package readability

import (
	"strconv"
	"strings"

	"github.com/mrjoshuak/arcreader/internal/cleaners"
	"github.com/mrjoshuak/arcreader/internal/dom"
	"golang.org/x/net/html"
)

// Sanitize removes the low value parts left in an assembled article.
// Each step works on a snapshot and skips nodes an earlier removal already
// detached, so running it twice leaves the tree unchanged.
func (s *Session) Sanitize(article *html.Node) {
	attached := func(n *html.Node) bool {
		return n.Parent != nil && dom.IsAttached(n, article)
	}

	for _, header := range dom.Tags(article, headingTags...) {
		if attached(header) && (s.ClassWeight(header) < 0 || dom.LinkDensity(header) > MaxHeaderLinkDensity) {
			dom.DropNodeAndEmptyParents(header)
		}
	}

	for _, elem := range dom.Tags(article, containerTags...) {
		dom.Retag(elem, "div")
	}

	for _, p := range dom.Tags(article, "p") {
		if !attached(p) {
			continue
		}
		if text := dom.LeadingText(p); text != "" {
			dom.SetLeadingText(p, strings.TrimLeft(text, " \t\n\r\f\v"))
		}
		if dom.IsEmpty(p) {
			dom.DropNodeAndEmptyParents(p)
		}
	}

	for _, a := range dom.Tags(article, "a") {
		if !attached(a) {
			continue
		}
		if (dom.HasAttr(a, "href") && s.patterns.IsShareLink(dom.Attr(a, "href"))) || dom.IsEmpty(a) {
			dom.DropNodeAndEmptyParents(a)
		}
	}

	for _, span := range dom.Tags(article, "span") {
		if attached(span) && dom.IsEmpty(span) {
			dom.DropNodeAndEmptyParents(span)
		}
	}

	for _, elem := range dom.Tags(article, formTags...) {
		if attached(elem) {
			dom.DropNodeAndEmptyParents(elem)
		}
	}

	for _, embed := range dom.Tags(article, "embed") {
		if attached(embed) && !s.isVideo(embed) {
			dom.DropNodeAndEmptyParents(embed)
		}
	}

	for _, iframe := range dom.Tags(article, "iframe") {
		if !attached(iframe) {
			continue
		}
		if !s.isVideo(iframe) {
			dom.DropNodeAndEmptyParents(iframe)
			continue
		}
		if iframe.FirstChild == nil {
			iframe.AppendChild(&html.Node{Type: html.TextNode, Data: VideoPlaceholder})
		}
	}

	for _, img := range dom.Tags(article, "img") {
		if attached(img) {
			s.sanitizeImage(img)
		}
	}

	s.cleanConditionally(article)
}

func (s *Session) isVideo(n *html.Node) bool {
	return dom.HasAttr(n, "src") && s.patterns.IsVideo(dom.Attr(n, "src"))
}

// sanitizeImage drops tiny or sourceless images and absolutizes relative
// sources against the base URL.
func (s *Session) sanitizeImage(img *html.Node) {
	for _, attr := range []string{"width", "height"} {
		if !dom.HasAttr(img, attr) {
			continue
		}
		size, err := strconv.Atoi(strings.TrimSpace(dom.Attr(img, attr)))
		if err == nil && size < MinImageDimension {
			dom.DropNodeAndEmptyParents(img)
			return
		}
	}

	if !dom.HasAttr(img, "src") {
		dom.DropNodeAndEmptyParents(img)
		return
	}
	src := dom.Attr(img, "src")
	if isAbsoluteSource(src) || s.config.BaseURL == "" {
		return
	}
	dom.SetAttr(img, "src", cleaners.ResolveURL(s.config.BaseURL, src))
}

func isAbsoluteSource(src string) bool {
	return strings.HasPrefix(src, "//") || strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// cleanConditionally visits tables, then lists, then divs, each group in
// reverse document order, and drops those that look like link farms, image
// galleries or form chrome. The node the article was built around is kept.
func (s *Session) cleanConditionally(article *html.Node) {
	for _, el := range dom.ReverseTags(article, conditionalTags...) {
		if el == s.best || el.Parent == nil || !dom.IsAttached(el, article) {
			continue
		}

		weight := s.ClassWeight(el)
		score := 0.0
		if c, ok := s.candidates[el]; ok {
			score = c.ContentScore
		}

		if weight+score < 0 {
			s.log.Debug().
				Str("node", dom.Describe(el, 1)).
				Float64("score", score).
				Float64("weight", weight).
				Msg("cleaned negative node")
			dom.DropNodeAndEmptyParents(el)
			continue
		}

		if strings.Count(dom.TextContent(el), ",") >= MaxCommasForCleaning {
			continue
		}
		if reason := s.removalReason(el, weight); reason != "" {
			s.log.Debug().
				Str("node", dom.Describe(el, 1)).
				Float64("weight", weight).
				Str("reason", reason).
				Msg("cleaned conditionally")
			dom.DropNodeAndEmptyParents(el)
		}
	}
}

// removalReason explains why el should go, or returns "" to keep it.
func (s *Session) removalReason(el *html.Node, weight float64) string {
	counts := make(map[string]int, len(countedTags))
	for _, tag := range countedTags {
		counts[tag] = len(dom.Tags(el, tag))
	}
	counts["li"] -= ListItemOffset

	contentLength := dom.TextLength(el)
	linkDensity := dom.LinkDensity(el)
	tag := el.Data

	switch {
	case counts["p"] > 0 && counts["img"] > counts["p"]:
		return "too many images"
	case counts["li"] > counts["p"] && tag != "ul" && tag != "ol":
		return "more <li>s than <p>s"
	case counts["input"] > counts["p"]/conditionalInputsRatio:
		return "less than 3x <p>s than <input>s"
	case contentLength < s.config.MinTextLength && (counts["img"] == 0 || counts["img"] > conditionalMaxImages):
		return "too short content without a single image"
	case weight < ClassWeightStep && linkDensity > LowWeightLinkDensity:
		return "too many links for its weight"
	case weight >= ClassWeightStep && linkDensity > HighWeightLinkDensity:
		return "too many links for its weight"
	}
	return ""
}
