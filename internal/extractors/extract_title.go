package extractors

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/antchfx/htmlquery"
	"github.com/mrjoshuak/arcreader/internal/dom"
	"golang.org/x/net/html"
)

// NoTitle is returned by Title for documents without a usable <title>.
const NoTitle = "[no-title]"

const (
	minShortTitleLength = 15
	maxShortTitleLength = 150
	minDelimitedWords   = 4
)

// titleSelectors list where a page usually repeats its headline.
var titleSelectors = []Selector{
	{Query: "//h1", XPath: true},
	{Query: "//h2", XPath: true},
	{Query: "//h3", XPath: true},
	{Query: "#title"},
	{Query: "#head"},
	{Query: "#heading"},
	{Query: ".pageTitle"},
	{Query: ".news_title"},
	{Query: ".title"},
	{Query: ".head"},
	{Query: ".heading"},
	{Query: ".contentheading"},
	{Query: ".small_header_red"},
}

var titleDelimiters = []string{" | ", " - ", " :: ", " / "}

var titleEntities = strings.NewReplacer(
	"\u2014", "-",
	"\u2013", "-",
	"&mdash;", "-",
	"&ndash;", "-",
	"\u00a0", " ",
	"\u00ab", `"`,
	"\u00bb", `"`,
	"&quot;", `"`,
)

// NormalizeTitle collapses whitespace and maps dashes, non-breaking spaces
// and guillemets to their plain forms.
func NormalizeTitle(title string) string {
	return strings.Join(strings.Fields(titleEntities.Replace(title)), " ")
}

func rawTitle(root *html.Node) string {
	n := htmlquery.FindOne(root, "//title")
	if n == nil {
		return ""
	}
	return dom.LeadingText(n)
}

// Title returns the normalized document title, or NoTitle.
func Title(root *html.Node) string {
	title := NormalizeTitle(rawTitle(root))
	if title == "" {
		return NoTitle
	}
	return title
}

// ShortTitle strips the site name decoration from the document title. It
// prefers a heading that repeats part of the title, then falls back to
// splitting on common delimiters. Results outside 15..150 characters give
// the full title back.
func ShortTitle(root *html.Node) string {
	orig := NormalizeTitle(rawTitle(root))
	if orig == "" {
		return ""
	}

	var candidates []string
	seen := make(map[string]bool)
	add := func(text string) {
		text = NormalizeTitle(text)
		if seen[text] || !isTitleCandidate(text, orig) {
			return
		}
		seen[text] = true
		candidates = append(candidates, text)
	}
	for _, e := range ExtractElements(root, titleSelectors) {
		if e.Text != "" {
			add(e.Text)
		}
		if e.Content != "" {
			add(e.Content)
		}
	}

	title := orig
	if len(candidates) > 0 {
		sort.SliceStable(candidates, func(i, j int) bool {
			return utf8.RuneCountInString(candidates[i]) > utf8.RuneCountInString(candidates[j])
		})
		title = candidates[0]
	} else {
		title = splitTitle(orig)
	}

	if n := utf8.RuneCountInString(title); n <= minShortTitleLength || n >= maxShortTitleLength {
		return orig
	}
	return title
}

func isTitleCandidate(text, orig string) bool {
	if len(strings.Fields(text)) < 2 || utf8.RuneCountInString(text) < minShortTitleLength {
		return false
	}
	return strings.Contains(strings.ReplaceAll(orig, `"`, ""), strings.ReplaceAll(text, `"`, ""))
}

func splitTitle(title string) string {
	for _, delimiter := range titleDelimiters {
		if !strings.Contains(title, delimiter) {
			continue
		}
		parts := strings.Split(title, delimiter)
		if len(strings.Fields(parts[0])) >= minDelimitedWords {
			return parts[0]
		}
		if last := parts[len(parts)-1]; len(strings.Fields(last)) >= minDelimitedWords {
			return last
		}
	}

	if strings.Contains(title, ": ") {
		parts := strings.Split(title, ": ")
		if last := parts[len(parts)-1]; len(strings.Fields(last)) >= minDelimitedWords {
			return last
		}
		return strings.SplitN(title, ": ", 2)[1]
	}
	return title
}
