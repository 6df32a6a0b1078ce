// Package dom holds the tree helpers shared by the extraction stages.
// All helpers operate on golang.org/x/net/html nodes in place.
package dom

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var (
	newlineRun = regexp.MustCompile(`\s*\n\s*`)
	spaceRun   = regexp.MustCompile(`\t|[ \t]{2,}`)
)

// Clean normalizes whitespace the way scoring expects it: runs around a
// newline become one newline, tabs and runs of spaces become one space.
func Clean(text string) string {
	text = newlineRun.ReplaceAllString(text, "\n")
	text = spaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// TextContent returns the concatenated text of n and all its descendants.
func TextContent(n *html.Node) string {
	if n == nil {
		return ""
	}
	return goquery.NewDocumentFromNode(n).Text()
}

// CleanText is Clean applied to TextContent.
func CleanText(n *html.Node) string {
	return Clean(TextContent(n))
}

// TextLength counts the characters of the cleaned text of n.
func TextLength(n *html.Node) int {
	return utf8.RuneCountInString(CleanText(n))
}

// LinkDensity is the share of the visible text of n that sits inside
// descendant anchors. It returns 0 for nodes without text.
func LinkDensity(n *html.Node) float64 {
	linkLength := 0
	for _, a := range Tags(n, "a") {
		linkLength += TextLength(a)
	}
	total := TextLength(n)
	if total < 1 {
		total = 1
	}
	return float64(linkLength) / float64(total)
}

// LeadingText returns the text that precedes the first element child of n.
func LeadingText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil && c.Type != html.ElementNode; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

// HasText reports whether n carries non-whitespace leading text.
//
//	<p>hello</p>         -> true
//	<p> </p>             -> false
//	<p><b>x</b></p>      -> false
func HasText(n *html.Node) bool {
	return strings.TrimSpace(LeadingText(n)) != ""
}

// IsEmpty reports whether n has no leading text and no element children.
func IsEmpty(n *html.Node) bool {
	if HasText(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return false
		}
	}
	return true
}

// SetLeadingText replaces the leading text of n with text. An empty text
// only removes the existing leading text nodes.
func SetLeadingText(n *html.Node, text string) {
	for c := n.FirstChild; c != nil && c.Type != html.ElementNode; {
		next := c.NextSibling
		if c.Type == html.TextNode {
			n.RemoveChild(c)
		}
		c = next
	}
	if text == "" {
		return
	}
	t := &html.Node{Type: html.TextNode, Data: text}
	if n.FirstChild != nil {
		n.InsertBefore(t, n.FirstChild)
	} else {
		n.AppendChild(t)
	}
}
