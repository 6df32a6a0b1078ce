package extractors

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"
	"github.com/mrjoshuak/arcreader/internal/dom"
	"golang.org/x/net/html"
)

// Selector is a query that yields title candidates. XPath queries run
// through htmlquery, the others are CSS selectors run through goquery.
type Selector struct {
	Query string
	XPath bool
}

// ExtractedElement is the text found on one matched element.
type ExtractedElement struct {
	// Text is the leading text of the element, before its first child.
	Text string
	// Content is the full text of the element.
	Content string
}

// ExtractElements runs selectors in order and returns the text of every
// matched element in document order per selector.
func ExtractElements(root *html.Node, selectors []Selector) []ExtractedElement {
	var out []ExtractedElement
	for _, sel := range selectors {
		for _, n := range match(root, sel) {
			out = append(out, ExtractedElement{
				Text:    dom.LeadingText(n),
				Content: dom.TextContent(n),
			})
		}
	}
	return out
}

func match(root *html.Node, sel Selector) []*html.Node {
	if sel.XPath {
		nodes, err := htmlquery.QueryAll(root, sel.Query)
		if err != nil {
			return nil
		}
		return nodes
	}
	return goquery.NewDocumentFromNode(root).Find(sel.Query).Nodes
}
