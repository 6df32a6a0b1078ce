package simplifiers

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Block kinds
const (
	KindParagraph    = "paragraph"
	KindHeading      = "heading"
	KindListItem     = "list-item"
	KindBlockquote   = "blockquote"
	KindPreformatted = "preformatted"
)

// TextBlock is one run of text delimited by block level markup.
type TextBlock struct {
	Text  string
	Kind  string
	Level int
}

var paragraphTags = map[string]bool{
	"p": true, "div": true, "section": true, "article": true, "main": true,
	"header": true, "footer": true, "aside": true, "nav": true, "address": true,
	"table": true, "caption": true, "tr": true, "td": true, "th": true,
	"ul": true, "ol": true, "dl": true, "dt": true, "dd": true,
	"figure": true, "figcaption": true, "form": true, "hr": true, "iframe": true,
}

var skippedTags = map[string]bool{
	"head": true, "script": true, "style": true, "noscript": true, "template": true,
}

// ExtractBlocks splits markup into text blocks in document order. Inline
// content between blocks forms its own paragraph.
func ExtractBlocks(markup string) ([]TextBlock, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}
	w := &blockWriter{}
	for _, n := range doc.Nodes {
		w.walk(n)
	}
	w.flush(KindParagraph, 0)
	return w.blocks, nil
}

type blockWriter struct {
	blocks []TextBlock
	buf    strings.Builder
}

func (w *blockWriter) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		w.buf.WriteString(n.Data)
		return
	case html.ElementNode:
		if skippedTags[n.Data] {
			return
		}
		kind, level := blockKind(n.Data)
		if kind == "" {
			if n.Data == "br" {
				w.buf.WriteByte(' ')
			}
			w.walkChildren(n)
			return
		}
		w.flush(KindParagraph, 0)
		w.walkChildren(n)
		w.flush(kind, level)
	default:
		w.walkChildren(n)
	}
}

func (w *blockWriter) walkChildren(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c)
	}
}

func (w *blockWriter) flush(kind string, level int) {
	text := NormalizeText(w.buf.String())
	w.buf.Reset()
	if text != "" {
		w.blocks = append(w.blocks, TextBlock{Text: text, Kind: kind, Level: level})
	}
}

func blockKind(tag string) (string, int) {
	switch tag {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return KindHeading, int(tag[1] - '0')
	case "li":
		return KindListItem, 0
	case "blockquote":
		return KindBlockquote, 0
	case "pre":
		return KindPreformatted, 0
	}
	if paragraphTags[tag] {
		return KindParagraph, 0
	}
	return "", 0
}

// PlainText renders markup as text with one blank line between blocks.
// List items are prefixed with a dash.
func PlainText(markup string) (string, error) {
	blocks, err := ExtractBlocks(markup)
	if err != nil {
		return "", err
	}
	lines := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b.Kind == KindListItem {
			lines = append(lines, "- "+b.Text)
			continue
		}
		lines = append(lines, b.Text)
	}
	return strings.Join(lines, "\n\n"), nil
}
