package cleaners

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var urlAttributes = map[string]bool{
	"href":     true,
	"src":      true,
	"action":   true,
	"cite":     true,
	"poster":   true,
	"longdesc": true,
}

// PreClean strips everything that never contributes readable text before
// scoring: comments, processing instructions, script and style elements,
// stylesheet links, inline styles, event handlers and javascript: URLs.
// Meta tags and page structure are left alone.
func PreClean(root *html.Node) {
	doc := goquery.NewDocumentFromNode(root)
	doc.Find("script, style, link").Remove()

	var comments []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.CommentNode:
			comments = append(comments, n)
		case html.ElementNode:
			n.Attr = cleanScriptAttrs(n.Attr)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	for _, c := range comments {
		if c.Parent != nil {
			c.Parent.RemoveChild(c)
		}
	}
}

func cleanScriptAttrs(attrs []html.Attribute) []html.Attribute {
	out := attrs[:0]
	for _, a := range attrs {
		key := strings.ToLower(a.Key)
		switch {
		case strings.HasPrefix(key, "on"), key == "style":
			continue
		case urlAttributes[key] && isJavascriptURL(a.Val):
			continue
		}
		out = append(out, a)
	}
	return out
}

func isJavascriptURL(v string) bool {
	v = strings.ToLower(strings.Join(strings.Fields(v), ""))
	return strings.HasPrefix(v, "javascript:") || strings.HasPrefix(v, "vbscript:")
}

// StripBodyNoise removes the script, link and style elements that a raw
// body dump should not carry.
func StripBodyNoise(root *html.Node) {
	goquery.NewDocumentFromNode(root).Find("script, link, style").Remove()
}
