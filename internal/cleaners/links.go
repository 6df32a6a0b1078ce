package cleaners

import (
	"strings"

	"github.com/antchfx/htmlquery"
	whatwgUrl "github.com/nlnwa/whatwg-url/url"
	"golang.org/x/net/html"
)

var urlParser = whatwgUrl.NewParser(whatwgUrl.WithPercentEncodeSinglePercentSign())

// ValidateBase reports whether base parses as an absolute URL.
func ValidateBase(base string) error {
	_, err := urlParser.Parse(base)
	return err
}

// ResolveURL resolves ref against base. An unresolvable ref is returned as is.
func ResolveURL(base, ref string) string {
	u, err := urlParser.ParseRef(base, ref)
	if err != nil {
		return ref
	}
	return u.Href(false)
}

// BaseHref returns the href of the document's <base> element and removes
// the element, so links are only ever resolved once.
func BaseHref(root *html.Node) string {
	e := htmlquery.FindOne(root, "//base[@href]")
	if e == nil {
		return ""
	}
	href := strings.TrimSpace(htmlquery.SelectAttr(e, "href"))
	if e.Parent != nil {
		e.Parent.RemoveChild(e)
	}
	return href
}

// MakeLinksAbsolute rewrites every URL-valued attribute below root against
// base. Fragment-only and script links are left untouched.
func MakeLinksAbsolute(root *html.Node, base string) {
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for i, a := range n.Attr {
				if !urlAttributes[a.Key] {
					continue
				}
				v := strings.TrimSpace(a.Val)
				if v == "" || strings.HasPrefix(v, "#") {
					continue
				}
				n.Attr[i].Val = ResolveURL(base, v)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
}
