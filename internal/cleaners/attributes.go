package cleaners

import (
	"github.com/microcosm-cc/bluemonday"
)

var outputElements = []string{
	"html", "head", "body", "div", "span", "p", "br", "hr", "a", "img",
	"h1", "h2", "h3", "h4", "h5", "h6", "blockquote", "pre", "code", "q", "cite",
	"em", "strong", "b", "i", "u", "s", "strike", "del", "ins", "sub", "sup",
	"small", "big", "tt", "kbd", "samp", "var", "dfn", "abbr", "acronym", "mark",
	"time", "font", "center", "address", "article", "section", "aside", "main",
	"header", "footer", "nav", "figure", "figcaption", "picture", "source",
	"video", "audio", "track", "iframe", "embed", "object", "param", "canvas",
	"ul", "ol", "li", "dl", "dt", "dd", "table", "caption", "colgroup", "col",
	"thead", "tbody", "tfoot", "tr", "th", "td", "details", "summary", "label",
	"form", "fieldset", "legend", "input", "select", "option", "optgroup",
	"textarea", "button", "map", "area", "wbr", "bdo", "bdi", "ruby", "rt", "rp",
	"meta", "title",
}

var outputAttributes = []string{
	"id", "class", "href", "src", "srcset", "sizes", "alt", "title", "name",
	"lang", "dir", "rel", "target", "colspan", "rowspan", "headers", "scope",
	"abbr", "cite", "datetime", "start", "type", "value", "reversed", "summary",
	"span", "poster", "controls", "label", "for", "action", "method", "align",
	"valign", "border", "cellpadding", "cellspacing", "frameborder",
	"allowfullscreen", "face", "size", "content", "charset", "itemprop",
	"property", "role", "shape", "coords", "usemap", "kind", "srclang",
}

// outputPolicy keeps every element of an article and drops the
// presentational and scripting attributes: width, height, style, anything
// ending in color, anything starting with background, and event handlers.
var outputPolicy = newOutputPolicy()

func newOutputPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(outputElements...)
	p.AllowNoAttrs().OnElements(outputElements...)
	p.AllowAttrs(outputAttributes...).Globally()
	p.AllowDataAttributes()
	p.AllowStandardURLs()
	p.AllowURLSchemes("mailto", "http", "https", "ftp", "tel")
	p.AllowDataURIImages()
	return p
}

// CleanAttributes returns markup with the presentational attributes removed.
func CleanAttributes(markup string) string {
	return outputPolicy.Sanitize(markup)
}
