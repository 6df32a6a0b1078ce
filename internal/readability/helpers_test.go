package readability

import (
	"strings"
	"testing"

	"github.com/mrjoshuak/arcreader/internal/dom"
	"github.com/mrjoshuak/arcreader/internal/patterns"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func mustParse(tb testing.TB, markup string) *html.Node {
	tb.Helper()
	root, err := html.Parse(strings.NewReader(markup))
	require.NoError(tb, err)
	return root
}

func newTestSession(tb testing.TB, markup string, reg *patterns.Registry) *Session {
	tb.Helper()
	return NewSession(mustParse(tb, markup), reg, Config{}, zerolog.Nop())
}

func renderHTML(tb testing.TB, n *html.Node) string {
	tb.Helper()
	var b strings.Builder
	require.NoError(tb, html.Render(&b, n))
	return b.String()
}

// prose returns exactly n characters of comma-free text that does not end
// in a sentence terminator.
func prose(n int) string {
	text := strings.Repeat("lorem ipsum dolor sit amet ", n/27+1)[:n]
	if strings.HasSuffix(text, " ") {
		text = text[:n-1] + "x"
	}
	return text
}

// commaProse returns exactly n characters holding the given number of commas.
func commaProse(n, commas int) string {
	text := strings.Repeat("x, ", commas)
	return text + prose(n-len(text))
}

func byAttr(tb testing.TB, root *html.Node, key, val string) *html.Node {
	tb.Helper()
	for _, e := range dom.Elements(root) {
		if dom.Attr(e, key) == val {
			return e
		}
	}
	tb.Fatalf("no element with %s=%q", key, val)
	return nil
}

func replaceProse(markup, text string) string {
	return strings.ReplaceAll(markup, "PROSE", text)
}
