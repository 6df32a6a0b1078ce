package cleaners

import (
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func renderNode(t *testing.T, n *html.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, html.Render(&b, n))
	return b.String()
}

func TestParseRejectsEmptyInput(t *testing.T) {
	_, err := Parse("   \n ")
	assert.True(t, errors.Is(err, ErrEmptyDocument))

	root, err := Parse("<p>x</p>")
	require.NoError(t, err)
	assert.Equal(t, html.DocumentNode, root.Type)
}

func TestPreClean(t *testing.T) {
	root, err := Parse(`<html><head><?xml version="1.0"?><link rel="stylesheet" href="a.css"><style>p{}</style>
<meta charset="utf-8"></head><body><!-- note --><script>alert(1)</script>
<p onclick="go()" style="color:red" class="keep">text</p><a href="javascript:void(0)">js</a><a href="/ok">ok</a></body></html>`)
	require.NoError(t, err)

	PreClean(root)
	out := renderNode(t, root)

	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "<style")
	assert.NotContains(t, out, "<link")
	assert.NotContains(t, out, "<!--")
	assert.NotContains(t, out, "onclick")
	assert.NotContains(t, out, "color:red")
	assert.NotContains(t, out, "javascript:")
	assert.Contains(t, out, `<meta charset="utf-8"/>`)
	assert.Contains(t, out, `class="keep"`)
	assert.Contains(t, out, `href="/ok"`)
}

func TestStripBodyNoise(t *testing.T) {
	root, err := Parse(`<body><script>x</script><style>y</style><p>z</p></body>`)
	require.NoError(t, err)
	StripBodyNoise(root)
	doc := goquery.NewDocumentFromNode(root)
	assert.Equal(t, 0, doc.Find("script, style").Length())
	assert.Equal(t, "z", doc.Find("p").Text())
}

func TestResolveURL(t *testing.T) {
	tests := []struct {
		base, ref, want string
	}{
		{"http://example.com", "/a.png", "http://example.com/a.png"},
		{"http://example.com/dir/page.html", "img/b.png", "http://example.com/dir/img/b.png"},
		{"http://example.com/x", "//cdn.example.org/c.png", "http://cdn.example.org/c.png"},
		{"http://example.com/x", "https://other.org/d", "https://other.org/d"},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveURL(tt.base, tt.ref))
		})
	}
}

func TestMakeLinksAbsolute(t *testing.T) {
	root, err := Parse(`<body><a href="/p">p</a><a href="#top">top</a><img src="i.png"></body>`)
	require.NoError(t, err)

	MakeLinksAbsolute(root, "http://example.com/blog/")
	out := renderNode(t, root)
	assert.Contains(t, out, `href="http://example.com/p"`)
	assert.Contains(t, out, `href="#top"`)
	assert.Contains(t, out, `src="http://example.com/blog/i.png"`)
}

func TestBaseHref(t *testing.T) {
	root, err := Parse(`<html><head><base href="http://example.com/root/"></head><body></body></html>`)
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/root/", BaseHref(root))
	assert.Equal(t, "", BaseHref(root), "base element is consumed")

	assert.Error(t, ValidateBase("/relative/"))
	assert.NoError(t, ValidateBase("http://example.com"))
}

func TestCleanAttributes(t *testing.T) {
	in := `<div id="a" class="b" style="margin:0" width="10" height="20" bgcolor="red" background="x.png" onclick="f()">` +
		`<p>text</p><img src="http://example.com/i.png" alt="i" width="300"></div>`
	out := CleanAttributes(in)

	for _, gone := range []string{"style=", "width=", "height=", "bgcolor=", "background=", "onclick="} {
		assert.NotContains(t, out, gone)
	}
	assert.Contains(t, out, `id="a"`)
	assert.Contains(t, out, `class="b"`)
	assert.Contains(t, out, "<p>text</p>")
	assert.Contains(t, out, `src="http://example.com/i.png"`)
}

func TestCleanAttributesKeepsDocumentShell(t *testing.T) {
	out := CleanAttributes(`<html><body id="readabilityBody"><div><p>x</p></div></body></html>`)
	assert.Equal(t, `<html><body id="readabilityBody"><div><p>x</p></div></body></html>`, out)
}
