package arcreader_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/mrjoshuak/arcreader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeeplyNestedContent(t *testing.T) {
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html><html><head><title>Test</title></head><body>`)
	elements := []string{"article", "section", "div", "div", "div", "main", "div", "div", "div", "div"}
	for _, e := range elements {
		b.WriteString("<" + e + ">")
	}
	b.WriteString("<h3>Deeply Nested Title</h3>")
	b.WriteString("<p>First paragraph with content.</p>")
	b.WriteString("<p>Second paragraph with more content.</p>")
	b.WriteString("<p>Third paragraph to ensure enough content.</p>")
	for i := len(elements) - 1; i >= 0; i-- {
		b.WriteString("</" + elements[i] + ">")
	}
	b.WriteString(`</body></html>`)

	article, err := arcreader.New().ExtractFromHTML(b.String(), nil)
	require.NoError(t, err)
	assert.Contains(t, article.Content, "Deeply Nested Title")
	assert.Contains(t, article.Content, "Third paragraph to ensure enough content.")
}

func TestDeeplyNestedTables(t *testing.T) {
	page := `<!DOCTYPE html>
<html>
<head><title>Nested Table Test</title></head>
<body>
	<article>
		<h2>Article with Nested Table</h2>
		<p>This article contains a table nested deeply in divs.</p>
		<div><div><div><div><div><div><div>
			<table>
				<thead>
					<tr><th>Column 1</th><th>Column 2</th></tr>
				</thead>
				<tbody>
					<tr><td>Data point one</td><td>Data point two</td></tr>
					<tr><td>Data point three</td><td>Data point four</td></tr>
					<tr><td>Data point five</td><td>Data point six</td></tr>
				</tbody>
			</table>
		</div></div></div></div></div></div></div>
		<p>More content after the table to provide context.</p>
	</article>
</body>
</html>`

	article, err := arcreader.New().ExtractFromHTML(page, nil)
	require.NoError(t, err)
	assert.Contains(t, article.Content, "Article with Nested Table")
	assert.Contains(t, article.Content, "Data point six")
	assert.NotContains(t, article.Content, "<article", "containers are rewritten as divs")
}

func TestLinkListIsDropped(t *testing.T) {
	var items strings.Builder
	for i := 1; i <= 50; i++ {
		fmt.Fprintf(&items, `<li><a href="/item/%d">Item number %d</a></li>`, i, i)
	}
	page := `<html><body><p>Short intro.</p><div><ul>` + items.String() + `</ul></div></body></html>`

	article, err := arcreader.New().ExtractFromHTML(page, nil)
	require.NoError(t, err)
	assert.Contains(t, article.Content, "Short intro.")
	assert.NotContains(t, article.Content, "<ul")
	assert.NotContains(t, article.Content, "Item number")
}

func TestPlainListInsideArticle(t *testing.T) {
	intro := strings.Repeat("The committee met again to review the proposal in detail. ", 6)
	tests := []struct {
		name  string
		items int
		kept  bool
	}{
		{name: "fifty items are kept", items: 50, kept: true},
		{name: "items past the offset drop their container", items: 150, kept: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var items strings.Builder
			for i := 0; i < tt.items; i++ {
				fmt.Fprintf(&items, "<li>plain item %d</li>", i)
			}
			page := `<html><body><div><p>` + intro + `</p><p>` + intro + `</p>` +
				`<section><ul>` + items.String() + `</ul></section></div></body></html>`

			article, err := arcreader.New().ExtractFromHTML(page, nil)
			require.NoError(t, err)
			assert.Contains(t, article.Content, "The committee met again")
			if tt.kept {
				assert.Contains(t, article.Content, "plain item 49")
			} else {
				assert.NotContains(t, article.Content, "plain item")
			}
		})
	}
}

func TestMalformedMarkup(t *testing.T) {
	page := `<html><body><div class="story"><p>` + strings.Repeat("Unclosed paragraphs still count as text. ", 8) +
		`<p>` + strings.Repeat("The parser closes them for us, one by one. ", 8) + `</div><span></b>`

	article, err := arcreader.New().ExtractFromHTML(page, nil)
	require.NoError(t, err)
	assert.Contains(t, article.Content, "The parser closes them for us")
	assert.Equal(t, "[no-title]", article.Title)
	assert.Empty(t, article.ShortTitle)
}
