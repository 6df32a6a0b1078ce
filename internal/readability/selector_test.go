package readability

import (
	"testing"

	"github.com/mrjoshuak/arcreader/internal/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectBestCandidate(t *testing.T) {
	t.Run("empty candidate set", func(t *testing.T) {
		s := newTestSession(t, `<p>tiny</p>`, nil)
		s.ScoreParagraphs()
		assert.Nil(t, s.SelectBestCandidate())
	})

	t.Run("ties keep encounter order", func(t *testing.T) {
		text := prose(100)
		s := newTestSession(t, `<body><div data-k="a"><p>`+text+`</p></div><div data-k="b"><p>`+text+`</p></div></body>`, nil)
		s.ScoreParagraphs()
		best := s.SelectBestCandidate()
		require.NotNil(t, best)
		assert.Equal(t, "a", dom.Attr(best.Node, "data-k"))
	})

	t.Run("highest score wins", func(t *testing.T) {
		s := newTestSession(t, `<body><div data-k="a"><p>`+prose(100)+`</p></div><div data-k="b"><p>`+
			prose(100)+`</p><p>`+prose(100)+`</p></div></body>`, nil)
		s.ScoreParagraphs()
		assert.Equal(t, "b", dom.Attr(s.SelectBestCandidate().Node, "data-k"))
	})
}

func TestAssembleSiblings(t *testing.T) {
	main := ""
	for i := 0; i < 3; i++ {
		main += "<p>" + commaProse(300, 9) + "</p>"
	}
	markup := `<html><body>` +
		`<div data-k="main">` + main + `</div>` +
		`<p data-k="long">` + prose(100) + `</p>` +
		`<p data-k="period">This sentence ends with a period.</p>` +
		`<p data-k="noperiod">This short sentence has no end</p>` +
		`<p data-k="linky"><a href="/x">` + prose(100) + `</a></p>` +
		`<div data-k="weak"><p>` + prose(250) + `</p></div>` +
		`<div data-k="strong"><p>` + prose(300) + `</p><p>` + prose(300) + `</p></div>` +
		`<ul data-k="list"><li>item</li></ul>` +
		`</body></html>`

	s := newTestSession(t, markup, nil)
	s.ScoreParagraphs()
	best := s.SelectBestCandidate()
	require.NotNil(t, best)
	require.Equal(t, "main", dom.Attr(best.Node, "data-k"))

	out := s.Assemble(best, true)
	require.Equal(t, "div", out.Data)
	assert.Nil(t, out.Parent)

	var got []string
	for _, c := range dom.Children(out) {
		got = append(got, dom.Attr(c, "data-k"))
	}
	assert.Equal(t, []string{"main", "long", "period", "strong"}, got)

	body := dom.FindFirst(s.Root(), "body")
	assert.NotNil(t, byAttr(t, body, "data-k", "weak"), "excluded siblings stay behind")
}

func TestAssembleDocumentShell(t *testing.T) {
	s := newTestSession(t, `<html><body><div data-k="main"><p>`+prose(200)+`</p></div></body></html>`, nil)
	s.ScoreParagraphs()
	best := s.SelectBestCandidate()
	require.NotNil(t, best)

	out := s.Assemble(best, false)
	require.Equal(t, "html", out.Data)
	body := dom.FindFirst(out, "body")
	require.NotNil(t, body)
	container := dom.Children(body)[0]
	assert.Equal(t, "div", container.Data)
	assert.Equal(t, "main", dom.Attr(dom.Children(container)[0], "data-k"))
}

func TestAssembleRetagsBody(t *testing.T) {
	markup := `<html><body>` +
		`<p>` + prose(300) + `</p><p>` + prose(300) + `</p><p>` + prose(300) + `</p>` +
		`</body></html>`
	s := newTestSession(t, markup, nil)
	s.ScoreParagraphs()
	best := s.SelectBestCandidate()
	require.NotNil(t, best)
	require.Equal(t, "body", best.Node.Data)

	out := s.Assemble(best, true)
	children := dom.Children(out)
	require.Len(t, children, 1)
	assert.Equal(t, "div", children[0].Data)
	assert.Len(t, dom.Tags(children[0], "p"), 3)
}
