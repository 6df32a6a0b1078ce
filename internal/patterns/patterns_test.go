package patterns

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUnlikely(t *testing.T) {
	r := Default()
	tests := []struct {
		signature string
		want      bool
	}{
		{"sidebar ", true},
		{"Comment-List ", true},
		{"sidebar main", false},
		{"article-header ", false},
		{"content ", false},
		{" disqus_thread", true},
	}
	for _, tt := range tests {
		t.Run(tt.signature, func(t *testing.T) {
			assert.Equal(t, tt.want, r.IsUnlikely(tt.signature))
		})
	}
}

func TestBuiltinPatterns(t *testing.T) {
	r := Default()
	assert.True(t, r.Positive.MatchString("entry-CONTENT"))
	assert.True(t, r.Negative.MatchString("site-footer"))
	assert.False(t, r.Negative.MatchString("story"))

	assert.True(t, r.IsShareLink("https://twitter.com/share?url=x"))
	assert.True(t, r.IsShareLink("https://www.facebook.com/sharer/sharer.php"))
	assert.False(t, r.IsShareLink("https://twitter.com/someone"))

	assert.True(t, r.IsVideo("http://www.youtube.com/embed/abc"))
	assert.True(t, r.IsVideo("https://player.vimeo.com/video/1"))
	assert.True(t, r.IsVideo("//www.youtube-nocookie.com/embed/x"))
	assert.False(t, r.IsVideo("http://ads.example.com/?ref=youtube.com"))
}

func TestDefaultIsShared(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestCompileKeywords(t *testing.T) {
	t.Run("empty yields nil", func(t *testing.T) {
		assert.Nil(t, CompileKeywords(nil))
		assert.Nil(t, CompileKeywords([]string{"", "  "}))
		assert.False(t, Search(nil, "anything"))
		assert.False(t, MatchPrefix(nil, "anything"))
	})

	t.Run("literal alternation", func(t *testing.T) {
		re := CompileKeywords([]string{"News", "a.b"})
		require.NotNil(t, re)
		assert.True(t, Search(re, "top-news-item"))
		assert.True(t, Search(re, "xa.by"))
		assert.False(t, Search(re, "axb"), "keywords are quoted")
	})

	t.Run("split from a comma list", func(t *testing.T) {
		re := CompileKeywords(SplitKeywords("story, lead"))
		require.NotNil(t, re)
		assert.True(t, Search(re, "main-lead"))
		assert.Nil(t, SplitKeywords(" "))
	})
}

func TestMatchPrefix(t *testing.T) {
	re := regexp.MustCompile(`tag-p|tag-div`)
	assert.True(t, MatchPrefix(re, "tag-div"))
	assert.True(t, MatchPrefix(re, "tag-pre"))
	assert.False(t, MatchPrefix(re, "xtag-div"))
}

func TestWithKeywordsCopies(t *testing.T) {
	pos := CompileKeywords([]string{"lead"})
	r := Default().WithKeywords(pos, nil)

	assert.Same(t, pos, r.PositiveKeywords)
	assert.Nil(t, r.NegativeKeywords)
	assert.Nil(t, Default().PositiveKeywords)
	assert.Same(t, Default().Positive, r.Positive)
}

func TestTagSets(t *testing.T) {
	assert.True(t, BlockLevelElements["blockquote"])
	assert.True(t, BlockLevelElements["img"])
	assert.False(t, BlockLevelElements["span"])
	assert.True(t, UnlikelyTags["fb:comments"])
	assert.True(t, UnlikelyTags["fb:activity"])
}
