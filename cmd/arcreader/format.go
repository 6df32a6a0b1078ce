package main

import (
	"encoding/json"

	"github.com/mrjoshuak/arcreader"
	"github.com/mrjoshuak/arcreader/internal/simplifiers"
)

// Output formats
const (
	FormatHTML     = "html"
	FormatJSON     = "json"
	FormatText     = "text"
	FormatMarkdown = "markdown"
)

func validFormat(format string) bool {
	switch format {
	case FormatHTML, FormatJSON, FormatText, FormatMarkdown:
		return true
	}
	return false
}

func extension(format string) string {
	switch format {
	case FormatJSON:
		return ".json"
	case FormatText:
		return ".txt"
	case FormatMarkdown:
		return ".md"
	}
	return ".html"
}

// formatArticle renders article in format. Markdown links are resolved
// against base when it is set.
func formatArticle(article *arcreader.Article, format, base string, compact bool) ([]byte, error) {
	switch format {
	case FormatJSON:
		if compact {
			return json.Marshal(article)
		}
		return json.MarshalIndent(article, "", "  ")
	case FormatText:
		return []byte(article.TextContent), nil
	case FormatMarkdown:
		md, err := simplifiers.Markdown(article.Content, base)
		if err != nil {
			return nil, err
		}
		return []byte(md), nil
	}
	return []byte(article.Content), nil
}
