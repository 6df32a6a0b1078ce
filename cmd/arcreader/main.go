// Package main provides the command-line interface for arcreader.
//
// arcreader reads HTML pages from files, standard input or URLs and writes
// their main article content as HTML, JSON, plain text or markdown.
//
// Usage:
//
//	arcreader page.html
//	arcreader https://example.com/news/story.html --format markdown
//	arcreader -u https://example.com/news/ saved.html
//	cat page.html | arcreader --format text
//
// See --help for all available options.
package main

// main is the entry point for arcreader.
func main() {
	Execute()
}
