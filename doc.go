/*
Package arcreader extracts the main article content from HTML pages. It scores
the paragraphs of a page, picks the container holding the most text dense
content, pulls in related siblings and strips the navigation, forms, share
links and other chrome that is left.

Basic Usage:

    import "github.com/mrjoshuak/arcreader"

    // Create a new extractor
    ext := arcreader.New()

    // Extract from HTML string
    article, err := ext.ExtractFromHTML(htmlString, nil)
    if err != nil {
        // Handle error
    }

    fmt.Printf("Title: %s\n", article.Title)
    fmt.Printf("Content: %s\n", article.Content)
    fmt.Printf("Text: %s\n", article.TextContent)

Working with a Document:

    doc := arcreader.NewDocument(pageBytes,
        arcreader.WithURL("https://example.com/news/story.html"),
        arcreader.WithPositiveKeywords("story"),
        arcreader.WithNegativeKeywords("promo", "tag-aside"),
    )
    summary, err := doc.Summary(true)

Extraction first prunes nodes whose class or id suggests page chrome. When
that leaves nothing usable, or a result shorter than the retry length, it
runs again without pruning. When no paragraph scores at all the cleaned body
is returned. Failures to decode, parse or rewrite the page are reported as
*Unparseable.
*/
package arcreader
