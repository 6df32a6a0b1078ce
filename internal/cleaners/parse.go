// Package cleaners prepares parsed documents for scoring and cleans the
// markup that extraction produces.
package cleaners

import (
	"errors"
	"strings"

	"golang.org/x/net/html"
)

// ErrEmptyDocument is returned when the input holds no markup at all.
var ErrEmptyDocument = errors.New("document is empty")

// Parse builds a document tree from decoded markup.
func Parse(markup string) (*html.Node, error) {
	if strings.TrimSpace(markup) == "" {
		return nil, ErrEmptyDocument
	}
	return html.Parse(strings.NewReader(markup))
}
