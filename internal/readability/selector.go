package readability

import (
	"math"
	"regexp"
	"unicode/utf8"

	"github.com/mrjoshuak/arcreader/internal/dom"
	"golang.org/x/net/html"
)

var sentenceEnd = regexp.MustCompile(`\.( |$)`)

// SelectBestCandidate returns the highest scoring candidate, or nil when
// nothing was scored. Equal scores keep encounter order.
func (s *Session) SelectBestCandidate() *Candidate {
	sorted := s.sortedCandidates()
	for i, c := range sorted {
		if i == DefaultNTopCandidates {
			break
		}
		s.log.Debug().
			Int("rank", i+1).
			Float64("score", c.ContentScore).
			Str("node", dom.Describe(c.Node, 1)).
			Msg("top candidate")
	}
	if len(sorted) == 0 {
		return nil
	}
	return sorted[0]
}

// Assemble moves the best candidate and its qualifying siblings into a new
// output tree. With fragment set the result is a bare div; otherwise the div
// is wrapped in html and body elements and the html element is returned.
func (s *Session) Assemble(best *Candidate, fragment bool) *html.Node {
	threshold := math.Max(MinSiblingScore, best.ContentScore*SiblingScoreRatio)

	container := dom.NewElement("div")
	output := container
	if !fragment {
		output = dom.NewElement("html")
		body := dom.NewElement("body")
		output.AppendChild(body)
		body.AppendChild(container)
	}

	bestNode := best.Node
	s.best = bestNode
	if bestNode.Data == "body" {
		dom.Retag(bestNode, "div")
	}

	siblings := []*html.Node{bestNode}
	if bestNode.Parent != nil {
		siblings = dom.Children(bestNode.Parent)
	}

	for _, sibling := range siblings {
		if s.includeSibling(sibling, bestNode, threshold) {
			dom.DropTree(sibling)
			container.AppendChild(sibling)
		}
	}
	return output
}

func (s *Session) includeSibling(sibling, best *html.Node, threshold float64) bool {
	if sibling == best {
		return true
	}
	if c, ok := s.candidates[sibling]; ok && c.ContentScore >= threshold {
		return true
	}
	if sibling.Data != "p" {
		return false
	}

	linkDensity := dom.LinkDensity(sibling)
	content := dom.CleanText(sibling)
	length := utf8.RuneCountInString(content)
	switch {
	case length > SiblingParagraphLength && linkDensity < SiblingMaxLinkDensity:
		return true
	case length <= SiblingParagraphLength && linkDensity == 0 && sentenceEnd.MatchString(content):
		return true
	}
	return false
}
