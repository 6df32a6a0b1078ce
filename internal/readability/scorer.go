package readability

import (
	"strings"
	"unicode/utf8"

	"github.com/mrjoshuak/arcreader/internal/dom"
	"github.com/mrjoshuak/arcreader/internal/patterns"
	"golang.org/x/net/html"
)

// ClassWeight scores the class and id of n against the built-in positive
// and negative vocabularies and the caller's keyword patterns. Keyword
// patterns are also matched against the synthetic token "tag-<name>". The
// id stamped on the body for traceability does not count.
func (s *Session) ClassWeight(n *html.Node) float64 {
	weight := 0
	id := dom.Attr(n, "id")
	if id == ReadabilityBodyID {
		id = ""
	}
	for _, feature := range []string{dom.Attr(n, "class"), id} {
		if feature == "" {
			continue
		}
		if s.patterns.Negative.MatchString(feature) {
			weight -= ClassWeightStep
		}
		if s.patterns.Positive.MatchString(feature) {
			weight += ClassWeightStep
		}
		if patterns.Search(s.patterns.PositiveKeywords, feature) {
			weight += ClassWeightStep
		}
		if patterns.Search(s.patterns.NegativeKeywords, feature) {
			weight -= ClassWeightStep
		}
	}

	tag := "tag-" + n.Data
	if patterns.MatchPrefix(s.patterns.PositiveKeywords, tag) {
		weight += ClassWeightStep
	}
	if patterns.MatchPrefix(s.patterns.NegativeKeywords, tag) {
		weight -= ClassWeightStep
	}
	return float64(weight)
}

// ScoreNode builds the initial score record of a container.
func (s *Session) ScoreNode(n *html.Node) *Candidate {
	return &Candidate{
		Node:         n,
		ContentScore: s.ClassWeight(n) + tagBonus[strings.ToLower(n.Data)],
	}
}

// ScoreParagraphs credits every long enough p, pre and td to its parent in
// full and to its grandparent at half weight, then scales each candidate
// by one minus its link density.
func (s *Session) ScoreParagraphs() []*Candidate {
	for _, elem := range dom.Tags(s.root, scoredTags...) {
		parent := elem.Parent
		if parent == nil || parent.Type != html.ElementNode {
			continue
		}
		grandParent := parent.Parent
		if grandParent != nil && grandParent.Type != html.ElementNode {
			grandParent = nil
		}

		innerText := dom.CleanText(elem)
		textLen := utf8.RuneCountInString(innerText)
		if textLen < s.config.MinTextLength {
			continue
		}

		if _, ok := s.candidates[parent]; !ok {
			s.addCandidate(s.ScoreNode(parent))
		}
		if grandParent != nil {
			if _, ok := s.candidates[grandParent]; !ok {
				s.addCandidate(s.ScoreNode(grandParent))
			}
		}

		score := 1 + strings.Count(innerText, ",") + 1 + min(textLen/100, 3)
		s.candidates[parent].ContentScore += float64(score)
		if grandParent != nil {
			s.candidates[grandParent].ContentScore += float64(score) / 2
		}
	}

	for _, c := range s.ordered {
		ld := dom.LinkDensity(c.Node)
		s.log.Debug().
			Str("node", dom.Describe(c.Node, 1)).
			Float64("score", c.ContentScore).
			Float64("link_density", ld).
			Float64("scaled", c.ContentScore*(1-ld)).
			Msg("candidate")
		c.ContentScore *= 1 - ld
	}
	return s.ordered
}
