package readability

import (
	"strings"

	"github.com/mrjoshuak/arcreader/internal/dom"
	"github.com/mrjoshuak/arcreader/internal/patterns"
	"golang.org/x/net/html"
)

// RemoveUnlikelyCandidates drops social widget tags and every element whose
// class and id look like page chrome. The html and body elements are kept.
func (s *Session) RemoveUnlikelyCandidates() {
	for _, elem := range dom.Elements(s.root) {
		if !dom.IsAttached(elem, s.root) {
			continue
		}
		if patterns.UnlikelyTags[elem.Data] {
			s.log.Debug().Str("node", dom.Describe(elem, 1)).Msg("removing unlikely tag")
			dom.DropNodeAndEmptyParents(elem)
			continue
		}
		signature := dom.Attr(elem, "class") + " " + dom.Attr(elem, "id")
		if len(signature) < 2 || elem.Data == "html" || elem.Data == "body" {
			continue
		}
		if s.patterns.IsUnlikely(signature) {
			s.log.Debug().Str("node", dom.Describe(elem, 1)).Msg("removing unlikely candidate")
			dom.DropNodeAndEmptyParents(elem)
		}
	}
}

// TransformMisusedDivs turns divs used as paragraphs into real paragraphs.
// A div without block level descendants is retagged as p. A div mixing
// blocks and inline content is replaced by a new div whose inline runs are
// wrapped into paragraphs, keeping document order; empty wrappers are
// discarded.
func (s *Session) TransformMisusedDivs() {
	for _, div := range dom.Tags(s.root, "div") {
		if div.Parent == nil || !dom.IsAttached(div, s.root) {
			continue
		}
		if dom.IsEmpty(div) {
			dom.DropNodeAndEmptyParents(div)
			continue
		}
		if !dom.ContainsAnyTag(div, patterns.BlockLevelElements) {
			dom.Retag(div, "p")
			continue
		}
		splitDiv(div)
	}
}

// splitDiv replaces div in its parent with a new bare div holding an
// alternating sequence of paragraphs and block elements.
func splitDiv(div *html.Node) {
	type part struct {
		node      *html.Node
		synthetic bool
	}
	var sequence []part
	current := dom.NewElement("p")

	if dom.HasText(div) {
		current.AppendChild(&html.Node{
			Type: html.TextNode,
			Data: strings.TrimSpace(dom.LeadingText(div)),
		})
	}
	dom.SetLeadingText(div, "")

	for _, child := range dom.ChildNodes(div) {
		div.RemoveChild(child)
		if child.Type == html.ElementNode && patterns.BlockLevelElements[child.Data] {
			sequence = append(sequence, part{current, true}, part{child, false})
			current = dom.NewElement("p")
			continue
		}
		current.AppendChild(child)
	}
	sequence = append(sequence, part{current, true})

	replacement := dom.NewElement("div")
	for _, p := range sequence {
		if p.synthetic && dom.IsEmpty(p.node) {
			continue
		}
		replacement.AppendChild(p.node)
	}
	div.Parent.InsertBefore(replacement, div)
	div.Parent.RemoveChild(div)
}
