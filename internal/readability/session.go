package readability

import (
	"sort"

	"github.com/mrjoshuak/arcreader/internal/dom"
	"github.com/mrjoshuak/arcreader/internal/patterns"
	"github.com/rs/zerolog"
	"golang.org/x/net/html"
)

// Config holds the per-extraction settings the stages need.
type Config struct {
	MinTextLength int
	// BaseURL is empty when links cannot be absolutized.
	BaseURL string
}

// Candidate is the running score of a container node.
type Candidate struct {
	Node         *html.Node
	ContentScore float64
}

// Session is the working state of one extraction attempt. It owns the
// document tree and the candidate map keyed by node identity.
type Session struct {
	root       *html.Node
	patterns   *patterns.Registry
	config     Config
	log        zerolog.Logger
	candidates map[*html.Node]*Candidate
	ordered    []*Candidate
	// best is the node Assemble built the article around.
	best *html.Node
}

// NewSession starts an attempt over a freshly parsed tree.
func NewSession(root *html.Node, reg *patterns.Registry, cfg Config, log zerolog.Logger) *Session {
	if reg == nil {
		reg = patterns.Default()
	}
	if cfg.MinTextLength <= 0 {
		cfg.MinTextLength = DefaultMinTextLength
	}
	return &Session{
		root:       root,
		patterns:   reg,
		config:     cfg,
		log:        log,
		candidates: make(map[*html.Node]*Candidate),
	}
}

// Root returns the document tree the session works on.
func (s *Session) Root() *html.Node {
	return s.root
}

// Candidate returns the score record of n, if n was scored.
func (s *Session) Candidate(n *html.Node) (*Candidate, bool) {
	c, ok := s.candidates[n]
	return c, ok
}

// Candidates returns the score records in encounter order.
func (s *Session) Candidates() []*Candidate {
	return s.ordered
}

func (s *Session) addCandidate(c *Candidate) {
	s.candidates[c.Node] = c
	s.ordered = append(s.ordered, c)
}

// Body returns the body element, or nil when the tree has none.
func (s *Session) Body() *html.Node {
	return dom.FindFirst(s.root, "body")
}

// Prepare removes script and style elements and tags the body so the
// output can be traced back to it.
func (s *Session) Prepare() {
	for _, n := range dom.Tags(s.root, "script", "style") {
		dom.DropTree(n)
	}
	for _, body := range dom.Tags(s.root, "body") {
		dom.SetAttr(body, "id", ReadabilityBodyID)
	}
}

// sortedCandidates returns the candidates by descending score, keeping
// encounter order among equal scores.
func (s *Session) sortedCandidates() []*Candidate {
	sorted := make([]*Candidate, len(s.ordered))
	copy(sorted, s.ordered)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ContentScore > sorted[j].ContentScore
	})
	return sorted
}
