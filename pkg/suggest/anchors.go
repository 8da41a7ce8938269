package suggest

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/bastiangx/mdserve/pkg/document"
)

// the user already has a closing paren: optional token, optional blanks, ')'
var closingParen = regexp.MustCompile(`^([^) ]+\s*|\s*)\)`)

// anchorRange works out how far an anchor replacement reaches past the
// cursor and whether a closing paren has to be supplied.
func anchorRange(c *cursor) (document.Range, bool) {
	start := strings.LastIndex(c.before, "(") + 1
	r := document.Range{
		Start: document.Position{Line: c.pos.Line, Character: document.ByteToUTF16(c.before, start)},
		End:   c.pos,
	}

	if closingParen.MatchString(c.after) {
		// replace everything up to, not including, the existing paren
		r.End.Character += document.ByteToUTF16(c.after, strings.IndexByte(c.after, ')'))
		return r, false
	}

	// replace the trailing token, if any, and close the link ourselves
	n := strings.IndexFunc(c.after, unicode.IsSpace)
	if n < 0 {
		n = len(c.after)
	}
	r.End.Character += document.ByteToUTF16(c.after, n)
	return r, true
}

// anchorCandidates offers one #slug per heading, in document order.
func (e *Engine) anchorCandidates(c *cursor) []Candidate {
	r, closeParen := anchorRange(c)

	headings := e.outline(c.doc)
	out := make([]Candidate, 0, len(headings))
	for _, h := range headings {
		out = append(out, newAnchorCandidate("#"+e.slug(h.Text), h.Text, closeParen, r))
	}
	return out
}
