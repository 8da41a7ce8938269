package suggest

import (
	"fmt"

	"github.com/bastiangx/mdserve/pkg/document"
	"github.com/bastiangx/mdserve/pkg/symbols"
)

// Kind tags the completion domain a candidate belongs to.
type Kind int

const (
	KindFunction Kind = iota + 1
	KindSnippet
	KindReference
)

func (k Kind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindSnippet:
		return "snippet"
	case KindReference:
		return "reference"
	default:
		return "unknown"
	}
}

// Candidate is a single proposed completion.
type Candidate struct {
	// Label is the display text: \cmd for math, the bare token otherwise.
	Label string
	// InsertText is literal text, or a snippet template when Snippet is set.
	// Templates use $1, $2 tab stops and ${1|a,b|} choices.
	InsertText string
	Snippet    bool
	Kind       Kind
	// Documentation and Detail are optional.
	Documentation string
	Detail        string
	// SortKey orders candidates and is never displayed.
	SortKey string
	// Range is the span replaced on accept. Nil leaves the host default.
	Range *document.Range
}

func newMathCandidate(e symbols.Entry) Candidate {
	label := e.Label()
	return Candidate{
		Label:      label,
		InsertText: e.Template(),
		Snippet:    e.Arity != symbols.Zero,
		Kind:       KindFunction,
		SortKey:    symbols.SortKey(label),
	}
}

func newEnvironmentCandidate(c *symbols.Catalog) Candidate {
	label := symbols.Trigger + "begin"
	return Candidate{
		Label:      label,
		InsertText: c.EnvironmentTemplate(),
		Snippet:    true,
		Kind:       KindSnippet,
		SortKey:    symbols.SortKey(label),
	}
}

// buildMathCandidates turns the catalog into the list returned for every
// math request: catalog entries in collation order, then the environment
// snippet.
func buildMathCandidates(c *symbols.Catalog) []Candidate {
	entries := c.Entries()
	out := make([]Candidate, 0, len(entries)+1)
	for _, e := range entries {
		out = append(out, newMathCandidate(e))
	}
	return append(out, newEnvironmentCandidate(c))
}

func newReferenceCandidate(label, target string, usages int, r document.Range) Candidate {
	// unused labels first
	rank := "1-"
	if usages == 0 {
		rank = "0-"
	}
	return Candidate{
		Label:         label,
		InsertText:    label,
		Kind:          KindReference,
		Documentation: target,
		Detail:        usageDetail(usages),
		SortKey:       rank + label,
		Range:         &r,
	}
}

func usageDetail(n int) string {
	if n == 1 {
		return "1 usage"
	}
	return fmt.Sprintf("%d usages", n)
}

func newAnchorCandidate(anchor, heading string, closeParen bool, r document.Range) Candidate {
	insert := anchor
	if closeParen {
		insert += ")"
	}
	return Candidate{
		Label:         anchor,
		InsertText:    insert,
		Kind:          KindReference,
		Documentation: heading,
		SortKey:       symbols.SortKey(anchor),
		Range:         &r,
	}
}
