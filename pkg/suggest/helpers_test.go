package suggest

import (
	"strings"
	"testing"

	"github.com/bastiangx/mdserve/pkg/document"
	"github.com/stretchr/testify/require"
)

// at builds a request from text with a single '|' marking the cursor.
func at(t *testing.T, text string) Request {
	t.Helper()
	i := strings.Index(text, "|")
	require.GreaterOrEqual(t, i, 0, "no cursor marker in %q", text)

	doc := document.New(text[:i] + text[i+1:])
	return Request{Document: doc, Position: doc.PositionAt(i)}
}

func labels(cands []Candidate) []string {
	out := make([]string, 0, len(cands))
	for _, c := range cands {
		out = append(out, c.Label)
	}
	return out
}

func byLabel(t *testing.T, cands []Candidate, label string) Candidate {
	t.Helper()
	for _, c := range cands {
		if c.Label == label {
			return c
		}
	}
	require.Failf(t, "missing candidate", "label %q not in %v", label, labels(cands))
	return Candidate{}
}
