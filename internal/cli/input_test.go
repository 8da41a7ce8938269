package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/bastiangx/mdserve/pkg/document"
	"github.com/bastiangx/mdserve/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

const sample = `# Intro

See [the docs][docs] and [x](#

$\al$

[docs]: https://example.com/docs
[api]: https://example.com/api
`

func newTestHandler(input string) (*InputHandler, *bytes.Buffer) {
	var out bytes.Buffer
	h := NewInputHandler(suggest.NewEngine(), document.New(sample), 5)
	h.in = strings.NewReader(input)
	h.printer = NewPrinter(&out)
	return h, &out
}

func TestParseQuery(t *testing.T) {
	q, err := ParseQuery("3:7")
	require.NoError(t, err)
	assert.Equal(t, document.Position{Line: 2, Character: 6}, q.Position)
	assert.Empty(t, q.Prefix)

	q, err = ParseQuery(`  5:4 \al `)
	require.NoError(t, err)
	assert.Equal(t, document.Position{Line: 4, Character: 3}, q.Position)
	assert.Equal(t, `\al`, q.Prefix)

	for _, bad := range []string{"", "3", "a:1", "1:b", "0:1", "1:0", "1:1 x y"} {
		_, err := ParseQuery(bad)
		assert.ErrorIs(t, err, ErrBadQuery, bad)
	}
}

func TestNarrowMathUsesCatalog(t *testing.T) {
	h, _ := newTestHandler("")
	req := suggest.Request{Document: h.doc, Position: document.Position{Line: 4, Character: 3}}
	cands, err := h.engine.Complete(context.Background(), req)
	require.NoError(t, err)

	got := h.narrow(suggest.ContextMath, `\alph`, cands)
	require.NotEmpty(t, got)
	for _, c := range got {
		assert.True(t, strings.HasPrefix(c.Label, `\alph`), c.Label)
	}

	got = h.narrow(suggest.ContextMath, `\beg`, cands)
	require.Len(t, got, 1)
	assert.Equal(t, `\begin`, got[0].Label)
}

func TestNarrowLabels(t *testing.T) {
	h, _ := newTestHandler("")
	cands := []suggest.Candidate{{Label: "docs"}, {Label: "api"}, {Label: "Docs"}}

	got := h.narrow(suggest.ContextReference, "do", cands)
	assert.Len(t, got, 2)
	assert.Equal(t, cands, h.narrow(suggest.ContextReference, "", cands))
}

func TestInputLoop(t *testing.T) {
	h, out := newTestHandler("3:18\nnot-a-query\n\n3:31\n")
	require.NoError(t, h.Start(context.Background()))

	text := out.String()
	assert.Contains(t, text, "reference: 2 candidates")
	assert.Contains(t, text, "api")
	assert.Contains(t, text, "anchor: 1 candidates")
	assert.Contains(t, text, "#intro")
}

func TestPrinterLimit(t *testing.T) {
	var out bytes.Buffer
	cands := []suggest.Candidate{{Label: "a"}, {Label: "b"}, {Label: "c"}}

	NewPrinter(&out).Print(suggest.ContextReference, cands, 2)
	assert.Contains(t, out.String(), "3 candidates")
	assert.Contains(t, out.String(), "1 more")
	assert.NotContains(t, out.String(), " c ")
}
