package suggest

import (
	"context"
	"strings"
	"testing"

	"github.com/bastiangx/mdserve/pkg/document"
	"github.com/bastiangx/mdserve/pkg/toc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const headings = "# Intro\n## Getting Started\n"

func TestAnchorParenHandling(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		closeParen bool
		start, end int
	}{
		{"existing paren", "[see](#|)", false, 6, 7},
		{"no paren", "[see](#|", true, 6, 7},
		{"token before paren", "[see](#ge|tting  )", false, 6, 16},
		{"token without paren", "[see](#x|yz more", true, 6, 10},
		{"blank after cursor", "[see](#ge| tail", true, 6, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := at(t, headings+tt.line)

			got, err := NewEngine().Complete(context.Background(), req)
			require.NoError(t, err)
			require.Equal(t, []string{"#intro", "#getting-started"}, labels(got))

			for _, c := range got {
				if tt.closeParen {
					assert.Equal(t, c.Label+")", c.InsertText)
				} else {
					assert.Equal(t, c.Label, c.InsertText)
				}
				require.NotNil(t, c.Range)
				assert.Equal(t, document.Range{
					Start: document.Position{Line: 2, Character: tt.start},
					End:   document.Position{Line: 2, Character: tt.end},
				}, *c.Range)
			}
		})
	}
}

func TestAnchorLinkIsClosed(t *testing.T) {
	for _, line := range []string{"[see](#|)", "[see](#|", "[see](#in|tro) after", "[see](#in|tro after"} {
		req := at(t, headings+line)

		got, err := NewEngine().Complete(context.Background(), req)
		require.NoError(t, err)
		require.NotEmpty(t, got)

		text := req.Document.Lines()[2]
		r := *got[0].Range
		from := document.UTF16ToByte(text, r.Start.Character)
		to := document.UTF16ToByte(text, r.End.Character)
		edited := text[:from] + got[0].InsertText + text[to:]

		assert.True(t, strings.HasPrefix(edited, "[see](#intro)"), "line %q became %q", line, edited)
	}
}

func TestAnchorDocumentation(t *testing.T) {
	got, err := NewEngine().Complete(context.Background(), at(t, headings+"[x](#|"))
	require.NoError(t, err)

	assert.Equal(t, "Getting Started", byLabel(t, got, "#getting-started").Documentation)
	assert.Equal(t, KindReference, got[0].Kind)
}

func TestAnchorNoHeadings(t *testing.T) {
	got, err := NewEngine().Complete(context.Background(), at(t, "text\n[x](#|"))
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAnchorCollaborators(t *testing.T) {
	e := NewEngine(
		WithOutline(func(*document.Document) []toc.Heading {
			return []toc.Heading{{Text: "Zeta", Level: 1}, {Text: "Alpha", Level: 2}}
		}),
		WithSlugger(strings.ToUpper),
	)

	got, err := e.Complete(context.Background(), at(t, "[x](#|"))
	require.NoError(t, err)

	// outline order is kept
	assert.Equal(t, []string{"#ZETA", "#ALPHA"}, labels(got))
}
