package cli

import (
	"fmt"
	"io"

	"github.com/bastiangx/mdserve/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
)

// Printer renders candidates for a terminal.
type Printer struct {
	out    io.Writer
	label  lipgloss.Style
	detail lipgloss.Style
	header lipgloss.Style
}

// NewPrinter creates a printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{
		out: out,
		label: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"}),
		detail: lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#797593", Dark: "#908caa"}),
		header: lipgloss.NewStyle().Bold(true),
	}
}

// Print writes up to limit candidates, one per line. A limit below one
// prints everything.
func (p *Printer) Print(kind suggest.Context, cands []suggest.Candidate, limit int) {
	shown := cands
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}

	fmt.Fprintln(p.out, p.header.Render(fmt.Sprintf("%s: %d candidates", kind, len(cands))))
	for i, c := range shown {
		info := c.Detail
		if c.Documentation != "" {
			if info != "" {
				info += ", "
			}
			info += c.Documentation
		}
		if c.Range != nil {
			info += fmt.Sprintf(" [%d:%d-%d:%d]",
				c.Range.Start.Line+1, c.Range.Start.Character+1,
				c.Range.End.Line+1, c.Range.End.Character+1)
		}
		fmt.Fprintf(p.out, "%3d. %s %s\n", i+1, p.label.Render(fmt.Sprintf("%-28s", c.Label)), p.detail.Render(info))
	}
	if len(shown) < len(cands) {
		fmt.Fprintln(p.out, p.detail.Render(fmt.Sprintf("... %d more", len(cands)-len(shown))))
	}
}
