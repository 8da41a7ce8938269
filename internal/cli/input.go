// Package cli handles cmd line input for debugging completions against a
// markdown file.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bastiangx/mdserve/internal/utils"
	"github.com/bastiangx/mdserve/pkg/document"
	"github.com/bastiangx/mdserve/pkg/suggest"
	"github.com/bastiangx/mdserve/pkg/symbols"
	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
)

// ErrBadQuery is returned for input that is not "line:col [prefix]".
var ErrBadQuery = errors.New("expected line:col [prefix]")

// InputHandler reads cursor queries from stdin and prints the candidates the
// engine produces at that position of the loaded document.
type InputHandler struct {
	engine       *suggest.Engine
	doc          *document.Document
	printer      *Printer
	in           io.Reader
	suggestLimit int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(engine *suggest.Engine, doc *document.Document, limit int) *InputHandler {
	return &InputHandler{
		engine:       engine,
		doc:          doc,
		printer:      NewPrinter(os.Stdout),
		in:           os.Stdin,
		suggestLimit: limit,
	}
}

// Query is one parsed line of input.
type Query struct {
	Position document.Position
	Prefix   string
}

// ParseQuery parses "line:col" or "line:col prefix". Line and column are
// 1-based, as editors show them; the column counts UTF-16 units.
func ParseQuery(input string) (Query, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 || len(fields) > 2 {
		return Query{}, ErrBadQuery
	}
	lineStr, colStr, ok := strings.Cut(fields[0], ":")
	if !ok {
		return Query{}, ErrBadQuery
	}
	line, err := strconv.Atoi(lineStr)
	if err != nil || line < 1 {
		return Query{}, errors.Wrapf(ErrBadQuery, "line %q", lineStr)
	}
	col, err := strconv.Atoi(colStr)
	if err != nil || col < 1 {
		return Query{}, errors.Wrapf(ErrBadQuery, "column %q", colStr)
	}

	q := Query{Position: document.Position{Line: line - 1, Character: col - 1}}
	if len(fields) == 2 {
		q.Prefix = fields[1]
	}
	return q, nil
}

// Start begins the interface loop. It returns nil when input ends or ctx is
// cancelled.
func (h *InputHandler) Start(ctx context.Context) error {
	log.Print("mdserve CLI [DBG]")
	log.Printf("document has %d lines", h.doc.LineCount())
	log.Print("type line:col [prefix] and press Enter (Ctrl+C to exit):")

	scanner := bufio.NewScanner(h.in)
	for {
		if ctx.Err() != nil {
			return nil
		}
		log.Print("> ")
		if !scanner.Scan() {
			return errors.Wrap(scanner.Err(), "read query")
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		h.handleInput(ctx, input)
	}
}

func (h *InputHandler) handleInput(ctx context.Context, input string) {
	q, err := ParseQuery(input)
	if err != nil {
		log.Errorf("%v", err)
		return
	}

	req := suggest.Request{Document: h.doc, Position: q.Position}
	kind, err := h.engine.Classify(req)
	if err != nil {
		log.Errorf("Cannot complete at %s: %v", input, err)
		return
	}

	start := time.Now()
	cands, err := h.engine.Complete(ctx, req)
	if err != nil {
		log.Errorf("Completion failed: %v", err)
		return
	}
	cands = h.narrow(kind, q.Prefix, cands)
	log.Debugf("Took [ %v ] at %d:%d", time.Since(start), q.Position.Line+1, q.Position.Character+1)

	if len(cands) == 0 {
		log.Warnf("No candidates at %s (context %s)", input, kind)
		return
	}
	h.printer.Print(kind, cands, h.suggestLimit)
}

// narrow applies the host-side filter. Math uses the catalog trie so the
// filter walks only the matching subtree; other domains match labels.
func (h *InputHandler) narrow(kind suggest.Context, prefix string, cands []suggest.Candidate) []suggest.Candidate {
	if prefix == "" {
		return cands
	}

	if kind == suggest.ContextMath {
		keep := make(map[string]bool)
		for _, e := range h.engine.Catalog().Lookup(prefix) {
			keep[e.Label()] = true
		}
		if strings.HasPrefix("begin", strings.TrimPrefix(prefix, symbols.Trigger)) {
			keep[symbols.Trigger+"begin"] = true
		}
		out := cands[:0]
		for _, c := range cands {
			if keep[c.Label] {
				out = append(out, c)
			}
		}
		return out
	}

	filter := utils.NewPrefixFilter(prefix)
	out := cands[:0]
	for _, c := range cands {
		if filter.ShouldInclude(c.Label) {
			out = append(out, c)
		}
	}
	return out
}
