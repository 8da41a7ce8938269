package suggest

import (
	"regexp"
	"strings"

	"github.com/bastiangx/mdserve/pkg/document"
	"github.com/charmbracelet/log"
)

// Context is the completion domain that applies at the cursor.
type Context int

const (
	ContextNone Context = iota
	ContextMath
	ContextReference
	ContextAnchor
)

func (c Context) String() string {
	switch c {
	case ContextMath:
		return "math"
	case ContextReference:
		return "reference"
	case ContextAnchor:
		return "anchor"
	default:
		return "none"
	}
}

var (
	// a command token is being typed: a backslash with no $ after it
	mathTrigger = regexp.MustCompile(`\\[^$]*$`)
	// an unescaped, non-doubled $ opens the span and is followed either by the
	// command itself or by a non-space character
	inlineMathOpen = regexp.MustCompile(`(^|[^$\\])\$(|[^ $].*)\\\w*$`)
	// [text][label... with the second bracket still open
	referenceOpen = regexp.MustCompile(`\[[^\]]*?\]\[[^\]]*$`)
	// [text](#anchor... with no closing paren yet
	anchorOpen = regexp.MustCompile(`\[[^\]]*\]\(#[^)]*$`)
)

const blockMathDelim = "$$"

// cursor is the request as seen by the classifier and generators.
type cursor struct {
	doc    *document.Document
	pos    document.Position
	before string // cursor line up to the cursor
	after  string // cursor line from the cursor
}

func newCursor(doc *document.Document, pos document.Position) (*cursor, error) {
	before, after, err := doc.Split(pos)
	if err != nil {
		return nil, err
	}
	return &cursor{doc: doc, pos: pos, before: before, after: after}, nil
}

// rule is one entry of the classifier's decision list. A rule that matches
// ends classification even when it resolves to ContextNone.
type rule struct {
	name  string
	match func(c *cursor) (Context, bool)
}

var rules = []rule{
	{"math", matchMath},
	{"reference", matchReference},
	{"anchor", matchAnchor},
}

// classify walks the decision list top to bottom; the first match wins.
func classify(c *cursor) Context {
	for _, r := range rules {
		if ctx, ok := r.match(c); ok {
			log.Debug("Context rule matched", "rule", r.name, "context", ctx)
			return ctx
		}
	}
	return ContextNone
}

func matchMath(c *cursor) (Context, bool) {
	if !mathTrigger.MatchString(c.before) {
		return ContextNone, false
	}
	if c.inInlineMath() || c.inBlockMath() {
		return ContextMath, true
	}
	// a backslash outside math completes nothing
	return ContextNone, true
}

func (c *cursor) inInlineMath() bool {
	return inlineMathOpen.MatchString(c.before) && strings.Contains(c.after, "$")
}

func (c *cursor) inBlockMath() bool {
	before, err := c.doc.TextBefore(c.pos)
	if err != nil {
		return false
	}
	opened := strings.Count(before, blockMathDelim)
	if opened%2 == 0 {
		return false
	}
	after, err := c.doc.TextAfter(c.pos)
	if err != nil {
		return false
	}
	return strings.Contains(after, blockMathDelim)
}

func matchReference(c *cursor) (Context, bool) {
	if referenceOpen.MatchString(c.before) {
		return ContextReference, true
	}
	return ContextNone, false
}

func matchAnchor(c *cursor) (Context, bool) {
	if anchorOpen.MatchString(c.before) {
		return ContextAnchor, true
	}
	return ContextNone, false
}
