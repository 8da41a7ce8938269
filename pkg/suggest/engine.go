// Package suggest is the completion core: it decides which completion domain
// applies at the cursor (math commands, reference-link labels or heading
// anchors) and produces the candidates for it.
//
// Every request is a fresh computation. The only shared state is the
// immutable symbol catalog, so an Engine is safe for concurrent use.
package suggest

import (
	"context"

	"github.com/bastiangx/mdserve/pkg/document"
	"github.com/bastiangx/mdserve/pkg/symbols"
	"github.com/bastiangx/mdserve/pkg/toc"
	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
)

// ErrInvalidInput marks requests that indicate an integration bug, such as a
// missing document or a cursor outside it. Ordinary editing states never
// produce it.
var ErrInvalidInput = errors.New("invalid completion input")

// SlugFunc turns heading text into an anchor identifier.
type SlugFunc func(text string) string

// OutlineFunc returns the headings of a document in document order.
type OutlineFunc func(doc *document.Document) []toc.Heading

// Request is one completion request from the host.
type Request struct {
	Document *document.Document
	Position document.Position
}

// Engine wires the classifier to the domain generators.
type Engine struct {
	catalog  *symbols.Catalog
	math     []Candidate
	slug     SlugFunc
	outline  OutlineFunc
	enabled  map[Context]bool
	maxBytes int
}

// Option configures an Engine.
type Option func(*Engine)

// WithCatalog replaces the process-wide symbol catalog.
func WithCatalog(c *symbols.Catalog) Option {
	return func(e *Engine) {
		if c != nil {
			e.catalog = c
		}
	}
}

// WithSlugger replaces the heading slug function.
func WithSlugger(fn SlugFunc) Option {
	return func(e *Engine) {
		if fn != nil {
			e.slug = fn
		}
	}
}

// WithOutline replaces the table-of-contents builder.
func WithOutline(fn OutlineFunc) Option {
	return func(e *Engine) {
		if fn != nil {
			e.outline = fn
		}
	}
}

// WithDomains switches individual domains on or off. A disabled domain still
// claims its context but yields no candidates.
func WithDomains(math, references, anchors bool) Option {
	return func(e *Engine) {
		e.enabled[ContextMath] = math
		e.enabled[ContextReference] = references
		e.enabled[ContextAnchor] = anchors
	}
}

// WithMaxDocumentBytes rejects larger documents as invalid input. Zero or a
// negative value disables the limit.
func WithMaxDocumentBytes(n int) Option {
	return func(e *Engine) {
		e.maxBytes = n
	}
}

// NewEngine creates an engine. The math candidate list is built here, once,
// from the catalog.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		catalog: symbols.Default(),
		slug:    toc.Slugify,
		outline: toc.Build,
		enabled: map[Context]bool{
			ContextMath:      true,
			ContextReference: true,
			ContextAnchor:    true,
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.math = buildMathCandidates(e.catalog)
	return e
}

// Catalog returns the symbol catalog the math candidates were built from.
func (e *Engine) Catalog() *symbols.Catalog {
	return e.catalog
}

// TriggerCharacters are the characters the host should request completion
// on.
func TriggerCharacters() []string {
	return []string{"(", `\`, "/", "[", "#"}
}

// Classify reports which completion domain applies to req.
func (e *Engine) Classify(req Request) (Context, error) {
	c, err := e.prepare(req)
	if err != nil {
		return ContextNone, err
	}
	return classify(c), nil
}

// Provide classifies the request and starts the matching generator. Math
// results are available immediately; reference and anchor results are
// computed on a separate goroutine.
//
// ctx is accepted for the host's benefit and is not polled: a document scan
// always runs to completion.
func (e *Engine) Provide(ctx context.Context, req Request) (*Pending, error) {
	c, err := e.prepare(req)
	if err != nil {
		return nil, err
	}

	kind := classify(c)
	if kind == ContextNone || !e.enabled[kind] {
		return resolved(nil), nil
	}

	switch kind {
	case ContextMath:
		return resolved(append([]Candidate(nil), e.math...)), nil
	case ContextReference:
		return deferred(func() []Candidate { return referenceCandidates(c) }), nil
	case ContextAnchor:
		return deferred(func() []Candidate { return e.anchorCandidates(c) }), nil
	}
	return resolved(nil), nil
}

// Complete is Provide followed by Wait.
func (e *Engine) Complete(ctx context.Context, req Request) ([]Candidate, error) {
	p, err := e.Provide(ctx, req)
	if err != nil {
		return nil, err
	}
	return p.Wait(), nil
}

func (e *Engine) prepare(req Request) (*cursor, error) {
	if req.Document == nil {
		return nil, errors.Wrap(ErrInvalidInput, "nil document")
	}
	if e.maxBytes > 0 && len(req.Document.Text()) > e.maxBytes {
		return nil, errors.WithHint(
			errors.Wrapf(ErrInvalidInput, "document is %d bytes", len(req.Document.Text())),
			"raise [server] max_document_bytes to accept larger documents")
	}

	c, err := newCursor(req.Document, req.Position)
	if err != nil {
		log.Debugf("Rejecting cursor %+v: %v", req.Position, err)
		return nil, errors.Mark(errors.Wrap(err, "cursor"), ErrInvalidInput)
	}
	return c, nil
}
