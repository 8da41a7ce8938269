package server

import (
	"context"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/bastiangx/mdserve/pkg/document"
	"github.com/bastiangx/mdserve/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for markdown completions
type Server struct {
	engine  atomic.Pointer[suggest.Engine]
	decoder *msgpack.Decoder
	writer  io.Writer
	served  atomic.Int64
}

// NewServer creates a completion server using stdin/stdout for IPC
func NewServer(engine *suggest.Engine) *Server {
	return New(engine, os.Stdin, os.Stdout)
}

// New creates a server reading requests from r and writing responses to w.
func New(engine *suggest.Engine, r io.Reader, w io.Writer) *Server {
	s := &Server{
		decoder: msgpack.NewDecoder(r),
		writer:  w,
	}
	s.engine.Store(engine)
	return s
}

// SetEngine swaps the engine used for subsequent requests. Requests already
// running finish on the engine they started with.
func (s *Server) SetEngine(engine *suggest.Engine) {
	if engine == nil {
		return
	}
	s.engine.Store(engine)
	log.Debug("Completion engine replaced")
}

// Served returns the number of requests answered so far.
func (s *Server) Served() int64 {
	return s.served.Load()
}

// Start announces readiness and then answers requests until the input ends
// or ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	log.Debug("Starting Server.")
	s.sendResponse(StatusResponse{Status: "ready"})

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		// One raw value per request keeps the stream aligned even when a
		// request does not fit the Request shape.
		raw, err := s.decoder.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Debug("Input closed, stopping server")
				return nil
			}
			log.Errorf("Reading request: %v", err)
			s.sendError("", "malformed msgpack stream", 400)
			return errors.Wrap(err, "decode request")
		}
		s.handleRequest(ctx, raw)
	}
}

// handleRequest answers exactly once for every decoded value.
func (s *Server) handleRequest(ctx context.Context, raw msgpack.RawMessage) {
	defer s.served.Add(1)

	var req Request
	if err := msgpack.Unmarshal(raw, &req); err != nil {
		log.Debugf("Unmarshaling request: %v", err)
		s.sendError("", "invalid request", 400)
		return
	}

	switch req.Action {
	case ActionComplete:
		s.handleComplete(ctx, req)
	case ActionTriggers:
		s.sendResponse(TriggersResponse{ID: req.ID, Chars: suggest.TriggerCharacters()})
	case ActionHealth:
		s.sendResponse(StatusResponse{ID: req.ID, Status: "ok"})
	default:
		s.sendError(req.ID, "unknown action: "+req.Action, 400)
	}
}

func (s *Server) handleComplete(ctx context.Context, req Request) {
	start := time.Now()

	doc := document.New(req.Text)
	cands, err := s.engine.Load().Complete(ctx, suggest.Request{
		Document: doc,
		Position: document.Position{Line: req.Line, Character: req.Ch},
	})
	if err != nil {
		code := 500
		if errors.Is(err, suggest.ErrInvalidInput) {
			code = 400
		}
		log.Debug("Completion failed", "id", req.ID, "err", err, "code", code)
		s.sendError(req.ID, err.Error(), code)
		return
	}

	items := toItems(cands)
	s.sendResponse(CompletionResponse{
		ID:        req.ID,
		Items:     items,
		Count:     len(items),
		TimeTaken: time.Since(start).Microseconds(),
	})
}

func toItems(cands []suggest.Candidate) []CompletionItem {
	items := make([]CompletionItem, len(cands))
	for i, c := range cands {
		items[i] = CompletionItem{
			Label:         c.Label,
			InsertText:    c.InsertText,
			Kind:          int(c.Kind),
			Snippet:       c.Snippet,
			Documentation: c.Documentation,
			Detail:        c.Detail,
			SortKey:       c.SortKey,
		}
		if r := c.Range; r != nil {
			items[i].Range = &ItemRange{
				StartLine: r.Start.Line,
				StartCh:   r.Start.Character,
				EndLine:   r.End.Line,
				EndCh:     r.End.Character,
			}
		}
	}
	return items
}

// sendResponse writes one msgpack value. A value that cannot be encoded is
// replaced by an internal error so the client still gets its one answer.
func (s *Server) sendResponse(response any) {
	data, err := msgpack.Marshal(response)
	if err != nil {
		log.Errorf("Marshaling response: %v", err)
		data, _ = msgpack.Marshal(CompletionError{Error: "internal server error", Code: 500})
	}
	if _, err := s.writer.Write(data); err != nil {
		log.Errorf("Writing response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(CompletionError{ID: id, Error: message, Code: code})
}
