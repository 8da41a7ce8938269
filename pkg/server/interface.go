/*
Package server implements msgpack IPC for markdown completion.

Clients write msgpack encoded requests to stdin and read one msgpack response
per request from stdout, in request order. Logs go to stderr.

# IPC

Every request carries an id and an action. A completion request sends the
whole document with a zero-based line and UTF-16 column:

	{"id": "req_001", "action": "complete", "text": "$\\al$", "line": 0, "ch": 3}

The response holds the candidates in the order the host should show them,
the count and the time taken in microseconds:

	{"id": "req_001", "items": [{"l": "\\alpha", "i": "alpha", "k": 1}], "c": 1, "t": 412}

Reference and anchor candidates also carry the range the insert text replaces:

	{"l": "[intro]", "i": "intro", "k": 3, "r": {"sl": 4, "sc": 10, "el": 4, "ec": 12}}

The trigger characters are fetched once, when the client attaches:

	{"id": "t_001", "action": "triggers"}

Errors use the code 400 for requests the server cannot act on and 500 for
failures inside the server.

On start the server writes {"status": "ready"}.
*/
package server

// Actions understood by the server.
const (
	ActionComplete = "complete"
	ActionTriggers = "triggers"
	ActionHealth   = "health"
)

// Request is any client message. Fields beyond ID and Action depend on the
// action.
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action"`
	Text   string `msgpack:"text,omitempty"`
	Line   int    `msgpack:"line,omitempty"`
	Ch     int    `msgpack:"ch,omitempty"`
}

// ItemRange is the replace range of a candidate.
type ItemRange struct {
	StartLine int `msgpack:"sl"`
	StartCh   int `msgpack:"sc"`
	EndLine   int `msgpack:"el"`
	EndCh     int `msgpack:"ec"`
}

// CompletionItem - one candidate
type CompletionItem struct {
	Label         string     `msgpack:"l"`
	InsertText    string     `msgpack:"i"`
	Kind          int        `msgpack:"k"`
	Snippet       bool       `msgpack:"s,omitempty"`
	Documentation string     `msgpack:"doc,omitempty"`
	Detail        string     `msgpack:"det,omitempty"`
	SortKey       string     `msgpack:"sort,omitempty"`
	Range         *ItemRange `msgpack:"r,omitempty"`
}

// CompletionResponse - completion response
type CompletionResponse struct {
	ID        string           `msgpack:"id"`
	Items     []CompletionItem `msgpack:"items"`
	Count     int              `msgpack:"c"`
	TimeTaken int64            `msgpack:"t"`
}

// TriggersResponse lists the characters that should open completion.
type TriggersResponse struct {
	ID    string   `msgpack:"id"`
	Chars []string `msgpack:"chars"`
}

// StatusResponse answers health checks and announces readiness.
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// CompletionError holds basic error information for failed requests
type CompletionError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
