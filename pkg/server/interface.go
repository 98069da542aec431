/*
Package server implements msgpack IPC over stdin/stdout for the word index.

Clients write a stream of msgpack encoded requests and read one msgpack
response per request, in order. Every request names an operation and one
argument:

	{"id": "r1", "op": "search", "a": "cat"}
	{"id": "r2", "op": "prefix", "a": "ca"}
	{"id": "r3", "op": "complete", "a": "ca", "l": 5}
	{"id": "r4", "op": "spell", "a": "cwt"}
	{"id": "r5", "op": "stats"}
	{"id": "r6", "op": "health"}

Responses carry the request id and op back:

	{"id": "r3", "op": "complete", "s": "ok", "f": true, "w": ["car", "cart", "cat"], "c": 3, "n": 3, "t": 12}

"w" holds the words, "c" their count after truncation and "n" the count
before it. Only complete truncates, using "l" or the configured default, and
never above the configured maximum. "t" is the handling time in microseconds.
Failed requests get "s": "error" and a message in "e".

A ready message ({"op": "ready", "s": "ready"}) is written before the first
request is read. End of input stops the server cleanly.
*/
package server

// Operation names.
const (
	OpSearch   = "search"
	OpPrefix   = "prefix"
	OpComplete = "complete"
	OpSpell    = "spell"
	OpStats    = "stats"
	OpHealth   = "health"
	OpReady    = "ready"
)

// Status values.
const (
	StatusOK    = "ok"
	StatusError = "error"
	StatusReady = "ready"
)

// Request is a single query from the client.
type Request struct {
	ID    string `msgpack:"id"`
	Op    string `msgpack:"op"`
	Arg   string `msgpack:"a"`
	Limit int    `msgpack:"l,omitempty"`
}

// Response answers one Request.
type Response struct {
	ID        string   `msgpack:"id"`
	Op        string   `msgpack:"op"`
	Status    string   `msgpack:"s"`
	Found     bool     `msgpack:"f"`
	Words     []string `msgpack:"w,omitempty"`
	Count     int      `msgpack:"c"`
	Total     int      `msgpack:"n"`
	TimeTaken int64    `msgpack:"t"`
	Error     string   `msgpack:"e,omitempty"`
}
