package server

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/bastiangx/spelltrie/pkg/config"
	"github.com/bastiangx/spelltrie/pkg/trie"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func newIndex(words ...string) trie.Index {
	idx := trie.New()
	for _, w := range words {
		idx.Insert(w)
	}
	return idx
}

// roundTrip encodes reqs, runs a server over them and decodes every response.
func roundTrip(t *testing.T, idx trie.Index, reqs ...Request) ([]Response, error) {
	t.Helper()
	var in bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, r := range reqs {
		if err := enc.Encode(r); err != nil {
			t.Fatalf("encoding request: %v", err)
		}
	}

	var out bytes.Buffer
	srv := NewServer(idx, config.DefaultConfig().Server, &in, &out)
	startErr := srv.Start()

	var responses []Response
	dec := msgpack.NewDecoder(&out)
	for {
		var resp Response
		if err := dec.Decode(&resp); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			t.Fatalf("decoding response: %v", err)
		}
		responses = append(responses, resp)
	}
	return responses, startErr
}

func TestServerRoundTrip(t *testing.T) {
	idx := newIndex("cat", "car", "cart", "dog")
	responses, err := roundTrip(t, idx,
		Request{ID: "1", Op: OpSearch, Arg: "Cat"},
		Request{ID: "2", Op: OpSearch, Arg: "ca"},
		Request{ID: "3", Op: OpPrefix, Arg: "ca"},
		Request{ID: "4", Op: OpComplete, Arg: "ca"},
		Request{ID: "5", Op: OpSpell, Arg: "cwt"},
		Request{ID: "6", Op: OpHealth},
	)
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	if len(responses) != 7 {
		t.Fatalf("expected ready + 6 responses, got %d", len(responses))
	}
	if responses[0].Status != StatusReady {
		t.Errorf("first message should be ready, got %+v", responses[0])
	}

	got := responses[1:]
	if !got[0].Found || got[0].ID != "1" {
		t.Errorf("search Cat: %+v", got[0])
	}
	if got[1].Found {
		t.Errorf("search ca should miss: %+v", got[1])
	}
	if !got[2].Found {
		t.Errorf("prefix ca should hit: %+v", got[2])
	}
	if !reflect.DeepEqual(got[3].Words, []string{"car", "cart", "cat"}) || got[3].Total != 3 {
		t.Errorf("complete ca: %+v", got[3])
	}
	if got[4].Found || !reflect.DeepEqual(got[4].Words, []string{"cat"}) {
		t.Errorf("spell cwt: %+v", got[4])
	}
	for _, r := range got {
		if r.Status != StatusOK {
			t.Errorf("request %s failed: %s", r.ID, r.Error)
		}
	}
}

func TestHandleComplete(t *testing.T) {
	idx := newIndex("aa", "ab", "ac", "ad", "ae", "af", "ag", "ah", "ai", "aj", "ak", "al")
	cfg := config.DefaultConfig().Server
	cfg.MaxLimit = 11
	srv := NewServer(idx, cfg, strings.NewReader(""), io.Discard)

	testCases := []struct {
		limit    int
		expected int
	}{
		{0, 10},
		{3, 3},
		{50, 11},
	}
	for _, tc := range testCases {
		resp := srv.Handle(Request{ID: "c", Op: OpComplete, Arg: "a", Limit: tc.limit})
		if resp.Count != tc.expected || len(resp.Words) != tc.expected {
			t.Errorf("limit %d: expected %d words, got %d", tc.limit, tc.expected, resp.Count)
		}
		if resp.Total != 12 {
			t.Errorf("limit %d: total should be 12, got %d", tc.limit, resp.Total)
		}
	}
}

func TestHandleErrors(t *testing.T) {
	srv := NewServer(newIndex("cat"), config.DefaultConfig().Server, strings.NewReader(""), io.Discard)

	testCases := []struct {
		req         Request
		errContains string
		description string
	}{
		{Request{ID: "x", Op: "delete", Arg: "cat"}, ErrUnknownOp.Error(), "Unknown op"},
		{Request{ID: "x", Op: OpSearch, Arg: strings.Repeat("a", 65)}, ErrArgTooLong.Error(), "Argument too long"},
		{Request{ID: "x", Op: OpSearch}, ErrMissingArg.Error(), "Missing search argument"},
		{Request{ID: "x", Op: OpSpell}, ErrMissingArg.Error(), "Missing spell argument"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			resp := srv.Handle(tc.req)
			if resp.Status != StatusError {
				t.Fatalf("expected error status, got %+v", resp)
			}
			if !strings.Contains(resp.Error, tc.errContains) {
				t.Errorf("expected error containing %q, got %q", tc.errContains, resp.Error)
			}
			if resp.ID != "x" {
				t.Errorf("error response should echo the id")
			}
		})
	}
}

// prefix and complete accept the empty argument and cover the whole index
func TestHandleEmptyPrefix(t *testing.T) {
	srv := NewServer(newIndex("b", "a"), config.DefaultConfig().Server, strings.NewReader(""), io.Discard)

	if resp := srv.Handle(Request{Op: OpPrefix}); !resp.Found {
		t.Errorf("empty prefix should match a non-empty index")
	}
	resp := srv.Handle(Request{Op: OpComplete})
	if !reflect.DeepEqual(resp.Words, []string{"a", "b"}) {
		t.Errorf("expected every word, got %v", resp.Words)
	}
}

func TestHandleStats(t *testing.T) {
	srv := NewServer(newIndex("cat", "dog", "cat"), config.DefaultConfig().Server, strings.NewReader(""), io.Discard)
	srv.Handle(Request{Op: OpHealth})

	resp := srv.Handle(Request{Op: OpStats})
	if resp.Total != 2 {
		t.Errorf("expected 2 words, got %d", resp.Total)
	}
	if resp.Count != 2 {
		t.Errorf("expected 2 requests, got %d", resp.Count)
	}
}

func TestServerInvalidInput(t *testing.T) {
	in := bytes.NewBufferString("\xc1")
	var out bytes.Buffer
	srv := NewServer(newIndex("cat"), config.DefaultConfig().Server, in, &out)

	if err := srv.Start(); err == nil {
		t.Fatalf("expected decode error")
	}

	dec := msgpack.NewDecoder(&out)
	var ready, failure Response
	if err := dec.Decode(&ready); err != nil || ready.Status != StatusReady {
		t.Fatalf("ready message missing: %v", err)
	}
	if err := dec.Decode(&failure); err != nil || failure.Status != StatusError {
		t.Errorf("error response missing: %+v, %v", failure, err)
	}
}

func TestServerEmptyInput(t *testing.T) {
	responses, err := roundTrip(t, newIndex())
	if err != nil {
		t.Fatalf("empty input should end cleanly, got %v", err)
	}
	if len(responses) != 1 || responses[0].Op != OpReady {
		t.Errorf("expected only the ready message, got %+v", responses)
	}
}
