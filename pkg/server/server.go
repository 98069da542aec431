package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bastiangx/spelltrie/internal/utils"
	"github.com/bastiangx/spelltrie/pkg/config"
	"github.com/bastiangx/spelltrie/pkg/suggest"
	"github.com/bastiangx/spelltrie/pkg/trie"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

var (
	// ErrUnknownOp is reported for an unsupported operation name.
	ErrUnknownOp = errors.New("unknown op")
	// ErrArgTooLong is reported when the argument exceeds max_arg_len.
	ErrArgTooLong = errors.New("argument too long")
	// ErrMissingArg is reported when an operation that needs an argument gets none.
	ErrMissingArg = errors.New("missing argument")
)

// Server answers msgpack requests against a word index.
type Server struct {
	index     trie.Index
	suggester *suggest.Suggester
	cfg       config.ServerConfig
	decoder   *msgpack.Decoder
	writer    *bufio.Writer
	encoder   *msgpack.Encoder
	requests  int
}

// NewServer creates a server reading requests from r and writing responses to w.
func NewServer(index trie.Index, cfg config.ServerConfig, r io.Reader, w io.Writer) *Server {
	bw := bufio.NewWriter(w)
	return &Server{
		index:     index,
		suggester: suggest.New(index),
		cfg:       cfg,
		decoder:   msgpack.NewDecoder(bufio.NewReader(r)),
		writer:    bw,
		encoder:   msgpack.NewEncoder(bw),
	}
}

// Start sends the ready message and serves requests until end of input.
// A request that cannot be decoded leaves the stream in an unknown state, so
// it is answered with an error response and ends the loop.
func (s *Server) Start() error {
	log.Debug("Starting server")
	if err := s.send(Response{Op: OpReady, Status: StatusReady}); err != nil {
		return err
	}

	for {
		var req Request
		if err := s.decoder.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				log.Debugf("Input closed after %d requests", s.requests)
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			if sendErr := s.send(Response{Status: StatusError, Error: "invalid request"}); sendErr != nil {
				return sendErr
			}
			return fmt.Errorf("decoding request: %w", err)
		}

		if err := s.send(s.Handle(req)); err != nil {
			return err
		}
	}
}

// Handle answers a single request.
func (s *Server) Handle(req Request) Response {
	s.requests++
	start := time.Now()

	resp, err := s.dispatch(req)
	resp.ID = req.ID
	resp.Op = req.Op
	resp.TimeTaken = time.Since(start).Microseconds()
	if err != nil {
		log.Debugf("Request %s failed: %v", req.ID, err)
		resp.Status = StatusError
		resp.Error = err.Error()
		return resp
	}
	resp.Status = StatusOK
	return resp
}

func (s *Server) dispatch(req Request) (Response, error) {
	switch req.Op {
	case OpHealth:
		return Response{}, nil
	case OpStats:
		return Response{Total: s.index.Len(), Count: s.requests}, nil
	case OpSearch, OpPrefix, OpComplete, OpSpell:
	default:
		return Response{}, fmt.Errorf("%w: %q", ErrUnknownOp, req.Op)
	}

	if len([]rune(req.Arg)) > s.cfg.MaxArgLen {
		return Response{}, fmt.Errorf("%w: %d > %d", ErrArgTooLong, len([]rune(req.Arg)), s.cfg.MaxArgLen)
	}

	switch req.Op {
	case OpSearch:
		if req.Arg == "" {
			return Response{}, fmt.Errorf("%w for %s", ErrMissingArg, req.Op)
		}
		return Response{Found: s.index.Search(req.Arg)}, nil
	case OpPrefix:
		return Response{Found: s.index.StartsWith(req.Arg)}, nil
	case OpComplete:
		words := s.index.Collect(req.Arg)
		shown, _ := utils.Truncate(words, s.limit(req.Limit))
		return Response{Found: len(words) > 0, Words: shown, Count: len(shown), Total: len(words)}, nil
	default:
		if req.Arg == "" {
			return Response{}, fmt.Errorf("%w for %s", ErrMissingArg, req.Op)
		}
		res := s.suggester.Check(req.Arg)
		return Response{Found: res.Correct, Words: res.Suggestions, Count: len(res.Suggestions), Total: len(res.Suggestions)}, nil
	}
}

// limit resolves the completion limit for a request.
func (s *Server) limit(requested int) int {
	if requested < 1 {
		return s.cfg.DefaultLimit
	}
	if requested > s.cfg.MaxLimit {
		return s.cfg.MaxLimit
	}
	return requested
}

func (s *Server) send(resp Response) error {
	if err := s.encoder.Encode(resp); err != nil {
		log.Errorf("Encoding response: %v", err)
		return err
	}
	return s.writer.Flush()
}
