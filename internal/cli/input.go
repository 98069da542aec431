// Package cli implements the interactive command menu over a word index.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bastiangx/spelltrie/internal/logger"
	"github.com/bastiangx/spelltrie/internal/utils"
	"github.com/bastiangx/spelltrie/pkg/config"
	"github.com/bastiangx/spelltrie/pkg/suggest"
	"github.com/bastiangx/spelltrie/pkg/trie"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const menu = `Commands:
  search   <word>    exact lookup                (s)
  prefix   <prefix>  does any word start with it (p)
  complete <prefix>  list words with the prefix  (c)
  spell    <word>    one-edit corrections        (sp)
  stats              index statistics
  help               show this menu              (h)
  quit               exit                        (q)`

// InputHandler reads commands line by line and prints results. Each command
// maps onto one index or suggester operation; display truncation happens here.
type InputHandler struct {
	index     trie.Index
	suggester *suggest.Suggester
	cfg       config.CliConfig
	in        io.Reader
	out       *log.Logger
	word      lipgloss.Style
	requests  int
}

// NewInputHandler builds a handler reading commands from in and writing
// results to out.
func NewInputHandler(index trie.Index, cfg config.CliConfig, in io.Reader, out io.Writer) *InputHandler {
	renderer := lipgloss.NewRenderer(out)
	return &InputHandler{
		index:     index,
		suggester: suggest.New(index),
		cfg:       cfg,
		in:        in,
		out:       logger.NewWithWriter(out, ""),
		word:      renderer.NewStyle().Foreground(lipgloss.Color("75")),
	}
}

// Start prints the menu and runs the loop until quit or end of input.
func (h *InputHandler) Start() error {
	h.out.Print("spelltrie CLI")
	h.out.Print(menu)

	scanner := bufio.NewScanner(h.in)
	for {
		h.out.Print("> ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if quit := h.handleLine(line); quit {
			h.out.Print("bye")
			return nil
		}
	}
}

// handleLine dispatches a single command line. It reports whether the user
// asked to quit.
func (h *InputHandler) handleLine(line string) bool {
	h.requests++

	fields := strings.Fields(line)
	cmd := strings.ToLower(fields[0])
	arg := ""
	if len(fields) > 1 {
		arg = fields[1]
	}
	if len(fields) > 2 {
		log.Warnf("Ignoring extra arguments: %v", fields[2:])
	}

	switch cmd {
	case "quit", "exit", "q":
		return true
	case "help", "h", "?":
		h.out.Print(menu)
	case "stats":
		h.showStats()
	case "search", "s":
		if h.validate(cmd, arg) {
			h.search(arg)
		}
	case "prefix", "p":
		if h.validate(cmd, arg) {
			h.prefix(arg)
		}
	case "complete", "c":
		if h.validate(cmd, arg) {
			h.complete(arg)
		}
	case "spell", "sp":
		if h.validate(cmd, arg) {
			h.spell(arg)
		}
	default:
		h.out.Errorf("Unknown command: %s", cmd)
		h.out.Print(menu)
	}
	return false
}

// validate checks the argument length and content against the cli config.
func (h *InputHandler) validate(cmd, arg string) bool {
	if arg == "" {
		h.out.Errorf("Missing argument for '%s'", cmd)
		return false
	}
	n := len([]rune(arg))
	if n < h.cfg.MinLen {
		h.out.Errorf("Argument too short: %s", arg)
		return false
	}
	if h.cfg.MaxLen > 0 && n > h.cfg.MaxLen {
		h.out.Errorf("Argument too long: %s", arg)
		return false
	}
	if !h.cfg.NoFilter && !utils.IsValidInput(arg, false) {
		h.out.Errorf("Only letters are accepted: '%s'", arg)
		return false
	}
	return true
}

func (h *InputHandler) search(word string) {
	if h.index.Search(word) {
		h.out.Printf("'%s' found in the dictionary", h.word.Render(strings.ToLower(word)))
		return
	}
	h.out.Printf("'%s' not found", word)
}

func (h *InputHandler) prefix(p string) {
	if h.index.StartsWith(p) {
		h.out.Printf("Words starting with '%s' exist", p)
		return
	}
	h.out.Printf("No word starts with '%s'", p)
}

func (h *InputHandler) complete(p string) {
	start := time.Now()
	words := h.index.Collect(p)
	log.Debugf("Took [ %v ] to collect '%s'", time.Since(start), p)

	if len(words) == 0 {
		h.out.Printf("No completions for '%s'", p)
		return
	}

	shown, rest := utils.Truncate(words, h.cfg.DisplayLimit)
	h.out.Printf("Found %d completions for '%s':", len(words), p)
	h.printList(shown)
	if rest > 0 {
		h.out.Printf("... (%d more)", rest)
	}
}

func (h *InputHandler) spell(word string) {
	start := time.Now()
	res := h.suggester.Check(word)
	log.Debugf("Took [ %v ] to check '%s'", time.Since(start), word)

	if res.Correct {
		h.out.Printf("'%s' is spelled correctly!", h.word.Render(res.Word))
		return
	}
	if len(res.Suggestions) == 0 {
		h.out.Printf("No close matches found for '%s'", res.Word)
		return
	}
	h.out.Printf("Did you mean:")
	h.printList(res.Suggestions)
}

func (h *InputHandler) printList(words []string) {
	for i, w := range words {
		h.out.Printf("%2d. %s", i+1, h.word.Render(w))
	}
}

func (h *InputHandler) showStats() {
	h.out.Printf("words: %s", utils.FormatWithCommas(h.index.Len()))
	if t, ok := h.index.(*trie.Trie); ok {
		h.out.Printf("nodes: %s", utils.FormatWithCommas(t.Nodes()))
	}
	h.out.Printf("requests: %d", h.requests)
}
