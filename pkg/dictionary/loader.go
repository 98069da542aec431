// Package dictionary feeds plain text word lists into an index.
//
// A dictionary file holds one word per line. Lines are trimmed and lowercased;
// blank lines and lines containing anything but letters are skipped. When the
// file cannot be read, the loader falls back to DefaultWords so the caller
// always ends up with a usable index.
package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bastiangx/spelltrie/internal/utils"
	"github.com/charmbracelet/log"
)

// DefaultWords is the built-in list used when no dictionary file is available.
var DefaultWords = []string{
	"apple", "apply", "appetizer", "banana", "band",
	"cat", "car", "cart", "dog", "doughnut",
}

// Inserter is what the loader needs from an index.
type Inserter interface {
	Insert(word string)
}

// Result describes a finished load.
type Result struct {
	Path     string
	Words    int
	Skipped  int
	Fallback bool
	// Err is the reason for the fallback, if any.
	Err error
}

// LoadReader inserts every valid line of r into idx. It returns the number of
// inserted lines and the number of skipped ones. Lines inserted before a read
// error stay in idx.
func LoadReader(r io.Reader, idx Inserter) (words, skipped int, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if !utils.IsDictionaryWord(word) {
			skipped++
			continue
		}
		idx.Insert(strings.ToLower(word))
		words++
	}
	if err := scanner.Err(); err != nil {
		return words, skipped, fmt.Errorf("failed to read dictionary: %w", err)
	}
	return words, skipped, nil
}

// LoadDefaults inserts DefaultWords into idx and returns their count.
func LoadDefaults(idx Inserter) int {
	for _, w := range DefaultWords {
		idx.Insert(w)
	}
	return len(DefaultWords)
}

// Load reads the dictionary at path into idx. It never fails: a missing or
// unreadable file results in the default word list being loaded instead, with
// the cause kept in Result.Err. Words read before a mid-file error are kept.
func Load(path string, idx Inserter) Result {
	result := Result{Path: path}

	if err := ValidateTextFile(path); err != nil {
		log.Warnf("Dictionary file '%s' not usable (%v). Loading the built-in default set.", path, err)
		return fallback(result, idx, err)
	}

	file, err := os.Open(path)
	if err != nil {
		log.Warnf("Failed to open dictionary %s: %v. Loading the built-in default set.", path, err)
		return fallback(result, idx, err)
	}
	defer file.Close()

	words, skipped, err := LoadReader(file, idx)
	result.Words = words
	result.Skipped = skipped
	if err != nil {
		log.Errorf("Error while loading %s: %v. Loading the built-in default set.", path, err)
		return fallback(result, idx, err)
	}

	log.Debugf("Loaded %d words from %s (%d lines skipped)", words, path, skipped)
	return result
}

func fallback(result Result, idx Inserter, cause error) Result {
	result.Words += LoadDefaults(idx)
	result.Fallback = true
	result.Err = cause
	return result
}
