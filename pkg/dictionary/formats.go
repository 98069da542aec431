package dictionary

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// ErrNotText is returned for paths that cannot be a plain text word list.
var ErrNotText = errors.New("not a plain text dictionary")

// textExtensions are the extensions accepted for word lists. System word
// lists such as /usr/share/dict/words have none.
var textExtensions = []string{"", ".txt", ".dic", ".lst", ".words"}

// ValidateTextFile checks that path is a readable, regular file with a word
// list extension. An empty file is valid and simply loads no words.
func ValidateTextFile(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrNotText)
	}

	fileInfo, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", path, err)
	}
	if !fileInfo.Mode().IsRegular() {
		return fmt.Errorf("%w: %s is not a regular file", ErrNotText, path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	validExt := false
	for _, e := range textExtensions {
		if ext == e {
			validExt = true
			break
		}
	}
	if !validExt {
		return fmt.Errorf("%w: %s has extension %s (expected one of %q)", ErrNotText, path, ext, textExtensions)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	log.Debugf("Text file %s validated (%d bytes)", path, fileInfo.Size())
	return nil
}
