// internal/words/words.go
//
// Dictionary used by the optional word-validity check.
//
// Responsibilities:
//   - Hold the known words as a lookup set.
//   - Parse word lists (one word per line) from files and downloads.
//
// Word lists:
//   - Lines are trimmed and lower-cased.
//   - Blank lines and lines starting with '#' are skipped.
//   - Only alphabetic words (a–z) are kept.
//
// Initialization is explicit: callers build a Dictionary through Loader.Load
// before a game starts; nothing here runs lazily.

package words

import (
	"bufio"
	"errors"
	"io"
	"os"
	"sort"
	"strings"
)

// ErrEmpty is returned when a word list holds no usable words.
var ErrEmpty = errors.New("words: word list is empty")

// Dictionary is an immutable set of lowercase words.
type Dictionary struct {
	set map[string]struct{}
}

// New builds a Dictionary from list. Entries are normalized the same way as
// word files; an error is returned if nothing usable remains.
func New(list []string) (*Dictionary, error) {
	set := make(map[string]struct{}, len(list))
	for _, w := range list {
		if w = normalize(w); w != "" {
			set[w] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil, ErrEmpty
	}
	return &Dictionary{set: set}, nil
}

// Contains reports whether w is a known word. The lookup is case-insensitive.
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.set[strings.ToLower(w)]
	return ok
}

// Len returns the number of words.
func (d *Dictionary) Len() int { return len(d.set) }

// Words returns the words sorted.
func (d *Dictionary) Words() []string {
	out := make([]string, 0, len(d.set))
	for w := range d.set {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseWords(f)
}

// parseWords reads one word per line, keeping normalized alphabetic words.
func parseWords(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if w := normalize(sc.Text()); w != "" {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// normalize trims and lower-cases line, returning "" for comments and
// anything that is not a plain a–z word.
func normalize(line string) string {
	w := strings.ToLower(strings.TrimSpace(line))
	if w == "" || strings.HasPrefix(w, "#") || !isAlpha(w) {
		return ""
	}
	return w
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
