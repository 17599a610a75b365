// internal/corpus/corpus.go
//
// Word-list management for the solver.
//
// Responsibilities:
//   - Normalize raw word lists (trim, lowercase, skip blanks/#comments, dedupe).
//   - Hold the loaded list in source order.
//   - Serve per-length views (OfLength) for new games, cached per length.
//
// Lengths are counted in runes, so non-ASCII lists (e.g. Cyrillic) work.

package corpus

import (
	"bufio"
	"io"
	"maps"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"
)

// Corpus is an immutable, ordered word list. Safe for concurrent use.
type Corpus struct {
	words []string

	mu       sync.Mutex
	byLength map[int][]string
}

// FromWords normalizes words and wraps them in a Corpus.
func FromWords(words []string) *Corpus {
	return &Corpus{words: Normalize(words), byLength: make(map[int][]string)}
}

// ReadLines reads one word per line from r and normalizes the result.
func ReadLines(r io.Reader) (*Corpus, error) {
	var raw []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		raw = append(raw, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return FromWords(raw), nil
}

// Normalize lowercases and trims every entry, skipping blank lines,
// '#' comments and repeats. The first occurrence wins.
func Normalize(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		w := strings.ToLower(strings.TrimSpace(s))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// Len returns the number of words in the corpus.
func (c *Corpus) Len() int { return len(c.words) }

// Words returns a copy of the full list.
func (c *Corpus) Words() []string { return slices.Clone(c.words) }

// OfLength returns the words of exactly n runes in source order.
// The returned slice is shared; callers must not modify it.
func (c *Corpus) OfLength(n int) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ws, ok := c.byLength[n]; ok {
		return ws
	}
	var ws []string
	for _, w := range c.words {
		if utf8.RuneCountInString(w) == n {
			ws = append(ws, w)
		}
	}
	c.byLength[n] = ws
	return ws
}

// Lengths reports how many words there are of each rune length.
func (c *Corpus) Lengths() map[int]int {
	out := make(map[int]int)
	for _, w := range c.words {
		out[utf8.RuneCountInString(w)]++
	}
	return out
}

// SortedLengths returns the distinct word lengths in ascending order.
func (c *Corpus) SortedLengths() []int {
	return slices.Sorted(maps.Keys(c.Lengths()))
}
