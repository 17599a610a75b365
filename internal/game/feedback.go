// internal/game/feedback.go
//
// Feedback model for a single guess.
// Defines:
//   - Outcome: per-letter result reported by the puzzle (good/existing/inexistent).
//   - Letter:  a guessed rune paired with its outcome.
//   - Line:    one guess plus its feedback, and the predicate deciding whether a
//              candidate word is still consistent with it.
//
// Two matching rules are available:
//   - MatchCounts (default): per-letter occurrence budgets, correct for guesses
//     that repeat a letter with mixed outcomes.
//   - MatchPositional: the plain positional + global rule, where an inexistent
//     letter may not appear anywhere in the candidate.
//
// Both rules agree on every line that does not repeat a letter.

package game

import (
	"fmt"
	"strings"
)

// Outcome is the feedback for one letter of a guess.
type Outcome string

const (
	Good       Outcome = "good"       // letter is at this exact position
	Existing   Outcome = "existing"   // letter is in the word, elsewhere
	Inexistent Outcome = "inexistent" // letter is not in the word (beyond the good/existing ones)
)

// ParseOutcome accepts the JSON names plus the single-character mask symbols.
func ParseOutcome(s string) (Outcome, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "good", "g", "+":
		return Good, nil
	case "existing", "e", "?":
		return Existing, nil
	case "inexistent", "i", "*":
		return Inexistent, nil
	}
	return "", fmt.Errorf("unknown outcome %q", s)
}

// Letter is a guessed character together with its outcome.
type Letter struct {
	Char    rune    `json:"char"`
	Outcome Outcome `json:"outcome"`
}

// MatchMode selects the satisfaction rule used when filtering the corpus.
type MatchMode string

const (
	MatchCounts     MatchMode = "counts"
	MatchPositional MatchMode = "positional"
)

// ParseMatchMode maps a config/flag value to a MatchMode. Empty means MatchCounts.
func ParseMatchMode(s string) (MatchMode, error) {
	switch MatchMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", MatchCounts:
		return MatchCounts, nil
	case MatchPositional:
		return MatchPositional, nil
	}
	return "", fmt.Errorf("unknown match mode %q", s)
}

// Line is one guess with its per-letter feedback. The zero value is an empty line.
// A Line is immutable: constructors and accessors copy.
type Line struct {
	letters []Letter
}

// NewLine builds a line from letters, in order.
func NewLine(letters ...Letter) Line {
	return Line{letters: append([]Letter(nil), letters...)}
}

// Len returns the number of letters in the line.
func (l Line) Len() int { return len(l.letters) }

// Letters returns a copy of the line's letters.
func (l Line) Letters() []Letter { return append([]Letter(nil), l.letters...) }

// Word returns the guessed word.
func (l Line) Word() string {
	rs := make([]rune, len(l.letters))
	for i, lt := range l.letters {
		rs[i] = lt.Char
	}
	return string(rs)
}

// Mask renders the feedback in the input notation: the letter itself for good,
// '?' for existing, '*' for inexistent.
func (l Line) Mask() string {
	rs := make([]rune, len(l.letters))
	for i, lt := range l.letters {
		switch lt.Outcome {
		case Good:
			rs[i] = lt.Char
		case Existing:
			rs[i] = '?'
		default:
			rs[i] = '*'
		}
	}
	return string(rs)
}

func (l Line) String() string { return l.Word() + "/" + l.Mask() }

// Solved reports whether every letter is good.
func (l Line) Solved() bool {
	if len(l.letters) == 0 {
		return false
	}
	for _, lt := range l.letters {
		if lt.Outcome != Good {
			return false
		}
	}
	return true
}

// Satisfies reports whether word is consistent with the line under MatchCounts.
func (l Line) Satisfies(word string) bool {
	return l.match([]rune(word), MatchCounts)
}

// SatisfiesPositional reports whether word is consistent with the line under
// MatchPositional.
func (l Line) SatisfiesPositional(word string) bool {
	return l.match([]rune(word), MatchPositional)
}

func (l Line) match(word []rune, mode MatchMode) bool {
	if len(word) != len(l.letters) {
		return false
	}
	// Positional pass. Existing and inexistent both forbid the letter here.
	for i, lt := range l.letters {
		if (lt.Outcome == Good) != (word[i] == lt.Char) {
			return false
		}
	}
	if mode == MatchPositional {
		return l.matchPresence(word)
	}
	return l.matchBudgets(word)
}

func (l Line) matchPresence(word []rune) bool {
	for _, lt := range l.letters {
		switch lt.Outcome {
		case Inexistent:
			if countRune(word, lt.Char) > 0 {
				return false
			}
		case Existing:
			if countRune(word, lt.Char) == 0 {
				return false
			}
		}
	}
	return true
}

// matchBudgets checks, for each distinct guessed letter, that the candidate holds
// at least as many copies as were reported good/existing, and exactly that many
// when one copy came back inexistent.
func (l Line) matchBudgets(word []rune) bool {
	for i, lt := range l.letters {
		if seenBefore(l.letters[:i], lt.Char) {
			continue
		}
		known, capped := 0, false
		for _, other := range l.letters[i:] {
			if other.Char != lt.Char {
				continue
			}
			if other.Outcome == Inexistent {
				capped = true
			} else {
				known++
			}
		}
		have := countRune(word, lt.Char)
		if have < known || (capped && have != known) {
			return false
		}
	}
	return true
}

func seenBefore(letters []Letter, r rune) bool {
	for _, lt := range letters {
		if lt.Char == r {
			return true
		}
	}
	return false
}

func countRune(word []rune, r rune) int {
	n := 0
	for _, c := range word {
		if c == r {
			n++
		}
	}
	return n
}
