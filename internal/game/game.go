// internal/game/game.go
//
// Game state for a single solving session.
// Responsibilities:
//   - Own the corpus (cloned at construction, never mutated).
//   - Accept feedback lines up to the attempt ceiling, rejecting lines whose
//     length differs from the word length.
//   - Maintain the exclusion set.
//
// Constraints only accumulate: nothing removes an accepted line or an excluded
// word. A Game is not safe for concurrent use; hosts serialize access per
// session (see internal/store).

package game

import (
	"fmt"
	"slices"
)

// Game accumulates feedback against a fixed corpus.
type Game struct {
	corpus     []string
	wordLength int
	attempts   int
	mode       MatchMode
	lines      []Line
	excluded   *ExclusionSet
}

// Option configures a Game at construction.
type Option func(*Game)

// WithMatchMode selects the satisfaction rule. Unknown modes fall back to MatchCounts.
func WithMatchMode(m MatchMode) Option {
	return func(g *Game) {
		if m == MatchPositional {
			g.mode = MatchPositional
		}
	}
}

// New constructs a game over corpus. Every corpus word is assumed to have
// wordLength runes; this is not re-checked.
//
// New panics if attempts or wordLength is not positive: such a game could never
// accept a line, so it is treated as a programming error rather than input.
func New(corpus []string, attempts, wordLength int, opts ...Option) *Game {
	if attempts < 1 {
		panic(fmt.Sprintf("game: attempts must be positive, got %d", attempts))
	}
	if wordLength < 1 {
		panic(fmt.Sprintf("game: word length must be positive, got %d", wordLength))
	}
	g := &Game{
		corpus:     slices.Clone(corpus),
		wordLength: wordLength,
		attempts:   attempts,
		mode:       MatchCounts,
		lines:      make([]Line, 0, min(attempts, 16)),
		excluded:   NewExclusionSet(wordLength),
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// AddGuess appends a feedback line.
//
// Errors (always *AddGuessError, carrying the rejected line):
//   - ErrNoMoreAttempts when the ceiling is already reached (checked first).
//   - ErrWordLength when the line's length differs from the word length.
func (g *Game) AddGuess(line Line) error {
	if len(g.lines) == g.attempts {
		return &AddGuessError{Guess: line, Kind: ErrNoMoreAttempts, TotalAttempts: g.attempts}
	}
	if line.Len() != g.wordLength {
		return &AddGuessError{Guess: line, Kind: ErrWordLength, ExpectedLength: g.wordLength}
	}
	g.lines = append(g.lines, line)
	return nil
}

// Exclude removes word from candidacy regardless of the feedback.
// Errors are *ExcludeWordError wrapping ErrAlreadyExcluded or ErrInvalidLength.
func (g *Game) Exclude(word string) error {
	return g.excluded.Add(word)
}

// IsExcluded reports whether word was excluded.
func (g *Game) IsExcluded(word string) bool { return g.excluded.Contains(word) }

// PerformedGuesses returns the number of accepted lines.
func (g *Game) PerformedGuesses() int { return len(g.lines) }

func (g *Game) AttemptsAllowed() int { return g.attempts }
func (g *Game) WordLength() int      { return g.wordLength }
func (g *Game) CorpusSize() int      { return len(g.corpus) }
func (g *Game) Mode() MatchMode      { return g.mode }

// Exhausted reports whether every attempt has been used.
func (g *Game) Exhausted() bool { return len(g.lines) == g.attempts }

// Lines returns the accepted lines in order.
func (g *Game) Lines() []Line { return slices.Clone(g.lines) }

// Excluded returns the excluded words in insertion order.
func (g *Game) Excluded() []string { return g.excluded.Words() }
