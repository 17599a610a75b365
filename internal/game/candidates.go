package game

import (
	"iter"
	"slices"
)

// Candidates returns the corpus words, in corpus order, that satisfy every
// accepted line and are not excluded.
//
// The sequence is lazy: words are tested only as they are pulled, and breaking
// out of a range stops the scan. Each range re-scans the corpus from the start.
// Lines and exclusions are captured when Candidates is called, so later calls
// to AddGuess or Exclude never affect a sequence already handed out.
func (g *Game) Candidates() iter.Seq[string] {
	corpus := g.corpus
	lines := slices.Clone(g.lines)
	excluded := g.excluded.clone()
	mode := g.mode
	return func(yield func(string) bool) {
		for _, word := range corpus {
			if !satisfiesAll(lines, word, mode) || excluded.Contains(word) {
				continue
			}
			if !yield(word) {
				return
			}
		}
	}
}

func satisfiesAll(lines []Line, word string, mode MatchMode) bool {
	if len(lines) == 0 {
		return true
	}
	rs := []rune(word)
	for _, l := range lines {
		if !l.match(rs, mode) {
			return false
		}
	}
	return true
}

// Count drains seq and returns the number of items.
func Count[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

// Collect gathers up to limit items from seq. A limit <= 0 collects everything.
func Collect[T any](seq iter.Seq[T], limit int) []T {
	var out []T
	for v := range seq {
		out = append(out, v)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
