// internal/game/score.go
//
// Feedback generation for a known answer, used by the simulator and tests.
//
// Score implements the standard two-pass algorithm:
//
// Pass 1:
//   - Mark exact matches as Good.
//   - Count the remaining (non-good) answer runes.
//
// Pass 2:
//   - For each non-good guess rune: if the answer still has an unmatched copy,
//     mark Existing and consume it; otherwise mark Inexistent.
//
// This keeps repeated letters in both answer and guess consistent with the
// count-aware matching rule.

package game

import "fmt"

// Score returns the feedback line the puzzle would report for guess when the
// solution is answer. Both must have the same rune count.
func Score(answer, guess string) (Line, error) {
	ar, gr := []rune(answer), []rune(guess)
	if len(ar) != len(gr) {
		return Line{}, fmt.Errorf("%w: answer has %d letters, guess has %d", ErrWordLength, len(ar), len(gr))
	}

	letters := make([]Letter, len(gr))
	remaining := make(map[rune]int, len(ar))

	// First pass: hits, and counts of unmatched answer runes.
	for i := range gr {
		letters[i].Char = gr[i]
		if gr[i] == ar[i] {
			letters[i].Outcome = Good
		} else {
			remaining[ar[i]]++
		}
	}

	// Second pass: present/absent for the rest.
	for i := range gr {
		if letters[i].Outcome == Good {
			continue
		}
		if remaining[gr[i]] > 0 {
			letters[i].Outcome = Existing
			remaining[gr[i]]--
		} else {
			letters[i].Outcome = Inexistent
		}
	}
	return Line{letters: letters}, nil
}
