package game

import "strings"

// ParseMask encodes a typed word and its feedback mask into a Line.
//
// Both inputs are trimmed and lowercased. Per position:
//   - '*'              -> Inexistent
//   - '?'              -> Existing
//   - the word's rune  -> Good
//
// Any other mask rune drops that position, so the line comes out shorter than
// the word; Game.AddGuess then rejects it with ErrWordLength.
// ErrMaskLength is returned when word and mask differ in length.
func ParseMask(word, mask string) (Line, error) {
	wr := []rune(strings.ToLower(strings.TrimSpace(word)))
	mr := []rune(strings.ToLower(strings.TrimSpace(mask)))
	if len(wr) != len(mr) {
		return Line{}, ErrMaskLength
	}
	letters := make([]Letter, 0, len(wr))
	for i, ch := range wr {
		switch m := mr[i]; {
		case m == '*':
			letters = append(letters, Letter{Char: ch, Outcome: Inexistent})
		case m == '?':
			letters = append(letters, Letter{Char: ch, Outcome: Existing})
		case m == ch:
			letters = append(letters, Letter{Char: ch, Outcome: Good})
		}
	}
	return Line{letters: letters}, nil
}
