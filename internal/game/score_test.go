package game

import (
	"errors"
	"testing"
)

func TestScore_Masks(t *testing.T) {
	cases := []struct {
		answer, guess, mask string
	}{
		{"there", "eerie", "?*?*e"},
		{"crane", "crane", "crane"},
		{"crane", "trace", "*ra?e"},
		{"shell", "llama", "??***"},
		{"abbey", "kebab", "*?b??"},
	}
	for _, tc := range cases {
		l, err := Score(tc.answer, tc.guess)
		if err != nil {
			t.Fatalf("Score(%q, %q): expected nil error, got %v", tc.answer, tc.guess, err)
		}
		if got := l.Mask(); got != tc.mask {
			t.Fatalf("Score(%q, %q) = %q, expected %q", tc.answer, tc.guess, got, tc.mask)
		}
		if l.Word() != tc.guess {
			t.Fatalf("expected line word %q, got %q", tc.guess, l.Word())
		}
	}
}

func TestScore_LengthMismatch(t *testing.T) {
	if _, err := Score("crane", "cranes"); !errors.Is(err, ErrWordLength) {
		t.Fatalf("expected ErrWordLength, got %v", err)
	}
}

// The answer must always survive its own feedback under count-aware matching.
func TestScore_AnswerSatisfiesItsFeedback(t *testing.T) {
	for _, answer := range fiveLetter {
		for _, guess := range fiveLetter {
			l, err := Score(answer, guess)
			if err != nil {
				t.Fatalf("expected nil error, got %v", err)
			}
			if !l.Satisfies(answer) {
				t.Fatalf("answer %q rejected by its own feedback %s", answer, l)
			}
		}
	}
}
