package game

import (
	"errors"
	"fmt"
)

var (
	ErrWordLength      = errors.New("invalid guess length")
	ErrNoMoreAttempts  = errors.New("no more attempts")
	ErrAlreadyExcluded = errors.New("word already excluded")
	ErrInvalidLength   = errors.New("invalid word length")
	ErrMaskLength      = errors.New("word and mask lengths differ")
)

// AddGuessError is returned by Game.AddGuess. The rejected line is handed back
// so the caller can correct and resubmit it.
type AddGuessError struct {
	Guess          Line
	Kind           error // ErrWordLength or ErrNoMoreAttempts
	ExpectedLength int   // set for ErrWordLength
	TotalAttempts  int   // set for ErrNoMoreAttempts
}

func (e *AddGuessError) Error() string {
	if e == nil {
		return ""
	}
	switch e.Kind {
	case ErrWordLength:
		return fmt.Sprintf("%s: got %d letters, expected %d", e.Kind, e.Guess.Len(), e.ExpectedLength)
	case ErrNoMoreAttempts:
		return fmt.Sprintf("%s: all %d attempts used", e.Kind, e.TotalAttempts)
	}
	return e.Kind.Error()
}

func (e *AddGuessError) Unwrap() error { return e.Kind }

// ExcludeWordError is returned by Game.Exclude.
type ExcludeWordError struct {
	Word           string
	Kind           error // ErrAlreadyExcluded or ErrInvalidLength
	ExpectedLength int   // set for ErrInvalidLength
}

func (e *ExcludeWordError) Error() string {
	if e == nil {
		return ""
	}
	if e.Kind == ErrInvalidLength {
		return fmt.Sprintf("%s: %q, expected %d letters", e.Kind, e.Word, e.ExpectedLength)
	}
	return fmt.Sprintf("%s: %q", e.Kind, e.Word)
}

func (e *ExcludeWordError) Unwrap() error { return e.Kind }
