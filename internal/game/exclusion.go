package game

import (
	"maps"
	"slices"
	"unicode/utf8"
)

// ExclusionSet holds words removed from candidacy by hand, in insertion order.
// Every member has exactly the set's word length (in runes).
type ExclusionSet struct {
	length int
	words  []string
	index  map[string]struct{}
}

// NewExclusionSet returns an empty set accepting words of the given length.
func NewExclusionSet(length int) *ExclusionSet {
	return &ExclusionSet{length: length, index: make(map[string]struct{})}
}

// Add inserts word. The duplicate check runs before the length check.
func (s *ExclusionSet) Add(word string) error {
	if s.Contains(word) {
		return &ExcludeWordError{Word: word, Kind: ErrAlreadyExcluded}
	}
	if utf8.RuneCountInString(word) != s.length {
		return &ExcludeWordError{Word: word, Kind: ErrInvalidLength, ExpectedLength: s.length}
	}
	s.words = append(s.words, word)
	s.index[word] = struct{}{}
	return nil
}

// Contains reports membership.
func (s *ExclusionSet) Contains(word string) bool {
	_, ok := s.index[word]
	return ok
}

// Len returns the number of excluded words.
func (s *ExclusionSet) Len() int { return len(s.words) }

// Words returns the excluded words in insertion order.
func (s *ExclusionSet) Words() []string { return slices.Clone(s.words) }

func (s *ExclusionSet) clone() *ExclusionSet {
	return &ExclusionSet{
		length: s.length,
		words:  slices.Clone(s.words),
		index:  maps.Clone(s.index),
	}
}
