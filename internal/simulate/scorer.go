package simulate

import "github.com/robalobadob/wordle-solver/internal/game"

// FrequencyScorer rates a word by how many corpus words contain each of its
// distinct letters. Words covering common letters rank higher.
func FrequencyScorer(words []string) game.Scorer {
	freq := make(map[rune]int)
	for _, w := range words {
		seen := make(map[rune]bool)
		for _, r := range w {
			if !seen[r] {
				seen[r] = true
				freq[r]++
			}
		}
	}
	return game.ScorerFunc(func(word string) float64 {
		seen := make(map[rune]bool)
		total := 0
		for _, r := range word {
			if !seen[r] {
				seen[r] = true
				total += freq[r]
			}
		}
		return float64(total)
	})
}
