package game

import "iter"

// RankingLimit caps the number of suggestions produced by Rank.
const RankingLimit = 10

// Scorer assigns a metric to a candidate word.
type Scorer interface {
	Score(word string) float64
}

// ScorerFunc adapts a function to Scorer.
type ScorerFunc func(word string) float64

func (f ScorerFunc) Score(word string) float64 { return f(word) }

// Unscored is the default scorer: every word gets the same metric, so the
// ranking carries no information beyond corpus order.
var Unscored Scorer = ScorerFunc(func(string) float64 { return 0 })

// Rank yields at most RankingLimit (word, metric) pairs from a fresh Candidates
// sequence, in corpus order. A nil scorer means Unscored. Pairs are not sorted
// by metric.
func (g *Game) Rank(s Scorer) iter.Seq2[string, float64] {
	if s == nil {
		s = Unscored
	}
	candidates := g.Candidates()
	return func(yield func(string, float64) bool) {
		taken := 0
		for word := range candidates {
			if !yield(word, s.Score(word)) {
				return
			}
			if taken++; taken == RankingLimit {
				return
			}
		}
	}
}
