package game

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// fiftyWords returns 50 distinct three-letter words with no 'y', followed by
// a few words containing 'y'.
func fiftyWords() (survivors, all []string) {
	for i := 0; i < 50; i++ {
		survivors = append(survivors, string([]rune{'x', rune('a' + i/10), rune('a' + i%10)}))
	}
	all = append([]string{"yab", "ayb"}, survivors...)
	all = append(all, "bay")
	return survivors, all
}

func TestRank_CapsAtTenInCorpusOrder(t *testing.T) {
	survivors, all := fiftyWords()
	g := New(all, 6, 3)
	if err := g.AddGuess(line("yyy", "***")); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if n := Count(g.Candidates()); n != 50 {
		t.Fatalf("expected 50 surviving candidates, got %d", n)
	}

	var words []string
	for w, m := range g.Rank(nil) {
		if m != 0 {
			t.Fatalf("expected placeholder metric 0, got %v", m)
		}
		words = append(words, w)
	}
	if diff := cmp.Diff(survivors[:RankingLimit], words); diff != "" {
		t.Fatalf("unexpected ranking (-want +got):\n%s", diff)
	}
}

func TestRank_ScorerSeam(t *testing.T) {
	survivors, _ := fiftyWords()
	g := New(survivors, 6, 3)
	calls := 0
	scorer := ScorerFunc(func(w string) float64 {
		calls++
		return float64(len(w) * 2)
	})
	n := 0
	for _, m := range g.Rank(scorer) {
		if m != 6 {
			t.Fatalf("expected metric 6, got %v", m)
		}
		n++
	}
	if n != RankingLimit || calls != RankingLimit {
		t.Fatalf("expected %d pairs and scorer calls, got %d pairs, %d calls", RankingLimit, n, calls)
	}
}

func TestRank_FewerThanLimit(t *testing.T) {
	g := New(smallCorpus, 6, 3)
	var words []string
	for w := range g.Rank(Unscored) {
		words = append(words, w)
	}
	if diff := cmp.Diff(smallCorpus, words); diff != "" {
		t.Fatalf("unexpected ranking (-want +got):\n%s", diff)
	}
}

func TestRank_EarlyBreak(t *testing.T) {
	survivors, _ := fiftyWords()
	g := New(survivors, 6, 3)
	n := 0
	for range g.Rank(nil) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Fatalf("expected to stop after 2, got %d", n)
	}
}
