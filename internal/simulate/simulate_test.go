package simulate

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/robalobadob/wordle-solver/internal/game"
)

var words = []string{"crane", "slate", "pious", "shell", "there"}

func TestPlay_FirstWordIsAnswer(t *testing.T) {
	r, err := Play(words, "crane", Options{Attempts: 6})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !r.Solved || r.Guesses != 1 {
		t.Fatalf("expected solved in 1, got %+v", r)
	}
}

func TestPlay_Trail(t *testing.T) {
	r, err := Play(words, "pious", Options{Attempts: 6})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !r.Solved || r.Guesses != 2 {
		t.Fatalf("expected solved in 2, got %+v", r)
	}
	got := []string{r.Trail[0].String(), r.Trail[1].String()}
	if diff := cmp.Diff([]string{"crane/*****", "pious/pious"}, got); diff != "" {
		t.Fatalf("unexpected trail (-want +got):\n%s", diff)
	}
}

func TestPlay_OutOfAttempts(t *testing.T) {
	r, err := Play(words, "pious", Options{Attempts: 1})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if r.Solved || r.Guesses != 1 || r.Err != nil {
		t.Fatalf("expected unsolved after 1 guess, got %+v", r)
	}
}

func TestPlay_AnswerNotInCorpus(t *testing.T) {
	r, err := Play([]string{"crane"}, "zzzzz", Options{Attempts: 6})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if r.Solved || !errors.Is(r.Err, ErrNoCandidates) {
		t.Fatalf("expected ErrNoCandidates, got %+v", r)
	}
}

func TestPlay_BadInput(t *testing.T) {
	if _, err := Play(words, "", Options{Attempts: 6}); err == nil {
		t.Fatalf("expected error for empty answer")
	}
	if _, err := Play(words, "crane", Options{}); err == nil {
		t.Fatalf("expected error for zero attempts")
	}
}

func TestFrequencyScorer(t *testing.T) {
	s := FrequencyScorer([]string{"crane", "slate", "pious"})
	cases := map[string]float64{"slate": 8, "crane": 7, "pious": 6, "eeeee": 2, "zzzzz": 0}
	for w, want := range cases {
		if got := s.Score(w); got != want {
			t.Fatalf("Score(%q) = %v, expected %v", w, got, want)
		}
	}
}

func TestPlay_UsesScorer(t *testing.T) {
	list := []string{"crane", "slate", "pious"}
	r, err := Play(list, "pious", Options{Attempts: 6, Scorer: FrequencyScorer(list)})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if r.Trail[0].Word() != "slate" {
		t.Fatalf("expected highest-scoring opener slate, got %q", r.Trail[0].Word())
	}
	if !r.Solved || r.Guesses != 2 {
		t.Fatalf("expected solved in 2, got %+v", r)
	}
}

func TestRunAll(t *testing.T) {
	sum, err := RunAll(context.Background(), words, words, 2, Options{Attempts: 6, Mode: game.MatchCounts})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if sum.Games != 5 || sum.Solved != 5 || len(sum.Failed) != 0 {
		t.Fatalf("expected every answer solved, got %+v", sum)
	}
	total := 0
	for _, v := range sum.Histogram {
		total += v
	}
	if total != 5 || sum.Histogram[1] != 1 {
		t.Fatalf("unexpected histogram %v", sum.Histogram)
	}
	if sum.Average() < 1 {
		t.Fatalf("expected average >= 1, got %v", sum.Average())
	}

	var buf bytes.Buffer
	sum.Fprint(&buf)
	if !strings.Contains(buf.String(), "solved 5/5") {
		t.Fatalf("unexpected report:\n%s", buf.String())
	}
}

func TestRunAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := RunAll(ctx, words, words, 1, Options{Attempts: 6}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSummary_Failed(t *testing.T) {
	sum, err := RunAll(context.Background(), []string{"crane"}, []string{"zzzzz"}, 0, Options{Attempts: 3})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if diff := cmp.Diff([]string{"zzzzz"}, sum.Failed); diff != "" {
		t.Fatalf("unexpected failures (-want +got):\n%s", diff)
	}
	if sum.Average() != 0 {
		t.Fatalf("expected 0 average with nothing solved, got %v", sum.Average())
	}
}
