// Package simulate plays the solver against known answers: one game at a
// time with Play, or every word of a list in parallel with RunAll.
package simulate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle-solver/internal/game"
)

// ErrNoCandidates means the filter ran dry before the answer was found.
// It only happens when the answer is missing from the word list or the
// positional match mode eliminated it.
var ErrNoCandidates = errors.New("no candidates left")

// Options tune a simulated game.
type Options struct {
	Attempts int
	Mode     game.MatchMode
	Scorer   game.Scorer
}

// Result is the outcome of one simulated game.
type Result struct {
	Answer  string
	Solved  bool
	Guesses int
	Trail   []game.Line
	Err     error
}

// Play solves for answer using words as the corpus. Each turn it takes the
// best-scoring word of the ranking (first one on ties), scores it against
// the answer and feeds the feedback back into the game.
func Play(words []string, answer string, opts Options) (Result, error) {
	n := utf8.RuneCountInString(answer)
	if n == 0 {
		return Result{}, fmt.Errorf("simulate: empty answer")
	}
	if opts.Attempts < 1 {
		return Result{}, fmt.Errorf("simulate: attempts must be positive, got %d", opts.Attempts)
	}
	g := game.New(words, opts.Attempts, n, game.WithMatchMode(opts.Mode))
	res := Result{Answer: answer}
	for !g.Exhausted() {
		guess, ok := pick(g.Rank(opts.Scorer))
		if !ok {
			res.Err = ErrNoCandidates
			break
		}
		line, err := game.Score(answer, guess)
		if err != nil {
			return res, err
		}
		if err := g.AddGuess(line); err != nil {
			return res, err
		}
		res.Trail = append(res.Trail, line)
		res.Guesses = g.PerformedGuesses()
		if line.Solved() {
			res.Solved = true
			break
		}
	}
	return res, nil
}

func pick(ranked iter.Seq2[string, float64]) (string, bool) {
	best, bestScore, found := "", 0.0, false
	for w, m := range ranked {
		if !found || m > bestScore {
			best, bestScore, found = w, m, true
		}
	}
	return best, found
}

// Summary aggregates a RunAll.
type Summary struct {
	Games     int
	Solved    int
	Histogram map[int]int // guesses -> solved games
	Failed    []string
}

// Average returns the mean guess count over solved games.
func (s Summary) Average() float64 {
	if s.Solved == 0 {
		return 0
	}
	sum := 0
	for k, v := range s.Histogram {
		sum += k * v
	}
	return float64(sum) / float64(s.Solved)
}

// RunAll plays every word of answers against words, at most workers games
// at a time (workers <= 0 means no limit).
func RunAll(ctx context.Context, words, answers []string, workers int, opts Options) (Summary, error) {
	results := make([]Result, len(answers))
	eg, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}
	for i, answer := range answers {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := Play(words, answer, opts)
			if err != nil {
				return fmt.Errorf("play %q: %w", answer, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Summary{}, err
	}

	sum := Summary{Games: len(results), Histogram: make(map[int]int)}
	for _, r := range results {
		if r.Solved {
			sum.Solved++
			sum.Histogram[r.Guesses]++
		} else {
			sum.Failed = append(sum.Failed, r.Answer)
		}
	}
	return sum, nil
}

// Fprint writes a guess-count histogram with cumulative totals.
func (s Summary) Fprint(w io.Writer) {
	keys := make([]int, 0, len(s.Histogram))
	for k := range s.Histogram {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	cum := 0
	for _, k := range keys {
		cum += s.Histogram[k]
		fmt.Fprintf(w, "%2d: %5d/%d (cum. %d/%d)\n", k, s.Histogram[k], s.Games, cum, s.Games)
	}
	fmt.Fprintf(w, "solved %d/%d, average %.3f guesses\n", s.Solved, s.Games, s.Average())
	if len(s.Failed) > 0 {
		fmt.Fprintf(w, "failed: %s\n", strings.Join(s.Failed, " "))
	}
}
