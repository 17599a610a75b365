// Package assist runs the interactive helper: the user types the word they
// played and the feedback mask they got, and the remaining candidates are
// printed after each turn.
package assist

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/game"
)

// Options tune the session output.
type Options struct {
	// Show caps how many candidates are printed per turn; 0 prints all.
	Show int
	// Scorer orders the suggestion line. Nil means corpus order.
	Scorer game.Scorer
}

// Outcome tells how the session ended.
type Outcome int

const (
	EndOfInput Outcome = iota
	Narrowed           // one or zero candidates left
	OutOfAttempts
)

// Run drives g from in until the input ends, the candidates are narrowed
// to at most one word, or the attempts run out.
//
// Each turn reads a word line and a mask line. A word line starting with
// '-' excludes that word instead and skips the mask.
func Run(ctx context.Context, in io.Reader, out io.Writer, g *game.Game, opts Options) (Outcome, error) {
	sc := bufio.NewScanner(in)
	read := func(prompt string) (string, bool) {
		fmt.Fprint(out, prompt)
		if !sc.Scan() {
			return "", false
		}
		return strings.TrimSpace(sc.Text()), true
	}

	fmt.Fprintf(out, "%d-letter words, %d attempts, %d candidates\n",
		g.WordLength(), g.AttemptsAllowed(), game.Count(g.Candidates()))

	for {
		if err := ctx.Err(); err != nil {
			return EndOfInput, err
		}
		word, ok := read("word: ")
		if !ok {
			return EndOfInput, sc.Err()
		}
		if word == "" {
			continue
		}

		if strings.HasPrefix(word, "-") {
			w := strings.ToLower(strings.TrimSpace(word[1:]))
			if err := g.Exclude(w); err != nil {
				fmt.Fprintln(out, describe(err))
				continue
			}
			log.Debug().Str("word", w).Msg("excluded")
			if n := printCandidates(out, g, opts); n <= 1 {
				fmt.Fprintf(out, "cannot narrow it down further; possibly solved in %d guesses\n", g.PerformedGuesses())
				return Narrowed, nil
			}
			continue
		}

		mask, ok := read("mask (* absent, ? misplaced, letter correct): ")
		if !ok {
			return EndOfInput, sc.Err()
		}
		line, err := game.ParseMask(word, mask)
		if err != nil {
			fmt.Fprintln(out, describe(err))
			continue
		}
		if err := g.AddGuess(line); err != nil {
			fmt.Fprintln(out, describe(err))
			if errors.Is(err, game.ErrNoMoreAttempts) {
				return OutOfAttempts, nil
			}
			continue
		}
		log.Debug().Stringer("line", line).Int("guesses", g.PerformedGuesses()).Msg("guess added")

		n := printCandidates(out, g, opts)
		if line.Solved() || n <= 1 {
			fmt.Fprintf(out, "cannot narrow it down further; possibly solved in %d guesses\n", g.PerformedGuesses())
			return Narrowed, nil
		}
		if g.Exhausted() {
			fmt.Fprintln(out, "no attempts left")
			return OutOfAttempts, nil
		}
		fmt.Fprintln(out, "================================")
	}
}

func printCandidates(out io.Writer, g *game.Game, opts Options) int {
	fmt.Fprintln(out, "possible words:")
	count := 0
	for w := range g.Candidates() {
		if opts.Show <= 0 || count < opts.Show {
			fmt.Fprintln(out, w)
		}
		count++
	}
	if opts.Show > 0 && count > opts.Show {
		fmt.Fprintf(out, "... and %d more\n", count-opts.Show)
	}
	fmt.Fprintf(out, "total %d\n", count)

	if count > 1 && opts.Scorer != nil {
		var best []string
		for w := range g.Rank(opts.Scorer) {
			best = append(best, w)
		}
		fmt.Fprintf(out, "try: %s\n", strings.Join(best, " "))
	}
	return count
}

func describe(err error) string {
	var age *game.AddGuessError
	var ewe *game.ExcludeWordError
	switch {
	case errors.As(err, &age) && errors.Is(err, game.ErrWordLength):
		return fmt.Sprintf("invalid guess length: expected %d letters", age.ExpectedLength)
	case errors.As(err, &age) && errors.Is(err, game.ErrNoMoreAttempts):
		return fmt.Sprintf("no more attempts (%d used)", age.TotalAttempts)
	case errors.As(err, &ewe) && errors.Is(err, game.ErrInvalidLength):
		return fmt.Sprintf("cannot exclude %q: expected %d letters", ewe.Word, ewe.ExpectedLength)
	case errors.Is(err, game.ErrAlreadyExcluded):
		return "already excluded"
	case errors.Is(err, game.ErrMaskLength):
		return "word and mask lengths differ"
	default:
		return err.Error()
	}
}
