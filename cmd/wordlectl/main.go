// Command wordlectl is the terminal companion to the solver server.
//
//	wordlectl assist   [-corpus SRC] [-length 5] [-attempts 6] [-mode counts] [-show 50]
//	wordlectl simulate [-corpus SRC] [-length 5] [-attempts 6] (-answer W | -daily | -all) [-workers N]
//	wordlectl import   [-corpus SRC] -db PATH
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/assist"
	"github.com/robalobadob/wordle-solver/internal/config"
	"github.com/robalobadob/wordle-solver/internal/corpus"
	"github.com/robalobadob/wordle-solver/internal/daily"
	"github.com/robalobadob/wordle-solver/internal/game"
	"github.com/robalobadob/wordle-solver/internal/simulate"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: wordlectl <assist|simulate|import> [flags]")
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	os.Exit(run(os.Args[1:]))
}

// run executes one subcommand and returns the process exit code.
func run(args []string) int {
	cfg := config.Load()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if len(args) < 1 {
		usage()
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch args[0] {
	case "assist":
		err = runAssist(ctx, cfg, args[1:])
	case "simulate":
		err = runSimulate(ctx, cfg, args[1:])
	case "import":
		err = runImport(ctx, cfg, args[1:])
	default:
		usage()
		return 2
	}
	if err != nil {
		log.Error().Err(err).Msg(args[0])
		return 1
	}
	return 0
}

// common registers the flags shared by assist and simulate.
type common struct {
	corpus   *string
	length   *int
	attempts *int
	mode     *string
}

func commonFlags(fs *flag.FlagSet, cfg config.Config) common {
	return common{
		corpus:   fs.String("corpus", cfg.CorpusSource, "word list: file, http(s) URL, sqlite:<path>, or empty for the built-in list"),
		length:   fs.Int("length", cfg.WordLength, "word length"),
		attempts: fs.Int("attempts", cfg.Attempts, "number of attempts"),
		mode:     fs.String("mode", string(cfg.MatchMode), "duplicate-letter matching: counts or positional"),
	}
}

func (c common) load(ctx context.Context, cfg config.Config) ([]string, game.MatchMode, error) {
	mode, err := game.ParseMatchMode(*c.mode)
	if err != nil {
		return nil, "", err
	}
	if *c.length < 1 || *c.attempts < 1 {
		return nil, "", fmt.Errorf("length and attempts must be positive")
	}
	cp, err := corpus.Load(ctx, *c.corpus, corpus.WithFetchTimeout(cfg.FetchTimeout))
	if err != nil {
		return nil, "", err
	}
	words := cp.OfLength(*c.length)
	if len(words) == 0 {
		return nil, "", fmt.Errorf("corpus has no %d-letter words", *c.length)
	}
	return words, mode, nil
}

func runAssist(ctx context.Context, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("assist", flag.ExitOnError)
	cf := commonFlags(fs, cfg)
	show := fs.Int("show", 50, "max candidates printed per turn (0 = all)")
	suggest := fs.Bool("suggest", true, "print letter-frequency suggestions")
	_ = fs.Parse(args)

	words, mode, err := cf.load(ctx, cfg)
	if err != nil {
		return err
	}
	opts := assist.Options{Show: *show}
	if *suggest {
		opts.Scorer = simulate.FrequencyScorer(words)
	}
	g := game.New(words, *cf.attempts, *cf.length, game.WithMatchMode(mode))
	_, err = assist.Run(ctx, os.Stdin, os.Stdout, g, opts)
	return err
}

func runSimulate(ctx context.Context, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	cf := commonFlags(fs, cfg)
	answer := fs.String("answer", "", "answer to solve for")
	today := fs.Bool("daily", false, "solve for today's daily word")
	all := fs.Bool("all", false, "solve for every word of the corpus")
	workers := fs.Int("workers", runtime.GOMAXPROCS(0), "parallel games for -all")
	unscored := fs.Bool("unscored", false, "guess in corpus order instead of by letter frequency")
	_ = fs.Parse(args)

	words, mode, err := cf.load(ctx, cfg)
	if err != nil {
		return err
	}
	opts := simulate.Options{Attempts: *cf.attempts, Mode: mode}
	if !*unscored {
		opts.Scorer = simulate.FrequencyScorer(words)
	}

	if *all {
		start := time.Now()
		sum, err := simulate.RunAll(ctx, words, words, *workers, opts)
		if err != nil {
			return err
		}
		sum.Fprint(os.Stdout)
		log.Info().Dur("elapsed", time.Since(start)).Int("games", sum.Games).Msg("simulation done")
		return nil
	}

	target := strings.ToLower(strings.TrimSpace(*answer))
	if *today {
		target = daily.Answer(time.Now(), cfg.DailySalt, words)
	}
	if target == "" {
		return fmt.Errorf("one of -answer, -daily or -all is required")
	}
	if n := utf8.RuneCountInString(target); n != *cf.length {
		return fmt.Errorf("answer %q has %d letters, expected %d", target, n, *cf.length)
	}

	res, err := simulate.Play(words, target, opts)
	if err != nil {
		return err
	}
	for i, l := range res.Trail {
		fmt.Printf("%d: %s  %s\n", i+1, l.Word(), l.Mask())
	}
	switch {
	case res.Solved:
		fmt.Printf("solved in %d/%d\n", res.Guesses, *cf.attempts)
	case res.Err != nil:
		fmt.Printf("gave up after %d: %v\n", res.Guesses, res.Err)
	default:
		fmt.Printf("not solved in %d attempts\n", *cf.attempts)
	}
	return nil
}

func runImport(ctx context.Context, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	src := fs.String("corpus", cfg.CorpusSource, "word list to import: file, http(s) URL, or empty for the built-in list")
	dbPath := fs.String("db", "", "SQLite database path")
	_ = fs.Parse(args)
	if *dbPath == "" {
		return fmt.Errorf("-db is required")
	}

	cp, err := corpus.Load(ctx, *src, corpus.WithFetchTimeout(cfg.FetchTimeout))
	if err != nil {
		return err
	}
	db, err := corpus.OpenDB(*dbPath)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := corpus.Migrate(ctx, db); err != nil {
		return err
	}
	n, err := corpus.Import(ctx, db, cp.Words())
	if err != nil {
		return err
	}
	log.Info().Int("inserted", n).Int("words", cp.Len()).Str("db", *dbPath).Msg("import done")
	fmt.Printf("imported %d new words into %s (use SOLVER_CORPUS=sqlite:%s)\n", n, *dbPath, *dbPath)
	return nil
}
