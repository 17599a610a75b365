// main.go
//
// Entry point for the solver HTTP server.
// Loads configuration, the word corpus and the session store, then serves
// the session API until interrupted.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/config"
	"github.com/robalobadob/wordle-solver/internal/corpus"
	"github.com/robalobadob/wordle-solver/internal/httpserver"
	"github.com/robalobadob/wordle-solver/internal/simulate"
	"github.com/robalobadob/wordle-solver/internal/store"
)

func main() {
	cfg := config.Load()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if cfg.DevSecret() {
		log.Warn().Msg("SESSION_SECRET not set; using development secret")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := corpus.Load(ctx, cfg.CorpusSource, corpus.WithFetchTimeout(cfg.FetchTimeout))
	if err != nil {
		stop()
		log.Fatal().Err(err).Msg("failed to load word corpus")
	}
	log.Info().Int("words", c.Len()).Ints("lengths", c.SortedLengths()).Msg("corpus ready")

	srv := httpserver.New(store.NewMemoryStore(), c, httpserver.Options{
		Secret:        []byte(cfg.SessionSecret),
		TTL:           cfg.SessionTTL,
		ClientOrigin:  cfg.ClientOrigin,
		SecureCookies: cfg.SecureCookies,
		WordLength:    cfg.WordLength,
		Attempts:      cfg.Attempts,
		Mode:          cfg.MatchMode,
		Scorer:        simulate.FrequencyScorer(c.Words()),
	})
	go srv.Sweep(ctx, time.Minute)

	log.Info().Str("port", cfg.Port).Msg("starting solver server")
	if err := srv.Start(ctx, ":"+cfg.Port); err != nil {
		stop()
		log.Fatal().Err(err).Msg("server exited")
	}
	log.Info().Msg("server stopped")
}
