package config

import (
	"testing"
	"time"

	"github.com/robalobadob/wordle-solver/internal/game"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{
		"PORT", "LOG_LEVEL", "CLIENT_ORIGIN", "SOLVER_CORPUS", "SOLVER_WORD_LENGTH",
		"SOLVER_ATTEMPTS", "SOLVER_MATCH_MODE", "SESSION_SECRET", "SESSION_TTL",
		"CORPUS_FETCH_TIMEOUT", "DAILY_SALT", "COOKIE_SECURE",
	} {
		t.Setenv(k, "")
	}
	c := FromEnv()
	if c.Port != "5175" || c.LogLevel != "info" || c.CorpusSource != "" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.WordLength != 5 || c.Attempts != 6 || c.MatchMode != game.MatchCounts {
		t.Fatalf("unexpected game defaults: %+v", c)
	}
	if c.SessionTTL != 2*time.Hour || c.FetchTimeout != 20*time.Second {
		t.Fatalf("unexpected durations: %+v", c)
	}
	if c.SecureCookies || !c.DevSecret() || c.DailySalt != "local_dev_salt" {
		t.Fatalf("unexpected session defaults: %+v", c)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SOLVER_CORPUS", "sqlite:./data/words.db")
	t.Setenv("SOLVER_WORD_LENGTH", "6")
	t.Setenv("SOLVER_ATTEMPTS", "8")
	t.Setenv("SOLVER_MATCH_MODE", "positional")
	t.Setenv("SESSION_TTL", "15m")
	t.Setenv("COOKIE_SECURE", "true")
	c := FromEnv()
	if c.Port != "9000" || c.CorpusSource != "sqlite:./data/words.db" {
		t.Fatalf("unexpected values: %+v", c)
	}
	if c.WordLength != 6 || c.Attempts != 8 || c.MatchMode != game.MatchPositional {
		t.Fatalf("unexpected game values: %+v", c)
	}
	if c.SessionTTL != 15*time.Minute || !c.SecureCookies {
		t.Fatalf("unexpected session values: %+v", c)
	}
}

func TestFromEnv_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("SOLVER_WORD_LENGTH", "five")
	t.Setenv("SOLVER_ATTEMPTS", "-2")
	t.Setenv("SOLVER_MATCH_MODE", "fuzzy")
	t.Setenv("SESSION_TTL", "soon")
	c := FromEnv()
	if c.WordLength != 5 || c.Attempts != 6 || c.MatchMode != game.MatchCounts || c.SessionTTL != 2*time.Hour {
		t.Fatalf("expected fallbacks, got %+v", c)
	}
}
