// internal/config/config.go
//
// Process configuration, read from the environment.
// A .env file in the working directory is loaded first (if present); real
// environment variables win over it.
//
// Environment variables:
//   PORT                  HTTP listen port (default 5175)
//   LOG_LEVEL             zerolog level name (default info)
//   CLIENT_ORIGIN         CORS origin (default http://localhost:5173)
//   SOLVER_CORPUS         corpus source: file path, http(s) URL, sqlite:<path>, or empty for the embedded list
//   SOLVER_WORD_LENGTH    default word length for new sessions (default 5)
//   SOLVER_ATTEMPTS       default attempt ceiling (default 6)
//   SOLVER_MATCH_MODE     counts | positional (default counts)
//   SESSION_SECRET        HMAC secret for session tokens
//   SESSION_TTL           session idle lifetime, Go duration (default 2h)
//   COOKIE_SECURE         "true" marks the session cookie Secure + SameSite=None
//   CORPUS_FETCH_TIMEOUT  timeout for URL corpus sources (default 20s)
//   DAILY_SALT            salt for the daily answer picker

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/game"
)

const devSecret = "dev_secret_change_me"

// Config holds every tunable of the server and CLI.
type Config struct {
	Port          string
	LogLevel      string
	ClientOrigin  string
	CorpusSource  string
	WordLength    int
	Attempts      int
	MatchMode     game.MatchMode
	SessionSecret string
	SessionTTL    time.Duration
	SecureCookies bool
	FetchTimeout  time.Duration
	DailySalt     string
}

// Load reads .env (if any) and the environment.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads the environment only.
func FromEnv() Config {
	c := Config{
		Port:          getEnv("PORT", "5175"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		ClientOrigin:  getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		CorpusSource:  os.Getenv("SOLVER_CORPUS"),
		WordLength:    envInt("SOLVER_WORD_LENGTH", 5),
		Attempts:      envInt("SOLVER_ATTEMPTS", 6),
		SessionSecret: getEnv("SESSION_SECRET", devSecret),
		SessionTTL:    envDuration("SESSION_TTL", 2*time.Hour),
		SecureCookies: envBool("COOKIE_SECURE", false),
		FetchTimeout:  envDuration("CORPUS_FETCH_TIMEOUT", 20*time.Second),
		DailySalt:     getEnv("DAILY_SALT", "local_dev_salt"),
	}
	mode, err := game.ParseMatchMode(os.Getenv("SOLVER_MATCH_MODE"))
	if err != nil {
		log.Warn().Err(err).Msg("falling back to counts match mode")
		mode = game.MatchCounts
	}
	c.MatchMode = mode
	if c.WordLength < 1 {
		log.Warn().Int("wordLength", c.WordLength).Msg("SOLVER_WORD_LENGTH must be positive, using 5")
		c.WordLength = 5
	}
	if c.Attempts < 1 {
		log.Warn().Int("attempts", c.Attempts).Msg("SOLVER_ATTEMPTS must be positive, using 6")
		c.Attempts = 6
	}
	return c
}

// DevSecret reports whether the session secret is the built-in development value.
func (c Config) DevSecret() bool { return c.SessionSecret == devSecret }

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", k).Str("value", v).Msg("not an integer, using default")
		return def
	}
	return n
}

func envBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Warn().Str("key", k).Str("value", v).Msg("not a boolean, using default")
		return def
	}
	return b
}

func envDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Warn().Str("key", k).Str("value", v).Msg("not a positive duration, using default")
		return def
	}
	return d
}
