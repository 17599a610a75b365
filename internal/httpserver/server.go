// internal/httpserver/server.go
//
// HTTP server wiring for the solver backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Session endpoints: POST /session/new opens a solving session and hands
//     back a signed token; the rest of /session requires that token.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so cookies work).
//   - Sessions live in the store only; the token carries nothing but the session ID.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/corpus"
	"github.com/robalobadob/wordle-solver/internal/game"
	"github.com/robalobadob/wordle-solver/internal/store"
)

// Options configure a Server.
type Options struct {
	Secret        []byte        // HMAC key for session tokens
	TTL           time.Duration // session idle lifetime; tokens are re-issued per request
	ClientOrigin  string        // CORS origin
	SecureCookies bool

	// Defaults for POST /session/new.
	WordLength int
	Attempts   int
	Mode       game.MatchMode

	// Scorer feeds /session/suggestions. Nil means game.Unscored.
	Scorer game.Scorer
}

// Server bundles router, session store and word list.
type Server struct {
	r      *chi.Mux
	store  store.Store
	corpus *corpus.Corpus
	opts   Options
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, c *corpus.Corpus, opts Options) *Server {
	if opts.TTL <= 0 {
		opts.TTL = 2 * time.Hour
	}
	if opts.ClientOrigin == "" {
		opts.ClientOrigin = "http://localhost:5173"
	}
	s := &Server{r: chi.NewRouter(), store: st, corpus: c, opts: opts}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(accessLog)                       // zerolog request line
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(opts.ClientOrigin))         // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-solver","endpoints":["/health","/debug/words","POST /session/new","POST /session/guess","POST /session/exclude","/session/candidates","/session/suggestions","/session"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"words": s.corpus.Len(), "byLength": s.corpus.Lengths()})
	})

	s.r.Route("/session", func(r chi.Router) {
		r.Post("/new", s.handleNewSession)

		// Everything else needs a session token.
		r.Group(func(r chi.Router) {
			r.Use(s.requireSession)
			r.Get("/", s.handleView)
			r.Delete("/", s.handleDelete)
			r.Post("/guess", s.handleGuess)
			r.Post("/exclude", s.handleExclude)
			r.Get("/candidates", s.handleCandidates)
			r.Get("/suggestions", s.handleSuggestions)
		})
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", map[string]any{"path": r.URL.Path})
	})

	return s
}

// Start serves HTTP on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	hs := &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 5 * time.Second}
	errc := make(chan error, 1)
	go func() { errc <- hs.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := hs.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Sweep drops idle sessions every interval until ctx is done.
func (s *Server) Sweep(ctx context.Context, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			if n := s.store.Sweep(ctx, now.Add(-s.opts.TTL)); n > 0 {
				log.Info().Int("sessions", n).Msg("swept idle sessions")
			}
		}
	}
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Expose-Headers", tokenHeader)
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// accessLog writes one zerolog line per request.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			log.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", time.Since(start)).
				Str("requestId", chimw.GetReqID(r.Context())).
				Msg("request")
		}()
		next.ServeHTTP(ww, r)
	})
}

// ------------------------------- helpers -----------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

// writeError responds with {"error": code, ...extra}.
func writeError(w http.ResponseWriter, status int, code string, extra map[string]any) {
	body := map[string]any{"error": code}
	for k, v := range extra {
		body[k] = v
	}
	writeJSON(w, status, body)
}
