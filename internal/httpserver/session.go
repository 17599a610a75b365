package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/game"
	"github.com/robalobadob/wordle-solver/internal/store"
)

const (
	maxAttempts   = 100
	maxWordLength = 64

	defaultCandidateLimit = 100
	maxCandidateLimit     = 1000
)

// newSessionReq/Res payloads for POST /session/new. Zero fields take the
// server defaults.
type newSessionReq struct {
	WordLength int    `json:"wordLength"`
	Attempts   int    `json:"attempts"`
	Mode       string `json:"mode"`
}
type newSessionRes struct {
	Token      string         `json:"token"`
	SessionID  string         `json:"sessionId"`
	WordLength int            `json:"wordLength"`
	Attempts   int            `json:"attempts"`
	Mode       game.MatchMode `json:"mode"`
	Candidates int            `json:"candidates"`
}

// sessionView is the common response for session reads and mutations.
type sessionView struct {
	SessionID        string         `json:"sessionId"`
	WordLength       int            `json:"wordLength"`
	Attempts         int            `json:"attempts"`
	Mode             game.MatchMode `json:"mode"`
	PerformedGuesses int            `json:"performedGuesses"`
	Exhausted        bool           `json:"exhausted"`
	Lines            []lineView     `json:"lines"`
	Excluded         []string       `json:"excluded"`
	Candidates       int            `json:"candidates"`
}

type lineView struct {
	Word string `json:"word"`
	Mask string `json:"mask"`
}

func view(id string, g *game.Game) sessionView {
	lines := make([]lineView, 0, g.PerformedGuesses())
	for _, l := range g.Lines() {
		lines = append(lines, lineView{Word: l.Word(), Mask: l.Mask()})
	}
	return sessionView{
		SessionID:        id,
		WordLength:       g.WordLength(),
		Attempts:         g.AttemptsAllowed(),
		Mode:             g.Mode(),
		PerformedGuesses: g.PerformedGuesses(),
		Exhausted:        g.Exhausted(),
		Lines:            lines,
		Excluded:         g.Excluded(),
		Candidates:       game.Count(g.Candidates()),
	}
}

// handleNewSession opens a session over the words of the requested length.
func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	var req newSessionReq
	// an empty body means all defaults
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json", nil)
		return
	}
	if req.WordLength == 0 {
		req.WordLength = s.opts.WordLength
	}
	if req.Attempts == 0 {
		req.Attempts = s.opts.Attempts
	}
	mode := s.opts.Mode
	if req.Mode != "" {
		m, err := game.ParseMatchMode(req.Mode)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_mode", map[string]any{"mode": req.Mode})
			return
		}
		mode = m
	}
	if req.WordLength < 1 || req.WordLength > maxWordLength || req.Attempts < 1 || req.Attempts > maxAttempts {
		writeError(w, http.StatusBadRequest, "bad_request", map[string]any{
			"wordLength": req.WordLength, "attempts": req.Attempts,
		})
		return
	}

	words := s.corpus.OfLength(req.WordLength)
	if len(words) == 0 {
		writeError(w, http.StatusBadRequest, "no_words", map[string]any{"wordLength": req.WordLength})
		return
	}

	g := game.New(words, req.Attempts, req.WordLength, game.WithMatchMode(mode))
	sess := store.NewSession(g)
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed", nil)
		return
	}
	tok, exp, err := signToken(s.opts.Secret, sess.ID, s.opts.TTL)
	if err != nil {
		log.Error().Err(err).Msg("sign session token")
		writeError(w, http.StatusInternalServerError, "sign_failed", nil)
		return
	}
	s.setSessionCookie(w, tok, exp)
	log.Debug().Str("session", sess.ID).Int("wordLength", req.WordLength).Int("words", len(words)).Msg("session opened")

	writeJSON(w, http.StatusOK, newSessionRes{
		Token:      tok,
		SessionID:  sess.ID,
		WordLength: req.WordLength,
		Attempts:   req.Attempts,
		Mode:       mode,
		Candidates: len(words),
	})
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	var v sessionView
	_ = sess.With(func(g *game.Game) error {
		v = view(sess.ID, g)
		return nil
	})
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	if err := s.store.Delete(r.Context(), sess.ID); err != nil {
		writeError(w, http.StatusInternalServerError, "delete_failed", nil)
		return
	}
	// drop the refreshed token set by requireSession
	w.Header().Del("Set-Cookie")
	w.Header().Del(tokenHeader)
	s.clearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// guessReq carries either a word+mask pair or explicit letters.
type guessReq struct {
	Word    string      `json:"word"`
	Mask    string      `json:"mask"`
	Letters []letterReq `json:"letters"`
}
type letterReq struct {
	Char    string `json:"char"`
	Outcome string `json:"outcome"`
}

func (req guessReq) line() (game.Line, error) {
	if len(req.Letters) == 0 {
		return game.ParseMask(req.Word, req.Mask)
	}
	letters := make([]game.Letter, 0, len(req.Letters))
	for i, lr := range req.Letters {
		ch := strings.ToLower(strings.TrimSpace(lr.Char))
		if utf8.RuneCountInString(ch) != 1 {
			return game.Line{}, &badLetterError{index: i, reason: "char must be a single letter"}
		}
		out, err := game.ParseOutcome(lr.Outcome)
		if err != nil {
			return game.Line{}, &badLetterError{index: i, reason: err.Error()}
		}
		r, _ := utf8.DecodeRuneInString(ch)
		letters = append(letters, game.Letter{Char: r, Outcome: out})
	}
	return game.NewLine(letters...), nil
}

type badLetterError struct {
	index  int
	reason string
}

func (e *badLetterError) Error() string { return "letter " + strconv.Itoa(e.index) + ": " + e.reason }

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", nil)
		return
	}
	line, err := req.line()
	if err != nil {
		var ble *badLetterError
		if errors.As(err, &ble) {
			writeError(w, http.StatusBadRequest, "bad_letter", map[string]any{"index": ble.index, "reason": ble.reason})
			return
		}
		s.writeGameError(w, err)
		return
	}

	sess := sessionFrom(r)
	var v sessionView
	err = sess.With(func(g *game.Game) error {
		if err := g.AddGuess(line); err != nil {
			return err
		}
		v = view(sess.ID, g)
		return nil
	})
	if err != nil {
		s.writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

type excludeReq struct {
	Word string `json:"word"`
}

func (s *Server) handleExclude(w http.ResponseWriter, r *http.Request) {
	var req excludeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", nil)
		return
	}
	word := strings.ToLower(strings.TrimSpace(req.Word))

	sess := sessionFrom(r)
	var v sessionView
	err := sess.With(func(g *game.Game) error {
		if err := g.Exclude(word); err != nil {
			return err
		}
		v = view(sess.ID, g)
		return nil
	})
	if err != nil {
		s.writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleCandidates(w http.ResponseWriter, r *http.Request) {
	limit := defaultCandidateLimit
	if q := r.URL.Query().Get("limit"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad_limit", map[string]any{"limit": q})
			return
		}
		limit = min(n, maxCandidateLimit)
	}

	sess := sessionFrom(r)
	count := 0
	words := []string{}
	_ = sess.With(func(g *game.Game) error {
		for word := range g.Candidates() {
			if count < limit {
				words = append(words, word)
			}
			count++
		}
		return nil
	})
	writeJSON(w, http.StatusOK, map[string]any{"count": count, "words": words})
}

type suggestion struct {
	Word   string  `json:"word"`
	Metric float64 `json:"metric"`
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	out := make([]suggestion, 0, game.RankingLimit)
	_ = sess.With(func(g *game.Game) error {
		for word, m := range g.Rank(s.opts.Scorer) {
			out = append(out, suggestion{Word: word, Metric: m})
		}
		return nil
	})
	writeJSON(w, http.StatusOK, map[string]any{"suggestions": out})
}

// writeGameError maps solver errors to status codes and JSON bodies.
func (s *Server) writeGameError(w http.ResponseWriter, err error) {
	var age *game.AddGuessError
	var ewe *game.ExcludeWordError
	isGuess := errors.As(err, &age)
	isExclude := errors.As(err, &ewe)

	switch {
	case isGuess && age.Kind == game.ErrNoMoreAttempts:
		writeError(w, http.StatusConflict, "no_more_attempts", map[string]any{"totalAttempts": age.TotalAttempts})
	case isGuess && age.Kind == game.ErrWordLength:
		writeError(w, http.StatusBadRequest, "word_length", map[string]any{"expectedLength": age.ExpectedLength})
	case errors.Is(err, game.ErrMaskLength):
		writeError(w, http.StatusBadRequest, "mask_length", nil)
	case isExclude && ewe.Kind == game.ErrAlreadyExcluded:
		writeError(w, http.StatusConflict, "already_excluded", map[string]any{"word": ewe.Word})
	case isExclude && ewe.Kind == game.ErrInvalidLength:
		writeError(w, http.StatusBadRequest, "invalid_length", map[string]any{"expectedLength": ewe.ExpectedLength})
	default:
		log.Error().Err(err).Msg("unexpected solver error")
		writeError(w, http.StatusInternalServerError, "internal", nil)
		return
	}
	log.Warn().Err(err).Msg("request rejected")
}
