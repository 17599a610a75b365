package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/store"
)

const (
	cookieName  = "solver_session"
	tokenHeader = "X-Session-Token"
)

// sessionClaims is the token payload: the session ID plus expiry.
type sessionClaims struct {
	SID string `json:"sid"`
	jwt.RegisteredClaims
}

// signToken creates an HS256 JWT for session sid, expiring after ttl.
func signToken(secret []byte, sid string, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(ttl)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		SID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	ss, err := t.SignedString(secret)
	return ss, exp, err
}

// parseToken verifies tok and returns its session ID.
func parseToken(secret []byte, tok string) (string, error) {
	claims := &sessionClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	if !t.Valid || claims.SID == "" {
		return "", errors.New("token has no session")
	}
	return claims.SID, nil
}

// bearerOrCookie extracts a bearer token from Authorization header or session cookie.
func bearerOrCookie(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(cookieName); err == nil {
		return c.Value
	}
	return ""
}

func (s *Server) setSessionCookie(w http.ResponseWriter, token string, exp time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.opts.SecureCookies,
		SameSite: s.sameSite(),
		Expires:  exp,
	})
}

func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   s.opts.SecureCookies,
		SameSite: s.sameSite(),
		MaxAge:   -1,
	})
}

// sameSite is None for secure cookies (cross-site client), Lax otherwise.
func (s *Server) sameSite() http.SameSite {
	if s.opts.SecureCookies {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}

// ctxSessionKey is the context key type for storing the *store.Session.
type ctxSessionKey struct{}

// requireSession enforces a valid token for a live session and injects the
// session into the request context. Each accepted request re-issues the token
// (cookie and X-Session-Token header) so the expiry slides with activity,
// matching the idle sweep of the store.
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok := bearerOrCookie(r)
		if tok == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized", nil)
			return
		}
		sid, err := parseToken(s.opts.Secret, tok)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid_token", nil)
			return
		}
		sess, err := s.store.Get(r.Context(), sid)
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "session_not_found", nil)
			return
		} else if err != nil {
			writeError(w, http.StatusInternalServerError, "store_error", nil)
			return
		}
		if fresh, exp, err := signToken(s.opts.Secret, sess.ID, s.opts.TTL); err == nil {
			s.setSessionCookie(w, fresh, exp)
			w.Header().Set(tokenHeader, fresh)
		} else {
			log.Warn().Err(err).Str("session", sess.ID).Msg("refresh session token")
		}
		ctx := context.WithValue(r.Context(), ctxSessionKey{}, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionFrom(r *http.Request) *store.Session {
	sess, _ := r.Context().Value(ctxSessionKey{}).(*store.Session)
	return sess
}
