package httpserver

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestToken_RoundTrip(t *testing.T) {
	tok, exp, err := signToken(testSecret, "abc", time.Hour)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if time.Until(exp) < 59*time.Minute {
		t.Fatalf("unexpected expiry %v", exp)
	}
	sid, err := parseToken(testSecret, tok)
	if err != nil || sid != "abc" {
		t.Fatalf("expected sid abc, got %q (%v)", sid, err)
	}
}

func TestToken_Rejects(t *testing.T) {
	tok, _, _ := signToken(testSecret, "abc", time.Hour)
	if _, err := parseToken([]byte("other"), tok); err == nil {
		t.Fatalf("expected wrong secret to fail")
	}

	expired, _, _ := signToken(testSecret, "abc", -time.Minute)
	if _, err := parseToken(testSecret, expired); err == nil {
		t.Fatalf("expected expired token to fail")
	}

	noSID, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}).SignedString(testSecret)
	if _, err := parseToken(testSecret, noSID); err == nil {
		t.Fatalf("expected token without sid to fail")
	}

	none, _ := jwt.NewWithClaims(jwt.SigningMethodNone, sessionClaims{SID: "abc"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if _, err := parseToken(testSecret, none); err == nil {
		t.Fatalf("expected unsigned token to fail")
	}
}
