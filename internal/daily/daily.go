// Package daily picks a deterministic answer word per calendar day.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Answer returns the word for the UTC day of t, or "" if words is empty.
// The pick is keyed by HMAC-SHA256(salt, DateKey(t)), so every caller with
// the same salt and list agrees on the word until midnight UTC.
func Answer(t time.Time, salt string, words []string) string {
	if len(words) == 0 {
		return ""
	}
	mac := hmac.New(sha256.New, []byte(salt))
	mac.Write([]byte(DateKey(t)))
	seed := binary.BigEndian.Uint64(mac.Sum(nil))
	return words[seed%uint64(len(words))]
}
