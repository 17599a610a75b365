package daily

import (
	"fmt"
	"testing"
	"time"
)

func TestDateKeyUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	d := time.Date(2024, 3, 2, 5, 0, 0, 0, loc)
	if got := DateKey(d); got != "2024-03-01" {
		t.Fatalf("expected 2024-03-01, got %s", got)
	}
}

func wordList(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("w%04d", i)
	}
	return out
}

func TestAnswer_StableWithinDay(t *testing.T) {
	words := wordList(500)
	morning := time.Date(2024, 3, 1, 0, 0, 1, 0, time.UTC)
	night := time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC)
	if a, b := Answer(morning, "salt", words), Answer(night, "salt", words); a != b {
		t.Fatalf("expected same answer within a day, got %q and %q", a, b)
	}
}

func TestAnswer_VariesWithDayAndSalt(t *testing.T) {
	words := wordList(1 << 12)
	d := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	base := Answer(d, "salt", words)

	daysDiffer, saltsDiffer := false, false
	for i := 1; i <= 6; i++ {
		if Answer(d.AddDate(0, 0, i), "salt", words) != base {
			daysDiffer = true
		}
		if Answer(d, fmt.Sprint("salt", i), words) != base {
			saltsDiffer = true
		}
	}
	if !daysDiffer || !saltsDiffer {
		t.Fatalf("expected day and salt to influence the pick (days %v, salts %v)", daysDiffer, saltsDiffer)
	}
}

func TestAnswer_EmptyList(t *testing.T) {
	if got := Answer(time.Now(), "salt", nil); got != "" {
		t.Fatalf("expected empty answer for empty list, got %q", got)
	}
}
