package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/robalobadob/wordle-solver/internal/game"
)

func newTestSession() *Session {
	return NewSession(game.New([]string{"crane", "slate"}, 6, 5))
}

func TestMemoryStore_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	s := newTestSession()
	if len(s.ID) != 22 {
		t.Fatalf("expected 22-char id, got %q", s.ID)
	}
	if err := st.Save(ctx, s); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	got, err := st.Get(ctx, s.ID)
	if err != nil || got != s {
		t.Fatalf("expected stored session, got %v (%v)", got, err)
	}
	if err := st.Delete(ctx, s.ID); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, err := st.Get(ctx, s.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStore_Sweep(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	old, fresh := newTestSession(), newTestSession()
	old.touched = time.Now().Add(-3 * time.Hour)
	_ = st.Save(ctx, old)
	_ = st.Save(ctx, fresh)

	if n := st.Sweep(ctx, time.Now().Add(-2*time.Hour)); n != 1 {
		t.Fatalf("expected 1 swept session, got %d", n)
	}
	if _, err := st.Get(ctx, old.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected stale session gone, got %v", err)
	}
	if _, err := st.Get(ctx, fresh.ID); err != nil {
		t.Fatalf("expected fresh session kept, got %v", err)
	}
}

func TestSession_WithSerializesGuesses(t *testing.T) {
	s := NewSession(game.New([]string{"crane"}, 100, 5))
	l, err := game.ParseMask("slate", "***?e")
	if err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.With(func(g *game.Game) error { return g.AddGuess(l) })
		}()
	}
	wg.Wait()
	_ = s.With(func(g *game.Game) error {
		if g.PerformedGuesses() != 50 {
			t.Fatalf("expected 50 guesses, got %d", g.PerformedGuesses())
		}
		return nil
	})
}

func TestSession_WithTouches(t *testing.T) {
	s := newTestSession()
	s.touched = time.Time{}
	_ = s.With(func(*game.Game) error { return nil })
	if s.LastUsed().IsZero() {
		t.Fatalf("expected With to update last-used time")
	}
}
