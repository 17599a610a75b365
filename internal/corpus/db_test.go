package corpus

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestImportAndLoadSQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "words.db")

	db, err := OpenDB(path)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	// Second run is a no-op.
	if err := Migrate(ctx, db); err != nil {
		t.Fatalf("second migrate: %v", err)
	}

	n, err := Import(ctx, db, []string{"slate", "Crane", "slate"})
	if err != nil || n != 2 {
		t.Fatalf("expected 2 inserted, got %d (%v)", n, err)
	}
	n, err = Import(ctx, db, []string{"crane", "pious"})
	if err != nil || n != 1 {
		t.Fatalf("expected 1 inserted, got %d (%v)", n, err)
	}
	if err := db.Close(); err != nil {
		t.Fatal(err)
	}

	c, err := Load(ctx, "sqlite:"+path)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if diff := cmp.Diff([]string{"slate", "crane", "pious"}, c.Words()); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}

func TestLoad_EmptySQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	if _, err := Load(context.Background(), "sqlite:"+path); err == nil {
		t.Fatalf("expected error for empty database")
	}
}

func TestImport_FailureCommitsNothing(t *testing.T) {
	ctx := context.Background()
	db, err := OpenDB(filepath.Join(t.TempDir(), "words.db"))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	defer db.Close()
	if err := Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if _, err := db.ExecContext(ctx, `CREATE TRIGGER reject_boom BEFORE INSERT ON words
		WHEN NEW.word = 'boom' BEGIN SELECT RAISE(ABORT, 'rejected'); END;`); err != nil {
		t.Fatal(err)
	}

	n, err := Import(ctx, db, []string{"alpha", "bravo", "boom"})
	if err == nil {
		t.Fatalf("expected insert error")
	}
	if n != 0 {
		t.Fatalf("expected 0 reported after rollback, got %d", n)
	}
	words, err := ReadDB(ctx, db)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(words) != 0 {
		t.Fatalf("expected nothing committed, got %v", words)
	}
}
