package store_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/teachthetutor/backend/internal/domain/mastery"
	"github.com/teachthetutor/backend/internal/store"
)

func newStore(t *testing.T) (*store.SQLiteStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mastery.db")
	s, err := store.NewSQLite(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestLoadAll_EmptyStore(t *testing.T) {
	s, _ := newStore(t)

	records, err := s.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty map, got %d records", len(records))
	}
}

func TestUpsertAndGet(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	rec := mastery.Record{TimesExplained: 2, TimesQuizzed: 1}
	rec.Fold(100)

	if err := s.Upsert(ctx, "loops", rec); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := s.Get(ctx, "loops")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.TimesExplained != 2 || got.TimesQuizzed != 1 {
		t.Errorf("counters not persisted: %+v", got)
	}
	if got.LastScore == nil || *got.LastScore != 100 {
		t.Errorf("expected last score 100, got %v", got.LastScore)
	}
	if got.AvgScore == nil || *got.AvgScore != 100 {
		t.Errorf("expected avg 100, got %v", got.AvgScore)
	}
}

func TestGet_NotFound(t *testing.T) {
	s, _ := newStore(t)

	_, err := s.Get(context.Background(), "missing")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpsert_LastWriterWins(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	if err := s.Upsert(ctx, "loops", mastery.Record{TimesExplained: 1}); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if err := s.Upsert(ctx, "loops", mastery.Record{TimesExplained: 3}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err := s.Get(ctx, "loops")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.TimesExplained != 3 {
		t.Errorf("expected 3 explains after update, got %d", got.TimesExplained)
	}
}

func TestUpsert_DistinctKeysDoNotClobber(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	if err := s.Upsert(ctx, "loops", mastery.Record{TimesQuizzed: 1}); err != nil {
		t.Fatalf("upsert loops: %v", err)
	}
	if err := s.Upsert(ctx, "variables", mastery.Record{TimesQuizzed: 2}); err != nil {
		t.Fatalf("upsert variables: %v", err)
	}

	records, err := s.LoadAll(ctx)
	if err != nil {
		t.Fatalf("load all: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records["loops"].TimesQuizzed != 1 || records["variables"].TimesQuizzed != 2 {
		t.Errorf("records clobbered each other: %+v", records)
	}
}

func TestNewSQLite_QuarantinesCorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mastery.db")
	if err := os.WriteFile(path, []byte("this is definitely not a sqlite database"), 0o644); err != nil {
		t.Fatalf("write garbage: %v", err)
	}

	s, err := store.NewSQLite(path)
	if err != nil {
		t.Fatalf("expected corrupt file to be quarantined, got error: %v", err)
	}
	defer s.Close()

	records, err := s.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("load all after quarantine: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty store after quarantine, got %d records", len(records))
	}

	// The garbage file must still exist under a quarantine name.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	found := false
	for _, e := range entries {
		if strings.Contains(e.Name(), ".corrupt-") {
			found = true
		}
	}
	if !found {
		t.Error("expected a quarantined .corrupt- file next to the database")
	}
}
