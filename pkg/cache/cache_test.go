package cache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/moyu-x/similar-file/internal"
)

func openStore(t *testing.T) (*Store, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "cache.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return store, dbPath
}

func TestOpen(t *testing.T) {
	store, _ := openStore(t)
	defer store.Close()

	count, err := store.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 0 {
		t.Errorf("Expected empty store, got %d records", count)
	}
}

func TestStore_LookupAbsent(t *testing.T) {
	store, _ := openStore(t)
	defer store.Close()

	rec, err := store.Lookup("0123456789abcdef")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if rec != nil {
		t.Errorf("Expected nil for absent fingerprint, got %+v", rec)
	}
}

func TestStore_RecordAndLookup(t *testing.T) {
	store, _ := openStore(t)
	defer store.Close()

	fp := "0123456789abcdef"
	before := time.Now().Add(-time.Second)

	if err := store.Record(fp, internal.DecisionAccepted); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	rec, err := store.Lookup(fp)
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if rec == nil {
		t.Fatal("Expected record to exist")
	}
	if rec.Decision != internal.DecisionAccepted {
		t.Errorf("Decision = %s, want accepted", rec.Decision)
	}
	if rec.UpdatedAt.Before(before) {
		t.Errorf("UpdatedAt = %v, want recent timestamp", rec.UpdatedAt)
	}
}

func TestStore_Upsert(t *testing.T) {
	store, _ := openStore(t)
	defer store.Close()

	fp := "0123456789abcdef"
	if err := store.Record(fp, internal.DecisionAccepted); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if err := store.Record(fp, internal.DecisionDeleted); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	rec, err := store.Lookup(fp)
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if rec.Decision != internal.DecisionDeleted {
		t.Errorf("Decision = %s, want deleted after upsert", rec.Decision)
	}

	count, err := store.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 record after upsert, got %d", count)
	}
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	store, dbPath := openStore(t)

	fp := "feedfacecafebeef"
	if err := store.Record(fp, internal.DecisionRejected); err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer reopened.Close()

	rec, err := reopened.Lookup(fp)
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if rec == nil || rec.Decision != internal.DecisionRejected {
		t.Errorf("Expected rejected decision to survive reopen, got %+v", rec)
	}
}
