package audit

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func entryAt(queryType string, ts time.Time, count int) Entry {
	return Entry{
		EntryID:     uuid.NewString(),
		QueryType:   queryType,
		Params:      `{"field":"owner","term":"alice"}`,
		CreatedDate: ts,
		ResultCount: count,
	}
}

func TestAppendAndRecent(t *testing.T) {
	s := newTestStore(t)

	base := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	first := entryAt(QueryTypeSearch, base, 2)
	second := entryAt(QueryTypeAdvanced, base.Add(time.Minute), 5)

	if err := s.Append(first); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := s.Append(second); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	entries, err := s.Recent(10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	// Newest first
	if entries[0].EntryID != second.EntryID {
		t.Errorf("first entry = %s, want the newer one", entries[0].QueryType)
	}
	if entries[0].QueryType != QueryTypeAdvanced || entries[0].ResultCount != 5 {
		t.Errorf("entry = %+v", entries[0])
	}
	if entries[1].Params != first.Params {
		t.Errorf("params = %q", entries[1].Params)
	}
	if !entries[1].CreatedDate.Equal(base) {
		t.Errorf("timestamp = %v, want %v", entries[1].CreatedDate, base)
	}
}

func TestRecentTiesBreakByInsertionOrder(t *testing.T) {
	s := newTestStore(t)

	// Same second: the later insert must still come back first
	ts := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	first := entryAt(QueryTypeSearch, ts, 1)
	second := entryAt(QueryTypeSearch, ts, 2)

	if err := s.Append(first); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := s.Append(second); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	entries, err := s.Recent(10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if entries[0].EntryID != second.EntryID {
		t.Error("tie not broken by insertion order")
	}
}

func TestRecentLimit(t *testing.T) {
	s := newTestStore(t)

	base := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		if err := s.Append(entryAt(QueryTypeSearch, base.Add(time.Duration(i)*time.Minute), i)); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	entries, err := s.Recent(3)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	if entries[0].ResultCount != 4 {
		t.Errorf("newest entry count = %d, want 4", entries[0].ResultCount)
	}
}

func TestClear(t *testing.T) {
	s := newTestStore(t)

	if err := s.Append(entryAt(QueryTypeSearch, time.Now(), 1)); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	entries, err := s.Recent(10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries after Clear, want 0", len(entries))
	}
}

func TestDisabledStoreIsNoOp(t *testing.T) {
	s := &Store{enabled: false}

	if err := s.Append(entryAt(QueryTypeSearch, time.Now(), 1)); err != nil {
		t.Errorf("Append on disabled store failed: %v", err)
	}
	entries, err := s.Recent(10)
	if err != nil {
		t.Errorf("Recent on disabled store failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("disabled store returned entries")
	}
	if err := s.Clear(); err != nil {
		t.Errorf("Clear on disabled store failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close on disabled store failed: %v", err)
	}
}

func TestInitIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	if err := s.Init(); err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
}
