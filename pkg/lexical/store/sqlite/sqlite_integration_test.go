package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/cognicore/lexical/pkg/lexical/internalerr"
	"github.com/cognicore/lexical/pkg/lexical/store"
)

func openTestStore(t *testing.T) store.Store {
	t.Helper()
	st, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

// TestSQLiteRunRoundTrip saves a run and reads it back in row order
func TestSQLiteRunRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	created := time.Date(2026, 3, 1, 12, 0, 0, 500, time.UTC)
	run := store.Run{
		ID:        store.NewIDs().Next(created),
		System:    "ipa-us",
		CreatedAt: created,
		Header:    []string{"Item (Orthography)", "Length", "OLD-20 (M)"},
		Rows: [][]string{
			{"cat", "3", "1.05"},
			{"zebra", "5", "NULL"},
		},
	}
	if err := st.SaveRun(ctx, run); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	got, found, err := st.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if !found {
		t.Fatal("run should be found")
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt mismatch: got %v, want %v", got.CreatedAt, created)
	}
	if len(got.Header) != 3 || got.Header[2] != "OLD-20 (M)" {
		t.Errorf("unexpected header %v", got.Header)
	}
	if len(got.Rows) != 2 || got.Rows[1][0] != "zebra" || got.Rows[1][2] != "NULL" {
		t.Errorf("unexpected rows %v", got.Rows)
	}
}

// TestSQLiteSaveReplacesRows re-saves a run with fewer rows
func TestSQLiteSaveReplacesRows(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	run := store.Run{ID: "run-1", System: "sampa-uk", CreatedAt: time.Now(), Header: []string{"Item (Orthography)"},
		Rows: [][]string{{"a"}, {"b"}, {"c"}}}
	if err := st.SaveRun(ctx, run); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	run.Rows = [][]string{{"d"}}
	if err := st.SaveRun(ctx, run); err != nil {
		t.Fatalf("SaveRun again: %v", err)
	}

	got, _, err := st.GetRun(ctx, "run-1")
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if len(got.Rows) != 1 || got.Rows[0][0] != "d" {
		t.Errorf("expected rows to be replaced, got %v", got.Rows)
	}
}

// TestSQLiteListAndDelete lists newest first and deletes
func TestSQLiteListAndDelete(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"old", "mid", "new"} {
		run := store.Run{ID: id, System: "ipa-uk", CreatedAt: base.Add(time.Duration(i) * time.Hour),
			Rows: make([][]string, i+1)}
		for j := range run.Rows {
			run.Rows[j] = []string{id}
		}
		if err := st.SaveRun(ctx, run); err != nil {
			t.Fatalf("SaveRun %s: %v", id, err)
		}
	}

	list, err := st.ListRuns(ctx, 2)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(list) != 2 || list[0].ID != "new" || list[1].ID != "mid" {
		t.Fatalf("unexpected listing %+v", list)
	}
	if list[0].Words != 3 {
		t.Errorf("expected 3 words, got %d", list[0].Words)
	}

	if err := st.DeleteRun(ctx, "mid"); err != nil {
		t.Fatalf("DeleteRun: %v", err)
	}
	if _, found, _ := st.GetRun(ctx, "mid"); found {
		t.Error("deleted run should be gone")
	}
	if err := st.DeleteRun(ctx, "mid"); !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	all, err := st.ListRuns(ctx, 0)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 runs, got %d", len(all))
	}
}

func TestSQLiteRejectsEmptyID(t *testing.T) {
	st := openTestStore(t)
	err := st.SaveRun(context.Background(), store.Run{})
	if !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
