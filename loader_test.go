package teller

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeRecordFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "accounts.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFileStore_MissingFileLoadsEmpty(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "accounts.csv"))
	records, err := store.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("loaded %d records from a missing file, want 0", len(records))
	}
}

func TestFileStore_UnreadableFileIsAnError(t *testing.T) {
	// A bare quote makes the file structurally unreadable: no collection
	// can be decoded at all. Even the tolerant store must refuse to load,
	// otherwise the book looks empty and the next save destroys the
	// intact rows.
	content := "Owner;Identifier;Password;Balance\nBruno;222;pw;50\n\"broken\n"

	for _, strict := range []bool{false, true} {
		store := &FileStore{Path: writeRecordFile(t, content), Strict: strict}
		records, err := store.LoadAll()
		if err == nil {
			t.Fatalf("LoadAll() (strict=%v) error = nil, want a decode failure", strict)
		}
		if records != nil {
			t.Errorf("LoadAll() (strict=%v) = %d records alongside the error, want none", strict, len(records))
		}
	}
}

func TestFileStore_UnreadableFileDoesNotGetOverwritten(t *testing.T) {
	content := "Owner;Identifier;Password;Balance\nBruno;222;pw;50\n\"broken\n"
	path := writeRecordFile(t, content)

	// The session never opens, so no mutation can reach the file.
	if _, err := Open(NewFileStore(path)); err == nil {
		t.Fatal("Open() error = nil over an unreadable record file")
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(after) != content {
		t.Errorf("record file was rewritten:\nbefore: %q\nafter:  %q", content, string(after))
	}
}

func TestFileStore_TolerantLoadKeepsCorruptFieldRows(t *testing.T) {
	// Field-level corruption is still tolerated: the row loads with the
	// default-filled field and the rest of the collection is intact.
	content := "Owner;Identifier;Password;Balance\nBruno;222;pw;not-a-number\nAna;123;pw;50\n"
	store := NewFileStore(writeRecordFile(t, content))

	records, err := store.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("loaded %d records, want 2", len(records))
	}
	if !records[0].Balance.IsZero() {
		t.Errorf("corrupt balance = %s, want the 0.00 default", records[0].Balance.Fixed())
	}
	if !records[1].Balance.Equal(BRL(50)) {
		t.Errorf("intact balance = %s, want 50.00", records[1].Balance.Fixed())
	}
}

func TestRecordCorruptOnly(t *testing.T) {
	corrupt := &RecordCorrupt{Row: 1, Field: "Balance", Value: "x", Err: errors.New("parse")}
	other := errors.New("read failure")

	testCases := []struct {
		name string
		err  error
		want bool
	}{
		{name: "single corruption", err: corrupt, want: true},
		{name: "joined corruptions", err: errors.Join(corrupt, corrupt), want: true},
		{name: "plain error", err: other, want: false},
		{name: "corruption joined with a plain error", err: errors.Join(corrupt, other), want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := recordCorruptOnly(tc.err); got != tc.want {
				t.Errorf("recordCorruptOnly(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestFileStore_SaveAllRoundTrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "accounts.csv"))
	a := NewAccount("Ana", "123", "pw")
	if err := store.SaveAll([]Account{a}); err != nil {
		t.Fatalf("SaveAll() error = %v", err)
	}
	records, err := store.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(records) != 1 || records[0].Owner != "Ana" {
		t.Errorf("round trip lost the record: %+v", records)
	}
	if !strings.HasSuffix(store.Path, "accounts.csv") {
		t.Errorf("unexpected store path %q", store.Path)
	}
}
