package store

import (
	"path/filepath"
	"testing"

	"github.com/lixenwraith/deckplay/logger"
)

func openTestStore(t *testing.T, path, deckTitle string) *Store {
	t.Helper()
	s, err := Open(path, deckTitle, logger.New())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// TestOpenCreatesMissingDirectories verifies the database directory is
// created on demand.
func TestOpenCreatesMissingDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "progress.db")

	s := openTestStore(t, path, "Course")

	if err := s.SaveBookmark(3); err != nil {
		t.Fatalf("failed to save bookmark: %v", err)
	}
}

// TestBookmarkRoundTrip verifies save, overwrite, and the missing
// case.
func TestBookmarkRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.db")
	s := openTestStore(t, path, "Course")

	if _, found, err := s.LastSlide(); err != nil || found {
		t.Fatalf("Expected no bookmark, got found=%v err=%v", found, err)
	}

	if err := s.SaveBookmark(4); err != nil {
		t.Fatalf("failed to save bookmark: %v", err)
	}
	slide, found, err := s.LastSlide()
	if err != nil {
		t.Fatalf("failed to read bookmark: %v", err)
	}
	if !found || slide != 4 {
		t.Errorf("Expected bookmark 4, got %d (found=%v)", slide, found)
	}

	if err := s.SaveBookmark(7); err != nil {
		t.Fatalf("failed to overwrite bookmark: %v", err)
	}
	slide, found, err = s.LastSlide()
	if err != nil {
		t.Fatalf("failed to read bookmark: %v", err)
	}
	if !found || slide != 7 {
		t.Errorf("Expected bookmark 7, got %d (found=%v)", slide, found)
	}
}

// TestBookmarksScopedByDeck verifies one database file can track
// several decks independently.
func TestBookmarksScopedByDeck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.db")
	first := openTestStore(t, path, "First Deck")
	second := openTestStore(t, path, "Second Deck")

	if err := first.SaveBookmark(10); err != nil {
		t.Fatalf("failed to save bookmark: %v", err)
	}
	if err := second.SaveBookmark(20); err != nil {
		t.Fatalf("failed to save bookmark: %v", err)
	}

	slide, found, err := first.LastSlide()
	if err != nil || !found || slide != 10 {
		t.Errorf("Expected bookmark 10 for first deck, got %d (found=%v err=%v)", slide, found, err)
	}
	slide, found, err = second.LastSlide()
	if err != nil || !found || slide != 20 {
		t.Errorf("Expected bookmark 20 for second deck, got %d (found=%v err=%v)", slide, found, err)
	}
}

// TestAttemptJournal verifies attempts come back complete and in
// order.
func TestAttemptJournal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.db")
	s := openTestStore(t, path, "Course")

	if err := s.RecordAttempt(83, "s83-q0", 1, true); err != nil {
		t.Fatalf("failed to record attempt: %v", err)
	}
	if err := s.RecordAttempt(83, "s83-q1", 0, false); err != nil {
		t.Fatalf("failed to record attempt: %v", err)
	}
	if err := s.RecordAttempt(84, "s84-q0", 2, true); err != nil {
		t.Fatalf("failed to record attempt: %v", err)
	}

	attempts, err := s.Attempts()
	if err != nil {
		t.Fatalf("failed to list attempts: %v", err)
	}
	if len(attempts) != 3 {
		t.Fatalf("Expected 3 attempts, got %d", len(attempts))
	}

	first := attempts[0]
	if first.Slide != 83 || first.ItemID != "s83-q0" || first.Choice != 1 || !first.Correct {
		t.Errorf("Unexpected first attempt: %+v", first)
	}
	if attempts[1].Correct {
		t.Error("Expected second attempt to be wrong")
	}
	if first.AnsweredAt.IsZero() {
		t.Error("Expected a timestamp on the attempt")
	}
}

// TestReopenKeepsData verifies the journal survives reopening.
func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.db")

	s, err := Open(path, "Course", logger.New())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	if err := s.SaveBookmark(42); err != nil {
		t.Fatalf("failed to save bookmark: %v", err)
	}
	if err := s.RecordAttempt(5, "s5-q0", 0, true); err != nil {
		t.Fatalf("failed to record attempt: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("failed to close store: %v", err)
	}

	reopened := openTestStore(t, path, "Course")
	slide, found, err := reopened.LastSlide()
	if err != nil || !found || slide != 42 {
		t.Errorf("Expected bookmark 42 after reopen, got %d (found=%v err=%v)", slide, found, err)
	}
	attempts, err := reopened.Attempts()
	if err != nil || len(attempts) != 1 {
		t.Errorf("Expected 1 attempt after reopen, got %d (err=%v)", len(attempts), err)
	}
}
