package views

import (
	"path/filepath"
	"testing"

	"github.com/okdev/milton/internal/app/models"
	"github.com/okdev/milton/internal/seed"
	"github.com/okdev/milton/internal/storage"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	s, err := storage.Open(filepath.Join(t.TempDir(), "milton.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNoticeBoardFallsBackToSeedData(t *testing.T) {
	board := NewNoticeBoard(newTestStore(t))

	notices := board.Notices()
	if len(notices) != 5 {
		t.Fatalf("got %d notices, want the 5 built-in samples", len(notices))
	}
	if notices[0].Title != "Fall Semester Registration Opens" {
		t.Fatalf("unexpected first sample notice: %+v", notices[0])
	}
}

func TestNoticeBoardPrefersStoredCollection(t *testing.T) {
	store := newTestStore(t)
	stored := []models.Notice{{ID: 9, Title: "Snow Day", Date: "2024-01-10", Content: "Campus closed.", Category: "administrative", Time: "7:00 AM"}}
	if err := store.Save(storage.KeyNotices, stored); err != nil {
		t.Fatalf("Save: %v", err)
	}

	board := NewNoticeBoard(store)
	notices := board.Notices()
	if len(notices) != 1 || notices[0].Title != "Snow Day" {
		t.Fatalf("board = %v, want the stored notice only", notices)
	}
}

func TestNoticeBoardEmptyStoredCollectionShowsNothing(t *testing.T) {
	store := newTestStore(t)
	if err := store.Save(storage.KeyNotices, []models.Notice{}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if got := NewNoticeBoard(store).Notices(); len(got) != 0 {
		t.Fatalf("an explicitly empty collection must not fall back to seed data, got %v", got)
	}
}

func TestNoticeBoardByCategory(t *testing.T) {
	board := NewNoticeBoard(newTestStore(t))

	tests := []struct {
		category string
		want     int
	}{
		{CategoryAll, 5},
		{"", 5},
		{models.NoticeCategoryAcademic, 2},
		{models.NoticeCategoryEvent, 2},
		{models.NoticeCategoryAdministrative, 1},
		{"unknown", 0},
	}
	for _, tt := range tests {
		got := board.ByCategory(tt.category)
		if len(got) != tt.want {
			t.Errorf("ByCategory(%q) returned %d notices, want %d", tt.category, len(got), tt.want)
		}
		for _, n := range got {
			if tt.category != CategoryAll && tt.category != "" && n.Category != tt.category {
				t.Errorf("ByCategory(%q) leaked notice %+v", tt.category, n)
			}
		}
	}
}

func TestFeaturedProgramsFallsBackToSeedData(t *testing.T) {
	programs := NewFeaturedPrograms(newTestStore(t))

	if got := programs.All(); len(got) != 4 {
		t.Fatalf("got %d programs, want the 4 built-in samples", len(got))
	}

	featured := programs.Featured()
	if len(featured) != 3 {
		t.Fatalf("got %d featured programs, want 3", len(featured))
	}
	for _, p := range featured {
		if !p.Featured {
			t.Errorf("non-featured program surfaced: %+v", p)
		}
	}
}

func TestFeaturedProgramsCapsAtThree(t *testing.T) {
	store := newTestStore(t)
	stored := make([]models.Program, 0, 5)
	for i := int64(1); i <= 5; i++ {
		stored = append(stored, models.Program{ID: i, Title: "P", Description: "d", Image: "i", Duration: "1 year", StartDate: "2025", Category: "certificate", Featured: true})
	}
	if err := store.Save(storage.KeyPrograms, stored); err != nil {
		t.Fatalf("Save: %v", err)
	}

	featured := NewFeaturedPrograms(store).Featured()
	if len(featured) != 3 {
		t.Fatalf("got %d featured programs, want cap of 3", len(featured))
	}
	if featured[0].ID != 1 || featured[2].ID != 3 {
		t.Fatalf("cap must keep the first entries, got %v", featured)
	}
}

func TestFacultySectionHasNoSeedFallback(t *testing.T) {
	section := NewFacultySection(newTestStore(t))

	if !section.Empty() {
		t.Fatal("an unstored roster must show the empty state, not seed data")
	}
	if got := section.Members(); len(got) != 0 {
		t.Fatalf("members = %v, want none", got)
	}
}

func TestFacultySectionSpotlightCapsAtThree(t *testing.T) {
	store := newTestStore(t)
	stored := []models.FacultyMember{
		{ID: "a", Name: "A", Title: "t"},
		{ID: "b", Name: "B", Title: "t"},
		{ID: "c", Name: "C", Title: "t"},
		{ID: "d", Name: "D", Title: "t"},
	}
	if err := store.Save(storage.KeyFaculty, stored); err != nil {
		t.Fatalf("Save: %v", err)
	}

	section := NewFacultySection(store)
	if section.Empty() {
		t.Fatal("stored roster must not be empty")
	}
	if got := section.Members(); len(got) != 4 {
		t.Fatalf("got %d members, want 4", len(got))
	}

	spotlight := section.Spotlight()
	if len(spotlight) != 3 {
		t.Fatalf("got %d spotlight members, want 3", len(spotlight))
	}
	if spotlight[0].ID != "a" || spotlight[2].ID != "c" {
		t.Fatalf("spotlight must keep the first members, got %v", spotlight)
	}
}

func TestPhotoURLSubstitutesPlaceholder(t *testing.T) {
	withPhoto := models.FacultyMember{Photo: "https://example.com/p.jpg"}
	if got := PhotoURL(withPhoto); got != "https://example.com/p.jpg" {
		t.Fatalf("PhotoURL = %q, want the member's photo", got)
	}

	if got := PhotoURL(models.FacultyMember{}); got != seed.PlaceholderPhotoURL {
		t.Fatalf("PhotoURL = %q, want the placeholder", got)
	}
}

func TestViewsDoNotReReadAfterConstruction(t *testing.T) {
	store := newTestStore(t)
	board := NewNoticeBoard(store)

	// A write landing after construction is not visible to this view.
	if err := store.Save(storage.KeyNotices, []models.Notice{{ID: 1, Title: "Late", Date: "2024-01-01", Content: "c", Category: "academic", Time: "9:00 AM"}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got := board.Notices(); len(got) != 5 {
		t.Fatalf("view re-read storage after construction: %v", got)
	}

	// A fresh view sees it.
	if got := NewNoticeBoard(store).Notices(); len(got) != 1 {
		t.Fatalf("fresh view = %v, want the late write", got)
	}
}
