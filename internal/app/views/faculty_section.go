package views

import (
	"github.com/okdev/milton/internal/app/models"
	"github.com/okdev/milton/internal/app/repositories"
	"github.com/okdev/milton/internal/seed"
	"github.com/okdev/milton/internal/storage"
)

// spotlightLimit caps how many members surface on the landing page.
const spotlightLimit = 3

// FacultySection renders the faculty listing. Unlike the other views it has
// no seed fallback: an unstored roster shows an explicit empty state.
type FacultySection struct {
	members []models.FacultyMember
}

// NewFacultySection reads the faculty collection once.
func NewFacultySection(store *storage.Store) *FacultySection {
	members := repositories.NewCollection[models.FacultyMember](store, storage.KeyFaculty).Load()
	if members == nil {
		members = []models.FacultyMember{}
	}
	return &FacultySection{members: members}
}

// Members returns the full roster in stored order.
func (f *FacultySection) Members() []models.FacultyMember {
	out := make([]models.FacultyMember, len(f.members))
	copy(out, f.members)
	return out
}

// Spotlight returns the first members for the landing page.
func (f *FacultySection) Spotlight() []models.FacultyMember {
	members := f.Members()
	if len(members) > spotlightLimit {
		members = members[:spotlightLimit]
	}
	return members
}

// Empty reports whether there is no faculty to show yet.
func (f *FacultySection) Empty() bool {
	return len(f.members) == 0
}

// PhotoURL returns the member's photo, or the fixed placeholder when none is
// set.
func PhotoURL(m models.FacultyMember) string {
	if m.Photo == "" {
		return seed.PlaceholderPhotoURL
	}
	return m.Photo
}
