package services

import (
	"github.com/okdev/milton/internal/app/models"
	"github.com/okdev/milton/internal/notify"
	"github.com/okdev/milton/internal/pkg/ident"
	"github.com/okdev/milton/internal/seed"
	"github.com/okdev/milton/internal/storage"
)

// FacultyService manages the faculty roster. Members are appended in the
// order they are added. When no roster has ever been stored the manager
// starts from the built-in default members and persists them.
type FacultyService = EntityService[models.FacultyMember, string]

// NewFacultyService creates the faculty manager backed by the shared store.
func NewFacultyService(store *storage.Store, notifier notify.Notifier, confirm ConfirmFunc) FacultyService {
	return newManager(store, storage.KeyFaculty, descriptor[models.FacultyMember, string]{
		label:    "Faculty Member",
		noun:     "faculty member",
		newDraft: func() models.FacultyMember { return models.FacultyMember{} },
		initial:  seed.DefaultFacultyMembers,
		id:       func(f models.FacultyMember) string { return f.ID },
		setID:    func(f *models.FacultyMember, id string) { f.ID = id },
		nextID:   ident.NewString,
		normalize: func(f *models.FacultyMember) {
			if f.Photo == "" {
				f.Photo = seed.PlaceholderPhotoURL
			}
		},
	}, notifier, confirm)
}
