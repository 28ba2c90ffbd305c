package services

import (
	"github.com/okdev/milton/internal/app/models"
	"github.com/okdev/milton/internal/notify"
	"github.com/okdev/milton/internal/pkg/ident"
	"github.com/okdev/milton/internal/storage"
)

// ProgramService manages the program collection. New programs are prepended
// so listings read newest first.
type ProgramService = EntityService[models.Program, int64]

// NewProgramService creates the program manager backed by the shared store.
func NewProgramService(store *storage.Store, notifier notify.Notifier, confirm ConfirmFunc) ProgramService {
	return newManager(store, storage.KeyPrograms, descriptor[models.Program, int64]{
		label:   "Program",
		noun:    "program",
		prepend: true,
		newDraft: func() models.Program {
			return models.Program{Category: models.ProgramCategoryUndergraduate}
		},
		id:     func(p models.Program) int64 { return p.ID },
		setID:  func(p *models.Program, id int64) { p.ID = id },
		nextID: ident.NextNumeric,
	}, notifier, confirm)
}
