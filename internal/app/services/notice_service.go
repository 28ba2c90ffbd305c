package services

import (
	"github.com/okdev/milton/internal/app/models"
	"github.com/okdev/milton/internal/notify"
	"github.com/okdev/milton/internal/pkg/ident"
	"github.com/okdev/milton/internal/storage"
)

// NoticeService manages the notice collection. New notices are prepended so
// the board reads newest first.
type NoticeService = EntityService[models.Notice, int64]

// NewNoticeService creates the notice manager backed by the shared store.
func NewNoticeService(store *storage.Store, notifier notify.Notifier, confirm ConfirmFunc) NoticeService {
	return newManager(store, storage.KeyNotices, descriptor[models.Notice, int64]{
		label:   "Notice",
		noun:    "notice",
		prepend: true,
		newDraft: func() models.Notice {
			return models.Notice{Category: models.NoticeCategoryAcademic}
		},
		id:     func(n models.Notice) int64 { return n.ID },
		setID:  func(n *models.Notice, id int64) { n.ID = id },
		nextID: ident.NextNumeric,
	}, notifier, confirm)
}
