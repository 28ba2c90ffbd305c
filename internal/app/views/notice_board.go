// Package views holds the public read side of the site content. Each view
// loads its collection once when constructed and never re-reads; an admin
// edit made afterwards is only visible to a freshly built view.
package views

import (
	"github.com/okdev/milton/internal/app/models"
	"github.com/okdev/milton/internal/app/repositories"
	"github.com/okdev/milton/internal/seed"
	"github.com/okdev/milton/internal/storage"
)

// CategoryAll selects every notice regardless of category.
const CategoryAll = "all"

// NoticeBoard renders the homepage notice list. When no collection has been
// stored it falls back to the built-in sample notices.
type NoticeBoard struct {
	notices []models.Notice
}

// NewNoticeBoard reads the notice collection once.
func NewNoticeBoard(store *storage.Store) *NoticeBoard {
	notices := repositories.NewCollection[models.Notice](store, storage.KeyNotices).Load()
	if notices == nil {
		notices = seed.Notices()
	}
	return &NoticeBoard{notices: notices}
}

// Notices returns every notice in display order.
func (b *NoticeBoard) Notices() []models.Notice {
	out := make([]models.Notice, len(b.notices))
	copy(out, b.notices)
	return out
}

// ByCategory returns the notices in the given category. CategoryAll (or an
// empty category) returns everything.
func (b *NoticeBoard) ByCategory(category string) []models.Notice {
	if category == CategoryAll || category == "" {
		return b.Notices()
	}

	out := make([]models.Notice, 0, len(b.notices))
	for _, n := range b.notices {
		if n.Category == category {
			out = append(out, n)
		}
	}
	return out
}
