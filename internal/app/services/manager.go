package services

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/okdev/milton/internal/app/repositories"
	"github.com/okdev/milton/internal/notify"
	"github.com/okdev/milton/internal/pkg/apperrors"
	"github.com/okdev/milton/internal/pkg/logger"
	"github.com/okdev/milton/internal/storage"
)

// validate is shared by every manager instance.
var validate = validator.New()

// ConfirmFunc asks the user to confirm a destructive action. Returning false
// aborts the action with no mutation.
type ConfirmFunc func(prompt string) bool

// EntityService defines the operations a content manager exposes for one
// entity collection. At most one of the creating/editing modes is active at a
// time; entering one leaves the other.
type EntityService[T any, ID comparable] interface {
	// List returns a snapshot of the current collection in display order.
	List() []T
	// StartCreate opens an empty draft in creating mode.
	StartCreate()
	// StartEdit loads the entity's fields into the draft. It reports false,
	// changing nothing, when the id is unknown.
	StartEdit(id ID) bool
	// Draft returns the open draft, if any.
	Draft() (T, bool)
	// Editing returns the id being edited, if any.
	Editing() (ID, bool)
	// Submit validates the draft and either updates the entity being edited in
	// place or inserts a new one with a fresh id, persisting the collection
	// before returning.
	Submit(draft T) (T, error)
	// Delete removes the entity after confirmation. It reports whether an
	// entity was removed; an unknown id is a no-op.
	Delete(id ID) (bool, error)
	// Cancel discards the draft and leaves creating/editing mode.
	Cancel()
}

// descriptor parameterizes the generic manager for one entity type.
type descriptor[T any, ID comparable] struct {
	label    string // notification title, e.g. "Notice"
	noun     string // prose form, e.g. "notice"
	prepend  bool   // newest first when true, append otherwise
	newDraft func() T
	initial  func() []T // starting collection when nothing is stored
	id       func(T) ID
	setID    func(*T, ID)
	nextID   func() ID
	// normalize applies entity fixups just before an insert or update is
	// persisted (e.g. substituting the placeholder photo).
	normalize func(*T)
}

// manager is the single CRUD implementation behind the notice, program and
// faculty services. It owns the in-memory collection and is the sole writer
// to its storage key; every successful mutation re-serializes the whole
// collection before the operation completes.
type manager[T any, ID comparable] struct {
	mu       sync.Mutex
	desc     descriptor[T, ID]
	repo     *repositories.Collection[T]
	notifier notify.Notifier
	confirm  ConfirmFunc

	items    []T
	editing  *ID
	creating bool
	draft    T
	hasDraft bool
}

// newManager loads the stored collection (or the descriptor's initial data
// when nothing usable is stored) and returns a ready manager.
func newManager[T any, ID comparable](store *storage.Store, key string, desc descriptor[T, ID], notifier notify.Notifier, confirm ConfirmFunc) *manager[T, ID] {
	if notifier == nil {
		notifier = notify.NewLogNotifier()
	}

	repo := repositories.NewCollection[T](store, key)
	items := repo.Load()
	if items == nil {
		if desc.initial != nil {
			items = desc.initial()
			if len(items) > 0 {
				if err := repo.Save(items); err != nil {
					logger.Error().Err(err).Str("key", key).Msg("Error persisting initial collection")
				}
			}
		} else {
			items = []T{}
		}
	}

	return &manager[T, ID]{
		desc:     desc,
		repo:     repo,
		notifier: notifier,
		confirm:  confirm,
		items:    items,
	}
}

// List returns a snapshot of the collection.
func (m *manager[T, ID]) List() []T {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]T, len(m.items))
	copy(out, m.items)
	return out
}

// StartCreate opens an empty draft. No entity exists until Submit succeeds.
func (m *manager[T, ID]) StartCreate() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.draft = m.desc.newDraft()
	m.hasDraft = true
	m.creating = true
	m.editing = nil
}

// StartEdit loads the matching entity into the draft.
func (m *manager[T, ID]) StartEdit(id ID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexOf(id)
	if idx < 0 {
		return false
	}

	m.draft = m.items[idx]
	m.hasDraft = true
	m.creating = false
	m.editing = &id
	return true
}

// Draft returns the open draft, if any.
func (m *manager[T, ID]) Draft() (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.draft, m.hasDraft
}

// Editing returns the id currently being edited, if any.
func (m *manager[T, ID]) Editing() (ID, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.editing == nil {
		var zero ID
		return zero, false
	}
	return *m.editing, true
}

// Submit validates and applies the draft. On a validation failure the
// collection is untouched and the draft is retained so the user can correct
// and resubmit. A persistence failure is returned to the caller; the
// in-memory mutation stands and form state is kept.
func (m *manager[T, ID]) Submit(draft T) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := validate.Struct(draft); err != nil {
		m.draft = draft
		m.hasDraft = true
		m.notifier.Failure("Missing Information", "Please fill in all required fields.")
		return draft, validationError(err)
	}

	updating := m.editing != nil

	if updating {
		idx := m.indexOf(*m.editing)
		if idx < 0 {
			return draft, fmt.Errorf("%w: %s %v", apperrors.ErrNotFound, m.desc.noun, *m.editing)
		}
		m.desc.setID(&draft, *m.editing)
		if m.desc.normalize != nil {
			m.desc.normalize(&draft)
		}
		m.items[idx] = draft
	} else {
		m.desc.setID(&draft, m.desc.nextID())
		if m.desc.normalize != nil {
			m.desc.normalize(&draft)
		}
		if m.desc.prepend {
			m.items = append([]T{draft}, m.items...)
		} else {
			m.items = append(m.items, draft)
		}
	}

	if err := m.repo.Save(m.items); err != nil {
		m.notifier.Failure("Error", fmt.Sprintf("Failed to save %s data. Please try again.", m.desc.noun))
		return draft, err
	}

	m.draft = m.desc.newDraft()
	m.hasDraft = false
	m.creating = false
	m.editing = nil

	if updating {
		m.notifier.Success(m.desc.label+" Updated", fmt.Sprintf("The %s has been successfully updated.", m.desc.noun))
	} else {
		m.notifier.Success(m.desc.label+" Added", fmt.Sprintf("The new %s has been successfully added.", m.desc.noun))
	}
	return draft, nil
}

// Delete removes the matching entity after confirmation.
func (m *manager[T, ID]) Delete(id ID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.confirm != nil && !m.confirm(fmt.Sprintf("Are you sure you want to delete this %s?", m.desc.noun)) {
		return false, nil
	}

	idx := m.indexOf(id)
	if idx < 0 {
		return false, nil
	}

	m.items = append(m.items[:idx], m.items[idx+1:]...)
	if err := m.repo.Save(m.items); err != nil {
		m.notifier.Failure("Error", fmt.Sprintf("Failed to save %s data. Please try again.", m.desc.noun))
		return true, err
	}

	m.notifier.Success(m.desc.label+" Deleted", fmt.Sprintf("The %s has been successfully deleted.", m.desc.noun))
	return true, nil
}

// Cancel discards the draft without mutating the collection.
func (m *manager[T, ID]) Cancel() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.draft = m.desc.newDraft()
	m.hasDraft = false
	m.creating = false
	m.editing = nil
}

// indexOf returns the position of id in the collection, or -1. Callers hold
// the lock.
func (m *manager[T, ID]) indexOf(id ID) int {
	for i, item := range m.items {
		if m.desc.id(item) == id {
			return i
		}
	}
	return -1
}

// validationError converts validator output into the application's
// ValidationError.
func validationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return apperrors.NewValidationError(fields...)
}
