package views

import (
	"github.com/okdev/milton/internal/app/models"
	"github.com/okdev/milton/internal/app/repositories"
	"github.com/okdev/milton/internal/seed"
	"github.com/okdev/milton/internal/storage"
)

// featuredLimit caps how many featured programs surface on the landing page.
const featuredLimit = 3

// FeaturedPrograms renders the homepage program section. When no collection
// has been stored it falls back to the built-in sample programs.
type FeaturedPrograms struct {
	programs []models.Program
}

// NewFeaturedPrograms reads the program collection once.
func NewFeaturedPrograms(store *storage.Store) *FeaturedPrograms {
	programs := repositories.NewCollection[models.Program](store, storage.KeyPrograms).Load()
	if programs == nil {
		programs = seed.Programs()
	}
	return &FeaturedPrograms{programs: programs}
}

// All returns every program in display order.
func (f *FeaturedPrograms) All() []models.Program {
	out := make([]models.Program, len(f.programs))
	copy(out, f.programs)
	return out
}

// Featured returns the flagged programs, capped for the landing page.
func (f *FeaturedPrograms) Featured() []models.Program {
	out := make([]models.Program, 0, featuredLimit)
	for _, p := range f.programs {
		if !p.Featured {
			continue
		}
		out = append(out, p)
		if len(out) == featuredLimit {
			break
		}
	}
	return out
}
