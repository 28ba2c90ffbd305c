package models

// Program categories
const (
	ProgramCategoryUndergraduate = "undergraduate"
	ProgramCategoryGraduate      = "graduate"
	ProgramCategoryCertificate   = "certificate"
)

// Program represents an academic program offered by the college. Field names
// mirror the stored JSON exactly.
type Program struct {
	ID          int64  `json:"id"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Image       string `json:"image" validate:"required"`
	Duration    string `json:"duration" validate:"required"`
	StartDate   string `json:"startDate" validate:"required"`
	Category    string `json:"category" validate:"oneof=undergraduate graduate certificate"`
	Featured    bool   `json:"featured"`
}
