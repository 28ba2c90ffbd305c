package models

// Notice categories
const (
	NoticeCategoryAcademic       = "academic"
	NoticeCategoryAdministrative = "administrative"
	NoticeCategoryEvent          = "event"
)

// Notice represents an announcement shown on the notice board. Field names
// mirror the stored JSON exactly.
type Notice struct {
	ID       int64  `json:"id"`
	Title    string `json:"title" validate:"required"`
	Date     string `json:"date" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Category string `json:"category" validate:"oneof=academic administrative event"`
	Time     string `json:"time" validate:"required"`
}
