package models

// FacultyMember represents a member of the teaching staff. Field names mirror
// the stored JSON exactly.
type FacultyMember struct {
	ID    string `json:"id"`
	Name  string `json:"name" validate:"required"`
	Title string `json:"title" validate:"required"`
	Photo string `json:"photo"`
	Bio   string `json:"bio"`
}
