package models

// User is the session record persisted while an editor is logged in.
type User struct {
	Email string `json:"email"`
}
