package models

import "time"

// Page is a static content page (about, contacts) editable from the
// admin dashboard. The ID is the page slug.
type Page struct {
	ID        string
	Title     string
	Content   string
	UpdatedAt time.Time
}
