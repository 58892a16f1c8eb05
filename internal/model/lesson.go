package model

// Lesson is a catalog entry created by an instructor.
type Lesson struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
