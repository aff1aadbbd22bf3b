package models

// Student may be enrolled in any number of courses.
type Student struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name" validate:"required,max=150"`

	// Relations (populated when needed)
	Courses []*Course `json:"courses,omitempty"`
}
