package models

// Department groups employees. Deleting a department deletes its employees.
type Department struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name" validate:"required,max=20"`

	// Relations (populated when needed)
	Employees []*Employee `json:"employees,omitempty"`
}
