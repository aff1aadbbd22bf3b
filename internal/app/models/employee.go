package models

// Employee belongs to exactly one department.
type Employee struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"name" db:"name" validate:"required,max=100"`
	DepartmentID int64  `json:"departmentId" db:"department_id" validate:"required,gt=0"`

	// Relations (populated when needed)
	Department *Department `json:"department,omitempty"`
}
