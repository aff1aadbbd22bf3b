package models

// Product is described by exactly one Description.
type Product struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name" validate:"required,max=20"`

	// Relations (populated when needed)
	Description *Description `json:"description,omitempty"`
}
