package models

// Description owns the one-to-one key to its Product. Removing either side
// removes the other.
type Description struct {
	ID        int64  `json:"id" db:"id"`
	Text      string `json:"text" db:"text" validate:"required"`
	ProductID int64  `json:"productId" db:"product_id" validate:"required,gt=0"`

	// Relations (populated when needed)
	Product *Product `json:"product,omitempty"`
}
