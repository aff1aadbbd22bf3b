package dto

// CreateProductRequest creates a product together with its description
type CreateProductRequest struct {
	Name        string `json:"name" binding:"required,max=20"`
	Description string `json:"description" binding:"required"`
}

// UpdateProductRequest represents product update data
type UpdateProductRequest struct {
	Name string `json:"name" binding:"required,max=20"`
}

// UpdateDescriptionRequest replaces the text of a description
type UpdateDescriptionRequest struct {
	Text string `json:"text" binding:"required"`
}
