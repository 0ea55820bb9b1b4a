package models

// Category represents a product category. Order is the display rank;
// the relational backend stores it in an order_index column.
type Category struct {
	ID          string `json:"id" validate:"omitempty,uuid"`
	Name        string `json:"name" validate:"required,min=1"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Order       int    `json:"order"`
	CreatedDate string `json:"created_date"`
}

// CategoryFields is the allowlist of body fields accepted by category
// create/update handlers.
var CategoryFields = []string{"name", "description", "image_url", "order"}
