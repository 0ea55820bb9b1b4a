package models

// Product represents an article of the catalog. Monetary fields are
// integer FCFA amounts.
type Product struct {
	ID               string   `json:"id" validate:"omitempty,uuid"`
	Name             string   `json:"name" validate:"required,min=1"`
	Description      string   `json:"description,omitempty"`
	ShortDescription string   `json:"short_description,omitempty"`
	Price            int      `json:"price" validate:"gte=0"`
	OriginalPrice    int      `json:"original_price" validate:"gte=0"`
	CategoryID       string   `json:"category_id"`
	Images           []string `json:"images"`
	IsNew            bool     `json:"is_new"`
	IsPromo          bool     `json:"is_promo"`
	IsFeatured       bool     `json:"is_featured"`
	IsAvailable      bool     `json:"is_available"`
	Stock            int      `json:"stock" validate:"gte=0"`
	TechnicalDetails string   `json:"technical_details,omitempty"`
	Views            int      `json:"views"`
	CreatedDate      string   `json:"created_date"`
}

// ProductFields is the allowlist of body fields accepted by product
// create/update handlers; anything else is silently dropped.
var ProductFields = []string{
	"name", "description", "short_description", "price", "original_price",
	"category_id", "images", "is_new", "is_promo", "is_featured",
	"is_available", "stock", "technical_details", "views",
}
