package models

// OrderItem is a denormalized snapshot of a product at checkout time,
// not a live reference to the catalog.
type OrderItem struct {
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	ProductImage string `json:"product_image"`
	Quantity     int    `json:"quantity"`
	Price        int    `json:"price"`
	Total        int    `json:"total"`
}

// Order statuses. The API permits any transition between them; there is
// no enforced transition graph.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusPreparing = "preparing"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// OrderStatuses lists every accepted order status value.
var OrderStatuses = []string{
	StatusPending, StatusConfirmed, StatusPreparing,
	StatusShipped, StatusDelivered, StatusCancelled,
}

// Order represents a customer order. Orders are never hard-deleted;
// cancellation is a status change.
type Order struct {
	ID            string      `json:"id" validate:"omitempty,uuid"`
	OrderNumber   string      `json:"order_number"`
	ClientName    string      `json:"client_name" validate:"required"`
	ClientPhone   string      `json:"client_phone" validate:"required"`
	ClientEmail   string      `json:"client_email,omitempty" validate:"omitempty,email"`
	ClientAddress string      `json:"client_address" validate:"required"`
	Items         []OrderItem `json:"items"`
	Subtotal      int         `json:"subtotal"`
	DeliveryFee   int         `json:"delivery_fee"`
	Total         int         `json:"total"`
	Status        string      `json:"status"`
	Notes         string      `json:"notes,omitempty"`
	AdminNotes    string      `json:"admin_notes,omitempty"`
	CreatedDate   string      `json:"created_date"`
}

// OrderFields is the allowlist of body fields accepted by order
// create/update handlers.
var OrderFields = []string{
	"order_number", "client_name", "client_phone", "client_email",
	"client_address", "items", "subtotal", "delivery_fee", "total",
	"status", "notes", "admin_notes",
}
