package models

import "time"

// Email progress states recorded on an order while the two notification
// emails are sent. A row stuck in 'owner_notified' means the owner got
// the order but the customer never received a confirmation.
const (
	OrderEmailPending       = "pending"
	OrderEmailOwnerNotified = "owner_notified"
	OrderEmailCompleted     = "completed"
)

// Order is the model for the 'orders' table: one checkout submission,
// snapshotted at submission time.
type Order struct {
	ID          int64     `json:"id" db:"id"`
	Reference   string    `json:"reference" db:"reference"`
	FirstName   string    `json:"firstName" db:"first_name"`
	LastName    string    `json:"lastName" db:"last_name"`
	Email       string    `json:"email" db:"email"`
	Phone       string    `json:"phone" db:"phone"`
	Street      string    `json:"street" db:"street"`
	City        string    `json:"city" db:"city"`
	Zip         string    `json:"zip" db:"zip"`
	Note        string    `json:"note" db:"note"`
	Realization bool      `json:"realization" db:"realization"`
	ProjectDesc string    `json:"projectDesc" db:"project_desc"`
	Total       int64     `json:"total" db:"total"`
	Currency    string    `json:"currency" db:"currency"`
	EmailState  string    `json:"emailState" db:"email_state"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// OrderLine is the model for the 'order_lines' table: the client-supplied
// {product, quantity, price} triple as submitted.
type OrderLine struct {
	ID          int64  `json:"id" db:"id"`
	OrderID     int64  `json:"orderId" db:"order_id"`
	ProductSlug string `json:"productSlug" db:"product_slug"`
	Quantity    int    `json:"quantity" db:"quantity"`
	Price       int64  `json:"price" db:"price"`
}
