package models

// Category defines the struct for the 'categories' table: one storefront
// navigation entry (vinyl floors, stair coverings, skirtings, ...).
type Category struct {
	Slug         string `json:"slug" db:"slug"`
	Title        string `json:"title" db:"title"`
	ProductCount int    `json:"productCount" db:"product_count"`
}
