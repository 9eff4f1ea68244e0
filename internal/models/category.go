package models

import "time"

// Category represents a catalog category. Categories are managed out of band;
// this API only reads them.
type Category struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Slug      string    `db:"slug" json:"slug"`
	CreatedAt time.Time `db:"created_at" json:"-"`

	// Computed at read time by joining active products.
	ProductCount int `db:"product_count" json:"product_count"`
}
