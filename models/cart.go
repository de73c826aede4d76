package models

import "time"

// CartLine is one row of a shopping session: a distinct product and its
// quantity. Lines live in the session store, not in the database; the
// database only ever sees them again as order items.
type CartLine struct {
	ID         int64     `json:"id"` // synthetic, generation-time
	ProductID  uint      `json:"product_id"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	Image      string    `json:"image"`
	Category   string    `json:"category,omitempty"`
	Gender     string    `json:"gender,omitempty"`
	Collection string    `json:"collection,omitempty"`
	Quantity   int       `json:"quantity"`
	AddedAt    time.Time `json:"added_at"`
}
