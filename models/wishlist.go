package models

import "time"

type WishlistItem struct {
	ID        int64     `json:"id"`
	ProductID uint      `json:"product_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Image     string    `json:"image"`
	Category  string    `json:"category,omitempty"`
	Stock     int       `json:"stock"`
	AddedAt   time.Time `json:"added_at"`
}
