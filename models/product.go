package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID              uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string         `gorm:"not null" json:"name"`
	Description     string         `json:"description"`
	Price           float64        `gorm:"not null" json:"price"`
	DiscountedPrice float64        `json:"discounted_price"`
	Image           string         `json:"image"`
	Gender          string         `json:"gender"`     // "men", "women" or empty
	Collection      string         `json:"collection"` // explicit override, usually empty
	Stock           int            `json:"stock"`
	Categories      []Category     `gorm:"many2many:product_categories;" json:"categories"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// EffectivePrice is the price a cart line is created with.
func (p Product) EffectivePrice() float64 {
	if p.DiscountedPrice > 0 && p.DiscountedPrice < p.Price {
		return p.DiscountedPrice
	}
	return p.Price
}
