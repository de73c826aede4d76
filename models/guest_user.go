package models

import "time"

// GuestUser is a short-lived identity that owns a cart and wishlist
// without signing up.
type GuestUser struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (g GuestUser) Expired() bool {
	return time.Now().After(g.ExpiresAt)
}
