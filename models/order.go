package models

import "time"

type OrderStatus string

const (
	// Order statuses in delivery-playback order
	OrderStatusPending        OrderStatus = "pending"          // created, not yet confirmed
	OrderStatusPlaced         OrderStatus = "placed"           // confirmed at checkout
	OrderStatusPacked         OrderStatus = "packed"           // packed for dispatch
	OrderStatusShipped        OrderStatus = "shipped"          // handed to the courier
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery" // on the last leg
	OrderStatusDelivered      OrderStatus = "delivered"        // customer received the item
	OrderStatusCancelled      OrderStatus = "cancelled"        // cancelled before delivery
)

type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	OrderRef    string      `gorm:"uniqueIndex" json:"order_ref"`
	UserID      string      `gorm:"index" json:"user_id"`
	UserName    string      `gorm:"not null" json:"user_name"`
	UserEmail   string      `json:"user_email"`
	UserPhone   string      `gorm:"not null" json:"user_phone"`
	Location    string      `gorm:"not null" json:"location"`
	Items       []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"products"`
	TotalAmount float64     `json:"total_amount"`
	Status      OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"order_status"`
	CreatedAt   time.Time   `json:"created_at"`
}

type OrderItem struct {
	ID           uint    `gorm:"primaryKey" json:"-"`
	OrderID      uint    `gorm:"index" json:"-"`
	ProductID    uint    `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductPrice float64 `json:"product_price"`
	ProductImage string  `json:"product_image"`
	Quantity     int     `json:"quantity"`
	Collection   string  `json:"collection"`
}
