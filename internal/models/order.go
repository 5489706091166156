package models

import "time"

// Order status values. Orders are created as pending; nothing in this
// service advances them further.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Order is financially immutable once created: TotalAmount and the item
// prices below never change, even when catalog prices do.
type Order struct {
	ID              int       `json:"id"`
	UserID          int       `json:"user_id"`
	TotalAmount     int       `json:"total_amount"`
	Status          string    `json:"status"`
	ShippingAddress string    `json:"shipping_address"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// OrderItem snapshots a cart line at checkout. PriceAtPurchase is the
// product price read inside the checkout transaction, frozen forever.
type OrderItem struct {
	ID              int       `json:"id"`
	OrderID         int       `json:"order_id"`
	ProductID       int       `json:"product_id"`
	Quantity        int       `json:"quantity"`
	Size            string    `json:"size,omitempty"`
	Color           string    `json:"color,omitempty"`
	PriceAtPurchase int       `json:"price_at_purchase"`
	CreatedAt       time.Time `json:"created_at"`
}
