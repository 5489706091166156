package models

import "time"

// CartItem is one line of a user's cart. Repeated adds for the same
// (product, size, color) create separate lines; they are never merged.
type CartItem struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	ProductID int       `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Size      string    `json:"size,omitempty"`
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CartLine is a cart item joined with its product, as served to the cart
// and checkout views.
type CartLine struct {
	CartItem
	Product Product `json:"product"`
}

type WishlistItem struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	ProductID int       `json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
}

type WishlistLine struct {
	WishlistItem
	Product Product `json:"product"`
}
