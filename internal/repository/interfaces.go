package repository

import (
	"context"

	"storefront/internal/models"
)

// ProductRepository is the read-only catalog surface.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int) (*models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	GetByGender(ctx context.Context, gender string) ([]models.Product, error)
	GetByCategory(ctx context.Context, categoryID int) ([]models.Product, error)
	GetFeatured(ctx context.Context) ([]models.Product, error)
	Search(ctx context.Context, query string) ([]models.Product, error)
}

type CategoryRepository interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	GetByGender(ctx context.Context, gender string) ([]models.Category, error)
}

type UserRepository interface {
	// Upsert inserts or refreshes the row keyed by user.OpenID and fills
	// user.ID and user.Role from the database.
	Upsert(ctx context.Context, user *models.User) error
	GetByOpenID(ctx context.Context, openID string) (*models.User, error)
}

// CartRepository owns the per-user cart aggregate. Mutations on a line are
// scoped by owner: a line that exists but belongs to someone else is
// reported as ErrNotFound, never silently ignored.
type CartRepository interface {
	AddItem(ctx context.Context, userID, productID, quantity int, size, color string) error
	UpdateItem(ctx context.Context, userID, itemID, quantity int) error
	RemoveItem(ctx context.Context, userID, itemID int) error
	GetItems(ctx context.Context, userID int) ([]models.CartLine, error)
	Clear(ctx context.Context, userID int) error
}

type WishlistRepository interface {
	AddItem(ctx context.Context, userID, productID int) error
	RemoveItem(ctx context.Context, userID, itemID int) error
	GetItems(ctx context.Context, userID int) ([]models.WishlistLine, error)
}

// OrderRepository owns checkout. PlaceOrder converts the user's cart into
// an order plus items in one storage transaction and returns the order id.
type OrderRepository interface {
	PlaceOrder(ctx context.Context, userID, totalAmount int, shippingAddress string) (int, error)
	GetByUserID(ctx context.Context, userID int) ([]models.Order, error)
	GetOrderItems(ctx context.Context, userID, orderID int) ([]models.OrderItem, error)
}

type ReviewRepository interface {
	// Create fills review.ID on success and reports ErrDuplicate when the
	// user already reviewed the product.
	Create(ctx context.Context, review *models.Review) error
	GetProductRating(ctx context.Context, productID int) (*models.ProductRating, error)
	GetProductReviews(ctx context.Context, productID int) ([]models.Review, error)
}
