package repository

import (
	"context"

	"storefront/internal/models"
)

// The Unavailable* repositories are used when no database is configured,
// so local tooling can still boot the service. Reads answer empty
// collections, cart and wishlist writes succeed as no-ops, and the writes
// whose silent loss would break invariants (checkout, review creation,
// user upsert) fail with ErrStorageUnavailable.

type unavailableProducts struct{}

func NewUnavailableProducts() ProductRepository { return unavailableProducts{} }

func (unavailableProducts) GetAll(context.Context) ([]models.Product, error) { return nil, nil }
func (unavailableProducts) GetByID(context.Context, int) (*models.Product, error) {
	return nil, ErrNotFound
}
func (unavailableProducts) GetBySlug(context.Context, string) (*models.Product, error) {
	return nil, ErrNotFound
}
func (unavailableProducts) GetByGender(context.Context, string) ([]models.Product, error) {
	return nil, nil
}
func (unavailableProducts) GetByCategory(context.Context, int) ([]models.Product, error) {
	return nil, nil
}
func (unavailableProducts) GetFeatured(context.Context) ([]models.Product, error) { return nil, nil }
func (unavailableProducts) Search(context.Context, string) ([]models.Product, error) {
	return nil, nil
}

type unavailableCategories struct{}

func NewUnavailableCategories() CategoryRepository { return unavailableCategories{} }

func (unavailableCategories) GetAll(context.Context) ([]models.Category, error) { return nil, nil }
func (unavailableCategories) GetByGender(context.Context, string) ([]models.Category, error) {
	return nil, nil
}

type unavailableUsers struct{}

func NewUnavailableUsers() UserRepository { return unavailableUsers{} }

func (unavailableUsers) Upsert(context.Context, *models.User) error { return ErrStorageUnavailable }
func (unavailableUsers) GetByOpenID(context.Context, string) (*models.User, error) {
	return nil, ErrNotFound
}

type unavailableCart struct{}

func NewUnavailableCart() CartRepository { return unavailableCart{} }

func (unavailableCart) AddItem(context.Context, int, int, int, string, string) error { return nil }
func (unavailableCart) UpdateItem(context.Context, int, int, int) error              { return nil }
func (unavailableCart) RemoveItem(context.Context, int, int) error                   { return nil }
func (unavailableCart) GetItems(context.Context, int) ([]models.CartLine, error)     { return nil, nil }
func (unavailableCart) Clear(context.Context, int) error                             { return nil }

type unavailableWishlist struct{}

func NewUnavailableWishlist() WishlistRepository { return unavailableWishlist{} }

func (unavailableWishlist) AddItem(context.Context, int, int) error    { return nil }
func (unavailableWishlist) RemoveItem(context.Context, int, int) error { return nil }
func (unavailableWishlist) GetItems(context.Context, int) ([]models.WishlistLine, error) {
	return nil, nil
}

type unavailableOrders struct{}

func NewUnavailableOrders() OrderRepository { return unavailableOrders{} }

func (unavailableOrders) PlaceOrder(context.Context, int, int, string) (int, error) {
	return 0, ErrStorageUnavailable
}
func (unavailableOrders) GetByUserID(context.Context, int) ([]models.Order, error) {
	return nil, nil
}
func (unavailableOrders) GetOrderItems(context.Context, int, int) ([]models.OrderItem, error) {
	return nil, nil
}

type unavailableReviews struct{}

func NewUnavailableReviews() ReviewRepository { return unavailableReviews{} }

func (unavailableReviews) Create(context.Context, *models.Review) error {
	return ErrStorageUnavailable
}
func (unavailableReviews) GetProductRating(context.Context, int) (*models.ProductRating, error) {
	return &models.ProductRating{}, nil
}
func (unavailableReviews) GetProductReviews(context.Context, int) ([]models.Review, error) {
	return nil, nil
}
