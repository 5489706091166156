package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront/internal/models"
	"storefront/internal/pricing"
)

// Input validation runs before any connection is touched, so these pass a
// nil pool on purpose.

func TestPlaceOrderValidatesInput(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(nil, pricing.DefaultRule())

	_, err := repo.PlaceOrder(ctx, 0, 100000, "addr")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = repo.PlaceOrder(ctx, 1, -1, "addr")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = repo.PlaceOrder(ctx, 1, 100000, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCartValidatesInput(t *testing.T) {
	ctx := context.Background()
	repo := NewCartRepository(nil)

	assert.ErrorIs(t, repo.AddItem(ctx, 1, 2, 0, "", ""), ErrInvalidInput)
	assert.ErrorIs(t, repo.AddItem(ctx, 1, 2, -3, "", ""), ErrInvalidInput)
	assert.ErrorIs(t, repo.AddItem(ctx, 1, 0, 1, "", ""), ErrInvalidInput)
	assert.ErrorIs(t, repo.UpdateItem(ctx, 1, 2, 0), ErrInvalidInput)
	assert.ErrorIs(t, repo.RemoveItem(ctx, 1, 0), ErrInvalidInput)
}

func TestReviewValidatesRating(t *testing.T) {
	ctx := context.Background()
	repo := NewReviewRepository(nil)

	for _, rating := range []int{0, -1, 6} {
		err := repo.Create(ctx, &models.Review{UserID: 1, ProductID: 2, Rating: rating})
		assert.ErrorIs(t, err, ErrInvalidInput)
	}

	err := repo.Create(ctx, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestProductValidatesInput(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(nil)

	_, err := repo.GetByID(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = repo.GetBySlug(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = repo.GetByGender(ctx, "other")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = repo.Search(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
