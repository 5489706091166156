package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/models"
)

// Without a database, reads degrade to empty results and cart writes
// no-op, but the writes that back invariants must refuse loudly.

func TestUnavailableReadsAreEmpty(t *testing.T) {
	ctx := context.Background()

	products, err := NewUnavailableProducts().GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)

	_, err = NewUnavailableProducts().GetBySlug(ctx, "anything")
	assert.ErrorIs(t, err, ErrNotFound)

	lines, err := NewUnavailableCart().GetItems(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, lines)

	orders, err := NewUnavailableOrders().GetByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, orders)

	rating, err := NewUnavailableReviews().GetProductRating(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, &models.ProductRating{}, rating)
}

func TestUnavailableCartWritesNoOp(t *testing.T) {
	ctx := context.Background()
	cart := NewUnavailableCart()

	assert.NoError(t, cart.AddItem(ctx, 1, 2, 3, "M", "Black"))
	assert.NoError(t, cart.UpdateItem(ctx, 1, 2, 3))
	assert.NoError(t, cart.RemoveItem(ctx, 1, 2))
	assert.NoError(t, cart.Clear(ctx, 1))

	wishlist := NewUnavailableWishlist()
	assert.NoError(t, wishlist.AddItem(ctx, 1, 2))
	assert.NoError(t, wishlist.RemoveItem(ctx, 1, 2))
}

func TestUnavailableCriticalWritesFail(t *testing.T) {
	ctx := context.Background()

	_, err := NewUnavailableOrders().PlaceOrder(ctx, 1, 100000, "addr")
	assert.ErrorIs(t, err, ErrStorageUnavailable)

	err = NewUnavailableReviews().Create(ctx, &models.Review{UserID: 1, ProductID: 2, Rating: 5})
	assert.ErrorIs(t, err, ErrStorageUnavailable)

	err = NewUnavailableUsers().Upsert(ctx, &models.User{OpenID: "abc"})
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}
