package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/models"
)

type wishlistRepo struct {
	db *pgxpool.Pool
}

func NewWishlistRepository(db *pgxpool.Pool) WishlistRepository {
	return &wishlistRepo{db: db}
}

// AddItem is idempotent: a repeated add for the same product succeeds
// without creating a second entry.
func (r *wishlistRepo) AddItem(ctx context.Context, userID, productID int) error {
	if userID <= 0 {
		return fmt.Errorf("%w: user ID must be positive", ErrInvalidInput)
	}
	if productID <= 0 {
		return fmt.Errorf("%w: product ID must be positive", ErrInvalidInput)
	}

	sql := `INSERT INTO wishlist_items (user_id, product_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, product_id) DO NOTHING`

	_, err := r.db.Exec(ctx, sql, userID, productID)
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return fmt.Errorf("product %d: %w", productID, ErrNotFound)
		}
		return fmt.Errorf("failed to add wishlist item: %w", err)
	}

	return nil
}

func (r *wishlistRepo) RemoveItem(ctx context.Context, userID, itemID int) error {
	if itemID <= 0 {
		return fmt.Errorf("%w: item ID must be positive", ErrInvalidInput)
	}

	sql := `DELETE FROM wishlist_items WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(ctx, sql, itemID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove wishlist item %d: %w", itemID, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *wishlistRepo) GetItems(ctx context.Context, userID int) ([]models.WishlistLine, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user ID must be positive", ErrInvalidInput)
	}

	sql := `SELECT
		wi.id,
		wi.user_id,
		wi.product_id,
		wi.created_at,
		` + productColumns + `
		FROM wishlist_items wi
		INNER JOIN products ON wi.product_id = products.id
		WHERE wi.user_id = $1
		ORDER BY wi.id`

	rows, err := r.db.Query(ctx, sql, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get wishlist items: %w", err)
	}
	defer rows.Close()

	var lines []models.WishlistLine
	for rows.Next() {
		var l models.WishlistLine
		err := rows.Scan(
			&l.ID,
			&l.UserID,
			&l.ProductID,
			&l.CreatedAt,
			&l.Product.ID,
			&l.Product.Name,
			&l.Product.Slug,
			&l.Product.Description,
			&l.Product.Price,
			&l.Product.CategoryID,
			&l.Product.Gender,
			&l.Product.Images,
			&l.Product.Sizes,
			&l.Product.Colors,
			&l.Product.Tags,
			&l.Product.Featured,
			&l.Product.InStock,
			&l.Product.CreatedAt,
			&l.Product.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wishlist line: %w", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to complete row iteration: %w", err)
	}

	return lines, nil
}
