package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/models"
)

type cartRepo struct {
	db *pgxpool.Pool
}

func NewCartRepository(db *pgxpool.Pool) CartRepository {
	return &cartRepo{db: db}
}

// AddItem always inserts a new line. Two adds for the same
// (product, size, color) yield two independently adjustable lines.
func (r *cartRepo) AddItem(ctx context.Context, userID, productID, quantity int, size, color string) error {
	if userID <= 0 {
		return fmt.Errorf("%w: user ID must be positive", ErrInvalidInput)
	}
	if productID <= 0 {
		return fmt.Errorf("%w: product ID must be positive", ErrInvalidInput)
	}
	if quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", ErrInvalidInput)
	}

	sql := `INSERT INTO cart_items (user_id, product_id, quantity, size, color)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''))`

	_, err := r.db.Exec(ctx, sql, userID, productID, quantity, size, color)
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return fmt.Errorf("product %d: %w", productID, ErrNotFound)
		}
		return fmt.Errorf("failed to add cart item: %w", err)
	}

	return nil
}

func (r *cartRepo) UpdateItem(ctx context.Context, userID, itemID, quantity int) error {
	if itemID <= 0 {
		return fmt.Errorf("%w: item ID must be positive", ErrInvalidInput)
	}
	if quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", ErrInvalidInput)
	}

	sql := `UPDATE cart_items
		SET quantity = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3`

	result, err := r.db.Exec(ctx, sql, quantity, itemID, userID)
	if err != nil {
		return fmt.Errorf("failed to update cart item %d: %w", itemID, err)
	}

	// Zero rows covers both an unknown line and a line owned by another
	// user; neither is a silent no-op.
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *cartRepo) RemoveItem(ctx context.Context, userID, itemID int) error {
	if itemID <= 0 {
		return fmt.Errorf("%w: item ID must be positive", ErrInvalidInput)
	}

	sql := `DELETE FROM cart_items WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(ctx, sql, itemID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove cart item %d: %w", itemID, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *cartRepo) GetItems(ctx context.Context, userID int) ([]models.CartLine, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user ID must be positive", ErrInvalidInput)
	}

	sql := `SELECT
		ci.id,
		ci.user_id,
		ci.product_id,
		ci.quantity,
		COALESCE(ci.size, ''),
		COALESCE(ci.color, ''),
		ci.created_at,
		ci.updated_at,
		` + productColumns + `
		FROM cart_items ci
		INNER JOIN products ON ci.product_id = products.id
		WHERE ci.user_id = $1
		ORDER BY ci.id`

	rows, err := r.db.Query(ctx, sql, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart items: %w", err)
	}
	defer rows.Close()

	var lines []models.CartLine
	for rows.Next() {
		var l models.CartLine
		err := rows.Scan(
			&l.ID,
			&l.UserID,
			&l.ProductID,
			&l.Quantity,
			&l.Size,
			&l.Color,
			&l.CreatedAt,
			&l.UpdatedAt,
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
			return nil, fmt.Errorf("failed to scan cart line: %w", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to complete row iteration: %w", err)
	}

	return lines, nil
}

func (r *cartRepo) Clear(ctx context.Context, userID int) error {
	if userID <= 0 {
		return fmt.Errorf("%w: user ID must be positive", ErrInvalidInput)
	}

	_, err := r.db.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	return nil
}
