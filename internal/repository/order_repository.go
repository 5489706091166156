package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/models"
	"storefront/internal/pricing"
)

type orderRepo struct {
	db   *pgxpool.Pool
	rule pricing.Rule
}

func NewOrderRepository(db *pgxpool.Pool, rule pricing.Rule) OrderRepository {
	return &orderRepo{db: db, rule: rule}
}

// cartSnapshot is a cart line with the product price read inside the
// checkout transaction.
type cartSnapshot struct {
	productID int
	quantity  int
	size      string
	color     string
	price     int
}

// PlaceOrder converts the user's cart into an order in one transaction:
// read the priced cart lines, recompute the total server-side, insert the
// order and one item per line freezing price_at_purchase, clear the cart.
// The caller-supplied total is verified against the recomputed one rather
// than trusted. Either every step commits or none do.
func (r *orderRepo) PlaceOrder(ctx context.Context, userID, totalAmount int, shippingAddress string) (int, error) {
	if userID <= 0 {
		return 0, fmt.Errorf("%w: user ID must be positive", ErrInvalidInput)
	}
	if totalAmount < 0 {
		return 0, fmt.Errorf("%w: total amount cannot be negative", ErrInvalidInput)
	}
	if shippingAddress == "" {
		return 0, fmt.Errorf("%w: shipping address cannot be empty", ErrInvalidInput)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to create transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	sql := `SELECT
		ci.product_id,
		ci.quantity,
		COALESCE(ci.size, ''),
		COALESCE(ci.color, ''),
		p.price
		FROM cart_items ci
		INNER JOIN products p ON ci.product_id = p.id
		WHERE ci.user_id = $1
		ORDER BY ci.id
		FOR UPDATE OF ci`

	rows, err := tx.Query(ctx, sql, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to read cart for checkout: %w", err)
	}

	var lines []cartSnapshot
	for rows.Next() {
		var line cartSnapshot
		err := rows.Scan(&line.productID, &line.quantity, &line.size, &line.color, &line.price)
		if err != nil {
			rows.Close()
			return 0, fmt.Errorf("failed to scan cart line: %w", err)
		}
		lines = append(lines, line)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("failed to complete row iteration: %w", err)
	}

	if len(lines) == 0 {
		return 0, ErrEmptyCart
	}

	var subtotal int
	for _, line := range lines {
		subtotal += line.price * line.quantity
	}
	total := subtotal + r.rule.Shipping(subtotal)

	if total != totalAmount {
		return 0, fmt.Errorf("%w: submitted %d, cart is %d", ErrTotalMismatch, totalAmount, total)
	}

	insert := `INSERT INTO orders (user_id, total_amount, status, shipping_address)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var orderID int
	err = tx.QueryRow(ctx, insert, userID, total, models.OrderStatusPending, shippingAddress).Scan(&orderID)
	if err != nil {
		return 0, fmt.Errorf("failed to create order: %w", err)
	}

	insertItem := `INSERT INTO order_items (order_id, product_id, quantity, size, color, price_at_purchase)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6)`

	for _, line := range lines {
		_, err = tx.Exec(ctx, insertItem,
			orderID,
			line.productID,
			line.quantity,
			line.size,
			line.color,
			line.price,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to create order item: %w", err)
		}
	}

	_, err = tx.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear cart: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return orderID, nil
}

func (r *orderRepo) GetByUserID(ctx context.Context, userID int) ([]models.Order, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user ID must be positive", ErrInvalidInput)
	}

	sql := `SELECT
		id,
		user_id,
		total_amount,
		status,
		shipping_address,
		created_at,
		updated_at
		FROM orders
		WHERE user_id = $1
		ORDER BY id DESC`

	rows, err := r.db.Query(ctx, sql, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders for user %d: %w", userID, err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		err := rows.Scan(
			&o.ID,
			&o.UserID,
			&o.TotalAmount,
			&o.Status,
			&o.ShippingAddress,
			&o.CreatedAt,
			&o.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to complete row iteration: %w", err)
	}

	return orders, nil
}

func (r *orderRepo) GetOrderItems(ctx context.Context, userID, orderID int) ([]models.OrderItem, error) {
	if orderID <= 0 {
		return nil, fmt.Errorf("%w: order ID must be positive", ErrInvalidInput)
	}

	// Ownership check first so another user's order reads as not found.
	var owner int
	err := r.db.QueryRow(ctx, `SELECT user_id FROM orders WHERE id = $1`, orderID).Scan(&owner)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get order %d: %w", orderID, err)
	}
	if owner != userID {
		return nil, ErrNotFound
	}

	sql := `SELECT
		id,
		order_id,
		product_id,
		quantity,
		COALESCE(size, ''),
		COALESCE(color, ''),
		price_at_purchase,
		created_at
		FROM order_items
		WHERE order_id = $1
		ORDER BY id`

	rows, err := r.db.Query(ctx, sql, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order items %d: %w", orderID, err)
	}
	defer rows.Close()

	var items []models.OrderItem
	for rows.Next() {
		var item models.OrderItem
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.Quantity,
			&item.Size,
			&item.Color,
			&item.PriceAtPurchase,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to complete row iteration: %w", err)
	}

	return items, nil
}
