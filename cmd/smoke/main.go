// Command smoke runs the checkout flow end to end against a live database:
// seed a user and two products, fill the cart, place the order, and verify
// the invariants (server-verified total, frozen item prices, empty cart,
// review uniqueness).
package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/database"
	"storefront/internal/models"
	"storefront/internal/pricing"
	"storefront/internal/repository"
)

func main() {
	cfg, err := database.LoadConfig()
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL must be set for the smoke run")
	}

	pool, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}
	defer pool.Close()

	ctx := context.Background()
	if err := database.Migrate(ctx, pool, database.DefaultMigrationsDir); err != nil {
		log.Fatal("migrations failed: ", err)
	}

	rule := cfg.PricingRule()
	runCheckoutFlow(ctx, pool, rule)
}

func runCheckoutFlow(ctx context.Context, pool *pgxpool.Pool, rule pricing.Rule) {
	users := repository.NewUserRepository(pool)
	cart := repository.NewCartRepository(pool)
	orders := repository.NewOrderRepository(pool, rule)
	reviews := repository.NewReviewRepository(pool)

	fmt.Println("=== Setting up test data ===")

	user := &models.User{OpenID: "smoke-checkout-user", Name: "Smoke Checkout"}
	if err := users.Upsert(ctx, user); err != nil {
		log.Fatal("❌ user upsert failed: ", err)
	}
	fmt.Printf("✅ Upserted user ID %d\n", user.ID)

	shirtID := seedProduct(ctx, pool, "smoke-shirt", 20000)
	dressID := seedProduct(ctx, pool, "smoke-dress", 60000)

	if err := cart.Clear(ctx, user.ID); err != nil {
		log.Fatal("❌ cart clear failed: ", err)
	}

	fmt.Println("\n=== Cart line independence ===")

	// Identical adds accumulate separate lines, never a merged quantity.
	for i := 0; i < 2; i++ {
		if err := cart.AddItem(ctx, user.ID, shirtID, 1, "M", "Black"); err != nil {
			log.Fatal("❌ add shirt failed: ", err)
		}
	}
	dupes, err := cart.GetItems(ctx, user.ID)
	if err != nil {
		log.Fatal("❌ get cart failed: ", err)
	}
	if len(dupes) != 2 {
		log.Fatalf("❌ expected 2 distinct lines for identical adds, got %d", len(dupes))
	}
	fmt.Println("✅ Identical adds create distinct lines")

	if err := cart.Clear(ctx, user.ID); err != nil {
		log.Fatal("❌ cart clear failed: ", err)
	}

	fmt.Println("\n=== Filling the cart ===")

	if err := cart.AddItem(ctx, user.ID, shirtID, 2, "M", "Black"); err != nil {
		log.Fatal("❌ add shirt failed: ", err)
	}
	if err := cart.AddItem(ctx, user.ID, dressID, 1, "", ""); err != nil {
		log.Fatal("❌ add dress failed: ", err)
	}

	lines, err := cart.GetItems(ctx, user.ID)
	if err != nil {
		log.Fatal("❌ get cart failed: ", err)
	}
	if len(lines) != 2 {
		log.Fatalf("❌ expected 2 cart lines, got %d", len(lines))
	}

	totals := rule.Totals(lines)
	fmt.Printf("✅ Cart: subtotal %d, shipping %d, total %d\n", totals.Subtotal, totals.Shipping, totals.Total)

	fmt.Println("\n=== Placing the order ===")

	// A tampered total must be rejected before anything is written.
	if _, err := orders.PlaceOrder(ctx, user.ID, totals.Total-1, "smoke addr"); !errors.Is(err, repository.ErrTotalMismatch) {
		log.Fatal("❌ tampered total should be rejected, got: ", err)
	}
	fmt.Println("✅ Tampered total rejected")

	orderID, err := orders.PlaceOrder(ctx, user.ID, totals.Total, "smoke addr")
	if err != nil {
		log.Fatal("❌ place order failed: ", err)
	}
	fmt.Printf("✅ Placed order %d\n", orderID)

	after, err := cart.GetItems(ctx, user.ID)
	if err != nil {
		log.Fatal("❌ get cart failed: ", err)
	}
	if len(after) != 0 {
		log.Fatalf("❌ cart should be empty after checkout, has %d lines", len(after))
	}
	fmt.Println("✅ Cart is empty after checkout")

	items, err := orders.GetOrderItems(ctx, user.ID, orderID)
	if err != nil {
		log.Fatal("❌ get order items failed: ", err)
	}
	if len(items) != 2 {
		log.Fatalf("❌ expected 2 order items, got %d", len(items))
	}

	// Raise a catalog price; the frozen order prices must not move.
	if _, err := pool.Exec(ctx, `UPDATE products SET price = price + 1000 WHERE id = $1`, shirtID); err != nil {
		log.Fatal("❌ price update failed: ", err)
	}
	recheck, err := orders.GetOrderItems(ctx, user.ID, orderID)
	if err != nil {
		log.Fatal("❌ get order items failed: ", err)
	}
	for i := range items {
		if recheck[i].PriceAtPurchase != items[i].PriceAtPurchase {
			log.Fatal("❌ price_at_purchase changed after a catalog price update")
		}
	}
	fmt.Println("✅ Order item prices are frozen")

	// An empty cart must not produce a dangling order.
	if _, err := orders.PlaceOrder(ctx, user.ID, 0, "smoke addr"); !errors.Is(err, repository.ErrEmptyCart) {
		log.Fatal("❌ empty cart checkout should be rejected, got: ", err)
	}
	fmt.Println("✅ Empty cart checkout rejected")

	fmt.Println("\n=== Review uniqueness ===")

	review := &models.Review{ProductID: shirtID, UserID: user.ID, Rating: 5, Comment: "smoke"}
	err = reviews.Create(ctx, review)
	if err != nil && !errors.Is(err, repository.ErrDuplicate) {
		log.Fatal("❌ create review failed: ", err)
	}
	dup := &models.Review{ProductID: shirtID, UserID: user.ID, Rating: 4}
	if err := reviews.Create(ctx, dup); !errors.Is(err, repository.ErrDuplicate) {
		log.Fatal("❌ second review should conflict, got: ", err)
	}
	fmt.Println("✅ Second review reports a conflict")

	rating, err := reviews.GetProductRating(ctx, shirtID)
	if err != nil {
		log.Fatal("❌ get rating failed: ", err)
	}
	fmt.Printf("✅ Product rating %.1f over %d review(s)\n", rating.AverageRating, rating.ReviewCount)

	fmt.Println("\nAll smoke checks passed")
}

func seedProduct(ctx context.Context, pool *pgxpool.Pool, slug string, price int) int {
	sql := `INSERT INTO products (name, slug, price, gender, images, sizes, colors)
		VALUES ($1, $2, $3, 'unisex', '{}', '{}', '{}')
		ON CONFLICT (slug) DO UPDATE SET price = EXCLUDED.price
		RETURNING id`

	var id int
	if err := pool.QueryRow(ctx, sql, slug, slug, price).Scan(&id); err != nil {
		log.Fatalf("❌ seed product %s failed: %v", slug, err)
	}
	fmt.Printf("✅ Seeded product %s (ID %d, price %d)\n", slug, id, price)
	return id
}
