package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/models"
)

type productRepo struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) ProductRepository {
	return &productRepo{db: db}
}

// Qualified so the list can be reused in joins against cart_items and
// wishlist_items without ambiguous column errors.
const productColumns = `
	products.id,
	products.name,
	products.slug,
	COALESCE(products.description, ''),
	products.price,
	COALESCE(products.category_id, 0),
	products.gender,
	products.images,
	products.sizes,
	products.colors,
	COALESCE(products.tags, '{}'),
	products.featured,
	products.in_stock,
	products.created_at,
	products.updated_at`

func scanProduct(row pgx.Row, p *models.Product) error {
	return row.Scan(
		&p.ID,
		&p.Name,
		&p.Slug,
		&p.Description,
		&p.Price,
		&p.CategoryID,
		&p.Gender,
		&p.Images,
		&p.Sizes,
		&p.Colors,
		&p.Tags,
		&p.Featured,
		&p.InStock,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
}

func collectProducts(rows pgx.Rows) ([]models.Product, error) {
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to complete row iteration: %w", err)
	}

	return products, nil
}

func (r *productRepo) GetAll(ctx context.Context) ([]models.Product, error) {
	sql := `SELECT ` + productColumns + ` FROM products ORDER BY id`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}

	return collectProducts(rows)
}

func (r *productRepo) GetByID(ctx context.Context, id int) (*models.Product, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: product ID must be positive", ErrInvalidInput)
	}

	sql := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	var p models.Product
	err := scanProduct(r.db.QueryRow(ctx, sql, id), &p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}

	return &p, nil
}

func (r *productRepo) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	if slug == "" {
		return nil, fmt.Errorf("%w: slug cannot be empty", ErrInvalidInput)
	}

	sql := `SELECT ` + productColumns + ` FROM products WHERE slug = $1`

	var p models.Product
	err := scanProduct(r.db.QueryRow(ctx, sql, slug), &p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get product by slug %q: %w", slug, err)
	}

	return &p, nil
}

func (r *productRepo) GetByGender(ctx context.Context, gender string) ([]models.Product, error) {
	if !models.ValidGender(gender) {
		return nil, fmt.Errorf("%w: invalid gender %q", ErrInvalidInput, gender)
	}

	sql := `SELECT ` + productColumns + ` FROM products WHERE gender = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, sql, gender)
	if err != nil {
		return nil, fmt.Errorf("failed to get products by gender %q: %w", gender, err)
	}

	return collectProducts(rows)
}

func (r *productRepo) GetByCategory(ctx context.Context, categoryID int) ([]models.Product, error) {
	if categoryID <= 0 {
		return nil, fmt.Errorf("%w: category ID must be positive", ErrInvalidInput)
	}

	sql := `SELECT ` + productColumns + ` FROM products WHERE category_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, sql, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get products by category %d: %w", categoryID, err)
	}

	return collectProducts(rows)
}

func (r *productRepo) GetFeatured(ctx context.Context) ([]models.Product, error) {
	sql := `SELECT ` + productColumns + ` FROM products WHERE featured ORDER BY id`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to get featured products: %w", err)
	}

	return collectProducts(rows)
}

func (r *productRepo) Search(ctx context.Context, query string) ([]models.Product, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: search query cannot be empty", ErrInvalidInput)
	}

	sql := `SELECT ` + productColumns + ` FROM products
		WHERE name ILIKE '%' || $1 || '%'
		   OR description ILIKE '%' || $1 || '%'
		   OR EXISTS (SELECT 1 FROM unnest(tags) AS tag WHERE tag ILIKE '%' || $1 || '%')
		ORDER BY id`

	rows, err := r.db.Query(ctx, sql, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search products %q: %w", query, err)
	}

	return collectProducts(rows)
}
