package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/models"
)

type categoryRepo struct {
	db *pgxpool.Pool
}

func NewCategoryRepository(db *pgxpool.Pool) CategoryRepository {
	return &categoryRepo{db: db}
}

func collectCategories(rows pgx.Rows) ([]models.Category, error) {
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Gender, &c.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to complete row iteration: %w", err)
	}

	return categories, nil
}

func (r *categoryRepo) GetAll(ctx context.Context) ([]models.Category, error) {
	sql := `SELECT id, name, slug, gender, created_at FROM categories ORDER BY id`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to get all categories: %w", err)
	}

	return collectCategories(rows)
}

func (r *categoryRepo) GetByGender(ctx context.Context, gender string) ([]models.Category, error) {
	if !models.ValidGender(gender) {
		return nil, fmt.Errorf("%w: invalid gender %q", ErrInvalidInput, gender)
	}

	sql := `SELECT id, name, slug, gender, created_at FROM categories WHERE gender = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, sql, gender)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories by gender %q: %w", gender, err)
	}

	return collectCategories(rows)
}
