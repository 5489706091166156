package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/models"
)

type reviewRepo struct {
	db *pgxpool.Pool
}

func NewReviewRepository(db *pgxpool.Pool) ReviewRepository {
	return &reviewRepo{db: db}
}

// Create relies on the (user_id, product_id) unique index: the insert
// itself reports a duplicate, so there is no check-then-act race.
func (r *reviewRepo) Create(ctx context.Context, review *models.Review) error {
	if review == nil {
		return fmt.Errorf("%w: review cannot be nil", ErrInvalidInput)
	}
	if review.UserID <= 0 {
		return fmt.Errorf("%w: user ID must be positive", ErrInvalidInput)
	}
	if review.ProductID <= 0 {
		return fmt.Errorf("%w: product ID must be positive", ErrInvalidInput)
	}
	if review.Rating < 1 || review.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidInput)
	}

	sql := `INSERT INTO reviews (product_id, user_id, rating, comment)
		VALUES ($1, $2, $3, NULLIF($4, ''))
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, sql,
		review.ProductID,
		review.UserID,
		review.Rating,
		review.Comment,
	).Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return fmt.Errorf("product %d already reviewed: %w", review.ProductID, ErrDuplicate)
		}
		if isPgError(err, pgForeignKeyViolation) {
			return fmt.Errorf("product %d: %w", review.ProductID, ErrNotFound)
		}
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}

func (r *reviewRepo) GetProductRating(ctx context.Context, productID int) (*models.ProductRating, error) {
	if productID <= 0 {
		return nil, fmt.Errorf("%w: product ID must be positive", ErrInvalidInput)
	}

	sql := `SELECT COALESCE(AVG(rating), 0)::float8, COUNT(*)
		FROM reviews
		WHERE product_id = $1`

	var rating models.ProductRating
	err := r.db.QueryRow(ctx, sql, productID).Scan(&rating.AverageRating, &rating.ReviewCount)
	if err != nil {
		return nil, fmt.Errorf("failed to get rating for product %d: %w", productID, err)
	}

	return &rating, nil
}

func (r *reviewRepo) GetProductReviews(ctx context.Context, productID int) ([]models.Review, error) {
	if productID <= 0 {
		return nil, fmt.Errorf("%w: product ID must be positive", ErrInvalidInput)
	}

	sql := `SELECT
		id,
		product_id,
		user_id,
		rating,
		COALESCE(comment, ''),
		created_at,
		updated_at
		FROM reviews
		WHERE product_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, sql, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get reviews for product %d: %w", productID, err)
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var rev models.Review
		err := rows.Scan(
			&rev.ID,
			&rev.ProductID,
			&rev.UserID,
			&rev.Rating,
			&rev.Comment,
			&rev.CreatedAt,
			&rev.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to complete row iteration: %w", err)
	}

	return reviews, nil
}
