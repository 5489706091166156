package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/models"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Upsert(ctx context.Context, user *models.User) error {
	if user == nil {
		return fmt.Errorf("%w: user cannot be nil", ErrInvalidInput)
	}
	if user.OpenID == "" {
		return fmt.Errorf("%w: open ID is required for upsert", ErrInvalidInput)
	}

	role := user.Role
	if role == "" {
		role = models.RoleUser
	}

	// Empty optional fields never overwrite values from an earlier sign-in.
	sql := `INSERT INTO users (open_id, name, email, login_method, role, last_signed_in)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (open_id) DO UPDATE SET
			name = COALESCE(NULLIF(EXCLUDED.name, ''), users.name),
			email = COALESCE(NULLIF(EXCLUDED.email, ''), users.email),
			login_method = COALESCE(NULLIF(EXCLUDED.login_method, ''), users.login_method),
			updated_at = NOW(),
			last_signed_in = NOW()
		RETURNING id, role, last_signed_in`

	err := r.db.QueryRow(ctx, sql,
		user.OpenID,
		user.Name,
		user.Email,
		user.LoginMethod,
		role,
	).Scan(&user.ID, &user.Role, &user.LastSignedIn)
	if err != nil {
		return fmt.Errorf("failed to upsert user %q: %w", user.OpenID, err)
	}

	return nil
}

func (r *userRepo) GetByOpenID(ctx context.Context, openID string) (*models.User, error) {
	if openID == "" {
		return nil, fmt.Errorf("%w: open ID cannot be empty", ErrInvalidInput)
	}

	sql := `SELECT
		id,
		open_id,
		COALESCE(name, ''),
		COALESCE(email, ''),
		COALESCE(login_method, ''),
		role,
		created_at,
		updated_at,
		last_signed_in
		FROM users
		WHERE open_id = $1`

	var u models.User
	err := r.db.QueryRow(ctx, sql, openID).Scan(
		&u.ID,
		&u.OpenID,
		&u.Name,
		&u.Email,
		&u.LoginMethod,
		&u.Role,
		&u.CreatedAt,
		&u.UpdatedAt,
		&u.LastSignedIn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user by open ID %q: %w", openID, err)
	}

	return &u, nil
}
