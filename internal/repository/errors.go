package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound           = errors.New("resource not found")
	ErrDuplicate          = errors.New("duplicate resource")
	ErrInvalidInput       = errors.New("invalid input data")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrTotalMismatch      = errors.New("order total does not match cart contents")
	ErrStorageUnavailable = errors.New("storage not available")
)

// PostgreSQL error codes this package maps onto sentinel errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

