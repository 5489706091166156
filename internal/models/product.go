package models

import "time"

// Gender values accepted by the catalog.
const (
	GenderWomen  = "women"
	GenderMen    = "men"
	GenderUnisex = "unisex"
)

func ValidGender(g string) bool {
	return g == GenderWomen || g == GenderMen || g == GenderUnisex
}

// Product prices are stored in minor currency units (cents).
type Product struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Price       int       `json:"price"`
	CategoryID  int       `json:"category_id"`
	Gender      string    `json:"gender"`
	Images      []string  `json:"images"`
	Sizes       []string  `json:"sizes"`
	Colors      []string  `json:"colors"`
	Tags        []string  `json:"tags"`
	Featured    bool      `json:"featured"`
	InStock     bool      `json:"in_stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Category struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Gender    string    `json:"gender"`
	CreatedAt time.Time `json:"created_at"`
}
