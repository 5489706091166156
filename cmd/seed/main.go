// Command seed loads a YAML catalog fixture into the database. Reseeding
// is idempotent: categories and products are upserted by slug.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"gopkg.in/yaml.v3"

	"storefront/internal/database"
	"storefront/internal/models"
)

type seedCategory struct {
	Name   string `yaml:"name"`
	Slug   string `yaml:"slug"`
	Gender string `yaml:"gender"`
}

type seedProduct struct {
	Name        string   `yaml:"name"`
	Slug        string   `yaml:"slug"`
	Description string   `yaml:"description"`
	Price       int      `yaml:"price"`
	Category    string   `yaml:"category"`
	Gender      string   `yaml:"gender"`
	Images      []string `yaml:"images"`
	Sizes       []string `yaml:"sizes"`
	Colors      []string `yaml:"colors"`
	Tags        []string `yaml:"tags"`
	Featured    bool     `yaml:"featured"`
	InStock     bool     `yaml:"in_stock"`
}

type seedFile struct {
	Categories []seedCategory `yaml:"categories"`
	Products   []seedProduct  `yaml:"products"`
}

func main() {
	file := flag.String("file", "data/catalog.yaml", "catalog fixture to load")
	flag.Parse()

	cfg, err := database.LoadConfig()
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL must be set to seed the catalog")
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

	catalog, err := loadCatalog(*file)
	if err != nil {
		log.Fatal(err)
	}

	if err := seed(ctx, pool, catalog); err != nil {
		log.Fatal(err)
	}

	log.Printf("seeded %d categories, %d products", len(catalog.Categories), len(catalog.Products))
}

func loadCatalog(path string) (*seedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var catalog seedFile
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	for _, c := range catalog.Categories {
		if c.Slug == "" || !models.ValidGender(c.Gender) {
			return nil, fmt.Errorf("category %q: slug and a valid gender are required", c.Name)
		}
	}
	for _, p := range catalog.Products {
		if p.Slug == "" || !models.ValidGender(p.Gender) {
			return nil, fmt.Errorf("product %q: slug and a valid gender are required", p.Name)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("product %q: price cannot be negative", p.Name)
		}
	}

	return &catalog, nil
}

func seed(ctx context.Context, pool *pgxpool.Pool, catalog *seedFile) error {
	categoryIDs := make(map[string]int)

	for _, c := range catalog.Categories {
		sql := `INSERT INTO categories (name, slug, gender)
			VALUES ($1, $2, $3)
			ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name, gender = EXCLUDED.gender
			RETURNING id`

		var id int
		if err := pool.QueryRow(ctx, sql, c.Name, c.Slug, c.Gender).Scan(&id); err != nil {
			return fmt.Errorf("failed to seed category %q: %w", c.Slug, err)
		}
		categoryIDs[c.Slug] = id
	}

	for _, p := range catalog.Products {
		var categoryID *int
		if p.Category != "" {
			id, ok := categoryIDs[p.Category]
			if !ok {
				return fmt.Errorf("product %q references unknown category %q", p.Slug, p.Category)
			}
			categoryID = &id
		}

		sql := `INSERT INTO products
			(name, slug, description, price, category_id, gender, images, sizes, colors, tags, featured, in_stock)
			VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10, $11, $12)
			ON CONFLICT (slug) DO UPDATE SET
				name = EXCLUDED.name,
				description = EXCLUDED.description,
				price = EXCLUDED.price,
				category_id = EXCLUDED.category_id,
				gender = EXCLUDED.gender,
				images = EXCLUDED.images,
				sizes = EXCLUDED.sizes,
				colors = EXCLUDED.colors,
				tags = EXCLUDED.tags,
				featured = EXCLUDED.featured,
				in_stock = EXCLUDED.in_stock,
				updated_at = NOW()`

		_, err := pool.Exec(ctx, sql,
			p.Name,
			p.Slug,
			p.Description,
			p.Price,
			categoryID,
			p.Gender,
			p.Images,
			p.Sizes,
			p.Colors,
			p.Tags,
			p.Featured,
			p.InStock,
		)
		if err != nil {
			return fmt.Errorf("failed to seed product %q: %w", p.Slug, err)
		}
	}

	return nil
}
