package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"storefront/internal/api/handlers"
	"storefront/internal/cache"
	"storefront/internal/database"
	"storefront/internal/repository"
)

func main() {
	infoLog := log.New(os.Stdout, "INFO\t", log.Ldate|log.Ltime)
	errorLog := log.New(os.Stderr, "ERROR\t", log.Ldate|log.Ltime|log.Lshortfile)

	cfg, err := database.LoadConfig()
	if err != nil {
		errorLog.Fatal("failed to load config: ", err)
	}

	var (
		products   repository.ProductRepository
		categories repository.CategoryRepository
		users      repository.UserRepository
		cart       repository.CartRepository
		wishlist   repository.WishlistRepository
		orders     repository.OrderRepository
		reviews    repository.ReviewRepository
	)

	if cfg.DatabaseURL == "" {
		// Degraded mode for local tooling: reads answer empty, checkout
		// and review writes refuse loudly.
		infoLog.Println("DATABASE_URL not set; running without a database")
		products = repository.NewUnavailableProducts()
		categories = repository.NewUnavailableCategories()
		users = repository.NewUnavailableUsers()
		cart = repository.NewUnavailableCart()
		wishlist = repository.NewUnavailableWishlist()
		orders = repository.NewUnavailableOrders()
		reviews = repository.NewUnavailableReviews()
	} else {
		pool, err := database.Connect(cfg)
		if err != nil {
			errorLog.Fatal("failed to connect database: ", err)
		}
		defer pool.Close()

		if err := database.Migrate(context.Background(), pool, database.DefaultMigrationsDir); err != nil {
			errorLog.Fatal("migrations failed: ", err)
		}
		infoLog.Println("connected to database")

		products = repository.NewProductRepository(pool)
		categories = repository.NewCategoryRepository(pool)
		users = repository.NewUserRepository(pool)
		cart = repository.NewCartRepository(pool)
		wishlist = repository.NewWishlistRepository(pool)
		orders = repository.NewOrderRepository(pool, cfg.PricingRule())
		reviews = repository.NewReviewRepository(pool)
	}

	if cfg.RedisURL != "" {
		rdb, err := cache.ConnectRedis(cfg)
		if err != nil {
			errorLog.Printf("redis unavailable, serving catalog uncached: %v", err)
		} else {
			defer rdb.Close()
			products = cache.NewCachedCatalog(products, rdb)
			infoLog.Println("catalog cache enabled")
		}
	}

	session := handlers.NewSessionManager(cfg.SessionLifetime)

	srv := &http.Server{
		Addr:     cfg.ListenAddr,
		ErrorLog: errorLog,
		Handler: routes(session, routeHandlers{
			auth:     handlers.NewAuthHandler(users, session),
			products: handlers.NewProductHandler(products, categories),
			cart:     handlers.NewCartHandler(cart, cfg.PricingRule()),
			wishlist: handlers.NewWishlistHandler(wishlist),
			orders:   handlers.NewOrderHandler(orders),
			reviews:  handlers.NewReviewHandler(reviews),
		}),
	}

	infoLog.Printf("Starting storefront on %s", cfg.ListenAddr)
	errorLog.Fatal(srv.ListenAndServe())
}
