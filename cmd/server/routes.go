package main

import (
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"storefront/internal/api/handlers"
)

type routeHandlers struct {
	auth     *handlers.AuthHandler
	products *handlers.ProductHandler
	cart     *handlers.CartHandler
	wishlist *handlers.WishlistHandler
	orders   *handlers.OrderHandler
	reviews  *handlers.ReviewHandler
}

func routes(session *scs.SessionManager, h routeHandlers) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(session.LoadAndSave)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.auth.Login)
		r.Post("/auth/logout", h.auth.Logout)
		r.Get("/auth/me", h.auth.Me)

		r.Get("/products", h.products.GetAll)
		r.Get("/products/featured", h.products.GetFeatured)
		r.Get("/products/search", h.products.Search)
		r.Get("/products/gender/{gender}", h.products.GetByGender)
		r.Get("/products/category/{categoryID}", h.products.GetByCategory)
		r.Get("/products/slug/{slug}", h.products.GetBySlug)
		r.Get("/products/{id}/rating", h.reviews.ProductRating)
		r.Get("/products/{id}/reviews", h.reviews.ProductReviews)

		r.Get("/categories", h.products.GetCategories)
		r.Get("/categories/gender/{gender}", h.products.GetCategoriesByGender)

		// User-scoped procedures.
		r.Group(func(r chi.Router) {
			r.Use(handlers.RequireUser(session))

			r.Get("/cart", h.cart.GetItems)
			r.Post("/cart/items", h.cart.AddItem)
			r.Patch("/cart/items/{id}", h.cart.UpdateItem)
			r.Delete("/cart/items/{id}", h.cart.RemoveItem)
			r.Post("/cart/clear", h.cart.Clear)

			r.Get("/wishlist", h.wishlist.GetItems)
			r.Post("/wishlist/items", h.wishlist.AddItem)
			r.Delete("/wishlist/items/{id}", h.wishlist.RemoveItem)

			r.Post("/orders", h.orders.Create)
			r.Get("/orders", h.orders.List)
			r.Get("/orders/{id}/items", h.orders.Items)

			r.Post("/reviews", h.reviews.Create)
		})
	})

	return r
}
