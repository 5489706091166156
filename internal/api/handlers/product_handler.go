package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"storefront/internal/repository"
)

type ProductHandler struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

func NewProductHandler(products repository.ProductRepository, categories repository.CategoryRepository) *ProductHandler {
	return &ProductHandler{products: products, categories: categories}
}

func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.GetAll(r.Context())
	if err != nil {
		respondRepoError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) GetByGender(w http.ResponseWriter, r *http.Request) {
	gender := chi.URLParam(r, "gender")

	products, err := h.products.GetByGender(r.Context(), gender)
	if err != nil {
		respondRepoError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	product, err := h.products.GetBySlug(r.Context(), slug)
	if err != nil {
		respondRepoError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) GetByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := pathID(w, r, "categoryID")
	if !ok {
		return
	}

	products, err := h.products.GetByCategory(r.Context(), categoryID)
	if err != nil {
		respondRepoError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) GetFeatured(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.GetFeatured(r.Context())
	if err != nil {
		respondRepoError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "invalid_input", "missing search query", nil)
		return
	}

	products, err := h.products.Search(r.Context(), query)
	if err != nil {
		respondRepoError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.GetAll(r.Context())
	if err != nil {
		respondRepoError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, categories)
}

func (h *ProductHandler) GetCategoriesByGender(w http.ResponseWriter, r *http.Request) {
	gender := chi.URLParam(r, "gender")

	categories, err := h.categories.GetByGender(r.Context(), gender)
	if err != nil {
		respondRepoError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, categories)
}
