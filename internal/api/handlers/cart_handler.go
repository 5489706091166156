package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"storefront/internal/models"
	"storefront/internal/pricing"
	"storefront/internal/repository"
)

type CartHandler struct {
	cart repository.CartRepository
	rule pricing.Rule
}

func NewCartHandler(cart repository.CartRepository, rule pricing.Rule) *CartHandler {
	return &CartHandler{cart: cart, rule: rule}
}

type cartResponse struct {
	Items  []models.CartLine `json:"items"`
	Totals pricing.Totals    `json:"totals"`
}

type cartAddRequest struct {
	ProductID int    `json:"productId" validate:"required,min=1"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type cartUpdateRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// GetItems serves the cart with totals computed by the shared pricing
// rule, the same one the checkout transaction verifies against.
func (h *CartHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	lines, err := h.cart.GetItems(r.Context(), userID(r))
	if err != nil {
		respondRepoError(w, err)
		return
	}
	if lines == nil {
		lines = []models.CartLine{}
	}

	writeJSON(w, http.StatusOK, cartResponse{
		Items:  lines,
		Totals: h.rule.Totals(lines),
	})
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req cartAddRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	err := h.cart.AddItem(r.Context(), userID(r), req.ProductID, req.Quantity, req.Size, req.Color)
	if err != nil {
		respondRepoError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req cartUpdateRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	if err := h.cart.UpdateItem(r.Context(), userID(r), itemID, req.Quantity); err != nil {
		respondRepoError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.cart.RemoveItem(r.Context(), userID(r), itemID); err != nil {
		respondRepoError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.cart.Clear(r.Context(), userID(r)); err != nil {
		respondRepoError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_id", "invalid "+name, nil)
		return 0, false
	}
	return id, true
}
