package handlers

import (
	"net/http"

	"storefront/internal/models"
	"storefront/internal/repository"
)

type WishlistHandler struct {
	wishlist repository.WishlistRepository
}

func NewWishlistHandler(wishlist repository.WishlistRepository) *WishlistHandler {
	return &WishlistHandler{wishlist: wishlist}
}

type wishlistAddRequest struct {
	ProductID int `json:"productId" validate:"required,min=1"`
}

func (h *WishlistHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	lines, err := h.wishlist.GetItems(r.Context(), userID(r))
	if err != nil {
		respondRepoError(w, err)
		return
	}
	if lines == nil {
		lines = []models.WishlistLine{}
	}

	writeJSON(w, http.StatusOK, lines)
}

func (h *WishlistHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req wishlistAddRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	if err := h.wishlist.AddItem(r.Context(), userID(r), req.ProductID); err != nil {
		respondRepoError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (h *WishlistHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.wishlist.RemoveItem(r.Context(), userID(r), itemID); err != nil {
		respondRepoError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}
