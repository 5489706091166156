package handlers

import (
	"net/http"

	"storefront/internal/models"
	"storefront/internal/repository"
)

type ReviewHandler struct {
	reviews repository.ReviewRepository
}

func NewReviewHandler(reviews repository.ReviewRepository) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

type reviewCreateRequest struct {
	ProductID int    `json:"productId" validate:"required,min=1"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req reviewCreateRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	review := models.Review{
		ProductID: req.ProductID,
		UserID:    userID(r),
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	if err := h.reviews.Create(r.Context(), &review); err != nil {
		respondRepoError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, review)
}

func (h *ReviewHandler) ProductRating(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	rating, err := h.reviews.GetProductRating(r.Context(), productID)
	if err != nil {
		respondRepoError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rating)
}

func (h *ReviewHandler) ProductReviews(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	reviews, err := h.reviews.GetProductReviews(r.Context(), productID)
	if err != nil {
		respondRepoError(w, err)
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}

	writeJSON(w, http.StatusOK, reviews)
}
