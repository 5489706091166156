package handlers

import (
	"net/http"

	"storefront/internal/models"
	"storefront/internal/repository"
)

type OrderHandler struct {
	orders repository.OrderRepository
}

func NewOrderHandler(orders repository.OrderRepository) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type orderCreateRequest struct {
	TotalAmount     int    `json:"totalAmount" validate:"min=0"`
	ShippingAddress string `json:"shippingAddress" validate:"required"`
}

type orderCreateResponse struct {
	OrderID int `json:"orderId"`
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req orderCreateRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}

	orderID, err := h.orders.PlaceOrder(r.Context(), userID(r), req.TotalAmount, req.ShippingAddress)
	if err != nil {
		respondRepoError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, orderCreateResponse{OrderID: orderID})
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.GetByUserID(r.Context(), userID(r))
	if err != nil {
		respondRepoError(w, err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}

	writeJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) Items(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	items, err := h.orders.GetOrderItems(r.Context(), userID(r), orderID)
	if err != nil {
		respondRepoError(w, err)
		return
	}
	if items == nil {
		items = []models.OrderItem{}
	}

	writeJSON(w, http.StatusOK, items)
}
