package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/models"
	"storefront/internal/pricing"
	"storefront/internal/repository"
)

type stubUsers struct {
	upsertErr error
}

func (s *stubUsers) Upsert(_ context.Context, user *models.User) error {
	if s.upsertErr != nil {
		return s.upsertErr
	}
	user.ID = 7
	user.Role = models.RoleUser
	return nil
}

func (s *stubUsers) GetByOpenID(_ context.Context, openID string) (*models.User, error) {
	return &models.User{ID: 7, OpenID: openID, Role: models.RoleUser}, nil
}

type cartCall struct {
	userID, productID, quantity int
	size, color                 string
}

type stubCart struct {
	lines     []models.CartLine
	addErr    error
	updateErr error
	added     []cartCall
}

func (s *stubCart) AddItem(_ context.Context, userID, productID, quantity int, size, color string) error {
	if s.addErr != nil {
		return s.addErr
	}
	s.added = append(s.added, cartCall{userID, productID, quantity, size, color})
	return nil
}

func (s *stubCart) UpdateItem(context.Context, int, int, int) error { return s.updateErr }
func (s *stubCart) RemoveItem(context.Context, int, int) error      { return s.updateErr }
func (s *stubCart) GetItems(context.Context, int) ([]models.CartLine, error) {
	return s.lines, nil
}
func (s *stubCart) Clear(context.Context, int) error { return nil }

type stubOrders struct {
	placeErr  error
	orderID   int
	gotUser   int
	gotTotal  int
	gotAddr   string
	placeCall int
}

func (s *stubOrders) PlaceOrder(_ context.Context, userID, totalAmount int, shippingAddress string) (int, error) {
	s.placeCall++
	if s.placeErr != nil {
		return 0, s.placeErr
	}
	s.gotUser = userID
	s.gotTotal = totalAmount
	s.gotAddr = shippingAddress
	return s.orderID, nil
}

func (s *stubOrders) GetByUserID(context.Context, int) ([]models.Order, error) { return nil, nil }
func (s *stubOrders) GetOrderItems(context.Context, int, int) ([]models.OrderItem, error) {
	return nil, nil
}

type stubReviews struct {
	createErr error
	rating    models.ProductRating
}

func (s *stubReviews) Create(_ context.Context, review *models.Review) error {
	if s.createErr != nil {
		return s.createErr
	}
	review.ID = 42
	return nil
}

func (s *stubReviews) GetProductRating(context.Context, int) (*models.ProductRating, error) {
	return &s.rating, nil
}

func (s *stubReviews) GetProductReviews(context.Context, int) ([]models.Review, error) {
	return nil, nil
}

type testEnv struct {
	users   *stubUsers
	cart    *stubCart
	orders  *stubOrders
	reviews *stubReviews
	client  *http.Client
	baseURL string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		users:   &stubUsers{},
		cart:    &stubCart{},
		orders:  &stubOrders{orderID: 99},
		reviews: &stubReviews{},
	}

	session := NewSessionManager(time.Hour)

	r := chi.NewRouter()
	r.Use(session.LoadAndSave)

	auth := NewAuthHandler(env.users, session)
	r.Post("/api/auth/login", auth.Login)
	r.Get("/api/auth/me", auth.Me)

	reviews := NewReviewHandler(env.reviews)
	r.Get("/api/products/{id}/rating", reviews.ProductRating)

	r.Group(func(r chi.Router) {
		r.Use(RequireUser(session))

		cart := NewCartHandler(env.cart, pricing.DefaultRule())
		r.Get("/api/cart", cart.GetItems)
		r.Post("/api/cart/items", cart.AddItem)
		r.Patch("/api/cart/items/{id}", cart.UpdateItem)

		orders := NewOrderHandler(env.orders)
		r.Post("/api/orders", orders.Create)

		r.Post("/api/reviews", reviews.Create)
	})

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	env.client = &http.Client{Jar: jar}
	env.baseURL = ts.URL
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, e.baseURL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	require.NoError(t, err)
	return resp
}

func (e *testEnv) login(t *testing.T) {
	t.Helper()
	resp := e.do(t, http.MethodPost, "/api/auth/login", map[string]any{"openId": "test-user"})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestUserScopedCallsRequireSession(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/api/cart", "/api/orders"} {
		method := http.MethodGet
		if path == "/api/orders" {
			method = http.MethodPost
		}
		resp := env.do(t, method, path, nil)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}
}

func TestCartAddItem(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	resp := env.do(t, http.MethodPost, "/api/cart/items", map[string]any{
		"productId": 3, "quantity": 2, "size": "M", "color": "Black",
	})
	body := decodeBody[successResponse](t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, body.Success)

	require.Len(t, env.cart.added, 1)
	assert.Equal(t, cartCall{7, 3, 2, "M", "Black"}, env.cart.added[0])
}

func TestCartAddItemRejectsZeroQuantity(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	resp := env.do(t, http.MethodPost, "/api/cart/items", map[string]any{
		"productId": 3, "quantity": 0,
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, env.cart.added, "repository must not be reached")
}

func TestCartTotalsInResponse(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	shirt := models.CartLine{Product: models.Product{ID: 1, Price: 20000}}
	shirt.Quantity = 2
	dress := models.CartLine{Product: models.Product{ID: 2, Price: 60000}}
	dress.Quantity = 1
	env.cart.lines = []models.CartLine{shirt, dress}

	resp := env.do(t, http.MethodGet, "/api/cart", nil)
	body := decodeBody[cartResponse](t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body.Items, 2)
	assert.Equal(t, pricing.Totals{Subtotal: 100000, Shipping: 0, Total: 100000}, body.Totals)
}

func TestCartUpdateUnknownLineIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)
	env.cart.updateErr = repository.ErrNotFound

	resp := env.do(t, http.MethodPatch, "/api/cart/items/55", map[string]any{"quantity": 3})
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPlaceOrder(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	resp := env.do(t, http.MethodPost, "/api/orders", map[string]any{
		"totalAmount": 100000, "shippingAddress": "Dar es Salaam",
	})
	body := decodeBody[orderCreateResponse](t, resp)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, 99, body.OrderID)
	assert.Equal(t, 7, env.orders.gotUser)
	assert.Equal(t, 100000, env.orders.gotTotal)
	assert.Equal(t, "Dar es Salaam", env.orders.gotAddr)
}

func TestPlaceOrderErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"total mismatch", repository.ErrTotalMismatch, http.StatusUnprocessableEntity},
		{"empty cart", repository.ErrEmptyCart, http.StatusUnprocessableEntity},
		{"storage unavailable", repository.ErrStorageUnavailable, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.login(t)
			env.orders.placeErr = tt.err

			resp := env.do(t, http.MethodPost, "/api/orders", map[string]any{
				"totalAmount": 100000, "shippingAddress": "addr",
			})
			resp.Body.Close()
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestPlaceOrderRejectsMissingAddress(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	resp := env.do(t, http.MethodPost, "/api/orders", map[string]any{"totalAmount": 100000})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, env.orders.placeCall, "repository must not be reached")
}

func TestDuplicateReviewConflicts(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)
	env.reviews.createErr = repository.ErrDuplicate

	resp := env.do(t, http.MethodPost, "/api/reviews", map[string]any{
		"productId": 1, "rating": 5,
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestReviewRejectsOutOfRangeRating(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	for _, rating := range []int{0, 6} {
		resp := env.do(t, http.MethodPost, "/api/reviews", map[string]any{
			"productId": 1, "rating": rating,
		})
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	}
}

func TestProductRatingIsPublic(t *testing.T) {
	env := newTestEnv(t)
	env.reviews.rating = models.ProductRating{AverageRating: 4.5, ReviewCount: 2}

	resp := env.do(t, http.MethodGet, "/api/products/1/rating", nil)
	body := decodeBody[models.ProductRating](t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 4.5, body.AverageRating)
	assert.Equal(t, 2, body.ReviewCount)
}
