package cart_controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Reown-Commerce/reown-storefront-backend/middleware"
	"github.com/Reown-Commerce/reown-storefront-backend/models"
	"github.com/Reown-Commerce/reown-storefront-backend/store"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	ctrl := New(store.NewMemoryStore())
	cart := router.Group("/api/v1/cart")
	cart.Use(middleware.SessionMiddleware())
	{
		cart.GET("", ctrl.GetCart)
		cart.DELETE("", ctrl.ClearCart)
		cart.POST("/items", ctrl.AddItem)
		cart.PATCH("/items", ctrl.UpdateItem)
		cart.DELETE("/items", ctrl.RemoveItem)
		cart.POST("/toggle", ctrl.ToggleCart)
	}
	return router
}

// client keeps the session cookie across requests like a browser would.
type client struct {
	router  *gin.Engine
	cookies []*http.Cookie
}

func (cl *client) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, models.CartResponse) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cl.cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	cl.router.ServeHTTP(w, req)

	if cookies := w.Result().Cookies(); len(cookies) > 0 {
		cl.cookies = cookies
	}

	var envelope struct {
		Data models.CartResponse `json:"data"`
	}
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	}
	return w, envelope.Data
}

func addRequest(id string, price float64, size, color string, qty int) models.AddCartItemRequest {
	return models.AddCartItemRequest{
		Product:  models.Product{ID: id, Name: "Product " + id, Brand: "Brand", Price: price},
		Size:     size,
		Color:    color,
		Quantity: qty,
	}
}

func TestAddItemMergesAcrossRequests(t *testing.T) {
	cl := &client{router: newTestRouter()}

	w, _ := cl.do(t, http.MethodPost, "/api/v1/cart/items", addRequest("1", 10, "M", "Black", 2))
	require.Equal(t, http.StatusOK, w.Code)

	w, resp := cl.do(t, http.MethodPost, "/api/v1/cart/items", addRequest("1", 10, "M", "Black", 3))
	require.Equal(t, http.StatusOK, w.Code)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, 5, resp.Items[0].Quantity)
	assert.Equal(t, 5, resp.Totals.TotalItems)
	assert.Equal(t, 50.0, resp.Totals.TotalPrice)
}

func TestUpdateItemReplacesQuantity(t *testing.T) {
	cl := &client{router: newTestRouter()}

	cl.do(t, http.MethodPost, "/api/v1/cart/items", addRequest("1", 10, "M", "Black", 5))

	w, resp := cl.do(t, http.MethodPatch, "/api/v1/cart/items", models.UpdateCartItemRequest{
		ProductID: "1", Size: "M", Color: "Black", Quantity: 3,
	})
	require.Equal(t, http.StatusOK, w.Code)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, 3, resp.Items[0].Quantity)
}

func TestUpdateItemZeroRemovesLine(t *testing.T) {
	cl := &client{router: newTestRouter()}

	cl.do(t, http.MethodPost, "/api/v1/cart/items", addRequest("1", 10, "M", "Black", 2))

	w, resp := cl.do(t, http.MethodPatch, "/api/v1/cart/items", models.UpdateCartItemRequest{
		ProductID: "1", Size: "M", Color: "Black", Quantity: 0,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, resp.Items)
}

func TestRemoveItemIsIdempotentOverHTTP(t *testing.T) {
	cl := &client{router: newTestRouter()}

	cl.do(t, http.MethodPost, "/api/v1/cart/items", addRequest("1", 10, "M", "Black", 2))

	remove := models.RemoveCartItemRequest{ProductID: "1", Size: "M", Color: "Black"}
	w, resp := cl.do(t, http.MethodDelete, "/api/v1/cart/items", remove)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, resp.Items)

	// Removing again is still a 200 no-op.
	w, resp = cl.do(t, http.MethodDelete, "/api/v1/cart/items", remove)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, resp.Items)
}

func TestCartSurvivesAcrossRequests(t *testing.T) {
	cl := &client{router: newTestRouter()}

	cl.do(t, http.MethodPost, "/api/v1/cart/items", addRequest("1", 10, "M", "Black", 2))
	cl.do(t, http.MethodPost, "/api/v1/cart/items", addRequest("2", 5, "S", "Red", 3))

	w, resp := cl.do(t, http.MethodGet, "/api/v1/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)

	require.Len(t, resp.Items, 2)
	assert.Equal(t, 35.0, resp.Totals.TotalPrice)
	assert.Equal(t, int64(3150), resp.Totals.RWNPrice)
}

func TestSeparateSessionsGetSeparateCarts(t *testing.T) {
	router := newTestRouter()
	first := &client{router: router}
	second := &client{router: router}

	first.do(t, http.MethodPost, "/api/v1/cart/items", addRequest("1", 10, "M", "Black", 2))

	w, resp := second.do(t, http.MethodGet, "/api/v1/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, resp.Items)
}

func TestClearCartKeepsVisibility(t *testing.T) {
	cl := &client{router: newTestRouter()}

	cl.do(t, http.MethodPost, "/api/v1/cart/items", addRequest("1", 10, "M", "Black", 2))
	cl.do(t, http.MethodPost, "/api/v1/cart/toggle", nil)

	w, resp := cl.do(t, http.MethodDelete, "/api/v1/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Empty(t, resp.Items)
	assert.True(t, resp.IsOpen)
}

func TestToggleCartFlipsFlag(t *testing.T) {
	cl := &client{router: newTestRouter()}

	_, resp := cl.do(t, http.MethodPost, "/api/v1/cart/toggle", nil)
	assert.True(t, resp.IsOpen)

	_, resp = cl.do(t, http.MethodPost, "/api/v1/cart/toggle", nil)
	assert.False(t, resp.IsOpen)
}

func TestAddItemRejectsMissingFields(t *testing.T) {
	cl := &client{router: newTestRouter()}

	w, _ := cl.do(t, http.MethodPost, "/api/v1/cart/items", map[string]any{
		"product": map[string]any{"id": "1"},
		// size and color missing
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
