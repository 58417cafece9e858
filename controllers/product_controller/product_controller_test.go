package product_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Reown-Commerce/reown-storefront-backend/catalog"
	"github.com/Reown-Commerce/reown-storefront-backend/models"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	ctrl := New(catalog.EmbeddedSource{})
	router.GET("/api/v1/store/products", ctrl.GetStorefrontProducts)
	router.GET("/api/v1/store/products/:id", ctrl.GetStorefrontProductByID)
	return router
}

func get(t *testing.T, router *gin.Engine, path string) (*httptest.ResponseRecorder, []models.Product, *models.Pagination) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var envelope struct {
		Data []models.Product   `json:"data"`
		Meta *models.Pagination `json:"meta"`
	}
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	}
	return w, envelope.Data, envelope.Meta
}

func TestListProductsUnfiltered(t *testing.T) {
	router := newTestRouter()

	w, products, meta := get(t, router, "/api/v1/store/products")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Len(t, products, 6)
	require.NotNil(t, meta)
	assert.Equal(t, 6, meta.Total)
	assert.Equal(t, 1, meta.TotalPages)
}

func TestListProductsCategoryFilter(t *testing.T) {
	router := newTestRouter()

	w, products, _ := get(t, router, "/api/v1/store/products?category=electronics")
	require.Equal(t, http.StatusOK, w.Code)

	require.Len(t, products, 3)
	assert.Equal(t, "1", products[0].ID)
	assert.Equal(t, "2", products[1].ID)
	assert.Equal(t, "3", products[2].ID)
}

func TestListProductsSortAndToggles(t *testing.T) {
	router := newTestRouter()

	w, products, _ := get(t, router, "/api/v1/store/products?sale=true&sortBy=price-low")
	require.Equal(t, http.StatusOK, w.Code)

	require.Len(t, products, 2)
	assert.Equal(t, "6", products[0].ID)
	assert.Equal(t, "3", products[1].ID)
}

func TestListProductsPagination(t *testing.T) {
	router := newTestRouter()

	w, products, meta := get(t, router, "/api/v1/store/products?limit=4&page=2")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Len(t, products, 2)
	require.NotNil(t, meta)
	assert.Equal(t, 6, meta.Total)
	assert.Equal(t, 2, meta.TotalPages)
}

func TestListProductsMatchingNothing(t *testing.T) {
	router := newTestRouter()

	w, products, meta := get(t, router, "/api/v1/store/products?brand=No+Such+Brand")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Empty(t, products)
	require.NotNil(t, meta)
	assert.Equal(t, 0, meta.Total)
}

func TestGetProductByID(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/store/products/3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data struct {
			Product      models.Product `json:"product"`
			RWNCardPrice int64          `json:"rwn_card_price"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))

	assert.Equal(t, "Sony WH-1000XM5", envelope.Data.Product.Name)
	// ceil(399 * 0.9 * 100)
	assert.Equal(t, int64(35910), envelope.Data.RWNCardPrice)
}

func TestGetProductByIDNotFound(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/store/products/999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
