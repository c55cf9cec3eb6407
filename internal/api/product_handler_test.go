package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/business-service/internal/domain"
)

// TestProductLifecycle проходит полный цикл: создание, чтение,
// частичное обновление цены, удаление, 404 после удаления.
func TestProductLifecycle(t *testing.T) {
	mux := newTestRouter()

	created := func() domain.Product {
		recorder := doRequest(t, mux, http.MethodPost, "/api/products", map[string]any{
			"name":     "Widget",
			"price":    9.99,
			"sku":      "W-1",
			"category": "tools",
		})
		require.Equal(t, http.StatusCreated, recorder.Code)
		return decodeBody[domain.Product](t, recorder)
	}()

	require.NotEqual(t, uuid.Nil, created.ID)
	require.True(t, created.InStock)

	path := fmt.Sprintf("/api/products/%s", created.ID)

	recorder := doRequest(t, mux, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	fetched := decodeBody[domain.Product](t, recorder)
	require.Equal(t, "Widget", fetched.Name)
	require.Equal(t, 9.99, fetched.Price)
	require.Equal(t, "W-1", fetched.SKU)
	require.Equal(t, "tools", fetched.Category)

	recorder = doRequest(t, mux, http.MethodPut, path, map[string]any{"price": 12.50})
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doRequest(t, mux, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	updated := decodeBody[domain.Product](t, recorder)
	require.Equal(t, 12.50, updated.Price)
	require.Equal(t, "Widget", updated.Name)
	require.Equal(t, "W-1", updated.SKU)
	require.Equal(t, "tools", updated.Category)
	require.True(t, updated.InStock)

	recorder = doRequest(t, mux, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = doRequest(t, mux, http.MethodGet, path, nil)
	require.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestProductList(t *testing.T) {
	mux := newTestRouter()

	recorder := doRequest(t, mux, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Empty(t, decodeBody[[]domain.Product](t, recorder))

	doRequest(t, mux, http.MethodPost, "/api/products", map[string]any{"name": "Widget", "sku": "W-1"})

	recorder = doRequest(t, mux, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Len(t, decodeBody[[]domain.Product](t, recorder), 1)
}

func TestProductBadRequests(t *testing.T) {
	mux := newTestRouter()

	recorder := doRequest(t, mux, http.MethodGet, "/api/products/not-a-uuid", nil)
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = doRequest(t, mux, http.MethodPut, fmt.Sprintf("/api/products/%s", uuid.New()), map[string]any{"price": 1.00})
	require.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = doRequest(t, mux, http.MethodDelete, fmt.Sprintf("/api/products/%s", uuid.New()), nil)
	require.Equal(t, http.StatusNotFound, recorder.Code)
}
