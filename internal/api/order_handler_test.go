package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/business-service/internal/domain"
)

// TestOrderLifecycle: создание заказа с одной позицией, смена статуса,
// удаление и 404 после него. Сумма не пересчитывается при смене статуса.
func TestOrderLifecycle(t *testing.T) {
	mux := newTestRouter()

	customerID := uuid.New()
	productID := uuid.New()

	recorder := doRequest(t, mux, http.MethodPost, "/api/orders", map[string]any{
		"customer_id": customerID,
		"items": []map[string]any{
			{"product_id": productID, "quantity": 2, "price": 5.00},
		},
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
	created := decodeBody[domain.Order](t, recorder)

	require.Equal(t, 10.00, created.Total)
	require.Equal(t, domain.OrderStatusPending, created.Status)
	require.Equal(t, customerID, created.CustomerID)

	path := fmt.Sprintf("/api/orders/%s", created.ID)

	recorder = doRequest(t, mux, http.MethodPatch, path+"/status", map[string]any{"status": "shipped"})
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doRequest(t, mux, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	updated := decodeBody[domain.Order](t, recorder)
	require.Equal(t, domain.OrderStatusShipped, updated.Status)
	require.Equal(t, 10.00, updated.Total)
	require.Len(t, updated.Items, 1)
	require.Equal(t, productID, updated.Items[0].ProductID)

	recorder = doRequest(t, mux, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = doRequest(t, mux, http.MethodGet, path, nil)
	require.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestOrderUpdateStatusErrors(t *testing.T) {
	mux := newTestRouter()

	// Неизвестный статус — ошибка валидации, а не тихий откат к pending.
	recorder := doRequest(t, mux, http.MethodPatch,
		fmt.Sprintf("/api/orders/%s/status", uuid.New()), map[string]any{"status": "archived"})
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = doRequest(t, mux, http.MethodPatch,
		fmt.Sprintf("/api/orders/%s/status", uuid.New()), map[string]any{"status": "shipped"})
	require.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = doRequest(t, mux, http.MethodPatch, "/api/orders/not-a-uuid/status", map[string]any{"status": "shipped"})
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestOrderList(t *testing.T) {
	mux := newTestRouter()

	recorder := doRequest(t, mux, http.MethodGet, "/api/orders", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Empty(t, decodeBody[[]domain.Order](t, recorder))

	doRequest(t, mux, http.MethodPost, "/api/orders", map[string]any{
		"customer_id": uuid.New(),
		"items":       []map[string]any{},
	})

	recorder = doRequest(t, mux, http.MethodGet, "/api/orders", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Len(t, decodeBody[[]domain.Order](t, recorder), 1)
}
