package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/business-service/internal/api"
	"github.com/vladislavdragonenkov/business-service/internal/health"
	"github.com/vladislavdragonenkov/business-service/internal/metrics"
	"github.com/vladislavdragonenkov/business-service/internal/service"
	"github.com/vladislavdragonenkov/business-service/internal/storage/memory"
)

// newTestRouter собирает API поверх in-memory хранилищ.
func newTestRouter() *http.ServeMux {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(logrus.DebugLevel)
	entry := logger.WithField("component", "test")

	productSvc := service.NewProductService(memory.NewProductRepository(), entry)
	orderSvc := service.NewOrderService(memory.NewOrderRepository(), nil, entry)

	return api.NewRouter(
		api.NewProductHandler(productSvc, entry),
		api.NewOrderHandler(orderSvc, entry),
		health.NewHandler("test"),
		metrics.NewHTTPMetrics(),
	)
}

func doRequest(t *testing.T, mux *http.ServeMux, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	recorder := httptest.NewRecorder()
	mux.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.NewDecoder(recorder.Body).Decode(&v); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return v
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestRouter()

	recorder := doRequest(t, mux, http.MethodGet, "/health", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	response := decodeBody[health.Response](t, recorder)
	if response.Status != health.StatusHealthy {
		t.Fatalf("expected healthy status, got %s", response.Status)
	}
}
