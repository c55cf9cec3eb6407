package api

import (
	"net/http"

	"github.com/vladislavdragonenkov/business-service/internal/metrics"
)

// NewRouter собирает маршруты API-сервера.
// Маршрут в метриках — шаблон пути, а не конкретный URL, чтобы не плодить метки.
func NewRouter(products *ProductHandler, orders *OrderHandler, healthHandler http.Handler, m *metrics.HTTPMetrics) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/products", m.Instrument("/api/products", products.List))
	mux.HandleFunc("POST /api/products", m.Instrument("/api/products", products.Create))
	mux.HandleFunc("GET /api/products/{id}", m.Instrument("/api/products/{id}", products.Get))
	mux.HandleFunc("PUT /api/products/{id}", m.Instrument("/api/products/{id}", products.Update))
	mux.HandleFunc("DELETE /api/products/{id}", m.Instrument("/api/products/{id}", products.Delete))

	mux.HandleFunc("GET /api/orders", m.Instrument("/api/orders", orders.List))
	mux.HandleFunc("POST /api/orders", m.Instrument("/api/orders", orders.Create))
	mux.HandleFunc("GET /api/orders/{id}", m.Instrument("/api/orders/{id}", orders.Get))
	mux.HandleFunc("PATCH /api/orders/{id}/status", m.Instrument("/api/orders/{id}/status", orders.UpdateStatus))
	mux.HandleFunc("DELETE /api/orders/{id}", m.Instrument("/api/orders/{id}", orders.Delete))

	mux.Handle("GET /health", healthHandler)

	return mux
}
