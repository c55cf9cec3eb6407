package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/business-service/internal/domain"
	"github.com/vladislavdragonenkov/business-service/internal/service"
)

// OrderHandler переводит HTTP-запросы в вызовы сервиса заказов.
type OrderHandler struct {
	service *service.OrderService
	logger  *log.Entry
}

// NewOrderHandler создаёт HTTP-обработчик заказов.
func NewOrderHandler(svc *service.OrderService, logger *log.Entry) *OrderHandler {
	return &OrderHandler{service: svc, logger: logger}
}

type createOrderRequest struct {
	CustomerID uuid.UUID          `json:"customer_id"`
	Items      []domain.OrderItem `json:"items"`
}

type updateOrderStatusRequest struct {
	Status domain.OrderStatus `json:"status"`
}

// List обрабатывает GET /api/orders.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.GetAllOrders(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("не удалось получить список заказов")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

// Get обрабатывает GET /api/orders/{id}.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := h.service.GetOrder(r.Context(), id)
	if err != nil {
		h.logger.WithError(err).Error("не удалось получить заказ")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if order == nil {
		writeError(w, http.StatusNotFound, "order not found")
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// Create обрабатывает POST /api/orders.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.service.CreateOrder(r.Context(), req.CustomerID, req.Items)
	if err != nil {
		h.logger.WithError(err).Error("не удалось создать заказ")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdateStatus обрабатывает PATCH /api/orders/{id}/status.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var req updateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.service.UpdateOrderStatus(r.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			writeError(w, http.StatusBadRequest, err.Error())
		case domain.IsNotFound(err):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			h.logger.WithError(err).Error("не удалось обновить статус заказа")
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete обрабатывает DELETE /api/orders/{id}.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	if err := h.service.DeleteOrder(r.Context(), id); err != nil {
		if domain.IsNotFound(err) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		h.logger.WithError(err).Error("не удалось удалить заказ")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
