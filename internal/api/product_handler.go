package api

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/business-service/internal/domain"
	"github.com/vladislavdragonenkov/business-service/internal/service"
)

// ProductHandler переводит HTTP-запросы в вызовы сервиса товаров
// и результаты/ошибки — в коды ответа. Ниже этого слоя про HTTP никто не знает.
type ProductHandler struct {
	service *service.ProductService
	logger  *log.Entry
}

// NewProductHandler создаёт HTTP-обработчик товаров.
func NewProductHandler(svc *service.ProductService, logger *log.Entry) *ProductHandler {
	return &ProductHandler{service: svc, logger: logger}
}

// List обрабатывает GET /api/products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.GetAllProducts(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("не удалось получить список товаров")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// Get обрабатывает GET /api/products/{id}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		h.logger.WithError(err).Error("не удалось получить товар")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if product == nil {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	writeJSON(w, http.StatusOK, product)
}

// Create обрабатывает POST /api/products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.service.CreateProduct(r.Context(), input)
	if err != nil {
		h.logger.WithError(err).Error("не удалось создать товар")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Update обрабатывает PUT /api/products/{id}.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var input service.UpdateProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.service.UpdateProduct(r.Context(), id, input)
	if err != nil {
		if domain.IsNotFound(err) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		h.logger.WithError(err).Error("не удалось обновить товар")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete обрабатывает DELETE /api/products/{id}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		if domain.IsNotFound(err) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		h.logger.WithError(err).Error("не удалось удалить товар")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
