package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/business-service/internal/domain"
)

// CreateProductInput — поля нового товара.
type CreateProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	SKU         string  `json:"sku"`
	Category    string  `json:"category"`
}

// UpdateProductInput — частичное обновление товара: nil-поле означает
// "оставить прежнее значение".
type UpdateProductInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	SKU         *string  `json:"sku"`
	Category    *string  `json:"category"`
	InStock     *bool    `json:"in_stock"`
}

// ProductService — тонкая оркестрация над репозиторием товаров.
// Слияние частичных обновлений происходит здесь, в хранилище уходит
// уже готовое полное состояние.
type ProductService struct {
	repo   domain.ProductRepository
	logger *log.Entry
}

// NewProductService создаёт сервис товаров.
func NewProductService(repo domain.ProductRepository, logger *log.Entry) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

// GetProduct возвращает товар или nil, если его нет.
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// GetAllProducts возвращает все товары.
func (s *ProductService) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.FindAll(ctx)
}

// CreateProduct создаёт товар со свежим ID и таймстемпами.
func (s *ProductService) CreateProduct(ctx context.Context, input CreateProductInput) (domain.Product, error) {
	product := domain.NewProduct(input.Name, input.Description, input.Price, input.SKU, input.Category)

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return domain.Product{}, err
	}

	s.logger.WithFields(log.Fields{
		"product_id": created.ID,
		"sku":        created.SKU,
	}).Info("товар создан")

	return created, nil
}

// UpdateProduct накладывает переданные поля на существующий товар.
// Непереданные поля сохраняют прежние значения, updated_at обновляется всегда.
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input UpdateProductInput) (domain.Product, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	if existing == nil {
		return domain.Product{}, fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}

	updated := *existing
	if input.Name != nil {
		updated.Name = *input.Name
	}
	if input.Description != nil {
		updated.Description = *input.Description
	}
	if input.Price != nil {
		updated.Price = *input.Price
	}
	if input.SKU != nil {
		updated.SKU = *input.SKU
	}
	if input.Category != nil {
		updated.Category = *input.Category
	}
	if input.InStock != nil {
		updated.InStock = *input.InStock
	}
	updated.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, id, updated)
}

// DeleteProduct удаляет товар.
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
