package domain

import (
	"time"

	"github.com/google/uuid"
)

// Product — товар каталога. Хранится одним самодостаточным документом в MongoDB,
// ключом документа служит строковое представление ID.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	SKU         string    `json:"sku"`
	Category    string    `json:"category"`
	InStock     bool      `json:"in_stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewProduct создаёт товар с новым идентификатором и текущими таймстемпами.
// Новый товар всегда считается доступным на складе.
func NewProduct(name, description string, price float64, sku, category string) Product {
	now := time.Now().UTC()
	return Product{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Price:       price,
		SKU:         sku,
		Category:    category,
		InStock:     true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
