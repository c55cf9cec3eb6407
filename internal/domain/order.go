package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus описывает жизненный цикл заказа.
type OrderStatus string

const (
	// OrderStatusPending — заказ создан, обработка ещё не началась.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusProcessing — заказ взят в обработку.
	OrderStatusProcessing OrderStatus = "processing"
	// OrderStatusShipped — заказ передан в доставку.
	OrderStatusShipped OrderStatus = "shipped"
	// OrderStatusDelivered — заказ доставлен клиенту.
	OrderStatusDelivered OrderStatus = "delivered"
	// OrderStatusCancelled — заказ отменён.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid сообщает, является ли значение одним из известных статусов.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// ParseOrderStatus разбирает строковый тег статуса из хранилища.
// Неизвестный тег трактуется как pending, чтобы одна испорченная строка
// не делала заказ (и весь листинг) нечитаемым.
func ParseOrderStatus(s string) OrderStatus {
	if status := OrderStatus(s); status.Valid() {
		return status
	}
	return OrderStatusPending
}

// OrderItem — одна позиция заказа. ProductID ссылается на товар в MongoDB,
// но между хранилищами нет внешнего ключа: это просто корреляционный ключ.
// Price — снимок цены на момент оформления, а не живая ссылка на каталог.
type OrderItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int32     `json:"quantity"`
	Price     float64   `json:"price"`
}

// Order агрегирует заказ и его позиции. Позиции не существуют вне заказа:
// агрегат создаётся, обновляется и удаляется как единое целое.
type Order struct {
	ID         uuid.UUID   `json:"id"`
	CustomerID uuid.UUID   `json:"customer_id"`
	Items      []OrderItem `json:"items"`
	Total      float64     `json:"total"`
	Status     OrderStatus `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// NewOrder создаёт заказ в статусе pending. Сумма вычисляется один раз здесь
// и дальше не пересчитывается при обновлениях, не меняющих позиции.
func NewOrder(customerID uuid.UUID, items []OrderItem) Order {
	now := time.Now().UTC()
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}

	return Order{
		ID:         uuid.New(),
		CustomerID: customerID,
		Items:      items,
		Total:      total,
		Status:     OrderStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
