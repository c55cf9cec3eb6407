package kafka

import (
	"time"

	"github.com/vladislavdragonenkov/business-service/internal/domain"
)

// TopicOrderEvents — топик, в который публикуются события заказов.
const TopicOrderEvents = "business.order.events"

// OrderEvent — полезная нагрузка события заказа.
type OrderEvent struct {
	EventType  string    `json:"event_type"`
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	Status     string    `json:"status"`
	Total      float64   `json:"total"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewOrderEvent собирает событие из текущего состояния заказа.
func NewOrderEvent(eventType domain.OrderEventType, order domain.Order) OrderEvent {
	return OrderEvent{
		EventType:  string(eventType),
		OrderID:    order.ID.String(),
		CustomerID: order.CustomerID.String(),
		Status:     string(order.Status),
		Total:      order.Total,
		Timestamp:  time.Now().UTC(),
	}
}
