package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/business-service/internal/domain"
)

// OrderService — тонкая оркестрация над репозиторием заказов.
// events может быть nil: публикация событий опциональна и никогда
// не влияет на исход операции.
type OrderService struct {
	repo   domain.OrderRepository
	events domain.OrderEventPublisher
	logger *log.Entry
}

// NewOrderService создаёт сервис заказов.
func NewOrderService(repo domain.OrderRepository, events domain.OrderEventPublisher, logger *log.Entry) *OrderService {
	return &OrderService{repo: repo, events: events, logger: logger}
}

// GetOrder возвращает заказ или nil, если его нет.
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return s.repo.FindByID(ctx, id)
}

// GetAllOrders возвращает все заказы, от новых к старым.
func (s *OrderService) GetAllOrders(ctx context.Context) ([]domain.Order, error) {
	return s.repo.FindAll(ctx)
}

// CreateOrder создаёт заказ в статусе pending с суммой, вычисленной из позиций.
func (s *OrderService) CreateOrder(ctx context.Context, customerID uuid.UUID, items []domain.OrderItem) (domain.Order, error) {
	order := domain.NewOrder(customerID, items)

	created, err := s.repo.Create(ctx, order)
	if err != nil {
		return domain.Order{}, err
	}

	s.logger.WithFields(log.Fields{
		"order_id":    created.ID,
		"customer_id": created.CustomerID,
		"total":       created.Total,
	}).Info("заказ создан")

	s.publish(ctx, domain.OrderEventCreated, created)
	return created, nil
}

// UpdateOrderStatus меняет только статус и updated_at существующего заказа.
// Позиции передаются в хранилище без изменений, сумма не пересчитывается.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) (domain.Order, error) {
	if !status.Valid() {
		return domain.Order{}, fmt.Errorf("%w: unknown order status %q", domain.ErrValidation, status)
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	if existing == nil {
		return domain.Order{}, fmt.Errorf("order %s: %w", id, domain.ErrNotFound)
	}

	updated := *existing
	updated.Status = status
	updated.UpdatedAt = time.Now().UTC()

	saved, err := s.repo.Update(ctx, id, updated)
	if err != nil {
		return domain.Order{}, err
	}

	s.logger.WithFields(log.Fields{
		"order_id": saved.ID,
		"status":   saved.Status,
	}).Info("статус заказа обновлён")

	s.publish(ctx, domain.OrderEventStatusChanged, saved)
	return saved, nil
}

// DeleteOrder удаляет заказ вместе с позициями.
func (s *OrderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if order != nil {
		s.publish(ctx, domain.OrderEventDeleted, *order)
	}
	return nil
}

func (s *OrderService) publish(ctx context.Context, eventType domain.OrderEventType, order domain.Order) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishOrderEvent(ctx, eventType, order); err != nil {
		s.logger.WithError(err).WithFields(log.Fields{
			"order_id":   order.ID,
			"event_type": eventType,
		}).Warn("не удалось опубликовать событие заказа")
	}
}
