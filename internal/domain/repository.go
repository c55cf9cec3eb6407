package domain

import (
	"context"

	"github.com/google/uuid"
)

// Repository — единый CRUD-контракт поверх разнородных хранилищ.
// Обе реализации (PostgreSQL для заказов, MongoDB для товаров) самостоятельны:
// общей базовой логики нет, каждая сама отвечает за генерацию ID,
// определение "не найдено" и оборачивание ошибок движка.
type Repository[T any, ID comparable] interface {
	// FindByID возвращает nil без ошибки, если сущности нет:
	// отсутствие — валидный результат, а не сбой.
	FindByID(ctx context.Context, id ID) (*T, error)
	// FindAll возвращает пустой срез, если сущностей нет.
	FindAll(ctx context.Context) ([]T, error)
	// Create сохраняет сущность; если ID нулевой, хранилище генерирует новый
	// и возвращает сущность с заполненным ID.
	Create(ctx context.Context, entity T) (T, error)
	// Update полностью заменяет сохранённое состояние; ErrNotFound, если сущности нет.
	// Слияние частичных полей — забота сервисного слоя, сюда приходит готовое состояние.
	Update(ctx context.Context, id ID, entity T) (T, error)
	// Delete удаляет сущность; ErrNotFound, если её нет.
	Delete(ctx context.Context, id ID) error
}

// ProductRepository — контракт хранилища товаров.
type ProductRepository = Repository[Product, uuid.UUID]

// OrderRepository — контракт хранилища заказов.
type OrderRepository = Repository[Order, uuid.UUID]

// OrderEventType определяет тип события жизненного цикла заказа.
type OrderEventType string

const (
	OrderEventCreated       OrderEventType = "order.created"
	OrderEventStatusChanged OrderEventType = "order.status_changed"
	OrderEventDeleted       OrderEventType = "order.deleted"
)

// OrderEventPublisher публикует события заказов во внешнюю шину.
// Публикация не участвует в транзакции и не влияет на результат операции.
type OrderEventPublisher interface {
	PublishOrderEvent(ctx context.Context, eventType OrderEventType, order Order) error
}
