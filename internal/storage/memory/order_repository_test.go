package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/business-service/internal/domain"
	"github.com/vladislavdragonenkov/business-service/internal/storage/memory"
)

func newOrder() domain.Order {
	now := time.Now().UTC()
	return domain.Order{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Status:     domain.OrderStatusPending,
		Total:      10.00,
		Items: []domain.OrderItem{
			{ProductID: uuid.New(), Quantity: 2, Price: 5.00},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestOrderRepository_CreateFindByID(t *testing.T) {
	repo := memory.NewOrderRepository()
	ctx := context.Background()
	order := newOrder()

	created, err := repo.Create(ctx, order)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID != order.ID {
		t.Fatalf("expected id %s, got %s", order.ID, created.ID)
	}

	stored, err := repo.FindByID(ctx, order.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if stored == nil {
		t.Fatal("expected stored order")
	}
	if len(stored.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(stored.Items))
	}
}

func TestOrderRepository_CreateMintsID(t *testing.T) {
	repo := memory.NewOrderRepository()
	order := newOrder()
	order.ID = uuid.Nil

	created, err := repo.Create(context.Background(), order)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("expected minted id")
	}
}

func TestOrderRepository_FindByIDAbsent(t *testing.T) {
	repo := memory.NewOrderRepository()

	stored, err := repo.FindByID(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if stored != nil {
		t.Fatal("expected nil for absent order")
	}
}

func TestOrderRepository_FindAllNewestFirst(t *testing.T) {
	repo := memory.NewOrderRepository()
	ctx := context.Background()

	older := newOrder()
	older.CreatedAt = time.Now().UTC().Add(-time.Hour)
	newer := newOrder()

	if _, err := repo.Create(ctx, older); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := repo.Create(ctx, newer); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	orders, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("find all failed: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].ID != newer.ID {
		t.Fatal("expected newest order first")
	}
}

func TestOrderRepository_UpdateReplacesItems(t *testing.T) {
	repo := memory.NewOrderRepository()
	ctx := context.Background()

	order := newOrder()
	order.Items = []domain.OrderItem{
		{ProductID: uuid.New(), Quantity: 1, Price: 1.00},
		{ProductID: uuid.New(), Quantity: 1, Price: 2.00},
		{ProductID: uuid.New(), Quantity: 1, Price: 3.00},
	}
	if _, err := repo.Create(ctx, order); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	order.Items = order.Items[:1]
	if _, err := repo.Update(ctx, order.ID, order); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	stored, err := repo.FindByID(ctx, order.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(stored.Items) != 1 {
		t.Fatalf("expected 1 item after update, got %d", len(stored.Items))
	}
}

func TestOrderRepository_UpdateAbsent(t *testing.T) {
	repo := memory.NewOrderRepository()

	_, err := repo.Update(context.Background(), uuid.New(), newOrder())
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestOrderRepository_Delete(t *testing.T) {
	repo := memory.NewOrderRepository()
	ctx := context.Background()
	order := newOrder()

	if _, err := repo.Create(ctx, order); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.Delete(ctx, order.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	stored, err := repo.FindByID(ctx, order.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if stored != nil {
		t.Fatal("expected order to be gone")
	}

	if err := repo.Delete(ctx, order.ID); !domain.IsNotFound(err) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}
