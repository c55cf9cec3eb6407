package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/business-service/internal/domain"
	"github.com/vladislavdragonenkov/business-service/internal/service"
	"github.com/vladislavdragonenkov/business-service/internal/storage/memory"
)

func loggerForTests() *logrus.Entry {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(logrus.DebugLevel)
	return logger.WithField("component", "test")
}

func newProductService() *service.ProductService {
	return service.NewProductService(memory.NewProductRepository(), loggerForTests())
}

func TestProductService_CreateDefaults(t *testing.T) {
	svc := newProductService()

	created, err := svc.CreateProduct(context.Background(), service.CreateProductInput{
		Name:     "Widget",
		Price:    9.99,
		SKU:      "W-1",
		Category: "tools",
	})
	require.NoError(t, err)

	require.NotEqual(t, uuid.Nil, created.ID)
	require.True(t, created.InStock, "new product must be in stock")
	require.Equal(t, created.CreatedAt, created.UpdatedAt)
}

func TestProductService_UpdatePartial(t *testing.T) {
	svc := newProductService()
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, service.CreateProductInput{
		Name:        "Widget",
		Description: "a widget",
		Price:       9.99,
		SKU:         "W-1",
		Category:    "tools",
	})
	require.NoError(t, err)

	newPrice := 12.50
	updated, err := svc.UpdateProduct(ctx, created.ID, service.UpdateProductInput{Price: &newPrice})
	require.NoError(t, err)

	require.Equal(t, 12.50, updated.Price)
	require.Equal(t, "Widget", updated.Name)
	require.Equal(t, "a widget", updated.Description)
	require.Equal(t, "W-1", updated.SKU)
	require.Equal(t, "tools", updated.Category)
	require.True(t, updated.InStock)
	require.Equal(t, created.CreatedAt, updated.CreatedAt)
	require.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	stored, err := svc.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Equal(t, 12.50, stored.Price)
}

func TestProductService_UpdateAbsent(t *testing.T) {
	svc := newProductService()

	name := "Widget"
	_, err := svc.UpdateProduct(context.Background(), uuid.New(), service.UpdateProductInput{Name: &name})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductService_GetAbsent(t *testing.T) {
	svc := newProductService()

	product, err := svc.GetProduct(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Nil(t, product)
}

func TestProductService_Delete(t *testing.T) {
	svc := newProductService()
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, service.CreateProductInput{Name: "Widget", SKU: "W-1"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(ctx, created.ID))
	require.ErrorIs(t, svc.DeleteProduct(ctx, created.ID), domain.ErrNotFound)
}
