package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vladislavdragonenkov/business-service/internal/domain"
)

const (
	productCollection = "products"
	opTimeout         = 5 * time.Second
)

// productDocument — представление товара в коллекции.
// _id — каноническая строковая форма UUID; тело документа дублирует поля
// сущности, но не идентификатор.
type productDocument struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	Description string    `bson:"description"`
	Price       float64   `bson:"price"`
	SKU         string    `bson:"sku"`
	Category    string    `bson:"category"`
	InStock     bool      `bson:"in_stock"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func toDocument(p domain.Product) productDocument {
	return productDocument{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		SKU:         p.SKU,
		Category:    p.Category,
		InStock:     p.InStock,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (d productDocument) toEntity() (domain.Product, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return domain.Product{}, fmt.Errorf("decode product document id %q: %w", d.ID, err)
	}
	return domain.Product{
		ID:          id,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		SKU:         d.SKU,
		Category:    d.Category,
		InStock:     d.InStock,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}, nil
}

// productRepository — MongoDB-реализация ProductRepository.
type productRepository struct {
	collection *mongo.Collection
}

// NewProductRepository создаёт MongoDB-реализацию ProductRepository.
func NewProductRepository(store *Store) domain.ProductRepository {
	return &productRepository{collection: store.Database().Collection(productCollection)}
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var doc productDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find product: %w", err)
	}

	product, err := doc.toEntity()
	if err != nil {
		return nil, err
	}
	// Нативный ключ авторитетен: тело документа могло не содержать id.
	product.ID = id
	return &product, nil
}

func (r *productRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	// Курсор материализуется целиком до возврата; сбой декодирования одного
	// документа отменяет весь вызов, а не пропускает запись.
	var docs []productDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	products := make([]domain.Product, 0, len(docs))
	for _, doc := range docs {
		product, err := doc.toEntity()
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}

func (r *productRepository) Create(ctx context.Context, product domain.Product) (domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}

	if _, err := r.collection.InsertOne(ctx, toDocument(product)); err != nil {
		return domain.Product{}, fmt.Errorf("insert product: %w", err)
	}

	return product, nil
}

func (r *productRepository) Update(ctx context.Context, id uuid.UUID, product domain.Product) (domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	// _id в payload не попадает: нативный ключ документа неизменяем,
	// обновляются только поля тела через $set.
	doc := toDocument(product)
	set := bson.M{
		"name":        doc.Name,
		"description": doc.Description,
		"price":       doc.Price,
		"sku":         doc.SKU,
		"category":    doc.Category,
		"in_stock":    doc.InStock,
		"created_at":  doc.CreatedAt,
		"updated_at":  doc.UpdatedAt,
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id.String()}, bson.M{"$set": set})
	if err != nil {
		return domain.Product{}, fmt.Errorf("update product: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.Product{}, fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}

	product.ID = id
	return product, nil
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

var _ domain.ProductRepository = (*productRepository)(nil)
