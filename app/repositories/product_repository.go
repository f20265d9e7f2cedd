package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/vastra/app/models"
)

// ProductRepository reads the read-only "products" collection.
type ProductRepository struct {
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{col: db.Collection("products")}
}

// All returns every product in storage order. An empty catalog is a valid
// result, not an error.
func (r *ProductRepository) All(ctx context.Context) ([]models.Product, error) {
	cursor, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("products: find: %w", err)
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("products: decode: %w", err)
	}
	return products, nil
}

// Seed replaces the catalog contents. Used only by the seeder CLI.
func (r *ProductRepository) Seed(ctx context.Context, products []models.Product) error {
	if _, err := r.col.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("products: clear: %w", err)
	}

	docs := make([]interface{}, len(products))
	for i, p := range products {
		docs[i] = p
	}
	if _, err := r.col.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("products: seed: %w", err)
	}
	return nil
}
