package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/guttosm/warehouse-service/internal/domain/model"
)

// MongoProductRepository serves the catalog from the products collection.
type MongoProductRepository struct {
	collection *mongo.Collection
}

// NewMongoProductRepository creates a Mongo-backed catalog repository.
func NewMongoProductRepository(db *MongoDB) *MongoProductRepository {
	return &MongoProductRepository{collection: db.Products}
}

// GetProductByID resolves a product id to its bill-of-materials.
func (r *MongoProductRepository) GetProductByID(ctx context.Context, productID string) (*model.Product, error) {
	var product model.Product
	err := r.collection.FindOne(ctx, bson.M{"product_id": productID}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, model.NewProductNotFoundError(productID)
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// GetAllProducts returns the whole catalog.
func (r *MongoProductRepository) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var products []model.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Reload is a no-op: Mongo lookups always see the current collection.
func (r *MongoProductRepository) Reload(context.Context) error {
	return nil
}

// Seed inserts catalog documents when the collection is empty. Used to
// bootstrap a Mongo deployment from the JSON catalog file.
func (r *MongoProductRepository) Seed(ctx context.Context, products []model.Product) error {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	docs := make([]interface{}, len(products))
	for i, p := range products {
		docs[i] = p
	}
	_, err = r.collection.InsertMany(ctx, docs)
	return err
}
