package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/guttosm/warehouse-service/internal/domain/model"
)

// MongoOrderRepository serves orders from the orders collection.
type MongoOrderRepository struct {
	collection *mongo.Collection
}

// NewMongoOrderRepository creates a Mongo-backed order repository.
func NewMongoOrderRepository(db *MongoDB) *MongoOrderRepository {
	return &MongoOrderRepository{collection: db.Orders}
}

// GetOrdersByDate returns every order whose order_date equals date exactly.
func (r *MongoOrderRepository) GetOrdersByDate(ctx context.Context, date string) ([]model.Order, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"order_date": date})
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	orders := make([]model.Order, 0)
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrderByID returns the order with the given id.
func (r *MongoOrderRepository) GetOrderByID(ctx context.Context, orderID string) (*model.Order, error) {
	var order model.Order
	err := r.collection.FindOne(ctx, bson.M{"order_id": orderID}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, model.NewOrderNotFoundError(orderID)
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// SaveOrder inserts a new order document.
func (r *MongoOrderRepository) SaveOrder(ctx context.Context, order model.Order) error {
	_, err := r.collection.InsertOne(ctx, order)
	return err
}

// UpdateOrder replaces an existing order document.
func (r *MongoOrderRepository) UpdateOrder(ctx context.Context, order model.Order) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"order_id": order.OrderID}, order)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return model.NewOrderNotFoundError(order.OrderID)
	}
	return nil
}
