package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/guttosm/warehouse-service/internal/domain/model"
)

// ordersDocument is the on-disk layout of the orders file.
type ordersDocument struct {
	Orders []model.Order `json:"orders"`
}

// JSONOrderRepository serves orders from a JSON file.
//
// Reads parse the file per call so each request sees its own snapshot.
// Writes are a full read-modify-write of the document, serialized by a
// mutex; concurrent writers outside this process are not supported.
type JSONOrderRepository struct {
	path    string
	writeMu sync.Mutex
}

// NewJSONOrderRepository creates a repository backed by the given file.
// The file must exist and hold a valid orders document.
func NewJSONOrderRepository(path string) (*JSONOrderRepository, error) {
	r := &JSONOrderRepository{path: path}
	if _, err := r.readFile(); err != nil {
		return nil, err
	}
	return r, nil
}

// GetOrdersByDate returns every order whose order_date equals date exactly.
// No orders for the date is an empty slice, not an error.
func (r *JSONOrderRepository) GetOrdersByDate(_ context.Context, date string) ([]model.Order, error) {
	orders, err := r.readFile()
	if err != nil {
		return nil, err
	}

	matched := make([]model.Order, 0)
	for _, o := range orders {
		if o.OrderDate == date {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

// GetOrderByID returns the order with the given id.
func (r *JSONOrderRepository) GetOrderByID(_ context.Context, orderID string) (*model.Order, error) {
	orders, err := r.readFile()
	if err != nil {
		return nil, err
	}

	for _, o := range orders {
		if o.OrderID == orderID {
			return &o, nil
		}
	}
	return nil, model.NewOrderNotFoundError(orderID)
}

// SaveOrder appends a new order to the store.
func (r *JSONOrderRepository) SaveOrder(_ context.Context, order model.Order) error {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	orders, err := r.readFile()
	if err != nil {
		return err
	}

	orders = append(orders, order)
	return r.writeFile(orders)
}

// UpdateOrder replaces an existing order in place.
func (r *JSONOrderRepository) UpdateOrder(_ context.Context, order model.Order) error {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	orders, err := r.readFile()
	if err != nil {
		return err
	}

	for i := range orders {
		if orders[i].OrderID == order.OrderID {
			orders[i] = order
			return r.writeFile(orders)
		}
	}
	return model.NewOrderNotFoundError(order.OrderID)
}

// readFile reads and parses the orders document.
func (r *JSONOrderRepository) readFile() ([]model.Order, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("reading orders file: %w", err)
	}

	var doc ordersDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, model.NewDataInvalidError("orders", "invalid JSON: "+err.Error())
	}
	if doc.Orders == nil {
		return nil, model.NewDataInvalidError("orders", "missing orders array")
	}
	return doc.Orders, nil
}

// writeFile writes the whole orders document back to disk.
func (r *JSONOrderRepository) writeFile(orders []model.Order) error {
	data, err := json.MarshalIndent(ordersDocument{Orders: orders}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding orders file: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("writing orders file: %w", err)
	}
	return nil
}
