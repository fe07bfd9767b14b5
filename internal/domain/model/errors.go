package model

import "fmt"

// ProductNotFoundError is returned when a line item references a product that
// does not exist in the catalog. Report generation treats it as fatal for the
// whole date: no partial report is ever returned.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %s not found in catalog", e.ProductID)
}

// NewProductNotFoundError creates a ProductNotFoundError for the given product.
func NewProductNotFoundError(productID string) *ProductNotFoundError {
	return &ProductNotFoundError{ProductID: productID}
}

// OrderNotFoundError is returned by the order source when an order id does
// not exist.
type OrderNotFoundError struct {
	OrderID string
}

func (e *OrderNotFoundError) Error() string {
	return fmt.Sprintf("order %s not found", e.OrderID)
}

// NewOrderNotFoundError creates an OrderNotFoundError for the given order.
func NewOrderNotFoundError(orderID string) *OrderNotFoundError {
	return &OrderNotFoundError{OrderID: orderID}
}

// DataInvalidError reports a malformed store document, such as a products
// file without its top-level "products" array. It is fatal for the current
// operation and never retried.
type DataInvalidError struct {
	Resource string
	Reason   string
}

func (e *DataInvalidError) Error() string {
	return fmt.Sprintf("%s data is invalid - %s", e.Resource, e.Reason)
}

// NewDataInvalidError creates a DataInvalidError for the given resource.
func NewDataInvalidError(resource, reason string) *DataInvalidError {
	return &DataInvalidError{Resource: resource, Reason: reason}
}
