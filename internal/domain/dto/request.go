// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"math"
	"regexp"
	"time"

	"github.com/guttosm/warehouse-service/internal/domain/model"
)

// orderDatePattern matches the ISO YYYY-MM-DD format used as the store's
// exact-match date key.
var orderDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// SaveOrderRequest represents the JSON request body for order submission.
//
// The payload mirrors the stored order document. Validation is a standalone
// rule checklist run before the order reaches the store; it is not re-run
// at report-generation time.
//
// @Description Order submission payload
type SaveOrderRequest struct {
	// OrderID is optional; a UUID is assigned when absent.
	OrderID         string           `json:"order_id" example:"ord-1001"`
	OrderTotal      float64          `json:"order_total" example:"99.80"`
	OrderDate       string           `json:"order_date" binding:"required" example:"2024-07-07"`
	ShippingAddress string           `json:"shipping_address" binding:"required" example:"12 Harbour St, Amsterdam"`
	CustomerName    string           `json:"customer_name" binding:"required" example:"Ana Janssen"`
	CustomerEmail   string           `json:"customer_email" binding:"required" example:"ana@example.com"`
	LineItems       []model.LineItem `json:"line_items" binding:"required"`
} // @name SaveOrderRequest

// Validate runs the order submission checklist.
// Returns the first *ValidationError encountered, nil when the payload is valid.
func (r *SaveOrderRequest) Validate() error {
	if err := ValidateOrderDate(r.OrderDate); err != nil {
		return err
	}
	if r.OrderTotal <= 0 {
		return &ValidationError{Field: "order_total", Message: "must be a positive number"}
	}
	if r.ShippingAddress == "" {
		return &ValidationError{Field: "shipping_address", Message: "is required"}
	}
	if r.CustomerName == "" {
		return &ValidationError{Field: "customer_name", Message: "is required"}
	}
	if r.CustomerEmail == "" {
		return &ValidationError{Field: "customer_email", Message: "is required"}
	}
	if len(r.LineItems) == 0 {
		return &ValidationError{Field: "line_items", Message: "order must have at least one line item"}
	}

	var total float64
	for _, item := range r.LineItems {
		if err := validateLineItem(item); err != nil {
			return err
		}
		total += item.Price * float64(item.EffectiveQuantity())
	}

	// Tolerance absorbs floating point noise in client-computed totals.
	if math.Abs(total-r.OrderTotal) > 0.01 {
		return &ValidationError{Field: "order_total", Message: "does not match sum of line items"}
	}

	return nil
}

// validateLineItem checks a single line item against the submission rules.
func validateLineItem(item model.LineItem) error {
	if item.LineItemID == "" {
		return &ValidationError{Field: "line_item_id", Message: "is required"}
	}
	if item.ProductID == "" {
		return &ValidationError{Field: "product_id", Message: "is required"}
	}
	if item.ProductName == "" {
		return &ValidationError{Field: "product_name", Message: "is required"}
	}
	if item.Price <= 0 {
		return &ValidationError{Field: "price", Message: "must be greater than 0"}
	}
	if item.Quantity != nil && *item.Quantity <= 0 {
		return &ValidationError{Field: "quantity", Message: "must be greater than 0"}
	}
	return nil
}

// ValidateOrderDate checks that a date string is a real YYYY-MM-DD calendar day.
func ValidateOrderDate(date string) error {
	if !orderDatePattern.MatchString(date) {
		return &ValidationError{Field: "order_date", Message: "invalid date format, use YYYY-MM-DD"}
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return &ValidationError{Field: "order_date", Message: "invalid date"}
	}
	return nil
}

// ToOrder converts a validated request into the domain order to persist.
func (r *SaveOrderRequest) ToOrder() model.Order {
	return model.Order{
		OrderID:         r.OrderID,
		OrderTotal:      r.OrderTotal,
		OrderDate:       r.OrderDate,
		ShippingAddress: r.ShippingAddress,
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		LineItems:       r.LineItems,
	}
}
