// Package model defines the core domain entities for the warehouse service.
package model

// LineItem is one product-quantity pair within an order.
//
// Quantity is a pointer so a missing field can be told apart from an explicit
// zero: orders submitted without a quantity are treated as quantity 1.
//
// @Description One entry in an order referencing a catalog product
type LineItem struct {
	// LineItemID uniquely identifies the line item within the order
	LineItemID string `json:"line_item_id" bson:"line_item_id" example:"li-001"`
	// ProductID references a product in the catalog
	ProductID string `json:"product_id" bson:"product_id" example:"GB-RELAX"`
	// ProductName is a denormalized copy of the product name at order time
	ProductName string `json:"product_name" bson:"product_name" example:"Relaxation Gift Box"`
	// Price is the unit price at order time
	Price float64 `json:"price" bson:"price" example:"49.90"`
	// Quantity is the number of units ordered; defaults to 1 when absent
	Quantity *int `json:"quantity,omitempty" bson:"quantity,omitempty" example:"2"`
} // @name LineItem

// EffectiveQuantity returns the quantity to use for fulfillment math.
// A line item without an explicit quantity counts as 1.
func (li LineItem) EffectiveQuantity() int {
	if li.Quantity == nil {
		return 1
	}
	return *li.Quantity
}

// Order is a customer order as stored in the order source.
//
// OrderDate is an ISO YYYY-MM-DD string and the exact-match key for the
// by-date queries; the repositories never parse or normalize it.
//
// @Description Customer order with one or more line items
type Order struct {
	OrderID         string     `json:"order_id" bson:"order_id" example:"ord-1001"`
	OrderTotal      float64    `json:"order_total" bson:"order_total" example:"99.80"`
	OrderDate       string     `json:"order_date" bson:"order_date" example:"2024-07-07"`
	ShippingAddress string     `json:"shipping_address" bson:"shipping_address" example:"12 Harbour St, Amsterdam"`
	CustomerName    string     `json:"customer_name" bson:"customer_name" example:"Ana Janssen"`
	CustomerEmail   string     `json:"customer_email" bson:"customer_email" example:"ana@example.com"`
	LineItems       []LineItem `json:"line_items" bson:"line_items"`
} // @name Order

// TotalLineItems returns the number of line items in the order.
func (o Order) TotalLineItems() int {
	return len(o.LineItems)
}
