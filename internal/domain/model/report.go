package model

// Report is a generated fulfillment report for a single date. Exactly one of
// the two slices is populated, depending on which list was requested.
type Report struct {
	PickingItems  []PickingItem
	PackingOrders []PackingOrder
}

// PickingItem is one row of a picking list: the total quantity of a single
// component needed across every order of the requested date, with the bin
// to retrieve it from.
//
// @Description Aggregated component quantity for a date's picking run
// @Example {"component_id": "C-CANDLE", "name": "Scented candle", "quantity": 6, "location": "A1"}
type PickingItem struct {
	ComponentID string `json:"component_id" example:"C-CANDLE"`
	Name        string `json:"name" example:"Scented candle"`
	Quantity    int    `json:"quantity" example:"6"`
	Location    string `json:"location" example:"A1"`
} // @name PickingItem

// PackingItem is one packed gift box within a packing-list order entry.
// Component quantities are already scaled by the line item's quantity.
//
// @Description One line item's gift box with scaled component quantities
type PackingItem struct {
	GiftBoxName string      `json:"gift_box_name" example:"Relaxation Gift Box"`
	Components  []Component `json:"components"`
} // @name PackingItem

// PackingOrder is the per-order section of a packing list. Item entries map
// one-to-one onto the order's line items and are never merged, even when two
// line items reference the same product.
//
// @Description Shipment manifest for a single order
type PackingOrder struct {
	OrderID         string        `json:"order_id" example:"ord-1001"`
	OrderDate       string        `json:"order_date" example:"2024-07-07"`
	CustomerName    string        `json:"customer_name" example:"Ana Janssen"`
	ShippingAddress string        `json:"shipping_address" example:"12 Harbour St, Amsterdam"`
	Items           []PackingItem `json:"items"`
} // @name PackingOrder
