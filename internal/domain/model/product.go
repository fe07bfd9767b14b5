package model

// Component is one physical part of a product's bill-of-materials.
//
// Quantity is the units required per one unit of the parent product;
// Location is the storage bin warehouse staff pick it from.
//
// @Description Bill-of-materials entry with storage location
type Component struct {
	ComponentID string `json:"component_id" bson:"component_id" example:"C-CANDLE"`
	Name        string `json:"name" bson:"name" example:"Scented candle"`
	Quantity    int    `json:"quantity" bson:"quantity" example:"2"`
	Location    string `json:"location" bson:"location" example:"A1"`
} // @name Component

// Product is a sellable gift box that decomposes into components.
//
// Within one product every ComponentID must be unique; the picking list
// aggregation keys on it.
//
// @Description Catalog product (gift box) with its component breakdown
type Product struct {
	ProductID   string      `json:"product_id" bson:"product_id" example:"GB-RELAX"`
	ProductName string      `json:"product_name" bson:"product_name" example:"Relaxation Gift Box"`
	Price       float64     `json:"price" bson:"price" example:"49.90"`
	Description string      `json:"description,omitempty" bson:"description,omitempty" example:"Candles, tea and a soft blanket"`
	Components  []Component `json:"components" bson:"components"`
} // @name Product
