package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is one line item in a cart: a product reference plus a quantity.
// A stored quantity is always >= 1; decreasing past 1 removes the line item.
type CartItem struct {
	ProductID primitive.ObjectID `bson:"product_id" json:"productId"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

// Cart represents a user's shopping cart. At most one line item exists per
// distinct product.
type Cart struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID   primitive.ObjectID `bson:"user_id" json:"userId"`
	Products []CartItem         `bson:"products" json:"products"`
}

// FindItem returns the index of the line item for the given product, or -1
func (c *Cart) FindItem(productID primitive.ObjectID) int {
	for i, item := range c.Products {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}

// RemoveItem drops the line item for the given product if present
func (c *Cart) RemoveItem(productID primitive.ObjectID) {
	kept := make([]CartItem, 0, len(c.Products))
	for _, item := range c.Products {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	c.Products = kept
}

// ResolvedCartItem is a line item with its product reference expanded into
// the full catalog record, as returned by GET /cart/{userId}
type ResolvedCartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// ResolvedCart is a cart with all product references resolved
type ResolvedCart struct {
	ID       primitive.ObjectID `json:"id,omitempty"`
	UserID   primitive.ObjectID `json:"userId"`
	Products []ResolvedCartItem `json:"products"`
}
