package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Wishlist represents a user's wishlist: a set of product references with
// no quantities and no duplicates.
type Wishlist struct {
	ID       primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	UserID   primitive.ObjectID   `bson:"user_id" json:"userId"`
	Products []primitive.ObjectID `bson:"products" json:"products"`
}

// Contains reports whether the given product is already in the wishlist
func (w *Wishlist) Contains(productID primitive.ObjectID) bool {
	for _, id := range w.Products {
		if id == productID {
			return true
		}
	}
	return false
}

// RemoveProduct drops the given product from the wishlist if present
func (w *Wishlist) RemoveProduct(productID primitive.ObjectID) {
	kept := make([]primitive.ObjectID, 0, len(w.Products))
	for _, id := range w.Products {
		if id != productID {
			kept = append(kept, id)
		}
	}
	w.Products = kept
}

// ResolvedWishlist is a wishlist with product references expanded into full
// catalog records, as returned by GET /wishlist/{userId}
type ResolvedWishlist struct {
	ID       primitive.ObjectID `json:"id,omitempty"`
	UserID   primitive.ObjectID `json:"userId"`
	Products []Product          `json:"products"`
}
