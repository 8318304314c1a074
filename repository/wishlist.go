package repository

import (
	"context"
	"errors"

	"bookstore-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// WishlistRepository provides typed access to the wishlist collection. A
// user has at most one wishlist, keyed by user id.
type WishlistRepository interface {
	FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.Wishlist, error)
	Save(ctx context.Context, wishlist *models.Wishlist) error
}

// MongoWishlistRepository is the MongoDB-backed WishlistRepository
type MongoWishlistRepository struct {
	Collection *mongo.Collection
}

// NewMongoWishlistRepository creates a wishlist repository over the given database
func NewMongoWishlistRepository(db *mongo.Database) *MongoWishlistRepository {
	return &MongoWishlistRepository{Collection: db.Collection("wishlists")}
}

// FindByUser returns the user's wishlist, or ErrNotFound
func (r *MongoWishlistRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	err := r.Collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&wishlist)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &wishlist, nil
}

// Save writes the whole wishlist document back, creating it if the user has
// none yet
func (r *MongoWishlistRepository) Save(ctx context.Context, wishlist *models.Wishlist) error {
	opts := options.Replace().SetUpsert(true)
	result, err := r.Collection.ReplaceOne(ctx, bson.M{"user_id": wishlist.UserID}, wishlist, opts)
	if err != nil {
		return err
	}
	if result.UpsertedID != nil {
		wishlist.ID = result.UpsertedID.(primitive.ObjectID)
	}
	return nil
}
