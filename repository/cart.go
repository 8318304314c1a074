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

// CartRepository provides typed access to the cart collection. A user has at
// most one cart, keyed by user id.
type CartRepository interface {
	FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error)
	Save(ctx context.Context, cart *models.Cart) error
}

// MongoCartRepository is the MongoDB-backed CartRepository
type MongoCartRepository struct {
	Collection *mongo.Collection
}

// NewMongoCartRepository creates a cart repository over the given database
func NewMongoCartRepository(db *mongo.Database) *MongoCartRepository {
	return &MongoCartRepository{Collection: db.Collection("carts")}
}

// FindByUser returns the user's cart, or ErrNotFound
func (r *MongoCartRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	var cart models.Cart
	err := r.Collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// Save writes the whole cart document back, creating it if the user has none
// yet. Last write wins on concurrent saves for the same user.
func (r *MongoCartRepository) Save(ctx context.Context, cart *models.Cart) error {
	opts := options.Replace().SetUpsert(true)
	result, err := r.Collection.ReplaceOne(ctx, bson.M{"user_id": cart.UserID}, cart, opts)
	if err != nil {
		return err
	}
	if result.UpsertedID != nil {
		cart.ID = result.UpsertedID.(primitive.ObjectID)
	}
	return nil
}
