package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a single customer review embedded in a product document
type Review struct {
	UserID    primitive.ObjectID `bson:"user_id" json:"userId"`
	Rating    int                `bson:"rating" json:"rating"`
	Comment   string             `bson:"comment" json:"comment"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

// Product represents a book in the catalog
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Author      string             `bson:"author" json:"author"`
	Description string             `bson:"description" json:"description"`
	CoverImage  string             `bson:"cover_image" json:"coverImage"`
	Price       float64            `bson:"price" json:"price"`
	Rating      float64            `bson:"rating" json:"rating"`
	Genre       string             `bson:"genre" json:"genre"`
	Stock       int                `bson:"stock" json:"stock"`
	Reviews     []Review           `bson:"reviews" json:"reviews"`
}

// ProductInput is the request body for creating a product. Price and stock
// are pointers so a missing field can be told apart from an explicit zero.
type ProductInput struct {
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Description string   `json:"description"`
	CoverImage  string   `json:"coverImage"`
	Price       *float64 `json:"price"`
	Rating      *float64 `json:"rating"`
	Genre       string   `json:"genre"`
	Stock       *int     `json:"stock"`
}

// Validate checks the required fields and value ranges for product creation
func (in *ProductInput) Validate() error {
	if in.Title == "" {
		return errors.New("title is required")
	}
	if in.Author == "" {
		return errors.New("author is required")
	}
	if in.Description == "" {
		return errors.New("description is required")
	}
	if in.CoverImage == "" {
		return errors.New("coverImage is required")
	}
	if in.Price == nil {
		return errors.New("price is required")
	}
	if *in.Price < 0 {
		return errors.New("price must not be negative")
	}
	if in.Rating != nil && (*in.Rating < 0 || *in.Rating > 5) {
		return errors.New("rating must be between 0 and 5")
	}
	if in.Genre == "" {
		return errors.New("genre is required")
	}
	if in.Stock == nil {
		return errors.New("stock is required")
	}
	if *in.Stock < 0 {
		return errors.New("stock must not be negative")
	}
	return nil
}

// ToProduct builds the product document to insert. Rating defaults to 0 and
// the embedded review list starts empty.
func (in *ProductInput) ToProduct() Product {
	p := Product{
		Title:       in.Title,
		Author:      in.Author,
		Description: in.Description,
		CoverImage:  in.CoverImage,
		Price:       *in.Price,
		Genre:       in.Genre,
		Stock:       *in.Stock,
		Reviews:     []Review{},
	}
	if in.Rating != nil {
		p.Rating = *in.Rating
	}
	return p
}

// ProductUpdate is the request body for a partial product update; only
// non-nil fields are written.
type ProductUpdate struct {
	Title       *string  `json:"title"`
	Author      *string  `json:"author"`
	Description *string  `json:"description"`
	CoverImage  *string  `json:"coverImage"`
	Price       *float64 `json:"price"`
	Rating      *float64 `json:"rating"`
	Genre       *string  `json:"genre"`
	Stock       *int     `json:"stock"`
}

// Validate checks the value ranges of whichever fields are present
func (u *ProductUpdate) Validate() error {
	if u.Price != nil && *u.Price < 0 {
		return errors.New("price must not be negative")
	}
	if u.Rating != nil && (*u.Rating < 0 || *u.Rating > 5) {
		return errors.New("rating must be between 0 and 5")
	}
	if u.Stock != nil && *u.Stock < 0 {
		return errors.New("stock must not be negative")
	}
	return nil
}

// ReviewInput is the request body for posting a product review
type ReviewInput struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Validate enforces the 1-5 review rating range
func (in *ReviewInput) Validate() error {
	if in.Rating < 1 || in.Rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}
	return nil
}
