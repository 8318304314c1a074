package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"bookstore-api/middleware"
	"bookstore-api/models"
	"bookstore-api/repository"
	"bookstore-api/utils"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductController handles catalog requests
type ProductController struct {
	Products repository.ProductRepository
}

// NewProductController creates a new ProductController
func NewProductController(products repository.ProductRepository) *ProductController {
	return &ProductController{Products: products}
}

// CreateProduct handles adding a new book to the catalog (Admin only)
func (pc *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var input models.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if err := input.Validate(); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	product := input.ToProduct()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	id, err := pc.Products.Create(ctx, &product)
	if err != nil {
		utils.RespondInternalError(w, "Error creating product", err)
		return
	}
	product.ID = id

	utils.RespondJSON(w, http.StatusCreated, product)
}

// GetProducts retrieves all books in the catalog
func (pc *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	products, err := pc.Products.FindAll(ctx)
	if err != nil {
		utils.RespondInternalError(w, "Error fetching products", err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, products)
}

// GetProductByID retrieves a single book by ID
func (pc *ProductController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	product, err := pc.Products.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		utils.RespondError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		utils.RespondInternalError(w, "Error fetching product", err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, product)
}

// UpdateProduct handles a partial update of a book (Admin only). Only fields
// present in the body are replaced.
func (pc *ProductController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var update models.ProductUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if err := update.Validate(); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	product, err := pc.Products.Update(ctx, id, &update)
	if errors.Is(err, repository.ErrNotFound) {
		utils.RespondError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		utils.RespondInternalError(w, "Error updating product", err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, product)
}

// DeleteProduct handles deleting a book (Admin only)
func (pc *ProductController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = pc.Products.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		utils.RespondError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		utils.RespondInternalError(w, "Error deleting product", err)
		return
	}

	utils.RespondMessage(w, http.StatusOK, "Product deleted successfully")
}

// AddReview appends a review from the authenticated user to a book
func (pc *ProductController) AddReview(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var input models.ReviewInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if err := input.Validate(); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	review := models.Review{
		UserID:    user.ID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = pc.Products.AddReview(ctx, id, review)
	if errors.Is(err, repository.ErrNotFound) {
		utils.RespondError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		utils.RespondInternalError(w, "Error adding review", err)
		return
	}

	utils.RespondMessage(w, http.StatusCreated, "Review added")
}
