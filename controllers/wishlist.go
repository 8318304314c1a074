package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"bookstore-api/models"
	"bookstore-api/repository"
	"bookstore-api/utils"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WishlistController handles wishlist requests
type WishlistController struct {
	Wishlists repository.WishlistRepository
	Products  repository.ProductRepository
}

// NewWishlistController creates a new WishlistController
func NewWishlistController(wishlists repository.WishlistRepository, products repository.ProductRepository) *WishlistController {
	return &WishlistController{Wishlists: wishlists, Products: products}
}

// GetWishlist retrieves the user's wishlist with product references resolved
// to full catalog records
func (wc *WishlistController) GetWishlist(w http.ResponseWriter, r *http.Request) {
	userID, err := primitive.ObjectIDFromHex(mux.Vars(r)["userId"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	wishlist, err := wc.Wishlists.FindByUser(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		utils.RespondError(w, http.StatusNotFound, "Wishlist not found")
		return
	}
	if err != nil {
		utils.RespondInternalError(w, "Error fetching wishlist", err)
		return
	}

	products, err := wc.Products.FindByIDs(ctx, wishlist.Products)
	if err != nil {
		utils.RespondInternalError(w, "Error fetching wishlist", err)
		return
	}

	resolved := models.ResolvedWishlist{
		ID:       wishlist.ID,
		UserID:   wishlist.UserID,
		Products: products,
	}

	utils.RespondJSON(w, http.StatusOK, resolved)
}

// AddToWishlist adds a product to the user's wishlist, creating the wishlist
// on first use. Adding a product that is already present is rejected.
func (wc *WishlistController) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	userID, err := primitive.ObjectIDFromHex(mux.Vars(r)["userId"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req struct {
		ProductID string `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if req.ProductID == "" {
		utils.RespondError(w, http.StatusBadRequest, "Product ID is required")
		return
	}
	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	wishlist, err := wc.Wishlists.FindByUser(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		wishlist = &models.Wishlist{UserID: userID, Products: []primitive.ObjectID{}}
	} else if err != nil {
		utils.RespondInternalError(w, "Error adding to wishlist", err)
		return
	}

	if wishlist.Contains(productID) {
		utils.RespondError(w, http.StatusBadRequest, "Product already in wishlist")
		return
	}
	wishlist.Products = append(wishlist.Products, productID)

	if err := wc.Wishlists.Save(ctx, wishlist); err != nil {
		utils.RespondInternalError(w, "Error adding to wishlist", err)
		return
	}

	utils.RespondMessage(w, http.StatusCreated, "Product added to wishlist")
}

// RemoveFromWishlist removes a product from the user's wishlist. Removing a
// product that is not present is a no-op, not an error.
func (wc *WishlistController) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	userID, err := primitive.ObjectIDFromHex(params["userId"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}
	productID, err := primitive.ObjectIDFromHex(params["productId"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	wishlist, err := wc.Wishlists.FindByUser(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		utils.RespondError(w, http.StatusNotFound, "Wishlist not found")
		return
	}
	if err != nil {
		utils.RespondInternalError(w, "Error removing from wishlist", err)
		return
	}

	wishlist.RemoveProduct(productID)

	if err := wc.Wishlists.Save(ctx, wishlist); err != nil {
		utils.RespondInternalError(w, "Error removing from wishlist", err)
		return
	}

	utils.RespondMessage(w, http.StatusOK, "Product removed from wishlist")
}
