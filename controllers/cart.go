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

// CartController handles cart requests
type CartController struct {
	Carts    repository.CartRepository
	Products repository.ProductRepository
}

// NewCartController creates a new CartController
func NewCartController(carts repository.CartRepository, products repository.ProductRepository) *CartController {
	return &CartController{Carts: carts, Products: products}
}

// cartItemRequest is the body for cart mutations
type cartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// GetCart retrieves the user's cart with every line item's product resolved
// to the full catalog record
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, err := primitive.ObjectIDFromHex(mux.Vars(r)["userId"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	cart, err := cc.Carts.FindByUser(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		utils.RespondError(w, http.StatusNotFound, "Cart not found")
		return
	}
	if err != nil {
		utils.RespondInternalError(w, "Error retrieving cart", err)
		return
	}

	ids := make([]primitive.ObjectID, 0, len(cart.Products))
	for _, item := range cart.Products {
		ids = append(ids, item.ProductID)
	}
	products, err := cc.Products.FindByIDs(ctx, ids)
	if err != nil {
		utils.RespondInternalError(w, "Error retrieving cart", err)
		return
	}
	byID := make(map[primitive.ObjectID]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	resolved := models.ResolvedCart{
		ID:       cart.ID,
		UserID:   cart.UserID,
		Products: []models.ResolvedCartItem{},
	}
	for _, item := range cart.Products {
		// line items whose product has since been deleted are dropped
		// from the view, not from the stored cart
		product, ok := byID[item.ProductID]
		if !ok {
			continue
		}
		resolved.Products = append(resolved.Products, models.ResolvedCartItem{
			Product:  product,
			Quantity: item.Quantity,
		})
	}

	utils.RespondJSON(w, http.StatusOK, resolved)
}

// AddToCart adds a product to the user's cart, creating the cart on first
// use. An existing line item has its quantity incremented by the requested
// amount (default 1); there is no upper bound and no stock check.
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	userID, err := primitive.ObjectIDFromHex(mux.Vars(r)["userId"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req cartItemRequest
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
	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	cart, err := cc.Carts.FindByUser(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		cart = &models.Cart{UserID: userID, Products: []models.CartItem{}}
	} else if err != nil {
		utils.RespondInternalError(w, "Error adding to cart", err)
		return
	}

	if i := cart.FindItem(productID); i >= 0 {
		cart.Products[i].Quantity += quantity
	} else {
		cart.Products = append(cart.Products, models.CartItem{ProductID: productID, Quantity: quantity})
	}

	if err := cc.Carts.Save(ctx, cart); err != nil {
		utils.RespondInternalError(w, "Error adding to cart", err)
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"cart":    cart,
		"message": "Product added to cart",
	})
}

// IncreaseQuantity increments an existing line item's quantity by one
func (cc *CartController) IncreaseQuantity(w http.ResponseWriter, r *http.Request) {
	cc.adjustQuantity(w, r, +1)
}

// DecreaseQuantity decrements an existing line item's quantity by one,
// removing the line item entirely when its quantity would reach zero
func (cc *CartController) DecreaseQuantity(w http.ResponseWriter, r *http.Request) {
	cc.adjustQuantity(w, r, -1)
}

func (cc *CartController) adjustQuantity(w http.ResponseWriter, r *http.Request, delta int) {
	userID, err := primitive.ObjectIDFromHex(mux.Vars(r)["userId"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req cartItemRequest
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
	cart, err := cc.Carts.FindByUser(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		utils.RespondError(w, http.StatusNotFound, "Cart not found")
		return
	}
	if err != nil {
		utils.RespondInternalError(w, "Error updating cart", err)
		return
	}

	i := cart.FindItem(productID)
	if i < 0 {
		utils.RespondError(w, http.StatusNotFound, "Product not found in cart")
		return
	}

	message := "Product quantity increased"
	if delta > 0 {
		cart.Products[i].Quantity++
	} else {
		message = "Product quantity decreased"
		if cart.Products[i].Quantity > 1 {
			cart.Products[i].Quantity--
		} else {
			cart.RemoveItem(productID)
		}
	}

	if err := cc.Carts.Save(ctx, cart); err != nil {
		utils.RespondInternalError(w, "Error updating cart", err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"cart":    cart,
		"message": message,
	})
}

// RemoveFromCart removes a line item from the user's cart. Removing a
// product that is not in the cart is a no-op, not an error.
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
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
	cart, err := cc.Carts.FindByUser(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		utils.RespondError(w, http.StatusNotFound, "Cart not found")
		return
	}
	if err != nil {
		utils.RespondInternalError(w, "Error removing from cart", err)
		return
	}

	cart.RemoveItem(productID)

	if err := cc.Carts.Save(ctx, cart); err != nil {
		utils.RespondInternalError(w, "Error removing from cart", err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"cart":    cart,
		"message": "Product removed from cart",
	})
}
