// routes/routes.go
package routes

import (
	"bookstore-api/controllers"
	"bookstore-api/middleware"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(
	router *mux.Router,
	auth *middleware.AuthMiddleware,
	userController *controllers.UserController,
	productController *controllers.ProductController,
	cartController *controllers.CartController,
	wishlistController *controllers.WishlistController,
) {
	// Public routes
	router.HandleFunc("/register", userController.Register).Methods("POST")
	router.HandleFunc("/login", userController.Login).Methods("POST")
	router.HandleFunc("/products", productController.GetProducts).Methods("GET")
	router.HandleFunc("/products/{id}", productController.GetProductByID).Methods("GET")

	// Authenticated routes
	user := router.PathPrefix("/").Subrouter()
	user.Use(auth.Authenticate)
	user.HandleFunc("/profile", userController.GetProfile).Methods("GET")
	user.HandleFunc("/products/{id}/reviews", productController.AddReview).Methods("POST")

	// Cart routes
	user.HandleFunc("/cart/{userId}", cartController.GetCart).Methods("GET")
	user.HandleFunc("/cart/{userId}/add", cartController.AddToCart).Methods("POST")
	user.HandleFunc("/cart/{userId}/increase", cartController.IncreaseQuantity).Methods("PATCH")
	user.HandleFunc("/cart/{userId}/decrease", cartController.DecreaseQuantity).Methods("PATCH")
	user.HandleFunc("/cart/{userId}/{productId}", cartController.RemoveFromCart).Methods("DELETE")

	// Wishlist routes
	user.HandleFunc("/wishlist/{userId}", wishlistController.GetWishlist).Methods("GET")
	user.HandleFunc("/wishlist/{userId}", wishlistController.AddToWishlist).Methods("POST")
	user.HandleFunc("/wishlist/{userId}/{productId}", wishlistController.RemoveFromWishlist).Methods("DELETE")

	// Admin routes
	admin := router.PathPrefix("/products").Subrouter()
	admin.Use(auth.Authenticate)
	admin.Use(auth.RequireAdmin)
	admin.HandleFunc("", productController.CreateProduct).Methods("POST")
	admin.HandleFunc("/{id}", productController.UpdateProduct).Methods("PUT")
	admin.HandleFunc("/{id}", productController.DeleteProduct).Methods("DELETE")
}
