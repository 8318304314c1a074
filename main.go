// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"bookstore-api/controllers"
	"bookstore-api/middleware"
	"bookstore-api/repository"
	"bookstore-api/routes"
	"bookstore-api/utils"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	// Set the JWT secret key
	utils.JwtKey = []byte(os.Getenv("JWT_SECRET"))

	// Initialize EmailService (nil when SENDGRID_API_KEY is unset)
	emailService := utils.NewEmailService()
	if emailService == nil {
		log.Println("SENDGRID_API_KEY not set. Email delivery disabled.")
	}

	// Connect to MongoDB
	client := utils.ConnectDB()
	defer func() {
		if err = client.Disconnect(context.TODO()); err != nil {
			log.Fatal(err)
		}
	}()

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "bookstore"
	}
	db := client.Database(dbName)

	// Initialize repositories
	userRepo := repository.NewMongoUserRepository(db)
	productRepo := repository.NewMongoProductRepository(db)
	cartRepo := repository.NewMongoCartRepository(db)
	wishlistRepo := repository.NewMongoWishlistRepository(db)

	// Initialize controllers and middleware
	auth := middleware.NewAuthMiddleware(userRepo)
	userController := controllers.NewUserController(userRepo, emailService)
	productController := controllers.NewProductController(productRepo)
	cartController := controllers.NewCartController(cartRepo, productRepo)
	wishlistController := controllers.NewWishlistController(wishlistRepo, productRepo)

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, auth, userController, productController, cartController, wishlistController)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	fmt.Printf("Server is running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
