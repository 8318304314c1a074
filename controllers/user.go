package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"bookstore-api/middleware"
	"bookstore-api/models"
	"bookstore-api/repository"
	"bookstore-api/utils"

	"golang.org/x/crypto/bcrypt"
)

// UserController handles registration, login and profile requests
type UserController struct {
	Users        repository.UserRepository
	EmailService *utils.EmailService
}

// NewUserController creates a new UserController. The email service may be
// nil, in which case no mail is sent.
func NewUserController(users repository.UserRepository, emailService *utils.EmailService) *UserController {
	return &UserController{Users: users, EmailService: emailService}
}

// Register handles user registration
func (uc *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Name == "" || input.Email == "" || input.Password == "" {
		utils.RespondError(w, http.StatusBadRequest, "Name, email and password are required")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	exists, err := uc.Users.EmailExists(ctx, input.Email)
	if err != nil {
		utils.RespondInternalError(w, "Error registering user", err)
		return
	}
	if exists {
		utils.RespondError(w, http.StatusBadRequest, "User already exists")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondInternalError(w, "Error registering user", err)
		return
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashedPassword),
		Role:     models.RoleUser,
	}
	if _, err := uc.Users.Create(ctx, &user); err != nil {
		utils.RespondInternalError(w, "Error registering user", err)
		return
	}

	if uc.EmailService != nil {
		go func(email, name string) {
			if err := uc.EmailService.SendWelcomeEmail(email, name); err != nil {
				log.Printf("Failed to send welcome email to %s: %v", email, err)
			}
		}(user.Email, user.Name)
	}

	utils.RespondMessage(w, http.StatusCreated, "User registered successfully")
}

// Login handles user authentication and returns a bearer token
func (uc *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	user, err := uc.Users.FindByEmail(ctx, creds.Email)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		utils.RespondError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Role)
	if err != nil {
		utils.RespondInternalError(w, "Error generating token", err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"token": token})
}

// GetProfile returns the authenticated user's record
func (uc *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "Could not parse user from context")
		return
	}

	utils.RespondJSON(w, http.StatusOK, user)
}
