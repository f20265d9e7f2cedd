package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/shashiranjanraj/vastra/pkg/middleware"
	"github.com/shashiranjanraj/vastra/pkg/response"
)

// AuthController serves signup, login and the session-identity endpoint.
type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

// SignupRequest is the signup payload. Contact is the phone number.
type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Contact  string `json:"contact" validate:"required"`
}

// Signup registers a new user and returns a bearer token.
func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, "All fields are required")
		return
	}

	token, err := c.service.Signup(r.Context(), req.Name, req.Email, req.Password, req.Contact)
	if err != nil {
		handleError(w, r, err)
		return
	}

	response.OK(w, response.M{"token": token})
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login verifies credentials and returns a bearer token.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, "Email and password are required")
		return
	}

	token, err := c.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			response.BadRequest(w, "User not found")
			return
		}
		handleError(w, r, err)
		return
	}

	response.OK(w, response.M{"token": token})
}

// Me returns the identity behind the presented token.
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.CurrentUserID(r.Context())

	profile, err := c.service.Profile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			response.NotFound(w, "User not found")
			return
		}
		handleError(w, r, err)
		return
	}

	response.OK(w, response.M{"user": profile})
}
