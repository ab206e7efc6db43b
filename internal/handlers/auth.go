package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/models"
	services "github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/service/auth"
)

type AuthHandler struct {
	Service *services.AuthService
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{Service: service}
}

// Signup handles the user registration request.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if user.Email == "" || user.Password == "" {
		respondError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	created, err := h.Service.Signup(r.Context(), user)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			respondError(w, http.StatusConflict, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	token, err := h.Service.GenerateJWT(created)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message":      "User created successfully",
		"user_details": created,
		"token":        token,
	})
}

// Login handles the user authentication request.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var credentials models.User
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	token, userDetails, err := h.Service.Login(r.Context(), credentials.Email, credentials.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"token":        token,
		"user_details": userDetails,
	})
}
