// internal/server/handlers/auth.go

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"trendscope/internal/domain/identity"
)

// AuthHandler handles authentication HTTP requests.
type AuthHandler struct {
	auth AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(auth AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string         `json:"token"`
	User  *identity.User `json:"user"`
}

// Login exchanges credentials for a session token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if req.Email == "" || req.Password == "" {
		respondWithError(w, http.StatusBadRequest, "Email and password are required", nil)
		return
	}

	token, user, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			respondWithError(w, http.StatusUnauthorized, "Invalid email or password", nil)
		} else {
			respondWithError(w, http.StatusInternalServerError, "Login failed", err)
		}
		return
	}

	respondWithJSON(w, http.StatusOK, loginResponse{Token: token, User: user})
}
