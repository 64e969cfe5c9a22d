package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Duncanian/develop-v2/internal/adapter/logger"
	"github.com/Duncanian/develop-v2/internal/domain"
	"github.com/Duncanian/develop-v2/internal/interfaces"
)

const (
	msgSignupFields   = "Please provide a username, email and password"
	msgUserExists     = "That username or email is already taken"
	msgSignupDone     = "Account created successfully!"
	msgBadCredentials = "Invalid username or password"
)

type AuthHandler struct {
	service interfaces.AuthService
	logger  logger.Logger
}

func NewAuthHandler(service interfaces.AuthService, lgr logger.Logger) *AuthHandler {
	return &AuthHandler{service: service, logger: lgr}
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Signup handles POST /api/v2/auth/signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusOK, msgInvalidBody)
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.Username == "" || req.Email == "" || req.Password == "" {
		respondMessage(w, http.StatusOK, msgSignupFields)
		return
	}

	switch _, err := h.service.Signup(r.Context(), req.Username, req.Email, req.Password); {
	case errors.Is(err, domain.ErrUserExists):
		respondMessage(w, http.StatusOK, msgUserExists)
	case err != nil:
		h.logger.Error("signup_failed", "Signup failed", "", nil, err)
		respondMessage(w, http.StatusInternalServerError, msgInternalFailure)
	default:
		respondMessage(w, http.StatusCreated, msgSignupDone)
	}
}

// Login handles POST /api/v2/auth/login and returns a signed token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusOK, msgInvalidBody)
		return
	}

	signed, err := h.service.Login(r.Context(), req.Username, req.Password)
	if errors.Is(err, domain.ErrBadCredentials) {
		respondMessage(w, http.StatusUnauthorized, msgBadCredentials)
		return
	}
	if err != nil {
		h.logger.Error("login_failed", "Login failed", "", nil, err)
		respondMessage(w, http.StatusInternalServerError, msgInternalFailure)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"token": signed})
}
