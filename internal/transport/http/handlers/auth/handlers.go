// Package authhandler exposes the login endpoint. A successful login
// returns a bearer token, but no other route checks for one; the token
// exists so clients can persist a session across reloads.
package authhandler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"railops/internal/domain/auth"
	"railops/internal/domain/registry"
	"railops/internal/transport/http/api"
	"railops/internal/transport/http/middleware"
)

const (
	tokenTTL = 8 * time.Hour

	loginRateLimit  = 10
	loginRateWindow = time.Minute
)

type Handler struct {
	Store  *registry.Store
	Secret string
}

func NewHandler(store *registry.Store, secret string) *Handler {
	return &Handler{Store: store, Secret: secret}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	limiter := middleware.RateLimit(loginRateLimit, loginRateWindow, middleware.UsernameOrIPKey("username"))
	r.With(limiter).Post("/auth/login", h.handleLogin)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string    `json:"token"`
	User  loginUser `json:"user"`
}

type loginUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}
	payload.Username = strings.TrimSpace(payload.Username)
	if payload.Username == "" || payload.Password == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "username and password are required", requestID)
		return
	}

	user, ok := h.Store.GetUserByUsername(payload.Username)
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid username or password", requestID)
		return
	}
	if err := auth.CheckPassword(user.PasswordHash, payload.Password); err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid username or password", requestID)
		return
	}

	token, err := auth.GenerateToken(h.Secret, auth.Claims{UserID: user.ID, Username: user.Username}, tokenTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "token_failed", "failed to issue token", requestID)
		return
	}

	api.Success(w, loginResponse{
		Token: token,
		User:  loginUser{ID: user.ID, Username: user.Username},
	}, requestID)
}
