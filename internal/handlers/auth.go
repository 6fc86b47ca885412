package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"linkstash/internal/auth"
	"linkstash/internal/metrics"
	"linkstash/internal/repo"
)

// ==========================
// Auth Handler
// ==========================
type AuthHandler struct {
	UserRepo *repo.UserRepo
	Tokens   *auth.TokenIssuer
}

// ==========================
// Signup (bcrypt-hashed password, token issued immediately)
// ==========================
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, "invalid json", http.StatusBadRequest)
		return
	}
	fields := make(map[string]string)
	if input.Username == "" {
		fields["username"] = "required"
	}
	if input.Email == "" {
		fields["email"] = "required"
	}
	if input.Password == "" {
		fields["password"] = "required"
	}
	if len(fields) > 0 {
		JSONValidationError(w, "missing fields", fields, http.StatusBadRequest)
		return
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	// The unique index on email resolves concurrent signups; there is no
	// check-then-insert window here.
	user, err := h.UserRepo.Create(r.Context(), input.Username, input.Email, hash)
	if err != nil {
		if errors.Is(err, repo.ErrEmailTaken) {
			JSONError(w, "email already registered", http.StatusConflict)
			return
		}
		slog.Error("signup: create user failed", "error", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	token, err := h.Tokens.Issue(user.Email)
	if err != nil {
		slog.Error("signup: issue token failed", "error", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	JSONOK(w, map[string]string{
		"token":   token,
		"message": "user registered",
	})
}

// ==========================
// Login (generic failure for unknown email and wrong password alike)
// ==========================
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, "invalid json", http.StatusBadRequest)
		return
	}

	user, err := h.UserRepo.GetByEmail(r.Context(), input.Email)
	if err != nil {
		metrics.IncAuthFailures("bad_credentials")
		JSONError(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	if !auth.CheckPassword(input.Password, user.PasswordHash) {
		metrics.IncAuthFailures("bad_credentials")
		JSONError(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := h.Tokens.Issue(user.Email)
	if err != nil {
		slog.Error("login: issue token failed", "error", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	JSONOK(w, map[string]string{"token": token})
}
