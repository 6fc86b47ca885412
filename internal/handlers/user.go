package handlers

import (
	"errors"
	"net/http"

	"linkstash/internal/middleware"
	"linkstash/internal/models"
	"linkstash/internal/repo"
)

// ==========================
// User Handler
// ==========================
type UserHandler struct {
	UserRepo *repo.UserRepo
}

// ==========================
// Get User (resolves the token identity to a user record)
// ==========================
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, h.UserRepo)
	if !ok {
		return
	}

	JSONOK(w, map[string]string{"username": user.Username})
}

// currentUser resolves the authenticated identity to a user record. A token
// that validates but names a user no longer in the store (a stale token)
// yields 404. When ok is false a response has already been written.
func currentUser(w http.ResponseWriter, r *http.Request, users *repo.UserRepo) (*models.User, bool) {
	email, ok := middleware.GetIdentity(r.Context())
	if !ok {
		JSONError(w, "unauthorized", http.StatusUnauthorized)
		return nil, false
	}

	user, err := users.GetByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			JSONError(w, "user not found", http.StatusNotFound)
			return nil, false
		}
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return nil, false
	}

	return user, true
}
