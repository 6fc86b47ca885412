package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"linkstash/internal/metrics"
	"linkstash/internal/repo"
)

// ==========================
// Link Handler
// ==========================
type LinkHandler struct {
	UserRepo *repo.UserRepo
	LinkRepo *repo.LinkRepo
}

// linkItem is the wire shape for a single link.
type linkItem struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// ==========================
// Add Link
// ==========================
func (h *LinkHandler) AddLink(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, h.UserRepo)
	if !ok {
		return
	}

	var input struct {
		Title string `json:"title"`
		URL   string `json:"url"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, "invalid json", http.StatusBadRequest)
		return
	}
	fields := make(map[string]string)
	if input.Title == "" {
		fields["title"] = "required"
	}
	if input.URL == "" {
		fields["url"] = "required"
	}
	if len(fields) > 0 {
		JSONValidationError(w, "missing fields", fields, http.StatusBadRequest)
		return
	}

	if _, err := h.LinkRepo.Create(r.Context(), user.ID, input.Title, input.URL); err != nil {
		slog.Error("add link failed", "error", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	metrics.IncLinkOps("create")
	JSONOK(w, map[string]string{"message": "link added"})
}

// ==========================
// List Links (always scoped to the authenticated owner)
// ==========================
func (h *LinkHandler) ListLinks(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, h.UserRepo)
	if !ok {
		return
	}

	links, err := h.LinkRepo.ListByOwner(r.Context(), user.ID)
	if err != nil {
		slog.Error("list links failed", "error", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	items := make([]linkItem, 0, len(links))
	for _, l := range links {
		items = append(items, linkItem{ID: l.ID, Title: l.Title, URL: l.URL})
	}

	metrics.IncLinkOps("list")
	JSONOK(w, map[string][]linkItem{"links": items})
}

// ==========================
// Delete Link
// ==========================
// A link owned by another user and a nonexistent link produce the same 404,
// so link ids cannot be probed across owners.
func (h *LinkHandler) DeleteLink(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, h.UserRepo)
	if !ok {
		return
	}

	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		JSONError(w, "invalid link id", http.StatusBadRequest)
		return
	}

	if err := h.LinkRepo.Delete(r.Context(), user.ID, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			JSONError(w, "link not found or not authorized", http.StatusNotFound)
			return
		}
		slog.Error("delete link failed", "error", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	metrics.IncLinkOps("delete")
	JSONOK(w, map[string]string{"message": "link deleted"})
}
