package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"library-ledger/internal/library"
	"library-ledger/internal/models"
	"library-ledger/internal/profile"
)

// ProfileHandler serves the per-user record sets and the shared
// recently-viewed list.
type ProfileHandler struct {
	lib      *library.Library
	profiles *profile.Store
}

// NewProfileHandler builds the handler over the given store handles.
func NewProfileHandler(lib *library.Library, profiles *profile.Store) *ProfileHandler {
	return &ProfileHandler{lib: lib, profiles: profiles}
}

// RecentlyViewed handles GET /recently-viewed.
func (h *ProfileHandler) RecentlyViewed(w http.ResponseWriter, r *http.Request) {
	recent := h.profiles.RecentlyViewed()
	if recent == nil {
		recent = []models.Book{}
	}
	respondJSON(w, http.StatusOK, recent)
}

// Favorites handles GET /users/{id}/favorites.
func (h *ProfileHandler) Favorites(w http.ResponseWriter, r *http.Request) {
	ids := h.profiles.Favorites(chi.URLParam(r, "id"))
	if ids == nil {
		ids = []int{}
	}
	respondJSON(w, http.StatusOK, ids)
}

// ToggleFavorite handles POST /users/{id}/favorites/{bookID}.
func (h *ProfileHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	bookID, err := strconv.Atoi(chi.URLParam(r, "bookID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid book id")
		return
	}
	if _, ok := h.lib.Catalog.Get(bookID); !ok {
		respondLibraryError(w, library.ErrBookNotFound)
		return
	}
	favorited := h.profiles.ToggleFavorite(chi.URLParam(r, "id"), bookID)
	respondJSON(w, http.StatusOK, map[string]bool{"favorited": favorited})
}

type recentlyPlayedBody struct {
	ItemID string `json:"item_id"`
}

// RecentlyPlayed handles GET /users/{id}/recently-played.
func (h *ProfileHandler) RecentlyPlayed(w http.ResponseWriter, r *http.Request) {
	items := h.profiles.RecentlyPlayed(chi.URLParam(r, "id"))
	if items == nil {
		items = []string{}
	}
	respondJSON(w, http.StatusOK, items)
}

// AddRecentlyPlayed handles POST /users/{id}/recently-played.
func (h *ProfileHandler) AddRecentlyPlayed(w http.ResponseWriter, r *http.Request) {
	var body recentlyPlayedBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ItemID == "" {
		respondError(w, http.StatusBadRequest, "item_id is required")
		return
	}
	h.profiles.AddRecentlyPlayed(chi.URLParam(r, "id"), body.ItemID)
	w.WriteHeader(http.StatusNoContent)
}
