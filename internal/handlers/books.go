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

// BooksHandler serves the catalog endpoints.
type BooksHandler struct {
	lib      *library.Library
	profiles *profile.Store
}

// NewBooksHandler builds the handler over the given store handles.
func NewBooksHandler(lib *library.Library, profiles *profile.Store) *BooksHandler {
	return &BooksHandler{lib: lib, profiles: profiles}
}

// ListBooks handles GET /books with optional search, category and
// available filters.
func (h *BooksHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	category := r.URL.Query().Get("category")
	availableOnly := r.URL.Query().Get("available") == "true"

	var books []models.Book
	switch {
	case search != "":
		books = h.lib.Catalog.Search(search)
	case category != "":
		books = h.lib.Catalog.ByCategory(category)
	case availableOnly:
		books = h.lib.Catalog.Available()
	default:
		books = h.lib.Catalog.List()
	}

	// Empty slice rather than nil so the encoder emits [] instead of null.
	if books == nil {
		books = []models.Book{}
	}
	respondJSON(w, http.StatusOK, books)
}

// ShowBook handles GET /books/{id}. Viewing a book records it in the
// recently-viewed list.
func (h *BooksHandler) ShowBook(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid book id")
		return
	}
	book, ok := h.lib.Catalog.Get(id)
	if !ok {
		respondError(w, http.StatusNotFound, "book not found")
		return
	}
	h.profiles.AddRecentlyViewed(book)
	respondJSON(w, http.StatusOK, book)
}

// CreateBook handles POST /books.
func (h *BooksHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	var book models.Book
	if err := json.NewDecoder(r.Body).Decode(&book); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	created, err := h.lib.Catalog.AddBook(book)
	if err != nil {
		respondLibraryError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdateBook handles PUT /books/{id} with a partial body.
func (h *BooksHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid book id")
		return
	}
	var update library.BookUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if !h.lib.Catalog.UpdateBook(id, update) {
		respondError(w, http.StatusNotFound, "book not found")
		return
	}
	book, _ := h.lib.Catalog.Get(id)
	respondJSON(w, http.StatusOK, book)
}

// DeleteBook handles DELETE /books/{id}. Deletion is refused while an
// active issuance references the book.
func (h *BooksHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid book id")
		return
	}
	if err := h.lib.DeleteBook(id); err != nil {
		respondLibraryError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
