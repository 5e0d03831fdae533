package handlers

import (
	"github.com/go-chi/chi/v5"

	"library-ledger/internal/library"
	"library-ledger/internal/profile"
)

// NewRouter wires every endpoint onto a chi router. cmd/server mounts its
// middleware stack around this; tests hit it directly.
func NewRouter(lib *library.Library, profiles *profile.Store) chi.Router {
	booksHandler := NewBooksHandler(lib, profiles)
	circulationHandler := NewCirculationHandler(lib)
	reportsHandler := NewReportsHandler(lib)
	profileHandler := NewProfileHandler(lib, profiles)

	r := chi.NewRouter()

	r.Route("/books", func(r chi.Router) {
		r.Get("/", booksHandler.ListBooks)
		r.Post("/", booksHandler.CreateBook)
		r.Get("/{id}", booksHandler.ShowBook)
		r.Put("/{id}", booksHandler.UpdateBook)
		r.Delete("/{id}", booksHandler.DeleteBook)
	})

	r.Route("/issues", func(r chi.Router) {
		r.Get("/", circulationHandler.ListIssues)
		r.Post("/", circulationHandler.CreateIssue)
		r.Post("/{id}/request-return", circulationHandler.RequestReturn)
		r.Post("/{id}/return", circulationHandler.ReturnBook)
	})

	r.Route("/return-requests", func(r chi.Router) {
		r.Get("/", circulationHandler.ListRequests)
		r.Delete("/{id}", circulationHandler.DismissRequest)
	})

	r.Get("/reports/summary", reportsHandler.Summary)

	r.Get("/recently-viewed", profileHandler.RecentlyViewed)
	r.Route("/users/{id}", func(r chi.Router) {
		r.Get("/favorites", profileHandler.Favorites)
		r.Post("/favorites/{bookID}", profileHandler.ToggleFavorite)
		r.Get("/recently-played", profileHandler.RecentlyPlayed)
		r.Post("/recently-played", profileHandler.AddRecentlyPlayed)
	})

	return r
}
