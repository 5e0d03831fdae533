// Package profile tracks browsing-history record sets: a recently-viewed
// list shared by every viewer, plus favorites and recently-played lists
// scoped per user. The per-user sets are persisted under user-suffixed
// keys so two users never share a blob.
package profile

import (
	"log"
	"sync"

	"library-ledger/internal/models"
	"library-ledger/internal/storage"
)

const (
	maxRecentlyViewed = 5
	maxRecentlyPlayed = 10
)

// Store reads and writes the profile record sets through the persistence
// adapter. All lists load lazily and fall back to empty on absent or
// corrupt blobs.
type Store struct {
	mu      sync.Mutex
	adapter storage.Adapter
}

// New returns a store over the adapter.
func New(adapter storage.Adapter) *Store {
	return &Store{adapter: adapter}
}

// AddRecentlyViewed records that a book's details were viewed. Duplicates
// move to the front and the list is capped.
func (s *Store) AddRecentlyViewed(b models.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var recent []models.Book
	if !s.adapter.Load(storage.KeyRecentlyViewed, &recent) {
		recent = nil
	}

	filtered := make([]models.Book, 0, len(recent)+1)
	filtered = append(filtered, b)
	for _, r := range recent {
		if r.ID != b.ID {
			filtered = append(filtered, r)
		}
	}
	if len(filtered) > maxRecentlyViewed {
		filtered = filtered[:maxRecentlyViewed]
	}
	s.save(storage.KeyRecentlyViewed, filtered)
}

// RecentlyViewed returns the shared recently-viewed list, newest first.
func (s *Store) RecentlyViewed() []models.Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	var recent []models.Book
	if !s.adapter.Load(storage.KeyRecentlyViewed, &recent) {
		return nil
	}
	return recent
}

// ToggleFavorite flips a book in the user's favorites and reports the new
// state: true when the book is now a favorite.
func (s *Store) ToggleFavorite(userID string, bookID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := storage.UserKey(storage.KeyFavorites, userID)
	var ids []int
	if !s.adapter.Load(key, &ids) {
		ids = nil
	}

	kept := make([]int, 0, len(ids))
	removed := false
	for _, id := range ids {
		if id == bookID {
			removed = true
			continue
		}
		kept = append(kept, id)
	}
	if !removed {
		kept = append(kept, bookID)
	}
	s.save(key, kept)
	return !removed
}

// Favorites returns the user's favorite book ids.
func (s *Store) Favorites(userID string) []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ids []int
	if !s.adapter.Load(storage.UserKey(storage.KeyFavorites, userID), &ids) {
		return nil
	}
	return ids
}

// AddRecentlyPlayed records an item in the user's recently-played list,
// newest first, deduplicated and capped.
func (s *Store) AddRecentlyPlayed(userID, itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := storage.UserKey(storage.KeyRecentlyPlayed, userID)
	var items []string
	if !s.adapter.Load(key, &items) {
		items = nil
	}

	filtered := make([]string, 0, len(items)+1)
	filtered = append(filtered, itemID)
	for _, it := range items {
		if it != itemID {
			filtered = append(filtered, it)
		}
	}
	if len(filtered) > maxRecentlyPlayed {
		filtered = filtered[:maxRecentlyPlayed]
	}
	s.save(key, filtered)
}

// RecentlyPlayed returns the user's recently-played list, newest first.
func (s *Store) RecentlyPlayed(userID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []string
	if !s.adapter.Load(storage.UserKey(storage.KeyRecentlyPlayed, userID), &items) {
		return nil
	}
	return items
}

func (s *Store) save(key string, v any) {
	if err := s.adapter.Save(key, v); err != nil {
		log.Printf("profile: failed to persist %q: %v", key, err)
	}
}
