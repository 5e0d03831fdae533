package library

import (
	"log"
	"strings"
	"sync"
	"time"

	"library-ledger/internal/models"
	"library-ledger/internal/storage"
)

// Catalog owns the book records and their availability counters. Counters
// never leave [0, TotalCopies]; during circulation they are mutated only
// through the unexported helpers the Ledger calls under the shared lock.
type Catalog struct {
	mu      *sync.RWMutex
	adapter storage.Adapter
	notify  func(key string)
	now     func() time.Time
	books   []models.Book
}

func newCatalog(mu *sync.RWMutex, adapter storage.Adapter, notify func(string), now func() time.Time) *Catalog {
	c := &Catalog{mu: mu, adapter: adapter, notify: notify, now: now}
	c.reload()
	return c
}

// reload replaces the in-memory book list with whatever the adapter holds.
// An absent or undecodable blob yields an empty catalog.
func (c *Catalog) reload() {
	var books []models.Book
	if !c.adapter.Load(storage.KeyBooks, &books) {
		books = nil
	}
	c.mu.Lock()
	c.books = books
	c.mu.Unlock()
}

// List returns a copy of all books.
func (c *Catalog) List() []models.Book {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Book, len(c.books))
	copy(out, c.books)
	return out
}

// Get returns the book with the given id.
func (c *Catalog) Get(id int) (models.Book, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if b := c.findLocked(id); b != nil {
		return *b, true
	}
	return models.Book{}, false
}

// Search returns the books whose title or author contains the query. An
// empty query returns everything.
func (c *Catalog) Search(query string) []models.Book {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []models.Book
	for _, b := range c.books {
		if b.MatchesQuery(query) {
			out = append(out, b)
		}
	}
	return out
}

// ByCategory returns the books in the given category. "All" or an empty
// string returns everything.
func (c *Catalog) ByCategory(category string) []models.Book {
	if category == "" || category == "All" {
		return c.List()
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []models.Book
	for _, b := range c.books {
		if b.Category == category {
			out = append(out, b)
		}
	}
	return out
}

// Available returns the books with at least one available copy.
func (c *Catalog) Available() []models.Book {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []models.Book
	for _, b := range c.books {
		if b.IsAvailable() {
			out = append(out, b)
		}
	}
	return out
}

// AddBook validates and stores a new book. The id is assigned here and
// every copy starts available. A missing copy count defaults to one.
func (c *Catalog) AddBook(b models.Book) (models.Book, error) {
	b.Title = strings.TrimSpace(b.Title)
	b.Author = strings.TrimSpace(b.Author)
	if b.Title == "" || b.Author == "" {
		return models.Book{}, ErrInvalidBook
	}
	if b.TotalCopies < 0 {
		return models.Book{}, ErrInvalidBook
	}
	if b.TotalCopies == 0 {
		b.TotalCopies = 1
	}
	if b.Image == "" {
		b.Image = "📖"
	}

	c.mu.Lock()
	maxID := 0
	for _, existing := range c.books {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	b.ID = maxID + 1
	b.AvailableCopies = b.TotalCopies
	now := c.now()
	b.CreatedAt = now
	b.UpdatedAt = now
	c.books = append(c.books, b)
	c.flushLocked()
	c.mu.Unlock()

	c.notify(storage.KeyBooks)
	return b, nil
}

// BookUpdate carries the fields an admin edit may change. Nil fields are
// left untouched.
type BookUpdate struct {
	Title           *string `json:"title,omitempty"`
	Author          *string `json:"author,omitempty"`
	Category        *string `json:"category,omitempty"`
	ISBN            *string `json:"isbn,omitempty"`
	Description     *string `json:"description,omitempty"`
	PublishedYear   *int    `json:"published_year,omitempty"`
	Image           *string `json:"image,omitempty"`
	TotalCopies     *int    `json:"total_copies,omitempty"`
	AvailableCopies *int    `json:"available_copies,omitempty"`
}

// UpdateBook applies a partial edit. Out-of-range availability is clamped
// into [0, TotalCopies] rather than rejected; admin-entered data is not
// adversarial and the counter is a display figure. Returns false when the
// book is absent, and callers must check.
func (c *Catalog) UpdateBook(id int, u BookUpdate) bool {
	c.mu.Lock()
	b := c.findLocked(id)
	if b == nil {
		c.mu.Unlock()
		return false
	}

	if u.Title != nil {
		b.Title = *u.Title
	}
	if u.Author != nil {
		b.Author = *u.Author
	}
	if u.Category != nil {
		b.Category = *u.Category
	}
	if u.ISBN != nil {
		b.ISBN = *u.ISBN
	}
	if u.Description != nil {
		b.Description = *u.Description
	}
	if u.PublishedYear != nil {
		b.PublishedYear = *u.PublishedYear
	}
	if u.Image != nil {
		b.Image = *u.Image
	}
	if u.TotalCopies != nil {
		b.TotalCopies = *u.TotalCopies
	}
	if u.AvailableCopies != nil {
		b.AvailableCopies = *u.AvailableCopies
	}
	b.ClampAvailable()
	b.UpdatedAt = c.now()
	c.flushLocked()
	c.mu.Unlock()

	c.notify(storage.KeyBooks)
	return true
}

// remove deletes a book without any guard. The policy layer checks for
// active issuances before calling it.
func (c *Catalog) remove(id int) bool {
	c.mu.Lock()
	idx := -1
	for i := range c.books {
		if c.books[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.mu.Unlock()
		return false
	}
	c.books = append(c.books[:idx], c.books[idx+1:]...)
	c.flushLocked()
	c.mu.Unlock()

	c.notify(storage.KeyBooks)
	return true
}

// findLocked returns a pointer into the book slice. The caller must hold
// the lock.
func (c *Catalog) findLocked(id int) *models.Book {
	for i := range c.books {
		if c.books[i].ID == id {
			return &c.books[i]
		}
	}
	return nil
}

// decrementLocked and incrementLocked adjust availability during
// circulation. They clamp silently instead of failing; the counter is a
// display figure and the Ledger has already validated the operation.
func (c *Catalog) decrementLocked(bookID int, now time.Time) {
	if b := c.findLocked(bookID); b != nil {
		b.DecrementAvailableCopies()
		b.UpdatedAt = now
	}
}

func (c *Catalog) incrementLocked(bookID int, now time.Time) {
	if b := c.findLocked(bookID); b != nil {
		b.IncrementAvailableCopies()
		b.UpdatedAt = now
	}
}

func (c *Catalog) flushLocked() {
	if err := c.adapter.Save(storage.KeyBooks, c.books); err != nil {
		log.Printf("library: failed to persist catalog: %v", err)
	}
}
