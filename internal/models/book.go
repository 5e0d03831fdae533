package models

import (
	"strings"
	"time"
)

// Book represents a single title in the catalog. Physical copies are not
// tracked individually, only as counters on the title.
type Book struct {
	ID              int       `json:"id"`
	ISBN            string    `json:"isbn,omitempty"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	Category        string    `json:"category"`
	Description     string    `json:"description,omitempty"`
	PublishedYear   int       `json:"published_year,omitempty"`
	Image           string    `json:"image,omitempty"`
	TotalCopies     int       `json:"total_copies"`
	AvailableCopies int       `json:"available_copies"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// IsAvailable reports whether at least one copy can be issued. Availability
// is always derived from the counter and never stored separately.
func (b *Book) IsAvailable() bool {
	return b.AvailableCopies > 0
}

// DecrementAvailableCopies reduces the available counter by one, clamping
// at zero.
func (b *Book) DecrementAvailableCopies() {
	if b.AvailableCopies > 0 {
		b.AvailableCopies--
	}
}

// IncrementAvailableCopies raises the available counter by one, clamping
// at TotalCopies.
func (b *Book) IncrementAvailableCopies() {
	if b.AvailableCopies < b.TotalCopies {
		b.AvailableCopies++
	}
}

// ClampAvailable forces AvailableCopies into [0, TotalCopies]. Admin edits
// are accepted and corrected rather than rejected.
func (b *Book) ClampAvailable() {
	if b.TotalCopies < 0 {
		b.TotalCopies = 0
	}
	if b.AvailableCopies > b.TotalCopies {
		b.AvailableCopies = b.TotalCopies
	}
	if b.AvailableCopies < 0 {
		b.AvailableCopies = 0
	}
}

// MatchesQuery reports whether the title or author contains the query,
// case-insensitively. An empty query matches every book.
func (b *Book) MatchesQuery(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(b.Title), q) ||
		strings.Contains(strings.ToLower(b.Author), q)
}
