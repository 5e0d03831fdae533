package library_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"library-ledger/internal/library"
	"library-ledger/internal/models"
	"library-ledger/internal/storage"
)

// clock is a controllable time source so due dates and fines are exact.
type clock struct {
	t time.Time
}

func newClock() *clock {
	return &clock{t: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *clock) Now() time.Time {
	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestLibrary(t *testing.T, opts ...library.Option) *library.Library {
	t.Helper()
	return library.New(storage.NewMemory(), opts...)
}

func addBook(t *testing.T, lib *library.Library, title string, copies int) models.Book {
	t.Helper()
	b, err := lib.Catalog.AddBook(models.Book{
		Title:       title,
		Author:      "Test Author",
		Category:    "Fiction",
		TotalCopies: copies,
	})
	require.NoError(t, err)
	return b
}
