package library_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-ledger/internal/library"
	"library-ledger/internal/models"
)

func TestComputeEmptyCatalog(t *testing.T) {
	s := library.Compute(nil, nil, time.Now())

	assert.Zero(t, s.TotalBooks)
	assert.Zero(t, s.TotalCopies)
	assert.Zero(t, s.AvailableCopies)
	assert.Zero(t, s.IssuedCopies)
	assert.Zero(t, s.ActiveIssues)
	assert.Zero(t, s.OverdueBooks)
	assert.Zero(t, s.AvailablePercent, "no division by zero on an empty catalog")
	assert.Empty(t, s.Categories)
}

func TestStatisticsCounts(t *testing.T) {
	c := newClock()
	lib := newTestLibrary(t, library.WithClock(c.Now))

	fiction, err := lib.Catalog.AddBook(models.Book{Title: "F1", Author: "A", Category: "Fiction", TotalCopies: 3})
	require.NoError(t, err)
	_, err = lib.Catalog.AddBook(models.Book{Title: "F2", Author: "A", Category: "Fiction", TotalCopies: 2})
	require.NoError(t, err)
	science, err := lib.Catalog.AddBook(models.Book{Title: "S1", Author: "A", Category: "Science", TotalCopies: 1})
	require.NoError(t, err)

	_, err = lib.IssueBook(fiction.ID, "u1", 7)
	require.NoError(t, err)
	overdueRec, err := lib.IssueBook(science.ID, "u2", 7)
	require.NoError(t, err)

	c.Advance(8 * 24 * time.Hour)

	s := lib.Statistics()
	assert.Equal(t, 3, s.TotalBooks)
	assert.Equal(t, 6, s.TotalCopies)
	assert.Equal(t, 4, s.AvailableCopies)
	assert.Equal(t, 2, s.IssuedCopies)
	assert.Equal(t, 2, s.ActiveIssues)
	assert.Equal(t, 2, s.OverdueBooks)
	assert.Equal(t, 66, s.AvailablePercent)
	assert.Equal(t, []string{"Fiction", "Science"}, s.Categories)
	assert.Equal(t, map[string]int{"Fiction": 2, "Science": 1}, s.CategoryCount)

	// Returning the overdue record moves the counters.
	_, err = lib.RequestReturn(overdueRec.ID, "u2")
	require.NoError(t, err)
	_, err = lib.CompleteReturn(overdueRec.ID)
	require.NoError(t, err)

	s = lib.Statistics()
	assert.Equal(t, 1, s.ActiveIssues)
	assert.Equal(t, 1, s.OverdueBooks)
	assert.Equal(t, 5, s.AvailableCopies)
}
