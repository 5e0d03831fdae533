package library_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-ledger/internal/library"
	"library-ledger/internal/models"
)

func TestIssueDecrementsAvailability(t *testing.T) {
	c := newClock()
	lib := newTestLibrary(t, library.WithClock(c.Now))
	b := addBook(t, lib, "Issued", 3)

	rec, err := lib.IssueBook(b.ID, "u1", 7)
	require.NoError(t, err)

	assert.Equal(t, b.ID, rec.BookID)
	assert.Equal(t, "u1", rec.UserID)
	assert.Equal(t, models.IssueStatusIssued, rec.Status)
	assert.Equal(t, c.Now(), rec.IssueDate)
	assert.Equal(t, c.Now().AddDate(0, 0, 7), rec.DueDate)
	assert.Nil(t, rec.ReturnDate)

	got, _ := lib.Catalog.Get(b.ID)
	assert.Equal(t, 2, got.AvailableCopies)
}

func TestIssueFailsWithoutCopies(t *testing.T) {
	lib := newTestLibrary(t)
	b := addBook(t, lib, "Scarce", 1)

	_, err := lib.IssueBook(b.ID, "u1", 7)
	require.NoError(t, err)

	_, err = lib.IssueBook(b.ID, "u2", 7)
	assert.ErrorIs(t, err, library.ErrNoCopies)

	// State is unchanged by the failed issue.
	got, _ := lib.Catalog.Get(b.ID)
	assert.Equal(t, 0, got.AvailableCopies)
	assert.Len(t, lib.Ledger.Records(), 1)
}

func TestIssueFailsForMissingBook(t *testing.T) {
	lib := newTestLibrary(t)
	_, err := lib.IssueBook(404, "u1", 7)
	assert.ErrorIs(t, err, library.ErrBookNotFound)
}

func TestIssueLoanPeriods(t *testing.T) {
	c := newClock()
	lib := newTestLibrary(t, library.WithClock(c.Now))
	b := addBook(t, lib, "Periods", 5)

	t.Run("extended period", func(t *testing.T) {
		rec, err := lib.IssueBook(b.ID, "u1", 14)
		require.NoError(t, err)
		assert.Equal(t, c.Now().AddDate(0, 0, 14), rec.DueDate)
	})

	t.Run("zero defaults to a week", func(t *testing.T) {
		rec, err := lib.IssueBook(b.ID, "u1", 0)
		require.NoError(t, err)
		assert.Equal(t, c.Now().AddDate(0, 0, 7), rec.DueDate)
	})

	t.Run("anything else is rejected", func(t *testing.T) {
		_, err := lib.IssueBook(b.ID, "u1", 5)
		assert.ErrorIs(t, err, library.ErrInvalidLoanDays)
	})
}

func TestIssueReturnRoundTrip(t *testing.T) {
	c := newClock()
	lib := newTestLibrary(t, library.WithClock(c.Now))
	b := addBook(t, lib, "Round Trip", 3)

	rec, err := lib.IssueBook(b.ID, "u1", 7)
	require.NoError(t, err)

	_, err = lib.RequestReturn(rec.ID, "u1")
	require.NoError(t, err)

	res, err := lib.CompleteReturn(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Fine)
	assert.False(t, res.Overdue)

	got, _ := lib.Catalog.Get(b.ID)
	assert.Equal(t, 3, got.AvailableCopies, "availability is restored to its pre-issue value")

	returned, _ := lib.Ledger.Get(rec.ID)
	assert.Equal(t, models.IssueStatusReturned, returned.Status)
	require.NotNil(t, returned.ReturnDate)
	assert.Equal(t, c.Now(), *returned.ReturnDate)
}

func TestReturnFines(t *testing.T) {
	cases := []struct {
		name string
		late time.Duration
		fine int
	}{
		{"exactly on due date", 0, 0},
		{"one day late", 24 * time.Hour, 10},
		{"a second past due counts as a day", time.Second, 10},
		{"ten days late", 10 * 24 * time.Hour, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newClock()
			lib := newTestLibrary(t, library.WithClock(c.Now))
			b := addBook(t, lib, "Fined", 1)

			rec, err := lib.IssueBook(b.ID, "u1", 7)
			require.NoError(t, err)

			c.Advance(7*24*time.Hour + tc.late)

			_, err = lib.RequestReturn(rec.ID, "u1")
			require.NoError(t, err)
			res, err := lib.CompleteReturn(rec.ID)
			require.NoError(t, err)

			assert.Equal(t, tc.fine, res.Fine)
			assert.Equal(t, tc.fine > 0, res.Overdue)

			returned, _ := lib.Ledger.Get(rec.ID)
			assert.Equal(t, tc.fine, returned.Fine)
		})
	}
}

func TestDuplicateReturnRequest(t *testing.T) {
	lib := newTestLibrary(t)
	b := addBook(t, lib, "Requested", 1)

	rec, err := lib.IssueBook(b.ID, "u1", 7)
	require.NoError(t, err)

	_, err = lib.RequestReturn(rec.ID, "u1")
	require.NoError(t, err)

	_, err = lib.RequestReturn(rec.ID, "u1")
	assert.ErrorIs(t, err, library.ErrDuplicateRequest)
	assert.Len(t, lib.Ledger.Requests(), 1, "only one pending request exists")
}

func TestReturnPrimitiveIgnoresRequests(t *testing.T) {
	// Return is the low-level primitive: it completes without a pending
	// request and leaves any requests alone. The request gate lives in
	// CompleteReturn only.
	lib := newTestLibrary(t)
	b := addBook(t, lib, "Primitive", 1)

	rec, err := lib.IssueBook(b.ID, "u1", 7)
	require.NoError(t, err)

	res := lib.Ledger.Return(rec.ID)
	require.NotNil(t, res)
	assert.Equal(t, 0, res.Fine)

	got, _ := lib.Catalog.Get(b.ID)
	assert.Equal(t, 1, got.AvailableCopies)
}

func TestReturnFailsForAbsentOrReturned(t *testing.T) {
	lib := newTestLibrary(t)
	b := addBook(t, lib, "Once", 1)

	assert.Nil(t, lib.Ledger.Return("no-such-issue"))

	rec, err := lib.IssueBook(b.ID, "u1", 7)
	require.NoError(t, err)
	require.NotNil(t, lib.Ledger.Return(rec.ID))

	// A second return must fail and must not over-increment availability.
	assert.Nil(t, lib.Ledger.Return(rec.ID))
	got, _ := lib.Catalog.Get(b.ID)
	assert.Equal(t, 1, got.AvailableCopies)
}

func TestAvailabilityInvariantUnderSequences(t *testing.T) {
	lib := newTestLibrary(t)
	b := addBook(t, lib, "Invariant", 2)

	check := func() {
		got, _ := lib.Catalog.Get(b.ID)
		assert.GreaterOrEqual(t, got.AvailableCopies, 0)
		assert.LessOrEqual(t, got.AvailableCopies, got.TotalCopies)
	}

	var ids []string
	for i := 0; i < 4; i++ {
		rec, err := lib.IssueBook(b.ID, "u1", 7)
		if err == nil {
			ids = append(ids, rec.ID)
		}
		check()
	}
	require.Len(t, ids, 2, "only as many issues as copies")

	for _, id := range ids {
		require.NotNil(t, lib.Ledger.Return(id))
		check()
	}
}

func TestLedgerQueries(t *testing.T) {
	c := newClock()
	lib := newTestLibrary(t, library.WithClock(c.Now))
	b := addBook(t, lib, "Queried", 3)

	first, err := lib.IssueBook(b.ID, "u1", 7)
	require.NoError(t, err)
	second, err := lib.IssueBook(b.ID, "u2", 14)
	require.NoError(t, err)

	require.NotNil(t, lib.Ledger.Return(first.ID))

	assert.Len(t, lib.Ledger.Records(), 2)
	assert.Len(t, lib.Ledger.ActiveRecords(), 1)
	assert.Empty(t, lib.Ledger.RecordsForUser("u1"), "returned records are not active")
	assert.Len(t, lib.Ledger.RecordsForUser("u2"), 1)
	assert.True(t, lib.Ledger.HasActiveIssue(b.ID))

	assert.Empty(t, lib.Ledger.OverdueRecords())
	c.Advance(15 * 24 * time.Hour)
	overdue := lib.Ledger.OverdueRecords()
	require.Len(t, overdue, 1)
	assert.Equal(t, second.ID, overdue[0].ID)
}
