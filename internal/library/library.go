// Package library implements the inventory and circulation ledger: a
// catalog of books with availability counters, issuance and return-request
// records, derived statistics, and synchronization between viewers sharing
// one persistence adapter.
//
// The package is split into two layers on purpose. Catalog and Ledger are
// the low-level primitives; they signal expected business-rule failures
// (absent book, no copies, duplicate request) with ok-booleans and nil
// results and never panic or throw. Library is the policy layer composed
// on top; it enforces the rules the primitives deliberately leave out,
// such as "no return without a pending return request", and translates
// failures into sentinel errors callers can branch on.
package library

import (
	"errors"
	"sync"
	"time"

	"library-ledger/internal/models"
	"library-ledger/internal/storage"
)

const (
	// DefaultLoanDays and ExtendedLoanDays are the two loan periods a
	// borrower can choose.
	DefaultLoanDays  = 7
	ExtendedLoanDays = 14

	// DefaultFineRate is the fine accrued per started overdue day, in
	// currency units.
	DefaultFineRate = 10
)

// Sentinel errors returned by the policy layer.
var (
	ErrInvalidBook      = errors.New("library: title and author are required")
	ErrBookNotFound     = errors.New("library: book not found")
	ErrNoCopies         = errors.New("library: no copies available")
	ErrBookInUse        = errors.New("library: book has active issuances")
	ErrIssueNotFound    = errors.New("library: issue record not found")
	ErrNotIssued        = errors.New("library: issue record is not active")
	ErrNotOwner         = errors.New("library: issue record belongs to another user")
	ErrDuplicateRequest = errors.New("library: a pending return request already exists")
	ErrNoPendingRequest = errors.New("library: no pending return request for this issue")
	ErrRequestNotFound  = errors.New("library: return request not found")
	ErrRequestActive    = errors.New("library: request still references an active issue")
	ErrInvalidLoanDays  = errors.New("library: loan period must be 7 or 14 days")
)

// Library is the explicit store handle passed into handlers. It owns the
// single mutex both sub-stores share, so the dual mutation inside
// issue/return (ledger record plus availability counter) happens in one
// lock scope and can never be interleaved by a concurrent writer.
type Library struct {
	mu       sync.RWMutex
	adapter  storage.Adapter
	viewer   *storage.Viewer
	now      func() time.Time
	fineRate int

	Catalog *Catalog
	Ledger  *Ledger
}

// Option configures a Library.
type Option func(*Library)

// WithClock replaces the time source. Tests use it to pin due dates and
// fines.
func WithClock(now func() time.Time) Option {
	return func(l *Library) { l.now = now }
}

// WithFineRate overrides the per-day fine rate.
func WithFineRate(rate int) Option {
	return func(l *Library) { l.fineRate = rate }
}

// WithViewer binds the library to a change bus viewer. Saves are published
// to the other viewers and external changes are folded back in.
func WithViewer(v *storage.Viewer) Option {
	return func(l *Library) { l.viewer = v }
}

// New builds a Library over the adapter, loading whatever state the
// adapter already holds.
func New(adapter storage.Adapter, opts ...Option) *Library {
	l := &Library{
		adapter:  adapter,
		now:      time.Now,
		fineRate: DefaultFineRate,
	}
	for _, opt := range opts {
		opt(l)
	}

	notify := func(key string) {
		if l.viewer != nil {
			l.viewer.Publish(key)
		}
	}
	clock := func() time.Time { return l.now() }

	l.Catalog = newCatalog(&l.mu, adapter, notify, clock)
	l.Ledger = newLedger(&l.mu, adapter, notify, l.Catalog, clock, l.fineRate)

	if l.viewer != nil {
		l.bindViewer(l.viewer)
	}
	return l
}

// IssueBook validates the loan period and issues a copy of the book to the
// user. A zero day count means the default period.
func (l *Library) IssueBook(bookID int, userID string, days int) (models.IssueRecord, error) {
	if days == 0 {
		days = DefaultLoanDays
	}
	if days != DefaultLoanDays && days != ExtendedLoanDays {
		return models.IssueRecord{}, ErrInvalidLoanDays
	}
	if _, ok := l.Catalog.Get(bookID); !ok {
		return models.IssueRecord{}, ErrBookNotFound
	}
	rec, ok := l.Ledger.Issue(bookID, userID, days)
	if !ok {
		return models.IssueRecord{}, ErrNoCopies
	}
	return rec, nil
}

// RequestReturn files a return request on behalf of the borrower. The
// primitive only rejects duplicates; existence, ownership and status
// checks live here.
func (l *Library) RequestReturn(issueID, userID string) (models.ReturnRequest, error) {
	rec, ok := l.Ledger.Get(issueID)
	if !ok {
		return models.ReturnRequest{}, ErrIssueNotFound
	}
	if rec.Status != models.IssueStatusIssued {
		return models.ReturnRequest{}, ErrNotIssued
	}
	if rec.UserID != userID {
		return models.ReturnRequest{}, ErrNotOwner
	}
	req, ok := l.Ledger.RequestReturn(issueID, userID)
	if !ok {
		return models.ReturnRequest{}, ErrDuplicateRequest
	}
	return req, nil
}

// CompleteReturn is the librarian action: it refuses to return an issue
// without a pending return request, completes the return through the
// ledger primitive, then clears the request. The two steps are deliberate;
// Return itself knows nothing about requests.
func (l *Library) CompleteReturn(issueID string) (*ReturnResult, error) {
	if !l.Ledger.HasPendingRequest(issueID) {
		return nil, ErrNoPendingRequest
	}
	res := l.Ledger.Return(issueID)
	if res == nil {
		if _, ok := l.Ledger.Get(issueID); !ok {
			return nil, ErrIssueNotFound
		}
		return nil, ErrNotIssued
	}
	l.Ledger.ClearReturnRequest(issueID)
	return res, nil
}

// DeleteBook removes a book from the catalog unless an active issuance
// still references it. Returned records do not block deletion.
func (l *Library) DeleteBook(bookID int) error {
	if _, ok := l.Catalog.Get(bookID); !ok {
		return ErrBookNotFound
	}
	if l.Ledger.HasActiveIssue(bookID) {
		return ErrBookInUse
	}
	l.Catalog.remove(bookID)
	return nil
}

// DismissRequest drops a return request directly. Allowed only when the
// referenced issue record no longer exists or was already returned; a
// request backing an active issue must be resolved through CompleteReturn.
func (l *Library) DismissRequest(requestID string) error {
	req, ok := l.Ledger.Request(requestID)
	if !ok {
		return ErrRequestNotFound
	}
	if rec, ok := l.Ledger.Get(req.IssueID); ok && rec.Status == models.IssueStatusIssued {
		return ErrRequestActive
	}
	l.Ledger.DismissRequest(requestID)
	return nil
}

// Statistics derives the current summary from catalog and ledger
// snapshots. Nothing is cached.
func (l *Library) Statistics() Statistics {
	return Compute(l.Catalog.List(), l.Ledger.Records(), l.now())
}

// SeedIfEmpty populates an empty catalog with the given books and reports
// whether seeding happened. A non-empty catalog is left alone.
func (l *Library) SeedIfEmpty(books []models.Book) bool {
	if len(l.Catalog.List()) > 0 {
		return false
	}
	for _, b := range books {
		if _, err := l.Catalog.AddBook(b); err != nil {
			continue
		}
	}
	return true
}
