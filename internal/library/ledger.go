package library

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"library-ledger/internal/models"
	"library-ledger/internal/storage"
)

// Ledger owns the issuance and return-request records. It reads catalog
// state to validate availability and is the only mutator of availability
// counters during circulation. It shares the catalog's mutex, so the dual
// mutation inside Issue and Return is a single atomic unit.
type Ledger struct {
	mu       *sync.RWMutex
	adapter  storage.Adapter
	notify   func(key string)
	catalog  *Catalog
	now      func() time.Time
	fineRate int

	issues   []models.IssueRecord
	requests []models.ReturnRequest
}

func newLedger(mu *sync.RWMutex, adapter storage.Adapter, notify func(string), catalog *Catalog, now func() time.Time, fineRate int) *Ledger {
	led := &Ledger{
		mu:       mu,
		adapter:  adapter,
		notify:   notify,
		catalog:  catalog,
		now:      now,
		fineRate: fineRate,
	}
	led.reload(storage.KeyIssuedBooks)
	led.reload(storage.KeyReturnRequests)
	return led
}

// reload replaces the record set stored under key with whatever the
// adapter holds. Absent or undecodable blobs yield an empty set.
func (led *Ledger) reload(key string) {
	switch key {
	case storage.KeyIssuedBooks:
		var issues []models.IssueRecord
		if !led.adapter.Load(key, &issues) {
			issues = nil
		}
		led.mu.Lock()
		led.issues = issues
		led.mu.Unlock()
	case storage.KeyReturnRequests:
		var requests []models.ReturnRequest
		if !led.adapter.Load(key, &requests) {
			requests = nil
		}
		led.mu.Lock()
		led.requests = requests
		led.mu.Unlock()
	}
}

// ReturnResult reports the outcome of a completed return.
type ReturnResult struct {
	Fine    int  `json:"fine"`
	Overdue bool `json:"overdue"`
}

// Issue lends one copy of the book to the user for the given number of
// days. It fails, leaving all state unchanged, when the book is absent or
// has no available copies. The record append and the availability
// decrement happen under one lock scope.
func (led *Ledger) Issue(bookID int, userID string, days int) (models.IssueRecord, bool) {
	if days <= 0 {
		days = DefaultLoanDays
	}

	led.mu.Lock()
	book := led.catalog.findLocked(bookID)
	if book == nil || !book.IsAvailable() {
		led.mu.Unlock()
		return models.IssueRecord{}, false
	}
	now := led.now()
	rec := models.IssueRecord{
		ID:        uuid.NewString(),
		BookID:    bookID,
		UserID:    userID,
		IssueDate: now,
		DueDate:   models.DueDateFor(now, days),
		Status:    models.IssueStatusIssued,
	}
	led.issues = append(led.issues, rec)
	led.catalog.decrementLocked(bookID, now)
	led.catalog.flushLocked()
	led.flushIssuesLocked()
	led.mu.Unlock()

	led.notify(storage.KeyBooks)
	led.notify(storage.KeyIssuedBooks)
	return rec, true
}

// RequestReturn files a pending return request for the issue. It fails
// when a pending request for the same issue already exists. Newest
// requests sort first.
func (led *Ledger) RequestReturn(issueID, userID string) (models.ReturnRequest, bool) {
	led.mu.Lock()
	if led.pendingForLocked(issueID) != nil {
		led.mu.Unlock()
		return models.ReturnRequest{}, false
	}
	req := models.ReturnRequest{
		ID:          uuid.NewString(),
		IssueID:     issueID,
		UserID:      userID,
		Status:      models.RequestStatusPending,
		RequestedAt: led.now(),
	}
	led.requests = append([]models.ReturnRequest{req}, led.requests...)
	led.flushRequestsLocked()
	led.mu.Unlock()

	led.notify(storage.KeyReturnRequests)
	return req, true
}

// Return completes an issuance: it computes the fine, stamps the return
// date, flips the status and gives the copy back to the catalog. It
// returns nil when the record is absent or not in issued status. Clearing
// the associated return request is the caller's responsibility; this is
// the low-level primitive of a two-step protocol.
func (led *Ledger) Return(issueID string) *ReturnResult {
	led.mu.Lock()
	rec := led.findLocked(issueID)
	if rec == nil || rec.Status != models.IssueStatusIssued {
		led.mu.Unlock()
		return nil
	}
	now := led.now()
	fine := rec.FineAt(now, led.fineRate)
	rec.ReturnDate = &now
	rec.Fine = fine
	rec.Status = models.IssueStatusReturned
	led.catalog.incrementLocked(rec.BookID, now)
	led.catalog.flushLocked()
	led.flushIssuesLocked()
	led.mu.Unlock()

	led.notify(storage.KeyBooks)
	led.notify(storage.KeyIssuedBooks)
	return &ReturnResult{Fine: fine, Overdue: fine > 0}
}

// ClearReturnRequest removes every request referencing the issue,
// regardless of status.
func (led *Ledger) ClearReturnRequest(issueID string) {
	led.mu.Lock()
	kept := led.requests[:0]
	for _, r := range led.requests {
		if r.IssueID != issueID {
			kept = append(kept, r)
		}
	}
	led.requests = kept
	led.flushRequestsLocked()
	led.mu.Unlock()

	led.notify(storage.KeyReturnRequests)
}

// DismissRequest removes a single request by its own id.
func (led *Ledger) DismissRequest(requestID string) bool {
	led.mu.Lock()
	idx := -1
	for i := range led.requests {
		if led.requests[i].ID == requestID {
			idx = i
			break
		}
	}
	if idx < 0 {
		led.mu.Unlock()
		return false
	}
	led.requests = append(led.requests[:idx], led.requests[idx+1:]...)
	led.flushRequestsLocked()
	led.mu.Unlock()

	led.notify(storage.KeyReturnRequests)
	return true
}

// Records returns a copy of every issue record.
func (led *Ledger) Records() []models.IssueRecord {
	led.mu.RLock()
	defer led.mu.RUnlock()
	out := make([]models.IssueRecord, len(led.issues))
	copy(out, led.issues)
	return out
}

// Get returns the issue record with the given id.
func (led *Ledger) Get(issueID string) (models.IssueRecord, bool) {
	led.mu.RLock()
	defer led.mu.RUnlock()
	if rec := led.findLocked(issueID); rec != nil {
		return *rec, true
	}
	return models.IssueRecord{}, false
}

// ActiveRecords returns the records still in issued status.
func (led *Ledger) ActiveRecords() []models.IssueRecord {
	led.mu.RLock()
	defer led.mu.RUnlock()
	var out []models.IssueRecord
	for _, r := range led.issues {
		if r.Status == models.IssueStatusIssued {
			out = append(out, r)
		}
	}
	return out
}

// RecordsForUser returns the user's records still in issued status.
func (led *Ledger) RecordsForUser(userID string) []models.IssueRecord {
	led.mu.RLock()
	defer led.mu.RUnlock()
	var out []models.IssueRecord
	for _, r := range led.issues {
		if r.UserID == userID && r.Status == models.IssueStatusIssued {
			out = append(out, r)
		}
	}
	return out
}

// OverdueRecords returns the active records past their due date.
func (led *Ledger) OverdueRecords() []models.IssueRecord {
	now := led.now()
	led.mu.RLock()
	defer led.mu.RUnlock()
	var out []models.IssueRecord
	for _, r := range led.issues {
		if r.IsOverdue(now) {
			out = append(out, r)
		}
	}
	return out
}

// HasActiveIssue reports whether any issued record references the book.
func (led *Ledger) HasActiveIssue(bookID int) bool {
	led.mu.RLock()
	defer led.mu.RUnlock()
	for _, r := range led.issues {
		if r.BookID == bookID && r.Status == models.IssueStatusIssued {
			return true
		}
	}
	return false
}

// Requests returns a copy of every return request.
func (led *Ledger) Requests() []models.ReturnRequest {
	led.mu.RLock()
	defer led.mu.RUnlock()
	out := make([]models.ReturnRequest, len(led.requests))
	copy(out, led.requests)
	return out
}

// Request returns the return request with the given id.
func (led *Ledger) Request(requestID string) (models.ReturnRequest, bool) {
	led.mu.RLock()
	defer led.mu.RUnlock()
	for _, r := range led.requests {
		if r.ID == requestID {
			return r, true
		}
	}
	return models.ReturnRequest{}, false
}

// HasPendingRequest reports whether a pending request references the issue.
func (led *Ledger) HasPendingRequest(issueID string) bool {
	led.mu.RLock()
	defer led.mu.RUnlock()
	return led.pendingForLocked(issueID) != nil
}

func (led *Ledger) pendingForLocked(issueID string) *models.ReturnRequest {
	for i := range led.requests {
		if led.requests[i].IssueID == issueID && led.requests[i].IsPending() {
			return &led.requests[i]
		}
	}
	return nil
}

func (led *Ledger) findLocked(issueID string) *models.IssueRecord {
	for i := range led.issues {
		if led.issues[i].ID == issueID {
			return &led.issues[i]
		}
	}
	return nil
}

func (led *Ledger) flushIssuesLocked() {
	if err := led.adapter.Save(storage.KeyIssuedBooks, led.issues); err != nil {
		log.Printf("library: failed to persist issue records: %v", err)
	}
}

func (led *Ledger) flushRequestsLocked() {
	if err := led.adapter.Save(storage.KeyReturnRequests, led.requests); err != nil {
		log.Printf("library: failed to persist return requests: %v", err)
	}
}
