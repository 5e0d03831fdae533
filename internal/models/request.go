package models

import "time"

// RequestStatus describes the state of a return request. Requests only
// ever hold the pending status; resolution is modeled by deleting the
// request, so no resolved constant exists.
type RequestStatus string

const (
	RequestStatusPending RequestStatus = "pending"
)

// ReturnRequest is a borrower-initiated flag asking a librarian to process
// the return of an issued book. At most one pending request exists per
// issue record at a time.
type ReturnRequest struct {
	ID          string        `json:"id"`
	IssueID     string        `json:"issue_id"`
	UserID      string        `json:"user_id"`
	Status      RequestStatus `json:"status"`
	RequestedAt time.Time     `json:"requested_at"`
}

// IsPending reports whether the request is still awaiting a librarian.
func (r *ReturnRequest) IsPending() bool {
	return r.Status == RequestStatusPending
}
