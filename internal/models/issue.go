package models

import "time"

// IssueStatus describes the lifecycle state of an issue record.
type IssueStatus string

const (
	IssueStatusIssued   IssueStatus = "issued"
	IssueStatusReturned IssueStatus = "returned"
)

// IssueRecord represents one lending of one copy of a book. Records are
// appended on issuance and updated in place on return; they are never
// deleted.
type IssueRecord struct {
	ID         string      `json:"id"`
	BookID     int         `json:"book_id"`
	UserID     string      `json:"user_id"`
	IssueDate  time.Time   `json:"issue_date"`
	DueDate    time.Time   `json:"due_date"`
	ReturnDate *time.Time  `json:"return_date,omitempty"`
	Fine       int         `json:"fine"`
	Status     IssueStatus `json:"status"`
}

// IsOverdue reports whether the record is still issued and past its due
// date at the given instant.
func (r *IssueRecord) IsOverdue(now time.Time) bool {
	return r.Status == IssueStatusIssued && now.After(r.DueDate)
}

// OverdueDays returns the number of started 24-hour periods past the due
// date. Returning exactly on the due date counts as zero.
func (r *IssueRecord) OverdueDays(now time.Time) int {
	if !now.After(r.DueDate) {
		return 0
	}
	d := now.Sub(r.DueDate)
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	return days
}

// FineAt computes the fine owed if the record were returned at the given
// instant. The fine is linear per overdue day with no cap and no grace
// period beyond the due date itself.
func (r *IssueRecord) FineAt(now time.Time, ratePerDay int) int {
	return r.OverdueDays(now) * ratePerDay
}

// DueDateFor computes a due date from an issue date and a loan period in
// days.
func DueDateFor(issueDate time.Time, days int) time.Time {
	return issueDate.AddDate(0, 0, days)
}
