package library

import (
	"time"

	"library-ledger/internal/models"
)

// Statistics is a point-in-time summary derived from catalog and ledger
// snapshots. It is recomputed on every call and never cached.
type Statistics struct {
	TotalBooks       int            `json:"total_books"`
	TotalCopies      int            `json:"total_copies"`
	AvailableCopies  int            `json:"available_copies"`
	IssuedCopies     int            `json:"issued_copies"`
	ActiveIssues     int            `json:"active_issues"`
	OverdueBooks     int            `json:"overdue_books"`
	AvailablePercent int            `json:"available_percent"`
	Categories       []string       `json:"categories"`
	CategoryCount    map[string]int `json:"category_count"`
}

// Compute derives statistics from the given snapshots. An empty catalog
// yields all zeros; percentages never divide by zero.
func Compute(books []models.Book, issues []models.IssueRecord, now time.Time) Statistics {
	s := Statistics{
		TotalBooks:    len(books),
		CategoryCount: make(map[string]int),
	}

	for _, b := range books {
		s.TotalCopies += b.TotalCopies
		s.AvailableCopies += b.AvailableCopies
		if _, seen := s.CategoryCount[b.Category]; !seen {
			s.Categories = append(s.Categories, b.Category)
		}
		s.CategoryCount[b.Category]++
	}
	s.IssuedCopies = s.TotalCopies - s.AvailableCopies
	if s.TotalCopies > 0 {
		s.AvailablePercent = s.AvailableCopies * 100 / s.TotalCopies
	}

	for _, r := range issues {
		if r.Status == models.IssueStatusIssued {
			s.ActiveIssues++
			if now.After(r.DueDate) {
				s.OverdueBooks++
			}
		}
	}
	return s
}
