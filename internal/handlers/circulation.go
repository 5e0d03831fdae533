package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"library-ledger/internal/library"
	"library-ledger/internal/models"
)

// CirculationHandler serves the issue and return-request endpoints.
type CirculationHandler struct {
	lib *library.Library
}

// NewCirculationHandler builds the handler over the given store handle.
func NewCirculationHandler(lib *library.Library) *CirculationHandler {
	return &CirculationHandler{lib: lib}
}

type issueRequest struct {
	BookID int    `json:"book_id"`
	UserID string `json:"user_id"`
	Days   int    `json:"days"`
}

// CreateIssue handles POST /issues.
func (h *CirculationHandler) CreateIssue(w http.ResponseWriter, r *http.Request) {
	var req issueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.UserID == "" {
		respondError(w, http.StatusBadRequest, "user_id is required")
		return
	}
	rec, err := h.lib.IssueBook(req.BookID, req.UserID, req.Days)
	if err != nil {
		respondLibraryError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, rec)
}

// ListIssues handles GET /issues with optional status (active, overdue)
// and user filters.
func (h *CirculationHandler) ListIssues(w http.ResponseWriter, r *http.Request) {
	user := r.URL.Query().Get("user")
	status := r.URL.Query().Get("status")

	var records []models.IssueRecord
	switch {
	case user != "":
		records = h.lib.Ledger.RecordsForUser(user)
	case status == "active":
		records = h.lib.Ledger.ActiveRecords()
	case status == "overdue":
		records = h.lib.Ledger.OverdueRecords()
	default:
		records = h.lib.Ledger.Records()
	}
	if records == nil {
		records = []models.IssueRecord{}
	}
	respondJSON(w, http.StatusOK, records)
}

type returnRequestBody struct {
	UserID string `json:"user_id"`
}

// RequestReturn handles POST /issues/{id}/request-return, the borrower
// action.
func (h *CirculationHandler) RequestReturn(w http.ResponseWriter, r *http.Request) {
	issueID := chi.URLParam(r, "id")
	var body returnRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	req, err := h.lib.RequestReturn(issueID, body.UserID)
	if err != nil {
		respondLibraryError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, req)
}

// ReturnBook handles POST /issues/{id}/return, the librarian action. It
// only succeeds when a pending return request exists for the issue.
func (h *CirculationHandler) ReturnBook(w http.ResponseWriter, r *http.Request) {
	issueID := chi.URLParam(r, "id")
	res, err := h.lib.CompleteReturn(issueID)
	if err != nil {
		respondLibraryError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// ListRequests handles GET /return-requests.
func (h *CirculationHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	requests := h.lib.Ledger.Requests()
	if requests == nil {
		requests = []models.ReturnRequest{}
	}
	respondJSON(w, http.StatusOK, requests)
}

// DismissRequest handles DELETE /return-requests/{id}, for requests whose
// issue record is gone or already returned.
func (h *CirculationHandler) DismissRequest(w http.ResponseWriter, r *http.Request) {
	if err := h.lib.DismissRequest(chi.URLParam(r, "id")); err != nil {
		respondLibraryError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
