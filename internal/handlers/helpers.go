package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"library-ledger/internal/library"
)

// errorResponse is the JSON body returned for every failed request.
type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Error: msg})
}

// respondLibraryError maps the facade's sentinel errors onto HTTP
// statuses: validation failures 400, absent entities 404, business-rule
// conflicts 409.
func respondLibraryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, library.ErrInvalidBook),
		errors.Is(err, library.ErrInvalidLoanDays):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, library.ErrBookNotFound),
		errors.Is(err, library.ErrIssueNotFound),
		errors.Is(err, library.ErrRequestNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, library.ErrNoCopies),
		errors.Is(err, library.ErrBookInUse),
		errors.Is(err, library.ErrDuplicateRequest),
		errors.Is(err, library.ErrNoPendingRequest),
		errors.Is(err, library.ErrNotIssued),
		errors.Is(err, library.ErrNotOwner),
		errors.Is(err, library.ErrRequestActive):
		respondError(w, http.StatusConflict, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}
