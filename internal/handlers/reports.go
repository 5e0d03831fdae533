package handlers

import (
	"net/http"

	"library-ledger/internal/library"
)

// ReportsHandler serves derived statistics.
type ReportsHandler struct {
	lib *library.Library
}

// NewReportsHandler builds the handler over the given store handle.
func NewReportsHandler(lib *library.Library) *ReportsHandler {
	return &ReportsHandler{lib: lib}
}

// Summary handles GET /reports/summary. Statistics are recomputed on
// every call from the current catalog and ledger state.
func (h *ReportsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.lib.Statistics())
}
