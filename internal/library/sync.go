package library

import "library-ledger/internal/storage"

// bindViewer folds changes published by other viewers of the same adapter
// back into in-memory state. The affected record set is reloaded wholesale
// from the adapter and replaces the current slice; concurrent edits
// resolve last-writer-wins with no merging. The bus never delivers a
// viewer's own writes, so a writer cannot clobber itself with a stale
// echo.
func (l *Library) bindViewer(v *storage.Viewer) {
	v.OnChange(func(key string) {
		switch key {
		case storage.KeyBooks:
			l.Catalog.reload()
		case storage.KeyIssuedBooks, storage.KeyReturnRequests:
			l.Ledger.reload(key)
		}
	})
}
