package storage

// Storage keys, one per logical record set. These names are part of the
// persisted state layout and must stay stable across versions.
const (
	KeyBooks          = "library_books"
	KeyIssuedBooks    = "issued_books"
	KeyReturnRequests = "return_requests"
	KeyRecentlyViewed = "recently_viewed"
	KeyFavorites      = "favorites"
	KeyRecentlyPlayed = "recently_played"
)

// UserKey scopes a record-set key to a single user. Global sets use the
// bare key; per-user sets carry the user identifier as a suffix so two
// users never share a blob.
func UserKey(base, userID string) string {
	return base + ":" + userID
}
