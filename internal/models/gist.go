package models

// Gist is one entry of a user's public gist list as returned by the API.
// Only the fields the watcher reads are decoded.
type Gist struct {
	ID          string  `json:"id"`
	CreatedAt   string  `json:"created_at"`  // ISO-8601, UTC with a trailing Z
	Description *string `json:"description"` // null when the gist has no description
	HTMLURL     string  `json:"html_url"`
}

// CollectionSnapshot is the result of one poll. Items are newest first.
type CollectionSnapshot struct {
	Items     []Gist
	Count     int
	RateLimit RateLimit
}

// NewCollectionSnapshot builds a snapshot whose Count always matches Items.
func NewCollectionSnapshot(items []Gist, rl RateLimit) CollectionSnapshot {
	return CollectionSnapshot{
		Items:     items,
		Count:     len(items),
		RateLimit: rl,
	}
}

// Newest returns the item at position 0, if any.
func (s CollectionSnapshot) Newest() (Gist, bool) {
	if len(s.Items) == 0 {
		return Gist{}, false
	}
	return s.Items[0], true
}
