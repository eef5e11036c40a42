package models

const (
	BookmarkStatute = "statute"
	BookmarkCaseLaw = "caselaw"
	BookmarkTopic   = "topic"
)

// BookmarkItem shares its ID with the bookmarked entity; the binder holds at
// most one entry per ID.
type BookmarkItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle,omitempty"`
	Type      string `json:"type"`
	URL       string `json:"url,omitempty"`
	DateAdded int64  `json:"dateAdded"` // epoch milliseconds
}

type Folder struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Items []string `json:"items"` // bookmark IDs
}
