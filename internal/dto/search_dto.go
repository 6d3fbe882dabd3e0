package dto

import "time"

// SearchResultItem flattens one matched note or task for display.
type SearchResultItem struct {
	Type        string     `json:"type"`
	Score       int        `json:"score"`
	Id          int64      `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content,omitempty"`
	Category    string     `json:"category,omitempty"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status,omitempty"`
	Priority    string     `json:"priority,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	Source      string     `json:"source"`
}

type SearchResults struct {
	Notes      []SearchResultItem `json:"notes"`
	Tasks      []SearchResultItem `json:"tasks"`
	TotalCount int                `json:"totalCount"`
}

type SearchEnvelope struct {
	Success    bool          `json:"success"`
	Results    SearchResults `json:"results"`
	Query      string        `json:"query"`
	SearchType string        `json:"searchType"`
}
