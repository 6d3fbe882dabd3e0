package contract

// NoteFilter narrows note listings. Zero values mean "no constraint".
type NoteFilter struct {
	Category   string
	ActiveOnly bool
	// Query is a plain case-insensitive substring filter on title/content,
	// separate from relevance-scored search.
	Query string
}

// TaskFilter narrows task listings. Zero values mean "no constraint".
type TaskFilter struct {
	Status     string
	Priority   string
	AssignedTo int64
}
