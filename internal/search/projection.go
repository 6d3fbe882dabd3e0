// Package search implements the relevance engine: substring matching over a
// normalized projection of notes and tasks, an additive rule-table scorer,
// and rank/merge helpers for heterogeneous result sets.
package search

import (
	"time"

	"dept-tracker-be/internal/entity"
)

// Document is the shape the scorer sees. Projecting both entity types onto
// it keeps entity-specific field access out of the scoring rules.
type Document struct {
	Title     string
	Body      string
	Tags      []string
	Timestamp time.Time
}

func ProjectNote(n *entity.Note) Document {
	return Document{
		Title:     n.Title,
		Body:      n.Content,
		Tags:      []string{n.Category},
		Timestamp: n.LastTouched(),
	}
}

func ProjectTask(t *entity.Task) Document {
	return Document{
		Title:     t.Title,
		Body:      t.Description,
		Tags:      []string{t.Status, t.Priority},
		Timestamp: t.LastTouched(),
	}
}
