package entity

import "time"

// NoteCategories is the fixed set of department tags. Unknown categories are
// rejected at creation.
var NoteCategories = []string{
	"servis",
	"poliklinikler",
	"eczane",
	"genel-hasta-kayit",
	"kalite",
	"dilekceler",
	"idare",
}

func IsValidNoteCategory(category string) bool {
	for _, c := range NoteCategories {
		if c == category {
			return true
		}
	}
	return false
}

type Attachment struct {
	Url        string    `json:"url"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Size       int64     `json:"size"`
	UploadedBy int64     `json:"uploaded_by"`
	UploadedAt time.Time `json:"uploaded_at"`
	IsImage    bool      `json:"is_image"`
}

type Note struct {
	Id        int64
	Title     string
	Content   string
	Category  string
	CreatedBy int64
	UpdatedBy int64
	IsActive  bool

	// Legacy single attachment kept for records migrated from the old UI.
	FileUrl  string
	FileName string

	Attachments []Attachment

	CreatedAt time.Time
	UpdatedAt *time.Time

	Source Source
}

// LastTouched is the timestamp relevance scoring uses: last update when one
// exists, creation time otherwise.
func (n *Note) LastTouched() time.Time {
	if n.UpdatedAt != nil {
		return *n.UpdatedAt
	}
	return n.CreatedAt
}
