package dto

import "time"

type CreateNoteRequest struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content"`
	Category string `json:"category" validate:"required"`
	FileUrl  string `json:"file_url"`
	FileName string `json:"file_name"`
}

// UpdateNoteRequest carries a partial field merge: nil pointers leave the
// stored value untouched.
type UpdateNoteRequest struct {
	Id       int64   `json:"-"`
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
	IsActive *bool   `json:"is_active"`
	FileUrl  *string `json:"file_url"`
	FileName *string `json:"file_name"`
}

type AttachmentResponse struct {
	Url        string    `json:"url"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Size       int64     `json:"size"`
	UploadedBy int64     `json:"uploaded_by"`
	UploadedAt time.Time `json:"uploaded_at"`
	IsImage    bool      `json:"is_image"`
}

type NoteResponse struct {
	Id          int64                `json:"id"`
	Title       string               `json:"title"`
	Content     string               `json:"content"`
	Category    string               `json:"category"`
	CreatedBy   int64                `json:"created_by"`
	UpdatedBy   int64                `json:"updated_by"`
	IsActive    bool                 `json:"is_active"`
	FileUrl     string               `json:"file_url,omitempty"`
	FileName    string               `json:"file_name,omitempty"`
	Attachments []AttachmentResponse `json:"attachments"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   *time.Time           `json:"updated_at"`
	Source      string               `json:"source"`
}
