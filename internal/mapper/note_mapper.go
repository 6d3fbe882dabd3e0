package mapper

import (
	"encoding/json"
	"time"

	"dept-tracker-be/internal/entity"
	"dept-tracker-be/internal/model"

	"gorm.io/datatypes"
)

type NoteMapper struct{}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{}
}

func (m *NoteMapper) ToEntity(n *model.Note) *entity.Note {
	if n == nil {
		return nil
	}

	var updatedAt *time.Time
	if !n.UpdatedAt.IsZero() && !n.UpdatedAt.Equal(n.CreatedAt) {
		t := n.UpdatedAt
		updatedAt = &t
	}

	var attachments []entity.Attachment
	if len(n.Attachments) > 0 {
		// A malformed column is treated as no attachments rather than a
		// failed read.
		_ = json.Unmarshal(n.Attachments, &attachments)
	}

	return &entity.Note{
		Id:          n.Id,
		Title:       n.Title,
		Content:     n.Content,
		Category:    n.Category,
		CreatedBy:   n.CreatedBy,
		UpdatedBy:   n.UpdatedBy,
		IsActive:    n.IsActive,
		FileUrl:     n.FileUrl,
		FileName:    n.FileName,
		Attachments: attachments,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   updatedAt,
		Source:      entity.SourcePrimary,
	}
}

func (m *NoteMapper) ToModel(n *entity.Note) *model.Note {
	if n == nil {
		return nil
	}

	var updatedAt time.Time
	if n.UpdatedAt != nil {
		updatedAt = *n.UpdatedAt
	}

	var attachments datatypes.JSON
	if len(n.Attachments) > 0 {
		if raw, err := json.Marshal(n.Attachments); err == nil {
			attachments = datatypes.JSON(raw)
		}
	}

	return &model.Note{
		Id:          n.Id,
		Title:       n.Title,
		Content:     n.Content,
		Category:    n.Category,
		CreatedBy:   n.CreatedBy,
		UpdatedBy:   n.UpdatedBy,
		IsActive:    n.IsActive,
		FileUrl:     n.FileUrl,
		FileName:    n.FileName,
		Attachments: attachments,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *NoteMapper) ToEntities(notes []*model.Note) []*entity.Note {
	entities := make([]*entity.Note, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
