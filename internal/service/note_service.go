package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"dept-tracker-be/internal/dto"
	"dept-tracker-be/internal/entity"
	"dept-tracker-be/internal/pkg/apperrors"
	"dept-tracker-be/internal/pkg/logger"
	"dept-tracker-be/internal/repository/contract"
	"dept-tracker-be/internal/repository/failover"
)

type INoteService interface {
	List(ctx context.Context, filter contract.NoteFilter) ([]*dto.NoteResponse, error)
	Show(ctx context.Context, id int64) (*dto.NoteResponse, error)
	Create(ctx context.Context, userId int64, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Update(ctx context.Context, userId int64, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, id int64) error
	AddAttachment(ctx context.Context, userId, noteId int64, att *dto.AttachmentResponse) (*dto.NoteResponse, error)
}

type noteService struct {
	gateway          failover.NoteGateway
	publisherService IPublisherService
	log              logger.ILogger
}

func NewNoteService(gateway failover.NoteGateway, publisherService IPublisherService, log logger.ILogger) INoteService {
	return &noteService{
		gateway:          gateway,
		publisherService: publisherService,
		log:              log,
	}
}

func (s *noteService) List(ctx context.Context, filter contract.NoteFilter) ([]*dto.NoteResponse, error) {
	if filter.Category != "" && !entity.IsValidNoteCategory(filter.Category) {
		return nil, apperrors.NewValidation("unknown category %q", filter.Category)
	}

	notes, err := s.gateway.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.NoteResponse, 0, len(notes))
	for _, n := range notes {
		response = append(response, toNoteResponse(n))
	}
	return response, nil
}

func (s *noteService) Show(ctx context.Context, id int64) (*dto.NoteResponse, error) {
	note, err := s.gateway.GetById(ctx, id)
	if err != nil {
		return nil, err
	}
	return toNoteResponse(note), nil
}

func (s *noteService) Create(ctx context.Context, userId int64, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	category := strings.TrimSpace(req.Category)
	if !entity.IsValidNoteCategory(category) {
		return nil, apperrors.NewValidation("unknown category %q", category)
	}

	note := entity.Note{
		Title:     req.Title,
		Content:   req.Content,
		Category:  category,
		CreatedBy: userId,
		UpdatedBy: userId,
		IsActive:  true,
		FileUrl:   req.FileUrl,
		FileName:  req.FileName,
		CreatedAt: time.Now(),
	}

	if err := s.gateway.Create(ctx, &note); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, "NOTE_CREATED", map[string]interface{}{
		"note_id":  note.Id,
		"title":    note.Title,
		"category": note.Category,
		"user_id":  userId,
	})

	return toNoteResponse(&note), nil
}

func (s *noteService) Update(ctx context.Context, userId int64, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	note, err := s.gateway.GetById(ctx, req.Id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Content != nil {
		note.Content = *req.Content
	}
	if req.Category != nil {
		category := strings.TrimSpace(*req.Category)
		if !entity.IsValidNoteCategory(category) {
			return nil, apperrors.NewValidation("unknown category %q", category)
		}
		note.Category = category
	}
	if req.IsActive != nil {
		note.IsActive = *req.IsActive
	}
	if req.FileUrl != nil {
		note.FileUrl = *req.FileUrl
	}
	if req.FileName != nil {
		note.FileName = *req.FileName
	}

	now := time.Now()
	note.UpdatedAt = &now
	note.UpdatedBy = userId

	if err := s.gateway.Update(ctx, note); err != nil {
		return nil, err
	}

	return toNoteResponse(note), nil
}

func (s *noteService) Delete(ctx context.Context, id int64) error {
	return s.gateway.Delete(ctx, id)
}

func (s *noteService) AddAttachment(ctx context.Context, userId, noteId int64, att *dto.AttachmentResponse) (*dto.NoteResponse, error) {
	note, err := s.gateway.GetById(ctx, noteId)
	if err != nil {
		return nil, err
	}

	note.Attachments = append(note.Attachments, entity.Attachment{
		Url:        att.Url,
		Name:       att.Name,
		Type:       att.Type,
		Size:       att.Size,
		UploadedBy: userId,
		UploadedAt: time.Now(),
		IsImage:    strings.HasPrefix(att.Type, "image/"),
	})

	now := time.Now()
	note.UpdatedAt = &now
	note.UpdatedBy = userId

	if err := s.gateway.Update(ctx, note); err != nil {
		return nil, err
	}

	return toNoteResponse(note), nil
}

func (s *noteService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.publisherService == nil {
		return
	}

	payload, err := json.Marshal(dto.DomainEventMessage{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	})
	if err != nil {
		return
	}

	// Notifications are auxiliary; a publish failure never fails the request.
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.log.Warn("note-service", "failed to publish event", map[string]interface{}{
			"type":  eventType,
			"error": err.Error(),
		})
	}
}

func toNoteResponse(n *entity.Note) *dto.NoteResponse {
	attachments := make([]dto.AttachmentResponse, 0, len(n.Attachments))
	for _, a := range n.Attachments {
		attachments = append(attachments, dto.AttachmentResponse{
			Url:        a.Url,
			Name:       a.Name,
			Type:       a.Type,
			Size:       a.Size,
			UploadedBy: a.UploadedBy,
			UploadedAt: a.UploadedAt,
			IsImage:    a.IsImage,
		})
	}

	return &dto.NoteResponse{
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
		UpdatedAt:   n.UpdatedAt,
		Source:      string(n.Source),
	}
}
