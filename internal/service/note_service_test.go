package service

import (
	"context"
	"testing"
	"time"

	"dept-tracker-be/internal/dto"
	"dept-tracker-be/internal/entity"
	"dept-tracker-be/internal/pkg/apperrors"
	"dept-tracker-be/internal/pkg/logger"
	"dept-tracker-be/internal/repository/contract"
	"dept-tracker-be/internal/repository/failover"
	"dept-tracker-be/internal/repository/memory"
)

func newNoteServiceForTest(t *testing.T) INoteService {
	t.Helper()

	gateway := failover.NewNoteGateway(nil, memory.NewNoteStore(), nil)
	return NewNoteService(gateway, nil, logger.NewNopLogger())
}

func TestNoteServiceCreate(t *testing.T) {
	svc := newNoteServiceForTest(t)

	res, err := svc.Create(context.Background(), 7, &dto.CreateNoteRequest{
		Title:    "Eczane devir tutanagi",
		Content:  "gece vardiyasi",
		Category: "eczane",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if !res.IsActive {
		t.Error("new notes must start active")
	}
	if res.CreatedBy != 7 || res.UpdatedBy != 7 {
		t.Errorf("CreatedBy/UpdatedBy = %d/%d, want 7/7", res.CreatedBy, res.UpdatedBy)
	}
	if res.Source != string(entity.SourceFallback) {
		t.Errorf("Source = %q, want %q", res.Source, entity.SourceFallback)
	}
}

func TestNoteServiceCreateRejectsUnknownCategory(t *testing.T) {
	svc := newNoteServiceForTest(t)

	_, err := svc.Create(context.Background(), 7, &dto.CreateNoteRequest{
		Title:    "not",
		Category: "muhasebe",
	})
	if !apperrors.IsValidation(err) {
		t.Errorf("Create error = %v, want ValidationError", err)
	}
}

func TestNoteServiceUpdatePartialMerge(t *testing.T) {
	svc := newNoteServiceForTest(t)

	created, err := svc.Create(context.Background(), 7, &dto.CreateNoteRequest{
		Title:    "Kalite denetimi",
		Content:  "ilk taslak",
		Category: "kalite",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	content := "gozden gecirildi"
	updated, err := svc.Update(context.Background(), 8, &dto.UpdateNoteRequest{
		Id:      created.Id,
		Content: &content,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Title != "Kalite denetimi" {
		t.Errorf("Title = %q, untouched fields must survive", updated.Title)
	}
	if updated.Content != content {
		t.Errorf("Content = %q, want %q", updated.Content, content)
	}
	if updated.UpdatedBy != 8 {
		t.Errorf("UpdatedBy = %d, want 8", updated.UpdatedBy)
	}
	if updated.UpdatedAt == nil {
		t.Error("UpdatedAt not set on update")
	}
}

func TestNoteServiceUpdateRejectsUnknownCategory(t *testing.T) {
	svc := newNoteServiceForTest(t)

	created, err := svc.Create(context.Background(), 7, &dto.CreateNoteRequest{
		Title:    "Kalite denetimi",
		Category: "kalite",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	bad := "muhasebe"
	_, err = svc.Update(context.Background(), 7, &dto.UpdateNoteRequest{
		Id:       created.Id,
		Category: &bad,
	})
	if !apperrors.IsValidation(err) {
		t.Errorf("Update error = %v, want ValidationError", err)
	}
}

func TestNoteServiceAddAttachment(t *testing.T) {
	svc := newNoteServiceForTest(t)

	created, err := svc.Create(context.Background(), 7, &dto.CreateNoteRequest{
		Title:    "Dilekce ekleri",
		Category: "dilekceler",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	res, err := svc.AddAttachment(context.Background(), 7, created.Id, &dto.AttachmentResponse{
		Url:        "/uploads/abc.png",
		Name:       "dilekce.png",
		Type:       "image/png",
		Size:       2048,
		UploadedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("AddAttachment failed: %v", err)
	}

	if len(res.Attachments) != 1 {
		t.Fatalf("Attachments len = %d, want 1", len(res.Attachments))
	}
	att := res.Attachments[0]
	if !att.IsImage {
		t.Error("image/png attachment must be flagged as image")
	}
	if att.UploadedBy != 7 {
		t.Errorf("UploadedBy = %d, want 7", att.UploadedBy)
	}
}

func TestNoteServiceDeleteThenShow(t *testing.T) {
	svc := newNoteServiceForTest(t)

	created, err := svc.Create(context.Background(), 7, &dto.CreateNoteRequest{
		Title:    "silinecek",
		Category: "idare",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), created.Id); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := svc.Show(context.Background(), created.Id); !apperrors.IsNotFound(err) {
		t.Errorf("Show after delete error = %v, want NotFoundError", err)
	}
}

func TestNoteServiceListFilterValidation(t *testing.T) {
	svc := newNoteServiceForTest(t)

	_, err := svc.List(context.Background(), contract.NoteFilter{Category: "muhasebe"})
	if !apperrors.IsValidation(err) {
		t.Errorf("List error = %v, want ValidationError", err)
	}
}
