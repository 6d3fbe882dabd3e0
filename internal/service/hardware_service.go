package service

import (
	"context"
	"errors"
	"time"

	"dept-tracker-be/internal/dto"
	"dept-tracker-be/internal/entity"
	"dept-tracker-be/internal/pkg/apperrors"
	"dept-tracker-be/internal/repository/contract"
	"dept-tracker-be/internal/repository/specification"

	"gorm.io/gorm"
)

// HardwareListOptions narrows and pages the service-record listing.
type HardwareListOptions struct {
	Status     string
	DeviceType string
	Limit      int
	Offset     int
}

type IHardwareService interface {
	List(ctx context.Context, opts HardwareListOptions) ([]*dto.ServiceRecordResponse, error)
	Show(ctx context.Context, id int64) (*dto.ServiceRecordResponse, error)
	Create(ctx context.Context, userId int64, req *dto.CreateServiceRecordRequest) (*dto.ServiceRecordResponse, error)
	Update(ctx context.Context, req *dto.UpdateServiceRecordRequest) (*dto.ServiceRecordResponse, error)
	Delete(ctx context.Context, id int64) error
}

// hardwareService talks to the primary store only. Hardware records are an
// audit trail for physical interventions, so a degraded in-memory copy that
// vanishes on restart would be worse than an explicit 503.
type hardwareService struct {
	repository contract.ServiceRecordRepository // nil when no primary store is configured
}

func NewHardwareService(repository contract.ServiceRecordRepository) IHardwareService {
	return &hardwareService{repository: repository}
}

var errNoPrimaryStore = errors.New("no primary store configured")

func (s *hardwareService) guard() error {
	if s.repository == nil {
		return apperrors.NewUpstream("hardware", errNoPrimaryStore)
	}
	return nil
}

func (s *hardwareService) List(ctx context.Context, opts HardwareListOptions) ([]*dto.ServiceRecordResponse, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	if opts.Status != "" && !entity.IsValidServiceStatus(opts.Status) {
		return nil, apperrors.NewValidation("unknown status %q", opts.Status)
	}

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if opts.Status != "" {
		specs = append(specs, specification.ByStatus{Status: opts.Status})
	}
	if opts.DeviceType != "" {
		specs = append(specs, specification.Filter("device_type", opts.DeviceType))
	}
	if opts.Limit > 0 {
		specs = append(specs, specification.Pagination{Limit: opts.Limit, Offset: opts.Offset})
	}

	records, err := s.repository.FindAll(ctx, specs...)
	if err != nil {
		return nil, apperrors.NewUpstream("hardware", err)
	}

	response := make([]*dto.ServiceRecordResponse, 0, len(records))
	for _, r := range records {
		response = append(response, toServiceRecordResponse(r))
	}
	return response, nil
}

func (s *hardwareService) Show(ctx context.Context, id int64) (*dto.ServiceRecordResponse, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}

	record, err := s.repository.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperrors.NewUpstream("hardware", err)
	}
	if record == nil {
		return nil, apperrors.NewNotFound("service record", id)
	}
	return toServiceRecordResponse(record), nil
}

func (s *hardwareService) Create(ctx context.Context, userId int64, req *dto.CreateServiceRecordRequest) (*dto.ServiceRecordResponse, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}

	record := entity.ServiceRecord{
		DeviceName:   req.DeviceName,
		DeviceType:   req.DeviceType,
		SerialNumber: req.SerialNumber,
		Issue:        req.Issue,
		Status:       entity.ServiceStatusOpen,
		ReportedBy:   userId,
		HandledBy:    req.HandledBy,
		CreatedAt:    time.Now(),
	}

	if err := s.repository.Create(ctx, &record); err != nil {
		return nil, apperrors.NewUpstream("hardware", err)
	}
	return toServiceRecordResponse(&record), nil
}

func (s *hardwareService) Update(ctx context.Context, req *dto.UpdateServiceRecordRequest) (*dto.ServiceRecordResponse, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}

	record, err := s.repository.FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, apperrors.NewUpstream("hardware", err)
	}
	if record == nil {
		return nil, apperrors.NewNotFound("service record", req.Id)
	}

	if req.Issue != nil {
		record.Issue = *req.Issue
	}
	if req.ActionTaken != nil {
		record.ActionTaken = *req.ActionTaken
	}
	if req.Status != nil {
		if !entity.IsValidServiceStatus(*req.Status) {
			return nil, apperrors.NewValidation("unknown status %q", *req.Status)
		}
		record.Status = *req.Status
	}
	if req.HandledBy != nil {
		record.HandledBy = *req.HandledBy
	}

	now := time.Now()
	record.UpdatedAt = &now

	if err := s.repository.Update(ctx, record); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("service record", req.Id)
		}
		return nil, apperrors.NewUpstream("hardware", err)
	}
	return toServiceRecordResponse(record), nil
}

func (s *hardwareService) Delete(ctx context.Context, id int64) error {
	if err := s.guard(); err != nil {
		return err
	}
	if err := s.repository.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("service record", id)
		}
		return apperrors.NewUpstream("hardware", err)
	}
	return nil
}

func toServiceRecordResponse(r *entity.ServiceRecord) *dto.ServiceRecordResponse {
	return &dto.ServiceRecordResponse{
		Id:           r.Id,
		DeviceName:   r.DeviceName,
		DeviceType:   r.DeviceType,
		SerialNumber: r.SerialNumber,
		Issue:        r.Issue,
		ActionTaken:  r.ActionTaken,
		Status:       r.Status,
		ReportedBy:   r.ReportedBy,
		HandledBy:    r.HandledBy,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
