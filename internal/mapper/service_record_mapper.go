package mapper

import (
	"time"

	"dept-tracker-be/internal/entity"
	"dept-tracker-be/internal/model"
)

type ServiceRecordMapper struct{}

func NewServiceRecordMapper() *ServiceRecordMapper {
	return &ServiceRecordMapper{}
}

func (m *ServiceRecordMapper) ToEntity(r *model.ServiceRecord) *entity.ServiceRecord {
	if r == nil {
		return nil
	}

	var updatedAt *time.Time
	if !r.UpdatedAt.IsZero() && !r.UpdatedAt.Equal(r.CreatedAt) {
		t := r.UpdatedAt
		updatedAt = &t
	}

	return &entity.ServiceRecord{
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
		UpdatedAt:    updatedAt,
	}
}

func (m *ServiceRecordMapper) ToModel(r *entity.ServiceRecord) *model.ServiceRecord {
	if r == nil {
		return nil
	}

	var updatedAt time.Time
	if r.UpdatedAt != nil {
		updatedAt = *r.UpdatedAt
	}

	return &model.ServiceRecord{
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
		UpdatedAt:    updatedAt,
	}
}

func (m *ServiceRecordMapper) ToEntities(records []*model.ServiceRecord) []*entity.ServiceRecord {
	entities := make([]*entity.ServiceRecord, len(records))
	for i, r := range records {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
