package contract

import (
	"context"

	"dept-tracker-be/internal/entity"
	"dept-tracker-be/internal/repository/specification"
)

type ServiceRecordRepository interface {
	Create(ctx context.Context, record *entity.ServiceRecord) error
	Update(ctx context.Context, record *entity.ServiceRecord) error
	Delete(ctx context.Context, id int64) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ServiceRecord, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ServiceRecord, error)
}
