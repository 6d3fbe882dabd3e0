package implementation

import (
	"context"
	"errors"

	"dept-tracker-be/internal/entity"
	"dept-tracker-be/internal/mapper"
	"dept-tracker-be/internal/model"
	"dept-tracker-be/internal/repository/contract"
	"dept-tracker-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ServiceRecordRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ServiceRecordMapper
}

func NewServiceRecordRepository(db *gorm.DB) contract.ServiceRecordRepository {
	return &ServiceRecordRepositoryImpl{
		db:     db,
		mapper: mapper.NewServiceRecordMapper(),
	}
}

func (r *ServiceRecordRepositoryImpl) Create(ctx context.Context, record *entity.ServiceRecord) error {
	m := r.mapper.ToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.ToEntity(m)
	return nil
}

func (r *ServiceRecordRepositoryImpl) Update(ctx context.Context, record *entity.ServiceRecord) error {
	m := r.mapper.ToModel(record)
	tx := r.db.WithContext(ctx).Model(&model.ServiceRecord{}).
		Where("id = ?", m.Id).
		Select("*").Omit("id", "created_at").
		Updates(m)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ServiceRecordRepositoryImpl) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&model.ServiceRecord{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ServiceRecordRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ServiceRecord, error) {
	var m model.ServiceRecord
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ServiceRecordRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ServiceRecord, error) {
	var models []*model.ServiceRecord
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
