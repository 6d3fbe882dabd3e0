package model

import (
	"time"

	"gorm.io/datatypes"
)

type Note struct {
	Id          int64          `gorm:"primaryKey;autoIncrement"`
	Title       string         `gorm:"type:varchar(255);not null"`
	Content     string         `gorm:"type:text"`
	Category    string         `gorm:"type:varchar(64);not null;index"`
	CreatedBy   int64          `gorm:"index"`
	UpdatedBy   int64
	IsActive    bool           `gorm:"default:true"`
	FileUrl     string         `gorm:"type:varchar(512)"`
	FileName    string         `gorm:"type:varchar(255)"`
	Attachments datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt   time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
}

func (Note) TableName() string {
	return "notes"
}
