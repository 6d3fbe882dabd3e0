package model

import "time"

type ServiceRecord struct {
	Id           int64     `gorm:"primaryKey;autoIncrement"`
	DeviceName   string    `gorm:"type:varchar(255);not null"`
	DeviceType   string    `gorm:"type:varchar(64);index"`
	SerialNumber string    `gorm:"type:varchar(128);index"`
	Issue        string    `gorm:"type:text"`
	ActionTaken  string    `gorm:"type:text"`
	Status       string    `gorm:"type:varchar(32);not null;index"`
	ReportedBy   int64
	HandledBy    int64
	CreatedAt    time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (ServiceRecord) TableName() string {
	return "service_records"
}
