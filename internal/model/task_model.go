package model

import "time"

type Task struct {
	Id          int64     `gorm:"primaryKey;autoIncrement"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Status      string    `gorm:"type:varchar(32);not null;index"`
	Priority    string    `gorm:"type:varchar(16);not null;index"`
	AssignedTo  int64     `gorm:"index"`
	CreatedBy   int64     `gorm:"index"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Task) TableName() string {
	return "tasks"
}
