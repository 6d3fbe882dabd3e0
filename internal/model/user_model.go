package model

import "time"

type User struct {
	Id           int64     `gorm:"primaryKey;autoIncrement"`
	FullName     string    `gorm:"type:varchar(255);not null"`
	Username     string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(32);not null;default:staff"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}
