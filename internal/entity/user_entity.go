package entity

import "time"

const (
	UserRoleAdmin = "admin"
	UserRoleStaff = "staff"
)

func IsValidUserRole(role string) bool {
	return role == UserRoleAdmin || role == UserRoleStaff
}

type User struct {
	Id           int64
	FullName     string
	Username     string
	PasswordHash string
	Role         string
	CreatedAt    time.Time

	Source Source
}
