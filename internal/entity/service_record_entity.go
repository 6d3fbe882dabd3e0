package entity

import "time"

const (
	ServiceStatusOpen       = "open"
	ServiceStatusInProgress = "in-progress"
	ServiceStatusResolved   = "resolved"
)

func IsValidServiceStatus(status string) bool {
	switch status {
	case ServiceStatusOpen, ServiceStatusInProgress, ServiceStatusResolved:
		return true
	}
	return false
}

// ServiceRecord tracks one IT hardware intervention (printer repair, disk
// swap, and so on) for the department inventory.
type ServiceRecord struct {
	Id           int64
	DeviceName   string
	DeviceType   string
	SerialNumber string
	Issue        string
	ActionTaken  string
	Status       string
	ReportedBy   int64
	HandledBy    int64
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
