package dto

import "time"

type CreateServiceRecordRequest struct {
	DeviceName   string `json:"device_name" validate:"required"`
	DeviceType   string `json:"device_type"`
	SerialNumber string `json:"serial_number"`
	Issue        string `json:"issue" validate:"required"`
	HandledBy    int64  `json:"handled_by"`
}

type UpdateServiceRecordRequest struct {
	Id          int64   `json:"-"`
	Issue       *string `json:"issue"`
	ActionTaken *string `json:"action_taken"`
	Status      *string `json:"status"`
	HandledBy   *int64  `json:"handled_by"`
}

type ServiceRecordResponse struct {
	Id           int64      `json:"id"`
	DeviceName   string     `json:"device_name"`
	DeviceType   string     `json:"device_type"`
	SerialNumber string     `json:"serial_number"`
	Issue        string     `json:"issue"`
	ActionTaken  string     `json:"action_taken"`
	Status       string     `json:"status"`
	ReportedBy   int64      `json:"reported_by"`
	HandledBy    int64      `json:"handled_by"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}
