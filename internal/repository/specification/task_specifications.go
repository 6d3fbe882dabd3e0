package specification

import "gorm.io/gorm"

// ByStatus filters tasks by workflow state
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// ByAssignee filters tasks by the staff member they are assigned to
type ByAssignee struct {
	UserID int64
}

func (s ByAssignee) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("assigned_to = ?", s.UserID)
}

// ByPriority filters tasks by priority level
type ByPriority struct {
	Priority string
}

func (s ByPriority) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("priority = ?", s.Priority)
}
