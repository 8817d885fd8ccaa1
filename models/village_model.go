package models

import "time"

// Village represents the village table.
// A village belongs to one department and groups several GBS groups.
type Village struct {
	ID           uint      `gorm:"primaryKey;column:id" json:"id"`
	Name         string    `gorm:"column:name" json:"name" validate:"required,max=100"`
	DepartmentID uint      `gorm:"column:department_id" json:"department_id" validate:"required"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName returns the database table name for Village model.
func (Village) TableName() string {
	return "village"
}
