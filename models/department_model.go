package models

import "time"

// Department represents the department table, the top level of the organization.
type Department struct {
	ID        uint      `gorm:"primaryKey;column:id" json:"id"`
	Name      string    `gorm:"column:name" json:"name" validate:"required,max=100"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName returns the database table name for Department model.
func (Department) TableName() string {
	return "department"
}
