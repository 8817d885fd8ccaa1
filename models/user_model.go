package models

import "time"

// Role values stored in users.role.
const (
	RoleMember        = "MEMBER"
	RoleLeader        = "LEADER"
	RoleVillageLeader = "VILLAGE_LEADER"
	RoleMinister      = "MINISTER"
	RoleAdmin         = "ADMIN"
)

// User represents the users table.
// Users are referenced, never owned, by the assignment histories.
type User struct {
	ID           uint      `gorm:"primaryKey;column:id" json:"id"`
	Name         string    `gorm:"column:name" json:"name" validate:"required,max=100"`
	Email        *string   `gorm:"column:email" json:"email,omitempty" validate:"omitempty,email"`
	Role         string    `gorm:"column:role" json:"role" validate:"omitempty,oneof=MEMBER LEADER VILLAGE_LEADER MINISTER ADMIN"`
	DepartmentID *uint     `gorm:"column:department_id" json:"department_id,omitempty"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName returns the database table name for User model.
func (User) TableName() string {
	return "users"
}

// IsDepartmentStaff reports whether the user holds a department-wide role in departmentID.
func (u User) IsDepartmentStaff(departmentID uint) bool {
	if u.Role != RoleAdmin && u.Role != RoleMinister {
		return false
	}
	return u.DepartmentID != nil && *u.DepartmentID == departmentID
}
