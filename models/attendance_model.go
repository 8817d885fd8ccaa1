package models

import "time"

// Worship values.
const (
	WorshipAttended = "O"
	WorshipAbsent   = "X"
)

// Ministry grades.
const (
	MinistryA = "A"
	MinistryB = "B"
	MinistryC = "C"
)

// MaxQtCount is the highest number of quiet-time days a member can report per week.
const MaxQtCount = 6

// Attendance represents the attendance table, one row per (member, group, week).
type Attendance struct {
	ID          uint      `gorm:"primaryKey;column:id" json:"id"`
	MemberID    uint      `gorm:"column:member_id" json:"member_id"`
	GbsGroupID  uint      `gorm:"column:gbs_group_id" json:"gbs_group_id"`
	WeekStart   time.Time `gorm:"column:week_start;type:date" json:"week_start"`
	Worship     string    `gorm:"column:worship" json:"worship"`
	QtCount     int       `gorm:"column:qt_count" json:"qt_count"`
	Ministry    string    `gorm:"column:ministry" json:"ministry"`
	CreatedByID uint      `gorm:"column:created_by_id" json:"created_by_id"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName returns the database table name for Attendance model.
func (Attendance) TableName() string {
	return "attendance"
}

// Attended reports whether the member attended worship that week.
func (a Attendance) Attended() bool {
	return a.Worship == WorshipAttended
}
