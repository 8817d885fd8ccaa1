package models

import "time"

// GbsMemberHistory represents the gbs_member_history table.
// Rows of the same (group, member) pair never overlap.
type GbsMemberHistory struct {
	ID            uint `gorm:"primaryKey;column:id" json:"id"`
	GbsGroupID    uint `gorm:"column:gbs_group_id" json:"gbs_group_id"`
	MemberID      uint `gorm:"column:member_id" json:"member_id"`
	TemporalRange `gorm:"embedded"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName returns the database table name for GbsMemberHistory model.
func (GbsMemberHistory) TableName() string {
	return "gbs_member_history"
}
