package models

import "time"

// GbsLeaderHistory represents the gbs_leader_history table.
// At most one row per group is open; rows are closed, never deleted.
type GbsLeaderHistory struct {
	ID            uint `gorm:"primaryKey;column:id" json:"id"`
	GbsGroupID    uint `gorm:"column:gbs_group_id" json:"gbs_group_id"`
	LeaderID      uint `gorm:"column:leader_id" json:"leader_id"`
	TemporalRange `gorm:"embedded"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName returns the database table name for GbsLeaderHistory model.
func (GbsLeaderHistory) TableName() string {
	return "gbs_leader_history"
}
