package models

import "time"

// VillageLeader represents the village_leader table, keyed by (user_id, village_id).
type VillageLeader struct {
	UserID        uint `gorm:"primaryKey;autoIncrement:false;column:user_id" json:"user_id"`
	VillageID     uint `gorm:"primaryKey;autoIncrement:false;column:village_id" json:"village_id"`
	TemporalRange `gorm:"embedded"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName returns the database table name for VillageLeader model.
func (VillageLeader) TableName() string {
	return "village_leader"
}
