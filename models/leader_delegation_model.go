package models

import "time"

// LeaderDelegation represents the leader_delegation table.
// While active, the delegatee holds the same rights over the group as its leader.
type LeaderDelegation struct {
	ID            uint `gorm:"primaryKey;column:id" json:"id"`
	DelegatorID   uint `gorm:"column:delegator_id" json:"delegator_id"`
	DelegateeID   uint `gorm:"column:delegatee_id" json:"delegatee_id"`
	GbsGroupID    uint `gorm:"column:gbs_group_id" json:"gbs_group_id"`
	TemporalRange `gorm:"embedded"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName returns the database table name for LeaderDelegation model.
func (LeaderDelegation) TableName() string {
	return "leader_delegation"
}
