package dto

import "gbsorgapi/models"

// Assignment kinds reported by HistoryOf.
const (
	AssignmentLeader = "LEADER"
	AssignmentMember = "MEMBER"
)

// AssignmentRecord is one leader or member history row of a user.
type AssignmentRecord struct {
	Kind       string `json:"kind"`
	HistoryID  uint   `json:"history_id"`
	GbsGroupID uint   `json:"gbs_group_id"`
	models.TemporalRange
}

// AccessSet lists the groups a user can act on as of a date.
type AccessSet struct {
	UserID        uint   `json:"user_id"`
	LeaderOf      []uint `json:"leader_of"`
	DelegatedFrom []uint `json:"delegated"`
	GroupIDs      []uint `json:"group_ids"`
}
