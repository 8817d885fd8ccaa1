package controllers

import (
	"time"

	"gbsorgapi/models"
)

// Request and response models shared by the handlers and the Swagger documentation.

// StandardErrorResponse represents an error response body
type StandardErrorResponse struct {
	Error string `json:"error" example:"conflict: user id=3 is already the open leader of group id=1"`
}

// CreatedResponse represents the response for creating a resource
type CreatedResponse struct {
	Message string `json:"message" example:"Group was created successfully"`
	ID      uint   `json:"id" example:"1"`
}

// HealthResponse represents the liveness probe response
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// DepartmentCreateRequest represents the request body for creating a department
type DepartmentCreateRequest struct {
	Name string `json:"name" validate:"required,max=100" example:"Young Adults"`
}

// VillageCreateRequest represents the request body for creating a village
type VillageCreateRequest struct {
	DepartmentID uint   `json:"department_id" validate:"required" example:"1"`
	Name         string `json:"name" validate:"required,max=100" example:"Village A"`
}

// GroupCreateRequest represents the request body for creating a GBS group
type GroupCreateRequest struct {
	VillageID     uint   `json:"village_id" validate:"required" example:"1"`
	Name          string `json:"name" validate:"required,max=100" example:"GBS 1"`
	TermStartDate string `json:"term_start_date" validate:"required,isodate" example:"2024-01-01"`
	TermEndDate   string `json:"term_end_date" validate:"required,isodate" example:"2024-06-30"`
}

// UserCreateRequest represents the request body for registering a user
type UserCreateRequest struct {
	Name         string  `json:"name" validate:"required,max=100" example:"Kim Minsu"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email" example:"minsu@example.com"`
	Role         string  `json:"role,omitempty" validate:"omitempty,oneof=MEMBER LEADER VILLAGE_LEADER MINISTER ADMIN" example:"MEMBER"`
	DepartmentID *uint   `json:"department_id,omitempty" example:"1"`
}

// LeaderAssignRequest represents the request body for assigning a group leader
type LeaderAssignRequest struct {
	LeaderID  uint   `json:"leader_id" validate:"required" example:"3"`
	StartDate string `json:"start_date" validate:"required,isodate" example:"2024-07-01"`
}

// MemberAssignRequest represents the request body for adding a group member
type MemberAssignRequest struct {
	MemberID  uint   `json:"member_id" validate:"required" example:"7"`
	StartDate string `json:"start_date" validate:"required,isodate" example:"2024-07-01"`
}

// VillageLeaderAssignRequest represents the request body for assigning a village leader
type VillageLeaderAssignRequest struct {
	UserID    uint   `json:"user_id" validate:"required" example:"5"`
	StartDate string `json:"start_date" validate:"required,isodate" example:"2024-07-01"`
}

// EndDateRequest represents the request body of every terminate and end operation
type EndDateRequest struct {
	EndDate string `json:"end_date" validate:"required,isodate" example:"2024-06-30"`
}

// DelegationCreateRequest represents the request body for delegating group control.
// The caller is the delegator.
type DelegationCreateRequest struct {
	DelegateeID uint   `json:"delegatee_id" validate:"required" example:"7"`
	GbsGroupID  uint   `json:"gbs_group_id" validate:"required" example:"1"`
	StartDate   string `json:"start_date" validate:"required,isodate" example:"2024-08-01"`
	EndDate     string `json:"end_date,omitempty" validate:"omitempty,isodate" example:"2024-08-31"`
}

// LeaderResponse represents the resolved leader of a group or village on a date
type LeaderResponse struct {
	Date   string       `json:"date" example:"2024-07-15"`
	Found  bool         `json:"found" example:"true"`
	Leader *models.User `json:"leader,omitempty"`
}

// EffectiveLeadersResponse represents the users controlling a group on a date
type EffectiveLeadersResponse struct {
	GbsGroupID uint   `json:"gbs_group_id" example:"1"`
	Date       string `json:"date" example:"2024-08-15"`
	UserIDs    []uint `json:"user_ids"`
}

// ControlResponse represents a control check of a user over a group
type ControlResponse struct {
	UserID     uint   `json:"user_id" example:"7"`
	GbsGroupID uint   `json:"gbs_group_id" example:"1"`
	Date       string `json:"date" example:"2024-08-15"`
	HasControl bool   `json:"has_control" example:"true"`
}

// AssignmentResponse represents the leader row a user holds on a date
type AssignmentResponse struct {
	Date       string                   `json:"date" example:"2024-07-15"`
	Found      bool                     `json:"found" example:"true"`
	Assignment *models.GbsLeaderHistory `json:"assignment,omitempty"`
}

// AttendanceWeekResponse represents the stored attendance rows of one group week
type AttendanceWeekResponse struct {
	GbsGroupID uint                `json:"gbs_group_id" example:"1"`
	WeekStart  time.Time           `json:"week_start"`
	Entries    []models.Attendance `json:"entries"`
}
