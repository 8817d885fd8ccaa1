package dto

import (
	"fmt"
	"time"

	"gbsorgapi/utils"
)

// GroupAssignment names the successor leader and members of one group.
// A nil LeaderID leaves the group leaderless from the reorganization start.
type GroupAssignment struct {
	GbsGroupID uint   `json:"gbs_group_id" validate:"required"`
	LeaderID   *uint  `json:"leader_id,omitempty"`
	MemberIDs  []uint `json:"member_ids,omitempty"`
}

// ReorganizationRequest describes a term change for one department.
type ReorganizationRequest struct {
	DepartmentID uint
	StartDate    time.Time
	EndDate      time.Time
	Assignments  []GroupAssignment
	DryRun       bool
}

// ReorganizationPayload is the wire form of ReorganizationRequest, used by the
// HTTP handler and the reorganize command.
type ReorganizationPayload struct {
	DepartmentID uint              `json:"department_id" validate:"required"`
	StartDate    string            `json:"start_date" validate:"required,isodate"`
	EndDate      string            `json:"end_date" validate:"required,isodate"`
	Assignments  []GroupAssignment `json:"assignments" validate:"dive"`
	DryRun       bool              `json:"dry_run"`
}

// ToRequest parses the payload dates.
func (p ReorganizationPayload) ToRequest() (ReorganizationRequest, error) {
	start, err := utils.ParseDate(p.StartDate)
	if err != nil {
		return ReorganizationRequest{}, fmt.Errorf("start_date: %w", err)
	}
	end, err := utils.ParseDate(p.EndDate)
	if err != nil {
		return ReorganizationRequest{}, fmt.Errorf("end_date: %w", err)
	}
	return NewReorganizationRequestBuilder().
		SetDepartment(p.DepartmentID).
		SetWindow(start, end).
		AddAssignments(p.Assignments...).
		SetDryRun(p.DryRun).
		Build(), nil
}

// ReorganizationReport summarizes a reorganization run.
type ReorganizationReport struct {
	ReorganizationID string    `json:"reorganization_id"`
	DepartmentID     uint      `json:"department_id"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	DryRun           bool      `json:"dry_run"`
	AffectedGroups   int       `json:"affected_groups"`
	LeadersClosed    int       `json:"leaders_closed"`
	MembersClosed    int       `json:"members_closed"`
	LeadersAssigned  int       `json:"leaders_assigned"`
	MembersAssigned  int       `json:"members_assigned"`
	CompletedAt      time.Time `json:"completed_at"`
}

// ReorganizationRequestBuilder provides a builder pattern for constructing ReorganizationRequest instances.
type ReorganizationRequestBuilder struct {
	req *ReorganizationRequest
}

// NewReorganizationRequestBuilder creates a new ReorganizationRequest builder instance.
func NewReorganizationRequestBuilder() *ReorganizationRequestBuilder {
	return &ReorganizationRequestBuilder{
		req: &ReorganizationRequest{},
	}
}

// SetDepartment sets the department being reorganized.
func (r *ReorganizationRequestBuilder) SetDepartment(departmentID uint) *ReorganizationRequestBuilder {
	r.req.DepartmentID = departmentID
	return r
}

// SetWindow sets the new term window.
func (r *ReorganizationRequestBuilder) SetWindow(start, end time.Time) *ReorganizationRequestBuilder {
	r.req.StartDate = utils.DateOf(start)
	r.req.EndDate = utils.DateOf(end)
	return r
}

// AddGroup appends a successor assignment for one group.
func (r *ReorganizationRequestBuilder) AddGroup(groupID uint, leaderID *uint, memberIDs ...uint) *ReorganizationRequestBuilder {
	r.req.Assignments = append(r.req.Assignments, GroupAssignment{
		GbsGroupID: groupID,
		LeaderID:   leaderID,
		MemberIDs:  memberIDs,
	})
	return r
}

// AddAssignments appends already-built successor assignments.
func (r *ReorganizationRequestBuilder) AddAssignments(assignments ...GroupAssignment) *ReorganizationRequestBuilder {
	r.req.Assignments = append(r.req.Assignments, assignments...)
	return r
}

// SetDryRun toggles validation-only mode.
func (r *ReorganizationRequestBuilder) SetDryRun(dryRun bool) *ReorganizationRequestBuilder {
	r.req.DryRun = dryRun
	return r
}

// Build constructs and returns the final ReorganizationRequest.
func (r *ReorganizationRequestBuilder) Build() ReorganizationRequest {
	return *r.req
}
