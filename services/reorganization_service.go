package services

import (
	"context"
	"fmt"
	"time"

	"gbsorgapi/models"
	"gbsorgapi/pkg/logger"
	"gbsorgapi/repository"
	"gbsorgapi/services/dto"
	"gbsorgapi/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReorganizationService performs the periodic term change of a department.
type ReorganizationService interface {
	// Reorganize closes every open leader and member row of the department's groups whose
	// term overlaps the window on StartDate-1, then opens the successor rows from StartDate.
	// All checks run before the first write; any failure leaves the histories untouched.
	// With DryRun set the report is computed and nothing is written.
	Reorganize(ctx context.Context, req dto.ReorganizationRequest) (*dto.ReorganizationReport, error)
}

type reorganizationService struct {
	baseRepo   repository.BaseRepository
	deptRepo   repository.DepartmentRepository
	userRepo   repository.UserRepository
	groupRepo  repository.GbsGroupRepository
	leaderRepo repository.GbsLeaderHistoryRepository
	memberRepo repository.GbsMemberHistoryRepository
}

// NewReorganizationService creates a reorganization service backed by db.
func NewReorganizationService(db *gorm.DB) ReorganizationService {
	return &reorganizationService{
		baseRepo:   repository.NewBaseRepository(db),
		deptRepo:   repository.NewDepartmentRepository(db),
		userRepo:   repository.NewUserRepository(db),
		groupRepo:  repository.NewGbsGroupRepository(db),
		leaderRepo: repository.NewGbsLeaderHistoryRepository(db),
		memberRepo: repository.NewGbsMemberHistoryRepository(db),
	}
}

// reorganizationPlan is the validated set of writes for one run.
type reorganizationPlan struct {
	groups        []models.GbsGroup
	openLeaders   []models.GbsLeaderHistory
	openMembers   []models.GbsMemberHistory
	successors    []dto.GroupAssignment
	leadersToOpen int
	membersToOpen int
}

func (s *reorganizationService) Reorganize(ctx context.Context, req dto.ReorganizationRequest) (report *dto.ReorganizationReport, err error) {
	defer func() { recordReorganization(req.DryRun, err) }()

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return nil, invalidf("reorganization start and end dates are required")
	}
	start, end := utils.DateOf(req.StartDate), utils.DateOf(req.EndDate)
	if start.After(end) {
		return nil, invalidf("reorganization start %s is after end %s", utils.FormatDate(start), utils.FormatDate(end))
	}
	reorgID := uuid.NewString()
	logger.Infof("Reorganization %s: department id=%d window=%s..%s successors=%d dry_run=%v",
		reorgID, req.DepartmentID, utils.FormatDate(start), utils.FormatDate(end), len(req.Assignments), req.DryRun)

	tx := s.baseRepo.Begin(ctx)
	var txCommitted bool
	defer func() {
		if !txCommitted {
			tx.Rollback()
		}
	}()

	plan, err := s.plan(tx, req.DepartmentID, start, end, req.Assignments)
	if err != nil {
		logger.Warnf("Reorganization %s rejected: %v", reorgID, err)
		return nil, err
	}

	report = &dto.ReorganizationReport{
		ReorganizationID: reorgID,
		DepartmentID:     req.DepartmentID,
		StartDate:        start,
		EndDate:          end,
		DryRun:           req.DryRun,
		AffectedGroups:   len(plan.groups),
		LeadersClosed:    len(plan.openLeaders),
		MembersClosed:    len(plan.openMembers),
		LeadersAssigned:  plan.leadersToOpen,
		MembersAssigned:  plan.membersToOpen,
	}
	if req.DryRun {
		report.CompletedAt = time.Now().UTC()
		logger.Infof("Reorganization %s dry run: %d groups, %d leaders and %d members would close, %d leaders and %d members would open",
			reorgID, report.AffectedGroups, report.LeadersClosed, report.MembersClosed, report.LeadersAssigned, report.MembersAssigned)
		return report, nil
	}

	if err := s.apply(tx, plan, start); err != nil {
		logger.Errorf("Reorganization %s failed, rolling back: %v", reorgID, err)
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, writeError("reorganize", err, "failed to commit reorganization %s", reorgID)
	}
	txCommitted = true

	report.CompletedAt = time.Now().UTC()
	logger.Infof("Reorganization %s completed: %d groups, %d leaders and %d members closed, %d leaders and %d members opened",
		reorgID, report.AffectedGroups, report.LeadersClosed, report.MembersClosed, report.LeadersAssigned, report.MembersAssigned)
	return report, nil
}

// plan loads and locks everything the run touches and rejects the batch on the first violation.
func (s *reorganizationService) plan(tx *gorm.DB, departmentID uint, start, end time.Time, successors []dto.GroupAssignment) (*reorganizationPlan, error) {
	if _, err := s.deptRepo.GetByID(tx, departmentID); err != nil {
		return nil, lookupError(err, "department", departmentID)
	}
	groups, err := s.groupRepo.GetByDepartmentOverlapping(tx, departmentID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load groups of department id=%d: %w", departmentID, err)
	}
	inScope := make(map[uint]bool, len(groups))
	groupIDs := make([]uint, 0, len(groups))
	for _, g := range groups {
		inScope[g.ID] = true
		groupIDs = append(groupIDs, g.ID)
	}

	plan := &reorganizationPlan{groups: groups, successors: successors}
	seenGroups := make(map[uint]bool, len(successors))
	userIDs := make(map[uint]struct{})
	for _, a := range successors {
		if !inScope[a.GbsGroupID] {
			return nil, invalidf("group id=%d is not an active group of department id=%d in the window", a.GbsGroupID, departmentID)
		}
		if seenGroups[a.GbsGroupID] {
			return nil, invalidf("group id=%d appears more than once", a.GbsGroupID)
		}
		seenGroups[a.GbsGroupID] = true

		if a.LeaderID != nil {
			userIDs[*a.LeaderID] = struct{}{}
			plan.leadersToOpen++
		}
		seenMembers := make(map[uint]bool, len(a.MemberIDs))
		for _, m := range a.MemberIDs {
			if seenMembers[m] {
				return nil, invalidf("member id=%d is listed twice for group id=%d", m, a.GbsGroupID)
			}
			seenMembers[m] = true
			userIDs[m] = struct{}{}
		}
		plan.membersToOpen += len(a.MemberIDs)
	}

	wanted := idSet(userIDs)
	users, err := s.userRepo.GetByIDs(tx, wanted)
	if err != nil {
		return nil, fmt.Errorf("failed to load successor users: %w", err)
	}
	if len(users) != len(wanted) {
		found := make(map[uint]bool, len(users))
		for _, u := range users {
			found[u.ID] = true
		}
		for _, id := range wanted {
			if !found[id] {
				return nil, notFoundf("user id=%d", id)
			}
		}
	}

	plan.openLeaders, err = s.leaderRepo.LockOpenByGroupIDs(tx, groupIDs)
	if err != nil {
		return nil, writeError("reorganize", err, "failed to lock open leader rows")
	}
	for _, r := range plan.openLeaders {
		if !r.StartDate.Before(start) {
			return nil, conflictf("reorganize", "open leader row id=%d of group id=%d starts on %s, not before %s",
				r.ID, r.GbsGroupID, utils.FormatDate(r.StartDate), utils.FormatDate(start))
		}
	}
	plan.openMembers, err = s.memberRepo.LockOpenByGroupIDs(tx, groupIDs)
	if err != nil {
		return nil, writeError("reorganize", err, "failed to lock open member rows")
	}
	for _, r := range plan.openMembers {
		if !r.StartDate.Before(start) {
			return nil, conflictf("reorganize", "open member row id=%d of group id=%d starts on %s, not before %s",
				r.ID, r.GbsGroupID, utils.FormatDate(r.StartDate), utils.FormatDate(start))
		}
	}

	// closed rows reaching into the window would overlap a successor row
	for _, a := range successors {
		if a.LeaderID == nil {
			continue
		}
		rows, err := s.leaderRepo.LockByGroupID(tx, a.GbsGroupID)
		if err != nil {
			return nil, writeError("reorganize", err, "failed to lock leader rows of group id=%d", a.GbsGroupID)
		}
		for _, r := range rows {
			if !r.IsOpen() && !r.EndsBefore(start) {
				return nil, conflictf("reorganize", "leader row id=%d of group id=%d already covers %s",
					r.ID, a.GbsGroupID, utils.FormatDate(start))
			}
		}
	}
	for _, a := range successors {
		for _, m := range a.MemberIDs {
			rows, err := s.memberRepo.LockByGroupAndMember(tx, a.GbsGroupID, m)
			if err != nil {
				return nil, writeError("reorganize", err, "failed to lock member rows of user id=%d in group id=%d", m, a.GbsGroupID)
			}
			for _, r := range rows {
				if !r.IsOpen() && !r.EndsBefore(start) {
					return nil, conflictf("reorganize", "member row id=%d of user id=%d in group id=%d already covers %s",
						r.ID, m, a.GbsGroupID, utils.FormatDate(start))
				}
			}
		}
	}
	return plan, nil
}

func (s *reorganizationService) apply(tx *gorm.DB, plan *reorganizationPlan, start time.Time) error {
	closeOn := utils.AddDays(start, -1)
	for _, r := range plan.openLeaders {
		n, err := s.leaderRepo.Close(tx, r.ID, closeOn)
		if err != nil {
			return writeError("reorganize", err, "failed to close leader row id=%d", r.ID)
		}
		if n != 1 {
			return conflictf("reorganize", "leader row id=%d was closed concurrently", r.ID)
		}
	}
	for _, r := range plan.openMembers {
		n, err := s.memberRepo.Close(tx, r.ID, closeOn)
		if err != nil {
			return writeError("reorganize", err, "failed to close member row id=%d", r.ID)
		}
		if n != 1 {
			return conflictf("reorganize", "member row id=%d was closed concurrently", r.ID)
		}
	}

	for _, a := range plan.successors {
		if a.LeaderID != nil {
			row := &models.GbsLeaderHistory{
				GbsGroupID:    a.GbsGroupID,
				LeaderID:      *a.LeaderID,
				TemporalRange: models.NewTemporalRange(start, nil),
			}
			if err := s.leaderRepo.Create(tx, row); err != nil {
				return writeError("reorganize", err, "failed to open leader row for group id=%d", a.GbsGroupID)
			}
		}
		for _, m := range a.MemberIDs {
			row := &models.GbsMemberHistory{
				GbsGroupID:    a.GbsGroupID,
				MemberID:      m,
				TemporalRange: models.NewTemporalRange(start, nil),
			}
			if err := s.memberRepo.Create(tx, row); err != nil {
				return writeError("reorganize", err, "failed to open member row for group id=%d", a.GbsGroupID)
			}
		}
	}
	return nil
}
