package services

import (
	"context"
	"time"

	"gbsorgapi/models"
	"gbsorgapi/pkg/logger"
	"gbsorgapi/repository"
	"gbsorgapi/utils"

	"gorm.io/gorm"
)

// AssignmentService mutates the leader, member and village-leader histories.
// Every operation runs in one transaction and either applies completely or not at all.
type AssignmentService interface {
	// AssignLeader closes the group's open leader row on startDate-1 and opens a row for leaderID.
	// Backdated starts are allowed as long as no existing row reaches startDate.
	AssignLeader(ctx context.Context, groupID, leaderID uint, startDate time.Time) (*models.GbsLeaderHistory, error)
	// TerminateLeader closes the group's open leader row on endDate.
	TerminateLeader(ctx context.Context, groupID uint, endDate time.Time) (*models.GbsLeaderHistory, error)
	AssignMember(ctx context.Context, groupID, memberID uint, startDate time.Time) (*models.GbsMemberHistory, error)
	RemoveMember(ctx context.Context, groupID, memberID uint, endDate time.Time) (*models.GbsMemberHistory, error)
	// AssignVillageLeader makes userID the village leader from startDate, closing the current
	// leader's row on startDate-1. Rows are keyed by (user, village), so a returning leader's
	// earlier row is reopened with the new start and that earlier tenure no longer resolves.
	AssignVillageLeader(ctx context.Context, userID, villageID uint, startDate time.Time) (*models.VillageLeader, error)
	TerminateVillageLeader(ctx context.Context, villageID uint, endDate time.Time) (*models.VillageLeader, error)
}

type assignmentService struct {
	baseRepo       repository.BaseRepository
	userRepo       repository.UserRepository
	groupRepo      repository.GbsGroupRepository
	villageRepo    repository.VillageRepository
	leaderRepo     repository.GbsLeaderHistoryRepository
	memberRepo     repository.GbsMemberHistoryRepository
	villageLdrRepo repository.VillageLeaderRepository
}

// NewAssignmentService creates an assignment service backed by db.
func NewAssignmentService(db *gorm.DB) AssignmentService {
	return &assignmentService{
		baseRepo:       repository.NewBaseRepository(db),
		userRepo:       repository.NewUserRepository(db),
		groupRepo:      repository.NewGbsGroupRepository(db),
		villageRepo:    repository.NewVillageRepository(db),
		leaderRepo:     repository.NewGbsLeaderHistoryRepository(db),
		memberRepo:     repository.NewGbsMemberHistoryRepository(db),
		villageLdrRepo: repository.NewVillageLeaderRepository(db),
	}
}

func (s *assignmentService) AssignLeader(ctx context.Context, groupID, leaderID uint, startDate time.Time) (*models.GbsLeaderHistory, error) {
	if startDate.IsZero() {
		return nil, invalidf("start date is required")
	}
	start := utils.DateOf(startDate)

	tx := s.baseRepo.Begin(ctx)
	var txCommitted bool
	defer func() {
		if !txCommitted {
			tx.Rollback()
		}
	}()

	group, err := s.groupRepo.GetByID(tx, groupID)
	if err != nil {
		return nil, lookupError(err, "group", groupID)
	}
	if _, err := s.userRepo.GetByID(tx, leaderID); err != nil {
		return nil, lookupError(err, "user", leaderID)
	}
	if start.After(group.TermEnd) {
		return nil, invalidf("start date %s is after the term end %s of group id=%d",
			utils.FormatDate(start), utils.FormatDate(group.TermEnd), groupID)
	}

	rows, err := s.leaderRepo.LockByGroupID(tx, groupID)
	if err != nil {
		return nil, writeError("assign_leader", err, "failed to lock leader rows of group id=%d", groupID)
	}

	var open *models.GbsLeaderHistory
	for i := range rows {
		row := rows[i]
		if row.IsOpen() {
			if row.LeaderID == leaderID {
				return nil, conflictf("assign_leader", "user id=%d already leads group id=%d since %s",
					leaderID, groupID, utils.FormatDate(row.StartDate))
			}
			if !row.StartDate.Before(start) {
				return nil, conflictf("assign_leader", "open leader row id=%d of group id=%d starts on %s, not before %s",
					row.ID, groupID, utils.FormatDate(row.StartDate), utils.FormatDate(start))
			}
			open = &rows[i]
			continue
		}
		if !row.EndsBefore(start) {
			return nil, conflictf("assign_leader", "leader row id=%d of group id=%d already covers %s",
				row.ID, groupID, utils.FormatDate(start))
		}
	}

	if open != nil {
		n, err := s.leaderRepo.Close(tx, open.ID, utils.AddDays(start, -1))
		if err != nil {
			return nil, writeError("assign_leader", err, "failed to close leader row id=%d", open.ID)
		}
		if n != 1 {
			return nil, conflictf("assign_leader", "leader row id=%d of group id=%d was closed concurrently", open.ID, groupID)
		}
	}

	row := &models.GbsLeaderHistory{
		GbsGroupID:    groupID,
		LeaderID:      leaderID,
		TemporalRange: models.NewTemporalRange(start, nil),
	}
	if err := s.leaderRepo.Create(tx, row); err != nil {
		return nil, writeError("assign_leader", err, "failed to create leader row for group id=%d", groupID)
	}

	count, err := s.leaderRepo.CountOpenByGroupID(tx, groupID)
	if err != nil {
		return nil, writeError("assign_leader", err, "failed to count open leader rows of group id=%d", groupID)
	}
	if count > 1 {
		return nil, conflictf("assign_leader", "group id=%d would have %d open leader rows", groupID, count)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, writeError("assign_leader", err, "failed to commit leader assignment")
	}
	txCommitted = true

	recordMutation("assign_leader")
	if open != nil {
		logger.Infof("Leader of group id=%d changed from user id=%d to user id=%d on %s",
			groupID, open.LeaderID, leaderID, utils.FormatDate(start))
	} else {
		logger.Infof("User id=%d assigned as leader of group id=%d from %s", leaderID, groupID, utils.FormatDate(start))
	}
	return row, nil
}

func (s *assignmentService) TerminateLeader(ctx context.Context, groupID uint, endDate time.Time) (*models.GbsLeaderHistory, error) {
	if endDate.IsZero() {
		return nil, invalidf("end date is required")
	}
	end := utils.DateOf(endDate)

	tx := s.baseRepo.Begin(ctx)
	var txCommitted bool
	defer func() {
		if !txCommitted {
			tx.Rollback()
		}
	}()

	if _, err := s.groupRepo.GetByID(tx, groupID); err != nil {
		return nil, lookupError(err, "group", groupID)
	}
	rows, err := s.leaderRepo.LockByGroupID(tx, groupID)
	if err != nil {
		return nil, writeError("terminate_leader", err, "failed to lock leader rows of group id=%d", groupID)
	}
	var open *models.GbsLeaderHistory
	for i := range rows {
		if rows[i].IsOpen() {
			open = &rows[i]
			break
		}
	}
	if open == nil {
		return nil, notFoundf("group id=%d has no open leader assignment", groupID)
	}
	if end.Before(open.StartDate) {
		return nil, invalidf("end date %s is before the assignment start %s",
			utils.FormatDate(end), utils.FormatDate(open.StartDate))
	}

	n, err := s.leaderRepo.Close(tx, open.ID, end)
	if err != nil {
		return nil, writeError("terminate_leader", err, "failed to close leader row id=%d", open.ID)
	}
	if n != 1 {
		return nil, conflictf("terminate_leader", "leader row id=%d of group id=%d was closed concurrently", open.ID, groupID)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, writeError("terminate_leader", err, "failed to commit leader termination")
	}
	txCommitted = true

	recordMutation("terminate_leader")
	logger.Infof("Leader user id=%d of group id=%d terminated on %s", open.LeaderID, groupID, utils.FormatDate(end))
	open.TemporalRange = open.ClosedAt(end)
	return open, nil
}

func (s *assignmentService) AssignMember(ctx context.Context, groupID, memberID uint, startDate time.Time) (*models.GbsMemberHistory, error) {
	if startDate.IsZero() {
		return nil, invalidf("start date is required")
	}
	start := utils.DateOf(startDate)

	tx := s.baseRepo.Begin(ctx)
	var txCommitted bool
	defer func() {
		if !txCommitted {
			tx.Rollback()
		}
	}()

	group, err := s.groupRepo.GetByID(tx, groupID)
	if err != nil {
		return nil, lookupError(err, "group", groupID)
	}
	if _, err := s.userRepo.GetByID(tx, memberID); err != nil {
		return nil, lookupError(err, "user", memberID)
	}
	if start.After(group.TermEnd) {
		return nil, invalidf("start date %s is after the term end %s of group id=%d",
			utils.FormatDate(start), utils.FormatDate(group.TermEnd), groupID)
	}

	rows, err := s.memberRepo.LockByGroupAndMember(tx, groupID, memberID)
	if err != nil {
		return nil, writeError("assign_member", err, "failed to lock member rows of group id=%d", groupID)
	}
	candidate := models.NewTemporalRange(start, nil)
	for _, row := range rows {
		if row.Overlaps(candidate) {
			return nil, conflictf("assign_member", "user id=%d is already a member of group id=%d on or after %s (row id=%d)",
				memberID, groupID, utils.FormatDate(start), row.ID)
		}
	}

	row := &models.GbsMemberHistory{GbsGroupID: groupID, MemberID: memberID, TemporalRange: candidate}
	if err := s.memberRepo.Create(tx, row); err != nil {
		return nil, writeError("assign_member", err, "failed to create member row for group id=%d", groupID)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, writeError("assign_member", err, "failed to commit member assignment")
	}
	txCommitted = true

	recordMutation("assign_member")
	logger.Infof("User id=%d joined group id=%d from %s", memberID, groupID, utils.FormatDate(start))
	return row, nil
}

func (s *assignmentService) RemoveMember(ctx context.Context, groupID, memberID uint, endDate time.Time) (*models.GbsMemberHistory, error) {
	if endDate.IsZero() {
		return nil, invalidf("end date is required")
	}
	end := utils.DateOf(endDate)

	tx := s.baseRepo.Begin(ctx)
	var txCommitted bool
	defer func() {
		if !txCommitted {
			tx.Rollback()
		}
	}()

	if _, err := s.groupRepo.GetByID(tx, groupID); err != nil {
		return nil, lookupError(err, "group", groupID)
	}
	rows, err := s.memberRepo.LockByGroupAndMember(tx, groupID, memberID)
	if err != nil {
		return nil, writeError("remove_member", err, "failed to lock member rows of group id=%d", groupID)
	}
	var open *models.GbsMemberHistory
	for i := range rows {
		if rows[i].IsOpen() {
			open = &rows[i]
			break
		}
	}
	if open == nil {
		return nil, notFoundf("user id=%d has no open membership in group id=%d", memberID, groupID)
	}
	if end.Before(open.StartDate) {
		return nil, invalidf("end date %s is before the membership start %s",
			utils.FormatDate(end), utils.FormatDate(open.StartDate))
	}

	n, err := s.memberRepo.Close(tx, open.ID, end)
	if err != nil {
		return nil, writeError("remove_member", err, "failed to close member row id=%d", open.ID)
	}
	if n != 1 {
		return nil, conflictf("remove_member", "member row id=%d was closed concurrently", open.ID)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, writeError("remove_member", err, "failed to commit member removal")
	}
	txCommitted = true

	recordMutation("remove_member")
	logger.Infof("User id=%d left group id=%d on %s", memberID, groupID, utils.FormatDate(end))
	open.TemporalRange = open.ClosedAt(end)
	return open, nil
}

func (s *assignmentService) AssignVillageLeader(ctx context.Context, userID, villageID uint, startDate time.Time) (*models.VillageLeader, error) {
	if startDate.IsZero() {
		return nil, invalidf("start date is required")
	}
	start := utils.DateOf(startDate)

	tx := s.baseRepo.Begin(ctx)
	var txCommitted bool
	defer func() {
		if !txCommitted {
			tx.Rollback()
		}
	}()

	if _, err := s.villageRepo.GetByID(tx, villageID); err != nil {
		return nil, lookupError(err, "village", villageID)
	}
	if _, err := s.userRepo.GetByID(tx, userID); err != nil {
		return nil, lookupError(err, "user", userID)
	}

	rows, err := s.villageLdrRepo.LockByVillageID(tx, villageID)
	if err != nil {
		return nil, writeError("assign_village_leader", err, "failed to lock leader rows of village id=%d", villageID)
	}
	var open *models.VillageLeader
	var previous *models.VillageLeader
	for i := range rows {
		row := rows[i]
		if row.UserID == userID {
			previous = &rows[i]
		}
		if row.IsOpen() {
			if row.UserID == userID {
				return nil, conflictf("assign_village_leader", "user id=%d already leads village id=%d since %s",
					userID, villageID, utils.FormatDate(row.StartDate))
			}
			if !row.StartDate.Before(start) {
				return nil, conflictf("assign_village_leader", "open leader row of village id=%d starts on %s, not before %s",
					villageID, utils.FormatDate(row.StartDate), utils.FormatDate(start))
			}
			open = &rows[i]
			continue
		}
		if !row.EndsBefore(start) {
			return nil, conflictf("assign_village_leader", "leader row of user id=%d for village id=%d already covers %s",
				row.UserID, villageID, utils.FormatDate(start))
		}
	}

	if open != nil {
		n, err := s.villageLdrRepo.Close(tx, open.UserID, villageID, utils.AddDays(start, -1))
		if err != nil {
			return nil, writeError("assign_village_leader", err, "failed to close leader row of village id=%d", villageID)
		}
		if n != 1 {
			return nil, conflictf("assign_village_leader", "leader row of village id=%d was closed concurrently", villageID)
		}
	}

	row := &models.VillageLeader{UserID: userID, VillageID: villageID, TemporalRange: models.NewTemporalRange(start, nil)}
	if previous != nil {
		// one row per (user, village): a returning leader gets the old row back with the new start
		if _, err := s.villageLdrRepo.Reopen(tx, userID, villageID, start); err != nil {
			return nil, writeError("assign_village_leader", err, "failed to reopen leader row of user id=%d for village id=%d", userID, villageID)
		}
		row.CreatedAt = previous.CreatedAt
	} else if err := s.villageLdrRepo.Create(tx, row); err != nil {
		return nil, writeError("assign_village_leader", err, "failed to create leader row for village id=%d", villageID)
	}

	count, err := s.villageLdrRepo.CountOpenByVillageID(tx, villageID)
	if err != nil {
		return nil, writeError("assign_village_leader", err, "failed to count open leader rows of village id=%d", villageID)
	}
	if count > 1 {
		return nil, conflictf("assign_village_leader", "village id=%d would have %d open leader rows", villageID, count)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, writeError("assign_village_leader", err, "failed to commit village leader assignment")
	}
	txCommitted = true

	recordMutation("assign_village_leader")
	logger.Infof("User id=%d assigned as leader of village id=%d from %s", userID, villageID, utils.FormatDate(start))
	return row, nil
}

func (s *assignmentService) TerminateVillageLeader(ctx context.Context, villageID uint, endDate time.Time) (*models.VillageLeader, error) {
	if endDate.IsZero() {
		return nil, invalidf("end date is required")
	}
	end := utils.DateOf(endDate)

	tx := s.baseRepo.Begin(ctx)
	var txCommitted bool
	defer func() {
		if !txCommitted {
			tx.Rollback()
		}
	}()

	if _, err := s.villageRepo.GetByID(tx, villageID); err != nil {
		return nil, lookupError(err, "village", villageID)
	}
	rows, err := s.villageLdrRepo.LockByVillageID(tx, villageID)
	if err != nil {
		return nil, writeError("terminate_village_leader", err, "failed to lock leader rows of village id=%d", villageID)
	}
	var open *models.VillageLeader
	for i := range rows {
		if rows[i].IsOpen() {
			open = &rows[i]
			break
		}
	}
	if open == nil {
		return nil, notFoundf("village id=%d has no open leader assignment", villageID)
	}
	if end.Before(open.StartDate) {
		return nil, invalidf("end date %s is before the assignment start %s",
			utils.FormatDate(end), utils.FormatDate(open.StartDate))
	}

	n, err := s.villageLdrRepo.Close(tx, open.UserID, villageID, end)
	if err != nil {
		return nil, writeError("terminate_village_leader", err, "failed to close leader row of village id=%d", villageID)
	}
	if n != 1 {
		return nil, conflictf("terminate_village_leader", "leader row of village id=%d was closed concurrently", villageID)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, writeError("terminate_village_leader", err, "failed to commit village leader termination")
	}
	txCommitted = true

	recordMutation("terminate_village_leader")
	logger.Infof("Leader user id=%d of village id=%d terminated on %s", open.UserID, villageID, utils.FormatDate(end))
	open.TemporalRange = open.ClosedAt(end)
	return open, nil
}
