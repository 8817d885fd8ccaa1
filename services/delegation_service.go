package services

import (
	"context"
	"fmt"
	"time"

	"gbsorgapi/models"
	"gbsorgapi/pkg/logger"
	"gbsorgapi/repository"
	"gbsorgapi/utils"

	"gorm.io/gorm"
)

// DelegationService grants and ends temporary group control. A delegation sits
// beside the primary leader assignment and never modifies it.
type DelegationService interface {
	// CreateDelegation grants delegateeID control of groupID from startDate (today or later)
	// until endDate, or indefinitely when endDate is nil. The delegator must control the group
	// on startDate, and the pair may not hold another delegation over overlapping dates.
	CreateDelegation(ctx context.Context, delegatorID, delegateeID, groupID uint, startDate time.Time, endDate *time.Time) (*models.LeaderDelegation, error)
	FindActiveDelegations(ctx context.Context, userID uint, date time.Time) ([]models.LeaderDelegation, error)
	ListGroupDelegations(ctx context.Context, groupID uint, date time.Time) ([]models.LeaderDelegation, error)
	GetDelegation(ctx context.Context, id uint) (*models.LeaderDelegation, error)
	// EndDelegation sets the end date, which may lie in the past but not before the start.
	// A delegation can only be shortened; extending one needs a new delegation.
	EndDelegation(ctx context.Context, id uint, endDate time.Time) (*models.LeaderDelegation, error)
}

type delegationService struct {
	baseRepo       repository.BaseRepository
	userRepo       repository.UserRepository
	groupRepo      repository.GbsGroupRepository
	delegationRepo repository.LeaderDelegationRepository
	resolver       *resolutionService
}

// NewDelegationService creates a delegation service backed by db.
func NewDelegationService(db *gorm.DB) DelegationService {
	return &delegationService{
		baseRepo:       repository.NewBaseRepository(db),
		userRepo:       repository.NewUserRepository(db),
		groupRepo:      repository.NewGbsGroupRepository(db),
		delegationRepo: repository.NewLeaderDelegationRepository(db),
		resolver:       newResolutionService(db),
	}
}

func (s *delegationService) CreateDelegation(ctx context.Context, delegatorID, delegateeID, groupID uint, startDate time.Time, endDate *time.Time) (*models.LeaderDelegation, error) {
	if startDate.IsZero() {
		return nil, invalidf("start date is required")
	}
	if delegatorID == delegateeID {
		return nil, invalidf("user id=%d cannot delegate to itself", delegatorID)
	}
	candidate := models.NewTemporalRange(startDate, endDate)
	if !candidate.IsValid() {
		return nil, invalidf("end date %s is before start date %s",
			utils.FormatDate(*candidate.EndDate), utils.FormatDate(candidate.StartDate))
	}
	if today := utils.Today(); candidate.StartDate.Before(today) {
		return nil, invalidf("start date %s is in the past", utils.FormatDate(candidate.StartDate))
	}

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
	if _, err := s.userRepo.GetByID(tx, delegatorID); err != nil {
		return nil, lookupError(err, "user", delegatorID)
	}
	if _, err := s.userRepo.GetByID(tx, delegateeID); err != nil {
		return nil, lookupError(err, "user", delegateeID)
	}

	ok, err := s.resolver.hasControl(tx, delegatorID, groupID, candidate.StartDate)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, forbiddenf("user id=%d does not control group id=%d on %s",
			delegatorID, groupID, utils.FormatDate(candidate.StartDate))
	}

	existing, err := s.delegationRepo.LockByDelegateeAndGroup(tx, delegateeID, groupID)
	if err != nil {
		return nil, writeError("create_delegation", err, "failed to lock delegations of user id=%d for group id=%d", delegateeID, groupID)
	}
	for _, d := range existing {
		if d.Overlaps(candidate) {
			return nil, conflictf("create_delegation", "user id=%d already holds delegation id=%d for group id=%d over overlapping dates",
				delegateeID, d.ID, groupID)
		}
	}

	delegation := &models.LeaderDelegation{
		DelegatorID:   delegatorID,
		DelegateeID:   delegateeID,
		GbsGroupID:    groupID,
		TemporalRange: candidate,
	}
	if err := s.delegationRepo.Create(tx, delegation); err != nil {
		return nil, writeError("create_delegation", err, "failed to create delegation")
	}
	if err := tx.Commit().Error; err != nil {
		return nil, writeError("create_delegation", err, "failed to commit delegation")
	}
	txCommitted = true

	recordMutation("create_delegation")
	logger.Infof("User id=%d delegated group id=%d to user id=%d from %s",
		delegatorID, groupID, delegateeID, utils.FormatDate(candidate.StartDate))
	return delegation, nil
}

func (s *delegationService) FindActiveDelegations(ctx context.Context, userID uint, date time.Time) ([]models.LeaderDelegation, error) {
	rows, err := s.delegationRepo.GetActiveByDelegateeID(s.baseRepo.Reader(ctx), userID, utils.DateOrToday(date))
	if err != nil {
		return nil, fmt.Errorf("failed to load delegations of user id=%d: %w", userID, err)
	}
	return rows, nil
}

func (s *delegationService) ListGroupDelegations(ctx context.Context, groupID uint, date time.Time) ([]models.LeaderDelegation, error) {
	db := s.baseRepo.Reader(ctx)
	if _, err := s.groupRepo.GetByID(db, groupID); err != nil {
		return nil, lookupError(err, "group", groupID)
	}
	rows, err := s.delegationRepo.GetActiveByGroupID(db, groupID, utils.DateOrToday(date))
	if err != nil {
		return nil, fmt.Errorf("failed to load delegations of group id=%d: %w", groupID, err)
	}
	return rows, nil
}

func (s *delegationService) GetDelegation(ctx context.Context, id uint) (*models.LeaderDelegation, error) {
	delegation, err := s.delegationRepo.GetByID(s.baseRepo.Reader(ctx), id)
	if err != nil {
		return nil, lookupError(err, "delegation", id)
	}
	return delegation, nil
}

func (s *delegationService) EndDelegation(ctx context.Context, id uint, endDate time.Time) (*models.LeaderDelegation, error) {
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

	found, err := s.delegationRepo.GetByID(tx, id)
	if err != nil {
		return nil, lookupError(err, "delegation", id)
	}
	// Re-read under the pair lock so a concurrent create or end sees a settled range.
	pair, err := s.delegationRepo.LockByDelegateeAndGroup(tx, found.DelegateeID, found.GbsGroupID)
	if err != nil {
		return nil, writeError("end_delegation", err, "failed to lock delegations of user id=%d for group id=%d",
			found.DelegateeID, found.GbsGroupID)
	}
	delegation := found
	for i := range pair {
		if pair[i].ID == id {
			delegation = &pair[i]
			break
		}
	}
	if end.Before(delegation.StartDate) {
		return nil, invalidf("end date %s is before the delegation start %s",
			utils.FormatDate(end), utils.FormatDate(delegation.StartDate))
	}
	if delegation.EndsBefore(end) {
		return nil, invalidf("delegation id=%d already ends on %s; it can be shortened but not extended",
			id, utils.FormatDate(*delegation.EndDate))
	}
	if err := s.delegationRepo.UpdateEndDate(tx, id, end); err != nil {
		return nil, writeError("end_delegation", err, "failed to end delegation id=%d", id)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, writeError("end_delegation", err, "failed to commit delegation end")
	}
	txCommitted = true

	recordMutation("end_delegation")
	logger.Infof("Delegation id=%d of group id=%d ends on %s", id, delegation.GbsGroupID, utils.FormatDate(end))
	delegation.TemporalRange = delegation.ClosedAt(end)
	return delegation, nil
}
