package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"gbsorgapi/models"
	"gbsorgapi/pkg/logger"
	"gbsorgapi/repository"
	"gbsorgapi/services/dto"
	"gbsorgapi/utils"

	"gorm.io/gorm"
)

// ResolutionService answers "who holds what" for a scope on a given date.
// A zero date means today. Absence is reported through the found flag or an
// empty slice, never as an error.
type ResolutionService interface {
	ActiveLeaderOf(ctx context.Context, groupID uint, date time.Time) (*models.User, bool, error)
	// ActiveMembersOf returns the group's members on date ordered by name, then id.
	ActiveMembersOf(ctx context.Context, groupID uint, date time.Time) ([]models.User, error)
	ActiveVillageLeaderOf(ctx context.Context, villageID uint, date time.Time) (*models.User, bool, error)
	// EffectiveLeadersOf returns the sorted ids of the primary leader and every active delegatee.
	EffectiveLeadersOf(ctx context.Context, groupID uint, date time.Time) ([]uint, error)
	HasControl(ctx context.Context, userID, groupID uint, date time.Time) (bool, error)
	// CurrentAssignmentOf returns the leader row the user holds on date.
	CurrentAssignmentOf(ctx context.Context, userID uint, date time.Time) (*models.GbsLeaderHistory, bool, error)
	// GroupLeaderHistory returns every leader row of the group, newest start first.
	GroupLeaderHistory(ctx context.Context, groupID uint) ([]models.GbsLeaderHistory, error)
	// HistoryOf returns every leader and member row of the user, newest start first.
	HistoryOf(ctx context.Context, userID uint) ([]dto.AssignmentRecord, error)
	// AccessibleGroupsOf returns the groups the user leads or holds a delegation for on date.
	AccessibleGroupsOf(ctx context.Context, userID uint, date time.Time) (*dto.AccessSet, error)
}

type resolutionService struct {
	baseRepo       repository.BaseRepository
	userRepo       repository.UserRepository
	leaderRepo     repository.GbsLeaderHistoryRepository
	memberRepo     repository.GbsMemberHistoryRepository
	villageLdrRepo repository.VillageLeaderRepository
	delegationRepo repository.LeaderDelegationRepository
}

// NewResolutionService creates a resolution service backed by db.
func NewResolutionService(db *gorm.DB) ResolutionService {
	return newResolutionService(db)
}

func newResolutionService(db *gorm.DB) *resolutionService {
	return &resolutionService{
		baseRepo:       repository.NewBaseRepository(db),
		userRepo:       repository.NewUserRepository(db),
		leaderRepo:     repository.NewGbsLeaderHistoryRepository(db),
		memberRepo:     repository.NewGbsMemberHistoryRepository(db),
		villageLdrRepo: repository.NewVillageLeaderRepository(db),
		delegationRepo: repository.NewLeaderDelegationRepository(db),
	}
}

func (s *resolutionService) ActiveLeaderOf(ctx context.Context, groupID uint, date time.Time) (*models.User, bool, error) {
	db := s.baseRepo.Reader(ctx)
	row, found, err := s.activeLeaderRow(db, groupID, utils.DateOrToday(date))
	if err != nil || !found {
		return nil, false, err
	}
	return s.userOf(db, row.LeaderID)
}

func (s *resolutionService) ActiveMembersOf(ctx context.Context, groupID uint, date time.Time) ([]models.User, error) {
	members, err := s.memberRepo.GetActiveMembers(s.baseRepo.Reader(ctx), groupID, utils.DateOrToday(date))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve members of group id=%d: %w", groupID, err)
	}
	return members, nil
}

func (s *resolutionService) ActiveVillageLeaderOf(ctx context.Context, villageID uint, date time.Time) (*models.User, bool, error) {
	db := s.baseRepo.Reader(ctx)
	rows, err := s.villageLdrRepo.GetActiveByVillageID(db, villageID, utils.DateOrToday(date))
	if err != nil {
		return nil, false, fmt.Errorf("failed to resolve leader of village id=%d: %w", villageID, err)
	}
	if len(rows) == 0 {
		return nil, false, nil
	}
	if len(rows) > 1 {
		logger.Warnf("Village id=%d has %d leaders active on %s, using user id=%d",
			villageID, len(rows), utils.FormatDate(utils.DateOrToday(date)), rows[0].UserID)
	}
	return s.userOf(db, rows[0].UserID)
}

func (s *resolutionService) EffectiveLeadersOf(ctx context.Context, groupID uint, date time.Time) ([]uint, error) {
	return s.effectiveLeaders(s.baseRepo.Reader(ctx), groupID, utils.DateOrToday(date))
}

func (s *resolutionService) HasControl(ctx context.Context, userID, groupID uint, date time.Time) (bool, error) {
	return s.hasControl(s.baseRepo.Reader(ctx), userID, groupID, utils.DateOrToday(date))
}

func (s *resolutionService) CurrentAssignmentOf(ctx context.Context, userID uint, date time.Time) (*models.GbsLeaderHistory, bool, error) {
	rows, err := s.leaderRepo.GetActiveByLeaderID(s.baseRepo.Reader(ctx), userID, utils.DateOrToday(date))
	if err != nil {
		return nil, false, fmt.Errorf("failed to resolve assignment of user id=%d: %w", userID, err)
	}
	if len(rows) == 0 {
		return nil, false, nil
	}
	return &rows[0], true, nil
}

func (s *resolutionService) GroupLeaderHistory(ctx context.Context, groupID uint) ([]models.GbsLeaderHistory, error) {
	rows, err := s.leaderRepo.GetByGroupID(s.baseRepo.Reader(ctx), groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to load leader history of group id=%d: %w", groupID, err)
	}
	return rows, nil
}

func (s *resolutionService) HistoryOf(ctx context.Context, userID uint) ([]dto.AssignmentRecord, error) {
	db := s.baseRepo.Reader(ctx)
	leaderRows, err := s.leaderRepo.GetByLeaderID(db, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load leader history of user id=%d: %w", userID, err)
	}
	memberRows, err := s.memberRepo.GetByMemberID(db, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load member history of user id=%d: %w", userID, err)
	}

	records := make([]dto.AssignmentRecord, 0, len(leaderRows)+len(memberRows))
	for _, r := range leaderRows {
		records = append(records, dto.AssignmentRecord{
			Kind: dto.AssignmentLeader, HistoryID: r.ID, GbsGroupID: r.GbsGroupID, TemporalRange: r.TemporalRange,
		})
	}
	for _, r := range memberRows {
		records = append(records, dto.AssignmentRecord{
			Kind: dto.AssignmentMember, HistoryID: r.ID, GbsGroupID: r.GbsGroupID, TemporalRange: r.TemporalRange,
		})
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].StartDate.After(records[j].StartDate)
	})
	return records, nil
}

func (s *resolutionService) AccessibleGroupsOf(ctx context.Context, userID uint, date time.Time) (*dto.AccessSet, error) {
	db := s.baseRepo.Reader(ctx)
	date = utils.DateOrToday(date)

	leaderRows, err := s.leaderRepo.GetActiveByLeaderID(db, userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve led groups of user id=%d: %w", userID, err)
	}
	delegations, err := s.delegationRepo.GetActiveByDelegateeID(db, userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve delegations of user id=%d: %w", userID, err)
	}

	set := &dto.AccessSet{UserID: userID, LeaderOf: []uint{}, DelegatedFrom: []uint{}}
	all := make(map[uint]struct{})
	for _, r := range leaderRows {
		set.LeaderOf = append(set.LeaderOf, r.GbsGroupID)
		all[r.GbsGroupID] = struct{}{}
	}
	for _, d := range delegations {
		set.DelegatedFrom = append(set.DelegatedFrom, d.GbsGroupID)
		all[d.GbsGroupID] = struct{}{}
	}
	set.LeaderOf = sortedIDs(set.LeaderOf)
	set.DelegatedFrom = sortedIDs(set.DelegatedFrom)
	set.GroupIDs = idSet(all)
	return set, nil
}

// activeLeaderRow returns the leader row containing date. More than one hit
// means the single-open-row invariant was broken outside this service.
func (s *resolutionService) activeLeaderRow(db *gorm.DB, groupID uint, date time.Time) (*models.GbsLeaderHistory, bool, error) {
	rows, err := s.leaderRepo.GetActiveByGroupID(db, groupID, date)
	if err != nil {
		return nil, false, fmt.Errorf("failed to resolve leader of group id=%d: %w", groupID, err)
	}
	if len(rows) == 0 {
		return nil, false, nil
	}
	if len(rows) > 1 {
		logger.Warnf("Group id=%d has %d leader rows containing %s, using history id=%d",
			groupID, len(rows), utils.FormatDate(date), rows[0].ID)
	}
	return &rows[0], true, nil
}

func (s *resolutionService) effectiveLeaders(db *gorm.DB, groupID uint, date time.Time) ([]uint, error) {
	ids := make(map[uint]struct{})
	row, found, err := s.activeLeaderRow(db, groupID, date)
	if err != nil {
		return nil, err
	}
	if found {
		ids[row.LeaderID] = struct{}{}
	}
	delegations, err := s.delegationRepo.GetActiveByGroupID(db, groupID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve delegations of group id=%d: %w", groupID, err)
	}
	for _, d := range delegations {
		ids[d.DelegateeID] = struct{}{}
	}
	return idSet(ids), nil
}

func (s *resolutionService) hasControl(db *gorm.DB, userID, groupID uint, date time.Time) (bool, error) {
	leaders, err := s.effectiveLeaders(db, groupID, date)
	if err != nil {
		return false, err
	}
	for _, id := range leaders {
		if id == userID {
			return true, nil
		}
	}
	return false, nil
}

func (s *resolutionService) userOf(db *gorm.DB, userID uint) (*models.User, bool, error) {
	user, err := s.userRepo.GetByID(db, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warnf("Assignment references missing user id=%d", userID)
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to load user id=%d: %w", userID, err)
	}
	return user, true, nil
}

func idSet(m map[uint]struct{}) []uint {
	ids := make([]uint, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func sortedIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	return idSet(seen)
}
