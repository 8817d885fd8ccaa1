package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gbsorgapi/models"
	"gbsorgapi/repository"
	"gbsorgapi/utils"

	"gorm.io/gorm"
)

// AccessService decides whether a user may act on a group, village or department.
// Department ADMIN/MINISTER roles and village leadership are structurally superior
// to group control; an unknown user is simply denied.
type AccessService interface {
	CanManageGroup(ctx context.Context, userID, groupID uint, date time.Time) (bool, error)
	CanAccessVillage(ctx context.Context, userID, villageID uint, date time.Time) (bool, error)
	CanAccessDepartment(ctx context.Context, userID, departmentID uint) (bool, error)
}

type accessService struct {
	baseRepo       repository.BaseRepository
	userRepo       repository.UserRepository
	groupRepo      repository.GbsGroupRepository
	villageRepo    repository.VillageRepository
	villageLdrRepo repository.VillageLeaderRepository
	resolver       *resolutionService
}

// NewAccessService creates an access service backed by db.
func NewAccessService(db *gorm.DB) AccessService {
	return &accessService{
		baseRepo:       repository.NewBaseRepository(db),
		userRepo:       repository.NewUserRepository(db),
		groupRepo:      repository.NewGbsGroupRepository(db),
		villageRepo:    repository.NewVillageRepository(db),
		villageLdrRepo: repository.NewVillageLeaderRepository(db),
		resolver:       newResolutionService(db),
	}
}

func (s *accessService) CanManageGroup(ctx context.Context, userID, groupID uint, date time.Time) (bool, error) {
	db := s.baseRepo.Reader(ctx)
	date = utils.DateOrToday(date)

	group, err := s.groupRepo.GetByID(db, groupID)
	if err != nil {
		return false, lookupError(err, "group", groupID)
	}
	ok, err := s.resolver.hasControl(db, userID, groupID, date)
	if err != nil || ok {
		return ok, err
	}
	return s.canAccessVillage(db, userID, group.VillageID, date)
}

func (s *accessService) CanAccessVillage(ctx context.Context, userID, villageID uint, date time.Time) (bool, error) {
	return s.canAccessVillage(s.baseRepo.Reader(ctx), userID, villageID, utils.DateOrToday(date))
}

func (s *accessService) CanAccessDepartment(ctx context.Context, userID, departmentID uint) (bool, error) {
	user, found, err := s.user(s.baseRepo.Reader(ctx), userID)
	if err != nil || !found {
		return false, err
	}
	return user.IsDepartmentStaff(departmentID), nil
}

func (s *accessService) canAccessVillage(db *gorm.DB, userID, villageID uint, date time.Time) (bool, error) {
	village, err := s.villageRepo.GetByID(db, villageID)
	if err != nil {
		return false, lookupError(err, "village", villageID)
	}
	user, found, err := s.user(db, userID)
	if err != nil || !found {
		return false, err
	}
	if user.IsDepartmentStaff(village.DepartmentID) {
		return true, nil
	}
	rows, err := s.villageLdrRepo.GetActiveByUserID(db, userID, date)
	if err != nil {
		return false, fmt.Errorf("failed to resolve village leadership of user id=%d: %w", userID, err)
	}
	for _, r := range rows {
		if r.VillageID == villageID {
			return true, nil
		}
	}
	return false, nil
}

func (s *accessService) user(db *gorm.DB, userID uint) (*models.User, bool, error) {
	user, err := s.userRepo.GetByID(db, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to load user id=%d: %w", userID, err)
	}
	return user, true, nil
}
