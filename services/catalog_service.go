package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gbsorgapi/models"
	"gbsorgapi/pkg/logger"
	"gbsorgapi/repository"
	"gbsorgapi/utils"

	"gorm.io/gorm"
)

// CatalogService manages the reference entities of the organization:
// departments, villages, GBS groups and users.
type CatalogService interface {
	CreateDepartment(ctx context.Context, name string) (*models.Department, error)
	ListDepartments(ctx context.Context) ([]models.Department, error)
	GetDepartment(ctx context.Context, id uint) (*models.Department, error)

	CreateVillage(ctx context.Context, departmentID uint, name string) (*models.Village, error)
	ListVillages(ctx context.Context, departmentID uint) ([]models.Village, error)
	GetVillage(ctx context.Context, id uint) (*models.Village, error)

	// CreateGroup registers a GBS group with a fixed term; termStart must not be after termEnd.
	CreateGroup(ctx context.Context, villageID uint, name string, termStart, termEnd time.Time) (*models.GbsGroup, error)
	// ListGroups returns every group of the village, or only those active on date when date is set.
	ListGroups(ctx context.Context, villageID uint, date *time.Time) ([]models.GbsGroup, error)
	GetGroup(ctx context.Context, id uint) (*models.GbsGroup, error)

	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	GetUser(ctx context.Context, id uint) (*models.User, error)
}

type catalogService struct {
	baseRepo    repository.BaseRepository
	deptRepo    repository.DepartmentRepository
	villageRepo repository.VillageRepository
	groupRepo   repository.GbsGroupRepository
	userRepo    repository.UserRepository
}

// NewCatalogService creates a catalog service backed by db.
func NewCatalogService(db *gorm.DB) CatalogService {
	return &catalogService{
		baseRepo:    repository.NewBaseRepository(db),
		deptRepo:    repository.NewDepartmentRepository(db),
		villageRepo: repository.NewVillageRepository(db),
		groupRepo:   repository.NewGbsGroupRepository(db),
		userRepo:    repository.NewUserRepository(db),
	}
}

func (s *catalogService) CreateDepartment(ctx context.Context, name string) (*models.Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidf("department name is required")
	}
	dept := &models.Department{Name: name}
	if err := s.deptRepo.Create(s.baseRepo.Reader(ctx), dept); err != nil {
		return nil, fmt.Errorf("failed to create department %q: %w", name, err)
	}
	logger.Infof("Created department id=%d name=%s", dept.ID, dept.Name)
	return dept, nil
}

func (s *catalogService) ListDepartments(ctx context.Context) ([]models.Department, error) {
	return s.deptRepo.GetAll(s.baseRepo.Reader(ctx))
}

func (s *catalogService) GetDepartment(ctx context.Context, id uint) (*models.Department, error) {
	dept, err := s.deptRepo.GetByID(s.baseRepo.Reader(ctx), id)
	if err != nil {
		return nil, lookupError(err, "department", id)
	}
	return dept, nil
}

func (s *catalogService) CreateVillage(ctx context.Context, departmentID uint, name string) (*models.Village, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidf("village name is required")
	}
	db := s.baseRepo.Reader(ctx)
	if _, err := s.deptRepo.GetByID(db, departmentID); err != nil {
		return nil, lookupError(err, "department", departmentID)
	}
	village := &models.Village{Name: name, DepartmentID: departmentID}
	if err := s.villageRepo.Create(db, village); err != nil {
		return nil, fmt.Errorf("failed to create village %q: %w", name, err)
	}
	logger.Infof("Created village id=%d name=%s department=%d", village.ID, village.Name, departmentID)
	return village, nil
}

func (s *catalogService) ListVillages(ctx context.Context, departmentID uint) ([]models.Village, error) {
	db := s.baseRepo.Reader(ctx)
	if _, err := s.deptRepo.GetByID(db, departmentID); err != nil {
		return nil, lookupError(err, "department", departmentID)
	}
	return s.villageRepo.GetByDepartmentID(db, departmentID)
}

func (s *catalogService) GetVillage(ctx context.Context, id uint) (*models.Village, error) {
	village, err := s.villageRepo.GetByID(s.baseRepo.Reader(ctx), id)
	if err != nil {
		return nil, lookupError(err, "village", id)
	}
	return village, nil
}

func (s *catalogService) CreateGroup(ctx context.Context, villageID uint, name string, termStart, termEnd time.Time) (*models.GbsGroup, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidf("group name is required")
	}
	if termStart.IsZero() || termEnd.IsZero() {
		return nil, invalidf("group term start and end are required")
	}
	termStart, termEnd = utils.DateOf(termStart), utils.DateOf(termEnd)
	if termStart.After(termEnd) {
		return nil, invalidf("term start %s is after term end %s", utils.FormatDate(termStart), utils.FormatDate(termEnd))
	}

	db := s.baseRepo.Reader(ctx)
	if _, err := s.villageRepo.GetByID(db, villageID); err != nil {
		return nil, lookupError(err, "village", villageID)
	}
	group := &models.GbsGroup{Name: name, VillageID: villageID, TermStart: termStart, TermEnd: termEnd}
	if err := s.groupRepo.Create(db, group); err != nil {
		return nil, fmt.Errorf("failed to create group %q: %w", name, err)
	}
	logger.Infof("Created GBS group id=%d name=%s village=%d term=%s..%s",
		group.ID, group.Name, villageID, utils.FormatDate(termStart), utils.FormatDate(termEnd))
	return group, nil
}

func (s *catalogService) ListGroups(ctx context.Context, villageID uint, date *time.Time) ([]models.GbsGroup, error) {
	db := s.baseRepo.Reader(ctx)
	if _, err := s.villageRepo.GetByID(db, villageID); err != nil {
		return nil, lookupError(err, "village", villageID)
	}
	if date == nil {
		return s.groupRepo.GetByVillageID(db, villageID)
	}
	return s.groupRepo.GetActiveByVillageID(db, villageID, utils.DateOf(*date))
}

func (s *catalogService) GetGroup(ctx context.Context, id uint) (*models.GbsGroup, error) {
	group, err := s.groupRepo.GetByID(s.baseRepo.Reader(ctx), id)
	if err != nil {
		return nil, lookupError(err, "group", id)
	}
	return group, nil
}

func (s *catalogService) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	user.ID = 0
	user.Name = strings.TrimSpace(user.Name)
	if user.Name == "" {
		return nil, invalidf("user name is required")
	}
	if user.Role == "" {
		user.Role = models.RoleMember
	}
	db := s.baseRepo.Reader(ctx)
	if user.DepartmentID != nil {
		if _, err := s.deptRepo.GetByID(db, *user.DepartmentID); err != nil {
			return nil, lookupError(err, "department", *user.DepartmentID)
		}
	}
	if err := s.userRepo.Create(db, &user); err != nil {
		return nil, fmt.Errorf("failed to create user %q: %w", user.Name, err)
	}
	logger.Infof("Created user id=%d role=%s", user.ID, user.Role)
	return &user, nil
}

func (s *catalogService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(s.baseRepo.Reader(ctx), id)
	if err != nil {
		return nil, lookupError(err, "user", id)
	}
	return user, nil
}
