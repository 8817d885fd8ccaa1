package repository

import (
	"time"

	"gbsorgapi/models"

	"gorm.io/gorm"
)

// GbsGroupRepository provides data access operations for GBS groups.
type GbsGroupRepository interface {
	Create(tx *gorm.DB, group *models.GbsGroup) error
	GetByID(tx *gorm.DB, id uint) (*models.GbsGroup, error)
	GetByVillageID(tx *gorm.DB, villageID uint) ([]models.GbsGroup, error)
	// GetActiveByVillageID returns the village's groups whose term contains date.
	GetActiveByVillageID(tx *gorm.DB, villageID uint, date time.Time) ([]models.GbsGroup, error)
	// GetByDepartmentOverlapping returns the department's groups whose term overlaps [start, end].
	GetByDepartmentOverlapping(tx *gorm.DB, departmentID uint, start, end time.Time) ([]models.GbsGroup, error)
}

type gbsGroupRepository struct {
	db *gorm.DB
}

// NewGbsGroupRepository creates a new GBS group repository instance.
func NewGbsGroupRepository(db *gorm.DB) GbsGroupRepository {
	return &gbsGroupRepository{db: db}
}

func (r *gbsGroupRepository) Create(tx *gorm.DB, group *models.GbsGroup) error {
	return orDefault(tx, r.db).Create(group).Error
}

func (r *gbsGroupRepository) GetByID(tx *gorm.DB, id uint) (*models.GbsGroup, error) {
	var group models.GbsGroup
	if err := orDefault(tx, r.db).Where("id = ?", id).First(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *gbsGroupRepository) GetByVillageID(tx *gorm.DB, villageID uint) ([]models.GbsGroup, error) {
	var groups []models.GbsGroup
	if err := orDefault(tx, r.db).Where("village_id = ?", villageID).Order("name, id").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *gbsGroupRepository) GetActiveByVillageID(tx *gorm.DB, villageID uint, date time.Time) ([]models.GbsGroup, error) {
	var groups []models.GbsGroup
	d := sqlDate(date)
	err := orDefault(tx, r.db).
		Where("village_id = ? AND term_start <= ? AND term_end >= ?", villageID, d, d).
		Order("name, id").
		Find(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *gbsGroupRepository) GetByDepartmentOverlapping(tx *gorm.DB, departmentID uint, start, end time.Time) ([]models.GbsGroup, error) {
	var groups []models.GbsGroup
	err := orDefault(tx, r.db).
		Select("gbs_group.*").
		Joins("JOIN village ON village.id = gbs_group.village_id").
		Where("village.department_id = ?", departmentID).
		Where("gbs_group.term_start <= ? AND gbs_group.term_end >= ?", sqlDate(end), sqlDate(start)).
		Order("gbs_group.id").
		Find(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}
