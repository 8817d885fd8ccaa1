package repository

import (
	"gbsorgapi/models"

	"gorm.io/gorm"
)

// VillageRepository provides data access operations for villages.
type VillageRepository interface {
	Create(tx *gorm.DB, village *models.Village) error
	GetByID(tx *gorm.DB, id uint) (*models.Village, error)
	GetByDepartmentID(tx *gorm.DB, departmentID uint) ([]models.Village, error)
}

type villageRepository struct {
	db *gorm.DB
}

// NewVillageRepository creates a new village repository instance.
func NewVillageRepository(db *gorm.DB) VillageRepository {
	return &villageRepository{db: db}
}

func (r *villageRepository) Create(tx *gorm.DB, village *models.Village) error {
	return orDefault(tx, r.db).Create(village).Error
}

func (r *villageRepository) GetByID(tx *gorm.DB, id uint) (*models.Village, error) {
	var village models.Village
	if err := orDefault(tx, r.db).Where("id = ?", id).First(&village).Error; err != nil {
		return nil, err
	}
	return &village, nil
}

func (r *villageRepository) GetByDepartmentID(tx *gorm.DB, departmentID uint) ([]models.Village, error) {
	var villages []models.Village
	if err := orDefault(tx, r.db).Where("department_id = ?", departmentID).Order("name, id").Find(&villages).Error; err != nil {
		return nil, err
	}
	return villages, nil
}
