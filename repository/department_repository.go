package repository

import (
	"gbsorgapi/models"

	"gorm.io/gorm"
)

// DepartmentRepository provides data access operations for departments.
type DepartmentRepository interface {
	Create(tx *gorm.DB, department *models.Department) error
	GetAll(tx *gorm.DB) ([]models.Department, error)
	GetByID(tx *gorm.DB, id uint) (*models.Department, error)
}

type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository creates a new department repository instance.
func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) Create(tx *gorm.DB, department *models.Department) error {
	return orDefault(tx, r.db).Create(department).Error
}

func (r *departmentRepository) GetAll(tx *gorm.DB) ([]models.Department, error) {
	var departments []models.Department
	if err := orDefault(tx, r.db).Order("name, id").Find(&departments).Error; err != nil {
		return nil, err
	}
	return departments, nil
}

func (r *departmentRepository) GetByID(tx *gorm.DB, id uint) (*models.Department, error) {
	var department models.Department
	if err := orDefault(tx, r.db).Where("id = ?", id).First(&department).Error; err != nil {
		return nil, err
	}
	return &department, nil
}
