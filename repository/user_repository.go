package repository

import (
	"gbsorgapi/models"

	"gorm.io/gorm"
)

// UserRepository provides data access operations for users.
type UserRepository interface {
	Create(tx *gorm.DB, user *models.User) error
	GetByID(tx *gorm.DB, id uint) (*models.User, error)
	GetByIDs(tx *gorm.DB, ids []uint) ([]models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(tx *gorm.DB, user *models.User) error {
	return orDefault(tx, r.db).Create(user).Error
}

func (r *userRepository) GetByID(tx *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	if err := orDefault(tx, r.db).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByIDs(tx *gorm.DB, ids []uint) ([]models.User, error) {
	if len(ids) == 0 {
		return []models.User{}, nil
	}
	var users []models.User
	if err := orDefault(tx, r.db).Where("id IN ?", ids).Order("name, id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
