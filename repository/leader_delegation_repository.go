package repository

import (
	"time"

	"gbsorgapi/models"

	"gorm.io/gorm"
)

// LeaderDelegationRepository provides data access operations for leader delegations.
type LeaderDelegationRepository interface {
	Create(tx *gorm.DB, delegation *models.LeaderDelegation) error
	GetByID(tx *gorm.DB, id uint) (*models.LeaderDelegation, error)
	GetActiveByGroupID(tx *gorm.DB, groupID uint, date time.Time) ([]models.LeaderDelegation, error)
	GetActiveByDelegateeID(tx *gorm.DB, delegateeID uint, date time.Time) ([]models.LeaderDelegation, error)
	// LockByDelegateeAndGroup returns every delegation of the pair under a row lock.
	LockByDelegateeAndGroup(tx *gorm.DB, delegateeID, groupID uint) ([]models.LeaderDelegation, error)
	UpdateEndDate(tx *gorm.DB, id uint, endDate time.Time) error
}

type leaderDelegationRepository struct {
	db *gorm.DB
}

// NewLeaderDelegationRepository creates a new leader delegation repository instance.
func NewLeaderDelegationRepository(db *gorm.DB) LeaderDelegationRepository {
	return &leaderDelegationRepository{db: db}
}

func (r *leaderDelegationRepository) Create(tx *gorm.DB, delegation *models.LeaderDelegation) error {
	return orDefault(tx, r.db).Create(delegation).Error
}

func (r *leaderDelegationRepository) GetByID(tx *gorm.DB, id uint) (*models.LeaderDelegation, error) {
	var delegation models.LeaderDelegation
	if err := orDefault(tx, r.db).Where("id = ?", id).First(&delegation).Error; err != nil {
		return nil, err
	}
	return &delegation, nil
}

func (r *leaderDelegationRepository) GetActiveByGroupID(tx *gorm.DB, groupID uint, date time.Time) ([]models.LeaderDelegation, error) {
	var delegations []models.LeaderDelegation
	d := sqlDate(date)
	err := orDefault(tx, r.db).
		Where("gbs_group_id = ?", groupID).
		Where(activeOn("leader_delegation"), d, d).
		Order("delegatee_id, id").
		Find(&delegations).Error
	if err != nil {
		return nil, err
	}
	return delegations, nil
}

func (r *leaderDelegationRepository) GetActiveByDelegateeID(tx *gorm.DB, delegateeID uint, date time.Time) ([]models.LeaderDelegation, error) {
	var delegations []models.LeaderDelegation
	d := sqlDate(date)
	err := orDefault(tx, r.db).
		Where("delegatee_id = ?", delegateeID).
		Where(activeOn("leader_delegation"), d, d).
		Order("gbs_group_id, id").
		Find(&delegations).Error
	if err != nil {
		return nil, err
	}
	return delegations, nil
}

func (r *leaderDelegationRepository) LockByDelegateeAndGroup(tx *gorm.DB, delegateeID, groupID uint) ([]models.LeaderDelegation, error) {
	var delegations []models.LeaderDelegation
	err := forUpdate(orDefault(tx, r.db)).
		Where("delegatee_id = ? AND gbs_group_id = ?", delegateeID, groupID).
		Order("start_dt").
		Find(&delegations).Error
	if err != nil {
		return nil, err
	}
	return delegations, nil
}

func (r *leaderDelegationRepository) UpdateEndDate(tx *gorm.DB, id uint, endDate time.Time) error {
	return orDefault(tx, r.db).Model(&models.LeaderDelegation{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"end_dt":     sqlDate(endDate),
			"updated_at": time.Now(),
		}).Error
}
