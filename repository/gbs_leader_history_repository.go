package repository

import (
	"time"

	"gbsorgapi/models"

	"gorm.io/gorm"
)

// GbsLeaderHistoryRepository provides data access operations for GBS leader history rows.
type GbsLeaderHistoryRepository interface {
	Create(tx *gorm.DB, row *models.GbsLeaderHistory) error
	GetByGroupID(tx *gorm.DB, groupID uint) ([]models.GbsLeaderHistory, error)
	GetActiveByGroupID(tx *gorm.DB, groupID uint, date time.Time) ([]models.GbsLeaderHistory, error)
	GetByLeaderID(tx *gorm.DB, leaderID uint) ([]models.GbsLeaderHistory, error)
	GetActiveByLeaderID(tx *gorm.DB, leaderID uint, date time.Time) ([]models.GbsLeaderHistory, error)
	// LockByGroupID returns every row of the group under a row lock, newest first.
	LockByGroupID(tx *gorm.DB, groupID uint) ([]models.GbsLeaderHistory, error)
	// LockOpenByGroupIDs returns the open rows of the given groups under a row lock.
	LockOpenByGroupIDs(tx *gorm.DB, groupIDs []uint) ([]models.GbsLeaderHistory, error)
	CountOpenByGroupID(tx *gorm.DB, groupID uint) (int64, error)
	// Close sets end_dt on an open row and reports how many rows changed.
	Close(tx *gorm.DB, id uint, endDate time.Time) (int64, error)
}

type gbsLeaderHistoryRepository struct {
	db *gorm.DB
}

// NewGbsLeaderHistoryRepository creates a new leader history repository instance.
func NewGbsLeaderHistoryRepository(db *gorm.DB) GbsLeaderHistoryRepository {
	return &gbsLeaderHistoryRepository{db: db}
}

func (r *gbsLeaderHistoryRepository) Create(tx *gorm.DB, row *models.GbsLeaderHistory) error {
	return orDefault(tx, r.db).Create(row).Error
}

func (r *gbsLeaderHistoryRepository) GetByGroupID(tx *gorm.DB, groupID uint) ([]models.GbsLeaderHistory, error) {
	var rows []models.GbsLeaderHistory
	if err := orDefault(tx, r.db).Where("gbs_group_id = ?", groupID).Order("start_dt DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *gbsLeaderHistoryRepository) GetActiveByGroupID(tx *gorm.DB, groupID uint, date time.Time) ([]models.GbsLeaderHistory, error) {
	var rows []models.GbsLeaderHistory
	d := sqlDate(date)
	err := orDefault(tx, r.db).
		Where("gbs_group_id = ?", groupID).
		Where(activeOn("gbs_leader_history"), d, d).
		Order("start_dt DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *gbsLeaderHistoryRepository) GetByLeaderID(tx *gorm.DB, leaderID uint) ([]models.GbsLeaderHistory, error) {
	var rows []models.GbsLeaderHistory
	if err := orDefault(tx, r.db).Where("leader_id = ?", leaderID).Order("start_dt DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *gbsLeaderHistoryRepository) GetActiveByLeaderID(tx *gorm.DB, leaderID uint, date time.Time) ([]models.GbsLeaderHistory, error) {
	var rows []models.GbsLeaderHistory
	d := sqlDate(date)
	err := orDefault(tx, r.db).
		Where("leader_id = ?", leaderID).
		Where(activeOn("gbs_leader_history"), d, d).
		Order("start_dt DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *gbsLeaderHistoryRepository) LockByGroupID(tx *gorm.DB, groupID uint) ([]models.GbsLeaderHistory, error) {
	var rows []models.GbsLeaderHistory
	err := forUpdate(orDefault(tx, r.db)).
		Where("gbs_group_id = ?", groupID).
		Order("start_dt DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *gbsLeaderHistoryRepository) LockOpenByGroupIDs(tx *gorm.DB, groupIDs []uint) ([]models.GbsLeaderHistory, error) {
	if len(groupIDs) == 0 {
		return []models.GbsLeaderHistory{}, nil
	}
	var rows []models.GbsLeaderHistory
	err := forUpdate(orDefault(tx, r.db)).
		Where("gbs_group_id IN ? AND end_dt IS NULL", groupIDs).
		Order("gbs_group_id, id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *gbsLeaderHistoryRepository) CountOpenByGroupID(tx *gorm.DB, groupID uint) (int64, error) {
	var count int64
	err := orDefault(tx, r.db).Model(&models.GbsLeaderHistory{}).
		Where("gbs_group_id = ? AND end_dt IS NULL", groupID).
		Count(&count).Error
	return count, err
}

func (r *gbsLeaderHistoryRepository) Close(tx *gorm.DB, id uint, endDate time.Time) (int64, error) {
	res := orDefault(tx, r.db).Model(&models.GbsLeaderHistory{}).
		Where("id = ? AND end_dt IS NULL", id).
		Updates(map[string]interface{}{
			"end_dt":     sqlDate(endDate),
			"updated_at": time.Now(),
		})
	return res.RowsAffected, res.Error
}
