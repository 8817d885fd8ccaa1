package repository

import (
	"time"

	"gbsorgapi/models"

	"gorm.io/gorm"
)

// VillageLeaderRepository provides data access operations for village leadership rows.
type VillageLeaderRepository interface {
	Create(tx *gorm.DB, row *models.VillageLeader) error
	GetActiveByVillageID(tx *gorm.DB, villageID uint, date time.Time) ([]models.VillageLeader, error)
	GetActiveByUserID(tx *gorm.DB, userID uint, date time.Time) ([]models.VillageLeader, error)
	// LockByVillageID returns every row of the village under a row lock, newest first.
	LockByVillageID(tx *gorm.DB, villageID uint) ([]models.VillageLeader, error)
	// Reopen replaces the range of an existing (user, village) row with [startDate, open).
	Reopen(tx *gorm.DB, userID, villageID uint, startDate time.Time) (int64, error)
	Close(tx *gorm.DB, userID, villageID uint, endDate time.Time) (int64, error)
	CountOpenByVillageID(tx *gorm.DB, villageID uint) (int64, error)
}

type villageLeaderRepository struct {
	db *gorm.DB
}

// NewVillageLeaderRepository creates a new village leader repository instance.
func NewVillageLeaderRepository(db *gorm.DB) VillageLeaderRepository {
	return &villageLeaderRepository{db: db}
}

func (r *villageLeaderRepository) Create(tx *gorm.DB, row *models.VillageLeader) error {
	return orDefault(tx, r.db).Create(row).Error
}

func (r *villageLeaderRepository) GetActiveByVillageID(tx *gorm.DB, villageID uint, date time.Time) ([]models.VillageLeader, error) {
	var rows []models.VillageLeader
	d := sqlDate(date)
	err := orDefault(tx, r.db).
		Where("village_id = ?", villageID).
		Where(activeOn("village_leader"), d, d).
		Order("start_dt DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *villageLeaderRepository) GetActiveByUserID(tx *gorm.DB, userID uint, date time.Time) ([]models.VillageLeader, error) {
	var rows []models.VillageLeader
	d := sqlDate(date)
	err := orDefault(tx, r.db).
		Where("user_id = ?", userID).
		Where(activeOn("village_leader"), d, d).
		Order("village_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *villageLeaderRepository) LockByVillageID(tx *gorm.DB, villageID uint) ([]models.VillageLeader, error) {
	var rows []models.VillageLeader
	err := forUpdate(orDefault(tx, r.db)).
		Where("village_id = ?", villageID).
		Order("start_dt DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *villageLeaderRepository) Reopen(tx *gorm.DB, userID, villageID uint, startDate time.Time) (int64, error) {
	res := orDefault(tx, r.db).Model(&models.VillageLeader{}).
		Where("user_id = ? AND village_id = ?", userID, villageID).
		Updates(map[string]interface{}{
			"start_dt":   sqlDate(startDate),
			"end_dt":     gorm.Expr("NULL"),
			"updated_at": time.Now(),
		})
	return res.RowsAffected, res.Error
}

func (r *villageLeaderRepository) Close(tx *gorm.DB, userID, villageID uint, endDate time.Time) (int64, error) {
	res := orDefault(tx, r.db).Model(&models.VillageLeader{}).
		Where("user_id = ? AND village_id = ? AND end_dt IS NULL", userID, villageID).
		Updates(map[string]interface{}{
			"end_dt":     sqlDate(endDate),
			"updated_at": time.Now(),
		})
	return res.RowsAffected, res.Error
}

func (r *villageLeaderRepository) CountOpenByVillageID(tx *gorm.DB, villageID uint) (int64, error) {
	var count int64
	err := orDefault(tx, r.db).Model(&models.VillageLeader{}).
		Where("village_id = ? AND end_dt IS NULL", villageID).
		Count(&count).Error
	return count, err
}
