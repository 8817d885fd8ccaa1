package repository

import (
	"time"

	"gbsorgapi/models"

	"gorm.io/gorm"
)

// GbsMemberHistoryRepository provides data access operations for GBS member history rows.
type GbsMemberHistoryRepository interface {
	Create(tx *gorm.DB, row *models.GbsMemberHistory) error
	GetActiveByGroupID(tx *gorm.DB, groupID uint, date time.Time) ([]models.GbsMemberHistory, error)
	// GetActiveMembers returns the users holding an active membership on date, ordered by name.
	GetActiveMembers(tx *gorm.DB, groupID uint, date time.Time) ([]models.User, error)
	GetByMemberID(tx *gorm.DB, memberID uint) ([]models.GbsMemberHistory, error)
	// GetByGroupIDsOverlapping returns rows of the given groups whose range overlaps [start, end].
	GetByGroupIDsOverlapping(tx *gorm.DB, groupIDs []uint, start, end time.Time) ([]models.GbsMemberHistory, error)
	// LockByGroupAndMember returns every row of the pair under a row lock, newest first.
	LockByGroupAndMember(tx *gorm.DB, groupID, memberID uint) ([]models.GbsMemberHistory, error)
	// LockOpenByGroupIDs returns the open rows of the given groups under a row lock.
	LockOpenByGroupIDs(tx *gorm.DB, groupIDs []uint) ([]models.GbsMemberHistory, error)
	// Close sets end_dt on an open row and reports how many rows changed.
	Close(tx *gorm.DB, id uint, endDate time.Time) (int64, error)
}

type gbsMemberHistoryRepository struct {
	db *gorm.DB
}

// NewGbsMemberHistoryRepository creates a new member history repository instance.
func NewGbsMemberHistoryRepository(db *gorm.DB) GbsMemberHistoryRepository {
	return &gbsMemberHistoryRepository{db: db}
}

func (r *gbsMemberHistoryRepository) Create(tx *gorm.DB, row *models.GbsMemberHistory) error {
	return orDefault(tx, r.db).Create(row).Error
}

func (r *gbsMemberHistoryRepository) GetActiveByGroupID(tx *gorm.DB, groupID uint, date time.Time) ([]models.GbsMemberHistory, error) {
	var rows []models.GbsMemberHistory
	d := sqlDate(date)
	err := orDefault(tx, r.db).
		Where("gbs_group_id = ?", groupID).
		Where(activeOn("gbs_member_history"), d, d).
		Order("member_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *gbsMemberHistoryRepository) GetActiveMembers(tx *gorm.DB, groupID uint, date time.Time) ([]models.User, error) {
	var users []models.User
	d := sqlDate(date)
	err := orDefault(tx, r.db).
		Model(&models.User{}).
		Select("users.*").
		Joins("JOIN gbs_member_history ON gbs_member_history.member_id = users.id").
		Where("gbs_member_history.gbs_group_id = ?", groupID).
		Where(activeOn("gbs_member_history"), d, d).
		Order("users.name, users.id").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *gbsMemberHistoryRepository) GetByMemberID(tx *gorm.DB, memberID uint) ([]models.GbsMemberHistory, error) {
	var rows []models.GbsMemberHistory
	if err := orDefault(tx, r.db).Where("member_id = ?", memberID).Order("start_dt DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *gbsMemberHistoryRepository) GetByGroupIDsOverlapping(tx *gorm.DB, groupIDs []uint, start, end time.Time) ([]models.GbsMemberHistory, error) {
	if len(groupIDs) == 0 {
		return []models.GbsMemberHistory{}, nil
	}
	var rows []models.GbsMemberHistory
	db := orDefault(tx, r.db).Where("gbs_group_id IN ?", groupIDs)
	err := overlapping(db, "gbs_member_history", start, &end).
		Order("gbs_group_id, member_id, start_dt").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *gbsMemberHistoryRepository) LockByGroupAndMember(tx *gorm.DB, groupID, memberID uint) ([]models.GbsMemberHistory, error) {
	var rows []models.GbsMemberHistory
	err := forUpdate(orDefault(tx, r.db)).
		Where("gbs_group_id = ? AND member_id = ?", groupID, memberID).
		Order("start_dt DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *gbsMemberHistoryRepository) LockOpenByGroupIDs(tx *gorm.DB, groupIDs []uint) ([]models.GbsMemberHistory, error) {
	if len(groupIDs) == 0 {
		return []models.GbsMemberHistory{}, nil
	}
	var rows []models.GbsMemberHistory
	err := forUpdate(orDefault(tx, r.db)).
		Where("gbs_group_id IN ? AND end_dt IS NULL", groupIDs).
		Order("gbs_group_id, member_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *gbsMemberHistoryRepository) Close(tx *gorm.DB, id uint, endDate time.Time) (int64, error) {
	res := orDefault(tx, r.db).Model(&models.GbsMemberHistory{}).
		Where("id = ? AND end_dt IS NULL", id).
		Updates(map[string]interface{}{
			"end_dt":     sqlDate(endDate),
			"updated_at": time.Now(),
		})
	return res.RowsAffected, res.Error
}
