package repository

import (
	"time"

	"gbsorgapi/models"

	"gorm.io/gorm"
)

// AttendanceRepository provides data access operations for weekly attendance rows.
type AttendanceRepository interface {
	CreateBatch(tx *gorm.DB, rows []models.Attendance) error
	DeleteByGroupAndWeek(tx *gorm.DB, groupID uint, weekStart time.Time) (int64, error)
	GetByGroupAndWeek(tx *gorm.DB, groupID uint, weekStart time.Time) ([]models.Attendance, error)
	GetByGroupIDsBetween(tx *gorm.DB, groupIDs []uint, from, to time.Time) ([]models.Attendance, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new attendance repository instance.
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) CreateBatch(tx *gorm.DB, rows []models.Attendance) error {
	if len(rows) == 0 {
		return nil
	}
	return orDefault(tx, r.db).Create(&rows).Error
}

func (r *attendanceRepository) DeleteByGroupAndWeek(tx *gorm.DB, groupID uint, weekStart time.Time) (int64, error) {
	res := orDefault(tx, r.db).
		Where("gbs_group_id = ? AND week_start = ?", groupID, sqlDate(weekStart)).
		Delete(&models.Attendance{})
	return res.RowsAffected, res.Error
}

func (r *attendanceRepository) GetByGroupAndWeek(tx *gorm.DB, groupID uint, weekStart time.Time) ([]models.Attendance, error) {
	var rows []models.Attendance
	err := orDefault(tx, r.db).
		Where("gbs_group_id = ? AND week_start = ?", groupID, sqlDate(weekStart)).
		Order("member_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *attendanceRepository) GetByGroupIDsBetween(tx *gorm.DB, groupIDs []uint, from, to time.Time) ([]models.Attendance, error) {
	if len(groupIDs) == 0 {
		return []models.Attendance{}, nil
	}
	var rows []models.Attendance
	err := orDefault(tx, r.db).
		Where("gbs_group_id IN ? AND week_start >= ? AND week_start <= ?", groupIDs, sqlDate(from), sqlDate(to)).
		Order("gbs_group_id, week_start, member_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
