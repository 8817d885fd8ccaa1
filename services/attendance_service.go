package services

import (
	"context"
	"fmt"
	"time"

	"gbsorgapi/models"
	"gbsorgapi/pkg/logger"
	"gbsorgapi/repository"
	"gbsorgapi/services/dto"
	"gbsorgapi/utils"

	"gorm.io/gorm"
)

// AttendanceService records weekly attendance per GBS group.
type AttendanceService interface {
	// SubmitWeek replaces the group's rows for weekStart with entries. Every entry must
	// belong to a member active in the group on weekStart.
	SubmitWeek(ctx context.Context, groupID uint, weekStart time.Time, createdByID uint, entries []dto.AttendanceEntry) ([]models.Attendance, error)
	GetWeek(ctx context.Context, groupID uint, weekStart time.Time) ([]models.Attendance, error)
}

type attendanceService struct {
	baseRepo       repository.BaseRepository
	userRepo       repository.UserRepository
	groupRepo      repository.GbsGroupRepository
	memberRepo     repository.GbsMemberHistoryRepository
	attendanceRepo repository.AttendanceRepository
}

// NewAttendanceService creates an attendance service backed by db.
func NewAttendanceService(db *gorm.DB) AttendanceService {
	return &attendanceService{
		baseRepo:       repository.NewBaseRepository(db),
		userRepo:       repository.NewUserRepository(db),
		groupRepo:      repository.NewGbsGroupRepository(db),
		memberRepo:     repository.NewGbsMemberHistoryRepository(db),
		attendanceRepo: repository.NewAttendanceRepository(db),
	}
}

func validateEntries(entries []dto.AttendanceEntry) error {
	seen := make(map[uint]bool, len(entries))
	for _, e := range entries {
		if e.MemberID == 0 {
			return invalidf("member id is required")
		}
		if seen[e.MemberID] {
			return invalidf("member id=%d is listed twice", e.MemberID)
		}
		seen[e.MemberID] = true
		if e.Worship != models.WorshipAttended && e.Worship != models.WorshipAbsent {
			return invalidf("member id=%d: worship must be %s or %s, got %q",
				e.MemberID, models.WorshipAttended, models.WorshipAbsent, e.Worship)
		}
		if e.QtCount < 0 || e.QtCount > models.MaxQtCount {
			return invalidf("member id=%d: qt count must be between 0 and %d, got %d", e.MemberID, models.MaxQtCount, e.QtCount)
		}
		switch e.Ministry {
		case models.MinistryA, models.MinistryB, models.MinistryC:
		default:
			return invalidf("member id=%d: ministry must be A, B or C, got %q", e.MemberID, e.Ministry)
		}
	}
	return nil
}

func (s *attendanceService) SubmitWeek(ctx context.Context, groupID uint, weekStart time.Time, createdByID uint, entries []dto.AttendanceEntry) ([]models.Attendance, error) {
	week := utils.DateOf(weekStart)
	if weekStart.IsZero() || !utils.IsSunday(week) {
		return nil, invalidf("week start %s is not a Sunday", utils.FormatDate(week))
	}
	if err := validateEntries(entries); err != nil {
		return nil, err
	}

	tx := s.baseRepo.Begin(ctx)
	var txCommitted bool
	defer func() {
		if !txCommitted {
			tx.Rollback()
		}
	}()

	if _, err := s.groupRepo.GetByID(tx, groupID); err != nil {
		return nil, lookupError(err, "group", groupID)
	}
	if _, err := s.userRepo.GetByID(tx, createdByID); err != nil {
		return nil, lookupError(err, "user", createdByID)
	}

	active, err := s.memberRepo.GetActiveByGroupID(tx, groupID, week)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve members of group id=%d: %w", groupID, err)
	}
	isMember := make(map[uint]bool, len(active))
	for _, m := range active {
		isMember[m.MemberID] = true
	}

	rows := make([]models.Attendance, 0, len(entries))
	for _, e := range entries {
		if !isMember[e.MemberID] {
			return nil, invalidf("user id=%d is not a member of group id=%d on %s", e.MemberID, groupID, utils.FormatDate(week))
		}
		rows = append(rows, models.Attendance{
			MemberID:    e.MemberID,
			GbsGroupID:  groupID,
			WeekStart:   week,
			Worship:     e.Worship,
			QtCount:     e.QtCount,
			Ministry:    e.Ministry,
			CreatedByID: createdByID,
		})
	}

	deleted, err := s.attendanceRepo.DeleteByGroupAndWeek(tx, groupID, week)
	if err != nil {
		return nil, writeError("submit_attendance", err, "failed to clear attendance of group id=%d for %s", groupID, utils.FormatDate(week))
	}
	if err := s.attendanceRepo.CreateBatch(tx, rows); err != nil {
		return nil, writeError("submit_attendance", err, "failed to save attendance of group id=%d for %s", groupID, utils.FormatDate(week))
	}
	if err := tx.Commit().Error; err != nil {
		return nil, writeError("submit_attendance", err, "failed to commit attendance")
	}
	txCommitted = true

	gbsAttendanceRows.Add(float64(len(rows)))
	logger.Infof("Attendance of group id=%d for %s saved by user id=%d: %d rows replaced, %d rows written",
		groupID, utils.FormatDate(week), createdByID, deleted, len(rows))
	return rows, nil
}

func (s *attendanceService) GetWeek(ctx context.Context, groupID uint, weekStart time.Time) ([]models.Attendance, error) {
	week := utils.DateOf(weekStart)
	if weekStart.IsZero() || !utils.IsSunday(week) {
		return nil, invalidf("week start %s is not a Sunday", utils.FormatDate(week))
	}
	db := s.baseRepo.Reader(ctx)
	if _, err := s.groupRepo.GetByID(db, groupID); err != nil {
		return nil, lookupError(err, "group", groupID)
	}
	rows, err := s.attendanceRepo.GetByGroupAndWeek(db, groupID, week)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance of group id=%d for %s: %w", groupID, utils.FormatDate(week), err)
	}
	return rows, nil
}
