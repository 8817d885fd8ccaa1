package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"gbsorgapi/models"
	"gbsorgapi/repository"
	"gbsorgapi/services/dto"
	"gbsorgapi/utils"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultStatsMaxWeeks bounds a range report when no limit is configured.
const DefaultStatsMaxWeeks = 104

// StatisticsService computes attendance figures through the membership history:
// a member counts toward a week only when their membership contains the week start.
// Roll-ups weight every member equally, so large groups weigh more than small ones.
type StatisticsService interface {
	WeeklyStatistics(ctx context.Context, groupID uint, weekStart time.Time) (*dto.GroupWeekStatistics, error)
	VillageWeeklyStatistics(ctx context.Context, villageID uint, weekStart time.Time) (*dto.VillageWeekStatistics, error)
	DepartmentWeeklyStatistics(ctx context.Context, departmentID uint, weekStart time.Time) (*dto.DepartmentWeekStatistics, error)
	// RangeStatistics reports every week from the Sunday on or before start through end.
	RangeStatistics(ctx context.Context, scope string, scopeID uint, start, end time.Time) (*dto.RangeStatistics, error)
	// ExportRangeStatistics writes the range report as an xlsx workbook to w.
	ExportRangeStatistics(ctx context.Context, scope string, scopeID uint, start, end time.Time, w io.Writer) error
}

type statisticsService struct {
	baseRepo       repository.BaseRepository
	deptRepo       repository.DepartmentRepository
	villageRepo    repository.VillageRepository
	groupRepo      repository.GbsGroupRepository
	memberRepo     repository.GbsMemberHistoryRepository
	attendanceRepo repository.AttendanceRepository
	maxWeeks       int
}

// NewStatisticsService creates a statistics service backed by db. maxWeeks limits
// the length of range reports; a value below 1 selects DefaultStatsMaxWeeks.
func NewStatisticsService(db *gorm.DB, maxWeeks int) StatisticsService {
	if maxWeeks < 1 {
		maxWeeks = DefaultStatsMaxWeeks
	}
	return &statisticsService{
		baseRepo:       repository.NewBaseRepository(db),
		deptRepo:       repository.NewDepartmentRepository(db),
		villageRepo:    repository.NewVillageRepository(db),
		groupRepo:      repository.NewGbsGroupRepository(db),
		memberRepo:     repository.NewGbsMemberHistoryRepository(db),
		attendanceRepo: repository.NewAttendanceRepository(db),
		maxWeeks:       maxWeeks,
	}
}

// tally is the raw count behind every statistic.
type tally struct {
	members  int
	attended int
	qt       int
	ministry map[string]int
}

func newTally() tally {
	return tally{ministry: map[string]int{models.MinistryA: 0, models.MinistryB: 0, models.MinistryC: 0}}
}

func (t *tally) add(o tally) {
	t.members += o.members
	t.attended += o.attended
	t.qt += o.qt
	for k, v := range o.ministry {
		t.ministry[k] += v
	}
}

func (t tally) totals() dto.WeekTotals {
	return dto.WeekTotals{
		TotalMembers:   t.members,
		AttendedCount:  t.attended,
		QtTotal:        t.qt,
		AttendanceRate: percent(t.attended, t.members),
		AverageQtCount: ratio(t.qt, t.members),
	}
}

// percent returns part/whole*100 rounded to two places, 0 when whole is 0.
func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return decimal.NewFromInt(int64(part)).
		Mul(decimal.NewFromInt(100)).
		DivRound(decimal.NewFromInt(int64(whole)), 2).
		InexactFloat64()
}

func ratio(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return decimal.NewFromInt(int64(part)).DivRound(decimal.NewFromInt(int64(whole)), 2).InexactFloat64()
}

// tallyWeek counts one group's week. Attendance rows of users who were not
// members on week are ignored.
func tallyWeek(memberships []models.GbsMemberHistory, rows []models.Attendance, week time.Time) tally {
	t := newTally()
	active := make(map[uint]bool)
	for _, m := range memberships {
		if m.ContainsDate(week) {
			active[m.MemberID] = true
		}
	}
	t.members = len(active)
	for _, r := range rows {
		if !utils.DateOf(r.WeekStart).Equal(week) || !active[r.MemberID] {
			continue
		}
		if r.Attended() {
			t.attended++
		}
		t.qt += r.QtCount
		t.ministry[r.Ministry]++
	}
	return t
}

// groupData holds the membership and attendance rows of a set of groups over a window.
type groupData struct {
	memberships map[uint][]models.GbsMemberHistory
	attendance  map[uint][]models.Attendance
}

func (s *statisticsService) loadGroupData(db *gorm.DB, groupIDs []uint, from, to time.Time) (*groupData, error) {
	memberRows, err := s.memberRepo.GetByGroupIDsOverlapping(db, groupIDs, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load memberships: %w", err)
	}
	attendanceRows, err := s.attendanceRepo.GetByGroupIDsBetween(db, groupIDs, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance: %w", err)
	}
	data := &groupData{
		memberships: make(map[uint][]models.GbsMemberHistory),
		attendance:  make(map[uint][]models.Attendance),
	}
	for _, m := range memberRows {
		data.memberships[m.GbsGroupID] = append(data.memberships[m.GbsGroupID], m)
	}
	for _, a := range attendanceRows {
		data.attendance[a.GbsGroupID] = append(data.attendance[a.GbsGroupID], a)
	}
	return data, nil
}

func (d *groupData) tally(groupID uint, week time.Time) tally {
	return tallyWeek(d.memberships[groupID], d.attendance[groupID], week)
}

func groupWeek(group models.GbsGroup, week time.Time, t tally) dto.GroupWeekStatistics {
	return dto.GroupWeekStatistics{
		GbsGroupID:     group.ID,
		GroupName:      group.Name,
		WeekStart:      week,
		WeekTotals:     t.totals(),
		MinistryCounts: t.ministry,
	}
}

func sundayOf(weekStart time.Time) (time.Time, error) {
	week := utils.DateOf(weekStart)
	if weekStart.IsZero() || !utils.IsSunday(week) {
		return time.Time{}, invalidf("week start %s is not a Sunday", utils.FormatDate(week))
	}
	return week, nil
}

func (s *statisticsService) WeeklyStatistics(ctx context.Context, groupID uint, weekStart time.Time) (*dto.GroupWeekStatistics, error) {
	week, err := sundayOf(weekStart)
	if err != nil {
		return nil, err
	}
	db := s.baseRepo.Reader(ctx)
	group, err := s.groupRepo.GetByID(db, groupID)
	if err != nil {
		return nil, lookupError(err, "group", groupID)
	}
	data, err := s.loadGroupData(db, []uint{groupID}, week, week)
	if err != nil {
		return nil, err
	}
	stats := groupWeek(*group, week, data.tally(groupID, week))
	return &stats, nil
}

func (s *statisticsService) VillageWeeklyStatistics(ctx context.Context, villageID uint, weekStart time.Time) (*dto.VillageWeekStatistics, error) {
	week, err := sundayOf(weekStart)
	if err != nil {
		return nil, err
	}
	db := s.baseRepo.Reader(ctx)
	village, err := s.villageRepo.GetByID(db, villageID)
	if err != nil {
		return nil, lookupError(err, "village", villageID)
	}
	groups, err := s.groupRepo.GetActiveByVillageID(db, villageID, week)
	if err != nil {
		return nil, fmt.Errorf("failed to load groups of village id=%d: %w", villageID, err)
	}
	data, err := s.loadGroupData(db, groupIDsOf(groups), week, week)
	if err != nil {
		return nil, err
	}
	stats, _ := villageWeek(*village, groups, data, week)
	return &stats, nil
}

func villageWeek(village models.Village, groups []models.GbsGroup, data *groupData, week time.Time) (dto.VillageWeekStatistics, tally) {
	total := newTally()
	stats := dto.VillageWeekStatistics{
		VillageID:   village.ID,
		VillageName: village.Name,
		WeekStart:   week,
		Groups:      make([]dto.GroupWeekStatistics, 0, len(groups)),
	}
	for _, g := range groups {
		t := data.tally(g.ID, week)
		total.add(t)
		stats.Groups = append(stats.Groups, groupWeek(g, week, t))
	}
	stats.WeekTotals = total.totals()
	return stats, total
}

func (s *statisticsService) DepartmentWeeklyStatistics(ctx context.Context, departmentID uint, weekStart time.Time) (*dto.DepartmentWeekStatistics, error) {
	week, err := sundayOf(weekStart)
	if err != nil {
		return nil, err
	}
	db := s.baseRepo.Reader(ctx)
	dept, err := s.deptRepo.GetByID(db, departmentID)
	if err != nil {
		return nil, lookupError(err, "department", departmentID)
	}
	villages, err := s.villageRepo.GetByDepartmentID(db, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load villages of department id=%d: %w", departmentID, err)
	}

	groupsByVillage := make(map[uint][]models.GbsGroup, len(villages))
	var allGroupIDs []uint
	for _, v := range villages {
		groups, err := s.groupRepo.GetActiveByVillageID(db, v.ID, week)
		if err != nil {
			return nil, fmt.Errorf("failed to load groups of village id=%d: %w", v.ID, err)
		}
		groupsByVillage[v.ID] = groups
		allGroupIDs = append(allGroupIDs, groupIDsOf(groups)...)
	}
	data, err := s.loadGroupData(db, allGroupIDs, week, week)
	if err != nil {
		return nil, err
	}

	total := newTally()
	stats := &dto.DepartmentWeekStatistics{
		DepartmentID:   dept.ID,
		DepartmentName: dept.Name,
		WeekStart:      week,
		Villages:       make([]dto.VillageWeekStatistics, 0, len(villages)),
	}
	for _, v := range villages {
		vs, t := villageWeek(v, groupsByVillage[v.ID], data, week)
		total.add(t)
		stats.Villages = append(stats.Villages, vs)
	}
	stats.WeekTotals = total.totals()
	return stats, nil
}

// ParseScope normalizes a statistics scope name.
func ParseScope(scope string) (string, error) {
	switch s := strings.ToUpper(strings.TrimSpace(scope)); s {
	case dto.ScopeGbs, dto.ScopeVillage, dto.ScopeDepartment:
		return s, nil
	default:
		return "", invalidf("unknown statistics scope %q", scope)
	}
}

// scopeGroups returns the groups a scope covers and whether each week should
// only count groups whose term contains it.
func (s *statisticsService) scopeGroups(db *gorm.DB, scope string, scopeID uint) ([]models.GbsGroup, bool, error) {
	switch scope {
	case dto.ScopeGbs:
		group, err := s.groupRepo.GetByID(db, scopeID)
		if err != nil {
			return nil, false, lookupError(err, "group", scopeID)
		}
		return []models.GbsGroup{*group}, false, nil
	case dto.ScopeVillage:
		if _, err := s.villageRepo.GetByID(db, scopeID); err != nil {
			return nil, false, lookupError(err, "village", scopeID)
		}
		groups, err := s.groupRepo.GetByVillageID(db, scopeID)
		if err != nil {
			return nil, false, fmt.Errorf("failed to load groups of village id=%d: %w", scopeID, err)
		}
		return groups, true, nil
	default:
		if _, err := s.deptRepo.GetByID(db, scopeID); err != nil {
			return nil, false, lookupError(err, "department", scopeID)
		}
		villages, err := s.villageRepo.GetByDepartmentID(db, scopeID)
		if err != nil {
			return nil, false, fmt.Errorf("failed to load villages of department id=%d: %w", scopeID, err)
		}
		var groups []models.GbsGroup
		for _, v := range villages {
			vg, err := s.groupRepo.GetByVillageID(db, v.ID)
			if err != nil {
				return nil, false, fmt.Errorf("failed to load groups of village id=%d: %w", v.ID, err)
			}
			groups = append(groups, vg...)
		}
		return groups, true, nil
	}
}

func (s *statisticsService) RangeStatistics(ctx context.Context, scope string, scopeID uint, start, end time.Time) (*dto.RangeStatistics, error) {
	scope, err := ParseScope(scope)
	if err != nil {
		return nil, err
	}
	if start.IsZero() || end.IsZero() {
		return nil, invalidf("range start and end are required")
	}
	start, end = utils.DateOf(start), utils.DateOf(end)
	if start.After(end) {
		return nil, invalidf("range start %s is after end %s", utils.FormatDate(start), utils.FormatDate(end))
	}
	weeks := utils.SundaysBetween(start, end)
	if len(weeks) > s.maxWeeks {
		return nil, invalidf("range covers %d weeks, the limit is %d", len(weeks), s.maxWeeks)
	}

	db := s.baseRepo.Reader(ctx)
	groups, termBound, err := s.scopeGroups(db, scope, scopeID)
	if err != nil {
		return nil, err
	}
	data, err := s.loadGroupData(db, groupIDsOf(groups), weeks[0], weeks[len(weeks)-1])
	if err != nil {
		return nil, err
	}

	report := &dto.RangeStatistics{
		Scope:     scope,
		ScopeID:   scopeID,
		StartDate: start,
		EndDate:   end,
		Weeks:     make([]dto.WeekTrend, 0, len(weeks)),
	}
	summary := newTally()
	for i, week := range weeks {
		t := newTally()
		for _, g := range groups {
			if termBound && !g.IsActiveOn(week) {
				continue
			}
			t.add(data.tally(g.ID, week))
		}
		summary.add(t)

		trend := dto.WeekTrend{WeekStart: week, WeekTotals: t.totals()}
		if i > 0 {
			prev := report.Weeks[i-1].AttendanceRate
			change := decimal.NewFromFloat(trend.AttendanceRate).Sub(decimal.NewFromFloat(prev)).Round(2).InexactFloat64()
			trend.RateChange = &change
		}
		report.Weeks = append(report.Weeks, trend)
	}
	report.Summary = dto.RangeSummary{
		Weeks:            len(weeks),
		TotalMemberWeeks: summary.members,
		AttendedCount:    summary.attended,
		AttendanceRate:   percent(summary.attended, summary.members),
		AverageQtCount:   ratio(summary.qt, summary.members),
	}
	return report, nil
}

func groupIDsOf(groups []models.GbsGroup) []uint {
	ids := make([]uint, 0, len(groups))
	for _, g := range groups {
		ids = append(ids, g.ID)
	}
	return ids
}
