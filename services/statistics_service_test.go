package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"gbsorgapi/models"
	"gbsorgapi/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// statsFixture has two groups in one village: GBS 1 with four members and GBS 2 with one.
type statsFixture struct {
	*orgFixture
	leader  *models.User
	members []uint
	small   *models.GbsGroup
	loner   uint
}

func newStatsFixture(t *testing.T) *statsFixture {
	t.Helper()
	f := newOrgFixture(t)
	ctx := context.Background()
	assignments := NewAssignmentService(f.db)

	sf := &statsFixture{orgFixture: f, leader: f.user(t, "Leader")}
	for _, name := range []string{"M1", "M2", "M3", "M4"} {
		m := f.user(t, name)
		sf.members = append(sf.members, m.ID)
		_, err := assignments.AssignMember(ctx, f.group.ID, m.ID, d(t, "2024-08-04"))
		require.NoError(t, err)
	}
	sf.small = f.newGroup(t, f.village.ID, "GBS 2", "2024-01-01", "2024-12-31")
	loner := f.user(t, "Loner")
	sf.loner = loner.ID
	_, err := assignments.AssignMember(ctx, sf.small.ID, loner.ID, d(t, "2024-08-04"))
	require.NoError(t, err)
	return sf
}

func (sf *statsFixture) submit(t *testing.T, groupID uint, week string, entries ...dto.AttendanceEntry) {
	t.Helper()
	_, err := NewAttendanceService(sf.db).SubmitWeek(context.Background(), groupID, d(t, week), sf.leader.ID, entries)
	require.NoError(t, err)
}

func entry(memberID uint, worship string, qt int) dto.AttendanceEntry {
	return dto.AttendanceEntry{MemberID: memberID, Worship: worship, QtCount: qt, Ministry: models.MinistryA}
}

func TestWeeklyStatistics_AttendanceRate(t *testing.T) {
	sf := newStatsFixture(t)
	ctx := context.Background()
	svc := NewStatisticsService(sf.db, 0)
	m := sf.members

	sf.submit(t, sf.group.ID, "2024-09-01",
		entry(m[0], "O", 6), entry(m[1], "O", 3), entry(m[2], "O", 0), entry(m[3], "X", 1))

	stats, err := svc.WeeklyStatistics(ctx, sf.group.ID, d(t, "2024-09-01"))
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalMembers)
	assert.Equal(t, 3, stats.AttendedCount)
	assert.Equal(t, 75.0, stats.AttendanceRate)
	assert.Equal(t, 2.5, stats.AverageQtCount)
	assert.Equal(t, 4, stats.MinistryCounts[models.MinistryA])
	assert.Equal(t, "GBS 1", stats.GroupName)
}

func TestWeeklyStatistics_EmptyGroupIsZero(t *testing.T) {
	f := newOrgFixture(t)
	svc := NewStatisticsService(f.db, 0)

	stats, err := svc.WeeklyStatistics(context.Background(), f.group.ID, d(t, "2024-09-01"))
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalMembers)
	assert.Equal(t, 0.0, stats.AttendanceRate)
	assert.Equal(t, 0.0, stats.AverageQtCount)

	_, err = svc.WeeklyStatistics(context.Background(), f.group.ID, d(t, "2024-09-03"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestWeeklyStatistics_IgnoresRowsOfFormerMembers(t *testing.T) {
	sf := newStatsFixture(t)
	ctx := context.Background()
	m := sf.members

	sf.submit(t, sf.group.ID, "2024-09-01", entry(m[0], "O", 2), entry(m[1], "O", 2))
	_, err := NewAssignmentService(sf.db).RemoveMember(ctx, sf.group.ID, m[0], d(t, "2024-08-31"))
	require.NoError(t, err)

	stats, err := NewStatisticsService(sf.db, 0).WeeklyStatistics(ctx, sf.group.ID, d(t, "2024-09-01"))
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalMembers)
	assert.Equal(t, 1, stats.AttendedCount)
	assert.Equal(t, 33.33, stats.AttendanceRate)
	assert.Equal(t, 0.67, stats.AverageQtCount)
}

func TestVillageAndDepartmentStatistics_AreMemberWeighted(t *testing.T) {
	sf := newStatsFixture(t)
	ctx := context.Background()
	svc := NewStatisticsService(sf.db, 0)
	m := sf.members

	sf.submit(t, sf.group.ID, "2024-09-01",
		entry(m[0], "O", 1), entry(m[1], "O", 1), entry(m[2], "O", 1), entry(m[3], "X", 1))
	sf.submit(t, sf.small.ID, "2024-09-01", entry(sf.loner, "X", 0))

	// a group whose term is over does not count
	ended := sf.newGroup(t, sf.village.ID, "Old GBS", "2024-01-01", "2024-06-30")
	_, err := NewAssignmentService(sf.db).AssignMember(ctx, ended.ID, sf.loner, d(t, "2024-01-07"))
	require.NoError(t, err)

	village, err := svc.VillageWeeklyStatistics(ctx, sf.village.ID, d(t, "2024-09-01"))
	require.NoError(t, err)
	require.Len(t, village.Groups, 2)
	assert.Equal(t, 5, village.TotalMembers)
	assert.Equal(t, 3, village.AttendedCount)
	assert.Equal(t, 60.0, village.AttendanceRate)
	assert.Equal(t, 0.8, village.AverageQtCount)

	dept, err := svc.DepartmentWeeklyStatistics(ctx, sf.dept.ID, d(t, "2024-09-01"))
	require.NoError(t, err)
	require.Len(t, dept.Villages, 1)
	assert.Equal(t, village.WeekTotals, dept.WeekTotals)
	assert.Equal(t, village.WeekTotals, dept.Villages[0].WeekTotals)
}

func TestRangeStatistics_TrendAndSummary(t *testing.T) {
	sf := newStatsFixture(t)
	ctx := context.Background()
	svc := NewStatisticsService(sf.db, 0)
	m := sf.members

	sf.submit(t, sf.group.ID, "2024-09-01",
		entry(m[0], "O", 2), entry(m[1], "O", 2), entry(m[2], "X", 2), entry(m[3], "X", 2))
	sf.submit(t, sf.group.ID, "2024-09-08",
		entry(m[0], "O", 4), entry(m[1], "O", 4), entry(m[2], "O", 4), entry(m[3], "X", 4))

	report, err := svc.RangeStatistics(ctx, "gbs", sf.group.ID, d(t, "2024-09-03"), d(t, "2024-09-15"))
	require.NoError(t, err)
	assert.Equal(t, dto.ScopeGbs, report.Scope)
	require.Len(t, report.Weeks, 3)
	assert.Equal(t, d(t, "2024-09-01"), report.Weeks[0].WeekStart)
	assert.Equal(t, 50.0, report.Weeks[0].AttendanceRate)
	assert.Nil(t, report.Weeks[0].RateChange)
	assert.Equal(t, 75.0, report.Weeks[1].AttendanceRate)
	require.NotNil(t, report.Weeks[1].RateChange)
	assert.Equal(t, 25.0, *report.Weeks[1].RateChange)
	assert.Equal(t, 0.0, report.Weeks[2].AttendanceRate)
	assert.Equal(t, -75.0, *report.Weeks[2].RateChange)

	assert.Equal(t, 3, report.Summary.Weeks)
	assert.Equal(t, 12, report.Summary.TotalMemberWeeks)
	assert.Equal(t, 5, report.Summary.AttendedCount)
	assert.Equal(t, 41.67, report.Summary.AttendanceRate)
	assert.Equal(t, 2.0, report.Summary.AverageQtCount)

	village, err := svc.RangeStatistics(ctx, "VILLAGE", sf.village.ID, d(t, "2024-09-01"), d(t, "2024-09-01"))
	require.NoError(t, err)
	require.Len(t, village.Weeks, 1)
	assert.Equal(t, 5, village.Weeks[0].TotalMembers)
	assert.Equal(t, 40.0, village.Weeks[0].AttendanceRate)
}

func TestRangeStatistics_Validation(t *testing.T) {
	f := newOrgFixture(t)
	ctx := context.Background()
	svc := NewStatisticsService(f.db, 4)

	_, err := svc.RangeStatistics(ctx, "CITY", f.group.ID, d(t, "2024-09-01"), d(t, "2024-09-08"))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.RangeStatistics(ctx, dto.ScopeGbs, f.group.ID, d(t, "2024-09-08"), d(t, "2024-09-01"))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.RangeStatistics(ctx, dto.ScopeGbs, f.group.ID, d(t, "2024-09-01"), d(t, "2024-10-31"))
	assert.ErrorIs(t, err, ErrInvalidInput, "more weeks than the limit")

	_, err = svc.RangeStatistics(ctx, dto.ScopeDepartment, 9999, d(t, "2024-09-01"), d(t, "2024-09-08"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExportRangeStatistics_WritesWorkbook(t *testing.T) {
	sf := newStatsFixture(t)
	m := sf.members
	sf.submit(t, sf.group.ID, "2024-09-01", entry(m[0], "O", 2), entry(m[1], "X", 2))

	var buf bytes.Buffer
	err := NewStatisticsService(sf.db, 0).ExportRangeStatistics(context.Background(),
		dto.ScopeGbs, sf.group.ID, d(t, "2024-09-01"), d(t, "2024-09-14"), &buf)
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(weeklySheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Week start", rows[0][0])
	assert.Equal(t, "2024-09-01", rows[1][0])
	assert.Equal(t, "4", rows[1][1])
	assert.Equal(t, "25", rows[1][3])

	summary, err := f.GetRows(summarySheet)
	require.NoError(t, err)
	assert.Equal(t, []string{"Scope", dto.ScopeGbs}, summary[0])
}

func TestTallyWeek(t *testing.T) {
	week := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	end := week.AddDate(0, 0, -1)
	memberships := []models.GbsMemberHistory{
		{MemberID: 1, TemporalRange: models.NewTemporalRange(week.AddDate(0, -1, 0), nil)},
		{MemberID: 2, TemporalRange: models.NewTemporalRange(week.AddDate(0, -1, 0), &end)},
		{MemberID: 3, TemporalRange: models.NewTemporalRange(week, nil)},
	}
	rows := []models.Attendance{
		{MemberID: 1, WeekStart: week, Worship: models.WorshipAttended, QtCount: 6, Ministry: models.MinistryB},
		{MemberID: 2, WeekStart: week, Worship: models.WorshipAttended, QtCount: 6, Ministry: models.MinistryB},
		{MemberID: 3, WeekStart: week.AddDate(0, 0, 7), Worship: models.WorshipAttended, QtCount: 6, Ministry: models.MinistryB},
	}

	got := tallyWeek(memberships, rows, week)
	assert.Equal(t, 2, got.members)
	assert.Equal(t, 1, got.attended)
	assert.Equal(t, 6, got.qt)
	assert.Equal(t, 1, got.ministry[models.MinistryB])

	totals := got.totals()
	assert.Equal(t, 50.0, totals.AttendanceRate)
	assert.Equal(t, 3.0, totals.AverageQtCount)
	assert.Equal(t, dto.WeekTotals{}, newTally().totals())
}
