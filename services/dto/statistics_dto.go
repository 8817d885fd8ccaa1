package dto

import "time"

// Statistics scopes.
const (
	ScopeGbs        = "GBS"
	ScopeVillage    = "VILLAGE"
	ScopeDepartment = "DEPARTMENT"
)

// WeekTotals holds the member-weighted figures of one week in any scope.
type WeekTotals struct {
	TotalMembers   int     `json:"total_members"`
	AttendedCount  int     `json:"attended_count"`
	QtTotal        int     `json:"qt_total"`
	AttendanceRate float64 `json:"attendance_rate"`
	AverageQtCount float64 `json:"average_qt_count"`
}

// GroupWeekStatistics is the weekly summary of one GBS group.
type GroupWeekStatistics struct {
	GbsGroupID uint      `json:"gbs_group_id"`
	GroupName  string    `json:"group_name"`
	WeekStart  time.Time `json:"week_start"`
	WeekTotals
	MinistryCounts map[string]int `json:"ministry_counts"`
}

// VillageWeekStatistics rolls up the village's active groups for one week.
type VillageWeekStatistics struct {
	VillageID   uint      `json:"village_id"`
	VillageName string    `json:"village_name"`
	WeekStart   time.Time `json:"week_start"`
	WeekTotals
	Groups []GroupWeekStatistics `json:"groups"`
}

// DepartmentWeekStatistics rolls up the department's villages for one week.
type DepartmentWeekStatistics struct {
	DepartmentID   uint      `json:"department_id"`
	DepartmentName string    `json:"department_name"`
	WeekStart      time.Time `json:"week_start"`
	WeekTotals
	Villages []VillageWeekStatistics `json:"villages"`
}

// WeekTrend is one week of a range report. RateChange is the difference in
// attendance rate from the previous week and is nil for the first week.
type WeekTrend struct {
	WeekStart time.Time `json:"week_start"`
	WeekTotals
	RateChange *float64 `json:"rate_change,omitempty"`
}

// RangeSummary weights every member-week equally across the range.
type RangeSummary struct {
	Weeks            int     `json:"weeks"`
	TotalMemberWeeks int     `json:"total_member_weeks"`
	AttendedCount    int     `json:"attended_count"`
	AttendanceRate   float64 `json:"attendance_rate"`
	AverageQtCount   float64 `json:"average_qt_count"`
}

// RangeStatistics is the week-by-week report for a scope.
type RangeStatistics struct {
	Scope     string       `json:"scope"`
	ScopeID   uint         `json:"scope_id"`
	StartDate time.Time    `json:"start_date"`
	EndDate   time.Time    `json:"end_date"`
	Weeks     []WeekTrend  `json:"weeks"`
	Summary   RangeSummary `json:"summary"`
}
