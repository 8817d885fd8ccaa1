package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"gbsorgapi/pkg/logger"
	"gbsorgapi/services/dto"
	"gbsorgapi/utils"

	"github.com/xuri/excelize/v2"
)

const (
	weeklySheet  = "Weekly"
	summarySheet = "Summary"
)

var weeklyHeader = []interface{}{
	"Week start", "Members", "Attended", "Attendance rate (%)", "Average QT", "Rate change",
}

func (s *statisticsService) ExportRangeStatistics(ctx context.Context, scope string, scopeID uint, start, end time.Time, w io.Writer) error {
	report, err := s.RangeStatistics(ctx, scope, scopeID, start, end)
	if err != nil {
		return err
	}
	if err := WriteRangeStatistics(report, w); err != nil {
		return err
	}
	logger.Infof("Exported %s id=%d statistics for %d weeks", report.Scope, report.ScopeID, len(report.Weeks))
	return nil
}

// WriteRangeStatistics renders report as an xlsx workbook with a weekly sheet and a summary sheet.
func WriteRangeStatistics(report *dto.RangeStatistics, w io.Writer) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logger.Warnf("Failed to close workbook: %v", err)
		}
	}()

	if err := f.SetSheetName("Sheet1", weeklySheet); err != nil {
		return fmt.Errorf("failed to name weekly sheet: %w", err)
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := f.SetSheetRow(weeklySheet, "A1", &weeklyHeader); err != nil {
		return fmt.Errorf("failed to write weekly header: %w", err)
	}
	if err := f.SetRowStyle(weeklySheet, 1, 1, bold); err != nil {
		return fmt.Errorf("failed to style weekly header: %w", err)
	}
	for i, week := range report.Weeks {
		row := []interface{}{
			utils.FormatDate(week.WeekStart),
			week.TotalMembers,
			week.AttendedCount,
			week.AttendanceRate,
			week.AverageQtCount,
			nil,
		}
		if week.RateChange != nil {
			row[5] = *week.RateChange
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(weeklySheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write week %s: %w", utils.FormatDate(week.WeekStart), err)
		}
	}
	if err := f.SetColWidth(weeklySheet, "A", "F", 18); err != nil {
		return fmt.Errorf("failed to size weekly columns: %w", err)
	}

	summary := [][]interface{}{
		{"Scope", report.Scope},
		{"Scope id", report.ScopeID},
		{"Start", utils.FormatDate(report.StartDate)},
		{"End", utils.FormatDate(report.EndDate)},
		{"Weeks", report.Summary.Weeks},
		{"Member weeks", report.Summary.TotalMemberWeeks},
		{"Attended", report.Summary.AttendedCount},
		{"Attendance rate (%)", report.Summary.AttendanceRate},
		{"Average QT", report.Summary.AverageQtCount},
	}
	for i, row := range summary {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write summary row %d: %w", i+1, err)
		}
	}
	if err := f.SetColWidth(summarySheet, "A", "A", 22); err != nil {
		return fmt.Errorf("failed to size summary column: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
