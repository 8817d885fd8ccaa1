package models

import "time"

// TemporalRange is the [start, end] window shared by every history table.
// A nil EndDate means the row is still open.
type TemporalRange struct {
	StartDate time.Time  `gorm:"column:start_dt;type:date;not null" json:"start_date"`
	EndDate   *time.Time `gorm:"column:end_dt;type:date" json:"end_date,omitempty"`
}

// NewTemporalRange builds a range from a start date and optional end date.
func NewTemporalRange(start time.Time, end *time.Time) TemporalRange {
	r := TemporalRange{StartDate: dateOnly(start)}
	if end != nil {
		e := dateOnly(*end)
		r.EndDate = &e
	}
	return r
}

// IsOpen reports whether the range has no end date.
func (r TemporalRange) IsOpen() bool {
	return r.EndDate == nil
}

// IsValid reports whether the end date, if present, is not before the start date.
func (r TemporalRange) IsValid() bool {
	return r.EndDate == nil || !r.EndDate.Before(r.StartDate)
}

// ContainsDate reports whether d falls inside the range, bounds inclusive.
func (r TemporalRange) ContainsDate(d time.Time) bool {
	d = dateOnly(d)
	if d.Before(dateOnly(r.StartDate)) {
		return false
	}
	return r.EndDate == nil || !d.After(dateOnly(*r.EndDate))
}

// Overlaps reports whether the two ranges share at least one day.
func (r TemporalRange) Overlaps(other TemporalRange) bool {
	if r.EndDate != nil && dateOnly(*r.EndDate).Before(dateOnly(other.StartDate)) {
		return false
	}
	if other.EndDate != nil && dateOnly(*other.EndDate).Before(dateOnly(r.StartDate)) {
		return false
	}
	return true
}

// EndsBefore reports whether the range is closed strictly before d.
func (r TemporalRange) EndsBefore(d time.Time) bool {
	return r.EndDate != nil && dateOnly(*r.EndDate).Before(dateOnly(d))
}

// ClosedAt returns a copy of the range closed on end.
func (r TemporalRange) ClosedAt(end time.Time) TemporalRange {
	e := dateOnly(end)
	return TemporalRange{StartDate: r.StartDate, EndDate: &e}
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
