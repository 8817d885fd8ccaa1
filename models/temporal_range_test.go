package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dayPtr(s string) *time.Time {
	t := day(s)
	return &t
}

func TestTemporalRange_ContainsDate(t *testing.T) {
	closed := NewTemporalRange(day("2024-03-01"), dayPtr("2024-03-31"))
	open := NewTemporalRange(day("2024-03-01"), nil)

	tests := []struct {
		name string
		r    TemporalRange
		date string
		want bool
	}{
		{"before start", closed, "2024-02-29", false},
		{"on start", closed, "2024-03-01", true},
		{"inside", closed, "2024-03-15", true},
		{"on end", closed, "2024-03-31", true},
		{"after end", closed, "2024-04-01", false},
		{"open far future", open, "2030-01-01", true},
		{"open before start", open, "2024-02-01", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.ContainsDate(day(tt.date)))
		})
	}
}

func TestTemporalRange_ContainsDateIgnoresTimeOfDay(t *testing.T) {
	r := NewTemporalRange(day("2024-03-01"), dayPtr("2024-03-01"))
	assert.True(t, r.ContainsDate(time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC)))
}

func TestTemporalRange_Overlaps(t *testing.T) {
	march := NewTemporalRange(day("2024-03-01"), dayPtr("2024-03-31"))

	tests := []struct {
		name  string
		other TemporalRange
		want  bool
	}{
		{"ends the day before", NewTemporalRange(day("2024-02-01"), dayPtr("2024-02-29")), false},
		{"shares the first day", NewTemporalRange(day("2024-02-01"), dayPtr("2024-03-01")), true},
		{"shares the last day", NewTemporalRange(day("2024-03-31"), nil), true},
		{"starts the day after", NewTemporalRange(day("2024-04-01"), nil), false},
		{"open and earlier", NewTemporalRange(day("2023-01-01"), nil), true},
		{"nested", NewTemporalRange(day("2024-03-10"), dayPtr("2024-03-11")), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, march.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(march))
		})
	}
}

func TestTemporalRange_State(t *testing.T) {
	open := NewTemporalRange(day("2024-03-01"), nil)
	assert.True(t, open.IsOpen())
	assert.True(t, open.IsValid())
	assert.False(t, open.EndsBefore(day("2099-01-01")))

	closed := open.ClosedAt(day("2024-02-29"))
	assert.False(t, closed.IsOpen())
	assert.False(t, closed.IsValid(), "end before start")
	assert.True(t, open.IsOpen(), "ClosedAt returns a copy")

	sameDay := open.ClosedAt(day("2024-03-01"))
	assert.True(t, sameDay.IsValid())
	assert.True(t, sameDay.EndsBefore(day("2024-03-02")))
	assert.False(t, sameDay.EndsBefore(day("2024-03-01")))
}
