package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate(" 2024-09-01 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC), got)

	for _, bad := range []string{"", "2024-9-1", "01/09/2024", "2024-02-30"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestToday_UsesClock(t *testing.T) {
	restore := SetNowFunc(func() time.Time {
		return time.Date(2024, 7, 20, 22, 15, 0, 0, time.UTC)
	})
	defer restore()

	assert.Equal(t, "2024-07-20", FormatDate(Today()))
	got, err := ParseDateOrToday("")
	require.NoError(t, err)
	assert.Equal(t, Today(), got)
	assert.Equal(t, Today(), DateOrToday(time.Time{}))
}

func TestDateOf_KeepsCallerCalendarDay(t *testing.T) {
	seoul := time.FixedZone("KST", 9*60*60)
	got := DateOf(time.Date(2024, 9, 1, 1, 30, 0, 0, seoul))
	assert.Equal(t, "2024-09-01", FormatDate(got))
	assert.Equal(t, time.UTC, got.Location())
}

func TestWeekStartOf(t *testing.T) {
	tests := []struct{ in, want string }{
		{"2024-09-01", "2024-09-01"},
		{"2024-09-02", "2024-09-01"},
		{"2024-09-07", "2024-09-01"},
		{"2024-09-08", "2024-09-08"},
		{"2024-01-03", "2023-12-31"},
	}
	for _, tt := range tests {
		in, err := ParseDate(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, FormatDate(WeekStartOf(in)), tt.in)
		assert.True(t, IsSunday(WeekStartOf(in)))
	}
}

func TestSundaysBetween(t *testing.T) {
	start, _ := ParseDate("2024-09-03")
	end, _ := ParseDate("2024-09-15")

	weeks := SundaysBetween(start, end)
	require.Len(t, weeks, 3)
	assert.Equal(t, "2024-09-01", FormatDate(weeks[0]))
	assert.Equal(t, "2024-09-15", FormatDate(weeks[2]))

	assert.Len(t, SundaysBetween(end, start), 0)
	assert.Equal(t, "2024-09-04", FormatDate(AddDays(start, 1)))
}
