package services

import (
	"context"
	"testing"

	"gbsorgapi/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitWeek_ReplacesPreviousSubmission(t *testing.T) {
	f := newOrgFixture(t)
	ctx := context.Background()
	svc := NewAttendanceService(f.db)
	leader := f.user(t, "Leader")
	m1 := f.user(t, "M1")
	m2 := f.user(t, "M2")
	for _, m := range []uint{m1.ID, m2.ID} {
		_, err := NewAssignmentService(f.db).AssignMember(ctx, f.group.ID, m, d(t, "2024-08-04"))
		require.NoError(t, err)
	}
	week := d(t, "2024-09-01")

	rows, err := svc.SubmitWeek(ctx, f.group.ID, week, leader.ID, []dto.AttendanceEntry{
		{MemberID: m1.ID, Worship: "O", QtCount: 5, Ministry: "A"},
		{MemberID: m2.ID, Worship: "X", QtCount: 0, Ministry: "C"},
	})
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	_, err = svc.SubmitWeek(ctx, f.group.ID, week, leader.ID, []dto.AttendanceEntry{
		{MemberID: m2.ID, Worship: "O", QtCount: 3, Ministry: "B"},
	})
	require.NoError(t, err)

	stored, err := svc.GetWeek(ctx, f.group.ID, week)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, m2.ID, stored[0].MemberID)
	assert.Equal(t, "O", stored[0].Worship)
	assert.Equal(t, 3, stored[0].QtCount)
	assert.Equal(t, leader.ID, stored[0].CreatedByID)
	assert.Equal(t, week, stored[0].WeekStart)
}

func TestSubmitWeek_Validation(t *testing.T) {
	f := newOrgFixture(t)
	ctx := context.Background()
	svc := NewAttendanceService(f.db)
	leader := f.user(t, "Leader")
	m1 := f.user(t, "M1")
	outsider := f.user(t, "Outsider")
	_, err := NewAssignmentService(f.db).AssignMember(ctx, f.group.ID, m1.ID, d(t, "2024-08-04"))
	require.NoError(t, err)

	sunday := d(t, "2024-09-01")
	tests := []struct {
		name    string
		week    string
		entries []dto.AttendanceEntry
		want    error
	}{
		{"not a sunday", "2024-09-02", nil, ErrInvalidInput},
		{"bad worship", "2024-09-01", []dto.AttendanceEntry{{MemberID: m1.ID, Worship: "Y", Ministry: "A"}}, ErrInvalidInput},
		{"qt above six", "2024-09-01", []dto.AttendanceEntry{{MemberID: m1.ID, Worship: "O", QtCount: 7, Ministry: "A"}}, ErrInvalidInput},
		{"bad ministry", "2024-09-01", []dto.AttendanceEntry{{MemberID: m1.ID, Worship: "O", Ministry: "D"}}, ErrInvalidInput},
		{"duplicate member", "2024-09-01", []dto.AttendanceEntry{
			{MemberID: m1.ID, Worship: "O", Ministry: "A"},
			{MemberID: m1.ID, Worship: "X", Ministry: "A"},
		}, ErrInvalidInput},
		{"not a member that week", "2024-09-01", []dto.AttendanceEntry{{MemberID: outsider.ID, Worship: "O", Ministry: "A"}}, ErrInvalidInput},
		{"membership starts later", "2024-07-28", []dto.AttendanceEntry{{MemberID: m1.ID, Worship: "O", Ministry: "A"}}, ErrInvalidInput},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.SubmitWeek(ctx, f.group.ID, d(t, tc.week), leader.ID, tc.entries)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err = svc.SubmitWeek(ctx, 9999, sunday, leader.ID, nil)
	assert.ErrorIs(t, err, ErrNotFound)

	stored, err := svc.GetWeek(ctx, f.group.ID, sunday)
	require.NoError(t, err)
	assert.Empty(t, stored)
}
