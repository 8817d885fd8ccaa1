package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDelegation_GrantsControlWithinRange(t *testing.T) {
	freezeToday(t, "2024-07-20")
	f := newOrgFixture(t)
	ctx := context.Background()
	res := NewResolutionService(f.db)
	l1 := f.user(t, "Leader One")
	l2 := f.user(t, "Leader Two")
	m1 := f.user(t, "Member One")

	assignments := NewAssignmentService(f.db)
	_, err := assignments.AssignLeader(ctx, f.group.ID, l1.ID, d(t, "2024-01-01"))
	require.NoError(t, err)
	_, err = assignments.AssignLeader(ctx, f.group.ID, l2.ID, d(t, "2024-07-01"))
	require.NoError(t, err)

	delegation, err := NewDelegationService(f.db).CreateDelegation(ctx, l2.ID, m1.ID, f.group.ID, d(t, "2024-08-01"), dp(t, "2024-08-31"))
	require.NoError(t, err)
	assert.NotZero(t, delegation.ID)

	ok, err := res.HasControl(ctx, m1.ID, f.group.ID, d(t, "2024-08-15"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = res.HasControl(ctx, m1.ID, f.group.ID, d(t, "2024-09-15"))
	require.NoError(t, err)
	assert.False(t, ok)

	// the primary leader keeps control during the delegation
	ok, err = res.HasControl(ctx, l2.ID, f.group.ID, d(t, "2024-08-15"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = res.HasControl(ctx, l1.ID, f.group.ID, d(t, "2024-08-15"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCreateDelegation_Validation(t *testing.T) {
	freezeToday(t, "2024-07-20")
	f := newOrgFixture(t)
	ctx := context.Background()
	svc := NewDelegationService(f.db)
	leader := f.user(t, "Leader")
	m1 := f.user(t, "Member One")
	stranger := f.user(t, "Stranger")

	_, err := NewAssignmentService(f.db).AssignLeader(ctx, f.group.ID, leader.ID, d(t, "2024-01-01"))
	require.NoError(t, err)

	tests := []struct {
		name      string
		delegator uint
		delegatee uint
		group     uint
		start     string
		end       string
		want      error
	}{
		{"start in the past", leader.ID, m1.ID, f.group.ID, "2024-07-19", "", ErrInvalidInput},
		{"end before start", leader.ID, m1.ID, f.group.ID, "2024-08-10", "2024-08-01", ErrInvalidInput},
		{"delegate to self", leader.ID, leader.ID, f.group.ID, "2024-08-01", "", ErrInvalidInput},
		{"unknown group", leader.ID, m1.ID, 9999, "2024-08-01", "", ErrNotFound},
		{"unknown delegatee", leader.ID, 9999, f.group.ID, "2024-08-01", "", ErrNotFound},
		{"delegator without control", stranger.ID, m1.ID, f.group.ID, "2024-08-01", "", ErrForbidden},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var end *time.Time
			if tc.end != "" {
				end = dp(t, tc.end)
			}
			_, err := svc.CreateDelegation(ctx, tc.delegator, tc.delegatee, tc.group, d(t, tc.start), end)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	// today itself is accepted
	_, err = svc.CreateDelegation(ctx, leader.ID, m1.ID, f.group.ID, d(t, "2024-07-20"), dp(t, "2024-07-27"))
	require.NoError(t, err)
}

func TestCreateDelegation_RejectsOverlappingDuplicate(t *testing.T) {
	freezeToday(t, "2024-07-20")
	f := newOrgFixture(t)
	ctx := context.Background()
	svc := NewDelegationService(f.db)
	leader := f.user(t, "Leader")
	m1 := f.user(t, "Member One")
	m2 := f.user(t, "Member Two")

	_, err := NewAssignmentService(f.db).AssignLeader(ctx, f.group.ID, leader.ID, d(t, "2024-01-01"))
	require.NoError(t, err)

	_, err = svc.CreateDelegation(ctx, leader.ID, m1.ID, f.group.ID, d(t, "2024-08-01"), dp(t, "2024-08-31"))
	require.NoError(t, err)

	_, err = svc.CreateDelegation(ctx, leader.ID, m1.ID, f.group.ID, d(t, "2024-08-31"), nil)
	assert.ErrorIs(t, err, ErrConflict)

	// disjoint dates for the same pair are fine
	_, err = svc.CreateDelegation(ctx, leader.ID, m1.ID, f.group.ID, d(t, "2024-09-01"), dp(t, "2024-09-30"))
	require.NoError(t, err)

	// several delegatees may hold the group at once
	_, err = svc.CreateDelegation(ctx, leader.ID, m2.ID, f.group.ID, d(t, "2024-08-01"), dp(t, "2024-08-31"))
	require.NoError(t, err)

	active, err := svc.ListGroupDelegations(ctx, f.group.ID, d(t, "2024-08-15"))
	require.NoError(t, err)
	assert.Len(t, active, 2)

	mine, err := svc.FindActiveDelegations(ctx, m1.ID, d(t, "2024-09-15"))
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, d(t, "2024-09-01"), mine[0].StartDate)
}

func TestEndDelegation(t *testing.T) {
	freezeToday(t, "2024-07-20")
	f := newOrgFixture(t)
	ctx := context.Background()
	svc := NewDelegationService(f.db)
	res := NewResolutionService(f.db)
	leader := f.user(t, "Leader")
	m1 := f.user(t, "Member One")

	_, err := NewAssignmentService(f.db).AssignLeader(ctx, f.group.ID, leader.ID, d(t, "2024-01-01"))
	require.NoError(t, err)
	delegation, err := svc.CreateDelegation(ctx, leader.ID, m1.ID, f.group.ID, d(t, "2024-08-01"), nil)
	require.NoError(t, err)

	_, err = svc.EndDelegation(ctx, delegation.ID, d(t, "2024-07-31"))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.EndDelegation(ctx, 9999, d(t, "2024-08-31"))
	assert.ErrorIs(t, err, ErrNotFound)

	ended, err := svc.EndDelegation(ctx, delegation.ID, d(t, "2024-08-10"))
	require.NoError(t, err)
	assert.Equal(t, d(t, "2024-08-10"), *ended.EndDate)

	ok, err := res.HasControl(ctx, m1.ID, f.group.ID, d(t, "2024-08-10"))
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = res.HasControl(ctx, m1.ID, f.group.ID, d(t, "2024-08-11"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEndDelegation_CannotExtendIntoNeighbour(t *testing.T) {
	freezeToday(t, "2024-07-20")
	f := newOrgFixture(t)
	ctx := context.Background()
	svc := NewDelegationService(f.db)
	leader := f.user(t, "Leader")
	m1 := f.user(t, "Member One")

	_, err := NewAssignmentService(f.db).AssignLeader(ctx, f.group.ID, leader.ID, d(t, "2024-01-01"))
	require.NoError(t, err)
	first, err := svc.CreateDelegation(ctx, leader.ID, m1.ID, f.group.ID, d(t, "2024-08-01"), dp(t, "2024-08-10"))
	require.NoError(t, err)
	_, err = svc.CreateDelegation(ctx, leader.ID, m1.ID, f.group.ID, d(t, "2024-08-20"), dp(t, "2024-08-31"))
	require.NoError(t, err)

	_, err = svc.EndDelegation(ctx, first.ID, d(t, "2024-09-30"))
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.EndDelegation(ctx, first.ID, d(t, "2024-08-11"))
	assert.ErrorIs(t, err, ErrInvalidInput)

	active, err := svc.FindActiveDelegations(ctx, m1.ID, d(t, "2024-08-25"))
	require.NoError(t, err)
	assert.Len(t, active, 1)

	// shortening, or ending on the current end, is still allowed
	_, err = svc.EndDelegation(ctx, first.ID, d(t, "2024-08-10"))
	require.NoError(t, err)
	shortened, err := svc.EndDelegation(ctx, first.ID, d(t, "2024-08-05"))
	require.NoError(t, err)
	assert.Equal(t, d(t, "2024-08-05"), *shortened.EndDate)
}
