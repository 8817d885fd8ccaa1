package services

import (
	"context"
	"testing"

	"gbsorgapi/repository"
	"gbsorgapi/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// termFixture is an organization at the end of the first 2024 term.
type termFixture struct {
	*orgFixture
	group2  uint
	leaders []uint
	members []uint
}

func newTermFixture(t *testing.T) *termFixture {
	t.Helper()
	f := newOrgFixture(t)
	ctx := context.Background()
	svc := NewAssignmentService(f.db)
	g2 := f.newGroup(t, f.village.ID, "GBS 2", "2024-01-01", "2024-12-31")

	tf := &termFixture{orgFixture: f, group2: g2.ID}
	for i, name := range []string{"L1", "L2"} {
		l := f.user(t, name)
		tf.leaders = append(tf.leaders, l.ID)
		groupID := []uint{f.group.ID, g2.ID}[i]
		_, err := svc.AssignLeader(ctx, groupID, l.ID, d(t, "2024-01-01"))
		require.NoError(t, err)
	}
	for i, name := range []string{"M1", "M2", "M3", "M4"} {
		m := f.user(t, name)
		tf.members = append(tf.members, m.ID)
		groupID := []uint{f.group.ID, g2.ID}[i%2]
		_, err := svc.AssignMember(ctx, groupID, m.ID, d(t, "2024-01-07"))
		require.NoError(t, err)
	}
	return tf
}

func TestReorganize_ClosesAndOpensAtomically(t *testing.T) {
	f := newTermFixture(t)
	ctx := context.Background()
	res := NewResolutionService(f.db)

	newLeader := f.leaders[1]
	req := dto.NewReorganizationRequestBuilder().
		SetDepartment(f.dept.ID).
		SetWindow(d(t, "2024-07-01"), d(t, "2024-12-31")).
		AddGroup(f.group.ID, &newLeader, f.members[1], f.members[2]).
		AddGroup(f.group2, nil, f.members[0]).
		Build()

	report, err := NewReorganizationService(f.db).Reorganize(ctx, req)
	require.NoError(t, err)
	assert.NotEmpty(t, report.ReorganizationID)
	assert.False(t, report.DryRun)
	assert.Equal(t, 2, report.AffectedGroups)
	assert.Equal(t, 2, report.LeadersClosed)
	assert.Equal(t, 4, report.MembersClosed)
	assert.Equal(t, 1, report.LeadersAssigned)
	assert.Equal(t, 3, report.MembersAssigned)
	assert.False(t, report.CompletedAt.IsZero())

	leader, found, err := res.ActiveLeaderOf(ctx, f.group.ID, d(t, "2024-06-30"))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, f.leaders[0], leader.ID)

	leader, found, err = res.ActiveLeaderOf(ctx, f.group.ID, d(t, "2024-07-01"))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, f.leaders[1], leader.ID)

	_, found, err = res.ActiveLeaderOf(ctx, f.group2, d(t, "2024-07-01"))
	require.NoError(t, err)
	assert.False(t, found, "group without successor leader is leaderless")

	members, err := res.ActiveMembersOf(ctx, f.group.ID, d(t, "2024-07-07"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{f.members[1], f.members[2]}, userIDs(members))

	members, err = res.ActiveMembersOf(ctx, f.group2, d(t, "2024-07-07"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{f.members[0]}, userIDs(members))

	members, err = res.ActiveMembersOf(ctx, f.group2, d(t, "2024-06-30"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{f.members[1], f.members[3]}, userIDs(members))
}

func TestReorganize_InvalidSuccessorMutatesNothing(t *testing.T) {
	f := newTermFixture(t)
	ctx := context.Background()
	leaderRepo := repository.NewGbsLeaderHistoryRepository(f.db)
	memberRepo := repository.NewGbsMemberHistoryRepository(f.db)

	before, err := leaderRepo.GetByGroupID(nil, f.group.ID)
	require.NoError(t, err)

	foreign := f.newGroup(t, f.village.ID, "Old GBS", "2023-01-01", "2023-12-31")
	missing := uint(9999)
	tests := []struct {
		name string
		req  dto.ReorganizationRequest
		want error
	}{
		{
			name: "unknown successor leader",
			req: dto.NewReorganizationRequestBuilder().SetDepartment(f.dept.ID).
				SetWindow(d(t, "2024-07-01"), d(t, "2024-12-31")).
				AddGroup(f.group.ID, nil, f.members[0]).
				AddGroup(f.group2, &missing).Build(),
			want: ErrNotFound,
		},
		{
			name: "group outside the window",
			req: dto.NewReorganizationRequestBuilder().SetDepartment(f.dept.ID).
				SetWindow(d(t, "2024-07-01"), d(t, "2024-12-31")).
				AddGroup(foreign.ID, nil, f.members[0]).Build(),
			want: ErrInvalidInput,
		},
		{
			name: "duplicate member",
			req: dto.NewReorganizationRequestBuilder().SetDepartment(f.dept.ID).
				SetWindow(d(t, "2024-07-01"), d(t, "2024-12-31")).
				AddGroup(f.group.ID, nil, f.members[0], f.members[0]).Build(),
			want: ErrInvalidInput,
		},
		{
			name: "window reversed",
			req: dto.NewReorganizationRequestBuilder().SetDepartment(f.dept.ID).
				SetWindow(d(t, "2024-12-31"), d(t, "2024-07-01")).Build(),
			want: ErrInvalidInput,
		},
		{
			name: "open rows start after the window",
			req: dto.NewReorganizationRequestBuilder().SetDepartment(f.dept.ID).
				SetWindow(d(t, "2023-07-01"), d(t, "2024-12-31")).Build(),
			want: ErrConflict,
		},
		{
			name: "unknown department",
			req: dto.NewReorganizationRequestBuilder().SetDepartment(9999).
				SetWindow(d(t, "2024-07-01"), d(t, "2024-12-31")).Build(),
			want: ErrNotFound,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewReorganizationService(f.db).Reorganize(ctx, tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	after, err := leaderRepo.GetByGroupID(nil, f.group.ID)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	open, err := leaderRepo.CountOpenByGroupID(nil, f.group2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), open)

	members, err := memberRepo.GetActiveByGroupID(nil, f.group.ID, d(t, "2024-07-07"))
	require.NoError(t, err)
	assert.Len(t, members, 2)
}

func TestReorganize_DryRunWritesNothing(t *testing.T) {
	f := newTermFixture(t)
	ctx := context.Background()
	res := NewResolutionService(f.db)

	newLeader := f.leaders[1]
	req := dto.NewReorganizationRequestBuilder().
		SetDepartment(f.dept.ID).
		SetWindow(d(t, "2024-07-01"), d(t, "2024-12-31")).
		AddGroup(f.group.ID, &newLeader).
		SetDryRun(true).
		Build()

	report, err := NewReorganizationService(f.db).Reorganize(ctx, req)
	require.NoError(t, err)
	assert.True(t, report.DryRun)
	assert.Equal(t, 2, report.LeadersClosed)
	assert.Equal(t, 1, report.LeadersAssigned)

	leader, found, err := res.ActiveLeaderOf(ctx, f.group.ID, d(t, "2024-08-01"))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, f.leaders[0], leader.ID)
}

func TestReorganizationPayload_ToRequest(t *testing.T) {
	leader := uint(7)
	payload := dto.ReorganizationPayload{
		DepartmentID: 3,
		StartDate:    "2024-07-01",
		EndDate:      "2024-12-31",
		Assignments:  []dto.GroupAssignment{{GbsGroupID: 5, LeaderID: &leader, MemberIDs: []uint{8, 9}}},
		DryRun:       true,
	}
	req, err := payload.ToRequest()
	require.NoError(t, err)
	assert.Equal(t, uint(3), req.DepartmentID)
	assert.Equal(t, d(t, "2024-07-01"), req.StartDate)
	assert.Equal(t, d(t, "2024-12-31"), req.EndDate)
	assert.True(t, req.DryRun)
	require.Len(t, req.Assignments, 1)
	assert.Equal(t, []uint{8, 9}, req.Assignments[0].MemberIDs)

	payload.EndDate = "31/12/2024"
	_, err = payload.ToRequest()
	assert.Error(t, err)
}

func TestReorganize_RejectsSuccessorWithLaterClosedMembership(t *testing.T) {
	f := newOrgFixture(t)
	ctx := context.Background()
	assign := NewAssignmentService(f.db)
	m := f.user(t, "Returning Member")

	_, err := assign.AssignMember(ctx, f.group.ID, m.ID, d(t, "2024-09-01"))
	require.NoError(t, err)
	_, err = assign.RemoveMember(ctx, f.group.ID, m.ID, d(t, "2024-09-30"))
	require.NoError(t, err)

	req := dto.NewReorganizationRequestBuilder().
		SetDepartment(f.dept.ID).
		SetWindow(d(t, "2024-07-01"), d(t, "2024-08-31")).
		AddGroup(f.group.ID, nil, m.ID).
		Build()
	_, err = NewReorganizationService(f.db).Reorganize(ctx, req)
	assert.ErrorIs(t, err, ErrConflict)

	rows, err := repository.NewGbsMemberHistoryRepository(f.db).GetByMemberID(nil, m.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assertNoMemberOverlap(t, f.orgFixture)
}

func TestReorganize_LeavesNoOverlappingRows(t *testing.T) {
	f := newTermFixture(t)
	ctx := context.Background()

	newLeader := f.leaders[0]
	req := dto.NewReorganizationRequestBuilder().
		SetDepartment(f.dept.ID).
		SetWindow(d(t, "2024-07-01"), d(t, "2024-12-31")).
		AddGroup(f.group.ID, &newLeader, f.members...).
		AddGroup(f.group2, nil, f.members[0], f.members[1]).
		Build()
	_, err := NewReorganizationService(f.db).Reorganize(ctx, req)
	require.NoError(t, err)

	assertNoMemberOverlap(t, f.orgFixture)
	assertSingleOpenLeader(t, f.orgFixture, f.group.ID, f.group2)
}
