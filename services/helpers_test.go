package services

import (
	"context"
	"testing"
	"time"

	"gbsorgapi/bootstrap"
	"gbsorgapi/config"
	"gbsorgapi/models"
	"gbsorgapi/pkg/memdb"
	"gbsorgapi/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB starts an in-memory MySQL server with the application schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	srv, err := memdb.Start(context.Background(), "gbs_test")
	require.NoError(t, err)
	t.Cleanup(srv.Close)

	db, err := config.Open(config.BuildDSN("root", "", srv.Host(), srv.Port, srv.Database))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	require.NoError(t, bootstrap.ApplySchema(db))
	return db
}

// d parses a YYYY-MM-DD date or fails the test.
func d(t *testing.T, s string) time.Time {
	t.Helper()
	date, err := utils.ParseDate(s)
	require.NoError(t, err)
	return date
}

func dp(t *testing.T, s string) *time.Time {
	date := d(t, s)
	return &date
}

// freezeToday pins utils.Today to s for the rest of the test.
func freezeToday(t *testing.T, s string) {
	now := d(t, s).Add(10 * time.Hour)
	restore := utils.SetNowFunc(func() time.Time { return now })
	t.Cleanup(restore)
}

// orgFixture is a department with one village and one group running through 2024.
type orgFixture struct {
	db      *gorm.DB
	catalog CatalogService
	dept    *models.Department
	village *models.Village
	group   *models.GbsGroup
}

func newOrgFixture(t *testing.T) *orgFixture {
	t.Helper()
	db := newTestDB(t)
	ctx := context.Background()
	catalog := NewCatalogService(db)

	dept, err := catalog.CreateDepartment(ctx, "Young Adults")
	require.NoError(t, err)
	village, err := catalog.CreateVillage(ctx, dept.ID, "Village A")
	require.NoError(t, err)
	group, err := catalog.CreateGroup(ctx, village.ID, "GBS 1", d(t, "2024-01-01"), d(t, "2024-12-31"))
	require.NoError(t, err)

	return &orgFixture{db: db, catalog: catalog, dept: dept, village: village, group: group}
}

func (f *orgFixture) user(t *testing.T, name string) *models.User {
	t.Helper()
	u, err := f.catalog.CreateUser(context.Background(), models.User{Name: name})
	require.NoError(t, err)
	return u
}

func (f *orgFixture) staff(t *testing.T, name, role string) *models.User {
	t.Helper()
	deptID := f.dept.ID
	u, err := f.catalog.CreateUser(context.Background(), models.User{Name: name, Role: role, DepartmentID: &deptID})
	require.NoError(t, err)
	return u
}

func (f *orgFixture) newGroup(t *testing.T, villageID uint, name, termStart, termEnd string) *models.GbsGroup {
	t.Helper()
	g, err := f.catalog.CreateGroup(context.Background(), villageID, name, d(t, termStart), d(t, termEnd))
	require.NoError(t, err)
	return g
}

func userIDs(users []models.User) []uint {
	ids := make([]uint, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids
}

// assertNoMemberOverlap fails when two membership rows of the same (group, member) share a day.
func assertNoMemberOverlap(t *testing.T, f *orgFixture) {
	t.Helper()
	var rows []models.GbsMemberHistory
	require.NoError(t, f.db.Order("gbs_group_id, member_id, start_dt").Find(&rows).Error)
	for i := range rows {
		for j := i + 1; j < len(rows); j++ {
			a, b := rows[i], rows[j]
			if a.GbsGroupID != b.GbsGroupID || a.MemberID != b.MemberID {
				continue
			}
			assert.False(t, a.Overlaps(b.TemporalRange),
				"member rows %d and %d of user id=%d in group id=%d overlap", a.ID, b.ID, a.MemberID, a.GbsGroupID)
		}
	}
}

// assertSingleOpenLeader fails when a group has more than one open leader row.
func assertSingleOpenLeader(t *testing.T, f *orgFixture, groupIDs ...uint) {
	t.Helper()
	for _, id := range groupIDs {
		var count int64
		require.NoError(t, f.db.Model(&models.GbsLeaderHistory{}).
			Where("gbs_group_id = ? AND end_dt IS NULL", id).Count(&count).Error)
		assert.LessOrEqual(t, count, int64(1), "group id=%d has %d open leader rows", id, count)
	}
}
