package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: conn, SkipInitializeWithVersion: true}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

var leaderColumns = []string{"id", "gbs_group_id", "leader_id", "start_dt", "end_dt"}

func TestLockByGroupID_TakesRowLock(t *testing.T) {
	db, mock := newMockDB(t)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT \\* FROM `gbs_leader_history` WHERE gbs_group_id = \\? ORDER BY start_dt DESC, id DESC FOR UPDATE").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(leaderColumns).AddRow(1, 7, 3, start, nil))

	rows, err := NewGbsLeaderHistoryRepository(db).LockByGroupID(nil, 7)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].IsOpen())
	assert.Equal(t, uint(3), rows[0].LeaderID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveByGroupID_UsesDateBounds(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("WHERE gbs_group_id = \\? AND \\(gbs_leader_history.start_dt <= \\? AND \\(gbs_leader_history.end_dt IS NULL OR gbs_leader_history.end_dt >= \\?\\)\\)").
		WithArgs(int64(7), "2024-07-15", "2024-07-15").
		WillReturnRows(sqlmock.NewRows(leaderColumns))

	rows, err := NewGbsLeaderHistoryRepository(db).GetActiveByGroupID(nil, 7, time.Date(2024, 7, 15, 18, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClose_OnlyTouchesOpenRow(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("UPDATE `gbs_leader_history` SET `end_dt`=\\?,`updated_at`=\\? WHERE id = \\? AND end_dt IS NULL").
		WithArgs("2024-06-30", sqlmock.AnyArg(), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	n, err := NewGbsLeaderHistoryRepository(db).Close(nil, 1, time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Zero(t, n, "an already closed row reports no change")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLockOpenByGroupIDs_EmptyInputSkipsQuery(t *testing.T) {
	db, mock := newMockDB(t)

	rows, err := NewGbsLeaderHistoryRepository(db).LockOpenByGroupIDs(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
