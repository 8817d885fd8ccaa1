package services

import (
	"context"
	"errors"
	"testing"

	"gbsorgapi/models"
	"gbsorgapi/repository"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		conflict bool
	}{
		{"deadlock", &mysql.MySQLError{Number: 1213, Message: "Deadlock found when trying to get lock"}, true},
		{"lock wait timeout", &mysql.MySQLError{Number: 1205, Message: "Lock wait timeout exceeded"}, true},
		{"duplicate entry", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}, true},
		{"translated duplicate", gorm.ErrDuplicatedKey, true},
		{"missing table", &mysql.MySQLError{Number: 1146, Message: "Table doesn't exist"}, false},
		{"connection reset", errors.New("connection reset by peer"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := writeError("assign_leader", tt.err, "failed to create leader row for group id=%d", 7)
			assert.Equal(t, tt.conflict, errors.Is(err, ErrConflict))
			assert.Contains(t, err.Error(), "group id=7")
			if !tt.conflict {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}

func TestWriteError_DuplicateAttendanceRowIsConflict(t *testing.T) {
	f := newOrgFixture(t)
	m := f.user(t, "Member")
	repo := repository.NewAttendanceRepository(f.db)

	row := func() []models.Attendance {
		return []models.Attendance{{
			MemberID:    m.ID,
			GbsGroupID:  f.group.ID,
			WeekStart:   d(t, "2024-08-04"),
			Worship:     models.WorshipAttended,
			Ministry:    models.MinistryA,
			CreatedByID: m.ID,
		}}
	}
	require.NoError(t, repo.CreateBatch(nil, row()))

	err := repo.CreateBatch(nil, row())
	require.Error(t, err)
	assert.ErrorIs(t, writeError("submit_attendance", err, "failed to save attendance"), ErrConflict)

	rows, err := NewAttendanceService(f.db).GetWeek(context.Background(), f.group.ID, d(t, "2024-08-04"))
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
