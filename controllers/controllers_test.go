package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gbsorgapi/bootstrap"
	"gbsorgapi/config"
	"gbsorgapi/models"
	"gbsorgapi/pkg/memdb"
	"gbsorgapi/services"
	"gbsorgapi/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: group id=1", services.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: two open rows", services.ErrConflict), http.StatusConflict},
		{fmt.Errorf("%w: bad date", services.ErrInvalidInput), http.StatusBadRequest},
		{fmt.Errorf("wrapped: %w", fmt.Errorf("%w: no control", services.ErrForbidden)), http.StatusForbidden},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusOf(tt.err), tt.err.Error())
	}
}

// apiFixture serves the full router over an in-memory database.
type apiFixture struct {
	router  *gin.Engine
	catalog services.CatalogService
	dept    *models.Department
	admin   *models.User
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv, err := memdb.Start(context.Background(), "gbs_api_test")
	require.NoError(t, err)
	t.Cleanup(srv.Close)
	db, err := config.Open(config.BuildDSN("root", "", srv.Host(), srv.Port, srv.Database))
	require.NoError(t, err)
	require.NoError(t, bootstrap.ApplySchema(db))

	catalog := services.NewCatalogService(db)
	SetCatalogService(catalog)
	SetResolutionService(services.NewResolutionService(db))
	SetAccessService(services.NewAccessService(db))
	SetAssignmentService(services.NewAssignmentService(db))
	SetDelegationService(services.NewDelegationService(db))
	SetReorganizationService(services.NewReorganizationService(db))
	SetAttendanceService(services.NewAttendanceService(db))
	SetStatisticsService(services.NewStatisticsService(db, 0))

	ctx := context.Background()
	dept, err := catalog.CreateDepartment(ctx, "Young Adults")
	require.NoError(t, err)
	admin, err := catalog.CreateUser(ctx, models.User{Name: "Admin", Role: models.RoleAdmin, DepartmentID: &dept.ID})
	require.NoError(t, err)

	return &apiFixture{router: NewRouter(""), catalog: catalog, dept: dept, admin: admin}
}

func (f *apiFixture) do(t *testing.T, method, path string, caller uint, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if caller != 0 {
		req.Header.Set(utils.UserIDHeader, fmt.Sprint(caller))
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *apiFixture) created(t *testing.T, path string, body interface{}) uint {
	t.Helper()
	w := f.do(t, http.MethodPost, path, f.admin.ID, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp CreatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.ID
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestAPI_LeaderTimeline(t *testing.T) {
	f := newAPIFixture(t)

	villageID := f.created(t, "/api/villages", VillageCreateRequest{DepartmentID: f.dept.ID, Name: "Village A"})
	groupID := f.created(t, "/api/groups", GroupCreateRequest{
		VillageID: villageID, Name: "GBS 1", TermStartDate: "2024-01-01", TermEndDate: "2024-12-31",
	})
	l1 := f.created(t, "/api/users", UserCreateRequest{Name: "L1", DepartmentID: &f.dept.ID})
	l2 := f.created(t, "/api/users", UserCreateRequest{Name: "L2", DepartmentID: &f.dept.ID})

	leaderPath := fmt.Sprintf("/api/groups/%d/leader", groupID)
	w := f.do(t, http.MethodPost, leaderPath, f.admin.ID, LeaderAssignRequest{LeaderID: l1, StartDate: "2024-01-01"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = f.do(t, http.MethodPost, leaderPath, f.admin.ID, LeaderAssignRequest{LeaderID: l2, StartDate: "2024-07-01"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = f.do(t, http.MethodPost, leaderPath, f.admin.ID, LeaderAssignRequest{LeaderID: l2, StartDate: "2024-08-01"})
	assert.Equal(t, http.StatusConflict, w.Code, "same leader already open")

	for date, want := range map[string]uint{"2024-06-15": l1, "2024-07-15": l2} {
		w := f.do(t, http.MethodGet, leaderPath+"?date="+date, f.admin.ID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[LeaderResponse](t, w)
		require.True(t, resp.Found, date)
		assert.Equal(t, want, resp.Leader.ID, date)
	}

	w = f.do(t, http.MethodGet, leaderPath+"?date=2023-12-31", f.admin.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decode[LeaderResponse](t, w).Found)

	w = f.do(t, http.MethodGet, fmt.Sprintf("/api/users/%d/history", l1), f.admin.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"end_date":"2024-06-30T00:00:00Z"`)

	w = f.do(t, http.MethodGet, leaderPath+"/history", f.admin.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	rows := decode[[]models.GbsLeaderHistory](t, w)
	require.Len(t, rows, 2)
	assert.Equal(t, l2, rows[0].LeaderID)
	assert.True(t, rows[0].IsOpen())
	assert.Equal(t, l1, rows[1].LeaderID)
}

func TestAPI_Authorization(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()

	village, err := f.catalog.CreateVillage(ctx, f.dept.ID, "Village A")
	require.NoError(t, err)
	group, err := f.catalog.CreateGroup(ctx, village.ID, "GBS 1", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	member, err := f.catalog.CreateUser(ctx, models.User{Name: "M1"})
	require.NoError(t, err)

	w := f.do(t, http.MethodGet, "/api/departments", 0, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.do(t, http.MethodPost, fmt.Sprintf("/api/groups/%d/leader", group.ID), member.ID,
		LeaderAssignRequest{LeaderID: member.ID, StartDate: "2024-01-01"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.do(t, http.MethodPost, "/api/departments", member.ID, DepartmentCreateRequest{Name: "Seniors"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.do(t, http.MethodGet, fmt.Sprintf("/api/groups/%d/statistics/2024-09-01", group.ID), member.ID, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.do(t, http.MethodGet, "/api/groups/999/delegations", member.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(t, http.MethodGet, fmt.Sprintf("/api/groups/%d/leader?date=2024-13-01", group.ID), member.ID, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(t, http.MethodPost, fmt.Sprintf("/api/groups/%d/members", group.ID), f.admin.ID,
		MemberAssignRequest{MemberID: member.ID, StartDate: "01/01/2024"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAPI_AttendanceAndStatistics(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()

	village, err := f.catalog.CreateVillage(ctx, f.dept.ID, "Village A")
	require.NoError(t, err)
	groupID := f.created(t, "/api/groups", GroupCreateRequest{
		VillageID: village.ID, Name: "GBS 1", TermStartDate: "2024-01-01", TermEndDate: "2024-12-31",
	})
	leader := f.created(t, "/api/users", UserCreateRequest{Name: "Leader", DepartmentID: &f.dept.ID})
	w := f.do(t, http.MethodPost, fmt.Sprintf("/api/groups/%d/leader", groupID), f.admin.ID,
		LeaderAssignRequest{LeaderID: leader, StartDate: "2024-08-01"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var entries []map[string]interface{}
	for i, worship := range []string{"O", "O", "O", "X"} {
		id := f.created(t, "/api/users", UserCreateRequest{Name: fmt.Sprintf("M%d", i+1), DepartmentID: &f.dept.ID})
		w := f.do(t, http.MethodPost, fmt.Sprintf("/api/groups/%d/members", groupID), f.admin.ID,
			MemberAssignRequest{MemberID: id, StartDate: "2024-08-04"})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		entries = append(entries, map[string]interface{}{"member_id": id, "worship": worship, "qt_count": 2, "ministry": "A"})
	}

	attendancePath := fmt.Sprintf("/api/groups/%d/attendance/2024-09-01", groupID)
	w = f.do(t, http.MethodPut, attendancePath, leader, map[string]interface{}{"entries": entries})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Len(t, decode[AttendanceWeekResponse](t, w).Entries, 4)

	w = f.do(t, http.MethodPut, fmt.Sprintf("/api/groups/%d/attendance/2024-09-02", groupID), leader,
		map[string]interface{}{"entries": entries})
	assert.Equal(t, http.StatusBadRequest, w.Code, "not a Sunday")

	w = f.do(t, http.MethodGet, fmt.Sprintf("/api/groups/%d/statistics/2024-09-01", groupID), leader, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	stats := decode[map[string]interface{}](t, w)
	assert.Equal(t, 75.0, stats["attendance_rate"])
	assert.Equal(t, 4.0, stats["total_members"])

	w = f.do(t, http.MethodGet, fmt.Sprintf("/api/statistics?scope=village&id=%d&start=2024-09-01&end=2024-09-08", village.ID), f.admin.ID, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"weeks":2`)

	w = f.do(t, http.MethodGet, fmt.Sprintf("/api/statistics/export?scope=GBS&id=%d&start=2024-09-01&end=2024-09-08", groupID), leader, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Body.Bytes())

	w = f.do(t, http.MethodGet, "/api/statistics?scope=CITY&id=1&start=2024-09-01&end=2024-09-08", f.admin.ID, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter("")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(utils.RequestIDHeader))
}
