package controllers

import (
	"net/http"

	"gbsorgapi/services/dto"
	"gbsorgapi/utils"

	"github.com/gin-gonic/gin"
)

// putAttendance replaces the attendance of a group week
// @Summary Submit weekly attendance
// @Description Replaces every row of the week. Entries must belong to members active on the week start.
// @Tags Attendance
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Param week path string true "Week start, a Sunday (YYYY-MM-DD)"
// @Param submission body dto.AttendanceSubmission true "Entries"
// @Success 200 {object} AttendanceWeekResponse
// @Failure 400 {object} StandardErrorResponse
// @Failure 403 {object} StandardErrorResponse
// @Failure 404 {object} StandardErrorResponse
// @Router /groups/{id}/attendance/{week} [put]
func putAttendance(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	week, ok := weekParam(c)
	if !ok {
		return
	}
	var submission dto.AttendanceSubmission
	if !bindJSON(c, &submission) || !canManageGroup(c, id, week) {
		return
	}
	caller, _ := callerID(c)
	rows, err := attendanceSrv.SubmitWeek(c.Request.Context(), id, week, caller, submission.Entries)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, AttendanceWeekResponse{GbsGroupID: id, WeekStart: week, Entries: rows})
}

// getAttendance returns the attendance of a group week
// @Summary Weekly attendance
// @Tags Attendance
// @Produce json
// @Param id path int true "Group ID"
// @Param week path string true "Week start, a Sunday (YYYY-MM-DD)"
// @Success 200 {object} AttendanceWeekResponse
// @Failure 400 {object} StandardErrorResponse
// @Failure 403 {object} StandardErrorResponse
// @Router /groups/{id}/attendance/{week} [get]
func getAttendance(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	week, ok := weekParam(c)
	if !ok || !canManageGroup(c, id, week) {
		return
	}
	rows, err := attendanceSrv.GetWeek(c.Request.Context(), id, week)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, AttendanceWeekResponse{GbsGroupID: id, WeekStart: week, Entries: rows})
}

// RegisterAttendanceRoutes registers the weekly attendance endpoints.
func RegisterAttendanceRoutes(rg *gin.RouterGroup) {
	rg.PUT("/groups/:id/attendance/:week", putAttendance)
	rg.GET("/groups/:id/attendance/:week", getAttendance)
}
