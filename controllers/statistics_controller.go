package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"gbsorgapi/services"
	"gbsorgapi/services/dto"
	"gbsorgapi/utils"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// getGroupStatistics returns the weekly statistics of a group
// @Summary Group weekly statistics
// @Tags Statistics
// @Produce json
// @Param id path int true "Group ID"
// @Param week path string true "Week start, a Sunday (YYYY-MM-DD)"
// @Success 200 {object} dto.GroupWeekStatistics
// @Failure 400 {object} StandardErrorResponse
// @Failure 403 {object} StandardErrorResponse
// @Router /groups/{id}/statistics/{week} [get]
func getGroupStatistics(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	week, ok := weekParam(c)
	if !ok || !canManageGroup(c, id, week) {
		return
	}
	stats, err := statisticsSrv.WeeklyStatistics(c.Request.Context(), id, week)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, stats)
}

// getVillageStatistics returns the weekly roll-up of a village
// @Summary Village weekly statistics
// @Tags Statistics
// @Produce json
// @Param id path int true "Village ID"
// @Param week path string true "Week start, a Sunday (YYYY-MM-DD)"
// @Success 200 {object} dto.VillageWeekStatistics
// @Failure 400 {object} StandardErrorResponse
// @Failure 403 {object} StandardErrorResponse
// @Router /villages/{id}/statistics/{week} [get]
func getVillageStatistics(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	week, ok := weekParam(c)
	if !ok || !canAccessVillage(c, id, week) {
		return
	}
	stats, err := statisticsSrv.VillageWeeklyStatistics(c.Request.Context(), id, week)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, stats)
}

// getDepartmentStatistics returns the weekly roll-up of a department
// @Summary Department weekly statistics
// @Tags Statistics
// @Produce json
// @Param id path int true "Department ID"
// @Param week path string true "Week start, a Sunday (YYYY-MM-DD)"
// @Success 200 {object} dto.DepartmentWeekStatistics
// @Failure 400 {object} StandardErrorResponse
// @Failure 403 {object} StandardErrorResponse
// @Router /departments/{id}/statistics/{week} [get]
func getDepartmentStatistics(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	week, ok := weekParam(c)
	if !ok || !canAccessDepartment(c, id) {
		return
	}
	stats, err := statisticsSrv.DepartmentWeeklyStatistics(c.Request.Context(), id, week)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, stats)
}

type rangeQuery struct {
	scope   string
	scopeID uint
	start   time.Time
	end     time.Time
}

// bindRangeQuery parses scope, id, start and end and checks the caller may read the scope.
func bindRangeQuery(c *gin.Context) (rangeQuery, bool) {
	var q rangeQuery
	scope, err := services.ParseScope(c.Query("scope"))
	if err != nil {
		respondError(c, err)
		return q, false
	}
	id, err := utils.ParseID("id", c.Query("id"))
	if err != nil {
		utils.ErrorResponse(c, err)
		return q, false
	}
	start, err := utils.ParseDate(c.Query("start"))
	if err != nil {
		utils.ErrorResponse(c, fmt.Errorf("start: %w", err))
		return q, false
	}
	end, err := utils.ParseDate(c.Query("end"))
	if err != nil {
		utils.ErrorResponse(c, fmt.Errorf("end: %w", err))
		return q, false
	}
	q = rangeQuery{scope: scope, scopeID: id, start: start, end: end}

	switch scope {
	case dto.ScopeGbs:
		return q, canManageGroup(c, id, end)
	case dto.ScopeVillage:
		return q, canAccessVillage(c, id, end)
	default:
		return q, canAccessDepartment(c, id)
	}
}

// getRangeStatistics returns week-by-week statistics for a scope
// @Summary Range statistics
// @Description Weeks start at the Sunday on or before start. Each week carries the change in attendance rate from the previous one.
// @Tags Statistics
// @Produce json
// @Param scope query string true "GBS, VILLAGE or DEPARTMENT"
// @Param id query int true "Scope ID"
// @Param start query string true "Range start (YYYY-MM-DD)"
// @Param end query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.RangeStatistics
// @Failure 400 {object} StandardErrorResponse
// @Failure 403 {object} StandardErrorResponse
// @Router /statistics [get]
func getRangeStatistics(c *gin.Context) {
	q, ok := bindRangeQuery(c)
	if !ok {
		return
	}
	report, err := statisticsSrv.RangeStatistics(c.Request.Context(), q.scope, q.scopeID, q.start, q.end)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, report)
}

// exportRangeStatistics downloads range statistics as a workbook
// @Summary Export range statistics
// @Tags Statistics
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param scope query string true "GBS, VILLAGE or DEPARTMENT"
// @Param id query int true "Scope ID"
// @Param start query string true "Range start (YYYY-MM-DD)"
// @Param end query string true "Range end (YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 400 {object} StandardErrorResponse
// @Router /statistics/export [get]
func exportRangeStatistics(c *gin.Context) {
	q, ok := bindRangeQuery(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := statisticsSrv.ExportRangeStatistics(c.Request.Context(), q.scope, q.scopeID, q.start, q.end, &buf); err != nil {
		respondError(c, err)
		return
	}
	filename := fmt.Sprintf("statistics_%s_%d_%s_%s.xlsx",
		q.scope, q.scopeID, utils.FormatDate(q.start), utils.FormatDate(q.end))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// RegisterStatisticsRoutes registers the attendance statistics endpoints.
func RegisterStatisticsRoutes(rg *gin.RouterGroup) {
	rg.GET("/groups/:id/statistics/:week", getGroupStatistics)
	rg.GET("/villages/:id/statistics/:week", getVillageStatistics)
	rg.GET("/departments/:id/statistics/:week", getDepartmentStatistics)
	rg.GET("/statistics", getRangeStatistics)
	rg.GET("/statistics/export", exportRangeStatistics)
}
