package controllers

import (
	"net/http"

	"gbsorgapi/utils"

	"github.com/gin-gonic/gin"
)

// getGroupLeader resolves the primary leader of a group on a date
// @Summary Active leader of a group
// @Tags Resolution
// @Produce json
// @Param id path int true "Group ID"
// @Param date query string false "As-of date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} LeaderResponse
// @Failure 400 {object} StandardErrorResponse
// @Router /groups/{id}/leader [get]
func getGroupLeader(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	date, ok := dateQuery(c, "date")
	if !ok {
		return
	}
	leader, found, err := resolutionSrv.ActiveLeaderOf(c.Request.Context(), id, date)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, LeaderResponse{Date: utils.FormatDate(date), Found: found, Leader: leader})
}

// getGroupMembers resolves the members of a group on a date
// @Summary Active members of a group
// @Tags Resolution
// @Produce json
// @Param id path int true "Group ID"
// @Param date query string false "As-of date (YYYY-MM-DD), defaults to today"
// @Success 200 {array} models.User
// @Failure 400 {object} StandardErrorResponse
// @Router /groups/{id}/members [get]
func getGroupMembers(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	date, ok := dateQuery(c, "date")
	if !ok {
		return
	}
	members, err := resolutionSrv.ActiveMembersOf(c.Request.Context(), id, date)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, members)
}

// getEffectiveLeaders lists everyone controlling a group on a date
// @Summary Effective leaders of a group
// @Description The primary leader plus every delegatee whose delegation contains the date.
// @Tags Resolution
// @Produce json
// @Param id path int true "Group ID"
// @Param date query string false "As-of date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} EffectiveLeadersResponse
// @Router /groups/{id}/effective-leaders [get]
func getEffectiveLeaders(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	date, ok := dateQuery(c, "date")
	if !ok {
		return
	}
	ids, err := resolutionSrv.EffectiveLeadersOf(c.Request.Context(), id, date)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, EffectiveLeadersResponse{GbsGroupID: id, Date: utils.FormatDate(date), UserIDs: ids})
}

// getGroupControl checks whether a user controls a group on a date
// @Summary Control check
// @Tags Resolution
// @Produce json
// @Param id path int true "Group ID"
// @Param user_id query int true "User ID"
// @Param date query string false "As-of date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} ControlResponse
// @Failure 400 {object} StandardErrorResponse
// @Router /groups/{id}/control [get]
func getGroupControl(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, err := utils.ParseID("user_id", c.Query("user_id"))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	date, ok := dateQuery(c, "date")
	if !ok {
		return
	}
	has, err := resolutionSrv.HasControl(c.Request.Context(), userID, id, date)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, ControlResponse{
		UserID:     userID,
		GbsGroupID: id,
		Date:       utils.FormatDate(date),
		HasControl: has,
	})
}

// getVillageLeader resolves the leader of a village on a date
// @Summary Active leader of a village
// @Tags Resolution
// @Produce json
// @Param id path int true "Village ID"
// @Param date query string false "As-of date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} LeaderResponse
// @Router /villages/{id}/leader [get]
func getVillageLeader(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	date, ok := dateQuery(c, "date")
	if !ok {
		return
	}
	leader, found, err := resolutionSrv.ActiveVillageLeaderOf(c.Request.Context(), id, date)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, LeaderResponse{Date: utils.FormatDate(date), Found: found, Leader: leader})
}

// getUserAssignment returns the leader row a user holds on a date
// @Summary Current leader assignment of a user
// @Tags Resolution
// @Produce json
// @Param id path int true "User ID"
// @Param date query string false "As-of date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} AssignmentResponse
// @Router /users/{id}/assignment [get]
func getUserAssignment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	date, ok := dateQuery(c, "date")
	if !ok {
		return
	}
	row, found, err := resolutionSrv.CurrentAssignmentOf(c.Request.Context(), id, date)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, AssignmentResponse{Date: utils.FormatDate(date), Found: found, Assignment: row})
}

// getGroupLeaderHistory lists every leader row of a group
// @Summary Leader history of a GBS group
// @Tags Resolution
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {array} models.GbsLeaderHistory
// @Router /groups/{id}/leader/history [get]
func getGroupLeaderHistory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	rows, err := resolutionSrv.GroupLeaderHistory(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, rows)
}

// getUserHistory lists every leader and member row of a user
// @Summary Assignment history of a user
// @Tags Resolution
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} dto.AssignmentRecord
// @Router /users/{id}/history [get]
func getUserHistory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	records, err := resolutionSrv.HistoryOf(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, records)
}

// getUserAccess lists the groups a user can act on
// @Summary Accessible groups of a user
// @Tags Resolution
// @Produce json
// @Param id path int true "User ID"
// @Param date query string false "As-of date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.AccessSet
// @Router /users/{id}/access [get]
func getUserAccess(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	date, ok := dateQuery(c, "date")
	if !ok {
		return
	}
	set, err := resolutionSrv.AccessibleGroupsOf(c.Request.Context(), id, date)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, set)
}

// RegisterResolutionRoutes registers the as-of-date query endpoints.
func RegisterResolutionRoutes(rg *gin.RouterGroup) {
	groups := rg.Group("/groups/:id")
	{
		groups.GET("/leader", getGroupLeader)
		groups.GET("/leader/history", getGroupLeaderHistory)
		groups.GET("/members", getGroupMembers)
		groups.GET("/effective-leaders", getEffectiveLeaders)
		groups.GET("/control", getGroupControl)
	}
	rg.GET("/villages/:id/leader", getVillageLeader)

	users := rg.Group("/users/:id")
	{
		users.GET("/assignment", getUserAssignment)
		users.GET("/history", getUserHistory)
		users.GET("/access", getUserAccess)
	}
}
