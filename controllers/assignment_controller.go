package controllers

import (
	"net/http"

	"gbsorgapi/utils"

	"github.com/gin-gonic/gin"
)

// assignLeader replaces the leader of a group
// @Summary Assign group leader
// @Description Closes the open leader row on start_date-1 and opens one for leader_id.
// @Tags Assignment
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Param assignment body LeaderAssignRequest true "Leader and start date"
// @Success 201 {object} models.GbsLeaderHistory
// @Failure 400 {object} StandardErrorResponse
// @Failure 403 {object} StandardErrorResponse
// @Failure 404 {object} StandardErrorResponse
// @Failure 409 {object} StandardErrorResponse
// @Router /groups/{id}/leader [post]
func assignLeader(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req LeaderAssignRequest
	if !bindJSON(c, &req) || !canStaffGroup(c, id) {
		return
	}
	start, _ := utils.ParseDate(req.StartDate)
	row, err := assignmentSrv.AssignLeader(c.Request.Context(), id, req.LeaderID, start)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusCreated, row)
}

// terminateLeader closes the open leader row of a group
// @Summary Terminate group leader
// @Tags Assignment
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Param end body EndDateRequest true "Last day of leadership"
// @Success 200 {object} models.GbsLeaderHistory
// @Failure 400 {object} StandardErrorResponse
// @Failure 404 {object} StandardErrorResponse
// @Router /groups/{id}/leader/terminate [post]
func terminateLeader(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req EndDateRequest
	if !bindJSON(c, &req) || !canStaffGroup(c, id) {
		return
	}
	end, _ := utils.ParseDate(req.EndDate)
	row, err := assignmentSrv.TerminateLeader(c.Request.Context(), id, end)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, row)
}

// assignMember adds a member to a group
// @Summary Add group member
// @Tags Assignment
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Param member body MemberAssignRequest true "Member and start date"
// @Success 201 {object} models.GbsMemberHistory
// @Failure 400 {object} StandardErrorResponse
// @Failure 409 {object} StandardErrorResponse
// @Router /groups/{id}/members [post]
func assignMember(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req MemberAssignRequest
	if !bindJSON(c, &req) || !canStaffGroup(c, id) {
		return
	}
	start, _ := utils.ParseDate(req.StartDate)
	row, err := assignmentSrv.AssignMember(c.Request.Context(), id, req.MemberID, start)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusCreated, row)
}

// removeMember closes a member's open row in a group
// @Summary Remove group member
// @Tags Assignment
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Param memberId path int true "Member user ID"
// @Param end body EndDateRequest true "Last day of membership"
// @Success 200 {object} models.GbsMemberHistory
// @Failure 400 {object} StandardErrorResponse
// @Failure 404 {object} StandardErrorResponse
// @Router /groups/{id}/members/{memberId}/remove [post]
func removeMember(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	memberID, ok := pathID(c, "memberId")
	if !ok {
		return
	}
	var req EndDateRequest
	if !bindJSON(c, &req) || !canStaffGroup(c, id) {
		return
	}
	end, _ := utils.ParseDate(req.EndDate)
	row, err := assignmentSrv.RemoveMember(c.Request.Context(), id, memberID, end)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, row)
}

func villageDepartment(c *gin.Context, villageID uint) bool {
	village, err := catalogSrv.GetVillage(c.Request.Context(), villageID)
	if err != nil {
		respondError(c, err)
		return false
	}
	return canAccessDepartment(c, village.DepartmentID)
}

// assignVillageLeader replaces the leader of a village
// @Summary Assign village leader
// @Description Requires department staff.
// @Tags Assignment
// @Accept json
// @Produce json
// @Param id path int true "Village ID"
// @Param assignment body VillageLeaderAssignRequest true "Leader and start date"
// @Success 201 {object} models.VillageLeader
// @Failure 400 {object} StandardErrorResponse
// @Failure 409 {object} StandardErrorResponse
// @Router /villages/{id}/leader [post]
func assignVillageLeader(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req VillageLeaderAssignRequest
	if !bindJSON(c, &req) || !villageDepartment(c, id) {
		return
	}
	start, _ := utils.ParseDate(req.StartDate)
	row, err := assignmentSrv.AssignVillageLeader(c.Request.Context(), req.UserID, id, start)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusCreated, row)
}

// terminateVillageLeader closes the open leader row of a village
// @Summary Terminate village leader
// @Tags Assignment
// @Accept json
// @Produce json
// @Param id path int true "Village ID"
// @Param end body EndDateRequest true "Last day of leadership"
// @Success 200 {object} models.VillageLeader
// @Failure 404 {object} StandardErrorResponse
// @Router /villages/{id}/leader/terminate [post]
func terminateVillageLeader(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req EndDateRequest
	if !bindJSON(c, &req) || !villageDepartment(c, id) {
		return
	}
	end, _ := utils.ParseDate(req.EndDate)
	row, err := assignmentSrv.TerminateVillageLeader(c.Request.Context(), id, end)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, row)
}

// RegisterAssignmentRoutes registers the leader and member mutation endpoints.
func RegisterAssignmentRoutes(rg *gin.RouterGroup) {
	groups := rg.Group("/groups/:id")
	{
		groups.POST("/leader", assignLeader)
		groups.POST("/leader/terminate", terminateLeader)
		groups.POST("/members", assignMember)
		groups.POST("/members/:memberId/remove", removeMember)
	}
	villages := rg.Group("/villages/:id")
	{
		villages.POST("/leader", assignVillageLeader)
		villages.POST("/leader/terminate", terminateVillageLeader)
	}
}
