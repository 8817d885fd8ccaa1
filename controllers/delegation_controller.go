package controllers

import (
	"net/http"
	"time"

	"gbsorgapi/pkg/logger"
	"gbsorgapi/utils"

	"github.com/gin-gonic/gin"
)

// createDelegation grants another user control of a group
// @Summary Create delegation
// @Description The caller delegates control of a group they control on start_date. start_date may not be in the past.
// @Tags Delegation
// @Accept json
// @Produce json
// @Param delegation body DelegationCreateRequest true "Delegation"
// @Success 201 {object} models.LeaderDelegation
// @Failure 400 {object} StandardErrorResponse
// @Failure 403 {object} StandardErrorResponse
// @Failure 409 {object} StandardErrorResponse
// @Router /delegations [post]
func createDelegation(c *gin.Context) {
	var req DelegationCreateRequest
	if !bindJSON(c, &req) {
		return
	}
	delegator, ok := callerID(c)
	if !ok {
		return
	}
	start, _ := utils.ParseDate(req.StartDate)
	var end *time.Time
	if req.EndDate != "" {
		d, _ := utils.ParseDate(req.EndDate)
		end = &d
	}
	delegation, err := delegationSrv.CreateDelegation(c.Request.Context(), delegator, req.DelegateeID, req.GbsGroupID, start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	logger.Infof("User id=%d delegated group id=%d to user id=%d", delegator, req.GbsGroupID, req.DelegateeID)
	utils.JSONResponse(c, http.StatusCreated, delegation)
}

// listUserDelegations lists delegations held by a user on a date
// @Summary Active delegations of a delegatee
// @Tags Delegation
// @Produce json
// @Param id path int true "Delegatee user ID"
// @Param date query string false "As-of date (YYYY-MM-DD), defaults to today"
// @Success 200 {array} models.LeaderDelegation
// @Router /users/{id}/delegations [get]
func listUserDelegations(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	date, ok := dateQuery(c, "date")
	if !ok {
		return
	}
	delegations, err := delegationSrv.FindActiveDelegations(c.Request.Context(), id, date)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, delegations)
}

// listGroupDelegations lists delegations of a group active on a date
// @Summary Active delegations of a group
// @Tags Delegation
// @Produce json
// @Param id path int true "Group ID"
// @Param date query string false "As-of date (YYYY-MM-DD), defaults to today"
// @Success 200 {array} models.LeaderDelegation
// @Failure 404 {object} StandardErrorResponse
// @Router /groups/{id}/delegations [get]
func listGroupDelegations(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	date, ok := dateQuery(c, "date")
	if !ok {
		return
	}
	delegations, err := delegationSrv.ListGroupDelegations(c.Request.Context(), id, date)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, delegations)
}

// endDelegation sets the end date of a delegation
// @Summary End delegation
// @Description Requires control of the delegated group, or village and department staff.
// @Tags Delegation
// @Accept json
// @Produce json
// @Param id path int true "Delegation ID"
// @Param end body EndDateRequest true "Last day of the delegation"
// @Success 200 {object} models.LeaderDelegation
// @Failure 400 {object} StandardErrorResponse
// @Failure 404 {object} StandardErrorResponse
// @Router /delegations/{id}/end [post]
func endDelegation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req EndDateRequest
	if !bindJSON(c, &req) {
		return
	}
	existing, err := delegationSrv.GetDelegation(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !canManageGroup(c, existing.GbsGroupID, utils.Today()) {
		return
	}
	end, _ := utils.ParseDate(req.EndDate)
	delegation, err := delegationSrv.EndDelegation(c.Request.Context(), id, end)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, delegation)
}

// RegisterDelegationRoutes registers HTTP endpoints for leader delegations.
func RegisterDelegationRoutes(rg *gin.RouterGroup) {
	rg.POST("/delegations", createDelegation)
	rg.POST("/delegations/:id/end", endDelegation)
	rg.GET("/users/:id/delegations", listUserDelegations)
	rg.GET("/groups/:id/delegations", listGroupDelegations)
}
