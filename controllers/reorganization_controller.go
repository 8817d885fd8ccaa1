package controllers

import (
	"net/http"

	"gbsorgapi/pkg/logger"
	"gbsorgapi/services/dto"
	"gbsorgapi/utils"

	"github.com/gin-gonic/gin"
)

// postReorganization runs a term change for a department
// @Summary Reorganize department
// @Description Closes every open leader and member row of the department's groups on start_date-1 and opens the successor rows. All-or-nothing; dry_run only validates.
// @Tags Reorganization
// @Accept json
// @Produce json
// @Param reorganization body dto.ReorganizationPayload true "Successor assignments"
// @Success 200 {object} dto.ReorganizationReport
// @Failure 400 {object} StandardErrorResponse
// @Failure 403 {object} StandardErrorResponse
// @Failure 404 {object} StandardErrorResponse
// @Failure 409 {object} StandardErrorResponse
// @Router /reorganizations [post]
func postReorganization(c *gin.Context) {
	var payload dto.ReorganizationPayload
	if !bindJSON(c, &payload) || !canAccessDepartment(c, payload.DepartmentID) {
		return
	}
	req, err := payload.ToRequest()
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	report, err := reorganizationSrv.Reorganize(c.Request.Context(), req)
	if err != nil {
		logger.Errorf("Reorganization of department id=%d failed: %v", payload.DepartmentID, err)
		respondError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, report)
}

// RegisterReorganizationRoutes registers the reorganization endpoint.
func RegisterReorganizationRoutes(rg *gin.RouterGroup) {
	rg.POST("/reorganizations", postReorganization)
}
