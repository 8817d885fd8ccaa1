package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"gbsorgapi/models"
	"gbsorgapi/services"
	"gbsorgapi/utils"

	"github.com/gin-gonic/gin"
)

var (
	catalogSrv        services.CatalogService
	resolutionSrv     services.ResolutionService
	accessSrv         services.AccessService
	assignmentSrv     services.AssignmentService
	delegationSrv     services.DelegationService
	reorganizationSrv services.ReorganizationService
	attendanceSrv     services.AttendanceService
	statisticsSrv     services.StatisticsService
)

// SetCatalogService initializes the catalog service instance.
func SetCatalogService(s services.CatalogService) { catalogSrv = s }

// SetResolutionService initializes the resolution service instance.
func SetResolutionService(s services.ResolutionService) { resolutionSrv = s }

// SetAccessService initializes the service that authorizes callers.
func SetAccessService(s services.AccessService) { accessSrv = s }

// SetAssignmentService initializes the assignment service instance.
func SetAssignmentService(s services.AssignmentService) { assignmentSrv = s }

// SetDelegationService initializes the delegation service instance.
func SetDelegationService(s services.DelegationService) { delegationSrv = s }

// SetReorganizationService initializes the reorganization service instance.
func SetReorganizationService(s services.ReorganizationService) { reorganizationSrv = s }

// SetAttendanceService initializes the attendance service instance.
func SetAttendanceService(s services.AttendanceService) { attendanceSrv = s }

// SetStatisticsService initializes the statistics service instance.
func SetStatisticsService(s services.StatisticsService) { statisticsSrv = s }

// statusOf maps service error kinds to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	utils.ErrorResponseWithStatus(c, statusOf(err), err)
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := utils.ParseID(name, c.Param(name))
	if err != nil {
		utils.ErrorResponse(c, err)
		return 0, false
	}
	return id, true
}

// dateQuery reads an optional YYYY-MM-DD query parameter, defaulting to today.
func dateQuery(c *gin.Context, name string) (time.Time, bool) {
	d, err := utils.ParseDateOrToday(c.Query(name))
	if err != nil {
		utils.ErrorResponse(c, fmt.Errorf("%s: %w", name, err))
		return time.Time{}, false
	}
	return d, true
}

func weekParam(c *gin.Context) (time.Time, bool) {
	week, err := utils.ParseDate(c.Param("week"))
	if err != nil {
		utils.ErrorResponse(c, fmt.Errorf("week: %w", err))
		return time.Time{}, false
	}
	return week, true
}

func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		utils.ErrorResponse(c, err)
		return false
	}
	if err := utils.ValidateStruct(obj); err != nil {
		utils.ErrorResponse(c, err)
		return false
	}
	return true
}

func callerID(c *gin.Context) (uint, bool) {
	id, ok := utils.CurrentUserID(c)
	if !ok {
		utils.ErrorResponseWithStatus(c, http.StatusUnauthorized, errors.New("caller identity is required"))
	}
	return id, ok
}

// authorize writes the response and returns false unless the check passed.
func authorize(c *gin.Context, allowed bool, err error, action string) bool {
	if err != nil {
		respondError(c, err)
		return false
	}
	if !allowed {
		utils.ErrorResponseWithStatus(c, http.StatusForbidden,
			fmt.Errorf("%w: caller may not %s", services.ErrForbidden, action))
		return false
	}
	return true
}

func canManageGroup(c *gin.Context, groupID uint, date time.Time) bool {
	caller, ok := callerID(c)
	if !ok {
		return false
	}
	allowed, err := accessSrv.CanManageGroup(c.Request.Context(), caller, groupID, date)
	return authorize(c, allowed, err, fmt.Sprintf("manage group id=%d", groupID))
}

func canAccessVillage(c *gin.Context, villageID uint, date time.Time) bool {
	caller, ok := callerID(c)
	if !ok {
		return false
	}
	allowed, err := accessSrv.CanAccessVillage(c.Request.Context(), caller, villageID, date)
	return authorize(c, allowed, err, fmt.Sprintf("access village id=%d", villageID))
}

func canAccessDepartment(c *gin.Context, departmentID uint) bool {
	caller, ok := callerID(c)
	if !ok {
		return false
	}
	allowed, err := accessSrv.CanAccessDepartment(c.Request.Context(), caller, departmentID)
	return authorize(c, allowed, err, fmt.Sprintf("access department id=%d", departmentID))
}

// canStaffGroup allows staff of the group's village, who may change its composition.
func canStaffGroup(c *gin.Context, groupID uint) bool {
	group, err := catalogSrv.GetGroup(c.Request.Context(), groupID)
	if err != nil {
		respondError(c, err)
		return false
	}
	return canAccessVillage(c, group.VillageID, utils.Today())
}

func isAdmin(c *gin.Context) bool {
	caller, ok := callerID(c)
	if !ok {
		return false
	}
	user, err := catalogSrv.GetUser(c.Request.Context(), caller)
	if errors.Is(err, services.ErrNotFound) {
		return authorize(c, false, nil, "perform administrative changes")
	}
	return authorize(c, err == nil && user.Role == models.RoleAdmin, err, "perform administrative changes")
}
