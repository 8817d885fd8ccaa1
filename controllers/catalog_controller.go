package controllers

import (
	"net/http"
	"time"

	"gbsorgapi/models"
	"gbsorgapi/pkg/logger"
	"gbsorgapi/utils"

	"github.com/gin-gonic/gin"
)

// createDepartment creates a new department
// @Summary Create department
// @Description Creates a top-level department. Requires the ADMIN role.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param department body DepartmentCreateRequest true "Department"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} StandardErrorResponse
// @Failure 403 {object} StandardErrorResponse
// @Router /departments [post]
func createDepartment(c *gin.Context) {
	var req DepartmentCreateRequest
	if !bindJSON(c, &req) || !isAdmin(c) {
		return
	}
	dept, err := catalogSrv.CreateDepartment(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusCreated, CreatedResponse{Message: "Department was created successfully", ID: dept.ID})
}

// listDepartments lists all departments
// @Summary List departments
// @Tags Catalog
// @Produce json
// @Success 200 {array} models.Department
// @Router /departments [get]
func listDepartments(c *gin.Context) {
	depts, err := catalogSrv.ListDepartments(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, depts)
}

// createVillage creates a village inside a department
// @Summary Create village
// @Description Creates a village. Requires department staff.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param village body VillageCreateRequest true "Village"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} StandardErrorResponse
// @Failure 403 {object} StandardErrorResponse
// @Failure 404 {object} StandardErrorResponse
// @Router /villages [post]
func createVillage(c *gin.Context) {
	var req VillageCreateRequest
	if !bindJSON(c, &req) || !canAccessDepartment(c, req.DepartmentID) {
		return
	}
	village, err := catalogSrv.CreateVillage(c.Request.Context(), req.DepartmentID, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusCreated, CreatedResponse{Message: "Village was created successfully", ID: village.ID})
}

// listVillages lists the villages of a department
// @Summary List villages of a department
// @Tags Catalog
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {array} models.Village
// @Failure 404 {object} StandardErrorResponse
// @Router /departments/{id}/villages [get]
func listVillages(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	villages, err := catalogSrv.ListVillages(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, villages)
}

// createGroup creates a GBS group with a fixed term
// @Summary Create GBS group
// @Description Creates a group inside a village. Requires village or department staff.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param group body GroupCreateRequest true "Group"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} StandardErrorResponse
// @Failure 403 {object} StandardErrorResponse
// @Failure 404 {object} StandardErrorResponse
// @Router /groups [post]
func createGroup(c *gin.Context) {
	var req GroupCreateRequest
	if !bindJSON(c, &req) || !canAccessVillage(c, req.VillageID, utils.Today()) {
		return
	}
	start, _ := utils.ParseDate(req.TermStartDate)
	end, _ := utils.ParseDate(req.TermEndDate)
	group, err := catalogSrv.CreateGroup(c.Request.Context(), req.VillageID, req.Name, start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	logger.Infof("Group %s id=%d created in village id=%d", group.Name, group.ID, group.VillageID)
	utils.JSONResponse(c, http.StatusCreated, CreatedResponse{Message: "Group was created successfully", ID: group.ID})
}

// listGroups lists the groups of a village
// @Summary List groups of a village
// @Description Lists every group of the village, or only those whose term contains date.
// @Tags Catalog
// @Produce json
// @Param id path int true "Village ID"
// @Param date query string false "Only groups active on this date (YYYY-MM-DD)"
// @Success 200 {array} models.GbsGroup
// @Failure 404 {object} StandardErrorResponse
// @Router /villages/{id}/groups [get]
func listGroups(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var date *time.Time
	if raw := c.Query("date"); raw != "" {
		d, err := utils.ParseDate(raw)
		if err != nil {
			utils.ErrorResponse(c, err)
			return
		}
		date = &d
	}
	groups, err := catalogSrv.ListGroups(c.Request.Context(), id, date)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, groups)
}

// createUser registers a user
// @Summary Create user
// @Description Registers a user. Requires staff of the user's department, or ADMIN when no department is given.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param user body UserCreateRequest true "User"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} StandardErrorResponse
// @Failure 403 {object} StandardErrorResponse
// @Router /users [post]
func createUser(c *gin.Context) {
	var req UserCreateRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.DepartmentID != nil {
		if !canAccessDepartment(c, *req.DepartmentID) {
			return
		}
	} else if !isAdmin(c) {
		return
	}
	user, err := catalogSrv.CreateUser(c.Request.Context(), models.User{
		Name:         req.Name,
		Email:        req.Email,
		Role:         req.Role,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusCreated, CreatedResponse{Message: "User was created successfully", ID: user.ID})
}

// getUser returns a user
// @Summary Get user
// @Tags Catalog
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} StandardErrorResponse
// @Router /users/{id} [get]
func getUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user, err := catalogSrv.GetUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, user)
}

// RegisterCatalogRoutes registers HTTP endpoints for departments, villages, groups and users.
func RegisterCatalogRoutes(rg *gin.RouterGroup) {
	rg.POST("/departments", createDepartment)
	rg.GET("/departments", listDepartments)
	rg.GET("/departments/:id/villages", listVillages)
	rg.POST("/villages", createVillage)
	rg.GET("/villages/:id/groups", listGroups)
	rg.POST("/groups", createGroup)
	rg.POST("/users", createUser)
	rg.GET("/users/:id", getUser)
}
