package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/prisonadmin/internal/app/models/dto"
	"github.com/yigit/prisonadmin/internal/middleware"
)

// AdminController serves connectivity checks and the database lifecycle routes
type AdminController struct {
	adminService AdminService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService AdminService) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

// CheckDBConnection reports database connectivity as plain text
// @Summary Check database connection
// @Tags admin
// @Produce plain
// @Success 200 {string} string "connected or unable to connect"
// @Router /check-db-connection [get]
func (c *AdminController) CheckDBConnection(ctx *gin.Context) {
	if c.adminService.CheckConnection(ctx.Request.Context()) {
		ctx.String(http.StatusOK, "connected")
		return
	}
	ctx.String(http.StatusOK, "unable to connect")
}

// Health reports service and database status
// @Summary Health check
// @Tags admin
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.HealthStatus} "Service healthy"
// @Failure 503 {object} dto.APIResponse{data=dto.HealthStatus} "Database unreachable"
// @Router /health [get]
func (c *AdminController) Health(ctx *gin.Context) {
	if c.adminService.CheckConnection(ctx.Request.Context()) {
		ctx.JSON(http.StatusOK, dto.NewItemResponse(dto.HealthStatus{Status: "ok", Database: "connected"}))
		return
	}

	resp := dto.NewItemResponse(dto.HealthStatus{Status: "degraded", Database: "unable to connect"})
	resp.Success = false
	ctx.JSON(http.StatusServiceUnavailable, resp)
}

// InitDB drops and recreates every table
// @Summary Initialize database
// @Description Drops and recreates the schema in one transaction; existing data is lost
// @Tags admin
// @Produce json
// @Success 200 {object} dto.APIResponse "Schema initialized"
// @Failure 500 {object} dto.APIResponse "Failed to initialize database"
// @Router /init-db [post]
func (c *AdminController) InitDB(ctx *gin.Context) {
	if err := c.adminService.InitializeDatabase(ctx.Request.Context()); err != nil {
		middleware.RespondWithError(ctx, err, "Failed to initialize database")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResultResponse(true, ""))
}

// InsertData replaces every table's contents with the sample data set
// @Summary Insert sample data
// @Description Clears every table and loads the sample data in one transaction
// @Tags admin
// @Produce json
// @Success 200 {object} dto.APIResponse "Sample data inserted"
// @Failure 500 {object} dto.APIResponse "Failed to insert data"
// @Router /insert-data [post]
func (c *AdminController) InsertData(ctx *gin.Context) {
	if err := c.adminService.InsertDefaultData(ctx.Request.Context()); err != nil {
		middleware.RespondWithError(ctx, err, "Failed to insert data")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResultResponse(true, ""))
}
