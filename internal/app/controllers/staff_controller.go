package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/prisonadmin/internal/app/models"
	"github.com/yigit/prisonadmin/internal/app/models/dto"
	"github.com/yigit/prisonadmin/internal/middleware"
)

// StaffController handles employee routes
type StaffController struct {
	staffService StaffService
}

// NewStaffController creates a new StaffController
func NewStaffController(staffService StaffService) *StaffController {
	return &StaffController{
		staffService: staffService,
	}
}

// GetEmployees lists every employee with its role
// @Summary List employees
// @Tags staff
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Employee} "Employees"
// @Failure 500 {object} dto.APIResponse "Failed to fetch employees"
// @Router /employees [get]
func (c *StaffController) GetEmployees(ctx *gin.Context) {
	employees, err := c.staffService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.RespondWithError(ctx, err, "Failed to fetch employees")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(employees))
}

// AddEmployee stores an employee with an optional role
// @Summary Add employee
// @Tags staff
// @Accept json
// @Produce json
// @Param request body dto.AddEmployeeRequest true "Employee"
// @Success 200 {object} dto.APIResponse "Employee added"
// @Failure 400 {object} dto.APIResponse "Invalid request data or duplicate employee"
// @Failure 500 {object} dto.APIResponse "Failed to add employee"
// @Router /add-employee [post]
func (c *StaffController) AddEmployee(ctx *gin.Context) {
	var req dto.AddEmployeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithValidationError(ctx, err)
		return
	}

	employee := models.Employee{
		EmpID:      req.EmpID.Int64(),
		Name:       req.Name,
		Role:       models.EmployeeRole(req.Role),
		RoleDetail: req.RoleDetail,
	}
	if err := c.staffService.Add(ctx.Request.Context(), employee); err != nil {
		middleware.RespondWithError(ctx, err, "Failed to add employee")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResultResponse(true, "Employee added successfully"))
}

// AssignEmployee places an employee at a prison
// @Summary Assign employee
// @Tags staff
// @Accept json
// @Produce json
// @Param request body dto.AssignEmployeeRequest true "Assignment"
// @Success 200 {object} dto.APIResponse "Employee assigned"
// @Failure 400 {object} dto.APIResponse "Invalid request data, unknown employee or prison"
// @Failure 500 {object} dto.APIResponse "Failed to assign employee"
// @Router /assign-employee [post]
func (c *StaffController) AssignEmployee(ctx *gin.Context) {
	var req dto.AssignEmployeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithValidationError(ctx, err)
		return
	}

	assignment := models.WorksAt{
		PrisonNum: req.PrisonNum.Int64(),
		EmpID:     req.EmpID.Int64(),
		Salary:    req.Salary.Float64(),
	}
	if err := c.staffService.Assign(ctx.Request.Context(), assignment); err != nil {
		middleware.RespondWithError(ctx, err, "Failed to assign employee")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResultResponse(true, "Employee assigned successfully"))
}

// AddCertification records a certification held by an employee
// @Summary Add certification
// @Tags staff
// @Accept json
// @Produce json
// @Param request body dto.AddCertificationRequest true "Certification"
// @Success 200 {object} dto.APIResponse "Certification added"
// @Failure 400 {object} dto.APIResponse "Invalid request data or unknown employee"
// @Failure 500 {object} dto.APIResponse "Failed to add certification"
// @Router /add-certification [post]
func (c *StaffController) AddCertification(ctx *gin.Context) {
	var req dto.AddCertificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithValidationError(ctx, err)
		return
	}

	cert := models.Certification{
		Certificate: req.Certificate,
		Skills:      req.Skills,
		EmpID:       req.EmpID.Int64(),
	}
	if err := c.staffService.AddCertification(ctx.Request.Context(), cert); err != nil {
		middleware.RespondWithError(ctx, err, "Failed to add certification")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResultResponse(true, "Certification added successfully"))
}

// GetHighSecurityEmployees lists employees working at prisons of security level 8 or above
// @Summary Employees at high security prisons
// @Tags staff
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.HighSecurityAssignment} "Assignments"
// @Failure 500 {object} dto.APIResponse "Failed to fetch high security employees"
// @Router /employees-high-security [get]
func (c *StaffController) GetHighSecurityEmployees(ctx *gin.Context) {
	rows, err := c.staffService.HighSecurityAssignments(ctx.Request.Context())
	if err != nil {
		middleware.RespondWithError(ctx, err, "Failed to fetch high security employees")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(rows))
}
