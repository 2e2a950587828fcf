package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/prisonadmin/internal/app/models"
	"github.com/yigit/prisonadmin/internal/app/models/dto"
	"github.com/yigit/prisonadmin/internal/middleware"
	"github.com/yigit/prisonadmin/internal/pkg/apperrors"
	"github.com/yigit/prisonadmin/internal/pkg/helpers"
)

// InmateController handles inmate-related routes
type InmateController struct {
	inmateService InmateService
}

// NewInmateController creates a new InmateController
func NewInmateController(inmateService InmateService) *InmateController {
	return &InmateController{
		inmateService: inmateService,
	}
}

func toInmate(req dto.AddInmateRequest) (models.Inmate, error) {
	start, err := helpers.ParseDateField("startDate", req.StartDate)
	if err != nil {
		return models.Inmate{}, err
	}
	end, err := helpers.ParseDateField("endDate", req.EndDate)
	if err != nil {
		return models.Inmate{}, err
	}

	return models.Inmate{
		InmateID:    req.InmateID.Int64(),
		HoldingCell: req.HoldingCell,
		HealthNum:   req.HealthNum.Int64(),
		StartDate:   start,
		EndDate:     end,
	}, nil
}

// GetAllInmates lists every inmate
// @Summary List inmates
// @Description Retrieves every inmate ordered by id
// @Tags inmates
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Inmate} "Inmates retrieved successfully"
// @Failure 500 {object} dto.APIResponse "Failed to fetch inmates"
// @Router /inmates [get]
func (c *InmateController) GetAllInmates(ctx *gin.Context) {
	inmates, err := c.inmateService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.RespondWithError(ctx, err, "Failed to fetch inmates")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(inmates))
}

// GetInmateByID retrieves a single inmate
// @Summary Get inmate by ID
// @Tags inmates
// @Produce json
// @Param inmateId path int true "Inmate ID"
// @Success 200 {object} dto.APIResponse{data=models.Inmate} "Inmate retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Invalid inmate ID or inmate not found"
// @Failure 500 {object} dto.APIResponse "Failed to fetch inmate"
// @Router /inmates/{inmateId} [get]
func (c *InmateController) GetInmateByID(ctx *gin.Context) {
	inmateID, err := helpers.ParseIDParam(ctx, "inmateId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	inmate, err := c.inmateService.GetByID(ctx.Request.Context(), inmateID)
	if err != nil {
		middleware.RespondWithError(ctx, err, "Failed to fetch inmate")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewItemResponse(inmate))
}

// AddInmate creates an inmate
// @Summary Add inmate
// @Description Creates an inmate and records its first cell assignment
// @Tags inmates
// @Accept json
// @Produce json
// @Param request body dto.AddInmateRequest true "Inmate information"
// @Success 200 {object} dto.APIResponse "Inmate added"
// @Failure 400 {object} dto.APIResponse "Invalid request data or constraint violation"
// @Failure 500 {object} dto.APIResponse "Failed to add inmate"
// @Router /add-inmate [post]
func (c *InmateController) AddInmate(ctx *gin.Context) {
	var req dto.AddInmateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithValidationError(ctx, err)
		return
	}

	inmate, err := toInmate(req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.inmateService.Add(ctx.Request.Context(), inmate); err != nil {
		middleware.RespondWithError(ctx, err, "Failed to add inmate")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResultResponse(true, ""))
}

// AddCompleteInmate creates an inmate with its sentence and medical record atomically
// @Summary Add complete inmate record
// @Description Inserts inmate, sentence and medical record in one transaction; nothing is stored if any insert fails
// @Tags inmates
// @Accept json
// @Produce json
// @Param request body dto.AddCompleteInmateRequest true "Inmate, sentence and medical information"
// @Success 200 {object} dto.APIResponse "Complete inmate record added successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data or constraint violation"
// @Failure 500 {object} dto.APIResponse "Failed to add complete inmate record"
// @Router /add-complete-inmate [post]
func (c *InmateController) AddCompleteInmate(ctx *gin.Context) {
	var req dto.AddCompleteInmateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithValidationError(ctx, err)
		return
	}

	inmate, err := toInmate(req.AddInmateRequest)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	record := &models.CompleteInmate{
		Inmate: inmate,
		Sentence: models.Sentence{
			Duration:  req.Duration.Int(),
			CrimeName: req.CrimeName,
			CrimeType: req.CrimeType,
			Severity:  req.Severity.Int(),
		},
		Medical: models.MedicalRecord{
			RecordNum: req.RecordNum.Int64(),
			BloodType: req.BloodType,
			Weight:    req.Weight.Float64(),
			Height:    req.Height.Float64(),
			Sex:       req.Sex,
		},
	}

	if err := c.inmateService.AddComplete(ctx.Request.Context(), record); err != nil {
		middleware.RespondWithError(ctx, err, "Failed to add complete inmate record")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResultResponse(true, "Complete inmate record added successfully"))
}

// RemoveInmate deletes an inmate together with its sentences, medical data and history
// @Summary Remove inmate
// @Tags inmates
// @Accept json
// @Produce json
// @Param request body dto.RemoveInmateRequest true "Inmate to remove"
// @Success 200 {object} dto.APIResponse "Inmate removed successfully"
// @Failure 400 {object} dto.APIResponse "Inmate ID is required, or inmate not found"
// @Failure 500 {object} dto.APIResponse "Failed to remove inmate"
// @Router /remove-inmate [post]
func (c *InmateController) RemoveInmate(ctx *gin.Context) {
	var req dto.RemoveInmateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Inmate ID is required"))
		return
	}

	removed, err := c.inmateService.Remove(ctx.Request.Context(), req.InmateID.Int64())
	if err != nil {
		middleware.RespondWithError(ctx, err, "Failed to remove inmate")
		return
	}
	if !removed {
		middleware.HandleAPIError(ctx, apperrors.NewResourceNotFoundError("Inmate not found or could not be removed"))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResultResponse(true, "Inmate removed successfully"))
}

// TransferInmate moves an inmate to another holding cell
// @Summary Transfer inmate
// @Description Updates the inmate's cell and appends the move to its cell history
// @Tags inmates
// @Accept json
// @Produce json
// @Param request body dto.TransferInmateRequest true "Inmate and destination cell"
// @Success 200 {object} dto.APIResponse "Transfer outcome; success is false when the inmate does not exist"
// @Failure 400 {object} dto.APIResponse "Missing required fields."
// @Failure 500 {object} dto.APIResponse "Internal server error."
// @Router /transfer-inmate [post]
func (c *InmateController) TransferInmate(ctx *gin.Context) {
	var req dto.TransferInmateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Missing required fields."))
		return
	}

	inmateID := req.InmateID.Int64()
	moved, err := c.inmateService.Transfer(ctx.Request.Context(), inmateID, req.NewHoldingCell)
	if err != nil {
		middleware.RespondWithError(ctx, err, "Internal server error.")
		return
	}

	message := fmt.Sprintf("Failed to transfer inmate %d", inmateID)
	if moved {
		message = fmt.Sprintf("Inmate %d transferred to %s", inmateID, req.NewHoldingCell)
	}
	ctx.JSON(http.StatusOK, dto.NewResultResponse(moved, message))
}

// GetInmatesLeavingSoon lists inmates released within the next 30 days
// @Summary Inmates leaving soon
// @Description Inmates whose end date falls between today and 30 days from today, earliest first
// @Tags inmates
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Inmate} "Upcoming releases"
// @Failure 500 {object} dto.APIResponse "Failed to fetch upcoming releases"
// @Router /inmates-leaving-soon [get]
func (c *InmateController) GetInmatesLeavingSoon(ctx *gin.Context) {
	inmates, err := c.inmateService.LeavingSoon(ctx.Request.Context())
	if err != nil {
		middleware.RespondWithError(ctx, err, "Failed to fetch upcoming releases")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(inmates))
}

// GetInmatesByCell lists the inmates held in one cell
// @Summary Inmates by cell
// @Tags inmates
// @Produce json
// @Param cellType path string true "Holding cell"
// @Success 200 {object} dto.APIResponse{data=[]models.Inmate} "Inmates in the cell with their count"
// @Failure 400 {object} dto.APIResponse "Invalid cell"
// @Failure 500 {object} dto.APIResponse "Failed to fetch inmates by cell type"
// @Router /inmates-by-cell/{cellType} [get]
func (c *InmateController) GetInmatesByCell(ctx *gin.Context) {
	inmates, err := c.inmateService.GetByCell(ctx.Request.Context(), ctx.Param("cellType"))
	if err != nil {
		middleware.RespondWithError(ctx, err, "Failed to fetch inmates by cell type")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCountedDataResponse(inmates))
}

// GetBasicInmateInfo lists id, cell and end date of every inmate
// @Summary Basic inmate info
// @Tags inmates
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.InmateBasic} "Projection of every inmate"
// @Failure 500 {object} dto.APIResponse "Failed to fetch basic inmate info"
// @Router /basic-inmate-info [get]
func (c *InmateController) GetBasicInmateInfo(ctx *gin.Context) {
	inmates, err := c.inmateService.GetBasicInfo(ctx.Request.Context())
	if err != nil {
		middleware.RespondWithError(ctx, err, "Failed to fetch basic inmate info")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(inmates))
}

// CountInmates returns the number of inmates
// @Summary Count inmates
// @Tags inmates
// @Produce json
// @Success 200 {object} dto.APIResponse "Inmate count"
// @Failure 500 {object} dto.APIResponse "Failed to count inmates"
// @Router /inmates-count [get]
func (c *InmateController) CountInmates(ctx *gin.Context) {
	count, err := c.inmateService.Count(ctx.Request.Context())
	if err != nil {
		middleware.RespondWithError(ctx, err, "Failed to count inmates")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCountResponse(count))
}

// GetInmateHistory lists the cell assignments of an inmate
// @Summary Inmate cell history
// @Tags inmates
// @Produce json
// @Param inmateId path int true "Inmate ID"
// @Success 200 {object} dto.APIResponse{data=[]models.CellAssignment} "Cell assignments, oldest first"
// @Failure 400 {object} dto.APIResponse "Invalid inmate ID"
// @Failure 500 {object} dto.APIResponse "Failed to fetch cell history"
// @Router /inmate-history/{inmateId} [get]
func (c *InmateController) GetInmateHistory(ctx *gin.Context) {
	inmateID, err := helpers.ParseIDParam(ctx, "inmateId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	history, err := c.inmateService.GetHistory(ctx.Request.Context(), inmateID)
	if err != nil {
		middleware.RespondWithError(ctx, err, "Failed to fetch cell history")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCountedDataResponse(history))
}
