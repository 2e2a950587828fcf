package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/prisonadmin/internal/app/models"
	"github.com/yigit/prisonadmin/internal/app/models/dto"
	"github.com/yigit/prisonadmin/internal/middleware"
)

// MedicalController handles medical record routes
type MedicalController struct {
	medicalService MedicalService
}

// NewMedicalController creates a new MedicalController
func NewMedicalController(medicalService MedicalService) *MedicalController {
	return &MedicalController{
		medicalService: medicalService,
	}
}

// GetMedicalData lists inmates joined with their medical records
// @Summary Inmates with medical data
// @Tags medical
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.InmateMedical} "Joined rows"
// @Failure 500 {object} dto.APIResponse "Server error"
// @Router /medical-data [get]
func (c *MedicalController) GetMedicalData(ctx *gin.Context) {
	c.respondWithInmatesWithMedical(ctx, "Server error")
}

// GetInmatesWithMedical lists inmates joined with their medical records
// @Summary Inmates with medical data
// @Tags medical
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.InmateMedical} "Joined rows"
// @Failure 500 {object} dto.APIResponse "Failed to fetch inmates with medical data"
// @Router /inmates-with-medical [get]
func (c *MedicalController) GetInmatesWithMedical(ctx *gin.Context) {
	c.respondWithInmatesWithMedical(ctx, "Failed to fetch inmates with medical data")
}

func (c *MedicalController) respondWithInmatesWithMedical(ctx *gin.Context, failure string) {
	rows, err := c.medicalService.InmatesWithMedical(ctx.Request.Context())
	if err != nil {
		middleware.RespondWithError(ctx, err, failure)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(rows))
}

// GetMedicalRecords lists every medical record
// @Summary List medical records
// @Tags medical
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.MedicalRecord} "Medical records"
// @Failure 500 {object} dto.APIResponse "Failed to fetch medical records"
// @Router /medical-records [get]
func (c *MedicalController) GetMedicalRecords(ctx *gin.Context) {
	records, err := c.medicalService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.RespondWithError(ctx, err, "Failed to fetch medical records")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(records))
}

// AddMedicalRecord stores a medical record for an inmate
// @Summary Add medical record
// @Tags medical
// @Accept json
// @Produce json
// @Param request body dto.AddMedicalRequest true "Medical record"
// @Success 200 {object} dto.APIResponse "Record added!"
// @Failure 400 {object} dto.APIResponse "Invalid request data or constraint violation"
// @Failure 500 {object} dto.APIResponse "Failed to add record"
// @Router /add-medical [post]
func (c *MedicalController) AddMedicalRecord(ctx *gin.Context) {
	var req dto.AddMedicalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithValidationError(ctx, err)
		return
	}

	rec := models.MedicalRecord{
		RecordNum: req.RecordNum.Int64(),
		BloodType: req.BloodType,
		Weight:    req.Weight.Float64(),
		Height:    req.Height.Float64(),
		Sex:       req.Sex,
		InmateID:  req.InmateID.Int64(),
	}
	if err := c.medicalService.Add(ctx.Request.Context(), rec); err != nil {
		middleware.RespondWithError(ctx, err, "Failed to add record")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResultResponse(true, "Record added!"))
}

// GetMedicalJoined lists inmates with medical and sentence data, longest sentence first
// @Summary Inmates with medical and sentence data
// @Tags medical
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.InmateMedicalSentence} "Joined rows"
// @Failure 500 {object} dto.APIResponse "Failed to fetch joined medical data"
// @Router /medical-joined [get]
func (c *MedicalController) GetMedicalJoined(ctx *gin.Context) {
	rows, err := c.medicalService.InmatesWithMedicalAndSentence(ctx.Request.Context())
	if err != nil {
		middleware.RespondWithError(ctx, err, "Failed to fetch joined medical data")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(rows))
}
