package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/prisonadmin/internal/app/models"
	"github.com/yigit/prisonadmin/internal/app/models/dto"
	"github.com/yigit/prisonadmin/internal/middleware"
	"github.com/yigit/prisonadmin/internal/pkg/apperrors"
)

// FacilityController handles prison, security level, cell, amenity and club routes
type FacilityController struct {
	facilityService FacilityService
}

// NewFacilityController creates a new FacilityController
func NewFacilityController(facilityService FacilityService) *FacilityController {
	return &FacilityController{
		facilityService: facilityService,
	}
}

// GetSecurityLevels lists every prison security level
// @Summary List security levels
// @Tags facilities
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.PrisonSecurity} "Security levels"
// @Failure 500 {object} dto.APIResponse "Failed to fetch security levels"
// @Router /prison-security [get]
func (c *FacilityController) GetSecurityLevels(ctx *gin.Context) {
	levels, err := c.facilityService.GetSecurityLevels(ctx.Request.Context())
	if err != nil {
		middleware.RespondWithError(ctx, err, "Failed to fetch security levels")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(levels))
}

// AddSecurityLevel stores a security level
// @Summary Add security level
// @Tags facilities
// @Accept json
// @Produce json
// @Param request body dto.AddPrisonSecurityRequest true "Security level"
// @Success 200 {object} dto.APIResponse "Security level added"
// @Failure 400 {object} dto.APIResponse "Invalid request data or duplicate level"
// @Failure 500 {object} dto.APIResponse "Failed to add security level"
// @Router /add-prison-security [post]
func (c *FacilityController) AddSecurityLevel(ctx *gin.Context) {
	var req dto.AddPrisonSecurityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithValidationError(ctx, err)
		return
	}

	level := models.PrisonSecurity{
		SecurityLevel: req.SecurityLevel.Int(),
		GuardCount:    req.GuardCount.Int(),
		Location:      req.Location,
	}
	if err := c.facilityService.AddSecurityLevel(ctx.Request.Context(), level); err != nil {
		middleware.RespondWithError(ctx, err, "Failed to add security level")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResultResponse(true, "Security level added successfully"))
}

// GetPrisons lists every prison
// @Summary List prisons
// @Tags facilities
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Prison} "Prisons"
// @Failure 500 {object} dto.APIResponse "Failed to fetch prisons"
// @Router /prisons [get]
func (c *FacilityController) GetPrisons(ctx *gin.Context) {
	prisons, err := c.facilityService.GetPrisons(ctx.Request.Context())
	if err != nil {
		middleware.RespondWithError(ctx, err, "Failed to fetch prisons")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(prisons))
}

// AddPrison stores a prison
// @Summary Add prison
// @Tags facilities
// @Accept json
// @Produce json
// @Param request body dto.AddPrisonRequest true "Prison"
// @Success 200 {object} dto.APIResponse "Prison added"
// @Failure 400 {object} dto.APIResponse "Invalid request data or unknown security level"
// @Failure 500 {object} dto.APIResponse "Failed to add prison"
// @Router /add-prison [post]
func (c *FacilityController) AddPrison(ctx *gin.Context) {
	var req dto.AddPrisonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithValidationError(ctx, err)
		return
	}

	prison := models.Prison{
		PrisonNum:     req.PrisonNum.Int64(),
		SecurityLevel: req.SecurityLevel.Int(),
	}
	if err := c.facilityService.AddPrison(ctx.Request.Context(), prison); err != nil {
		middleware.RespondWithError(ctx, err, "Failed to add prison")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResultResponse(true, "Prison added successfully"))
}

// GetCells lists every holding cell
// @Summary List holding cells
// @Tags facilities
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.HoldingCell} "Holding cells"
// @Failure 500 {object} dto.APIResponse "Failed to fetch cells"
// @Router /cells [get]
func (c *FacilityController) GetCells(ctx *gin.Context) {
	cells, err := c.facilityService.GetCells(ctx.Request.Context())
	if err != nil {
		middleware.RespondWithError(ctx, err, "Failed to fetch cells")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(cells))
}

// CountCells returns the number of holding cells
// @Summary Count holding cells
// @Tags facilities
// @Produce json
// @Success 200 {object} dto.APIResponse "Cell count"
// @Failure 500 {object} dto.APIResponse "Failed to count cells"
// @Router /cells-count [get]
func (c *FacilityController) CountCells(ctx *gin.Context) {
	count, err := c.facilityService.CountCells(ctx.Request.Context())
	if err != nil {
		middleware.RespondWithError(ctx, err, "Failed to count cells")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCountResponse(count))
}

// AddCell stores a holding cell
// @Summary Add holding cell
// @Tags facilities
// @Accept json
// @Produce json
// @Param request body dto.AddCellRequest true "Holding cell"
// @Success 200 {object} dto.APIResponse "Cell added"
// @Failure 400 {object} dto.APIResponse "Invalid request data or unknown prison"
// @Failure 500 {object} dto.APIResponse "Failed to add cell"
// @Router /add-cell [post]
func (c *FacilityController) AddCell(ctx *gin.Context) {
	var req dto.AddCellRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithValidationError(ctx, err)
		return
	}

	cell := models.HoldingCell{CellType: req.CellType, PrisonNum: req.PrisonNum.Int64()}
	if err := c.facilityService.AddCell(ctx.Request.Context(), cell); err != nil {
		middleware.RespondWithError(ctx, err, "Failed to add cell")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResultResponse(true, "Cell added successfully"))
}

// RemoveCell deletes a holding cell; inmates held in it are removed by cascade
// @Summary Remove holding cell
// @Tags facilities
// @Accept json
// @Produce json
// @Param request body dto.RemoveCellRequest true "Holding cell"
// @Success 200 {object} dto.APIResponse "Cell removed"
// @Failure 400 {object} dto.APIResponse "Invalid request data or cell not found"
// @Failure 500 {object} dto.APIResponse "Failed to remove cell"
// @Router /remove-cell [post]
func (c *FacilityController) RemoveCell(ctx *gin.Context) {
	var req dto.RemoveCellRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithValidationError(ctx, err)
		return
	}

	removed, err := c.facilityService.RemoveCell(ctx.Request.Context(), req.CellType)
	if err != nil {
		middleware.RespondWithError(ctx, err, "Failed to remove cell")
		return
	}
	if !removed {
		middleware.HandleAPIError(ctx, apperrors.ErrCellNotFound)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResultResponse(true, "Cell removed successfully"))
}

// GetAmenities lists every amenity
// @Summary List amenities
// @Tags facilities
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Amenity} "Amenities"
// @Failure 500 {object} dto.APIResponse "Failed to fetch amenities"
// @Router /amenities [get]
func (c *FacilityController) GetAmenities(ctx *gin.Context) {
	amenities, err := c.facilityService.GetAmenities(ctx.Request.Context())
	if err != nil {
		middleware.RespondWithError(ctx, err, "Failed to fetch amenities")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(amenities))
}

// AddAmenity stores an amenity
// @Summary Add amenity
// @Tags facilities
// @Accept json
// @Produce json
// @Param request body dto.AddAmenityRequest true "Amenity"
// @Success 200 {object} dto.APIResponse "Amenity added"
// @Failure 400 {object} dto.APIResponse "Invalid request data or unknown prison"
// @Failure 500 {object} dto.APIResponse "Failed to add amenity"
// @Router /add-amenity [post]
func (c *FacilityController) AddAmenity(ctx *gin.Context) {
	var req dto.AddAmenityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithValidationError(ctx, err)
		return
	}

	amenity := models.Amenity{
		AmenType:   req.AmenType,
		Name:       req.Name,
		Recreation: req.Recreation,
		PrisonNum:  req.PrisonNum.Int64(),
	}
	if err := c.facilityService.AddAmenity(ctx.Request.Context(), amenity); err != nil {
		middleware.RespondWithError(ctx, err, "Failed to add amenity")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResultResponse(true, "Amenity added successfully"))
}

// GetClubs lists every club
// @Summary List clubs
// @Tags facilities
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Club} "Clubs"
// @Failure 500 {object} dto.APIResponse "Failed to fetch clubs"
// @Router /clubs [get]
func (c *FacilityController) GetClubs(ctx *gin.Context) {
	clubs, err := c.facilityService.GetClubs(ctx.Request.Context())
	if err != nil {
		middleware.RespondWithError(ctx, err, "Failed to fetch clubs")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(clubs))
}

// AddClub stores a club
// @Summary Add club
// @Tags facilities
// @Accept json
// @Produce json
// @Param request body dto.AddClubRequest true "Club"
// @Success 200 {object} dto.APIResponse "Club added"
// @Failure 400 {object} dto.APIResponse "Invalid request data or duplicate club"
// @Failure 500 {object} dto.APIResponse "Failed to add club"
// @Router /add-club [post]
func (c *FacilityController) AddClub(ctx *gin.Context) {
	var req dto.AddClubRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithValidationError(ctx, err)
		return
	}

	club := models.Club{Name: req.Name, ClubType: req.ClubType}
	if err := c.facilityService.AddClub(ctx.Request.Context(), club); err != nil {
		middleware.RespondWithError(ctx, err, "Failed to add club")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResultResponse(true, "Club added successfully"))
}
