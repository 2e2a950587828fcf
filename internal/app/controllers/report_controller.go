package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/prisonadmin/internal/app/models/dto"
	"github.com/yigit/prisonadmin/internal/app/services"
	"github.com/yigit/prisonadmin/internal/middleware"
	"github.com/yigit/prisonadmin/internal/pkg/helpers"
)

// ReportController serves the analytical queries
type ReportController struct {
	reportService ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// GetInmateCountByCell counts inmates per holding cell
// @Summary Inmate count per cell
// @Tags reports
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.CellCount} "Counts ordered by cell"
// @Failure 500 {object} dto.APIResponse "Failed to count inmates by cell"
// @Router /inmates-count-by-cell [get]
func (c *ReportController) GetInmateCountByCell(ctx *gin.Context) {
	counts, err := c.reportService.CountByCell(ctx.Request.Context())
	if err != nil {
		middleware.RespondWithError(ctx, err, "Failed to count inmates by cell")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(counts))
}

// GetCrowdedCells lists cells holding at least minimumCount inmates
// @Summary Crowded cells
// @Description Cells whose inmate count is at least minimumCount, fullest first. Unparsable or zero values fall back to 2; negative values match every cell.
// @Tags reports
// @Produce json
// @Param minimumCount path int true "Minimum inmate count"
// @Success 200 {object} dto.APIResponse{data=[]models.CellCount} "Crowded cells"
// @Failure 500 {object} dto.APIResponse "Failed to find crowded cells"
// @Router /crowded-cells/{minimumCount} [get]
func (c *ReportController) GetCrowdedCells(ctx *gin.Context) {
	minimum := helpers.IntParamOrDefault(ctx, "minimumCount", services.DefaultCrowdedMinimum)

	cells, err := c.reportService.CrowdedCells(ctx.Request.Context(), minimum)
	if err != nil {
		middleware.RespondWithError(ctx, err, "Failed to find crowded cells")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(cells))
}

// GetHighSeverityPrisons lists the cells with the most high severity inmates
// @Summary High severity cells
// @Description Cells whose count of inmates with a sentence severity above 7 equals the maximum such count
// @Tags reports
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.HighSeverityCell} "Cells with their prison"
// @Failure 500 {object} dto.APIResponse "Failed to fetch high severity prisons"
// @Router /high-severity-prisons [get]
func (c *ReportController) GetHighSeverityPrisons(ctx *gin.Context) {
	cells, err := c.reportService.HighSeverityCells(ctx.Request.Context())
	if err != nil {
		middleware.RespondWithError(ctx, err, "Failed to fetch high severity prisons")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(cells))
}

// GetInmatesInAllCells lists inmates that have been held in every recorded cell
// @Summary Inmates in all cells
// @Tags reports
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.InmateRef} "Inmates"
// @Failure 500 {object} dto.APIResponse "Failed to find inmates in all cell types"
// @Router /inmates-all-cells [get]
func (c *ReportController) GetInmatesInAllCells(ctx *gin.Context) {
	inmates, err := c.reportService.InmatesInAllCells(ctx.Request.Context())
	if err != nil {
		middleware.RespondWithError(ctx, err, "Failed to find inmates in all cell types")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(inmates))
}
