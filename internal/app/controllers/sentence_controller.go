package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/prisonadmin/internal/app/models"
	"github.com/yigit/prisonadmin/internal/app/models/dto"
	"github.com/yigit/prisonadmin/internal/middleware"
	"github.com/yigit/prisonadmin/internal/pkg/apperrors"
)

// SentenceController handles sentence routes
type SentenceController struct {
	sentenceService SentenceService
}

// NewSentenceController creates a new SentenceController
func NewSentenceController(sentenceService SentenceService) *SentenceController {
	return &SentenceController{
		sentenceService: sentenceService,
	}
}

// GetSentences lists every sentence
// @Summary List sentences
// @Tags sentences
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Sentence} "Sentences"
// @Failure 500 {object} dto.APIResponse "Failed to fetch sentences"
// @Router /sentences [get]
func (c *SentenceController) GetSentences(ctx *gin.Context) {
	sentences, err := c.sentenceService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.RespondWithError(ctx, err, "Failed to fetch sentences")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewDataResponse(sentences))
}

// AddSentence stores a sentence for an inmate
// @Summary Add sentence
// @Tags sentences
// @Accept json
// @Produce json
// @Param request body dto.AddSentenceRequest true "Sentence"
// @Success 200 {object} dto.APIResponse{data=models.Sentence} "Sentence added with its generated id"
// @Failure 400 {object} dto.APIResponse "Invalid request data or unknown inmate"
// @Failure 500 {object} dto.APIResponse "Failed to add sentence"
// @Router /add-sentence [post]
func (c *SentenceController) AddSentence(ctx *gin.Context) {
	var req dto.AddSentenceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithValidationError(ctx, err)
		return
	}

	sentence := &models.Sentence{
		Duration:  req.Duration.Int(),
		CrimeName: req.CrimeName,
		CrimeType: req.CrimeType,
		Severity:  req.Severity.Int(),
		InmateID:  req.InmateID.Int64(),
	}
	if err := c.sentenceService.Add(ctx.Request.Context(), sentence); err != nil {
		middleware.RespondWithError(ctx, err, "Failed to add sentence")
		return
	}

	resp := dto.NewItemResponse(sentence)
	resp.Message = "Sentence added successfully"
	ctx.JSON(http.StatusOK, resp)
}

// ReduceSentence shortens an inmate's sentences for good behaviour
// @Summary Reduce sentence
// @Description Subtracts monthsReduced from every sentence of the inmate; durations never drop below zero
// @Tags sentences
// @Accept json
// @Produce json
// @Param request body dto.ReduceSentenceRequest true "Inmate and months"
// @Success 200 {object} dto.APIResponse "Sentence reduced"
// @Failure 400 {object} dto.APIResponse "Invalid request data or no sentence for the inmate"
// @Failure 500 {object} dto.APIResponse "Failed to reduce sentence"
// @Router /reduce-sentence [post]
func (c *SentenceController) ReduceSentence(ctx *gin.Context) {
	var req dto.ReduceSentenceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithValidationError(ctx, err)
		return
	}

	reduced, err := c.sentenceService.Reduce(ctx.Request.Context(), req.InmateID.Int64(), req.MonthsReduced.Int())
	if err != nil {
		middleware.RespondWithError(ctx, err, "Failed to reduce sentence")
		return
	}
	if !reduced {
		middleware.HandleAPIError(ctx, apperrors.ErrSentenceNotFound)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResultResponse(true, "Sentence reduced successfully"))
}
