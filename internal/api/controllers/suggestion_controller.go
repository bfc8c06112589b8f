package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gemquest/internal/models/request_models"
	"gemquest/internal/services"
	"gemquest/pkg/suggest"
	"gemquest/pkg/utils"
)

type SuggestionController struct {
	suggestionService services.SuggestionServiceInterface
}

func NewSuggestionController(suggestionService services.SuggestionServiceInterface) *SuggestionController {
	return &SuggestionController{
		suggestionService: suggestionService,
	}
}

// Suggest godoc
// @Summary Generate chore suggestions for a child's age
// @Tags Suggestions
// @Accept json
// @Produce json
// @Param request body request_models.SuggestionRequest true "Suggestion payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/suggestions [post]
func (s *SuggestionController) Suggest(c *gin.Context) {
	var req request_models.SuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := s.suggestionService.GenerateSuggestions(c.Request.Context(), suggest.Request{
		ChildAge:  req.ChildAge,
		ChildName: req.ChildName,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Suggestions generated")
}

// SuggestContextual godoc
// @Summary Generate chore suggestions with extra parent context
// @Tags Suggestions
// @Accept json
// @Produce json
// @Param request body request_models.ContextualSuggestionRequest true "Contextual suggestion payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/suggestions/contextual [post]
func (s *SuggestionController) SuggestContextual(c *gin.Context) {
	var req request_models.ContextualSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := s.suggestionService.GenerateSuggestions(c.Request.Context(), suggest.Request{
		ChildAge:  req.ChildAge,
		ChildName: req.ChildName,
		Context:   req.Context,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Suggestions generated")
}
