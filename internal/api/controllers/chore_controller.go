package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gemquest/internal/models/request_models"
	"gemquest/internal/services"
	"gemquest/pkg/utils"
)

type ChoreController struct {
	choreService services.ChoreServiceInterface
}

func NewChoreController(choreService services.ChoreServiceInterface) *ChoreController {
	return &ChoreController{
		choreService: choreService,
	}
}

// CreateChore godoc
// @Summary Create a chore for a child
// @Tags Chores
// @Accept json
// @Produce json
// @Param request body request_models.CreateChoreRequest true "Chore payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /chore [post]
func (ch *ChoreController) CreateChore(c *gin.Context) {
	var req request_models.CreateChoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	chore, err := ch.choreService.CreateChore(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, chore, "Chore created successfully")
}

// GetChoresByChild godoc
// @Summary List chores assigned to a child
// @Tags Chores
// @Produce json
// @Param childId path string true "Child ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /chore/child/{childId} [get]
func (ch *ChoreController) GetChoresByChild(c *gin.Context) {
	chores, err := ch.choreService.GetChoresByChild(c.Request.Context(), c.Param("childId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, chores, "Chores fetched successfully")
}

// GetChoresByParent godoc
// @Summary List chores created by a parent
// @Tags Chores
// @Produce json
// @Param parentId path string true "Parent ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /chore/parent/{parentId} [get]
func (ch *ChoreController) GetChoresByParent(c *gin.Context) {
	chores, err := ch.choreService.GetChoresByParent(c.Request.Context(), c.Param("parentId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, chores, "Chores fetched successfully")
}

// UpdateChore godoc
// @Summary Partially update a chore, including its lifecycle status
// @Description Approving a chore (status 3) also credits the child's gems
// @Tags Chores
// @Accept json
// @Produce json
// @Param id path string true "Chore ID"
// @Param request body request_models.UpdateChoreRequest true "Partial chore payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /chore/{id} [put]
func (ch *ChoreController) UpdateChore(c *gin.Context) {
	var req request_models.UpdateChoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	chore, err := ch.choreService.UpdateChore(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, chore, "Chore updated successfully")
}

// DeleteChore godoc
// @Summary Delete a chore
// @Tags Chores
// @Produce json
// @Param id path string true "Chore ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /chore/{id} [delete]
func (ch *ChoreController) DeleteChore(c *gin.Context) {
	if err := ch.choreService.DeleteChore(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Chore deleted successfully")
}
