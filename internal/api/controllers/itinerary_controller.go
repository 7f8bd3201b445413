package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rutero/internal/models/request_models"
	"rutero/internal/services"
	"rutero/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// GenerateItinerary godoc
// @Summary Generate a day itinerary from selected places
// @Description Runs the generation pipeline: preferences, prompt, generative model, parsing and persistence
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.GenerateItineraryRequest true "User ID and selected places"
// @Success 200 {object} response_models.GeneratedItinerary
// @Failure 400 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/generate [post]
func (i *ItineraryController) GenerateItinerary(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "user_id and a non-empty places list are required")
		return
	}

	// The body user id must match the authenticated one.
	if claimID := c.GetString("user_id"); claimID != "" && claimID != strconv.Itoa(req.UserID) {
		utils.RespondError(c, http.StatusForbidden, "user_id does not match the authenticated user")
		return
	}

	result, failure := i.itineraryService.GenerateItinerary(c.Request.Context(), req.UserID, req.Places)
	if failure != nil {
		utils.RespondPipelineFailure(c, failure)
		return
	}

	message := "Itinerary generated successfully"
	if len(result.Warnings) > 0 {
		message = "Itinerary generated with warnings"
	}
	utils.RespondSuccess(c, result, message)
}
