package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rutero/internal/services"
	"rutero/pkg/utils"
)

type HistoryController struct {
	historyService services.HistoryServiceInterface
}

func NewHistoryController(historyService services.HistoryServiceInterface) *HistoryController {
	return &HistoryController{
		historyService: historyService,
	}
}

// GetItineraryHistory godoc
// @Summary Get a user's itinerary history
// @Description Fetch all stored place-in-route rows for the user with route and place details
// @Tags History
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} response_models.ItineraryHistoryItem
// @Security BearerAuth
// @Router /itineraries/history/{userId} [get]
func (h *HistoryController) GetItineraryHistory(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil || userID < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	history, err := h.historyService.ListItineraryHistory(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, history, "Itinerary history fetched successfully")
}
