package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rutero/internal/services"
	"rutero/pkg/utils"
)

type RecommendationController struct {
	recommendationService services.RecommendationServiceInterface
}

func NewRecommendationController(recommendationService services.RecommendationServiceInterface) *RecommendationController {
	return &RecommendationController{
		recommendationService: recommendationService,
	}
}

// GetRecommendation godoc
// @Summary Recommend place types for a user
// @Description Reduces the user's stored answers to the preference profile and asks the recommendation service for place types
// @Tags Recommendation
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} response_models.RecommendationResponse
// @Security BearerAuth
// @Router /recommendations/{userId} [get]
func (r *RecommendationController) GetRecommendation(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil || userID < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	recommendation, err := r.recommendationService.RecommendPlaceTypes(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, recommendation, "Recommendation generated successfully")
}
