package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/onefitted/fitted/internal/middleware"
	"github.com/onefitted/fitted/internal/services"
)

type InsightsHandler struct {
	recommendations *services.RecommendationService
	logger          *logrus.Logger
}

func NewInsightsHandler(
	recommendations *services.RecommendationService,
	logger *logrus.Logger,
) *InsightsHandler {
	return &InsightsHandler{
		recommendations: recommendations,
		logger:          logger,
	}
}

// Sustainability returns the usage report for the caller's wardrobe.
func (h *InsightsHandler) Sustainability(c *gin.Context) {
	userID, _, _ := middleware.GetUserFromContext(c)

	result, err := h.recommendations.GetSustainabilityInsights(c.Request.Context(), userID)
	if err != nil {
		h.logger.WithError(err).WithField("user_id", userID).Error("Failed to build sustainability report")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{
				"code":    "INSIGHTS_FAILED",
				"message": "Failed to build sustainability report",
			},
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
