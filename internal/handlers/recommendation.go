package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/onefitted/fitted/internal/engine"
	"github.com/onefitted/fitted/internal/middleware"
	"github.com/onefitted/fitted/internal/services"
	"github.com/onefitted/fitted/pkg/models"
)

type RecommendationHandler struct {
	recommendations *services.RecommendationService
	validator       *validator.Validate
	logger          *logrus.Logger
}

func NewRecommendationHandler(
	recommendations *services.RecommendationService,
	logger *logrus.Logger,
) *RecommendationHandler {
	return &RecommendationHandler{
		recommendations: recommendations,
		validator:       validator.New(),
		logger:          logger,
	}
}

// Get returns ranked outfit suggestions for the authenticated user.
// Unknown event or condition values and implausible temperatures fall
// back to unspecified context rather than failing the request.
func (h *RecommendationHandler) Get(c *gin.Context) {
	userID, _, _ := middleware.GetUserFromContext(c)

	var request models.RecommendationRequest
	if err := c.ShouldBindQuery(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"code":    "INVALID_QUERY",
				"message": "Query parameters could not be parsed",
				"details": err.Error(),
			},
		})
		return
	}

	if err := h.validator.Struct(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"code":    "INVALID_COUNT",
				"message": "count must not be negative",
			},
		})
		return
	}

	reqCtx := models.Context{
		Event:        models.EventTag(request.Event),
		TemperatureC: request.TemperatureC,
		Condition:    models.WeatherCondition(request.Condition),
	}

	result, err := h.recommendations.GetRecommendations(c.Request.Context(), userID, reqCtx, request.Count)
	if err != nil {
		if errors.Is(err, engine.ErrInvalidLimit) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": gin.H{
					"code":    "INVALID_COUNT",
					"message": "count must not be negative",
				},
			})
			return
		}

		h.logger.WithError(err).WithField("user_id", userID).Error("Failed to generate recommendations")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{
				"code":    "RECOMMENDATION_GENERATION_FAILED",
				"message": "Failed to generate recommendations",
			},
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
