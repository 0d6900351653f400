package handlers

import (
	"github.com/sirupsen/logrus"

	"github.com/onefitted/fitted/internal/services"
	"github.com/onefitted/fitted/internal/validation"
)

type Handlers struct {
	Health         *HealthHandler
	Auth           *AuthHandler
	Wardrobe       *WardrobeHandler
	Recommendation *RecommendationHandler
	Insights       *InsightsHandler
}

func New(logger *logrus.Logger, services *services.Services) (*Handlers, error) {
	schemaValidator, err := validation.NewSchemaValidator()
	if err != nil {
		return nil, err
	}

	return &Handlers{
		Health:         NewHealthHandler(logger, services.Health),
		Auth:           NewAuthHandler(services.Auth, logger),
		Wardrobe:       NewWardrobeHandler(services.Wardrobe, services.MessageBus, schemaValidator, logger),
		Recommendation: NewRecommendationHandler(services.Recommendation, logger),
		Insights:       NewInsightsHandler(services.Recommendation, logger),
	}, nil
}
