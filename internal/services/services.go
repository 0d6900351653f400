package services

import (
	"github.com/onefitted/fitted/internal/config"
	"github.com/onefitted/fitted/internal/database"
	"github.com/onefitted/fitted/internal/engine"
	"github.com/onefitted/fitted/internal/messaging"

	"github.com/sirupsen/logrus"
)

type Services struct {
	Auth           *AuthService
	Health         *HealthService
	RateLimit      *RateLimitService
	MessageBus     *messaging.MessageBus
	Wardrobe       *WardrobeService
	Recommendation *RecommendationService
}

func New(cfg *config.Config, logger *logrus.Logger, db *database.Database) (*Services, error) {
	authService := NewAuthService(cfg, logger, db.Redis.Hot)
	healthService := NewHealthService(cfg, logger, db)
	rateLimitService := NewRateLimitService(cfg, logger, db.Redis.Hot)

	messageBus, err := messaging.NewMessageBus(cfg, logger)
	if err != nil {
		return nil, err
	}

	wardrobeService := NewWardrobeService(db.PG, db.Redis.Warm, logger)

	recommendationService := NewRecommendationService(
		wardrobeService,
		engine.New(&cfg.Engine, logger),
		db.Redis.Warm,
		&cfg.Engine,
		logger,
	)

	return &Services{
		Auth:           authService,
		Health:         healthService,
		RateLimit:      rateLimitService,
		MessageBus:     messageBus,
		Wardrobe:       wardrobeService,
		Recommendation: recommendationService,
	}, nil
}
