package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/onefitted/fitted/internal/config"
	"github.com/onefitted/fitted/internal/engine"
	"github.com/onefitted/fitted/pkg/models"
)

// SnapshotProvider supplies a user's wardrobe snapshot.
type SnapshotProvider interface {
	GetSnapshot(ctx context.Context, userID uuid.UUID) ([]models.ClothingItem, error)
}

// RecommendationService fronts the engine: fetch snapshot, run the ranker
// or analyzer, cache the result.
type RecommendationService struct {
	wardrobe SnapshotProvider
	engine   *engine.Engine
	redis    *redis.Client // warm cache
	cfg      *config.EngineConfig
	logger   *logrus.Logger

	requestCounter *prometheus.CounterVec
	latency        *prometheus.HistogramVec
}

func NewRecommendationService(
	wardrobe SnapshotProvider,
	eng *engine.Engine,
	redis *redis.Client,
	cfg *config.EngineConfig,
	logger *logrus.Logger,
) *RecommendationService {
	s := &RecommendationService{
		wardrobe: wardrobe,
		engine:   eng,
		redis:    redis,
		cfg:      cfg,
		logger:   logger,
		requestCounter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "recommendation_requests_total",
			Help: "Recommendation and insight requests by kind and cache outcome",
		}, []string{"kind", "cache"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "End-to-end latency of recommendation and insight requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"kind"}),
	}

	for _, collector := range []prometheus.Collector{s.requestCounter, s.latency} {
		if err := prometheus.Register(collector); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				logger.WithError(err).Warn("Failed to register recommendation metric")
			}
		}
	}

	return s
}

// GetRecommendations produces ranked outfit suggestions for the user under
// the given context. Results are cached per (user, context, count).
func (s *RecommendationService) GetRecommendations(
	ctx context.Context,
	userID uuid.UUID,
	reqCtx models.Context,
	count int,
) (*models.RecommendationResponse, error) {
	start := time.Now()
	defer func() { s.latency.WithLabelValues("outfits").Observe(time.Since(start).Seconds()) }()

	cacheKey := recommendationCacheKey(userID, reqCtx, count)

	if cached := s.getCachedResponse(ctx, cacheKey); cached != nil {
		cached.CacheHit = true
		s.requestCounter.WithLabelValues("outfits", "hit").Inc()
		return cached, nil
	}
	s.requestCounter.WithLabelValues("outfits", "miss").Inc()

	snapshot, err := s.wardrobe.GetSnapshot(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load wardrobe snapshot: %w", err)
	}

	recommendations, err := s.engine.Recommend(snapshot, reqCtx, count)
	if err != nil {
		return nil, err
	}

	response := &models.RecommendationResponse{
		UserID:          userID,
		Recommendations: recommendations,
		Context:         reqCtx,
		GeneratedAt:     time.Now().UTC(),
	}

	s.cacheResponse(ctx, cacheKey, response)
	return response, nil
}

// GetSustainabilityInsights returns the wardrobe sustainability report.
func (s *RecommendationService) GetSustainabilityInsights(
	ctx context.Context,
	userID uuid.UUID,
) (*models.SustainabilityResponse, error) {
	start := time.Now()
	defer func() { s.latency.WithLabelValues("insights").Observe(time.Since(start).Seconds()) }()

	cacheKey := insightsKey(userID)

	if s.redis != nil {
		if cached := s.redis.Get(ctx, cacheKey).Val(); cached != "" {
			var response models.SustainabilityResponse
			if err := json.Unmarshal([]byte(cached), &response); err == nil {
				response.CacheHit = true
				s.requestCounter.WithLabelValues("insights", "hit").Inc()
				return &response, nil
			}
		}
	}
	s.requestCounter.WithLabelValues("insights", "miss").Inc()

	snapshot, err := s.wardrobe.GetSnapshot(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load wardrobe snapshot: %w", err)
	}

	response := &models.SustainabilityResponse{
		UserID:      userID,
		Report:      s.engine.AnalyzeWardrobe(snapshot),
		GeneratedAt: time.Now().UTC(),
	}

	if s.redis != nil {
		if data, err := json.Marshal(response); err == nil {
			if err := s.redis.Set(ctx, cacheKey, data, s.cfg.CacheTTL).Err(); err != nil {
				s.logger.WithError(err).Warn("Failed to cache sustainability insights")
			}
		}
	}

	return response, nil
}

// Cache keys for derived responses. Writes to the wardrobe invalidate
// these by prefix, so the recommendation key must keep the user prefix
// produced by recommendationKeyPrefix.
func recommendationCacheKey(userID uuid.UUID, reqCtx models.Context, count int) string {
	return fmt.Sprintf("%s%s:%d:%s:%d",
		recommendationKeyPrefix(userID), reqCtx.Event, reqCtx.TemperatureC, reqCtx.Condition, count)
}

func recommendationKeyPrefix(userID uuid.UUID) string {
	return fmt.Sprintf("recommendations:%s:", userID.String())
}

func insightsKey(userID uuid.UUID) string {
	return fmt.Sprintf("insights:%s", userID.String())
}

func (s *RecommendationService) getCachedResponse(ctx context.Context, key string) *models.RecommendationResponse {
	if s.redis == nil {
		return nil
	}
	cached := s.redis.Get(ctx, key).Val()
	if cached == "" {
		return nil
	}
	var response models.RecommendationResponse
	if err := json.Unmarshal([]byte(cached), &response); err != nil {
		return nil
	}
	return &response
}

func (s *RecommendationService) cacheResponse(ctx context.Context, key string, response *models.RecommendationResponse) {
	if s.redis == nil {
		return
	}
	data, err := json.Marshal(response)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, key, data, s.cfg.CacheTTL).Err(); err != nil {
		s.logger.WithError(err).Warn("Failed to cache recommendations")
	}
}
