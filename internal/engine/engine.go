// Package engine implements the outfit recommendation and sustainability
// scoring core. It is stateless between invocations: every call takes a
// full wardrobe snapshot plus context and returns value objects, so
// concurrent calls need no locking and the engine performs no I/O.
package engine

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/onefitted/fitted/internal/config"
	"github.com/onefitted/fitted/pkg/models"
)

// ErrInvalidLimit is the only caller error the engine signals; every
// data-quality problem degrades to neutral scoring instead.
var ErrInvalidLimit = errors.New("result limit must not be negative")

type Engine struct {
	cfg    *config.EngineConfig
	logger *logrus.Logger
}

func New(cfg *config.EngineConfig, logger *logrus.Logger) *Engine {
	return &Engine{
		cfg:    cfg,
		logger: logger,
	}
}

// Recommend generates up to limit ranked outfit suggestions for the given
// snapshot and context. A limit of 0 uses the configured default. An empty
// or single-item wardrobe yields an empty list, which is a valid outcome,
// not an error.
func (e *Engine) Recommend(
	items []models.ClothingItem,
	ctx models.Context,
	limit int,
) ([]models.OutfitRecommendation, error) {
	if limit < 0 {
		return nil, ErrInvalidLimit
	}
	if limit == 0 {
		limit = e.cfg.DefaultLimit
	}

	ctx = normalizeContext(ctx)

	idx := indexWardrobe(items, e.cfg.Candidates.ItemsPerSlot)
	candidates := generateCandidates(idx, e.cfg.Candidates.MaxCandidates)
	if len(candidates) == 0 {
		e.logger.WithField("items", len(items)).Debug("No complete outfit candidates in snapshot")
		return []models.OutfitRecommendation{}, nil
	}

	avgUsage := averageUsage(items)
	scored := e.rankCandidates(candidates, ctx, avgUsage)

	if len(scored) > limit {
		scored = scored[:limit]
	}

	recommendations := make([]models.OutfitRecommendation, len(scored))
	for i, sc := range scored {
		recommendations[i] = models.OutfitRecommendation{
			ItemIDs:            sc.outfit.ItemIDs(),
			Confidence:         sc.confidence,
			Reasoning:          buildReasoning(sc, ctx),
			WeatherAppropriate: sc.weatherOK,
			EventMatch:         sc.eventMatch,
			StyleScore:         sc.colorScore,
		}
	}

	e.logger.WithFields(logrus.Fields{
		"items":      len(items),
		"candidates": len(candidates),
		"returned":   len(recommendations),
	}).Debug("Generated outfit recommendations")

	return recommendations, nil
}
