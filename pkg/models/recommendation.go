package models

import (
	"time"

	"github.com/google/uuid"
)

// OutfitRecommendation is a ranked, explainable outfit suggestion. It is a
// value object: created once by the ranker and never mutated afterwards.
type OutfitRecommendation struct {
	ItemIDs            []string `json:"items"`
	Confidence         float64  `json:"confidence"`
	Reasoning          string   `json:"reasoning"`
	WeatherAppropriate bool     `json:"weather_appropriate"`
	EventMatch         bool     `json:"event_match"`
	StyleScore         float64  `json:"style_score"`
}

// RecommendationRequest is the transport-level query for outfit
// suggestions. Unknown events or conditions and out-of-range temperatures
// degrade to neutral scoring downstream; only a negative count is
// rejected outright.
type RecommendationRequest struct {
	Event        string `form:"event" json:"event,omitempty"`
	TemperatureC int    `form:"temperature,default=20" json:"temperature_c"`
	Condition    string `form:"condition" json:"condition,omitempty"`
	Count        int    `form:"count" json:"count" validate:"min=0"`
}

type RecommendationResponse struct {
	UserID          uuid.UUID              `json:"user_id"`
	Recommendations []OutfitRecommendation `json:"recommendations"`
	Context         Context                `json:"context"`
	GeneratedAt     time.Time              `json:"generated_at"`
	CacheHit        bool                   `json:"cache_hit"`
}

// WearEvent records that an item was worn. Published to the wear-event
// topic and applied asynchronously to the wardrobe store.
type WearEvent struct {
	UserID uuid.UUID `json:"user_id"`
	ItemID string    `json:"item_id"`
	WornAt time.Time `json:"worn_at"`
	Source string    `json:"source,omitempty"`
}
