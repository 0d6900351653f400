package models

import (
	"time"

	"github.com/google/uuid"
)

// ItemUsage is a compact usage line for report lists.
type ItemUsage struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	UsageCount int    `json:"usage_count"`
}

// SustainabilityReport aggregates usage statistics across a wardrobe
// snapshot. Recomputed fresh per request; never persisted by the engine.
type SustainabilityReport struct {
	TotalItems        int            `json:"total_items"`
	AverageUsage      float64        `json:"average_usage"`
	MostWorn          []ItemUsage    `json:"most_worn"`
	RarelyWorn        []ItemUsage    `json:"rarely_worn"`
	ColorDistribution map[string]int `json:"color_distribution"`
	TypeDistribution  map[string]int `json:"type_distribution"`
	Score             int            `json:"score"`
	Suggestions       []string       `json:"suggestions"`
}

type SustainabilityResponse struct {
	UserID      uuid.UUID            `json:"user_id"`
	Report      SustainabilityReport `json:"report"`
	GeneratedAt time.Time            `json:"generated_at"`
	CacheHit    bool                 `json:"cache_hit"`
}
