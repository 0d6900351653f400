package models

import (
	"time"
)

// ClothingItem is a read-only snapshot record of a single wardrobe item.
// The engine never mutates items; persistence belongs to the wardrobe store.
type ClothingItem struct {
	ID         string     `json:"id" db:"id"`
	Name       string     `json:"name" db:"name" validate:"required,min=1,max=255"`
	Type       string     `json:"type" db:"clothing_type" validate:"required,min=1,max=100"`
	Color      string     `json:"color" db:"color" validate:"required,min=1,max=100"`
	Tags       []string   `json:"tags,omitempty" db:"tags"`
	UsageCount int        `json:"usage_count" db:"usage_count"`
	LastWorn   *time.Time `json:"last_worn,omitempty" db:"last_worn"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
}

// ClothingItemRequest is the ingestion payload for a new wardrobe item.
type ClothingItemRequest struct {
	Name  string   `json:"name" validate:"required,min=1,max=255"`
	Type  string   `json:"type" validate:"required,min=1,max=100"`
	Color string   `json:"color" validate:"required,min=1,max=100"`
	Tags  []string `json:"tags,omitempty" validate:"max=20,dive,min=1,max=50"`
}

// EventTag enumerates the occasions a recommendation can be asked for.
// The zero value means "unspecified" and never penalizes a candidate.
type EventTag string

const (
	EventUnspecified EventTag = ""
	EventWork        EventTag = "work"
	EventCasual      EventTag = "casual"
	EventFormal      EventTag = "formal"
	EventParty       EventTag = "party"
	EventOutdoor     EventTag = "outdoor"
	EventDate        EventTag = "date"
	EventWorkout     EventTag = "workout"
)

// WeatherCondition enumerates supported weather states.
type WeatherCondition string

const (
	WeatherUnspecified WeatherCondition = ""
	WeatherSunny       WeatherCondition = "sunny"
	WeatherCloudy      WeatherCondition = "cloudy"
	WeatherRainy       WeatherCondition = "rainy"
	WeatherSnowy       WeatherCondition = "snowy"
	WeatherWindy       WeatherCondition = "windy"
)

// Context carries the situational signals for one recommendation request.
// It is constructed fresh per request and never mutated.
type Context struct {
	Event        EventTag         `json:"event,omitempty"`
	TemperatureC int              `json:"temperature_c"`
	Condition    WeatherCondition `json:"condition,omitempty"`
}

// KnownEvents lists every recognized event tag.
var KnownEvents = map[EventTag]bool{
	EventWork:    true,
	EventCasual:  true,
	EventFormal:  true,
	EventParty:   true,
	EventOutdoor: true,
	EventDate:    true,
	EventWorkout: true,
}

// KnownConditions lists every recognized weather condition.
var KnownConditions = map[WeatherCondition]bool{
	WeatherSunny:  true,
	WeatherCloudy: true,
	WeatherRainy:  true,
	WeatherSnowy:  true,
	WeatherWindy:  true,
}
