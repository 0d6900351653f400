package engine

import (
	"strings"

	"github.com/onefitted/fitted/pkg/models"
)

// Temperature thresholds for outerwear checks, in °C.
const (
	coldOuterwearBelow = 10
	warmNoOuterwearAt  = 25
)

// Plausible ambient temperature bounds, in °C. A reading outside them is
// treated as unspecified: the temperature rules sit out rather than
// penalize every candidate.
const (
	minPlausibleTempC = -60
	maxPlausibleTempC = 60
)

func temperaturePlausible(tempC int) bool {
	return tempC >= minPlausibleTempC && tempC <= maxPlausibleTempC
}

// eventExcludedTypes lists raw clothing types that do not suit an event.
// Events absent from the table accept everything.
var eventExcludedTypes = map[models.EventTag]map[string]bool{
	models.EventWork: {
		"tank_top":   true,
		"shorts":     true,
		"sandals":    true,
		"activewear": true,
	},
	models.EventFormal: {
		"t-shirt":    true,
		"tshirt":     true,
		"tank_top":   true,
		"shorts":     true,
		"sneakers":   true,
		"sandals":    true,
		"hoodie":     true,
		"activewear": true,
		"leggings":   true,
	},
	models.EventWorkout: {
		"blazer":  true,
		"coat":    true,
		"dress":   true,
		"heels":   true,
		"loafers": true,
		"blouse":  true,
		"skirt":   true,
	},
}

// openShoeTypes approximates footwear unsuited to rain or snow. There is
// no waterproof attribute on items, so this is a best-effort name
// heuristic, not authoritative.
var openShoeTypes = map[string]bool{
	"sandals":    true,
	"flip-flops": true,
	"flip_flops": true,
	"slides":     true,
}

// normalizeContext maps unrecognized event and weather strings to
// unspecified so malformed input scores neutrally instead of failing.
func normalizeContext(ctx models.Context) models.Context {
	ctx.Event = models.EventTag(lowercase.String(string(ctx.Event)))
	if !models.KnownEvents[ctx.Event] {
		ctx.Event = models.EventUnspecified
	}
	ctx.Condition = models.WeatherCondition(lowercase.String(string(ctx.Condition)))
	if !models.KnownConditions[ctx.Condition] {
		ctx.Condition = models.WeatherUnspecified
	}
	return ctx
}

// matchesEvent reports whether every item in the candidate is permitted
// for the requested event. Unspecified events always match.
func matchesEvent(candidate *Outfit, event models.EventTag) bool {
	if event == models.EventUnspecified {
		return true
	}
	excluded := eventExcludedTypes[event]
	if len(excluded) == 0 {
		return true
	}
	for _, item := range candidate.Items() {
		rawType := strings.TrimSpace(lowercase.String(item.Type))
		if excluded[rawType] {
			return false
		}
	}
	return true
}

// weatherAppropriate checks the candidate against temperature thresholds
// and precipitation. Unspecified conditions only leave the temperature
// checks in play; an implausible temperature disables them too.
func weatherAppropriate(candidate *Outfit, ctx models.Context) bool {
	if temperaturePlausible(ctx.TemperatureC) {
		if ctx.TemperatureC < coldOuterwearBelow && candidate.Outerwear == nil {
			return false
		}
		if ctx.TemperatureC > warmNoOuterwearAt && candidate.Outerwear != nil {
			return false
		}
	}

	if ctx.Condition == models.WeatherRainy || ctx.Condition == models.WeatherSnowy {
		if candidate.Shoes != nil {
			rawType := strings.TrimSpace(lowercase.String(candidate.Shoes.Type))
			if openShoeTypes[rawType] || strings.Contains(lowercase.String(candidate.Shoes.Name), "sandal") {
				return false
			}
		}
	}

	return true
}
