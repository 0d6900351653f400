package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/onefitted/fitted/pkg/models"
)

func TestMatchesEvent(t *testing.T) {
	shirt := &models.ClothingItem{ID: "s", Type: "shirt"}
	shorts := &models.ClothingItem{ID: "x", Type: "shorts"}
	sneakers := &models.ClothingItem{ID: "k", Type: "sneakers"}
	blazer := &models.ClothingItem{ID: "b", Type: "blazer"}

	tests := []struct {
		name     string
		outfit   *Outfit
		event    models.EventTag
		expected bool
	}{
		{"unspecified event always matches", &Outfit{Top: shirt, Bottom: shorts}, models.EventUnspecified, true},
		{"casual has no exclusions", &Outfit{Top: shirt, Bottom: shorts}, models.EventCasual, true},
		{"shorts are out for work", &Outfit{Top: shirt, Bottom: shorts}, models.EventWork, false},
		{"sneakers are out for formal", &Outfit{Top: shirt, Bottom: shorts, Shoes: sneakers}, models.EventFormal, false},
		{"blazer is out for a workout", &Outfit{Top: shirt, Bottom: shorts, Outerwear: blazer}, models.EventWorkout, false},
		{"plain office outfit works", &Outfit{Top: shirt, Bottom: &models.ClothingItem{ID: "p", Type: "pants"}}, models.EventWork, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, matchesEvent(tt.outfit, tt.event))
		})
	}
}

func TestWeatherAppropriate(t *testing.T) {
	top := &models.ClothingItem{ID: "t", Type: "shirt"}
	bottom := &models.ClothingItem{ID: "b", Type: "jeans"}
	coat := &models.ClothingItem{ID: "c", Type: "coat"}
	boots := &models.ClothingItem{ID: "o", Type: "boots", Name: "Leather Boots"}
	sandals := &models.ClothingItem{ID: "s", Type: "sandals", Name: "Strappy Sandals"}

	tests := []struct {
		name     string
		outfit   *Outfit
		ctx      models.Context
		expected bool
	}{
		{"cold without outerwear fails", &Outfit{Top: top, Bottom: bottom}, models.Context{TemperatureC: 5}, false},
		{"cold with outerwear passes", &Outfit{Top: top, Bottom: bottom, Outerwear: coat}, models.Context{TemperatureC: 5}, true},
		{"hot with outerwear fails", &Outfit{Top: top, Bottom: bottom, Outerwear: coat}, models.Context{TemperatureC: 30}, false},
		{"temperate needs nothing", &Outfit{Top: top, Bottom: bottom}, models.Context{TemperatureC: 20}, true},
		{"rain rejects open shoes", &Outfit{Top: top, Bottom: bottom, Shoes: sandals}, models.Context{TemperatureC: 18, Condition: models.WeatherRainy}, false},
		{"rain accepts boots", &Outfit{Top: top, Bottom: bottom, Shoes: boots}, models.Context{TemperatureC: 18, Condition: models.WeatherRainy}, true},
		{"snow rejects open shoes", &Outfit{Top: top, Bottom: bottom, Outerwear: coat, Shoes: sandals}, models.Context{TemperatureC: 0, Condition: models.WeatherSnowy}, false},
		{"sunny ignores footwear", &Outfit{Top: top, Bottom: bottom, Shoes: sandals}, models.Context{TemperatureC: 22, Condition: models.WeatherSunny}, true},
		{"implausible heat disables the warm rule", &Outfit{Top: top, Bottom: bottom, Outerwear: coat}, models.Context{TemperatureC: 1000}, true},
		{"implausible cold disables the cold rule", &Outfit{Top: top, Bottom: bottom}, models.Context{TemperatureC: -200}, true},
		{"implausible temperature still checks precipitation", &Outfit{Top: top, Bottom: bottom, Shoes: sandals}, models.Context{TemperatureC: 1000, Condition: models.WeatherRainy}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, weatherAppropriate(tt.outfit, tt.ctx))
		})
	}
}

func TestNormalizeContext(t *testing.T) {
	t.Run("known values pass through", func(t *testing.T) {
		ctx := normalizeContext(models.Context{Event: models.EventWork, Condition: models.WeatherRainy})
		assert.Equal(t, models.EventWork, ctx.Event)
		assert.Equal(t, models.WeatherRainy, ctx.Condition)
	})

	t.Run("case folds", func(t *testing.T) {
		ctx := normalizeContext(models.Context{Event: "WORK", Condition: "Rainy"})
		assert.Equal(t, models.EventWork, ctx.Event)
		assert.Equal(t, models.WeatherRainy, ctx.Condition)
	})

	t.Run("unknown values become unspecified", func(t *testing.T) {
		ctx := normalizeContext(models.Context{Event: "regatta", Condition: "meteor shower"})
		assert.Equal(t, models.EventUnspecified, ctx.Event)
		assert.Equal(t, models.WeatherUnspecified, ctx.Condition)
	})
}
