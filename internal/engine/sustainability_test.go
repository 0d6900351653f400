package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onefitted/fitted/pkg/models"
)

func TestAnalyzeWardrobe_Empty(t *testing.T) {
	e := testEngine(t)

	report := e.AnalyzeWardrobe(nil)

	assert.Zero(t, report.TotalItems)
	assert.Zero(t, report.AverageUsage)
	assert.Zero(t, report.Score)
	assert.Empty(t, report.MostWorn)
	assert.Empty(t, report.RarelyWorn)
	assert.NotEmpty(t, report.Suggestions, "empty wardrobe gets starter suggestions")
}

func TestAnalyzeWardrobe_AllZeroUsage(t *testing.T) {
	e := testEngine(t)

	wardrobe := make([]models.ClothingItem, 10)
	for i := range wardrobe {
		wardrobe[i] = models.ClothingItem{
			ID:    fmt.Sprintf("item-%02d", i),
			Name:  fmt.Sprintf("Item %d", i),
			Type:  "shirt",
			Color: "blue",
		}
	}

	report := e.AnalyzeWardrobe(wardrobe)

	assert.Equal(t, 10, report.TotalItems)
	assert.Zero(t, report.Score, "a never-worn wardrobe scores the lowest tier")
	assert.Len(t, report.RarelyWorn, 10, "every item is rarely worn, within the display cap")
	assert.Contains(t, report.Suggestions, "Try to wear rarely-used items more often")
}

func TestAnalyzeWardrobe_Distributions(t *testing.T) {
	e := testEngine(t)

	wardrobe := []models.ClothingItem{
		{ID: "a", Name: "A", Type: "Shirt", Color: "Blue", UsageCount: 12},
		{ID: "b", Name: "B", Type: "shirt", Color: "blue", UsageCount: 10},
		{ID: "c", Name: "C", Type: "jeans", Color: "black", UsageCount: 9},
	}

	report := e.AnalyzeWardrobe(wardrobe)

	assert.Equal(t, map[string]int{"blue": 2, "black": 1}, report.ColorDistribution)
	assert.Equal(t, map[string]int{"shirt": 2, "jeans": 1}, report.TypeDistribution)
}

func TestAnalyzeWardrobe_ScoreAndLists(t *testing.T) {
	e := testEngine(t)

	wardrobe := []models.ClothingItem{
		{ID: "a", Name: "Everyday Jeans", Type: "jeans", Color: "blue", UsageCount: 20},
		{ID: "b", Name: "White Tee", Type: "t-shirt", Color: "white", UsageCount: 15},
		{ID: "c", Name: "Linen Shirt", Type: "shirt", Color: "beige", UsageCount: 5},
		{ID: "d", Name: "Party Shoes", Type: "heels", Color: "red", UsageCount: 0},
	}

	report := e.AnalyzeWardrobe(wardrobe)

	require.Equal(t, 4, report.TotalItems)
	assert.InDelta(t, 10.0, report.AverageUsage, 1e-9)

	require.NotEmpty(t, report.MostWorn)
	assert.Equal(t, "a", report.MostWorn[0].ID)

	require.Len(t, report.RarelyWorn, 1)
	assert.Equal(t, "d", report.RarelyWorn[0].ID)

	// usage component: avg 10 hits the target -> 1.0
	// rotation component: 3 of 4 items are not rarely worn -> 0.75
	assert.Equal(t, 88, report.Score)
}

func TestAnalyzeWardrobe_Deterministic(t *testing.T) {
	e := testEngine(t)

	wardrobe := []models.ClothingItem{
		{ID: "a", Name: "A", Type: "shirt", Color: "blue", UsageCount: 3},
		{ID: "b", Name: "B", Type: "jeans", Color: "black", UsageCount: 1},
		{ID: "c", Name: "C", Type: "boots", Color: "brown", UsageCount: 0},
	}

	first := e.AnalyzeWardrobe(wardrobe)
	second := e.AnalyzeWardrobe(wardrobe)

	assert.Equal(t, first, second)
}

func TestAnalyzeWardrobe_ManyOfOneTypeSuggestion(t *testing.T) {
	e := testEngine(t)

	var wardrobe []models.ClothingItem
	for i := 0; i < 6; i++ {
		wardrobe = append(wardrobe, models.ClothingItem{
			ID: fmt.Sprintf("j%d", i), Name: "Jeans", Type: "jeans", Color: "blue", UsageCount: 10,
		})
	}

	report := e.AnalyzeWardrobe(wardrobe)

	assert.Contains(t, report.Suggestions, "You have many jeans items - consider other types for variety")
}
