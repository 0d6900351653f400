package engine

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onefitted/fitted/internal/config"
	"github.com/onefitted/fitted/pkg/models"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()

	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	cfg := &config.EngineConfig{
		Weights: config.WeightConfig{
			Color:   0.4,
			Event:   0.25,
			Weather: 0.2,
			Usage:   0.15,
		},
		Candidates: config.CandidateConfig{
			ItemsPerSlot:  3,
			MaxCandidates: 50,
		},
		Sustainability: config.SustainabilityConfig{
			UsageTarget:       10,
			RarelyWornBelow:   2,
			MostWornListSize:  5,
			RarelyWornListCap: 10,
		},
		DefaultLimit: 5,
	}

	return New(cfg, logger)
}

func TestEngine_Recommend_EmptyWardrobe(t *testing.T) {
	e := testEngine(t)

	recs, err := e.Recommend(nil, models.Context{}, 5)

	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestEngine_Recommend_SingleItemIsNotACompleteOutfit(t *testing.T) {
	e := testEngine(t)

	wardrobe := []models.ClothingItem{
		{ID: "a", Type: "shirt", Color: "white", UsageCount: 3},
	}

	recs, err := e.Recommend(wardrobe, models.Context{}, 5)

	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestEngine_Recommend_NegativeLimit(t *testing.T) {
	e := testEngine(t)

	_, err := e.Recommend(nil, models.Context{}, -1)

	require.ErrorIs(t, err, ErrInvalidLimit)
}

func TestEngine_Recommend_WorkScenario(t *testing.T) {
	e := testEngine(t)

	wardrobe := []models.ClothingItem{
		{ID: "a", Name: "White Shirt", Type: "top", Color: "white", UsageCount: 10},
		{ID: "b", Name: "Black Pants", Type: "bottom", Color: "black", UsageCount: 1},
	}
	ctx := models.Context{Event: models.EventWork, TemperatureC: 20, Condition: models.WeatherSunny}

	recs, err := e.Recommend(wardrobe, ctx, 5)

	require.NoError(t, err)
	require.Len(t, recs, 1)

	rec := recs[0]
	assert.ElementsMatch(t, []string{"a", "b"}, rec.ItemIDs)
	assert.True(t, rec.EventMatch)
	assert.True(t, rec.WeatherAppropriate)

	// white and black are both neutral, non-identical colors
	assert.InDelta(t, 0.9, rec.StyleScore, 1e-9)

	// avg usage 5.5: "a" earns no boost, "b" the full 0.3, averaging 0.15
	expected := 0.4*0.9 + 0.25*1.0 + 0.2*1.0 + 0.15*0.15
	assert.InDelta(t, expected, rec.Confidence, 1e-9)

	assert.Contains(t, rec.Reasoning, "Good color coordination")
	assert.Contains(t, rec.Reasoning, "sunny")
	assert.Contains(t, rec.Reasoning, "work")
}

func TestEngine_Recommend_SortedAndBounded(t *testing.T) {
	e := testEngine(t)

	wardrobe := []models.ClothingItem{
		{ID: "t1", Type: "shirt", Color: "white", UsageCount: 2},
		{ID: "t2", Type: "t-shirt", Color: "red", UsageCount: 9},
		{ID: "t3", Type: "sweater", Color: "green", UsageCount: 4},
		{ID: "b1", Type: "jeans", Color: "blue", UsageCount: 1},
		{ID: "b2", Type: "pants", Color: "black", UsageCount: 7},
		{ID: "s1", Type: "sneakers", Color: "white", UsageCount: 5},
		{ID: "o1", Type: "jacket", Color: "navy", UsageCount: 0},
		{ID: "x1", Type: "scarf", Color: "gray", UsageCount: 3},
	}
	ctx := models.Context{Event: models.EventCasual, TemperatureC: 15, Condition: models.WeatherCloudy}

	recs, err := e.Recommend(wardrobe, ctx, 4)

	require.NoError(t, err)
	require.NotEmpty(t, recs)
	assert.LessOrEqual(t, len(recs), 4)

	for i, rec := range recs {
		assert.GreaterOrEqual(t, rec.Confidence, 0.0)
		assert.LessOrEqual(t, rec.Confidence, 1.0)
		if i > 0 {
			assert.LessOrEqual(t, rec.Confidence, recs[i-1].Confidence,
				"recommendations must be sorted by non-increasing confidence")
		}
	}
}

func TestEngine_Recommend_Deterministic(t *testing.T) {
	e := testEngine(t)

	wardrobe := []models.ClothingItem{
		{ID: "t1", Type: "shirt", Color: "white", UsageCount: 2},
		{ID: "t2", Type: "blouse", Color: "pink", UsageCount: 6},
		{ID: "b1", Type: "jeans", Color: "blue", UsageCount: 1},
		{ID: "b2", Type: "skirt", Color: "black", UsageCount: 8},
		{ID: "s1", Type: "boots", Color: "brown", UsageCount: 4},
		{ID: "x1", Type: "belt", Color: "brown", UsageCount: 0},
	}
	ctx := models.Context{Event: models.EventDate, TemperatureC: 18, Condition: models.WeatherWindy}

	first, err := e.Recommend(wardrobe, ctx, 10)
	require.NoError(t, err)
	second, err := e.Recommend(wardrobe, ctx, 10)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEngine_Recommend_MalformedContextIsNeutral(t *testing.T) {
	e := testEngine(t)

	wardrobe := []models.ClothingItem{
		{ID: "a", Type: "shirt", Color: "white", UsageCount: 5},
		{ID: "b", Type: "jeans", Color: "blue", UsageCount: 5},
	}

	good, err := e.Recommend(wardrobe, models.Context{TemperatureC: 20}, 5)
	require.NoError(t, err)
	garbled, err := e.Recommend(wardrobe, models.Context{
		Event:        "gala-dinner",
		TemperatureC: 20,
		Condition:    "hailstorm",
	}, 5)
	require.NoError(t, err)

	require.Len(t, garbled, len(good))
	for i := range good {
		assert.Equal(t, good[i].Confidence, garbled[i].Confidence)
		assert.True(t, garbled[i].EventMatch, "unrecognized event must score as unspecified")
	}
}

func TestEngine_Recommend_OutOfRangeTemperatureIsNeutral(t *testing.T) {
	e := testEngine(t)

	wardrobe := []models.ClothingItem{
		{ID: "a", Type: "shirt", Color: "white", UsageCount: 5},
		{ID: "b", Type: "jeans", Color: "blue", UsageCount: 5},
		{ID: "o", Type: "coat", Color: "navy", UsageCount: 2},
	}

	for _, temp := range []int{1000, -200} {
		recs, err := e.Recommend(wardrobe, models.Context{TemperatureC: temp}, 5)

		require.NoError(t, err)
		require.NotEmpty(t, recs)
		for _, rec := range recs {
			assert.True(t, rec.WeatherAppropriate,
				"out-of-range temperature %d must score neutrally for %v", temp, rec.ItemIDs)
		}
	}
}

func TestEngine_Recommend_UnknownTypeDefaultsToAccessory(t *testing.T) {
	e := testEngine(t)

	// Only a top and a mystery item: no bottom slot, so no valid outfit.
	wardrobe := []models.ClothingItem{
		{ID: "a", Type: "shirt", Color: "white", UsageCount: 5},
		{ID: "z", Type: "hologram", Color: "silver", UsageCount: 0},
	}

	recs, err := e.Recommend(wardrobe, models.Context{TemperatureC: 20}, 5)

	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestEngine_Recommend_DressSatisfiesTopAndBottom(t *testing.T) {
	e := testEngine(t)

	wardrobe := []models.ClothingItem{
		{ID: "d", Type: "dress", Color: "red", UsageCount: 2},
	}

	recs, err := e.Recommend(wardrobe, models.Context{TemperatureC: 22}, 5)

	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, []string{"d"}, recs[0].ItemIDs)
}
