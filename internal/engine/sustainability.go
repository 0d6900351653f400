package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/onefitted/fitted/pkg/models"
)

// AnalyzeWardrobe computes the sustainability report for a snapshot. The
// report is deterministic: the same snapshot always yields the same
// report, with no time-of-day dependence.
func (e *Engine) AnalyzeWardrobe(items []models.ClothingItem) models.SustainabilityReport {
	cfg := e.cfg.Sustainability

	if len(items) == 0 {
		return models.SustainabilityReport{
			MostWorn:          []models.ItemUsage{},
			RarelyWorn:        []models.ItemUsage{},
			ColorDistribution: map[string]int{},
			TypeDistribution:  map[string]int{},
			Suggestions: []string{
				"Start by adding items to your wardrobe to track sustainability",
				"Upload your clothing items to get personalized insights",
			},
		}
	}

	avg := averageUsage(items)

	byUsageDesc := make([]models.ClothingItem, len(items))
	copy(byUsageDesc, items)
	sort.Slice(byUsageDesc, func(i, j int) bool {
		if byUsageDesc[i].UsageCount != byUsageDesc[j].UsageCount {
			return byUsageDesc[i].UsageCount > byUsageDesc[j].UsageCount
		}
		return byUsageDesc[i].ID < byUsageDesc[j].ID
	})

	mostWorn := make([]models.ItemUsage, 0, cfg.MostWornListSize)
	for _, item := range byUsageDesc {
		if len(mostWorn) == cfg.MostWornListSize {
			break
		}
		mostWorn = append(mostWorn, models.ItemUsage{ID: item.ID, Name: item.Name, UsageCount: item.UsageCount})
	}

	rarelyWorn := make([]models.ItemUsage, 0, cfg.RarelyWornListCap)
	rarelyCount := 0
	for i := len(byUsageDesc) - 1; i >= 0; i-- {
		item := byUsageDesc[i]
		if item.UsageCount >= cfg.RarelyWornBelow {
			continue
		}
		rarelyCount++
		if len(rarelyWorn) < cfg.RarelyWornListCap {
			rarelyWorn = append(rarelyWorn, models.ItemUsage{ID: item.ID, Name: item.Name, UsageCount: item.UsageCount})
		}
	}

	colorDist := make(map[string]int)
	typeDist := make(map[string]int)
	for _, item := range items {
		colorDist[NormalizeColor(item.Color)]++
		typeDist[lowercase.String(item.Type)]++
	}

	// Score: half from how close average usage is to the target, half
	// from the fraction of items that are not rarely worn.
	usageComponent := math.Min(avg/cfg.UsageTarget, 1.0)
	rotationComponent := float64(len(items)-rarelyCount) / float64(len(items))
	score := int(math.Round(100 * (0.5*usageComponent + 0.5*rotationComponent)))

	return models.SustainabilityReport{
		TotalItems:        len(items),
		AverageUsage:      math.Round(avg*10) / 10,
		MostWorn:          mostWorn,
		RarelyWorn:        rarelyWorn,
		ColorDistribution: colorDist,
		TypeDistribution:  typeDist,
		Score:             score,
		Suggestions:       buildSuggestions(items, colorDist, typeDist, rarelyCount, avg, cfg.UsageTarget),
	}
}

// buildSuggestions picks fixed templates keyed to the weakest parts of the
// report.
func buildSuggestions(
	items []models.ClothingItem,
	colorDist, typeDist map[string]int,
	rarelyCount int,
	avg, usageTarget float64,
) []string {
	total := len(items)
	var suggestions []string

	if float64(rarelyCount) > float64(total)*0.3 {
		suggestions = append(suggestions,
			"Try to wear rarely-used items more often",
			"Consider donating or repurposing items you rarely wear",
		)
	}

	if avg < usageTarget/2 {
		suggestions = append(suggestions, "Build outfits around pieces you already own before buying new ones")
	}

	if colorDist["black"] > int(float64(total)*0.4) {
		suggestions = append(suggestions, "Try adding more colorful items to diversify your wardrobe")
	}

	for _, typeName := range sortedKeys(typeDist) {
		if typeDist[typeName] > 5 {
			suggestions = append(suggestions,
				fmt.Sprintf("You have many %s items - consider other types for variety", typeName))
		}
	}

	return suggestions
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
