package engine

import (
	"gonum.org/v1/gonum/stat"

	"github.com/onefitted/fitted/pkg/models"
)

// maxUsageBoost caps the sustainability bonus an underused item can earn.
const maxUsageBoost = 0.3

// averageUsage returns the mean usage count across the snapshot, 0 for an
// empty snapshot.
func averageUsage(items []models.ClothingItem) float64 {
	if len(items) == 0 {
		return 0
	}
	counts := make([]float64, len(items))
	for i, item := range items {
		counts[i] = float64(item.UsageCount)
	}
	return stat.Mean(counts, nil)
}

// usageBoost rewards items worn less than the wardrobe average: full boost
// below half the average, zero at or above it, linear in between. A zero
// average (empty or never-worn wardrobe) short-circuits to 0 because
// there is no baseline to boost against.
func usageBoost(item models.ClothingItem, avg float64) float64 {
	if avg <= 0 {
		return 0
	}
	usage := float64(item.UsageCount)
	if usage >= avg {
		return 0
	}
	half := avg / 2
	if usage < half {
		return maxUsageBoost
	}
	return maxUsageBoost * (avg - usage) / half
}

// outfitUsageBoost averages the boost over a candidate's filled slots.
func outfitUsageBoost(candidate *Outfit, avg float64) float64 {
	items := candidate.Items()
	if len(items) == 0 {
		return 0
	}
	sum := 0.0
	for _, item := range items {
		sum += usageBoost(*item, avg)
	}
	return sum / float64(len(items))
}
