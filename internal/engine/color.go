package engine

import "github.com/onefitted/fitted/pkg/models"

// Color compatibility scores. Color names are free text, so unknown pairs
// get a medium baseline instead of failing.
const (
	colorScoreIdentical = 1.0
	colorScoreNeutral   = 0.9
	colorScoreSameGroup = 0.8
	colorScoreDefault   = 0.5
)

// neutralColors pair well with everything.
var neutralColors = map[string]bool{
	"black": true,
	"white": true,
	"gray":  true,
	"grey":  true,
	"beige": true,
	"cream": true,
	"navy":  true,
}

// colorGroups are harmony families; two colors in the same family score
// above the baseline.
var colorGroups = [][]string{
	{"red", "orange", "yellow", "pink", "burgundy", "brown"},    // warm
	{"blue", "green", "purple", "turquoise", "teal"},            // cool
	{"brown", "tan", "khaki", "olive", "beige"},                  // earth
	{"black", "white", "gray", "grey", "beige", "cream", "navy"}, // neutral
}

var colorGroupIndex = buildColorGroupIndex()

func buildColorGroupIndex() map[string][]int {
	index := make(map[string][]int)
	for i, group := range colorGroups {
		for _, color := range group {
			index[color] = append(index[color], i)
		}
	}
	return index
}

// PairColorScore scores how well two normalized color names work together,
// in [0,1]. Symmetric by construction.
func PairColorScore(a, b string) float64 {
	a, b = NormalizeColor(a), NormalizeColor(b)

	if a == b {
		return colorScoreIdentical
	}
	if neutralColors[a] || neutralColors[b] {
		return colorScoreNeutral
	}
	for _, groupA := range colorGroupIndex[a] {
		for _, groupB := range colorGroupIndex[b] {
			if groupA == groupB {
				return colorScoreSameGroup
			}
		}
	}
	return colorScoreDefault
}

// outfitColorScore averages all pairwise scores among the candidate's
// items. Averaging is order-independent; a candidate with fewer than two
// items has no pair to clash, so it scores maximally.
func outfitColorScore(items []*models.ClothingItem) float64 {
	if len(items) < 2 {
		return colorScoreIdentical
	}

	sum, pairs := 0.0, 0
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			sum += PairColorScore(items[i].Color, items[j].Color)
			pairs++
		}
	}
	return sum / float64(pairs)
}
