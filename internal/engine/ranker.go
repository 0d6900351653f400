package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/onefitted/fitted/pkg/models"
)

// Penalized contribution of a mismatched signal; a mismatch dampens
// confidence instead of zeroing it so the caller still gets a ranked list.
const (
	eventMismatchTerm   = 0.3
	weatherMismatchTerm = 0.4
)

type scoredCandidate struct {
	outfit     *Outfit
	confidence float64
	colorScore float64
	usageBoost float64
	eventMatch bool
	weatherOK  bool
}

// rankCandidates scores every candidate against the context and returns
// them best first. Ties in confidence prefer the higher usage boost (the
// more sustainable pick); item IDs keep the ordering stable after that.
func (e *Engine) rankCandidates(
	candidates []*Outfit,
	ctx models.Context,
	avgUsage float64,
) []scoredCandidate {
	weights := e.cfg.Weights

	scored := make([]scoredCandidate, 0, len(candidates))
	for _, candidate := range candidates {
		sc := scoredCandidate{
			outfit:     candidate,
			colorScore: outfitColorScore(candidate.Items()),
			usageBoost: outfitUsageBoost(candidate, avgUsage),
			eventMatch: matchesEvent(candidate, ctx.Event),
			weatherOK:  weatherAppropriate(candidate, ctx),
		}

		eventTerm := eventMismatchTerm
		if sc.eventMatch {
			eventTerm = 1.0
		}
		weatherTerm := weatherMismatchTerm
		if sc.weatherOK {
			weatherTerm = 1.0
		}

		sc.confidence = clamp01(
			weights.Color*sc.colorScore +
				weights.Event*eventTerm +
				weights.Weather*weatherTerm +
				weights.Usage*sc.usageBoost,
		)
		scored = append(scored, sc)
	}

	sort.Slice(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.confidence != b.confidence {
			return a.confidence > b.confidence
		}
		if a.usageBoost != b.usageBoost {
			return a.usageBoost > b.usageBoost
		}
		return strings.Join(a.outfit.ItemIDs(), ",") < strings.Join(b.outfit.ItemIDs(), ",")
	})

	return scored
}

// buildReasoning assembles the human-readable rationale from whichever
// sub-scores came out strong.
func buildReasoning(sc scoredCandidate, ctx models.Context) string {
	var parts []string

	if sc.colorScore > 0.7 {
		parts = append(parts, "Good color coordination")
	}
	if sc.weatherOK && ctx.Condition != models.WeatherUnspecified {
		parts = append(parts, fmt.Sprintf("Ideal for %s weather", ctx.Condition))
	}
	if sc.eventMatch && ctx.Event != models.EventUnspecified {
		parts = append(parts, fmt.Sprintf("Suitable for %s", ctx.Event))
	}
	if sc.usageBoost >= maxUsageBoost/2 {
		parts = append(parts, "Brings rarely worn pieces back into rotation")
	}

	if len(parts) == 0 {
		return "A balanced everyday combination"
	}
	return strings.Join(parts, "; ")
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
