package fit

import (
	"fmt"
	"strings"
)

// Weights combines the three sub-scores into the overall fit score.
type Weights struct {
	Keyword    float64 `json:"keyword"`
	Similarity float64 `json:"similarity"`
	Experience float64 `json:"experience"`
}

// Named weight presets. Both are load-bearing at different call sites;
// batch pipelines historically ran without the experience term. Never merge
// them silently.
var (
	WeightsBalanced     = Weights{Keyword: 0.5, Similarity: 0.3, Experience: 0.2}
	WeightsKeywordHeavy = Weights{Keyword: 0.7, Similarity: 0.3, Experience: 0}
)

// ResolveWeights maps a preset name to its weights. Empty string selects the
// balanced default.
func ResolveWeights(name string) (Weights, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "balanced":
		return WeightsBalanced, nil
	case "keyword_heavy", "keyword-heavy", "batch":
		return WeightsKeywordHeavy, nil
	default:
		return Weights{}, fmt.Errorf("unknown weights preset %q", name)
	}
}

// IsZero reports whether no weight is set.
func (w Weights) IsZero() bool {
	return w.Keyword == 0 && w.Similarity == 0 && w.Experience == 0
}

// Tier is the qualitative bucket derived from the overall score.
type Tier string

const (
	TierExcellent Tier = "excellent"
	TierGood      Tier = "good"
	TierModerate  Tier = "moderate"
	TierLimited   Tier = "limited"
)

// TierFor buckets an overall score: ≥80 excellent, ≥60 good, ≥40 moderate,
// else limited.
func TierFor(score float64) Tier {
	switch {
	case score >= 80:
		return TierExcellent
	case score >= 60:
		return TierGood
	case score >= 40:
		return TierModerate
	default:
		return TierLimited
	}
}

// Aggregate combines sub-scores into the overall score and its tier.
// Pure arithmetic: upstream components have already normalized every
// degenerate condition to 0.0, so there is nothing to handle here.
func Aggregate(keyword, similarity, experience float64, w Weights) (float64, Tier) {
	overall := clamp(w.Keyword*keyword+w.Similarity*similarity+w.Experience*experience, 0, 100)
	return overall, TierFor(overall)
}
