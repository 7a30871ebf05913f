// internal/service/transform/score.go

package transform

import (
	"math"

	"trendscope/internal/domain/trend"
)

const (
	baseScore = 50
	maxScore  = 99
)

// Score derives a bounded popularity score from an interaction volume.
// Zero or unknown volume maps to the neutral base score. The platform
// parameter is reserved for per-platform weighting and is currently unused.
func Score(volume float64, _ trend.Platform) int {
	if volume <= 0 {
		return baseScore
	}

	score := int(math.Round(baseScore + 5*math.Log10(volume)))
	if score > maxScore {
		return maxScore
	}
	if score < 0 {
		return 0
	}
	return score
}
