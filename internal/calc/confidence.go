package calc

import "github.com/carbonclear/emissions-engine/internal/factors"

const (
	// baseConfidence is the starting score for every calculation.
	baseConfidence = 100

	// regionFallbackPenalty applies when factor resolution fell back past an
	// exact region match (global or any-region substitution).
	regionFallbackPenalty = 20

	// unverifiedUnitPenalty applies when the unit normalizer could not verify
	// the conversion path and passed the value through.
	unverifiedUnitPenalty = 15

	// estimatedDataPenalty applies when the caller flagged the activity data
	// as approximate.
	estimatedDataPenalty = 10
)

// scoreConfidence derives the 0-100 confidence score for a result.
// Penalties are independent and cumulative; the floor is 0.
func scoreConfidence(match factors.MatchQuality, unitVerified, estimated bool) int {
	score := baseConfidence
	if !match.Exact() {
		score -= regionFallbackPenalty
	}
	if !unitVerified {
		score -= unverifiedUnitPenalty
	}
	if estimated {
		score -= estimatedDataPenalty
	}
	if score < 0 {
		score = 0
	}
	return score
}
