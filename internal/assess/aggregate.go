package assess

import (
	"math"

	"github.com/google/uuid"

	"github.com/carbonclear/emissions-engine/internal/calc"
	"github.com/carbonclear/emissions-engine/internal/factors"
)

// Aggregate combines per-record results into an assessment summary.
//
// It never fails: an empty input yields an all-zero summary with no insights
// or recommendations. Scope totals are exact sums; the percentage breakdown
// rounds each scope independently.
func Aggregate(results []calc.EmissionResult) AssessmentSummary {
	summary := AssessmentSummary{
		ID: uuid.NewString(),
	}

	var confidenceSum int
	for _, r := range results {
		switch r.Scope {
		case factors.Scope1:
			summary.Scope1Total += r.TotalEmissions
		case factors.Scope2:
			summary.Scope2Total += r.TotalEmissions
		case factors.Scope3:
			summary.Scope3Total += r.TotalEmissions
		}
		confidenceSum += r.ConfidenceLevel
	}

	summary.TotalEmissions = summary.Scope1Total + summary.Scope2Total + summary.Scope3Total

	if len(results) > 0 {
		summary.AverageConfidence = float64(confidenceSum) / float64(len(results))
	}

	if summary.TotalEmissions > 0 {
		summary.EmissionsByScope = ScopeBreakdown{
			Scope1Pct: roundPct(summary.Scope1Total / summary.TotalEmissions),
			Scope2Pct: roundPct(summary.Scope2Total / summary.TotalEmissions),
			Scope3Pct: roundPct(summary.Scope3Total / summary.TotalEmissions),
		}
	}

	if len(results) > 0 {
		summary.Insights = buildInsights(summary)
		summary.Recommendations = buildRecommendations(summary)
	}

	return summary
}

// roundPct converts a 0-1 share to a rounded whole percentage.
func roundPct(share float64) int {
	return int(math.Round(share * 100))
}

// Rounded returns a presentation copy of the summary with totals rounded to
// two decimal places and confidence to one. Internal consumers should keep
// using the unrounded summary to avoid compounding rounding error.
func (s AssessmentSummary) Rounded() AssessmentSummary {
	rounded := s
	rounded.Scope1Total = roundTo(s.Scope1Total, 2)
	rounded.Scope2Total = roundTo(s.Scope2Total, 2)
	rounded.Scope3Total = roundTo(s.Scope3Total, 2)
	rounded.TotalEmissions = roundTo(s.TotalEmissions, 2)
	rounded.AverageConfidence = roundTo(s.AverageConfidence, 1)
	return rounded
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}
