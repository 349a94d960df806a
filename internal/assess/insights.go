package assess

// Thresholds for insight rules. Each rule is evaluated independently against
// the same totals; a single summary can carry several simultaneous insights.
const (
	// scope1DominanceShare triggers the scope 1 dominance insight.
	scope1DominanceShare = 0.5

	// scope2DominanceShare triggers the scope 2 dominance insight.
	scope2DominanceShare = 0.6

	// scope3DominanceShare triggers the scope 3 dominance insight.
	scope3DominanceShare = 0.7

	// lowConfidenceThreshold triggers the data-quality insight.
	lowConfidenceThreshold = 60.0

	// highEmissionsThreshold (tCO2e) triggers the science-based-targets
	// insight.
	highEmissionsThreshold = 1000.0
)

// buildInsights evaluates the insight rules in fixed order so output is
// deterministic for a given summary.
func buildInsights(s AssessmentSummary) []Insight {
	var insights []Insight

	if s.TotalEmissions > 0 {
		if s.Scope1Total/s.TotalEmissions > scope1DominanceShare {
			insights = append(insights, Insight{
				Type:     InsightScopeDistribution,
				Priority: PriorityHigh,
				Title:    "Scope 1 emissions dominate",
				Description: "Direct emissions account for the majority of your footprint. " +
					"Prioritize fuel switching, equipment electrification, and combustion efficiency.",
			})
		}
		if s.Scope2Total/s.TotalEmissions > scope2DominanceShare {
			insights = append(insights, Insight{
				Type:     InsightScopeDistribution,
				Priority: PriorityHigh,
				Title:    "Scope 2 emissions dominate",
				Description: "Purchased energy drives most of your footprint. " +
					"Consider renewable energy procurement and power purchase agreements.",
			})
		}
		if s.Scope3Total/s.TotalEmissions > scope3DominanceShare {
			insights = append(insights, Insight{
				Type:     InsightScopeDistribution,
				Priority: PriorityHigh,
				Title:    "Scope 3 emissions dominate",
				Description: "Value-chain emissions drive most of your footprint. " +
					"Engage suppliers on measurement and reduction programs.",
			})
		}
	}

	if s.AverageConfidence < lowConfidenceThreshold {
		insights = append(insights, Insight{
			Type:     InsightDataQuality,
			Priority: PriorityMedium,
			Title:    "Low data confidence",
			Description: "Several results relied on fallback factors or unverified unit conversions. " +
				"Collect primary activity data and region-specific factors to improve accuracy.",
		})
	}

	if s.TotalEmissions > highEmissionsThreshold {
		insights = append(insights, Insight{
			Type:     InsightEmissionLevel,
			Priority: PriorityHigh,
			Title:    "Set science-based targets",
			Description: "Total emissions exceed 1,000 tCO2e. " +
				"Set science-based reduction targets and establish a formal decarbonization plan.",
		})
	}

	return insights
}
