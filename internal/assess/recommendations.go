package assess

import (
	"github.com/google/uuid"

	"github.com/carbonclear/emissions-engine/internal/factors"
)

// recommendationRule gates one reduction action on a scope's absolute total.
type recommendationRule struct {
	scope        factors.Scope
	thresholdT   float64
	action       string
	description  string
	reductionMin float64
	reductionMax float64
	priority     Priority
}

// recommendationTable is the fixed action catalog, one entry per scope.
// Reduction ranges are catalog values, not computed.
var recommendationTable = []recommendationRule{
	{
		scope:        factors.Scope1,
		thresholdT:   50,
		action:       "Energy Efficiency",
		description:  "Upgrade combustion equipment, tune boilers, and electrify vehicle fleets to cut direct fuel use.",
		reductionMin: 10,
		reductionMax: 25,
		priority:     PriorityMedium,
	},
	{
		scope:        factors.Scope2,
		thresholdT:   100,
		action:       "Renewable Energy",
		description:  "Procure renewable electricity through PPAs, green tariffs, or on-site generation.",
		reductionMin: 30,
		reductionMax: 70,
		priority:     PriorityHigh,
	},
	{
		scope:        factors.Scope3,
		thresholdT:   200,
		action:       "Supply Chain Engagement",
		description:  "Set supplier emission-reporting requirements and prioritize low-carbon procurement.",
		reductionMin: 15,
		reductionMax: 40,
		priority:     PriorityHigh,
	},
}

// buildRecommendations emits the catalog entries whose scope totals exceed
// their thresholds, in scope order.
func buildRecommendations(s AssessmentSummary) []Recommendation {
	totals := map[factors.Scope]float64{
		factors.Scope1: s.Scope1Total,
		factors.Scope2: s.Scope2Total,
		factors.Scope3: s.Scope3Total,
	}

	var recs []Recommendation
	for _, rule := range recommendationTable {
		if totals[rule.scope] <= rule.thresholdT {
			continue
		}
		recs = append(recs, Recommendation{
			ID:                       uuid.NewString(),
			Scope:                    rule.scope,
			Action:                   rule.action,
			Description:              rule.description,
			PotentialReductionMinPct: rule.reductionMin,
			PotentialReductionMaxPct: rule.reductionMax,
			Priority:                 rule.priority,
		})
	}
	return recs
}
