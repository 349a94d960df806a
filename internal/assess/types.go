// Package assess aggregates per-record emission results into an assessment
// summary with qualitative insights and reduction recommendations.
//
// Aggregation is a pure function over its input: totals, percentages, and the
// rule tables below are all derived from the same unrounded sums. Rounding
// happens only in the Rounded presentation view.
package assess

import "github.com/carbonclear/emissions-engine/internal/factors"

// Priority ranks insights and recommendations.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Insight kinds. Each kind corresponds to one family of threshold rules.
const (
	// InsightScopeDistribution flags a single scope dominating total
	// emissions.
	InsightScopeDistribution = "scope_distribution"

	// InsightDataQuality flags low average confidence across results.
	InsightDataQuality = "data_quality"

	// InsightEmissionLevel flags an absolute emissions level worth acting on.
	InsightEmissionLevel = "emission_level"
)

// Insight is one qualitative finding derived from aggregate totals.
type Insight struct {
	// Type is one of the Insight* kind constants.
	Type string `json:"type"`

	// Priority ranks how urgently the finding should be addressed.
	Priority Priority `json:"priority"`

	// Title is a short headline for the finding.
	Title string `json:"title"`

	// Description explains the finding and the suggested direction.
	Description string `json:"description"`
}

// Recommendation is a per-scope reduction action gated by an absolute
// threshold on that scope's total.
type Recommendation struct {
	// ID uniquely identifies this recommendation instance.
	ID string `json:"id"`

	// Scope is the emission scope the action targets.
	Scope factors.Scope `json:"scope"`

	// Action is the short name of the reduction program.
	Action string `json:"action"`

	// Description explains the action.
	Description string `json:"description"`

	// PotentialReductionMinPct and PotentialReductionMaxPct bound the
	// expected reduction of the targeted scope's emissions, in percent.
	PotentialReductionMinPct float64 `json:"potential_reduction_min_pct"`
	PotentialReductionMaxPct float64 `json:"potential_reduction_max_pct"`

	// Priority ranks the action.
	Priority Priority `json:"priority"`
}

// ScopeBreakdown is the percentage distribution of emissions by scope.
// Percentages are rounded independently and may not sum to exactly 100.
type ScopeBreakdown struct {
	Scope1Pct int `json:"scope1_pct"`
	Scope2Pct int `json:"scope2_pct"`
	Scope3Pct int `json:"scope3_pct"`
}

// AssessmentSummary aggregates a set of emission results for one reporting
// period. Totals are unrounded; use Rounded for presentation.
type AssessmentSummary struct {
	// ID uniquely identifies this assessment.
	ID string `json:"id"`

	// Scope1Total, Scope2Total, and Scope3Total are per-scope sums in tCO2e.
	Scope1Total float64 `json:"scope1_total"`
	Scope2Total float64 `json:"scope2_total"`
	Scope3Total float64 `json:"scope3_total"`

	// TotalEmissions is the sum of the three scope totals in tCO2e.
	TotalEmissions float64 `json:"total_emissions"`

	// AverageConfidence is the mean confidence over all results, 0 when the
	// result set is empty.
	AverageConfidence float64 `json:"average_confidence"`

	// EmissionsByScope is the percentage distribution of the total.
	EmissionsByScope ScopeBreakdown `json:"emissions_by_scope"`

	// Insights are qualitative findings in deterministic rule order.
	Insights []Insight `json:"insights"`

	// Recommendations are threshold-gated reduction actions, one per
	// qualifying scope.
	Recommendations []Recommendation `json:"recommendations"`
}
