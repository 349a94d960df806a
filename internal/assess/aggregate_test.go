package assess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carbonclear/emissions-engine/internal/calc"
	"github.com/carbonclear/emissions-engine/internal/factors"
)

// result builds a minimal emission result for aggregation tests.
func result(scope factors.Scope, tCO2e float64, confidence int) calc.EmissionResult {
	return calc.EmissionResult{
		Scope:           scope,
		TotalEmissions:  tCO2e,
		ConfidenceLevel: confidence,
	}
}

func TestAggregate_Empty(t *testing.T) {
	summary := Aggregate(nil)

	assert.NotEmpty(t, summary.ID)
	assert.Zero(t, summary.Scope1Total)
	assert.Zero(t, summary.Scope2Total)
	assert.Zero(t, summary.Scope3Total)
	assert.Zero(t, summary.TotalEmissions)
	assert.Zero(t, summary.AverageConfidence, "empty input must not divide by zero")
	assert.Empty(t, summary.Insights)
	assert.Empty(t, summary.Recommendations)
	assert.Zero(t, summary.EmissionsByScope.Scope1Pct)
}

func TestAggregate_Additivity(t *testing.T) {
	summary := Aggregate([]calc.EmissionResult{
		result(factors.Scope1, 12.5, 100),
		result(factors.Scope1, 7.5, 90),
		result(factors.Scope2, 30.25, 80),
		result(factors.Scope3, 4.75, 85),
	})

	assert.Equal(t, 20.0, summary.Scope1Total)
	assert.Equal(t, 30.25, summary.Scope2Total)
	assert.Equal(t, 4.75, summary.Scope3Total)
	// Additivity is exact: the total is defined as the sum of the scope sums.
	assert.Equal(t, summary.Scope1Total+summary.Scope2Total+summary.Scope3Total, summary.TotalEmissions)
}

func TestAggregate_AverageConfidence(t *testing.T) {
	summary := Aggregate([]calc.EmissionResult{
		result(factors.Scope1, 1, 100),
		result(factors.Scope2, 1, 80),
		result(factors.Scope3, 1, 90),
	})

	assert.InDelta(t, 90.0, summary.AverageConfidence, 0.0001)
}

func TestAggregate_PercentageBreakdown(t *testing.T) {
	summary := Aggregate([]calc.EmissionResult{
		result(factors.Scope1, 600, 100),
		result(factors.Scope2, 200, 100),
		result(factors.Scope3, 200, 100),
	})

	assert.Equal(t, 60, summary.EmissionsByScope.Scope1Pct)
	assert.Equal(t, 20, summary.EmissionsByScope.Scope2Pct)
	assert.Equal(t, 20, summary.EmissionsByScope.Scope3Pct)
}

func TestAggregate_PercentagesRoundIndependently(t *testing.T) {
	// Three equal thirds round to 33/33/33; the sum being 99 is accepted.
	summary := Aggregate([]calc.EmissionResult{
		result(factors.Scope1, 1, 100),
		result(factors.Scope2, 1, 100),
		result(factors.Scope3, 1, 100),
	})

	assert.Equal(t, 33, summary.EmissionsByScope.Scope1Pct)
	assert.Equal(t, 33, summary.EmissionsByScope.Scope2Pct)
	assert.Equal(t, 33, summary.EmissionsByScope.Scope3Pct)
}

func TestAggregate_ZeroTotalNoDivideByZero(t *testing.T) {
	// A zero-factor row yields a zero-emission result; the breakdown must
	// stay at zero rather than NaN.
	summary := Aggregate([]calc.EmissionResult{
		result(factors.Scope1, 0, 100),
	})

	assert.Zero(t, summary.TotalEmissions)
	assert.Zero(t, summary.EmissionsByScope.Scope1Pct)
}

func TestRounded(t *testing.T) {
	s := AssessmentSummary{
		Scope1Total:       10.005,
		Scope2Total:       1.0049,
		Scope3Total:       2.999,
		TotalEmissions:    14.0089,
		AverageConfidence: 86.6666,
	}

	r := s.Rounded()

	assert.InDelta(t, 10.0, r.Scope1Total, 0.011)
	assert.Equal(t, 1.0, r.Scope2Total)
	assert.Equal(t, 3.0, r.Scope3Total)
	assert.Equal(t, 14.01, r.TotalEmissions)
	assert.Equal(t, 86.7, r.AverageConfidence)

	// The receiver is unchanged.
	assert.Equal(t, 10.005, s.Scope1Total)
}

func TestAggregate_UniqueIDs(t *testing.T) {
	a := Aggregate(nil)
	b := Aggregate(nil)
	require.NotEqual(t, a.ID, b.ID)
}

func BenchmarkAggregate(b *testing.B) {
	results := make([]calc.EmissionResult, 0, 300)
	for i := 0; i < 100; i++ {
		results = append(results,
			result(factors.Scope1, 1.5, 100),
			result(factors.Scope2, 2.5, 80),
			result(factors.Scope3, 3.5, 90),
		)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Aggregate(results)
	}
}
