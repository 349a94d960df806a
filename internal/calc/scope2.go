package calc

import (
	"fmt"
	"strings"

	"github.com/carbonclear/emissions-engine/internal/factors"
)

// residualMixSuffix selects market-based factor rows. Market-based scope 2
// uses residual-mix intensities rather than the physical grid average.
const residualMixSuffix = "_residual_mix"

// CalculateScope2 computes purchased-energy emissions for one activity
// record. GridRegion, when set, overrides the caller region for factor
// lookup; region defaults to DefaultRegion when both are empty.
func (c *Calculator) CalculateScope2(input Scope2Input, region string) (EmissionResult, error) {
	if input.EnergyType == "" {
		return EmissionResult{}, fmt.Errorf("energy_type: %w", ErrMissingField)
	}
	if err := validateActivityData(input.ActivityData); err != nil {
		return EmissionResult{}, err
	}

	subcategory := strings.ToLower(input.EnergyType)

	switch input.Method {
	case "", MethodLocationBased:
		// Location-based is the default accounting method.
	case MethodMarketBased:
		subcategory += residualMixSuffix
	default:
		return EmissionResult{}, fmt.Errorf("method %q is not location or market: %w", input.Method, ErrInvalidFieldValue)
	}

	if input.GridRegion != "" {
		region = input.GridRegion
	}

	return c.compute(
		factors.Scope2,
		factors.CategoryElectricity,
		subcategory,
		input.ActivityData,
		input.ActivityUnit,
		region,
		input.Estimated,
	)
}
