package calc

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/carbonclear/emissions-engine/internal/factors"
	"github.com/carbonclear/emissions-engine/internal/units"
)

const (
	// MaxActivityData is the sanity ceiling for a single activity record.
	// Values above it are almost always unit-entry mistakes and are rejected
	// rather than silently computed.
	MaxActivityData = 1_000_000

	// DefaultRegion is used when the caller omits a region.
	DefaultRegion = "US"

	// kgPerTonne converts kg CO2e (the stored factor convention) to tCO2e.
	kgPerTonne = 1000.0
)

// Calculator computes per-record emission results against an injected factor
// registry. It holds no mutable state; one Calculator may serve concurrent
// calculations as long as the registry snapshot is not replaced mid-batch.
type Calculator struct {
	registry factors.Resolver
	logger   zerolog.Logger
}

// New returns a Calculator backed by the given factor resolver.
func New(registry factors.Resolver, logger zerolog.Logger) *Calculator {
	return &Calculator{
		registry: registry,
		logger:   logger,
	}
}

// validateActivityData enforces the positive, finite, under-ceiling rule
// shared by all three scopes.
func validateActivityData(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return fmt.Errorf("activity_data must be a positive finite number, got %v: %w", value, ErrInvalidActivityData)
	}
	if value > MaxActivityData {
		return fmt.Errorf("activity_data %v exceeds ceiling %d: %w", value, MaxActivityData, ErrActivityDataOutOfRange)
	}
	return nil
}

// compute runs the shared resolve -> normalize -> compute -> score tail of the
// calculation pipeline. The caller has already validated its input and mapped
// it onto a (category, subcategory) registry key.
func (c *Calculator) compute(
	scope factors.Scope,
	category factors.Category,
	subcategory string,
	activityData float64,
	activityUnit string,
	region string,
	estimated bool,
) (EmissionResult, error) {
	if region == "" {
		region = DefaultRegion
	}

	factor, match, err := c.registry.Resolve(category, subcategory, scope, region)
	if err != nil {
		return EmissionResult{}, err
	}

	normalized, verified := units.Normalize(activityData, activityUnit, factor.Unit)
	if !verified {
		c.logger.Debug().
			Str("subcategory", subcategory).
			Str("activity_unit", activityUnit).
			Str("factor_unit", factor.Unit).
			Msg("unit conversion unverified, passing value through")
	}

	// Factor is kg CO2e per canonical unit; report tonnes.
	totalEmissions := normalized * factor.Factor / kgPerTonne

	return EmissionResult{
		Scope:           scope,
		Category:        factor.Category,
		Subcategory:     factor.Subcategory,
		TotalEmissions:  totalEmissions,
		EmissionFactor:  factor.Factor,
		FactorUnit:      factor.Unit,
		FactorRegion:    factor.Region,
		Match:           match,
		UnitVerified:    verified,
		ConfidenceLevel: scoreConfidence(match, verified, estimated),
	}, nil
}
