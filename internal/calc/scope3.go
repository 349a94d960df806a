package calc

import (
	"fmt"

	"github.com/carbonclear/emissions-engine/internal/factors"
)

// scope3Category describes the registry namespace and default subcategory for
// one GHG Protocol scope 3 category.
type scope3Category struct {
	name               string
	category           factors.Category
	defaultSubcategory string
}

// scope3Categories maps GHG Protocol category numbers 1-15 to factor
// namespaces. Defaults are the most commonly reported activity within each
// category; ActivityType overrides them.
var scope3Categories = map[int]scope3Category{
	1:  {"purchased_goods_and_services", factors.CategoryMaterial, "average_goods"},
	2:  {"capital_goods", factors.CategoryMaterial, "capital_goods"},
	3:  {"fuel_and_energy_related", factors.CategoryFuel, "upstream_energy"},
	4:  {"upstream_transportation", factors.CategoryTransport, "freight_truck"},
	5:  {"waste_generated_in_operations", factors.CategoryWaste, "landfill"},
	6:  {"business_travel", factors.CategoryTransport, "air_short_haul"},
	7:  {"employee_commuting", factors.CategoryTransport, "car_commute"},
	8:  {"upstream_leased_assets", factors.CategoryElectricity, "electricity"},
	9:  {"downstream_transportation", factors.CategoryTransport, "freight_truck"},
	10: {"processing_of_sold_products", factors.CategoryMaterial, "average_goods"},
	11: {"use_of_sold_products", factors.CategoryElectricity, "electricity"},
	12: {"end_of_life_treatment", factors.CategoryWaste, "landfill"},
	13: {"downstream_leased_assets", factors.CategoryElectricity, "electricity"},
	14: {"franchises", factors.CategoryElectricity, "electricity"},
	15: {"investments", factors.CategoryMaterial, "average_goods"},
}

// Scope3CategoryName returns the GHG Protocol name for a category number, or
// ok=false if the number is outside 1-15.
func Scope3CategoryName(number int) (string, bool) {
	cat, ok := scope3Categories[number]
	if !ok {
		return "", false
	}
	return cat.name, true
}

// CalculateScope3 computes value-chain emissions for one activity record.
// Region defaults to DefaultRegion when empty.
func (c *Calculator) CalculateScope3(input Scope3Input, region string) (EmissionResult, error) {
	if input.CategoryNumber == 0 {
		return EmissionResult{}, fmt.Errorf("category_number: %w", ErrMissingField)
	}
	cat, ok := scope3Categories[input.CategoryNumber]
	if !ok {
		return EmissionResult{}, fmt.Errorf("category_number %d is outside GHG categories 1-15: %w", input.CategoryNumber, ErrInvalidFieldValue)
	}
	if err := validateActivityData(input.ActivityData); err != nil {
		return EmissionResult{}, err
	}

	subcategory := input.ActivityType
	if subcategory == "" {
		subcategory = cat.defaultSubcategory
	}

	return c.compute(
		factors.Scope3,
		cat.category,
		subcategory,
		input.ActivityData,
		input.ActivityUnit,
		region,
		input.Estimated,
	)
}
