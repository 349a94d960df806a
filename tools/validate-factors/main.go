// Package main provides a tool to validate the embedded emission factor
// dataset before release.
//
// It checks that every row has the required fields, that factor values fall
// within a physically plausible range for their category, and that no
// (category, subcategory, scope, region) key is duplicated.
//
// Usage:
//
//	go run ./tools/validate-factors [--data path]
//
// Flags:
//
//	--data  Path to a factor dataset JSON file
//	        (default: ./internal/factors/data/emission_factors.json)
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"

	"github.com/carbonclear/emissions-engine/internal/factors"
)

// maxFactorByCategory bounds kg CO2e per canonical unit per category.
// Refrigerants are GWP multipliers and run to the thousands; grid electricity
// never exceeds ~2 kg/kWh anywhere in the world.
var maxFactorByCategory = map[factors.Category]float64{
	factors.CategoryFuel:        3000,  // coal per short ton is the ceiling
	factors.CategoryElectricity: 100,   // steam per MMBtu is the ceiling
	factors.CategoryTransport:   50,    // hotel nights are the ceiling
	factors.CategoryMaterial:    50,    // primary aluminum is the ceiling
	factors.CategoryWaste:       5,
	factors.CategoryRefrigerant: 15000, // high-GWP HFCs
	factors.CategoryProcess:     2000,  // per tonne of product
}

const (
	minYear = 2015
	maxYear = 2030
)

func main() {
	dataPath := flag.String("data", "./internal/factors/data/emission_factors.json", "Path to factor dataset JSON")
	flag.Parse()

	raw, err := os.ReadFile(*dataPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading dataset: %v\n", err)
		os.Exit(1)
	}

	var ds struct {
		Version string                   `json:"version"`
		Factors []factors.EmissionFactor `json:"factors"`
	}
	if err := json.Unmarshal(raw, &ds); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing dataset: %v\n", err)
		os.Exit(1)
	}

	var problems []string
	seen := make(map[string]int)

	for i, f := range ds.Factors {
		where := fmt.Sprintf("row %d (%s/%s scope %d %s)", i, f.Category, f.Subcategory, f.Scope, f.Region)

		if f.Subcategory == "" {
			problems = append(problems, where+": empty subcategory")
		}
		if f.Unit == "" {
			problems = append(problems, where+": empty unit")
		}
		if f.Region == "" {
			problems = append(problems, where+": empty region")
		}
		if f.Region != strings.ToUpper(f.Region) {
			problems = append(problems, where+": region not uppercase")
		}
		if !f.Scope.Valid() {
			problems = append(problems, where+": invalid scope")
		}
		if f.Factor < 0 {
			problems = append(problems, where+": negative factor")
		}
		if maxAllowed, ok := maxFactorByCategory[f.Category]; !ok {
			problems = append(problems, where+": unknown category")
		} else if f.Factor > maxAllowed {
			problems = append(problems, fmt.Sprintf("%s: factor %v exceeds category ceiling %v", where, f.Factor, maxAllowed))
		}
		if f.Year < minYear || f.Year > maxYear {
			problems = append(problems, fmt.Sprintf("%s: year %d outside %d-%d", where, f.Year, minYear, maxYear))
		}

		key := fmt.Sprintf("%s/%s/%d/%s", f.Category, strings.ToLower(f.Subcategory), f.Scope, strings.ToUpper(f.Region))
		if prev, dup := seen[key]; dup {
			problems = append(problems, fmt.Sprintf("%s: duplicate of row %d", where, prev))
		} else {
			seen[key] = i
		}
	}

	fmt.Printf("Dataset %s: %d rows, %d unique keys\n", ds.Version, len(ds.Factors), len(seen))

	if len(problems) > 0 {
		fmt.Printf("\n%d problem(s):\n", len(problems))
		for _, p := range problems {
			fmt.Printf("  - %s\n", p)
		}
		os.Exit(1)
	}
	fmt.Println("OK")
}
