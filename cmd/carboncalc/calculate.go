package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/carbonclear/emissions-engine/internal/assess"
	"github.com/carbonclear/emissions-engine/internal/calc"
	"github.com/carbonclear/emissions-engine/internal/factors"
)

// activityRecord is the flat on-disk form of one activity input. The scope
// field selects which calculator handles the record; the remaining fields are
// interpreted per scope.
type activityRecord struct {
	Scope          int     `json:"scope" yaml:"scope"`
	SourceCategory string  `json:"source_category,omitempty" yaml:"source_category,omitempty"`
	FuelType       string  `json:"fuel_type,omitempty" yaml:"fuel_type,omitempty"`
	EnergyType     string  `json:"energy_type,omitempty" yaml:"energy_type,omitempty"`
	GridRegion     string  `json:"grid_region,omitempty" yaml:"grid_region,omitempty"`
	Method         string  `json:"method,omitempty" yaml:"method,omitempty"`
	CategoryNumber int     `json:"category_number,omitempty" yaml:"category_number,omitempty"`
	ActivityType   string  `json:"activity_type,omitempty" yaml:"activity_type,omitempty"`
	ActivityData   float64 `json:"activity_data" yaml:"activity_data"`
	ActivityUnit   string  `json:"activity_unit" yaml:"activity_unit"`
	Estimated      bool    `json:"estimated,omitempty" yaml:"estimated,omitempty"`
}

// activityFile is a batch of activity records for one reporting period.
type activityFile struct {
	Region     string           `json:"region,omitempty" yaml:"region,omitempty"`
	Activities []activityRecord `json:"activities" yaml:"activities"`
}

// recordFailure captures one failed record when running without --strict.
type recordFailure struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

// calculateOutput is the JSON output shape of the calculate command.
type calculateOutput struct {
	Summary  assess.AssessmentSummary `json:"summary"`
	Results  []calc.EmissionResult    `json:"results"`
	Failures []recordFailure          `json:"failures,omitempty"`
}

func newCalculateCmd() *cobra.Command {
	var (
		inputPath string
		region    string
		format    string
		strict    bool
	)

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Compute emissions for a batch of activity records",
		Long: "Reads activity records from a YAML or JSON file, computes per-record emissions, " +
			"and prints an aggregated assessment. Failed records are skipped and reported " +
			"unless --strict is set.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger()

			batch, err := loadActivityFile(inputPath)
			if err != nil {
				return err
			}

			effectiveRegion := firstNonEmpty(region, batch.Region, envDefaultRegion())

			registry, err := factors.NewDefaultRegistry(logger)
			if err != nil {
				return fmt.Errorf("loading factor registry: %w", err)
			}
			calculator := calc.New(registry, logger)

			var (
				results  []calc.EmissionResult
				failures []recordFailure
			)
			for i, rec := range batch.Activities {
				result, err := dispatch(calculator, rec, effectiveRegion)
				if err != nil {
					if strict {
						return fmt.Errorf("record %d: %w", i, err)
					}
					logger.Warn().Int("record", i).Err(err).Msg("skipping failed record")
					failures = append(failures, recordFailure{Index: i, Error: err.Error()})
					continue
				}
				results = append(results, result)
			}

			summary := assess.Aggregate(results)

			out := calculateOutput{
				Summary:  summary.Rounded(),
				Results:  results,
				Failures: failures,
			}

			switch format {
			case "json":
				return printJSON(cmd, out)
			case "table":
				printSummaryTable(cmd, out)
				return nil
			default:
				return fmt.Errorf("unknown format %q (want json or table)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "activity file (YAML or JSON)")
	cmd.Flags().StringVarP(&region, "region", "r", "", "region for factor resolution (default from file or US)")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format: table or json")
	cmd.Flags().BoolVar(&strict, "strict", false, "abort the batch on the first failed record")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// loadActivityFile reads and decodes an activity batch, selecting the decoder
// by file extension.
func loadActivityFile(path string) (*activityFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var batch activityFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &batch); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &batch); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported input format %q (want .yaml, .yml, or .json)", filepath.Ext(path))
	}

	if len(batch.Activities) == 0 {
		return nil, fmt.Errorf("%s contains no activity records", path)
	}
	return &batch, nil
}

// dispatch routes one record to the calculator for its scope.
func dispatch(calculator *calc.Calculator, rec activityRecord, region string) (calc.EmissionResult, error) {
	switch rec.Scope {
	case 1:
		return calculator.CalculateScope1(calc.Scope1Input{
			SourceCategory: calc.SourceCategory(rec.SourceCategory),
			FuelType:       rec.FuelType,
			ActivityData:   rec.ActivityData,
			ActivityUnit:   rec.ActivityUnit,
			Estimated:      rec.Estimated,
		}, region)
	case 2:
		return calculator.CalculateScope2(calc.Scope2Input{
			EnergyType:   rec.EnergyType,
			ActivityData: rec.ActivityData,
			ActivityUnit: rec.ActivityUnit,
			GridRegion:   rec.GridRegion,
			Method:       calc.Scope2Method(rec.Method),
			Estimated:    rec.Estimated,
		}, region)
	case 3:
		return calculator.CalculateScope3(calc.Scope3Input{
			CategoryNumber: rec.CategoryNumber,
			ActivityType:   rec.ActivityType,
			ActivityData:   rec.ActivityData,
			ActivityUnit:   rec.ActivityUnit,
			Estimated:      rec.Estimated,
		}, region)
	default:
		return calc.EmissionResult{}, fmt.Errorf("scope must be 1, 2, or 3, got %d", rec.Scope)
	}
}

// printJSON writes indented JSON to the command's stdout.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// printSummaryTable writes a human-readable summary.
func printSummaryTable(cmd *cobra.Command, out calculateOutput) {
	s := out.Summary
	cmd.Printf("Assessment %s\n\n", s.ID)
	cmd.Printf("  Scope 1:  %10.2f tCO2e  (%d%%)\n", s.Scope1Total, s.EmissionsByScope.Scope1Pct)
	cmd.Printf("  Scope 2:  %10.2f tCO2e  (%d%%)\n", s.Scope2Total, s.EmissionsByScope.Scope2Pct)
	cmd.Printf("  Scope 3:  %10.2f tCO2e  (%d%%)\n", s.Scope3Total, s.EmissionsByScope.Scope3Pct)
	cmd.Printf("  Total:    %10.2f tCO2e\n", s.TotalEmissions)
	cmd.Printf("  Average confidence: %.1f\n", s.AverageConfidence)

	if len(s.Insights) > 0 {
		cmd.Println("\nInsights:")
		for _, ins := range s.Insights {
			cmd.Printf("  [%s] %s: %s\n", ins.Priority, ins.Title, ins.Description)
		}
	}
	if len(s.Recommendations) > 0 {
		cmd.Println("\nRecommendations:")
		for _, rec := range s.Recommendations {
			cmd.Printf("  [%s] %s (%s, est. %.0f-%.0f%% reduction): %s\n",
				rec.Priority, rec.Action, rec.Scope, rec.PotentialReductionMinPct, rec.PotentialReductionMaxPct, rec.Description)
		}
	}
	if len(out.Failures) > 0 {
		cmd.Println("\nFailed records:")
		for _, f := range out.Failures {
			cmd.Printf("  record %d: %s\n", f.Index, f.Error)
		}
	}
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
