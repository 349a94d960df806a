package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/carbonclear/emissions-engine/internal/factors"
)

func newFactorsCmd() *cobra.Command {
	var (
		scope  int
		format string
	)

	cmd := &cobra.Command{
		Use:   "factors",
		Short: "List the embedded emission factor dataset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger()

			registry, err := factors.NewDefaultRegistry(logger)
			if err != nil {
				return fmt.Errorf("loading factor registry: %w", err)
			}

			grouped := registry.ListByScope()

			scopes := make([]factors.Scope, 0, len(grouped))
			for s := range grouped {
				if scope != 0 && int(s) != scope {
					continue
				}
				scopes = append(scopes, s)
			}
			sort.Slice(scopes, func(i, j int) bool { return scopes[i] < scopes[j] })

			if format == "json" {
				filtered := make(map[factors.Scope]map[factors.Category]map[string][]factors.EmissionFactor, len(scopes))
				for _, s := range scopes {
					filtered[s] = grouped[s]
				}
				return printJSON(cmd, filtered)
			}

			for _, s := range scopes {
				cmd.Printf("%s\n", s)
				byCategory := grouped[s]

				categories := make([]factors.Category, 0, len(byCategory))
				for c := range byCategory {
					categories = append(categories, c)
				}
				sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })

				for _, c := range categories {
					cmd.Printf("  %s\n", c)
					bySub := byCategory[c]

					subs := make([]string, 0, len(bySub))
					for sub := range bySub {
						subs = append(subs, sub)
					}
					sort.Strings(subs)

					for _, sub := range subs {
						for _, f := range bySub[sub] {
							cmd.Printf("    %-28s %10.4f kg CO2e/%-12s %-8s %s %d\n",
								sub, f.Factor, f.Unit, f.Region, f.Source, f.Year)
						}
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&scope, "scope", "s", 0, "limit to one GHG scope (1, 2, or 3; 0 for all)")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format: table or json")

	return cmd
}
