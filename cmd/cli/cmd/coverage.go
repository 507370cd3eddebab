// Package cmd - coverage and classify commands
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"material-quantity/core/classify"
	"material-quantity/core/coverage"
	"material-quantity/core/linear"
)

// coverageCmd dumps the coverage table for audit
var coverageCmd = &cobra.Command{
	Use:   "coverage",
	Short: "Print the coverage rate table",
	Long: `Print the static coverage constants the engine converts with.

These are physics curated from manufacturer specifications, not
configuration: the engine never invents a rate for a material missing
from this table.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%-18s %10s  %-11s %s\n", "KEY", "COVERS", "UNIT", "PER")
		for _, key := range coverage.Keys() {
			rate, _ := coverage.Lookup(key)
			fmt.Printf("%-18s %10s  %-11s %s\n", key, rate.Rate.String(), rate.InputUnit, rate.OutputUnit)
		}
	},
}

// classifyCmd shows how a material name classifies
var classifyCmd = &cobra.Command{
	Use:   "classify [material name]",
	Short: "Classify a material name",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]
		category := classify.InferCategory(name)
		fmt.Printf("category: %s\n", category)
		if linear.IsLinearMaterial(name) {
			fmt.Println("linear:   yes (area inputs take the linear estimation path)")
		}
		if key, ok := coverage.KeyFor(category, name); ok {
			if rate, found := coverage.Lookup(key); found {
				fmt.Printf("coverage: %s (%s %s per %s)\n", key, rate.Rate.String(), rate.InputUnit, rate.OutputUnit)
			}
		} else {
			fmt.Println("coverage: none - resolution would require manual entry")
		}
	},
}
