// Package cmd - resolve command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"material-quantity/adapters/schedule"
	"material-quantity/core/resolver"
	"material-quantity/internal/config"
	"material-quantity/internal/logging"

	"go.uber.org/zap"
)

var (
	outputFormat  string
	wasteOverride float64
	areaOverride  float64
	showTraces    bool
)

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve [schedule file]",
	Short: "Resolve a material schedule into purchase quantities",
	Long: `Parse a material schedule file and resolve every line item into a
purchasable quantity.

Items the engine cannot resolve safely (unknown category, no coverage
rate) are listed separately for manual entry; a partial failure never
aborts the batch.

Examples:
  material-quantity resolve schedule.ms.hcl
  material-quantity resolve --format json schedule.ms.hcl
  material-quantity resolve --waste 15 schedule.ms.hcl`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
	resolveCmd.Flags().Float64VarP(&wasteOverride, "waste", "w", -1, "waste percent override")
	resolveCmd.Flags().Float64VarP(&areaOverride, "area", "a", -1, "base area override (sq ft)")
	resolveCmd.Flags().BoolVarP(&showTraces, "traces", "t", false, "show calculation traces")
}

func runResolve(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("schedule file does not exist: %s", path)
	}

	cfg := config.Get()

	sched, err := schedule.ParseFile(path)
	if err != nil {
		return err
	}
	logging.Info("schedule parsed",
		zap.String("project", sched.Name),
		zap.Int("materials", len(sched.Items)))

	baseArea := sched.BaseArea
	if areaOverride >= 0 {
		baseArea = areaOverride
	}

	waste := cfg.Resolver.DefaultWastePercent
	if sched.WastePercent != nil {
		waste = *sched.WastePercent
	}
	if wasteOverride >= 0 {
		waste = wasteOverride
	}

	result := resolver.ResolveBatch(sched.Items, baseArea, waste)

	format := cfg.Output.DefaultFormat
	if outputFormat != "" {
		format = outputFormat
	}

	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printResult(sched.Name, result, showTraces || cfg.Output.ShowTraces)
	return nil
}

func printResult(project string, result resolver.BatchResult, traces bool) {
	if project != "" {
		fmt.Printf("Project: %s\n\n", project)
	}

	if len(result.Resolved) > 0 {
		fmt.Println("Resolved materials:")
		for _, item := range result.Resolved {
			fmt.Printf("  %-36s %6.0f %-10s [%s, %s]\n",
				item.Name, item.Quantity, item.Unit, item.Method, item.Confidence)
			if traces {
				fmt.Printf("      %s\n", item.ResolutionTrace)
			}
		}
	}

	if len(result.Failed) > 0 {
		fmt.Println("\nNeeds manual entry:")
		for _, item := range result.Failed {
			fmt.Printf("  %-36s %s\n", item.Name, item.ResolutionTrace)
		}
	}

	fmt.Printf("\n%s\n", result.Summary)
}
