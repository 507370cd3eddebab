// Package cmd provides the CLI commands for material-quantity.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"material-quantity/internal/config"
	"material-quantity/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "material-quantity",
	Short: "Resolve raw measurements into purchasable material quantities",
	Long: `material-quantity converts AI-detected or user-entered raw measurements
(area, linear footage, item counts) into physically correct, purchasable
material quantities (gallons, boxes, sheets, bags, bundles, pieces).

Resolution applies coverage-rate physics and waste buffers, and fails
explicitly when the inputs are insufficient to resolve safely - the
engine never invents a coverage constant.

Examples:
  material-quantity resolve schedule.ms.hcl
  material-quantity resolve --format json --waste 15 schedule.ms.hcl
  material-quantity coverage
  material-quantity classify "Interior Wall Paint"`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.material-quantity.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(coverageCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Initialize logging
	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("material-quantity version 0.1.0")
	},
}
