// Package main provides the CLI entry point for dashfeed-go.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pmdash/dashfeed-go/pkg/dashfeed"
)

const defaultWorkbook = "source/project_dashboard.xlsx"

var (
	risksOut   string
	tqsOut     string
	configPath string
	timezone   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dashfeed [workbook.xlsx]",
		Short: "Refresh dashboard JSON from the project-tracking workbook",
		Long: `dashfeed-go reads the risk register and technical-query log from the
project workbook and rewrites the JSON documents the dashboard serves.`,
		Args: cobra.MaximumNArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVar(&risksOut, "risks-out", "data/risks.json", "Output path for the risks dataset")
	rootCmd.Flags().StringVar(&tqsOut, "tqs-out", "data/tqs.json", "Output path for the TQs dataset")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML dataset config (replaces the output flags)")
	rootCmd.Flags().StringVar(&timezone, "timezone", dashfeed.DefaultTimezone, "IANA timezone for the lastUpdated stamp")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	workbook := defaultWorkbook
	if len(args) == 1 {
		workbook = args[0]
	}

	specs := []dashfeed.DatasetSpec{
		dashfeed.RisksSpec(risksOut),
		dashfeed.TqsSpec(tqsOut),
	}
	opts := dashfeed.DefaultOptions()
	opts.Timezone = timezone

	if configPath != "" {
		loaded, tz, err := dashfeed.LoadSpecs(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		specs = loaded
		// An explicit --timezone still wins over the config file.
		if tz != "" && !cmd.Flags().Changed("timezone") {
			opts.Timezone = tz
		}
	}

	results, err := dashfeed.Run(workbook, specs, opts)
	if err != nil {
		return err
	}

	for _, r := range results {
		fmt.Printf("Wrote %s with %d items from sheet '%s'\n", r.OutputPath, r.ItemCount, r.SheetName)
	}
	return nil
}
