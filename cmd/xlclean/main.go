// Package main provides the CLI entry point for xlclean.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avrohomthousman-p/ExcelCleanup-sub000/pkg/xlclean"
	"github.com/avrohomthousman-p/ExcelCleanup-sub000/pkg/xlclean/bounds"
	"github.com/avrohomthousman-p/ExcelCleanup-sub000/pkg/xlclean/logging"
	"github.com/avrohomthousman-p/ExcelCleanup-sub000/pkg/xlclean/output"
)

var (
	outputPath string
	reportType string
	configPath string
	strategy   string
	reportPath string
	pretty     bool
	summary    bool
	verbose    bool
	noFallback bool
	splitLines bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "xlclean [input.xlsx]",
		Short: "Unmerge and tidy report worksheets",
		Long: `xlclean finds the data table on every sheet of a workbook, dissolves
merged cells while keeping their look, resizes columns and removes the
columns the merges left empty.`,
		Args:         cobra.ExactArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output workbook path (default: overwrite input)")
	rootCmd.Flags().StringVar(&reportType, "report-type", "", "Report type used to pick strategies from the config")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.Flags().StringVar(&strategy, "strategy", "", "Bounds strategy: density or marker")
	rootCmd.Flags().StringVar(&reportPath, "report", "", "Write a JSON report of the run to this path (- for stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print the JSON report")
	rootCmd.Flags().BoolVar(&summary, "summary", false, "Print a per-sheet summary table")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every region and column")
	rootCmd.Flags().BoolVar(&noFallback, "no-fallback", false, "Do not retry with the alternate strategy")
	rootCmd.Flags().BoolVar(&splitLines, "split-header-lines", false, "Spread multi-line main headers over several rows")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	opts, err := buildOptions()
	if err != nil {
		return err
	}

	wb, err := xlclean.CleanFile(inputPath, outputPath, opts)
	if err != nil {
		return fmt.Errorf("cleaning failed: %w", err)
	}

	if reportPath != "" {
		jsonData, err := output.ToJSON(wb, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		if reportPath == "-" {
			fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
		} else if err := os.WriteFile(reportPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	if summary {
		output.WriteSummary(cmd.OutOrStdout(), wb)
	}
	return nil
}

func buildOptions() (xlclean.Options, error) {
	opts := xlclean.DefaultOptions()
	opts.ReportType = reportType
	opts.SplitHeaderLines = splitLines
	opts.Logger = logging.New(os.Stderr, verbose)

	if configPath != "" {
		cfg, err := xlclean.LoadConfig(configPath)
		if err != nil {
			return opts, err
		}
		if err := cfg.Apply(&opts); err != nil {
			return opts, fmt.Errorf("config %s: %w", configPath, err)
		}
	}

	// Flags win over the config file.
	if strategy != "" {
		kind, err := bounds.ParseKind(strategy)
		if err != nil {
			return opts, err
		}
		opts.Strategy = kind
		opts.Factory = nil
	}
	if noFallback {
		fallback := false
		opts.Fallback = &fallback
	}
	return opts, nil
}
