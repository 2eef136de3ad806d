// business-forecast generates calibrated 36-month business plans from a
// short project description.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/bizforge/business-forecast/internal/config"
	"github.com/bizforge/business-forecast/internal/engine"
	"github.com/bizforge/business-forecast/pkg/constants"
	"github.com/bizforge/business-forecast/pkg/output"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
)

var conf *config.Configuration

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "business-forecast",
	Short: "Calibrated 36-month business-plan forecasting",
	Long: `business-forecast turns a short project profile (sector, objective,
identifiers) into a full numeric business plan: calibrated assumptions,
36-month forecast, investment depreciation, loan amortization, annual P&L,
12-month cash ledger, break-even, and a funding recommendation.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configLocation, _ := cmd.Flags().GetString("config")
		var err error
		conf, err = config.LoadConfiguration(configLocation)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", constants.DefaultConfigFile, "path to configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	generateCmd.Flags().String("output-format", "", "output format override: pretty, csv, json")
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(versionCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the business plan for the configured project",
	RunE: func(cmd *cobra.Command, args []string) error {
		logLevel, _ := cmd.Flags().GetString("log-level")
		logger, err := initializeLogger(conf.Logging, logLevel)
		if err != nil {
			return err
		}
		defer func() {
			_ = logger.Sync()
		}()

		for _, warning := range conf.ValidateConfiguration() {
			logger.Warn("Configuration warning: "+warning,
				zap.String("op", "main"),
			)
		}

		plan := engine.Generate(logger, conf.EngineRequest())

		outputFormat := conf.Output.Format
		if flagFormat, _ := cmd.Flags().GetString("output-format"); flagFormat != "" {
			outputFormat = flagFormat
		}
		switch outputFormat {
		case "", constants.OutputFormatPretty:
			output.PrettyFormat(os.Stdout, plan)
		case constants.OutputFormatCSV:
			output.CsvFormat(os.Stdout, plan)
		case constants.OutputFormatJSON:
			return output.JSONFormat(os.Stdout, plan)
		default:
			return fmt.Errorf("invalid output format: %s", outputFormat)
		}
		return nil
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Generate conservative and aggressive variants side by side",
	Long: `compare runs the configured project twice, once with its stated
objective and once with a venture-style objective, and prints both plans.
The engine itself is synchronous; the two variants run concurrently here.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logLevel, _ := cmd.Flags().GetString("log-level")
		logger, err := initializeLogger(conf.Logging, logLevel)
		if err != nil {
			return err
		}
		defer func() {
			_ = logger.Sync()
		}()

		baseReq := conf.EngineRequest()
		aggressiveReq := baseReq
		aggressiveReq.Objective = "hyper croissance, levée venture"

		var basePlan, aggressivePlan *engine.BusinessPlan
		var g errgroup.Group
		g.Go(func() error {
			basePlan = engine.Generate(logger, baseReq)
			return nil
		})
		g.Go(func() error {
			aggressivePlan = engine.Generate(logger, aggressiveReq)
			return nil
		})
		if err := g.Wait(); err != nil {
			return err
		}

		fmt.Printf("=== Variant: %s ===\n", baseReq.Objective)
		output.PrettyFormat(os.Stdout, basePlan)
		fmt.Printf("\n=== Variant: %s ===\n", aggressiveReq.Objective)
		output.PrettyFormat(os.Stdout, aggressivePlan)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("business-forecast %s (%s)\n", version, commit)
	},
}

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}
