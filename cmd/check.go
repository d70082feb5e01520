package cmd

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/nsxbet/sqlcheck/pkg/checker"
	"github.com/nsxbet/sqlcheck/pkg/config"
	"github.com/nsxbet/sqlcheck/pkg/logger"
	"github.com/nsxbet/sqlcheck/pkg/reporter"
	"github.com/nsxbet/sqlcheck/pkg/types"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <sql-file>",
	Short: "Check SQL statements for anti-patterns",
	Long: `Check the SQL statements in a file against the anti-pattern rules.

The file is split into individual statements and every enabled rule is
evaluated against each one. Pass '-' to read from standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	// Flags for check command
	checkCmd.Flags().StringP("rules", "r", "", "path to rules configuration file")
	checkCmd.Flags().StringP("output", "o", "text", "output format (text, json, yaml)")
	checkCmd.Flags().String("min-level", "", "minimum severity to report (warning, error)")
	checkCmd.Flags().Bool("no-color", false, "disable colored output")
	checkCmd.Flags().Bool("fail-on-error", false, "exit with non-zero code if errors are found")
	checkCmd.Flags().Bool("fail-on-warning", false, "exit with non-zero code if warnings are found")

	// Bind flags to viper
	_ = viper.BindPFlag("rules", checkCmd.Flags().Lookup("rules"))
	_ = viper.BindPFlag("output", checkCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("min-level", checkCmd.Flags().Lookup("min-level"))
	_ = viper.BindPFlag("no-color", checkCmd.Flags().Lookup("no-color"))
	_ = viper.BindPFlag("fail-on-error", checkCmd.Flags().Lookup("fail-on-error"))
	_ = viper.BindPFlag("fail-on-warning", checkCmd.Flags().Lookup("fail-on-warning"))
}

func runCheck(_ *cobra.Command, args []string) error {
	// Initialize logger
	logLevel := slog.LevelWarn
	if viper.GetBool("debug") {
		logLevel = slog.LevelDebug
	} else if viper.GetBool("verbose") {
		logLevel = slog.LevelInfo
	}
	slog.SetDefault(logger.NewWithLevel(logLevel).GetSlogLogger())

	if viper.GetBool("no-color") {
		color.NoColor = true
	}

	// Read SQL input
	sqlFile := args[0]
	sqlContent, err := readInput(sqlFile)
	if err != nil {
		return errors.Wrapf(err, "failed to read SQL input: %s", sqlFile)
	}
	slog.Debug("read SQL input", "file", sqlFile, "size", len(sqlContent))

	// Load configuration
	cfg, err := loadConfiguration()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		return err
	}

	// Run the check
	c := checker.New().WithConfigObject(cfg)
	result, err := c.Check(context.Background(), string(sqlContent), checker.WithFilename(sqlFile))
	if err != nil {
		return err
	}

	// Output results
	if err := outputResults(result, viper.GetString("output")); err != nil {
		return err
	}

	// Check exit codes
	if result.HasErrors() && viper.GetBool("fail-on-error") {
		os.Exit(1)
	}
	if result.HasWarnings() && viper.GetBool("fail-on-warning") {
		os.Exit(1)
	}

	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func loadConfiguration() (*config.Config, error) {
	var cfg *config.Config
	if rulesPath := viper.GetString("rules"); rulesPath != "" {
		loaded, err := config.LoadFromFile(rulesPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = config.DefaultConfig()
	}

	cfg.Verbose = viper.GetBool("verbose")

	switch viper.GetString("min-level") {
	case "":
		// Keep what the config file or default set.
	case "warning", "WARNING":
		cfg.MinLevel = types.RuleLevel_WARNING
	case "error", "ERROR":
		cfg.MinLevel = types.RuleLevel_ERROR
	default:
		return nil, errors.Errorf("unsupported min-level: %s", viper.GetString("min-level"))
	}

	return cfg, nil
}

func outputResults(result *checker.Result, format string) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(map[string]interface{}{
			"advices": result.Advices,
			"summary": result.Summary,
		})
	case "yaml":
		encoder := yaml.NewEncoder(os.Stdout)
		defer encoder.Close()
		return encoder.Encode(map[string]interface{}{
			"advices": result.Advices,
			"summary": result.Summary,
		})
	case "text":
		console := reporter.NewConsole(viper.GetBool("verbose"))
		return console.Report(result.Advices)
	default:
		return errors.Errorf("unsupported output format: %s", format)
	}
}
