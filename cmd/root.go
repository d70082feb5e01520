package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sqlcheck",
	Short: "A static analyzer for SQL anti-patterns",
	Long: `sqlcheck analyzes SQL schema definitions and queries for well-known
anti-patterns (SELECT *, missing primary or foreign keys, generic
surrogate keys, multi-valued attributes, recursive self-references)
and reports human-readable diagnostics with severity levels and
explanatory rationale.

Detection is heuristic, based on pattern matching over statement text;
no SQL parsing or database connection is involved.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.sqlcheck.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "print the full rationale for every finding")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug output")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".sqlcheck" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".sqlcheck")
	}

	viper.SetEnvPrefix("SQLCHECK")
	viper.AutomaticEnv() // read in environment variables that match

	// A missing config file is fine; flags and defaults apply.
	_ = viper.ReadInConfig()
}
