/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Main command-line interface for Akaylee CSV Lint. Provides the validate
command for direct file checking and the hook command for editor/agent integration,
with configuration management and logging control.
*/

package main

import (
	"fmt"
	"os"

	"github.com/kleascm/akaylee-csvlint/cmd/csvlint/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Configuration
	configFile string
	logLevel   string
	jsonLogs   bool

	// Logging configuration
	logDir      string
	logFormat   string
	logMaxFiles int

	// Validate configuration
	verbose    bool
	jsonOutput bool
	strict     bool
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "csvlint",
		Short: "Akaylee CSV Lint - Deep validation for CSV and TSV files",
		Long: `Akaylee CSV Lint is a thorough validation engine for CSV and TSV files.
It detects text encodings (including UTF-16/UTF-32 and BOM variants), auto-detects
the delimiter dialect, and checks structure and content: headers, column counts,
data types, quoting problems, missing values, special characters and more.`,
		Version: "1.0.0",
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Use JSON log format")

	// Add logging-specific flags
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Log output directory (empty = no log files)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "custom", "Log format (text, json, custom)")
	rootCmd.PersistentFlags().IntVar(&logMaxFiles, "log-max-files", 10, "Maximum number of log files to keep")

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("json_logs", rootCmd.PersistentFlags().Lookup("json-logs"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_max_files", rootCmd.PersistentFlags().Lookup("log-max-files"))

	// Add validate command
	validateCmd := &cobra.Command{
		Use:   "validate [files...]",
		Short: "Validate one or more CSV/TSV files",
		Long: `Validate CSV/TSV files and print a full report for each. The report lists
errors and warnings with line/column locations plus file statistics (row count,
columns, encoding, delimiter). Exits with code 1 if any file has errors.`,
		Args: cobra.MinimumNArgs(1),
		RunE: commands.RunValidate,
	}

	// Add validate command flags
	validateCmd.Flags().BoolVar(&verbose, "verbose", false, "Show full report even for clean files")
	validateCmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the report as JSON instead of text")
	validateCmd.Flags().BoolVar(&strict, "strict", false, "Treat warnings as failures")

	viper.BindPFlag("verbose", validateCmd.Flags().Lookup("verbose"))
	viper.BindPFlag("json_output", validateCmd.Flags().Lookup("json"))
	viper.BindPFlag("strict", validateCmd.Flags().Lookup("strict"))

	rootCmd.AddCommand(validateCmd)

	// Add hook command for editor/agent integration
	rootCmd.AddCommand(&cobra.Command{
		Use:   "hook",
		Short: "Run as a PostToolUse hook reading a JSON envelope from stdin",
		Long: `Run in hook mode. Reads a single JSON object from stdin describing a tool
invocation (tool_name plus tool_input.file_path), validates the file if it is a
CSV/TSV touched by Read, Write or Edit, and writes the report to stderr. Exits
with code 1 only when a write-style operation produced validation errors; all
other cases exit 0 so unrelated tool use is never blocked.`,
		RunE: commands.RunHook,
	})

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
