/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for the Akaylee CSV Lint commands. Provides common
configuration loading and logging setup used across all command implementations.
*/

package commands

import (
	"fmt"

	"github.com/kleascm/akaylee-csvlint/pkg/logging"
	"github.com/spf13/viper"
)

// LoadConfig loads configuration from files and environment
func LoadConfig() error {
	// Set config file if specified
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("CSVLINT")
	viper.AutomaticEnv()

	return nil
}

// SetupLogging builds the logger from viper configuration. Console output is
// suppressed in hook mode so the report is the only thing on stderr.
func SetupLogging(console bool) (*logging.Logger, error) {
	format := logging.LogFormat(viper.GetString("log_format"))
	if viper.GetBool("json_logs") {
		format = logging.LogFormatJSON
	}

	config := &logging.LoggerConfig{
		Level:     logging.LogLevel(viper.GetString("log_level")),
		Format:    format,
		OutputDir: viper.GetString("log_dir"),
		MaxFiles:  viper.GetInt("log_max_files"),
		Console:   console,
		Timestamp: true,
		Colors:    console,
	}

	logger, err := logging.NewLogger(config)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logging: %w", err)
	}
	return logger, nil
}
