/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for the Genrex commands. Provides common configuration
loading, logging setup, and the usage-error sentinel used for exit-code handling.
*/

package commands

import (
	"errors"
	"fmt"

	"github.com/kleascm/genrex/pkg/logging"
	"github.com/spf13/viper"
)

// ErrUsage marks missing or invalid command-line arguments. The CLI exits
// with status 2 when an error wraps it, and 1 for every other failure.
var ErrUsage = errors.New("invalid usage")

// Global logger instance shared by the commands
var logger *logging.Logger

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
	viper.SetEnvPrefix("GENREX")
	viper.AutomaticEnv()

	return nil
}

// SetupLogging configures the logging system
func SetupLogging() error {
	config := &logging.LoggerConfig{
		Level:     logging.LogLevel(viper.GetString("log_level")),
		Format:    logging.LogFormat(viper.GetString("log_format")),
		OutputDir: viper.GetString("log_dir"),
		MaxFiles:  viper.GetInt("log_max_files"),
		MaxSize:   viper.GetInt64("log_max_size"),
		Timestamp: true,
		Caller:    false,
		Colors:    true,
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid logging configuration: %w", err)
	}

	l, err := logging.NewLogger(config)
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	logger = l

	// Apply the retention policy to logs from previous runs
	manager := logging.NewLogManager(config.OutputDir, config.MaxFiles, config.MaxSize, config.Compress)
	if err := manager.CleanupOldLogs(); err != nil {
		logger.Warning("Failed to clean up old log files", map[string]interface{}{"error": err.Error()})
	}

	return nil
}
