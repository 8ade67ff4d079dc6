/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Command-line interface for Genrex. Provides the pattern argument,
generation flags, configuration management, and logging options for producing
random strings that match a regex pattern.
*/

package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kleascm/genrex/cmd/genrex/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Configuration
	configFile string

	// Generation configuration
	count         int
	seed          int64
	minLen        int
	maxLen        int
	maxAttempts   int
	timeout       time.Duration
	multiline     bool
	allowBackrefs bool
	verbose       bool
	statsDir      string

	// Logging configuration
	logLevel    string
	logFormat   string
	logDir      string
	logMaxFiles int
	logMaxSize  int64
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "genrex <pattern>",
		Short: "Genrex - Random string generation from regex patterns",
		Long: `Genrex turns a regex pattern into a generator that samples strings matching
the pattern. Candidates are produced by walking the tokenized pattern tree and
every result is validated against an independent matching engine before it is
returned. Supports literals, character classes, anchors, groups, alternation,
bounded and unbounded repetition, and backreferences.`,
		Version:       "1.0.0",
		Args:          validatePatternArg,
		RunE:          commands.RunGenerate,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "custom", "Log format (text, json, custom)")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "./logs", "Log output directory")
	rootCmd.PersistentFlags().IntVar(&logMaxFiles, "log-max-files", 10, "Maximum number of log files to keep")
	rootCmd.PersistentFlags().Int64Var(&logMaxSize, "log-max-size", 100*1024*1024, "Maximum log file size in bytes")

	// Add generation flags
	rootCmd.Flags().IntVarP(&count, "count", "n", 1, "Number of strings to generate")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "Seed for deterministic generation")
	rootCmd.Flags().IntVar(&minLen, "min-len", 0, "Minimum candidate length (inclusive)")
	rootCmd.Flags().IntVar(&maxLen, "max-len", 64, "Maximum candidate length (inclusive)")
	rootCmd.Flags().IntVar(&maxAttempts, "attempts", 10000, "Maximum generation attempts")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 0, "Wall-clock budget for generation (0 disables)")
	rootCmd.Flags().BoolVar(&multiline, "multiline", false, "Enable multiline mode")
	rootCmd.Flags().BoolVar(&allowBackrefs, "allow-backrefs", false, "Tolerate patterns the validator cannot compile (e.g. backreferences)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every rejected candidate with its reason")
	rootCmd.Flags().StringVar(&statsDir, "stats-dir", "", "Write a JSON statistics snapshot into this directory after generation")

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("log_max_files", rootCmd.PersistentFlags().Lookup("log-max-files"))
	viper.BindPFlag("log_max_size", rootCmd.PersistentFlags().Lookup("log-max-size"))
	viper.BindPFlag("count", rootCmd.Flags().Lookup("count"))
	viper.BindPFlag("seed", rootCmd.Flags().Lookup("seed"))
	viper.BindPFlag("min_len", rootCmd.Flags().Lookup("min-len"))
	viper.BindPFlag("max_len", rootCmd.Flags().Lookup("max-len"))
	viper.BindPFlag("max_attempts", rootCmd.Flags().Lookup("attempts"))
	viper.BindPFlag("timeout", rootCmd.Flags().Lookup("timeout"))
	viper.BindPFlag("multiline", rootCmd.Flags().Lookup("multiline"))
	viper.BindPFlag("allow_backrefs", rootCmd.Flags().Lookup("allow-backrefs"))
	viper.BindPFlag("verbose", rootCmd.Flags().Lookup("verbose"))
	viper.BindPFlag("stats_dir", rootCmd.Flags().Lookup("stats-dir"))

	// Add subcommands
	rootCmd.AddCommand(&cobra.Command{
		Use:   "features",
		Short: "List supported pattern syntax and capability gaps",
		Run:   commands.ListFeatures,
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "selfcheck",
		Short: "Run built-in generation round-trips and report results",
		RunE:  commands.SelfCheck,
	})

	// Execute
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, commands.ErrUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// validatePatternArg enforces the single positional pattern argument.
func validatePatternArg(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: expected exactly one <pattern> argument, got %d", commands.ErrUsage, len(args))
	}
	return nil
}
