/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: generate.go
Description: Generate command implementation for Genrex. Builds a generation engine
from the pattern argument and configuration, produces the requested number of
strings, and reports statistics when verbose diagnostics are enabled.
*/

package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/kleascm/genrex/pkg/generator"
	"github.com/kleascm/genrex/pkg/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunGenerate executes the main generation flow: one validated string per
// line on stdout.
func RunGenerate(cmd *cobra.Command, args []string) error {
	pattern := args[0]

	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Setup logging
	if err := SetupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer logger.Close()

	// Assemble the builder from flags and config
	builder := generator.NewBuilder(pattern).
		MinLen(viper.GetInt("min_len")).
		MaxLen(viper.GetInt("max_len")).
		MaxAttempts(viper.GetInt("max_attempts")).
		Timeout(viper.GetDuration("timeout")).
		Multiline(viper.GetBool("multiline")).
		Verbose(viper.GetBool("verbose")).
		Logger(logger.GetLogger())

	if viper.GetBool("allow_backrefs") {
		builder.AllowBackrefs()
	}
	if cmd.Flags().Changed("seed") {
		builder.Seed(viper.GetInt64("seed"))
	}

	engine, err := builder.Build()
	if err != nil {
		return fmt.Errorf("failed to build generator: %w", err)
	}

	buildFields := map[string]interface{}{}
	if viper.GetBool("verbose") {
		buildFields["tree"] = engine.Describe()
	}
	logger.LogBuild(engine.ID(), pattern, engine.GroupCount(), buildFields)

	count := viper.GetInt("count")
	for i := 0; i < count; i++ {
		s, err := engine.GenerateOne()
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}
		fmt.Println(s)
	}

	if viper.GetBool("verbose") {
		stats := engine.Stats()
		logger.LogStats(stats.SessionID, stats.Attempts, stats.LengthRejections, stats.ValidatorRejections, stats.Generated)
		color.New(color.FgCyan).Fprintf(cmd.ErrOrStderr(), "generated %d string(s) in %d attempt(s) via %s tactic\n",
			stats.Generated, stats.Attempts, stats.LastTactic)
	}

	if dir := viper.GetString("stats_dir"); dir != "" {
		path, err := utils.WriteStatsSnapshot(dir, pattern, engine.Stats())
		if err != nil {
			return fmt.Errorf("failed to write stats snapshot: %w", err)
		}
		logger.Info("Stats snapshot written", map[string]interface{}{"path": path})
	}

	return nil
}
