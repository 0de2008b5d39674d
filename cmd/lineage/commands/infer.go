/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: infer.go
Description: Infer command implementation for the Lineage CLI. Loads a
population CSV, runs the exact inference engine, prints per-member posterior
distributions, and optionally persists a JSON result artifact.
*/

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/lineage/pkg/engine"
	"github.com/kleascm/lineage/pkg/interfaces"
	"github.com/kleascm/lineage/pkg/logging"
	"github.com/kleascm/lineage/pkg/model"
	"github.com/kleascm/lineage/pkg/population"
	"github.com/kleascm/lineage/pkg/utils"
)

// newModel builds the inheritance model with the configured mutation rate.
// Zero is a valid rate (no mutation) and is applied as given; only rates
// outside [0, 1] are rejected.
func newModel(mutationRate float64) (*model.GeneticModel, error) {
	if mutationRate < 0 || mutationRate > 1 {
		return nil, fmt.Errorf("mutation rate %v outside [0, 1]", mutationRate)
	}
	m := model.DefaultModel()
	m.MutationRate = mutationRate
	return m, nil
}

// RunInfer executes an exact inference run over a population file
func RunInfer(cmd *cobra.Command, args []string) error {
	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Setup logging
	if err := SetupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	logger, err := logging.NewLogger(&logging.LoggerConfig{
		Level:     logging.LogLevel(viper.GetString("log_level")),
		Format:    logging.LogFormat(viper.GetString("log_format")),
		OutputDir: viper.GetString("log_dir"),
		MaxFiles:  10,
		Timestamp: true,
		Colors:    !viper.GetBool("json_logs"),
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	// Load population
	pop, err := population.LoadCSV(viper.GetString("data_file"))
	if err != nil {
		return fmt.Errorf("failed to load population: %w", err)
	}
	evidence := pop.Evidence()

	// Build model
	m, err := newModel(viper.GetFloat64("mutation_rate"))
	if err != nil {
		return err
	}

	// Create and initialize engine
	eng := engine.NewEngine()
	eng.SetModel(m)

	config := &interfaces.EngineConfig{
		Workers:    viper.GetInt("workers"),
		MaxMembers: viper.GetInt("max_members"),
		LogLevel:   viper.GetString("log_level"),
		JSONLogs:   viper.GetBool("json_logs"),
	}
	if err := eng.Initialize(config); err != nil {
		return fmt.Errorf("failed to initialize engine: %w", err)
	}

	logger.LogRunStarted("", pop.Size(), len(evidence), nil)

	marginals, err := eng.Infer(pop, evidence)
	if err != nil {
		return fmt.Errorf("inference failed: %w", err)
	}

	stats := eng.GetStats()
	logger.LogRunCompleted(marginals.RunID, stats.LastEvaluated, stats.LastDuration, map[string]interface{}{
		"workers": stats.LastWorkers,
	})

	printMarginals(pop, marginals)

	// Persist result artifact if requested
	if outputDir := viper.GetString("output_dir"); outputDir != "" {
		path, err := utils.WriteResult(outputDir, marginals.RunID, marginals)
		if err != nil {
			return fmt.Errorf("failed to write result artifact: %w", err)
		}
		fmt.Printf("\nResult written to %s\n", path)
	}

	return nil
}

// printMarginals prints each member's posterior distributions in population
// order, gene copy counts descending.
func printMarginals(pop *population.Population, marginals *interfaces.Marginals) {
	for _, id := range pop.IDs() {
		mm := marginals.Members[id]
		fmt.Printf("%s:\n", id)
		fmt.Printf("  Gene:\n")
		for v := len(mm.Hidden) - 1; v >= 0; v-- {
			fmt.Printf("    %d: %.4f\n", v, mm.Hidden[v])
		}
		fmt.Printf("  Trait:\n")
		fmt.Printf("    True: %.4f\n", mm.Observed.True)
		fmt.Printf("    False: %.4f\n", mm.Observed.False)
	}
}
