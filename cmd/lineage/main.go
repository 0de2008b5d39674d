/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Main command-line interface for the Lineage inference engine.
Provides command-line options, configuration management, and a clean user
interface for running exact pedigree inference with structured logging.
*/

package main

import (
	"fmt"
	"os"

	"github.com/kleascm/lineage/cmd/lineage/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Configuration
	configFile string
	logLevel   string
	jsonLogs   bool
	logDir     string
	logFormat  string

	// Input configuration
	dataFile  string
	outputDir string

	// Engine configuration
	workers    int
	maxMembers int

	// Model configuration
	mutationRate float64
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "lineage",
		Short: "Lineage - Exact Bayesian inference over two-parent pedigrees",
		Long: `Lineage is an exact inference engine for pedigree genetics. Given a population
connected by mother/father links and partial trait observations, it computes
the posterior probability distribution over each member's gene copy count and
trait by full enumeration of the joint configuration space.`,
		Version: "1.0.0",
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Use JSON log format")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "./logs", "Log output directory")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "custom", "Log format (text, json, custom)")

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("json_logs", rootCmd.PersistentFlags().Lookup("json-logs"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))

	// Add infer command
	inferCmd := &cobra.Command{
		Use:   "infer",
		Short: "Run exact inference on a population file",
		Long: `Run exact posterior inference on a population described by a CSV file with
the columns name, mother, father, trait. Prints each member's gene copy count
and trait distributions, and optionally writes a JSON result artifact.`,
		RunE: commands.RunInfer,
	}

	inferCmd.Flags().StringVar(&dataFile, "data", "", "Path to population CSV file (required)")
	inferCmd.Flags().StringVar(&outputDir, "output", "", "Directory for JSON result artifacts (disabled if empty)")
	inferCmd.Flags().IntVar(&workers, "workers", 0, "Number of parallel workers (0 = auto-detect)")
	inferCmd.Flags().IntVar(&maxMembers, "max-members", 0, "Maximum population size accepted (0 = default bound)")
	inferCmd.Flags().Float64Var(&mutationRate, "mutation-rate", 0.01, "Allele mutation probability")

	inferCmd.MarkFlagRequired("data")

	viper.BindPFlag("data_file", inferCmd.Flags().Lookup("data"))
	viper.BindPFlag("output_dir", inferCmd.Flags().Lookup("output"))
	viper.BindPFlag("workers", inferCmd.Flags().Lookup("workers"))
	viper.BindPFlag("max_members", inferCmd.Flags().Lookup("max-members"))
	viper.BindPFlag("mutation_rate", inferCmd.Flags().Lookup("mutation-rate"))

	rootCmd.AddCommand(inferCmd)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
