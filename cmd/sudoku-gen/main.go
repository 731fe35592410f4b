// Command sudoku-gen is the CLI front-end to the puzzle engine: it parses
// flags/config, calls into internal/usecase.Service, and prints or saves
// whatever comes back. None of the difficulty/uniqueness/refinement logic
// lives here.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	logger  = logrus.New()
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "sudoku-gen",
	Short: "Generate and rate Sudoku puzzles",
	Long: `sudoku-gen drives the puzzle-engine core: it builds complete grids,
carves them down to a target clue count while preserving a unique solution,
and optionally refines the result into a requested difficulty band.`,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./sudoku-gen.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "debug|info|warn|error")
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig wires viper's layered config (flags override env override
// file). Unknown keys are simply never looked up, so they're ignored.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("sudoku-gen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}
	viper.SetEnvPrefix("SUDOKU")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			logger.WithError(err).Warn("config file present but unreadable, continuing with flags/env only")
		}
	}

	level, err := logrus.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.WithError(err).Error("sudoku-gen failed")
		os.Exit(1)
	}
}
