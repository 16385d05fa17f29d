// =============================================================================
// Route to PLN Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI and the shared setup
// all subcommands rely on: configuration loading and the structured logger.
//
// COBRA CLI STRUCTURE:
//   rootCmd (route2pln)
//   ├── convertCmd  (route2pln convert)
//   ├── validateCmd (route2pln validate)
//   └── versionCmd  (route2pln version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/avplan/route2pln/internal/config"
	"github.com/avplan/route2pln/internal/logger"
)

// cfgFile holds the path to the configuration file.
// Overridden with the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "route2pln",
	Short: "Convert textual flight routes to MSFS .PLN flight plans",
	Long: `route2pln converts a flight-route description - whitespace-separated
named fixes and DMS-hemisphere coordinate tokens, as copied from a SkyVector
source route - into an AceXML flight plan (.PLN) loadable by the simulator.

Coordinate tokens:
  040700N            latitude  (DDMMSS + hemisphere)
  0740000W           longitude (DDDMMSS + hemisphere)
  0103000S0783000W   combined latitude+longitude

Any other token is treated as an airport, VOR, or intersection identifier.

Example Usage:
  route2pln convert "KJFK 0407000N 0740000W KLAX"
  route2pln convert --file routes/transatlantic.txt --navlog
  route2pln validate "KJFK MERIT KLAX"`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command. Called once, from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		config.DefaultPath,
		"Path to the configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug output",
	)
}

// loadConfig reads the config file and builds the application logger.
// The --verbose flag wins over the configured log level.
func loadConfig() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, zerolog.Logger{}, err
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}

	log := logger.Build(logger.Config{
		Level:     level,
		Console:   true,
		Component: "route2pln",
	}, os.Stderr)

	return cfg, log, nil
}
