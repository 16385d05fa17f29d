// =============================================================================
// Route to PLN Converter - Validate Command
// =============================================================================
//
// This file defines the 'validate' command, which parses route descriptions
// and reports the resulting waypoints without generating any output files.
// Useful for checking a route copied from a planner before converting it.
//
// COMMAND USAGE:
//   route2pln validate [flags] ROUTE...
//   route2pln validate --file [flags] PATH...
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avplan/route2pln/internal/route"
	"github.com/avplan/route2pln/pkg/utils"
)

// validateFromFiles treats arguments as route file paths.
var validateFromFiles bool

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate [flags] ROUTE...",
	Short: "Parse route descriptions and report the waypoints",
	Long: `The validate command runs the route parser and prints each resulting
waypoint with its type and position. No flight plan is written.

Parse errors identify the offending token, e.g. a latitude with no
following longitude.`,

	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(args)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVarP(&validateFromFiles, "file", "f", false,
		"Treat arguments as route file paths")
}

// runValidate parses each input and prints a waypoint report.
func runValidate(args []string) error {
	inputs := map[string]string{}

	if validateFromFiles {
		for _, path := range args {
			text, err := utils.ReadRouteFile(path)
			if err != nil {
				return err
			}
			inputs[path] = text
		}
	} else {
		inputs[inlineSource] = joinArgs(args)
	}

	failures := 0
	for source, text := range inputs {
		r, err := route.Parse(text)
		if err != nil {
			failures++
			fmt.Printf("✗ %s: %v\n", source, err)
			continue
		}

		fmt.Printf("✓ %s: %d waypoint(s)\n", source, len(r))
		for i, wp := range r {
			switch wp.Kind {
			case route.KindNamed:
				fmt.Printf("  %2d  %-10s fix\n", i+1, wp.Ident)
			case route.KindCoordinate:
				fmt.Printf("  %2d  WP%-8d %f,%f\n", i+1, i+1, wp.Latitude, wp.Longitude)
			}
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d route(s) failed validation", failures)
	}
	return nil
}
