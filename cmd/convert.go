// =============================================================================
// Route to PLN Converter - Convert Command
// =============================================================================
//
// This file defines the 'convert' command, which turns route descriptions
// into .PLN flight plans.
//
// COMMAND USAGE:
//   route2pln convert [flags] ROUTE...
//   route2pln convert --file [flags] PATH...
//
// FLAGS:
//   --file, -f     : Treat arguments as route file paths instead of route text
//   --output-dir   : Override the configured output directory
//   --stdout       : Print the plan to stdout instead of writing a file
//   --navlog       : Also write an XLSX navigation log per plan
//   --dry-run      : Parse and serialize without writing output files
//
// A single inline route with no output flags prints to stdout. File inputs
// are converted concurrently, one goroutine per file, and a summary is
// printed when all jobs have finished.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"

	"github.com/avplan/route2pln/internal/converter"
	"github.com/avplan/route2pln/pkg/utils"
)

// inlineSource labels results for route text passed directly as arguments.
const inlineSource = "<inline>"

var (
	// fromFiles treats arguments as route file paths.
	fromFiles bool

	// outputDir overrides the configured output directory.
	outputDir string

	// toStdout prints the generated plan instead of writing a file.
	toStdout bool

	// withNavLog also writes an XLSX navigation log per plan.
	withNavLog bool

	// dryRun skips writing output files.
	dryRun bool
)

// convertCmd represents the 'convert' command.
var convertCmd = &cobra.Command{
	Use:   "convert [flags] ROUTE...",
	Short: "Convert route descriptions to .PLN flight plans",
	Long: `The convert command parses each route description and writes the
corresponding AceXML flight plan.

Without --file, all arguments together form one route (so an unquoted
route works: route2pln convert KJFK 040700N 0740000W KLAX). With --file,
each argument is a route file converted independently and concurrently.

On parse failure nothing is written: a route either converts completely
or not at all.`,

	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(args)
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().BoolVarP(&fromFiles, "file", "f", false,
		"Treat arguments as route file paths")
	convertCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "",
		"Directory for generated .pln files (overrides config)")
	convertCmd.Flags().BoolVar(&toStdout, "stdout", false,
		"Print the plan to stdout instead of writing a file")
	convertCmd.Flags().BoolVar(&withNavLog, "navlog", false,
		"Also write an XLSX navigation log per plan")
	convertCmd.Flags().BoolVar(&dryRun, "dry-run", false,
		"Parse and serialize without writing output files")
}

// runConvert orchestrates the conversion pipeline.
func runConvert(args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}

	// Inline route text: one route, print to stdout unless a file
	// destination was asked for.
	if !fromFiles {
		text := joinArgs(args)
		job := converter.New(inlineSource, text, cfg, log)

		if toStdout || (outputDir == "" && !withNavLog && !dryRun) {
			doc, err := job.Generate()
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(doc)
			return err
		}

		result := job.WithNavLog(withNavLog).WithDryRun(dryRun).Run()
		if !result.Success {
			return result.Error
		}
		return nil
	}

	// File inputs: convert each concurrently, a goroutine per file, with
	// results collected over a buffered channel.
	var wg sync.WaitGroup
	results := make(chan converter.Result, len(args))

	for _, path := range args {
		wg.Add(1)

		go func(path string) {
			defer wg.Done()

			text, err := utils.ReadRouteFile(path)
			if err != nil {
				results <- converter.Result{Source: path, Error: err}
				return
			}

			job := converter.New(path, text, cfg, log).
				WithNavLog(withNavLog).
				WithDryRun(dryRun)
			results <- job.Run()
		}(path)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var successCount, errorCount int
	for result := range results {
		if result.Success {
			successCount++
			fmt.Printf("  ✓ %s -> %s\n", filepath.Base(result.Source), result.OutputFile)
		} else {
			errorCount++
			fmt.Printf("  ✗ %s: %v\n", filepath.Base(result.Source), result.Error)
		}
	}

	fmt.Printf("\nConverted %d of %d route(s)\n", successCount, len(args))
	if errorCount > 0 {
		return fmt.Errorf("%d route(s) failed", errorCount)
	}
	return nil
}

// joinArgs rebuilds the route text from possibly pre-split arguments.
func joinArgs(args []string) string {
	text := ""
	for i, a := range args {
		if i > 0 {
			text += " "
		}
		text += a
	}
	return text
}
