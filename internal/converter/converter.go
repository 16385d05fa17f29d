// =============================================================================
// Route to PLN Converter - Conversion Job
// =============================================================================
//
// This module runs the conversion pipeline for a single route: parse the
// route text, serialize the flight plan, write the .pln file, and optionally
// write the XLSX navigation log alongside it.
//
// Jobs are independent of each other; the CLI runs one goroutine per input
// file and collects Results over a channel.
//
// =============================================================================

package converter

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/avplan/route2pln/internal/config"
	"github.com/avplan/route2pln/internal/navlog"
	"github.com/avplan/route2pln/internal/pln"
	"github.com/avplan/route2pln/internal/route"
	"github.com/avplan/route2pln/pkg/utils"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result is the outcome of one conversion job.
type Result struct {
	// Source names the input: a file path, or "<inline>" for argument text.
	Source string

	// OutputFile is the path of the generated .pln file. Empty if the job
	// failed or ran without file output.
	OutputFile string

	// NavLogFile is the path of the generated navigation log, if requested.
	NavLogFile string

	// Success indicates whether the job completed.
	Success bool

	// Error is set when Success is false.
	Error error

	// Stats holds processing statistics.
	Stats Stats
}

// Stats describes what a job processed.
type Stats struct {
	// Waypoints is the total waypoint count of the parsed route.
	Waypoints int

	// NamedFixes and UserWaypoints split that count by kind.
	NamedFixes    int
	UserWaypoints int

	// ProcessingTime is the wall time the job took.
	ProcessingTime time.Duration
}

// =============================================================================
// JOB STRUCTURE
// =============================================================================

// Job converts one route description into a flight plan.
type Job struct {
	source string
	text   string
	cfg    *config.Config
	navLog bool
	dryRun bool
	log    zerolog.Logger
}

// New creates a conversion job for the given route text. source is used for
// reporting and for the {original} output-name placeholder.
func New(source, text string, cfg *config.Config, log zerolog.Logger) *Job {
	return &Job{
		source: source,
		text:   text,
		cfg:    cfg,
		log:    log.With().Str("source", source).Logger(),
	}
}

// WithNavLog requests an XLSX navigation log next to the .pln output.
func (j *Job) WithNavLog(enabled bool) *Job {
	j.navLog = enabled
	return j
}

// WithDryRun parses and serializes but skips writing any files.
func (j *Job) WithDryRun(enabled bool) *Job {
	j.dryRun = enabled
	return j
}

// =============================================================================
// PIPELINE
// =============================================================================

// Run executes the conversion pipeline and reports the outcome. It never
// panics and never returns a partial output file.
func (j *Job) Run() Result {
	start := time.Now()
	result := Result{Source: j.source}

	fail := func(err error) Result {
		result.Error = err
		result.Stats.ProcessingTime = time.Since(start)
		j.log.Error().Err(err).Msg("conversion failed")
		return result
	}

	j.log.Debug().Msg("parsing route")

	r, err := route.Parse(j.text)
	if err != nil {
		return fail(fmt.Errorf("parsing route: %w", err))
	}

	result.Stats.Waypoints = len(r)
	result.Stats.NamedFixes = r.Count(route.KindNamed)
	result.Stats.UserWaypoints = r.Count(route.KindCoordinate)

	doc, err := pln.GenerateWithOptions(r, j.planOptions())
	if err != nil {
		return fail(fmt.Errorf("serializing plan: %w", err))
	}

	if j.dryRun {
		j.log.Info().Int("waypoints", len(r)).Msg("dry run, skipping output")
		result.Success = true
		result.Stats.ProcessingTime = time.Since(start)
		return result
	}

	outPath := filepath.Join(j.cfg.OutputDir, j.outputFileName(r))
	if err := utils.WriteFile(outPath, doc); err != nil {
		return fail(err)
	}
	result.OutputFile = outPath

	if j.navLog {
		logPath := strings.TrimSuffix(outPath, filepath.Ext(outPath)) + ".xlsx"
		if err := navlog.Write(logPath, r); err != nil {
			return fail(fmt.Errorf("writing navlog: %w", err))
		}
		result.NavLogFile = logPath
	}

	result.Success = true
	result.Stats.ProcessingTime = time.Since(start)
	j.log.Info().
		Str("output", outPath).
		Int("waypoints", len(r)).
		Dur("elapsed", result.Stats.ProcessingTime).
		Msg("conversion complete")

	return result
}

// Generate runs the parse and serialize stages only, returning the plan
// document. Used by the CLI when printing to stdout.
func (j *Job) Generate() ([]byte, error) {
	r, err := route.Parse(j.text)
	if err != nil {
		return nil, fmt.Errorf("parsing route: %w", err)
	}
	return pln.GenerateWithOptions(r, j.planOptions())
}

// planOptions maps the config's plan overrides onto the serializer defaults.
func (j *Job) planOptions() pln.Options {
	opts := pln.DefaultOptions()
	if j.cfg.Plan.Title != "" {
		opts.Title = j.cfg.Plan.Title
	}
	if j.cfg.Plan.FPType != "" {
		opts.FPType = j.cfg.Plan.FPType
	}
	if j.cfg.Plan.RouteType != "" {
		opts.RouteType = j.cfg.Plan.RouteType
	}
	if j.cfg.Plan.CruisingAlt != 0 {
		opts.CruisingAlt = j.cfg.Plan.CruisingAlt
	}
	return opts
}

// outputFileName expands the configured file-name format for this route.
func (j *Job) outputFileName(r route.Route) string {
	departure, destination := pln.UnknownID, pln.UnknownID
	if wp, ok := r.FirstNamed(); ok {
		departure = wp.Ident
	}
	if wp, ok := r.LastNamed(); ok {
		destination = wp.Ident
	}

	return utils.GenerateOutputFileName(j.cfg.FilenameFormat, map[string]string{
		"departure":   departure,
		"destination": destination,
		"original":    utils.BaseWithoutExt(j.source),
	})
}
