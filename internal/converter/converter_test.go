package converter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avplan/route2pln/internal/config"
	"github.com/avplan/route2pln/internal/route"
	"github.com/avplan/route2pln/pkg/utils"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.OutputDir = t.TempDir()
	cfg.FilenameFormat = "{departure}-{destination}_{original}.pln"
	return cfg
}

func TestJobRunWritesPlan(t *testing.T) {
	cfg := testConfig(t)

	job := New("coastal.txt", "KJFK 404200N 0740000W KLAX", cfg, zerolog.Nop())
	result := job.Run()

	require.True(t, result.Success)
	require.NoError(t, result.Error)
	assert.Equal(t, 3, result.Stats.Waypoints)
	assert.Equal(t, 2, result.Stats.NamedFixes)
	assert.Equal(t, 1, result.Stats.UserWaypoints)

	assert.Equal(t, filepath.Join(cfg.OutputDir, "KJFK-KLAX_coastal.pln"), result.OutputFile)
	require.True(t, utils.FileExists(result.OutputFile))

	data, err := os.ReadFile(result.OutputFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<DepartureID>KJFK</DepartureID>")
	assert.Contains(t, string(data), `<ATCWaypoint id="WP2">`)
}

func TestJobRunWithNavLog(t *testing.T) {
	cfg := testConfig(t)

	result := New("hop.txt", "KBOS KPHL", cfg, zerolog.Nop()).
		WithNavLog(true).
		Run()

	require.True(t, result.Success)
	assert.True(t, strings.HasSuffix(result.NavLogFile, ".xlsx"))
	assert.True(t, utils.FileExists(result.NavLogFile))
}

func TestJobRunParseFailureWritesNothing(t *testing.T) {
	cfg := testConfig(t)

	result := New("bad.txt", "KJFK 404200N", cfg, zerolog.Nop()).Run()

	require.False(t, result.Success)
	require.Error(t, result.Error)
	assert.ErrorIs(t, result.Error, route.ErrDanglingLatitude)
	assert.Empty(t, result.OutputFile)

	entries, err := os.ReadDir(cfg.OutputDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestJobDryRun(t *testing.T) {
	cfg := testConfig(t)

	result := New("dry.txt", "KJFK KLAX", cfg, zerolog.Nop()).
		WithDryRun(true).
		Run()

	require.True(t, result.Success)
	assert.Empty(t, result.OutputFile)

	entries, err := os.ReadDir(cfg.OutputDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestJobGenerate(t *testing.T) {
	cfg := config.Default()
	cfg.Plan.CruisingAlt = 8500

	doc, err := New("<inline>", "KSEA KPDX", cfg, zerolog.Nop()).Generate()
	require.NoError(t, err)

	s := string(doc)
	assert.Contains(t, s, "<DepartureID>KSEA</DepartureID>")
	assert.Contains(t, s, "<CruisingAlt>8500</CruisingAlt>")
}

func TestJobGenerateEmptyRoute(t *testing.T) {
	doc, err := New("<inline>", "", config.Default(), zerolog.Nop()).Generate()
	require.NoError(t, err)
	assert.Contains(t, string(doc), "<DepartureID>UNKNOWN</DepartureID>")
}
