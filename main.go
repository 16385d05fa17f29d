// =============================================================================
// Route to PLN Converter - Main Entry Point
// =============================================================================
//
// route2pln converts a textual flight-route description (SkyVector-style
// named fixes and DMS coordinate tokens) into an MSFS flight plan (.PLN).
//
// USAGE:
//   route2pln convert "KJFK 0407000N 0740000W KLAX"   - print a plan to stdout
//   route2pln convert -f routes/*.txt                 - convert route files
//   route2pln validate "KJFK 0103000S0783000W KLAX"   - parse and report only
//   route2pln version                                 - show version info
//
// ARCHITECTURE:
//   - cmd/      : CLI command definitions (Cobra)
//   - internal/ : core transformation logic (route parsing, PLN output)
//   - pkg/      : shared utilities
//
// =============================================================================

package main

import (
	"github.com/avplan/route2pln/cmd"
)

func main() {
	cmd.Execute()
}
