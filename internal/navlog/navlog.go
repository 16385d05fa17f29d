// =============================================================================
// Route to PLN Converter - Navigation Log Export
// =============================================================================
//
// This module writes an XLSX navigation log for a parsed route: one row per
// waypoint with its sequence number, identifier, type, and decimal-degree
// position. The log is a pilot-side companion to the generated .pln file.
//
// =============================================================================

package navlog

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/avplan/route2pln/internal/route"
)

// SheetName is the worksheet holding the waypoint table.
const SheetName = "Route"

var headers = []string{"Seq", "Waypoint", "Type", "Latitude", "Longitude"}

// Write renders the route as an XLSX navigation log at path.
func Write(path string, r route.Route) error {
	f := excelize.NewFile()
	defer f.Close()

	// Rename the default sheet rather than juggling two.
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to set up navlog sheet: %w", err)
	}

	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return fmt.Errorf("failed to write navlog header: %w", err)
		}
	}

	for i, wp := range r {
		if err := writeRow(f, i, wp); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save navlog: %w", err)
	}

	return nil
}

// writeRow writes one waypoint on row i+2 (row 1 is the header).
func writeRow(f *excelize.File, i int, wp route.Waypoint) error {
	row := i + 2

	values := make([]interface{}, len(headers))
	values[0] = i + 1

	switch wp.Kind {
	case route.KindNamed:
		values[1] = wp.Ident
		values[2] = "Airport"
	case route.KindCoordinate:
		values[1] = "WP" + strconv.Itoa(i+1)
		values[2] = "User"
		values[3] = wp.Latitude
		values[4] = wp.Longitude
	}

	for col, v := range values {
		if v == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, v); err != nil {
			return fmt.Errorf("failed to write navlog row %d: %w", row, err)
		}
	}

	return nil
}
