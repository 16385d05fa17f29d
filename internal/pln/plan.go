// =============================================================================
// Route to PLN Converter - Flight Plan Serializer
// =============================================================================
//
// This file turns a parsed Route into an MSFS-style AceXML flight plan
// (.PLN). The document shape:
//
//   <SimBase.Document Type="AceXML" version="2,0">
//     <Descr>FlightPlan</Descr>
//     <FlightPlan.FlightPlan>
//       <AppVersion>...</AppVersion>
//       <Title>KJFK to KLAX</Title>
//       <FPType>VFR</FPType>
//       <RouteType>Direct</RouteType>
//       <CruisingAlt>3500</CruisingAlt>
//       <DepartureID>KJFK</DepartureID>
//       <DepartureLLA>40.7,-74.0,0</DepartureLLA>
//       <DestinationID>KLAX</DestinationID>
//       <DestinationLLA>...</DestinationLLA>
//       <ATCWaypointList>
//         <ATCWaypoint id="KJFK">...</ATCWaypoint>
//         <ATCWaypoint id="WP2">...</ATCWaypoint>
//       </ATCWaypointList>
//     </FlightPlan.FlightPlan>
//   </SimBase.Document>
//
// Departure/destination metadata fall back to placeholders when the route
// lacks named or coordinate waypoints; serialization never fails on a
// well-formed Route.
//
// =============================================================================

package pln

import (
	"strconv"
	"strings"

	"github.com/avplan/route2pln/internal/route"
)

// UnknownID is the placeholder departure/destination identifier used when
// the route contains no named waypoint.
const UnknownID = "UNKNOWN"

// =============================================================================
// OPTIONS
// =============================================================================

// Options controls plan metadata and XML layout. The metadata fields are
// fixed literals as far as the route text is concerned: they are never
// derived from the input, only overridden by the caller's configuration.
type Options struct {
	// Title is the plan title. Empty means "<departure> to <destination>".
	Title string

	// FPType is the flight-plan type (VFR or IFR).
	FPType string

	// RouteType is the routing type, e.g. "Direct".
	RouteType string

	// CruisingAlt is the cruising altitude in feet.
	CruisingAlt int

	// AppVersionMajor and AppVersionMinor fill the AppVersion block.
	AppVersionMajor int
	AppVersionMinor int

	// Indent is the indentation unit for nested elements.
	Indent string

	// IncludeXMLDeclaration emits the leading <?xml ...?> line.
	IncludeXMLDeclaration bool
}

// DefaultOptions returns the stock plan settings.
func DefaultOptions() Options {
	return Options{
		FPType:                "VFR",
		RouteType:             "Direct",
		CruisingAlt:           3500,
		AppVersionMajor:       1,
		AppVersionMinor:       0,
		Indent:                "  ",
		IncludeXMLDeclaration: true,
	}
}

// =============================================================================
// GENERATION
// =============================================================================

// Generate serializes the route as a flight plan with default options.
func Generate(r route.Route) ([]byte, error) {
	return GenerateWithOptions(r, DefaultOptions())
}

// GenerateWithOptions serializes the route as a flight plan document.
//
// An empty route is legal: the plan gets UNKNOWN departure/destination
// identifiers, zero coordinates, and an empty waypoint list.
func GenerateWithOptions(r route.Route, opts Options) ([]byte, error) {
	depID, arrID := UnknownID, UnknownID
	if wp, ok := r.FirstNamed(); ok {
		depID = wp.Ident
	}
	if wp, ok := r.LastNamed(); ok {
		arrID = wp.Ident
	}

	var depLat, depLon, arrLat, arrLon float64
	if wp, ok := r.FirstCoordinate(); ok {
		depLat, depLon = wp.Latitude, wp.Longitude
	}
	if wp, ok := r.LastCoordinate(); ok {
		arrLat, arrLon = wp.Latitude, wp.Longitude
	}

	title := opts.Title
	if title == "" {
		title = depID + " to " + arrID
	}

	plan := Element{
		Name: "FlightPlan.FlightPlan",
		Children: []Element{
			{
				Name: "AppVersion",
				Children: []Element{
					elem("AppVersionMajor", strconv.Itoa(opts.AppVersionMajor)),
					elem("AppVersionMinor", strconv.Itoa(opts.AppVersionMinor)),
				},
			},
			elem("Title", title),
			elem("FPType", opts.FPType),
			elem("RouteType", opts.RouteType),
			elem("CruisingAlt", strconv.Itoa(opts.CruisingAlt)),
			elem("DepartureID", depID),
			elem("DepartureLLA", formatLLA(depLat, depLon)),
			elem("DestinationID", arrID),
			elem("DestinationLLA", formatLLA(arrLat, arrLon)),
			buildWaypointList(r),
		},
	}

	doc := Element{
		Name: "SimBase.Document",
		Attrs: []Attr{
			{Name: "Type", Value: "AceXML"},
			{Name: "version", Value: "2,0"},
		},
		Children: []Element{
			elem("Descr", "FlightPlan"),
			plan,
		},
	}

	return render(doc, opts), nil
}

// buildWaypointList renders every waypoint in route order. Coordinate
// waypoints are tagged as user waypoints and numbered WP<n> by their
// 1-based position among all emitted waypoints.
func buildWaypointList(r route.Route) Element {
	list := Element{Name: "ATCWaypointList"}

	for i, wp := range r {
		var entry Element

		switch wp.Kind {
		case route.KindNamed:
			entry = Element{
				Name:  "ATCWaypoint",
				Attrs: []Attr{{Name: "id", Value: wp.Ident}},
				Children: []Element{
					elem("ATCWaypointType", "Airport"),
					{
						Name:     "ICAO",
						Children: []Element{elem("ICAOIdent", wp.Ident)},
					},
				},
			}
		case route.KindCoordinate:
			entry = Element{
				Name:  "ATCWaypoint",
				Attrs: []Attr{{Name: "id", Value: "WP" + strconv.Itoa(i+1)}},
				Children: []Element{
					elem("ATCWaypointType", "User"),
					elem("WorldPosition", formatLLA(wp.Latitude, wp.Longitude)),
				},
			}
		}

		list.Children = append(list.Children, entry)
	}

	return list
}

// formatLLA renders "latitude,longitude,0" with decimal points kept on
// integral values ("-74.0" rather than "-74"), matching the format the
// simulator's own planner writes.
func formatLLA(lat, lon float64) string {
	return formatDegrees(lat) + "," + formatDegrees(lon) + ",0"
}

func formatDegrees(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
