package pln

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avplan/route2pln/internal/route"
)

// ---------------------------------------------------------------------------
// Full document
// ---------------------------------------------------------------------------

const wantMixedPlan = `<?xml version="1.0" encoding="UTF-8"?>
<SimBase.Document Type="AceXML" version="2,0">
  <Descr>FlightPlan</Descr>
  <FlightPlan.FlightPlan>
    <AppVersion>
      <AppVersionMajor>1</AppVersionMajor>
      <AppVersionMinor>0</AppVersionMinor>
    </AppVersion>
    <Title>KJFK to KLAX</Title>
    <FPType>VFR</FPType>
    <RouteType>Direct</RouteType>
    <CruisingAlt>3500</CruisingAlt>
    <DepartureID>KJFK</DepartureID>
    <DepartureLLA>40.7,-74.0,0</DepartureLLA>
    <DestinationID>KLAX</DestinationID>
    <DestinationLLA>40.7,-74.0,0</DestinationLLA>
    <ATCWaypointList>
      <ATCWaypoint id="KJFK">
        <ATCWaypointType>Airport</ATCWaypointType>
        <ICAO>
          <ICAOIdent>KJFK</ICAOIdent>
        </ICAO>
      </ATCWaypoint>
      <ATCWaypoint id="WP2">
        <ATCWaypointType>User</ATCWaypointType>
        <WorldPosition>40.7,-74.0,0</WorldPosition>
      </ATCWaypoint>
      <ATCWaypoint id="KLAX">
        <ATCWaypointType>Airport</ATCWaypointType>
        <ICAO>
          <ICAOIdent>KLAX</ICAOIdent>
        </ICAO>
      </ATCWaypoint>
    </ATCWaypointList>
  </FlightPlan.FlightPlan>
</SimBase.Document>
`

func TestGenerateMixedRoute(t *testing.T) {
	r := route.Route{
		route.Named("KJFK"),
		route.Coordinate(40.7, -74.0),
		route.Named("KLAX"),
	}

	doc, err := Generate(r)
	require.NoError(t, err)
	assert.Equal(t, wantMixedPlan, string(doc))
}

// User waypoints are numbered by their 1-based position among all emitted
// waypoints, so the only coordinate in [named, coord, named] is WP2.
func TestGenerateUserWaypointNumbering(t *testing.T) {
	r := route.Route{
		route.Coordinate(10, 20),
		route.Named("MERIT"),
		route.Coordinate(30, 40),
	}

	doc, err := Generate(r)
	require.NoError(t, err)

	s := string(doc)
	assert.Contains(t, s, `<ATCWaypoint id="WP1">`)
	assert.Contains(t, s, `<ATCWaypoint id="WP3">`)
	assert.NotContains(t, s, `"WP2"`)
}

// ---------------------------------------------------------------------------
// Fallback metadata
// ---------------------------------------------------------------------------

func TestGenerateEmptyRoute(t *testing.T) {
	doc, err := Generate(route.Route{})
	require.NoError(t, err)

	s := string(doc)
	assert.Contains(t, s, "<DepartureID>UNKNOWN</DepartureID>")
	assert.Contains(t, s, "<DestinationID>UNKNOWN</DestinationID>")
	assert.Contains(t, s, "<DepartureLLA>0.0,0.0,0</DepartureLLA>")
	assert.Contains(t, s, "<DestinationLLA>0.0,0.0,0</DestinationLLA>")
	assert.Contains(t, s, "<Title>UNKNOWN to UNKNOWN</Title>")
	assert.Contains(t, s, "<ATCWaypointList/>")
	assert.NotContains(t, s, "<ATCWaypoint ")
}

func TestGenerateCoordinatesOnly(t *testing.T) {
	r := route.Route{
		route.Coordinate(40.7, -74.0),
		route.Coordinate(-10.5, -78.5),
	}

	doc, err := Generate(r)
	require.NoError(t, err)

	s := string(doc)
	assert.Contains(t, s, "<DepartureID>UNKNOWN</DepartureID>")
	assert.Contains(t, s, "<DepartureLLA>40.7,-74.0,0</DepartureLLA>")
	assert.Contains(t, s, "<DestinationLLA>-10.5,-78.5,0</DestinationLLA>")
}

func TestGenerateNamedOnly(t *testing.T) {
	r := route.Route{route.Named("KBOS"), route.Named("KPHL")}

	doc, err := Generate(r)
	require.NoError(t, err)

	s := string(doc)
	assert.Contains(t, s, "<DepartureID>KBOS</DepartureID>")
	assert.Contains(t, s, "<DestinationID>KPHL</DestinationID>")
	assert.Contains(t, s, "<DepartureLLA>0.0,0.0,0</DepartureLLA>")
}

// ---------------------------------------------------------------------------
// Escaping
// ---------------------------------------------------------------------------

func TestGenerateEscapesIdentifiers(t *testing.T) {
	r := route.Route{route.Named(`R&D<T>"Q'`)}

	doc, err := Generate(r)
	require.NoError(t, err)

	s := string(doc)
	escaped := "R&amp;D&lt;T&gt;&quot;Q&apos;"

	// Both the id attribute and the nested text carry the escaped form.
	assert.Contains(t, s, `<ATCWaypoint id="`+escaped+`">`)
	assert.Contains(t, s, "<ICAOIdent>"+escaped+"</ICAOIdent>")
	assert.Contains(t, s, "<DepartureID>"+escaped+"</DepartureID>")
	assert.NotContains(t, s, `R&D`)
}

// ---------------------------------------------------------------------------
// Options
// ---------------------------------------------------------------------------

func TestGenerateWithOptions(t *testing.T) {
	r := route.Route{route.Named("KSEA"), route.Named("KPDX")}

	opts := DefaultOptions()
	opts.Title = "Evening hop"
	opts.FPType = "IFR"
	opts.RouteType = "HighAlt"
	opts.CruisingAlt = 24000
	opts.IncludeXMLDeclaration = false

	doc, err := GenerateWithOptions(r, opts)
	require.NoError(t, err)

	s := string(doc)
	assert.True(t, strings.HasPrefix(s, "<SimBase.Document"))
	assert.Contains(t, s, "<Title>Evening hop</Title>")
	assert.Contains(t, s, "<FPType>IFR</FPType>")
	assert.Contains(t, s, "<RouteType>HighAlt</RouteType>")
	assert.Contains(t, s, "<CruisingAlt>24000</CruisingAlt>")
}

// ---------------------------------------------------------------------------
// LLA formatting
// ---------------------------------------------------------------------------

func TestFormatLLA(t *testing.T) {
	assert.Equal(t, "0.0,0.0,0", formatLLA(0, 0))
	assert.Equal(t, "40.7,-74.0,0", formatLLA(40.7, -74))
	assert.Equal(t, "-10.5,-78.5,0", formatLLA(-10.5, -78.5))
	assert.Equal(t, "12.582222,-0.000278,0", formatLLA(12.582222, -0.000278))
}
