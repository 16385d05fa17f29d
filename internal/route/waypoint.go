// =============================================================================
// Route to PLN Converter - Waypoint Types
// =============================================================================
//
// This file defines the waypoint model shared by the parser and the PLN
// serializer. A waypoint is a tagged variant: either a named fix (airport,
// VOR, intersection identifier) or a raw latitude/longitude position in
// decimal degrees.
//
// Waypoints are never mutated after creation; a Route is built once by the
// parser and then only read.
//
// =============================================================================

package route

// Kind discriminates the two waypoint variants.
type Kind int

const (
	// KindNamed is an airport/VOR/intersection identifier.
	KindNamed Kind = iota

	// KindCoordinate is a raw lat/lon position in decimal degrees.
	KindCoordinate
)

// Waypoint is a single entry in a flight route.
//
// For KindNamed only Ident is meaningful; for KindCoordinate only
// Latitude and Longitude are. Construct via Named or Coordinate rather
// than with a struct literal.
type Waypoint struct {
	Kind  Kind
	Ident string

	// Decimal degrees, rounded to 6 fractional digits.
	// Latitude is in [-90,90], Longitude in [-180,180].
	Latitude  float64
	Longitude float64
}

// Named returns a named-fix waypoint. The identifier is stored upper-cased.
func Named(ident string) Waypoint {
	return Waypoint{Kind: KindNamed, Ident: ident}
}

// Coordinate returns a raw-position waypoint.
func Coordinate(lat, lon float64) Waypoint {
	return Waypoint{Kind: KindCoordinate, Latitude: lat, Longitude: lon}
}

// Route is an ordered sequence of waypoints. Order is semantically
// significant: it defines the flight sequence.
type Route []Waypoint

// FirstNamed returns the first named waypoint in route order.
// The second return value is false if the route has none.
func (r Route) FirstNamed() (Waypoint, bool) {
	for _, wp := range r {
		if wp.Kind == KindNamed {
			return wp, true
		}
	}
	return Waypoint{}, false
}

// LastNamed returns the last named waypoint in route order.
func (r Route) LastNamed() (Waypoint, bool) {
	for i := len(r) - 1; i >= 0; i-- {
		if r[i].Kind == KindNamed {
			return r[i], true
		}
	}
	return Waypoint{}, false
}

// FirstCoordinate returns the first coordinate waypoint in route order.
func (r Route) FirstCoordinate() (Waypoint, bool) {
	for _, wp := range r {
		if wp.Kind == KindCoordinate {
			return wp, true
		}
	}
	return Waypoint{}, false
}

// LastCoordinate returns the last coordinate waypoint in route order.
func (r Route) LastCoordinate() (Waypoint, bool) {
	for i := len(r) - 1; i >= 0; i-- {
		if r[i].Kind == KindCoordinate {
			return r[i], true
		}
	}
	return Waypoint{}, false
}

// Count returns the number of waypoints of the given kind.
func (r Route) Count(k Kind) int {
	n := 0
	for _, wp := range r {
		if wp.Kind == k {
			n++
		}
	}
	return n
}
