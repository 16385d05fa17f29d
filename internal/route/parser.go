// =============================================================================
// Route to PLN Converter - Route Parser
// =============================================================================
//
// This file tokenizes a textual flight-route description and classifies each
// whitespace-separated token, producing an ordered Route. Three token shapes
// are recognized, checked in priority order:
//
//   1. Combined coordinate   "0103000S0783000W"     -> one Coordinate waypoint
//   2. Split lat/lon pair    "0103000S" "0783000W"  -> one Coordinate waypoint
//   3. Anything else         "KJFK", "MERIT"        -> one Named waypoint
//
// The scan is a single left-to-right pass with one token of lookahead and no
// backtracking. A latitude token whose following token is missing or not a
// valid longitude aborts the parse with ErrDanglingLatitude: silently
// dropping the latitude (as a legacy variant of this tool did) can corrupt
// route ordering.
//
// =============================================================================

package route

import "strings"

// Parse tokenizes text on whitespace and classifies each token in order,
// returning the resulting Route.
//
// An empty or all-whitespace input is legal and yields an empty Route. Any
// decode failure aborts parsing immediately; no partial Route is returned.
func Parse(text string) (Route, error) {
	tokens := strings.Fields(text)

	r := make(Route, 0, len(tokens))

	for i := 0; i < len(tokens); {
		tok := tokens[i]

		// Combined lat+lon token.
		if comboPattern.MatchString(tok) {
			wp, err := decodePair(tok[:combinedSplit], tok[combinedSplit:])
			if err != nil {
				return nil, err
			}
			r = append(r, wp)
			i++
			continue
		}

		// Latitude token: requires a longitude token immediately after it.
		if latPattern.MatchString(tok) {
			if i+1 >= len(tokens) {
				return nil, &TokenError{
					Token:  tok,
					Reason: "latitude is the final token; expected a following longitude",
					Kind:   ErrDanglingLatitude,
				}
			}
			next := tokens[i+1]
			if !lonPattern.MatchString(next) {
				return nil, &TokenError{
					Token:  tok,
					Reason: "latitude not followed by a valid longitude token (got " + next + ")",
					Kind:   ErrDanglingLatitude,
				}
			}
			wp, err := decodePair(tok, next)
			if err != nil {
				return nil, err
			}
			r = append(r, wp)
			i += 2
			continue
		}

		// Named fix. Longitude-only tokens land here too: they are only ever
		// consumed through the latitude lookahead above.
		r = append(r, Named(strings.ToUpper(tok)))
		i++
	}

	return r, nil
}

// decodePair decodes a latitude and longitude token into one waypoint.
func decodePair(latTok, lonTok string) (Waypoint, error) {
	lat, err := Decode(latTok)
	if err != nil {
		return Waypoint{}, err
	}
	lon, err := Decode(lonTok)
	if err != nil {
		return Waypoint{}, err
	}
	return Coordinate(lat, lon), nil
}
