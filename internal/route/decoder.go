// =============================================================================
// Route to PLN Converter - Coordinate Decoder
// =============================================================================
//
// This file converts fixed-width DMS-hemisphere coordinate tokens into signed
// decimal degrees. Two token shapes exist:
//
//   DDMMSS{N|S}   - latitude,  2-digit degrees, e.g. "040700N"  -> 40.116667
//   DDDMMSS{E|W}  - longitude, 3-digit degrees, e.g. "0740000W" -> -74.0
//
// Decoding is a pure function: degrees + minutes/60 + seconds/3600, negated
// for the S and W hemispheres, rounded to 6 fractional digits.
//
// =============================================================================

package route

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// =============================================================================
// ERROR KINDS
// =============================================================================

// Sentinel error kinds surfaced by the decoder and parser. Callers match
// them with errors.Is; the wrapping TokenError carries the offending token.
var (
	// ErrUnrecognizedFormat reports a token matching neither coordinate
	// pattern. The route parser never surfaces this kind (unmatched tokens
	// fall through to named-fix classification); it exists for direct
	// callers of Decode.
	ErrUnrecognizedFormat = errors.New("unrecognized coordinate format")

	// ErrInvalidCoordinate reports degrees, minutes, or seconds out of range.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrDanglingLatitude reports a latitude token with no valid following
	// longitude token.
	ErrDanglingLatitude = errors.New("dangling latitude")
)

// TokenError is a decode or parse failure tied to a specific input token.
type TokenError struct {
	// Token is the offending input token, verbatim.
	Token string

	// Reason describes what was wrong with it.
	Reason string

	// Kind is one of the sentinel error kinds above.
	Kind error
}

// Error implements the error interface.
func (e *TokenError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Kind, e.Token, e.Reason)
}

// Unwrap exposes the sentinel kind to errors.Is.
func (e *TokenError) Unwrap() error {
	return e.Kind
}

// =============================================================================
// TOKEN PATTERNS
// =============================================================================

var (
	latPattern = regexp.MustCompile(`^(\d{2})(\d{2})(\d{2})([NS])$`)
	lonPattern = regexp.MustCompile(`^(\d{3})(\d{2})(\d{2})([EW])$`)

	// Combined lat+lon in a single 15-character token, split at index 7.
	comboPattern = regexp.MustCompile(`^\d{6}[NS]\d{7}[EW]$`)
)

// combinedSplit is the byte offset separating the latitude half from the
// longitude half of a combined token.
const combinedSplit = 7

// =============================================================================
// DECODING
// =============================================================================

// Decode converts a single DMS-hemisphere token to signed decimal degrees.
//
// The token must match DDMMSS{N|S} or DDDMMSS{E|W} exactly; anything else
// fails with ErrUnrecognizedFormat. Minutes and seconds must be below 60,
// latitude degrees at most 90, longitude degrees at most 180, and the final
// decimal value must stay within [-90,90] / [-180,180]; violations fail
// with ErrInvalidCoordinate. The result is rounded to 6 fractional digits.
func Decode(token string) (float64, error) {
	groups := latPattern.FindStringSubmatch(token)
	if groups == nil {
		groups = lonPattern.FindStringSubmatch(token)
	}
	if groups == nil {
		return 0, &TokenError{
			Token:  token,
			Reason: "expected DDMMSS{N|S} or DDDMMSS{E|W}",
			Kind:   ErrUnrecognizedFormat,
		}
	}

	// The patterns guarantee pure digits, so Atoi cannot fail here.
	deg, _ := strconv.Atoi(groups[1])
	minutes, _ := strconv.Atoi(groups[2])
	seconds, _ := strconv.Atoi(groups[3])
	hemi := groups[4]

	if minutes >= 60 || seconds >= 60 {
		return 0, &TokenError{
			Token:  token,
			Reason: fmt.Sprintf("minutes (%02d) and seconds (%02d) must be below 60", minutes, seconds),
			Kind:   ErrInvalidCoordinate,
		}
	}

	limit := 90
	axis := "latitude"
	if hemi == "E" || hemi == "W" {
		limit = 180
		axis = "longitude"
	}
	if deg > limit {
		return 0, &TokenError{
			Token:  token,
			Reason: fmt.Sprintf("%s degrees %d exceed %d", axis, deg, limit),
			Kind:   ErrInvalidCoordinate,
		}
	}

	decimal := float64(deg) + float64(minutes)/60 + float64(seconds)/3600
	if hemi == "S" || hemi == "W" {
		decimal = -decimal
	}
	decimal = round6(decimal)

	// Degrees at the limit with nonzero minutes or seconds would land just
	// outside the valid interval.
	if decimal < -float64(limit) || decimal > float64(limit) {
		return 0, &TokenError{
			Token:  token,
			Reason: fmt.Sprintf("%s %v outside [-%d,%d]", axis, decimal, limit, limit),
			Kind:   ErrInvalidCoordinate,
		}
	}

	return decimal, nil
}

// round6 rounds to 6 fractional digits.
func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
