package chord

import (
	"fmt"
	"math"
)

// Point is an immutable geodetic position: latitude, longitude and
// height above the ellipsoid.
type Point struct {
	lat    float64 // degrees, [-90, 90]
	lon    float64 // degrees, (-180, 180]
	height float64 // meters above the ellipsoid
}

// NewPoint initializes a geodetic point.
//
// Param lat is the geodetic latitude (degrees) in the range [-90, 90].
// Param lon is the geodetic longitude (degrees). Values are folded into
// (-180, 180], so 285 becomes -75; anything above 360 is rejected.
// Param height is the height above the ellipsoid (meters).
func NewPoint(lat, lon, height float64) (Point, error) {
	if !(lat >= -90 && lat <= 90) {
		return Point{}, fmt.Errorf("%w: %v", ErrInvalidLatitude, lat)
	}
	if !(lon <= 360) || math.IsInf(lon, -1) {
		return Point{}, fmt.Errorf("%w: %v", ErrInvalidLongitude, lon)
	}
	return Point{lat: lat, lon: lonNormalize(lon), height: height}, nil
}

// Lat is the geodetic latitude (degrees).
func (p Point) Lat() float64 {
	return p.lat
}

// Lon is the geodetic longitude (degrees) in (-180, 180].
func (p Point) Lon() float64 {
	return p.lon
}

// Height above the ellipsoid (meters).
func (p Point) Height() float64 {
	return p.height
}

func (p Point) String() string {
	return fmt.Sprintf("(%v°, %v°, %v m)", p.lat, p.lon, p.height)
}

// Observation is the measured leg of a direct problem: the length of
// the chord leaving a known point together with its direction there.
type Observation struct {
	chord   float64 // meters, > 0
	azimuth float64 // degrees, [0, 360)
	zenith  float64 // degrees, [0, 180]
}

// NewObservation initializes a chord observation.
//
// Param chord is the straight-line distance to the target (meters),
// strictly positive.
// Param azimuth is the forward azimuth (degrees), folded into [0, 360).
// Param zenith is the zenith distance of the chord (degrees) in the
// range [0, 180]; 90 is the local horizontal plane.
func NewObservation(chord, azimuth, zenith float64) (Observation, error) {
	if !(chord > 0) || math.IsInf(chord, 1) {
		return Observation{}, fmt.Errorf("%w: %v", ErrInvalidChord, chord)
	}
	if !(zenith >= 0 && zenith <= 180) {
		return Observation{}, fmt.Errorf("%w: %v", ErrInvalidZenith, zenith)
	}
	if math.IsNaN(azimuth) || math.IsInf(azimuth, 0) {
		return Observation{}, fmt.Errorf("azimuth must be finite: %v", azimuth)
	}
	return Observation{chord: chord, azimuth: wrap360(azimuth), zenith: zenith}, nil
}

// Chord is the straight-line distance (meters).
func (o Observation) Chord() float64 {
	return o.chord
}

// Azimuth is the forward azimuth (degrees) in [0, 360).
func (o Observation) Azimuth() float64 {
	return o.azimuth
}

// Zenith is the zenith distance (degrees) in [0, 180].
func (o Observation) Zenith() float64 {
	return o.zenith
}
