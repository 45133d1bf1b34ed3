package chord

import (
	"fmt"
	"math"
)

// Inverse is a solved inverse problem: the chord between two known
// points together with its azimuths and zenith distances at both ends.
// Every quantity is computed at construction; an Inverse is immutable
// and safe for concurrent use.
type Inverse struct {
	e *Ellipsoid

	lat1, lon1, h1 float64 // point A, radians + meters
	lat2, lon2, h2 float64 // point B, radians + meters
	n1, n2         float64

	xyz1, xyz2 Cartesian
	cart       float64

	chord    float64
	chordErr error

	reduced    float64
	reducedErr error

	fwdAz    float64
	fwdAzErr error
	revAz    float64
	revAzErr error

	fwdZen    float64
	fwdZenErr error
	revZen    float64
	revZenErr error
}

// Inverse solves the inverse chord problem between two known points.
//
// Param a is point A, the standing point of the forward direction.
// Param b is point B.
//
// Every quantity is solved once here; the accessors on the returned
// Inverse are pure reads. Quantities that are undefined for the given
// pair, such as azimuths between points on a shared meridian, report
// their error from their own accessor and leave the others usable.
func (e *Ellipsoid) Inverse(a, b Point) *Inverse {
	v := &Inverse{
		e:    e,
		lat1: a.lat * radians,
		lon1: a.lon * radians,
		h1:   a.height,
		lat2: b.lat * radians,
		lon2: b.lon * radians,
		h2:   b.height,
	}
	v.solve()
	return v
}

func (v *Inverse) solve() {
	sinLat1, cosLat1 := math.Sincos(v.lat1)
	sinLat2, cosLat2 := math.Sincos(v.lat2)
	dLon := v.lon2 - v.lon1
	sinDLon, cosDLon := math.Sincos(dLon)

	v.n1 = v.e.nrad(v.lat1)
	v.n2 = v.e.nrad(v.lat2)
	r1 := v.n1 + v.h1
	r2 := v.n2 + v.h2
	dns := v.n2*sinLat2 - v.n1*sinLat1
	dhs := v.h2*sinLat2 - v.h1*sinLat1

	v.xyz1 = v.e.cartesian(v.lat1, v.lon1, v.h1, v.n1)
	v.xyz2 = v.e.cartesian(v.lat2, v.lon2, v.h2, v.n2)
	v.cart = dist3(v.xyz1, v.xyz2)

	// chord by the closed form; algebraically identical to the
	// Euclidean distance between the two geocentric positions
	cosFi := sinLat1*sinLat2 + cosLat1*cosLat2*cosDLon
	c2 := r2*r2 + r1*r1 - 2*r2*r1*cosFi - v.e.mu*dns*dns - 2*v.e.e2*dns*dhs
	if !(c2 >= 0) {
		v.chordErr = fmt.Errorf("chord distance: %w", ErrNumericDegeneracy)
	} else {
		v.chord = math.Sqrt(c2)
	}

	// reduced chord, heights projected out
	sinDLat2 := math.Sin((v.lat2 - v.lat1) / 2)
	sinDLon2 := math.Sin(dLon / 2)
	haver := sinDLat2*sinDLat2 + cosLat1*cosLat2*sinDLon2*sinDLon2
	rc2 := 4*v.n1*v.n2*haver + (v.n2-v.n1)*(v.n2-v.n1) - v.e.mu*dns*dns
	if !(rc2 >= 0) {
		v.reducedErr = fmt.Errorf("reduced chord: %w", ErrNumericDegeneracy)
	} else {
		v.reduced = math.Sqrt(rc2)
	}

	// azimuths from the cotangent forms, evaluated as atan2 of the
	// sign-carrying numerator and denominator so that every quadrant
	// resolves
	yf := cosLat2 * sinDLon
	if math.Abs(yf) < degenerateEps {
		v.fwdAzErr = fmt.Errorf("forward azimuth: %w", ErrNumericDegeneracy)
	} else {
		x := sinLat2*cosLat1 - cosLat2*sinLat1*cosDLon - v.e.e2*dns*cosLat1/r2
		v.fwdAz = wrap360(math.Atan2(yf, x) * degrees)
	}
	yr := -cosLat1 * sinDLon
	if math.Abs(yr) < degenerateEps {
		v.revAzErr = fmt.Errorf("reverse azimuth: %w", ErrNumericDegeneracy)
	} else {
		x := sinLat1*cosLat2 - cosLat1*sinLat2*cosDLon + v.e.e2*dns*cosLat2/r1
		v.revAz = wrap360(math.Atan2(yr, x) * degrees)
	}

	// the zenith distances need the chord itself
	switch {
	case v.chordErr != nil:
		v.fwdZenErr = v.chordErr
		v.revZenErr = v.chordErr
	case !(v.chord > 0):
		err := fmt.Errorf("zenith distance: coincident points: %w", ErrNumericDegeneracy)
		v.fwdZenErr = err
		v.revZenErr = err
	default:
		argF := (r2*cosFi - r1 - v.e.e2*dns*sinLat1) / v.chord
		if !(argF >= -1 && argF <= 1) {
			v.fwdZenErr = fmt.Errorf("forward zenith distance: %w", ErrDomain)
		} else {
			v.fwdZen = math.Acos(argF) * degrees
		}
		argR := (r1*cosFi - r2 + v.e.e2*dns*sinLat2) / v.chord
		if !(argR >= -1 && argR <= 1) {
			v.revZenErr = fmt.Errorf("reverse zenith distance: %w", ErrDomain)
		} else {
			v.revZen = math.Acos(argR) * degrees
		}
	}
}

// CartesianA is point A in geocentric coordinates (meters).
func (v *Inverse) CartesianA() Cartesian {
	return v.xyz1
}

// CartesianB is point B in geocentric coordinates (meters).
func (v *Inverse) CartesianB() Cartesian {
	return v.xyz2
}

// ChordDistance is the straight-line distance from A to B through the
// ellipsoid body (meters), by the ellipsoidal closed form.
func (v *Inverse) ChordDistance() (float64, error) {
	if v.chordErr != nil {
		return 0, v.chordErr
	}
	return v.chord, nil
}

// CartesianDistance is the same segment measured as the Euclidean norm
// between the two geocentric positions (meters). The two routes agree
// up to floating-point cancellation and serve as a mutual cross-check.
func (v *Inverse) CartesianDistance() float64 {
	return v.cart
}

// ReducedChord is the chord with both endpoint heights projected out:
// the straight segment between the footpoints on the ellipsoid surface
// (meters).
func (v *Inverse) ReducedChord() (float64, error) {
	if v.reducedErr != nil {
		return 0, v.reducedErr
	}
	return v.reduced, nil
}

// ForwardAzimuth is the azimuth of the chord at A toward B (degrees),
// clockwise from north, in [0, 360).
func (v *Inverse) ForwardAzimuth() (float64, error) {
	if v.fwdAzErr != nil {
		return 0, v.fwdAzErr
	}
	return v.fwdAz, nil
}

// ReverseAzimuth is the azimuth of the chord at B toward A (degrees),
// clockwise from north, in [0, 360).
func (v *Inverse) ReverseAzimuth() (float64, error) {
	if v.revAzErr != nil {
		return 0, v.revAzErr
	}
	return v.revAz, nil
}

// ForwardZenithDistance is the angle at A between its zenith and the
// chord toward B (degrees).
func (v *Inverse) ForwardZenithDistance() (float64, error) {
	if v.fwdZenErr != nil {
		return 0, v.fwdZenErr
	}
	return v.fwdZen, nil
}

// ReverseZenithDistance is the angle at B between its zenith and the
// chord toward A (degrees).
func (v *Inverse) ReverseZenithDistance() (float64, error) {
	if v.revZenErr != nil {
		return 0, v.revZenErr
	}
	return v.revZen, nil
}

// Measurements renders every solved quantity under its conventional
// label. Param format selects how angular entries are rendered.
func (v *Inverse) Measurements(format AngleFormat) (map[string]string, error) {
	chord, err := v.ChordDistance()
	if err != nil {
		return nil, err
	}
	reduced, err := v.ReducedChord()
	if err != nil {
		return nil, err
	}
	fwdAz, err := v.ForwardAzimuth()
	if err != nil {
		return nil, err
	}
	revAz, err := v.ReverseAzimuth()
	if err != nil {
		return nil, err
	}
	fwdZen, err := v.ForwardZenithDistance()
	if err != nil {
		return nil, err
	}
	revZen, err := v.ReverseZenithDistance()
	if err != nil {
		return nil, err
	}
	return map[string]string{
		"XYZ 1":                   fmt.Sprintf("%v m", v.CartesianA()),
		"XYZ 2":                   fmt.Sprintf("%v m", v.CartesianB()),
		"Chord (distance)":        fmt.Sprintf("%v m", chord),
		"Cartesian distance":      fmt.Sprintf("%v m", v.CartesianDistance()),
		"Reduced chord":           fmt.Sprintf("%v m", reduced),
		"Forward azimuth":         formatAngle(fwdAz, format),
		"Reverse azimuth":         formatAngle(revAz, format),
		"Forward zenith distance": formatAngle(fwdZen, format),
		"Reverse zenith distance": formatAngle(revZen, format),
	}, nil
}
