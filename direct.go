package chord

import (
	"fmt"
	"math"
)

// DefaultLatitudeIterations is the number of fixed-point passes used to
// solve the destination latitude. The update contracts at a rate on the
// order of e², so the default leaves no residual at float64 precision
// on terrestrial ellipsoids.
const DefaultLatitudeIterations = 15

// Direct is a solved direct problem: the destination reached from a
// known origin along a chord of known length, azimuth and zenith
// distance. Every quantity is computed at construction; a Direct is
// immutable and safe for concurrent use.
type Direct struct {
	e *Ellipsoid

	chord float64
	az    float64 // radians
	zen   float64 // radians

	lat1 float64 // radians
	lon1 float64 // radians
	h1   float64
	n1   float64 // prime-vertical radius at the origin

	l, m, n float64 // direction cosines of the chord

	lat2 float64 // radians
	lon2 float64 // radians
	n2   float64

	h2    float64
	h2Err error

	reduced    float64
	reducedErr error

	revZen    float64
	revZenErr error

	xyz    Cartesian
	xyzErr error
}

// Direct solves the direct chord problem: locate the destination
// reached from a known point along an observed chord.
//
// Param origin is the known point A.
// Param obs is the chord observation from A toward the unknown point B.
//
// Construction validates its inputs and solves every quantity once; the
// accessors on the returned Direct are pure reads. A quantity that is
// undefined for the solved geometry reports its error from its own
// accessor (see Height), leaving the others usable.
func (e *Ellipsoid) Direct(origin Point, obs Observation) (*Direct, error) {
	return e.DirectWithIterations(origin, obs, DefaultLatitudeIterations)
}

// DirectWithIterations is Direct with an explicit number of passes for
// the destination-latitude fixed point.
func (e *Ellipsoid) DirectWithIterations(origin Point, obs Observation, iterations int) (*Direct, error) {
	if !(obs.chord > 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidChord, obs.chord)
	}
	if iterations < 1 {
		return nil, fmt.Errorf("latitude iterations must be positive: %d", iterations)
	}
	d := &Direct{
		e:     e,
		chord: obs.chord,
		az:    obs.azimuth * radians,
		zen:   obs.zenith * radians,
		lat1:  origin.lat * radians,
		lon1:  origin.lon * radians,
		h1:    origin.height,
	}
	d.solve(iterations)
	return d, nil
}

func (d *Direct) solve(iterations int) {
	sinLat1, cosLat1 := math.Sincos(d.lat1)
	sinLon1, cosLon1 := math.Sincos(d.lon1)
	sinAz, cosAz := math.Sincos(d.az)
	sinZen, cosZen := math.Sincos(d.zen)

	d.n1 = d.e.nrad(d.lat1)

	// direction cosines of the chord in the geocentric frame
	d.l = cosLat1*cosLon1*cosZen - (sinLat1*cosLon1*cosAz+sinLon1*sinAz)*sinZen
	d.m = cosLat1*sinLon1*cosZen - (sinLat1*sinLon1*cosAz-cosLon1*sinAz)*sinZen
	d.n = sinLat1*cosZen + cosLat1*sinZen*cosAz

	r1 := d.n1 + d.h1

	// equatorial-plane components of the destination; X and Y also fix
	// the longitude, and the latitude denominator below is invariant
	// across the iteration
	X := r1*cosLat1*sinLon1 + d.chord*d.m
	Y := r1*cosLat1*cosLon1 + d.chord*d.l
	den := math.Hypot(X, Y)

	// latitude fixed point: an estimate without the e² term, then the
	// corrected update
	num0 := r1*sinLat1 + d.chord*d.n
	lat2 := math.Atan(num0 / den)
	n2 := d.e.nrad(lat2)
	for i := 0; i < iterations; i++ {
		num := num0 + d.e.e2*(n2*math.Sin(lat2)-d.n1*sinLat1)
		lat2 = math.Atan(num / den)
		n2 = d.e.nrad(lat2)
	}
	d.lat2, d.n2 = lat2, n2
	d.lon2 = math.Atan2(X, Y)

	sinLat2, cosLat2 := math.Sincos(lat2)
	dns := n2*sinLat2 - d.n1*sinLat1

	// height above the ellipsoid at the destination; the recovery
	// divides by cosφ₂·sinλ₂, which vanishes on the zero and 180th
	// meridians and at the poles
	hden := cosLat2 * math.Sin(d.lon2)
	if math.Abs(hden) < degenerateEps {
		d.h2Err = fmt.Errorf("height: %w", ErrNumericDegeneracy)
		d.reducedErr = d.h2Err
		d.revZenErr = d.h2Err
		d.xyzErr = d.h2Err
		return
	}
	d.h2 = X/hden - n2

	// reduced chord: both endpoint heights projected out
	k := d.h1/d.n1 + d.h2/n2 + d.h1*d.h2/(d.n1*n2)
	dhs := d.h2*sinLat2 - d.h1*sinLat1
	dh := d.h2 - d.h1
	tau := 2*(n2-d.n1)*dh + k*d.e.mu*dns*dns - 2*d.e.e2*dns*dhs
	p := (k + dh*dh/(d.chord*d.chord) + tau/(d.chord*d.chord)) / (1 + k)
	if !(p <= 1) {
		d.reducedErr = fmt.Errorf("reduced chord: %w", ErrDomain)
	} else {
		d.reduced = d.chord - d.chord*(p/(1+math.Sqrt(1-p)))
	}

	// zenith distance of the chord seen from the destination
	cosFi := sinLat1*sinLat2 + cosLat1*cosLat2*math.Cos(d.lon2-d.lon1)
	arg := (r1*cosFi - (n2 + d.h2) + d.e.e2*dns*sinLat2) / d.chord
	if !(arg >= -1 && arg <= 1) {
		d.revZenErr = fmt.Errorf("reverse zenith distance: %w", ErrDomain)
	} else {
		d.revZen = math.Acos(arg) * degrees
	}

	d.xyz = d.e.cartesian(lat2, d.lon2, d.h2, n2)
}

// Latitude of the destination (degrees).
func (d *Direct) Latitude() float64 {
	return d.lat2 * degrees
}

// CurvatureRadius is the prime-vertical radius of curvature N at the
// destination latitude (meters).
func (d *Direct) CurvatureRadius() float64 {
	return d.n2
}

// Longitude of the destination (degrees) in (-180, 180].
func (d *Direct) Longitude() float64 {
	return lonNormalize(d.lon2 * degrees)
}

// Height of the destination above the ellipsoid (meters).
//
// A destination on the zero or 180th meridian, or at a pole, leaves the
// recovery denominator without a usable value; ErrNumericDegeneracy is
// returned in that case rather than an infinity.
func (d *Direct) Height() (float64, error) {
	if d.h2Err != nil {
		return 0, d.h2Err
	}
	return d.h2, nil
}

// ReducedChord is the chord with both endpoint heights projected out:
// the straight segment between the footpoints on the ellipsoid surface
// (meters).
func (d *Direct) ReducedChord() (float64, error) {
	if d.reducedErr != nil {
		return 0, d.reducedErr
	}
	return d.reduced, nil
}

// ReverseZenithDistance is the angle at the destination between its
// zenith and the chord back to the origin (degrees).
func (d *Direct) ReverseZenithDistance() (float64, error) {
	if d.revZenErr != nil {
		return 0, d.revZenErr
	}
	return d.revZen, nil
}

// Cartesian is the destination in geocentric coordinates (meters).
func (d *Direct) Cartesian() (Cartesian, error) {
	if d.xyzErr != nil {
		return Cartesian{}, d.xyzErr
	}
	return d.xyz, nil
}

// Destination assembles the solved point B.
func (d *Direct) Destination() (Point, error) {
	if d.h2Err != nil {
		return Point{}, d.h2Err
	}
	return Point{lat: d.Latitude(), lon: d.Longitude(), height: d.h2}, nil
}

// Measurements renders every solved quantity under its conventional
// label. Param format selects how angular entries are rendered.
func (d *Direct) Measurements(format AngleFormat) (map[string]string, error) {
	height, err := d.Height()
	if err != nil {
		return nil, err
	}
	reduced, err := d.ReducedChord()
	if err != nil {
		return nil, err
	}
	revZen, err := d.ReverseZenithDistance()
	if err != nil {
		return nil, err
	}
	xyz, err := d.Cartesian()
	if err != nil {
		return nil, err
	}
	return map[string]string{
		"Normal radius of curvature": fmt.Sprintf("%v m", d.CurvatureRadius()),
		"Latitude":                   formatAngle(d.Latitude(), format),
		"Longitude":                  formatAngle(d.Longitude(), format),
		"Height":                     fmt.Sprintf("%v m", height),
		"Reduced chord":              fmt.Sprintf("%v m", reduced),
		"Reverse zenith distance":    formatAngle(revZen, format),
		"XYZ 2":                      fmt.Sprintf("%v m", xyz),
	}, nil
}
