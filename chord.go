// Package chord solves the direct and inverse geodetic problems on a
// reference ellipsoid using the straight-line chord between points, the
// 3-D segment through the ellipsoid body, rather than the surface arc.
package chord

import (
	"fmt"
	"math"
)

// GRS80 conforming ellipsoid
// https://en.wikipedia.org/wiki/Geodetic_Reference_System_1980
var GRS80 = mustEllipsoid(6378137.0, 6356752.3141)

// WGS84 conforming ellipsoid
// https://en.wikipedia.org/wiki/World_Geodetic_System
var WGS84 = mustEllipsoid(6378137.0, 6356752.314245)

// Ellipsoid is an object for performing chord operations.
type Ellipsoid struct {
	a  float64 // semi-major axis (meters)
	b  float64 // semi-minor axis (meters)
	e2 float64 // first eccentricity squared, (a²-b²)/a²
	mu float64 // biquadratic flattening term, (a⁴-b⁴)/a⁴
}

// NewEllipsoid initializes a new ellipsoid of revolution from its
// semi-axes.
//
// Param a is the semi-major axis, the equatorial radius (meters).
// Param b is the semi-minor axis, the polar radius (meters).
//
// The GRS80 and WGS84 package-level variables are pre-initialized
// ellipsoids representing Earth.
func NewEllipsoid(a, b float64) (*Ellipsoid, error) {
	if !(b > 0) || !(a >= b) || math.IsInf(a, 1) {
		return nil, fmt.Errorf("%w: a=%v b=%v", ErrInvalidEllipsoid, a, b)
	}
	return &Ellipsoid{
		a:  a,
		b:  b,
		e2: (a*a - b*b) / (a * a),
		mu: (a*a*a*a - b*b*b*b) / (a * a * a * a),
	}, nil
}

func mustEllipsoid(a, b float64) *Ellipsoid {
	e, err := NewEllipsoid(a, b)
	if err != nil {
		panic(err)
	}
	return e
}

// SemiMajorAxis of the Ellipsoid (meters).
func (e *Ellipsoid) SemiMajorAxis() float64 {
	return e.a
}

// SemiMinorAxis of the Ellipsoid (meters).
func (e *Ellipsoid) SemiMinorAxis() float64 {
	return e.b
}

// E2 is the first eccentricity squared, (a²-b²)/a².
func (e *Ellipsoid) E2() float64 {
	return e.e2
}

// Mu is the biquadratic flattening term (a⁴-b⁴)/a⁴ that corrects chord
// lengths for the difference between the two axes.
func (e *Ellipsoid) Mu() float64 {
	return e.mu
}

// PrimeVerticalRadius computes N, the radius of curvature in the prime
// vertical, at the given geodetic latitude.
//
// Param lat is the geodetic latitude (degrees).
//
// N is defined on the whole latitude range; at the poles it reaches its
// maximum a²/b.
func (e *Ellipsoid) PrimeVerticalRadius(lat float64) float64 {
	return e.nrad(lat * radians)
}

// nrad is PrimeVerticalRadius taking radians.
func (e *Ellipsoid) nrad(lat float64) float64 {
	s := math.Sin(lat)
	return e.a / math.Sqrt(1-e.e2*s*s)
}

// Cartesian converts a geodetic position into geocentric Cartesian
// coordinates:
//
//	X = (N+h)·cosφ·cosλ
//	Y = (N+h)·cosφ·sinλ
//	Z = (N·(1-e²)+h)·sinφ
func (e *Ellipsoid) Cartesian(p Point) Cartesian {
	lat := p.lat * radians
	return e.cartesian(lat, p.lon*radians, p.height, e.nrad(lat))
}

// cartesian takes radians and a precomputed prime-vertical radius.
func (e *Ellipsoid) cartesian(lat, lon, h, n float64) Cartesian {
	return Cartesian{
		X: (n + h) * math.Cos(lat) * math.Cos(lon),
		Y: (n + h) * math.Cos(lat) * math.Sin(lon),
		Z: (n*(1-e.e2) + h) * math.Sin(lat),
	}
}

// Cartesian is a geocentric position (meters).
type Cartesian struct {
	X, Y, Z float64
}

func (c Cartesian) String() string {
	return fmt.Sprintf("(%v, %v, %v)", c.X, c.Y, c.Z)
}

// dist3 is the Euclidean distance between two geocentric positions.
func dist3(p, q Cartesian) float64 {
	dx := q.X - p.X
	dy := q.Y - p.Y
	dz := q.Z - p.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
