package chord

import (
	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
)

// LatLng converts the point to an s2.LatLng, dropping the height.
func (p Point) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(p.lat, p.lon)
}

// PointFromLatLng builds a validated Point from an s2.LatLng.
//
// Param ll is the position; it is range-checked the same way NewPoint
// checks raw degrees, since an s2.LatLng may hold angles outside the
// geodetic range.
// Param heightM is the height above the ellipsoid surface in meters.
func PointFromLatLng(ll s2.LatLng, heightM float64) (Point, error) {
	return NewPoint(ll.Lat.Degrees(), ll.Lng.Degrees(), heightM)
}

// Orb converts the point to an orb.Point in lon/lat order, dropping
// the height.
func (p Point) Orb() orb.Point {
	return orb.Point{p.lon, p.lat}
}

// Segment is the straight chord between two points as an orb
// two-vertex line string, ready for GeoJSON encoding or map drawing.
// The segment pierces the ellipsoid; consumers that need the surface
// trace should densify it themselves.
func Segment(a, b Point) orb.LineString {
	return orb.LineString{a.Orb(), b.Orb()}
}
