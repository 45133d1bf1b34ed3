package chord

import (
	"fmt"
	"math"
)

// AngleFormat selects how the Measurements views render angular
// quantities.
type AngleFormat int

const (
	// DecimalDegrees renders angles as plain decimal degrees.
	DecimalDegrees AngleFormat = iota
	// DMS renders angles in sexagesimal degree-minute-second notation.
	DMS
)

// FormatDMS converts decimal degrees into sexagesimal notation, for
// example 30.5 becomes `30°30'0.00000000"`. Degrees truncate toward
// zero and carry the sign for the whole value; minutes and seconds come
// from the absolute fractional part.
func FormatDMS(decimalDegrees float64) string {
	d := int(decimalDegrees)
	mf := (math.Abs(decimalDegrees) - math.Abs(float64(d))) * 60
	m := int(mf)
	s := (mf - float64(m)) * 60
	return fmt.Sprintf("%d°%d'%.8f\"", d, m, s)
}

func formatAngle(deg float64, format AngleFormat) string {
	if format == DMS {
		return FormatDMS(deg)
	}
	return fmt.Sprintf("%v°", deg)
}
