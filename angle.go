package chord

import "math"

const radians = math.Pi / 180
const degrees = 180 / math.Pi

// lonNormalize folds a longitude into (-180, 180].
func lonNormalize(degs float64) float64 {
	y := math.Remainder(degs, 360)
	if y == -180 {
		return 180
	}
	return y
}

// wrap360 folds an angle into [0, 360).
func wrap360(degs float64) float64 {
	degs = math.Mod(degs, 360)
	if degs < 0 {
		degs += 360
	}
	return degs
}

// wrap180 folds an angle into [-180, 180].
func wrap180(degs float64) float64 {
	if degs < -180 || degs > 180 {
		degs = math.Mod(degs, 360)
		if degs < -180 {
			degs += 360
		} else if degs > 180 {
			degs -= 360
		}
	}
	return degs
}
