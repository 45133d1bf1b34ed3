package chord

import "errors"

// Validation failures are reported at construction time. Numeric
// failures are reported by the accessor of the quantity they make
// undefined; every other quantity of the same solver stays usable.
var (
	// ErrInvalidEllipsoid reports semi-axes that do not satisfy 0 < b <= a.
	ErrInvalidEllipsoid = errors.New("semi-axes must satisfy 0 < b <= a")

	// ErrInvalidLatitude reports a latitude outside [-90, 90].
	ErrInvalidLatitude = errors.New("latitude must be in range [-90, 90]")

	// ErrInvalidLongitude reports a longitude that cannot be folded into
	// (-180, 180].
	ErrInvalidLongitude = errors.New("longitude must not exceed 360")

	// ErrInvalidChord reports a chord length that is not strictly positive.
	ErrInvalidChord = errors.New("chord length must be positive")

	// ErrInvalidZenith reports a zenith distance outside [0, 180].
	ErrInvalidZenith = errors.New("zenith distance must be in range [0, 180]")

	// ErrNumericDegeneracy reports geometry for which a quantity has no
	// defined value: a vanishing denominator or a negative squared length.
	ErrNumericDegeneracy = errors.New("numerically degenerate geometry")

	// ErrDomain reports an inverse-trigonometric argument or a correction
	// term that left its domain.
	ErrDomain = errors.New("argument outside function domain")
)

// degenerateEps bounds denominators away from zero. A magnitude below it
// is treated as a vanished term and reported as ErrNumericDegeneracy
// instead of letting the division produce infinities.
const degenerateEps = 1e-12
