package chord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDMS(t *testing.T) {
	for _, tt := range []struct {
		in   float64
		want string
	}{
		{0, `0°0'0.00000000"`},
		{90, `90°0'0.00000000"`},
		{180, `180°0'0.00000000"`},
		{30.5, `30°30'0.00000000"`},
		{45.125, `45°7'30.00000000"`},
		{22.8125, `22°48'45.00000000"`},
		{-22.8125, `-22°48'45.00000000"`},
	} {
		assert.Equal(t, tt.want, FormatDMS(tt.in), "in=%v", tt.in)
	}
}

// Degrees truncate toward zero and carry the sign alone, so a value in
// (-1, 0) renders without it.
func TestFormatDMSFractionalSign(t *testing.T) {
	assert.Equal(t, `0°30'0.00000000"`, FormatDMS(-0.5))
}

func TestFormatAngle(t *testing.T) {
	assert.Equal(t, "30.5°", formatAngle(30.5, DecimalDegrees))
	assert.Equal(t, `30°30'0.00000000"`, formatAngle(30.5, DMS))
}
