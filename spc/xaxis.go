package spc

import (
	"fmt"

	"github.com/WillCallahan/specio3/cursor"
)

// evenAxis materializes an evenly spaced X axis of npts points between
// first and last inclusive, per §4.3: x[i] = first + i*(last-first)/(npts-1).
// When npts is 1, the single point is first.
func evenAxis(first, last float64, npts int) []float64 {
	x := make([]float64, npts)
	if npts == 1 {
		x[0] = first
		return x
	}

	step := (last - first) / float64(npts-1)
	for i := range x {
		x[i] = first + float64(i)*step
	}

	return x
}

// readExplicitAxis reads npts consecutive little-endian f32 values from
// c and widens each to float64, per §4.3's "explicit shared" and
// "per-subfile explicit" rules. what labels truncation errors.
func readExplicitAxis(c *cursor.Cursor, npts int, what string) ([]float64, error) {
	x := make([]float64, npts)
	for i := range x {
		v, err := c.F32(fmt.Sprintf("%s[%d]", what, i))
		if err != nil {
			return nil, err
		}
		x[i] = v
	}

	return x, nil
}
