package spc

import (
	"math"

	"github.com/WillCallahan/specio3/cursor"
)

// decodeY reads npts Y values from c according to the §4.5 rules and
// returns them as float64 in natural (non-encoded) units.
//
// isFloatY: read npts f32 values, widened to f64, no scaling.
// tsprec (and not isFloatY): read npts i16 values, scale by 2^(exp-16).
// otherwise: read npts byte-swapped i32 values, scale by 2^(exp-32).
func decodeY(c *cursor.Cursor, exponent int16, isFloatY, tsprec bool, npts int) ([]float64, error) {
	y := make([]float64, npts)

	switch {
	case isFloatY:
		for i := range y {
			v, err := c.F32("Y value")
			if err != nil {
				return nil, err
			}
			y[i] = v
		}

	case tsprec:
		scale := math.Ldexp(1, int(exponent)-16)
		for i := range y {
			r, err := c.I16("Y value")
			if err != nil {
				return nil, err
			}
			y[i] = float64(r) * scale
		}

	default:
		scale := math.Ldexp(1, int(exponent)-32)
		for i := range y {
			r, err := readSwappedI32(c)
			if err != nil {
				return nil, err
			}
			y[i] = float64(r) * scale
		}
	}

	return y, nil
}

// readSwappedI32 reads one 4-byte word and reassembles it as a
// canonical signed 32-bit integer from the SPC on-disk byte-swap quirk:
// the word is stored as [b2, b3, b0, b1] relative to a normal
// little-endian i32, i.e. the low and high 16-bit halves are swapped.
//
// Known-answer fixture: stored bytes 00 00 01 00 decode to 1, not
// 65536 — the naive little-endian reading of those same four bytes.
func readSwappedI32(c *cursor.Cursor) (int32, error) {
	b, err := c.Take(4, "byte-swapped Y word")
	if err != nil {
		return 0, err
	}

	lo := uint16(b[2]) | uint16(b[3])<<8
	hi := uint16(b[0]) | uint16(b[1])<<8
	u := uint32(lo) | uint32(hi)<<16

	return int32(u), nil
}
