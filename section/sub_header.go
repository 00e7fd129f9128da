package section

import (
	"fmt"

	"github.com/WillCallahan/specio3/cursor"
	"github.com/WillCallahan/specio3/format"
)

// SubHeaderSize is the fixed size, in bytes, of one subfile header.
const SubHeaderSize = 32

// SubHeader is the decoded form of one 32-byte subfile header.
//
// Byte layout (resolving an ambiguity in the field ordering of the
// distilled spec — see DESIGN.md):
//
//	offset  size  field
//	0       1     flags (unused by this decoder, carried through)
//	1       1     reserved
//	2       2     exponent (i16)
//	4       2     index (u16)
//	6       4     npts (u32, meaningful only for the per-subfile-X variant)
//	10      4     z1 (f32)
//	14      4     z2 (f32)
//	18      4     w (f32)
//	22      10    reserved
type SubHeader struct {
	Exponent int16
	Index    uint16
	Npts     uint32
	First    float64
	Last     float64
}

// subExponentIsFloat reports whether exp marks floating-point Y data:
// any 16-bit value whose low byte equals format.FloatExponent (-128),
// per the §9 rule that the sentinel is not restricted to the exact
// int16 value -128.
func subExponentIsFloat(exp int16) bool {
	return int8(exp&0xFF) == format.FloatExponent
}

// EffectiveExponent resolves the exponent this subfile's Y block should
// be decoded with, following the §4.4 resolution rules: the subheader
// exponent wins unless it is the "inherit" sentinel, in which case the
// main header's exponent applies. The second return value reports
// whether the resolved exponent marks floating-point Y.
func (s SubHeader) EffectiveExponent(mainExponent int8) (exponent int16, isFloat bool) {
	exp := s.Exponent
	if exp == format.FloatSubExponent {
		exp = int16(mainExponent)
	}

	return exp, subExponentIsFloat(exp)
}

// ParseSubHeader reads SubHeaderSize bytes from c and decodes them into
// a SubHeader. index identifies the subfile's ordinal for error
// messages.
func ParseSubHeader(c *cursor.Cursor, index int) (SubHeader, error) {
	var s SubHeader

	if _, err := c.U8("subfile header flags"); err != nil {
		return s, annotate(err, index)
	}
	if _, err := c.U8("subfile header reserved byte"); err != nil {
		return s, annotate(err, index)
	}

	exp, err := c.I16("subfile header exponent")
	if err != nil {
		return s, annotate(err, index)
	}
	s.Exponent = exp

	idx, err := c.U16("subfile header index")
	if err != nil {
		return s, annotate(err, index)
	}
	s.Index = idx

	npts, err := c.U32("subfile header npts")
	if err != nil {
		return s, annotate(err, index)
	}
	s.Npts = npts

	z1, err := c.F32("subfile header z1")
	if err != nil {
		return s, annotate(err, index)
	}

	z2, err := c.F32("subfile header z2")
	if err != nil {
		return s, annotate(err, index)
	}
	s.First, s.Last = z1, z2

	if _, err := c.F32("subfile header w"); err != nil {
		return s, annotate(err, index)
	}

	if err := c.Skip(10, "subfile header reserved tail"); err != nil {
		return s, annotate(err, index)
	}

	return s, nil
}

func annotate(err error, index int) error {
	return fmt.Errorf("subfile %d: %w", index, err)
}
