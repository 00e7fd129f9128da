// Package section decodes the fixed-size binary sections of an SPC
// file: the 512-byte main header and the 32-byte per-subfile headers.
// It performs no interpretation beyond what spc.md requires to
// reconstruct X/Y data; fields the decoder does not need (timestamps,
// resolution/source strings, the log offset) are read past but not
// exposed.
package section

import (
	"fmt"
	"math"

	"github.com/WillCallahan/specio3/cursor"
	"github.com/WillCallahan/specio3/errs"
	"github.com/WillCallahan/specio3/format"
)

// MainHeaderSize is the fixed size, in bytes, of the SPC main header.
const MainHeaderSize = 512

// mainHeaderFieldsSize is the number of leading bytes this package
// actually interprets; the remainder of MainHeaderSize (date,
// resolution/source strings, axis-type codes, log offset, reserved) is
// skipped unread.
const mainHeaderFieldsSize = 28

// MainHeader is the decoded form of the first 512 bytes of an SPC file.
type MainHeader struct {
	Flags    format.Flags
	Version  format.Version
	Exponent int8
	Npts     int32
	First    float64
	Last     float64
	Nsub     int32
	Variant  format.Variant
}

// IsFloatY reports whether Exponent marks the main header's Y data as
// floating-point (no integer scaling), per the §9 sentinel rule: -128
// exactly at the 8-bit main-header level.
func (h MainHeader) IsFloatY() bool {
	return h.Exponent == format.FloatExponent
}

// ParseMainHeader reads exactly MainHeaderSize bytes from c and
// validates them into a MainHeader.
//
// Validation performed: version must be the supported 0x4B (0x4C and
// anything else are ErrUnsupportedVariant); Npts and Nsub must be
// positive; First and Last must be finite; TXYXYS without TMULTI is
// ErrInvalidHeader. When TMULTI is clear, Nsub is forced to 1
// regardless of the on-disk value, per spec.
func ParseMainHeader(c *cursor.Cursor) (MainHeader, error) {
	var h MainHeader

	flagsByte, err := c.U8("main header flags")
	if err != nil {
		return h, err
	}
	h.Flags = format.Flags(flagsByte)

	versionByte, err := c.U8("main header version")
	if err != nil {
		return h, err
	}
	h.Version = format.Version(versionByte)

	if _, err := c.U8("main header experiment type"); err != nil { // ignored
		return h, err
	}

	exp, err := c.I8("main header exponent")
	if err != nil {
		return h, err
	}
	h.Exponent = exp

	npts, err := c.I32("main header npts")
	if err != nil {
		return h, err
	}
	h.Npts = npts

	first, err := c.F64("main header first")
	if err != nil {
		return h, err
	}
	h.First = first

	last, err := c.F64("main header last")
	if err != nil {
		return h, err
	}
	h.Last = last

	nsub, err := c.I32("main header nsub")
	if err != nil {
		return h, err
	}
	h.Nsub = nsub

	// The remainder of the 512-byte header (date, resolution/source
	// strings, axis-type codes, log offset, reserved) carries domain
	// metadata this decoder does not reconstruct X/Y from; skip it.
	if err := c.Skip(MainHeaderSize-mainHeaderFieldsSize, "main header tail"); err != nil {
		return h, err
	}

	if err := h.validate(); err != nil {
		return h, err
	}

	h.Variant = format.Classify(h.Flags)

	return h, nil
}

func (h *MainHeader) validate() error {
	switch h.Version {
	case format.VersionNewLSB:
		// supported
	case format.VersionNewMSB:
		return fmt.Errorf("%w: MSB-ordered SPC files (version 0x%02X) are not supported", errs.ErrUnsupportedVariant, uint8(h.Version))
	default:
		return fmt.Errorf("%w: unrecognized version byte 0x%02X", errs.ErrUnsupportedVariant, uint8(h.Version))
	}

	if h.Npts <= 0 {
		return fmt.Errorf("%w: npts must be positive, got %d", errs.ErrInvalidHeader, h.Npts)
	}

	if h.Nsub <= 0 {
		return fmt.Errorf("%w: nsub must be positive, got %d", errs.ErrInvalidHeader, h.Nsub)
	}

	if math.IsNaN(h.First) || math.IsInf(h.First, 0) {
		return fmt.Errorf("%w: first endpoint is not finite: %v", errs.ErrInvalidHeader, h.First)
	}

	if math.IsNaN(h.Last) || math.IsInf(h.Last, 0) {
		return fmt.Errorf("%w: last endpoint is not finite: %v", errs.ErrInvalidHeader, h.Last)
	}

	multi := h.Flags.Has(format.TMULTI)
	xyxys := h.Flags.Has(format.TXYXYS)

	if xyxys && !multi {
		return fmt.Errorf("%w: TXYXYS set without TMULTI", errs.ErrInvalidHeader)
	}

	if !multi {
		// nsub is only meaningful in multifile mode; force to 1 as spec requires.
		h.Nsub = 1
	}

	return nil
}
