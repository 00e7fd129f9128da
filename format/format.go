// Package format defines the on-disk constants for the Galactic SPC
// format: main-header flag bits, the recognized version bytes, the
// floating-point exponent sentinel, and the closed set of file variants
// the flag bits classify into. It also defines the compression codec
// identifiers shared by the spectra cache.
package format

// Flags is the one-byte flag field at offset 0 of the 512-byte main
// header. Individual bits are tested with the named masks below.
type Flags uint8

const (
	// TSPREC marks 16-bit integer Y values instead of the default
	// byte-swapped 32-bit integer encoding.
	TSPREC Flags = 1 << 0
	// TCGRAM marks a centered gram/chromatogram; not interpreted by the
	// decoder beyond being a recognized, carried-through bit.
	TCGRAM Flags = 1 << 1
	// TMULTI marks a multifile (multi-subfile) SPC file.
	TMULTI Flags = 1 << 2
	// TRANDM marks arbitrary-time multifile data; not interpreted
	// beyond being a recognized bit.
	TRANDM Flags = 1 << 3
	// TORDRD marks ordered, but not evenly spaced, multifile data; not
	// interpreted beyond being a recognized bit.
	TORDRD Flags = 1 << 4
	// TALABS marks the presence of custom axis label strings in the
	// header tail; not interpreted by the decoder.
	TALABS Flags = 1 << 5
	// TXYXYS marks per-subfile X axes (each subfile carries its own X
	// block immediately before its Y block).
	TXYXYS Flags = 1 << 6
	// TXVALS marks an explicit shared X block immediately following the
	// main header (ignored when TXYXYS is also set).
	TXVALS Flags = 1 << 7
)

// Has reports whether all bits in mask are set in f.
func (f Flags) Has(mask Flags) bool { return f&mask == mask }

// Version is the one-byte format generation/byte-order code at offset 1
// of the main header.
type Version uint8

const (
	// VersionNewLSB is the only version this decoder fully supports:
	// "new" generation, little-endian.
	VersionNewLSB Version = 0x4B
	// VersionNewMSB is recognized but rejected: "new" generation,
	// big-endian. No test fixtures exercise it, so the main header
	// parser always rejects it as a parse failure rather than the cursor
	// implementing a big-endian read path.
	VersionNewMSB Version = 0x4C
	// VersionOld is the ancient pre-"new" generation. It is out of
	// scope per spec; the decoder rejects it with ErrUnsupportedVariant
	// on a best-effort basis (it does not attempt to parse the old
	// header shape at all).
	VersionOld Version = 0x4D
)

// FloatExponent is the sentinel main-header exponent value meaning
// "floating-point Y, no integer scaling applied". At the 16-bit
// subheader level, any value whose low byte equals this sentinel (i.e.
// any value congruent to -128 mod 256) carries the same meaning.
const FloatExponent int8 = -128

// FloatSubExponent is the 16-bit subheader sentinel meaning "inherit
// the main header's exponent".
const FloatSubExponent int16 = -32768

// Variant is the closed set of on-disk layouts the main header's flag
// bits classify into.
type Variant uint8

const (
	// VariantYOnly is a single-subfile file with an evenly spaced,
	// generated X axis (TMULTI clear, TXVALS clear).
	VariantYOnly Variant = iota
	// VariantXY is a single-subfile file with an explicit shared X
	// block (TMULTI clear, TXVALS set).
	VariantXY
	// VariantMultiY is a multi-subfile file sharing one generated,
	// evenly spaced X axis (TMULTI set, TXVALS clear, TXYXYS clear).
	VariantMultiY
	// VariantMultiXY is a multi-subfile file sharing one explicit X
	// block (TMULTI set, TXVALS set, TXYXYS clear).
	VariantMultiXY
	// VariantMultiPerSubfileX is a multi-subfile file where each
	// subfile carries its own X block (TMULTI set, TXYXYS set; TXVALS
	// is ignored in this case).
	VariantMultiPerSubfileX
)

// String renders the variant the way the §4.2 classification table
// names it, for diagnostics and test failure messages.
func (v Variant) String() string {
	switch v {
	case VariantYOnly:
		return "Y-only/even-X"
	case VariantXY:
		return "XY/explicit-shared-X"
	case VariantMultiY:
		return "multi-Y/shared-even-X"
	case VariantMultiXY:
		return "multi-Y/shared-explicit-X"
	case VariantMultiPerSubfileX:
		return "multi/per-subfile-X"
	default:
		return "unknown"
	}
}

// Classify implements the §4.2 variant table, given the three flag bits
// that drive dispatch.
func Classify(flags Flags) Variant {
	multi := flags.Has(TMULTI)
	xvals := flags.Has(TXVALS)
	xyxys := flags.Has(TXYXYS)

	switch {
	case multi && xyxys:
		return VariantMultiPerSubfileX
	case multi && xvals:
		return VariantMultiXY
	case multi:
		return VariantMultiY
	case xvals:
		return VariantXY
	default:
		return VariantYOnly
	}
}

// CompressionType identifies the codec used to compress a spectra cache
// blob's payload section. It is independent of the SPC on-disk format
// itself, which is never compressed.
type CompressionType uint8

const (
	// CompressionNone stores the cache payload uncompressed.
	CompressionNone CompressionType = 0x1
	// CompressionZstd compresses the cache payload with Zstandard.
	CompressionZstd CompressionType = 0x2
	// CompressionS2 compresses the cache payload with S2 (a Snappy
	// derivative tuned for speed).
	CompressionS2 CompressionType = 0x3
	// CompressionLZ4 compresses the cache payload with LZ4.
	CompressionLZ4 CompressionType = 0x4
)

// String renders the compression type name for diagnostics.
func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
