// Package errs defines the sentinel errors shared by every layer of the
// SPC decoder: the byte cursor, the header parsers, the Y decoder, the
// file dispatcher, and the spectra cache.
//
// Call sites wrap these sentinels with fmt.Errorf("...: %w", errs.ErrX)
// to attach the offending field, offset, or subfile index. Callers should
// use errors.Is against the sentinels below rather than comparing error
// strings.
package errs

import "errors"

var (
	// ErrTruncated is returned when a read would run past the end of the
	// input buffer, at any of: the main header, an X block, a subfile
	// header, or a Y block, and by the cache package when a cache blob is
	// cut short.
	ErrTruncated = errors.New("spc: truncated input")

	// ErrUnsupportedVariant is returned for a version byte other than
	// 0x4B (new-generation LSB), for the recognized-but-unsupported
	// 0x4C (new-generation MSB) variant, or for a flag combination not
	// enumerated by the main-header variant table.
	ErrUnsupportedVariant = errors.New("spc: unsupported file variant")

	// ErrInvalidHeader is returned for non-finite X endpoints,
	// non-positive point or subfile counts, or contradictory flags
	// (e.g. TXYXYS set without TMULTI).
	ErrInvalidHeader = errors.New("spc: invalid header")

	// ErrShapeMismatch is returned when a decoded spectrum's X and Y
	// lengths differ, or when a subfile decodes to zero points.
	ErrShapeMismatch = errors.New("spc: X/Y shape mismatch")

	// ErrCacheMismatch is returned by the cache package when a cached
	// entry's stored content hash does not match the source bytes it is
	// being validated against, signaling a stale or corrupted cache
	// entry. Callers should treat this as a cache miss and re-decode.
	ErrCacheMismatch = errors.New("spc: cache entry does not match source")

	// ErrInvalidCache is returned when a cache blob is malformed (bad
	// magic, unsupported format version or compression type, or a
	// payload that fails to decompress). A blob that is cut short is
	// reported as ErrTruncated instead.
	ErrInvalidCache = errors.New("spc: invalid cache blob")
)
