package cache

import (
	"encoding/binary"
	"fmt"

	"github.com/WillCallahan/specio3/errs"
	"github.com/WillCallahan/specio3/format"
)

// magic identifies a specio3 cache blob. It is checked before anything
// else in Decode so a file of the wrong type fails fast with a clear
// error instead of a confusing downstream one.
const magic uint32 = 0x53504333 // "SPC3"

// version is the cache blob format generation. There is only one so far.
const version uint8 = 1

// HeaderSize is the fixed size, in bytes, of a CacheHeader on disk.
const HeaderSize = 4 + 1 + 1 + 2 + 4 + 8 + 8 + 8

// CacheHeader is the fixed-size header fronting every cache blob,
// followed by a per-spectrum point-count index and then the (optionally
// compressed) float64 payload. Modeled on the teacher's fixed binary
// header pattern: a magic number, a version byte, and the counts and
// offsets needed to validate and locate the rest of the blob without
// scanning it.
type CacheHeader struct {
	Compression   format.CompressionType
	SpectrumCount uint32
	SourceLen     uint64
	SourceHash    uint64
	PayloadLen    uint64
}

// writeHeader appends the on-disk encoding of h to b.
func writeHeader(b []byte, h CacheHeader) []byte {
	var tmp [HeaderSize]byte
	binary.LittleEndian.PutUint32(tmp[0:4], magic)
	tmp[4] = version
	tmp[5] = byte(h.Compression)
	// tmp[6:8] reserved, left zero
	binary.LittleEndian.PutUint32(tmp[8:12], h.SpectrumCount)
	binary.LittleEndian.PutUint64(tmp[12:20], h.SourceLen)
	binary.LittleEndian.PutUint64(tmp[20:28], h.SourceHash)
	binary.LittleEndian.PutUint64(tmp[28:36], h.PayloadLen)

	return append(b, tmp[:]...)
}

// parseHeader reads a CacheHeader from the front of data. The header
// always occupies the first HeaderSize bytes.
func parseHeader(data []byte) (CacheHeader, error) {
	if len(data) >= 4 {
		gotMagic := binary.LittleEndian.Uint32(data[0:4])
		if gotMagic != magic {
			return CacheHeader{}, fmt.Errorf("%w: not a specio3 cache blob", errs.ErrInvalidCache)
		}
	}

	if len(data) < HeaderSize {
		return CacheHeader{}, fmt.Errorf("%w: need %d bytes for cache header, have %d", errs.ErrTruncated, HeaderSize, len(data))
	}

	gotVersion := data[4]
	if gotVersion != version {
		return CacheHeader{}, fmt.Errorf("%w: unsupported cache format version %d", errs.ErrInvalidCache, gotVersion)
	}

	h := CacheHeader{
		Compression:   format.CompressionType(data[5]),
		SpectrumCount: binary.LittleEndian.Uint32(data[8:12]),
		SourceLen:     binary.LittleEndian.Uint64(data[12:20]),
		SourceHash:    binary.LittleEndian.Uint64(data[20:28]),
		PayloadLen:    binary.LittleEndian.Uint64(data[28:36]),
	}

	return h, nil
}
