// Package cache implements a small on-disk cache blob format for decoded
// SPC spectra, so a caller that repeatedly reads the same files (a batch
// job re-run, a long-lived service) can skip the binary parser on a
// cache hit.
//
// A blob is a CacheHeader, a per-spectrum point-count index, and an
// optionally compressed payload of the spectra's X and Y float64 arrays
// back to back. Encode and Decode are pure functions over byte slices;
// neither touches the filesystem (specio3.ReadCached does that).
//
// Example:
//
//	blob, err := cache.Encode(spectra, source, cache.WithCompression(format.CompressionLZ4))
//	...
//	spectra, err := cache.Decode(blob, source)
//	if errors.Is(err, errs.ErrCacheMismatch) {
//	    spectra, err = spc.DecodeBytes(source)
//	}
package cache

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/WillCallahan/specio3/compress"
	"github.com/WillCallahan/specio3/errs"
	"github.com/WillCallahan/specio3/format"
	"github.com/WillCallahan/specio3/internal/hash"
	"github.com/WillCallahan/specio3/internal/options"
	"github.com/WillCallahan/specio3/internal/pool"
	"github.com/WillCallahan/specio3/spc"
)

type config struct {
	compression format.CompressionType
	hashFunc    hash.Func
}

func newConfig() *config {
	return &config{
		compression: format.CompressionZstd,
		hashFunc:    hash.Bytes,
	}
}

// Option configures Encode and Decode.
type Option = options.Option[*config]

// WithCompression selects the codec used to compress the cache payload.
// The default is format.CompressionZstd.
func WithCompression(c format.CompressionType) Option {
	return options.New(func(cfg *config) error {
		if _, err := compress.GetCodec(c); err != nil {
			return fmt.Errorf("%w: %s", errs.ErrInvalidHeader, err)
		}
		cfg.compression = c

		return nil
	})
}

// WithContentHash overrides the function used to fingerprint the source
// bytes a cache entry is validated against. The default is hash.Bytes
// (xxHash64).
func WithContentHash(fn hash.Func) Option {
	return options.NoError(func(cfg *config) { cfg.hashFunc = fn })
}

// Encode serializes spectra into a cache blob fingerprinted against
// source, the raw bytes of the SPC file spectra was decoded from.
func Encode(spectra []spc.Spectrum, source []byte, opts ...Option) ([]byte, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	for i, s := range spectra {
		if len(s.X) != len(s.Y) {
			return nil, fmt.Errorf("spectrum %d: %w: len(X)=%d, len(Y)=%d", i, errs.ErrShapeMismatch, len(s.X), len(s.Y))
		}
	}

	raw := pool.GetCacheBuffer()
	defer pool.PutCacheBuffer(raw)

	for _, s := range spectra {
		appendFloat64s(raw, s.X)
		appendFloat64s(raw, s.Y)
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	payload, err := codec.Compress(raw.Bytes())
	if err != nil {
		return nil, fmt.Errorf("cache: compressing payload: %w", err)
	}

	header := CacheHeader{
		Compression:   cfg.compression,
		SpectrumCount: uint32(len(spectra)),
		SourceLen:     uint64(len(source)),
		SourceHash:    cfg.hashFunc(source),
		PayloadLen:    uint64(len(payload)),
	}

	out := make([]byte, 0, HeaderSize+len(spectra)*4+len(payload))
	out = writeHeader(out, header)

	for _, s := range spectra {
		var tmp [4]byte
		binary.LittleEndian.PutUint32(tmp[:], uint32(len(s.X)))
		out = append(out, tmp[:]...)
	}

	out = append(out, payload...)

	return out, nil
}

// Decode validates cached against source and, on a match, deserializes
// the spectra it encodes. A content-hash mismatch returns
// errs.ErrCacheMismatch rather than an attempt to decode a blob that no
// longer corresponds to source; callers should treat this as a cache
// miss and fall back to spc.DecodeBytes.
func Decode(cached []byte, source []byte, opts ...Option) ([]spc.Spectrum, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	header, err := parseHeader(cached)
	if err != nil {
		return nil, err
	}

	if header.SourceLen != uint64(len(source)) || header.SourceHash != cfg.hashFunc(source) {
		return nil, errs.ErrCacheMismatch
	}

	indexLen := int(header.SpectrumCount) * 4
	rest := cached[HeaderSize:]

	if len(rest) < indexLen {
		return nil, fmt.Errorf("%w: need %d bytes for spectrum index, have %d", errs.ErrTruncated, indexLen, len(rest))
	}

	index := rest[:indexLen]
	compressed := rest[indexLen:]

	if uint64(len(compressed)) < header.PayloadLen {
		return nil, fmt.Errorf("%w: need %d bytes for payload, have %d", errs.ErrTruncated, header.PayloadLen, len(compressed))
	}

	codec, err := compress.GetCodec(header.Compression)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCache, err)
	}

	payload, err := codec.Decompress(compressed[:header.PayloadLen])
	if err != nil {
		return nil, fmt.Errorf("%w: decompressing payload: %s", errs.ErrInvalidCache, err)
	}

	spectra := make([]spc.Spectrum, header.SpectrumCount)

	offset := 0
	for i := range spectra {
		npts := int(binary.LittleEndian.Uint32(index[i*4 : i*4+4]))

		x, err := readFloat64s(payload, &offset, npts)
		if err != nil {
			return nil, fmt.Errorf("spectrum %d: %w", i, err)
		}

		y, err := readFloat64s(payload, &offset, npts)
		if err != nil {
			return nil, fmt.Errorf("spectrum %d: %w", i, err)
		}

		spectra[i] = spc.Spectrum{X: x, Y: y}
	}

	return spectra, nil
}

func appendFloat64s(buf *pool.ByteBuffer, values []float64) {
	for _, v := range values {
		var tmp [8]byte
		binary.LittleEndian.PutUint64(tmp[:], math.Float64bits(v))
		buf.B = append(buf.B, tmp[:]...)
	}
}

func readFloat64s(payload []byte, offset *int, n int) ([]float64, error) {
	need := n * 8
	if len(payload)-*offset < need {
		return nil, fmt.Errorf("%w: need %d payload bytes, have %d", errs.ErrTruncated, need, len(payload)-*offset)
	}

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		bits := binary.LittleEndian.Uint64(payload[*offset : *offset+8])
		out[i] = math.Float64frombits(bits)
		*offset += 8
	}

	return out, nil
}
