package compress

// ZstdCompressor compresses a cache payload with Zstandard, favoring
// compression ratio over speed. Best suited for cache entries that are
// written once and read rarely, e.g. a long-lived on-disk cache
// directory shared across many decode calls.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Returns:
//   - ZstdCompressor: New Zstd compressor instance
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
