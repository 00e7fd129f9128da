// Package compress provides compression and decompression codecs for the
// spectra cache payload produced by the cache package.
//
// # Overview
//
// A cache blob stores the decoded X/Y float64 arrays for every spectrum
// in a source SPC file. Those arrays compress well (smooth, often
// monotonic X axes; Y values with limited precision after exponent
// scaling), so the cache payload is optionally compressed before being
// framed with a CacheHeader. Four codecs are available:
//
//   - None: no compression (format.CompressionNone)
//   - Zstd: best compression ratio, moderate speed (format.CompressionZstd)
//   - S2: balanced speed and ratio, a Snappy derivative (format.CompressionS2)
//   - LZ4: fastest decompression (format.CompressionLZ4)
//
// # Architecture
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// CreateCodec and GetCodec construct a Codec from a format.CompressionType,
// the same value stored in a CacheHeader, so a cache reader can select the
// matching decompressor without a type switch at the call site.
//
// # Thread Safety
//
// All codec implementations are safe for concurrent use; the stateful
// ones (Zstd, LZ4) pool their encoders/decoders internally with sync.Pool
// rather than holding per-instance state.
package compress
