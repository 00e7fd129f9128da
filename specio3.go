// Package specio3 decodes Galactic SPC spectral binary files and,
// optionally, caches the decoded result on disk so repeated reads of
// the same file skip the binary parser.
//
// This is the convenience facade; spc.Decode/spc.DecodeBytes and
// cache.Encode/cache.Decode remain usable directly for callers that
// want finer control (e.g. decode options, or managing the cache
// location themselves).
package specio3

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/WillCallahan/specio3/cache"
	"github.com/WillCallahan/specio3/internal/hash"
	"github.com/WillCallahan/specio3/spc"
)

// Read reads and decodes the SPC file at path.
func Read(path string, opts ...spc.DecodeOption) ([]spc.Spectrum, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return spc.DecodeBytes(data, opts...)
}

// ReadBytes decodes an SPC file already held in memory.
func ReadBytes(data []byte, opts ...spc.DecodeOption) ([]spc.Spectrum, error) {
	return spc.DecodeBytes(data, opts...)
}

// ReadCached reads and decodes the SPC file at path, consulting a cache
// entry under cacheDir keyed by the content hash of path's bytes.
//
// On a cache hit, the binary parser is skipped entirely. On a miss (no
// entry, or a stale one whose source hash no longer matches), the file
// is decoded normally and a fresh cache entry is written to cacheDir
// best-effort: a failure to write the cache entry is not returned as an
// error, since the decode itself already succeeded.
func ReadCached(path string, cacheDir string, opts ...spc.DecodeOption) ([]spc.Spectrum, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cachePath := filepath.Join(cacheDir, fmt.Sprintf("%016x.spccache", hash.Bytes(data)))

	if cached, readErr := os.ReadFile(cachePath); readErr == nil {
		// Any decode failure here (stale hash, corrupt blob) is treated
		// as a cache miss: fall through to a normal decode rather than
		// failing the call.
		if spectra, decodeErr := cache.Decode(cached, data); decodeErr == nil {
			return spectra, nil
		}
	}

	spectra, err := spc.DecodeBytes(data, opts...)
	if err != nil {
		return nil, err
	}

	if blob, encodeErr := cache.Encode(spectra, data); encodeErr == nil {
		_ = os.MkdirAll(cacheDir, 0o755)
		_ = os.WriteFile(cachePath, blob, 0o644)
	}

	return spectra, nil
}
