// Package pool provides pooled, amortized-growth scratch buffers used
// while assembling a spectra cache payload, so that encoding a batch of
// SPC files into cache entries does not reallocate a growable buffer
// per file.
package pool

import (
	"io"
	"sync"
)

const (
	// CacheBufferDefaultSize is the initial capacity of a ByteBuffer
	// obtained from the default pool.
	CacheBufferDefaultSize = 1024 * 16 // 16KiB, enough for a typical single-spectrum cache entry
	// CacheBufferMaxThreshold is the largest buffer the default pool
	// will retain; larger buffers are discarded on Put rather than
	// pooled, to avoid one oversized batch inflating steady-state
	// memory for every subsequent use.
	CacheBufferMaxThreshold = 1024 * 1024 * 8 // 8MiB
)

// ByteBuffer is a growable []byte with an amortized growth strategy:
// small buffers grow by a fixed increment to minimize reallocations
// under repeated small writes, large buffers grow by a fraction of
// their current size to bound copy cost.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the given initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte { return bb.B }

// Reset empties the buffer but retains its allocated capacity.
func (bb *ByteBuffer) Reset() { bb.B = bb.B[:0] }

// Len returns the number of bytes currently written.
func (bb *ByteBuffer) Len() int { return len(bb.B) }

// Cap returns the buffer's current capacity.
func (bb *ByteBuffer) Cap() int { return cap(bb.B) }

// Slice returns bb.B[start:end]. Panics if the indices are out of bounds.
func (bb *ByteBuffer) Slice(start, end int) []byte {
	if start < 0 || end < start || end > cap(bb.B) {
		panic("pool: Slice: invalid indices")
	}

	return bb.B[start:end]
}

// ExtendOrGrow extends the buffer's length by n bytes, growing the
// backing array first if there is insufficient capacity.
func (bb *ByteBuffer) ExtendOrGrow(n int) {
	curLen := len(bb.B)
	if cap(bb.B)-curLen >= n {
		bb.B = bb.B[:curLen+n]
		return
	}

	bb.Grow(n)
	bb.B = bb.B[:curLen+n]
}

// Grow ensures the buffer can accept requiredBytes more bytes without a
// further reallocation.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := CacheBufferDefaultSize
	if cap(bb.B) > 4*CacheBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}

	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends data to the buffer, growing it as needed. It always
// returns len(data), nil.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo writes the buffer's contents to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool pools ByteBuffers to minimize allocation overhead
// during repeated cache-encode calls.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool whose buffers start at defaultSize
// and are discarded, rather than retained, once they grow past
// maxThreshold.
func NewByteBufferPool(defaultSize, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool:         sync.Pool{New: func() any { return NewByteBuffer(defaultSize) }},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool, allocating one if empty.
func (p *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)
	return bb
}

// Put resets and returns bb to the pool, unless it has grown past the
// pool's maxThreshold, in which case it is discarded.
func (p *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if p.maxThreshold > 0 && cap(bb.B) > p.maxThreshold {
		return
	}

	bb.Reset()
	p.pool.Put(bb)
}

var defaultPool = NewByteBufferPool(CacheBufferDefaultSize, CacheBufferMaxThreshold)

// GetCacheBuffer retrieves a ByteBuffer from the package-wide default pool.
func GetCacheBuffer() *ByteBuffer { return defaultPool.Get() }

// PutCacheBuffer returns bb to the package-wide default pool.
func PutCacheBuffer(bb *ByteBuffer) { defaultPool.Put(bb) }
