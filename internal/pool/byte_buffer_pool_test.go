package pool

import (
	"bytes"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 1024, bb.Cap())
}

func TestByteBuffer_Bytes(t *testing.T) {
	bb := NewByteBuffer(CacheBufferDefaultSize)
	bb.B = append(bb.B, []byte("hello")...)

	assert.Equal(t, []byte("hello"), bb.Bytes())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(CacheBufferDefaultSize)
	bb.B = append(bb.B, []byte("some data")...)
	originalCap := bb.Cap()

	bb.Reset()

	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, originalCap, bb.Cap())
}

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(CacheBufferDefaultSize)

	n, err := bb.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = bb.Write([]byte(" world"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	assert.Equal(t, []byte("hello world"), bb.B)
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(CacheBufferDefaultSize)
	bb.B = append(bb.B, []byte("test data")...)

	var buf bytes.Buffer
	n, err := bb.WriteTo(&buf)

	require.NoError(t, err)
	assert.Equal(t, int64(9), n)
	assert.Equal(t, "test data", buf.String())
}

func TestByteBuffer_WriteTo_ErrorPropagation(t *testing.T) {
	bb := NewByteBuffer(CacheBufferDefaultSize)
	bb.B = append(bb.B, []byte("test")...)

	n, err := bb.WriteTo(&errorWriter{err: io.ErrShortWrite})

	assert.ErrorIs(t, err, io.ErrShortWrite)
	assert.Equal(t, int64(0), n)
}

func TestByteBuffer_ExtendOrGrow(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.ExtendOrGrow(8)
	assert.Equal(t, 8, bb.Len())

	bb.ExtendOrGrow(100)
	assert.Equal(t, 108, bb.Len())
	assert.GreaterOrEqual(t, bb.Cap(), 108)
}

func TestByteBuffer_Slice(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.ExtendOrGrow(10)
	for i := range bb.B {
		bb.B[i] = byte(i)
	}

	s := bb.Slice(2, 5)
	assert.Equal(t, []byte{2, 3, 4}, s)
}

func TestByteBuffer_Slice_PanicsOnInvalidRange(t *testing.T) {
	bb := NewByteBuffer(4)
	assert.Panics(t, func() { bb.Slice(-1, 2) })
	assert.Panics(t, func() { bb.Slice(3, 1) })
	assert.Panics(t, func() { bb.Slice(0, 100) })
}

func TestByteBuffer_Grow_SufficientCapacity(t *testing.T) {
	bb := NewByteBuffer(CacheBufferDefaultSize)
	originalCap := bb.Cap()

	bb.Grow(100)

	assert.Equal(t, originalCap, bb.Cap())
}

func TestByteBuffer_Grow_SmallBuffer(t *testing.T) {
	bb := NewByteBuffer(CacheBufferDefaultSize)
	bb.B = append(bb.B, make([]byte, CacheBufferDefaultSize)...)

	bb.Grow(1024)

	assert.GreaterOrEqual(t, bb.Cap(), CacheBufferDefaultSize+1024)
}

func TestByteBuffer_Grow_LargeBuffer(t *testing.T) {
	largeSize := 4*CacheBufferDefaultSize + 1024
	bb := NewByteBuffer(largeSize)
	bb.B = bb.B[:largeSize]

	bb.Grow(2048)

	assert.GreaterOrEqual(t, bb.Cap(), largeSize+2048)
}

func TestByteBuffer_Grow_PreservesData(t *testing.T) {
	bb := NewByteBuffer(CacheBufferDefaultSize)
	testData := []byte("important data that must be preserved")
	bb.B = append(bb.B, testData...)

	bb.Grow(CacheBufferDefaultSize * 2)

	assert.Equal(t, testData, bb.B)
}

func TestGetPutCacheBuffer(t *testing.T) {
	bb := GetCacheBuffer()
	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.GreaterOrEqual(t, bb.Cap(), CacheBufferDefaultSize)

	bb.B = append(bb.B, []byte("payload")...)
	PutCacheBuffer(bb)

	bb2 := GetCacheBuffer()
	assert.Equal(t, 0, bb2.Len(), "buffer from pool should be reset")
	PutCacheBuffer(bb2)
}

func TestPutCacheBuffer_Nil(t *testing.T) {
	assert.NotPanics(t, func() { PutCacheBuffer(nil) })
}

func TestByteBufferPool_CustomSizes(t *testing.T) {
	tests := []struct {
		name         string
		defaultSize  int
		maxThreshold int
	}{
		{"small pool", 1024, 4096},
		{"medium pool", 16384, 131072},
		{"no threshold", 8192, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewByteBufferPool(tt.defaultSize, tt.maxThreshold)
			bb := p.Get()
			assert.GreaterOrEqual(t, bb.Cap(), tt.defaultSize)
			p.Put(bb)
		})
	}
}

func TestByteBufferPool_DiscardsOversizedBuffers(t *testing.T) {
	p := NewByteBufferPool(1024, 4096)

	bb := p.Get()
	bb.Grow(10000)
	require.Greater(t, bb.Cap(), 4096)

	p.Put(bb)

	bb2 := p.Get()
	assert.LessOrEqual(t, bb2.Cap(), 4096*2)
}

func TestByteBufferPool_NoThresholdKeepsLargeBuffers(t *testing.T) {
	p := NewByteBufferPool(1024, 0)

	bb := p.Get()
	bb.Grow(1024 * 1024)
	p.Put(bb)

	bb2 := p.Get()
	require.NotNil(t, bb2)
}

func TestPool_ConcurrentAccess(t *testing.T) {
	const goroutines = 50
	const iterations = 200

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				bb := GetCacheBuffer()
				bb.B = append(bb.B, []byte("data")...)
				assert.Equal(t, 4, bb.Len())
				PutCacheBuffer(bb)
			}
		}()
	}

	wg.Wait()
}

type errorWriter struct {
	err error
}

func (ew *errorWriter) Write(p []byte) (int, error) {
	return 0, ew.err
}
