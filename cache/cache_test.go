package cache

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/WillCallahan/specio3/errs"
	"github.com/WillCallahan/specio3/format"
	"github.com/WillCallahan/specio3/spc"
)

func sampleSpectra() []spc.Spectrum {
	return []spc.Spectrum{
		{X: []float64{100, 200, 300}, Y: []float64{1.5, 2.5, 3.5}},
		{X: []float64{1, 2}, Y: []float64{-1.0, 4.0}},
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, comp := range []format.CompressionType{
		format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
	} {
		t.Run(comp.String(), func(t *testing.T) {
			require := require.New(t)
			source := []byte("pretend this is an SPC file's raw bytes")

			blob, err := Encode(sampleSpectra(), source, WithCompression(comp))
			require.NoError(err)

			got, err := Decode(blob, source)
			require.NoError(err)
			require.Equal(sampleSpectra(), got)
		})
	}
}

func TestDecodeRejectsChangedSource(t *testing.T) {
	require := require.New(t)

	source := []byte("original bytes")
	blob, err := Encode(sampleSpectra(), source)
	require.NoError(err)

	changed := []byte("original bytes, but mutated")
	_, err = Decode(blob, changed)
	require.ErrorIs(err, errs.ErrCacheMismatch)
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	_, err := Decode([]byte("not a cache blob at all, too short"), []byte("src"))
	require.ErrorIs(t, err, errs.ErrInvalidCache)
}

func TestDecodeRejectsTruncated(t *testing.T) {
	require := require.New(t)

	source := []byte("source bytes")
	blob, err := Encode(sampleSpectra(), source)
	require.NoError(err)

	_, err = Decode(blob[:len(blob)-2], source)
	require.Error(err)
}

func TestEncodeRejectsShapeMismatch(t *testing.T) {
	bad := []spc.Spectrum{{X: []float64{1, 2}, Y: []float64{1}}}

	_, err := Encode(bad, []byte("src"))
	require.ErrorIs(t, err, errs.ErrShapeMismatch)
}

func TestWithCompressionRejectsUnknownType(t *testing.T) {
	_, err := Encode(sampleSpectra(), []byte("src"), WithCompression(format.CompressionType(0xFF)))
	require.ErrorIs(t, err, errs.ErrInvalidHeader)
}

func TestEncodeEmptySpectraList(t *testing.T) {
	require := require.New(t)

	source := []byte("source")
	blob, err := Encode(nil, source)
	require.NoError(err)

	got, err := Decode(blob, source)
	require.NoError(err)
	require.Empty(got)
}
