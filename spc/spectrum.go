package spc

// Spectrum is one decoded (X, Y) pair: a wavelength/frequency/etc. axis
// and its paired intensity values. Both slices always have equal,
// non-zero length. The decoder allocates and owns the backing arrays;
// it does not retain any reference to them or to the input buffer after
// Decode/DecodeBytes returns.
type Spectrum struct {
	X []float64
	Y []float64
}
