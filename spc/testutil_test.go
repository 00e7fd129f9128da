package spc

import (
	"math"

	"github.com/WillCallahan/specio3/format"
	"github.com/WillCallahan/specio3/section"
)

func appendU8(b []byte, v uint8) []byte  { return append(b, v) }
func appendI8(b []byte, v int8) []byte   { return append(b, byte(v)) }
func appendU16(b []byte, v uint16) []byte {
	return append(b, byte(v), byte(v>>8))
}
func appendI16(b []byte, v int16) []byte { return appendU16(b, uint16(v)) }
func appendU32(b []byte, v uint32) []byte {
	return append(b, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}
func appendI32(b []byte, v int32) []byte { return appendU32(b, uint32(v)) }
func appendF32(b []byte, v float32) []byte {
	return appendU32(b, math.Float32bits(v))
}
func appendF64(b []byte, v float64) []byte {
	bits := math.Float64bits(v)
	return append(b, byte(bits), byte(bits>>8), byte(bits>>16), byte(bits>>24),
		byte(bits>>32), byte(bits>>40), byte(bits>>48), byte(bits>>56))
}

// appendSwappedI32 appends the on-disk byte-swapped encoding of v: a
// normal little-endian i32 with its two 16-bit halves swapped.
func appendSwappedI32(b []byte, v int32) []byte {
	u := uint32(v)
	c0, c1 := byte(u), byte(u>>8)
	c2, c3 := byte(u>>16), byte(u>>24)

	return append(b, c2, c3, c0, c1)
}

type mainHeaderSpec struct {
	flags    format.Flags
	version  format.Version
	exponent int8
	npts     int32
	first    float64
	last     float64
	nsub     int32
}

func buildMainHeader(s mainHeaderSpec) []byte {
	if s.version == 0 {
		s.version = format.VersionNewLSB
	}

	b := make([]byte, 0, section.MainHeaderSize)
	b = appendU8(b, uint8(s.flags))
	b = appendU8(b, uint8(s.version))
	b = appendU8(b, 0) // experiment type
	b = appendI8(b, s.exponent)
	b = appendI32(b, s.npts)
	b = appendF64(b, s.first)
	b = appendF64(b, s.last)
	b = appendI32(b, s.nsub)

	for len(b) < section.MainHeaderSize {
		b = append(b, 0)
	}

	return b
}

type subHeaderSpec struct {
	exponent int16
	index    uint16
	npts     uint32
}

func buildSubHeader(s subHeaderSpec) []byte {
	b := make([]byte, 0, section.SubHeaderSize)
	b = appendU8(b, 0) // flags, unused
	b = appendU8(b, 0) // reserved
	b = appendI16(b, s.exponent)
	b = appendU16(b, s.index)
	b = appendU32(b, s.npts)
	b = appendF32(b, 0) // z1
	b = appendF32(b, 0) // z2
	b = appendF32(b, 0) // w

	for len(b) < section.SubHeaderSize {
		b = append(b, 0)
	}

	return b
}

func buildF32Block(values []float32) []byte {
	b := make([]byte, 0, len(values)*4)
	for _, v := range values {
		b = appendF32(b, v)
	}

	return b
}

func buildSwappedI32Block(values []int32) []byte {
	b := make([]byte, 0, len(values)*4)
	for _, v := range values {
		b = appendSwappedI32(b, v)
	}

	return b
}

func buildI16Block(values []int16) []byte {
	b := make([]byte, 0, len(values)*2)
	for _, v := range values {
		b = appendI16(b, v)
	}

	return b
}
