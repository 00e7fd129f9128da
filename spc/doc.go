// Package spc decodes Galactic SPC spectral files: a family of binary
// formats storing one or more spectra, each a pair of equal-length X/Y
// float64 sequences.
//
// # Basic usage
//
//	data, err := os.ReadFile("sample.spc")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	spectra, err := spc.DecodeBytes(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for i, s := range spectra {
//	    fmt.Printf("spectrum %d: %d points, range %.1f-%.1f\n", i, len(s.X), s.X[0], s.X[len(s.X)-1])
//	}
//
// # Supported layouts
//
// The main header's flag bits select one of four layouts: Y-only with a
// generated evenly spaced X axis, XY with an explicit shared X block,
// multi-subfile with a shared X axis (generated or explicit), and
// multi-subfile with a per-subfile X axis. See format.Classify for the
// exact decision table.
//
// # What this package does not do
//
// It does not write SPC files, does not interpret instrument metadata
// beyond what reconstructing X/Y requires, does not support the
// pre-"new" generation (version byte 0x4D), and does not stream —
// Decode/DecodeBytes read a complete file into memory and return a
// complete result or an error; there is no partial-result or
// incremental mode.
package spc
