package spc

import (
	"fmt"
	"io"

	"github.com/WillCallahan/specio3/cursor"
	"github.com/WillCallahan/specio3/errs"
	"github.com/WillCallahan/specio3/format"
	"github.com/WillCallahan/specio3/internal/options"
	"github.com/WillCallahan/specio3/section"
)

// Decode reads all of r and decodes it as an SPC file. It is a thin
// convenience wrapper over DecodeBytes for callers that have a
// io.Reader rather than an in-memory buffer; the bytes read from r are
// not retained after Decode returns.
func Decode(r io.Reader, opts ...DecodeOption) ([]Spectrum, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return DecodeBytes(data, opts...)
}

// DecodeBytes decodes a complete SPC file held in data and returns its
// spectra in file order. It is a pure function: data is read but never
// mutated, and no reference to it is retained past the call.
//
// Decoding proceeds: main header → (branch on the §4.2 variant table) →
// shared X axis, if any → one pass per subfile reading a subfile header
// and its Y (and, for the per-subfile-X variant, X) block. Every error
// is fatal to the call; no partial result is ever returned.
func DecodeBytes(data []byte, opts ...DecodeOption) ([]Spectrum, error) {
	cfg := newDecodeConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	c := cursor.New(data)

	main, err := section.ParseMainHeader(c)
	if err != nil {
		return nil, err
	}

	if int(main.Nsub) > cfg.maxSubfiles {
		return nil, fmt.Errorf("%w: nsub %d exceeds configured maximum %d", errs.ErrInvalidHeader, main.Nsub, cfg.maxSubfiles)
	}

	var sharedX []float64

	switch main.Variant {
	case format.VariantYOnly, format.VariantMultiY:
		sharedX = evenAxis(main.First, main.Last, int(main.Npts))
	case format.VariantXY, format.VariantMultiXY:
		sharedX, err = readExplicitAxis(c, int(main.Npts), "shared X block")
		if err != nil {
			return nil, err
		}
	case format.VariantMultiPerSubfileX:
		// each subfile supplies its own X block; nothing to read here.
	default:
		return nil, fmt.Errorf("%w: unclassified variant", errs.ErrUnsupportedVariant)
	}

	perSubfileX := main.Variant == format.VariantMultiPerSubfileX

	spectra := make([]Spectrum, 0, main.Nsub)

	for i := 0; i < int(main.Nsub); i++ {
		sub, err := section.ParseSubHeader(c, i)
		if err != nil {
			return nil, err
		}

		npts := int(main.Npts)
		x := sharedX

		if perSubfileX {
			npts = int(sub.Npts)
			x, err = readExplicitAxis(c, npts, fmt.Sprintf("subfile %d X block", i))
			if err != nil {
				return nil, err
			}
		}

		exponent, isFloat := sub.EffectiveExponent(main.Exponent)

		y, err := decodeY(c, exponent, isFloat, main.Flags.Has(format.TSPREC), npts)
		if err != nil {
			return nil, fmt.Errorf("subfile %d: %w", i, err)
		}

		if err := validateShape(i, x, y); err != nil {
			return nil, err
		}

		spectra = append(spectra, Spectrum{X: x, Y: y})
	}

	return spectra, nil
}

func validateShape(index int, x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("subfile %d: %w: len(X)=%d, len(Y)=%d", index, errs.ErrShapeMismatch, len(x), len(y))
	}

	if len(x) == 0 {
		return fmt.Errorf("subfile %d: %w: zero-length spectrum", index, errs.ErrShapeMismatch)
	}

	return nil
}
