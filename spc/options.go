package spc

import (
	"fmt"

	"github.com/WillCallahan/specio3/errs"
	"github.com/WillCallahan/specio3/internal/options"
)

// defaultMaxSubfiles bounds the subfile count accepted by default. A
// hostile or corrupted main header claiming millions of subfiles would
// otherwise drive the dispatcher to attempt that many 32-byte header
// reads before Truncated is ever reached; this cap fails fast instead.
const defaultMaxSubfiles = 1 << 20

type decodeConfig struct {
	maxSubfiles int
}

func newDecodeConfig() *decodeConfig {
	return &decodeConfig{maxSubfiles: defaultMaxSubfiles}
}

// DecodeOption configures Decode/DecodeBytes.
type DecodeOption = options.Option[*decodeConfig]

// WithMaxSubfiles overrides the default cap on the number of subfiles a
// file is allowed to declare. Exceeding the cap is reported as
// errs.ErrInvalidHeader.
func WithMaxSubfiles(n int) DecodeOption {
	return options.New(func(c *decodeConfig) error {
		if n <= 0 {
			return fmt.Errorf("%w: max subfiles must be positive, got %d", errs.ErrInvalidHeader, n)
		}
		c.maxSubfiles = n

		return nil
	})
}
