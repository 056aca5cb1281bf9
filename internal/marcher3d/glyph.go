package marcher3d

import (
	"errors"
	"math"
)

var ErrEmptyRamp = errors.New("glyph ramp is empty")

// Ramp maps light intensity to characters, darkest first.
type Ramp []rune

// MissGlyph is drawn where a ray hit nothing.
const MissGlyph = ' '

// DefaultRamp is the 12-step ramp of the reference viewer.
func DefaultRamp() Ramp { return Ramp(Glyphs) }

// NewRamp validates a glyph string.
func NewRamp(glyphs string) (Ramp, error) {
	r := Ramp(glyphs)
	if len(r) == 0 {
		return nil, ErrEmptyRamp
	}
	return r, nil
}

// Index maps intensity to the nearest ramp step. Non-finite intensities map to 0.
func (r Ramp) Index(intensity Real) int {
	if !isFinite(intensity) {
		return 0
	}
	idx := int(math.Round(float64(intensity * Real(len(r)-1))))
	if idx < 0 {
		return 0
	}
	if idx > len(r)-1 {
		return len(r) - 1
	}
	return idx
}

func (r Ramp) Glyph(intensity Real) rune { return r[r.Index(intensity)] }
